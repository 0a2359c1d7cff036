package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Category is the normalized form of a transaction category.
// The finance API sends either a bare code ("FOOD") or an object carrying a display name;
// both collapse into a code plus an optional label.
type Category struct {
	Code  string  `json:"code"`
	Label *string `json:"label,omitempty"`
}

// categoryObject covers the object shapes seen in API payloads.
type categoryObject struct {
	Code  string  `json:"code"`
	ID    string  `json:"id"`
	Name  *string `json:"name"`
	Label *string `json:"label"`
}

// UnmarshalJSON accepts a string code or an object form.
func (c *Category) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var code string
		if err := json.Unmarshal(data, &code); err != nil {
			return fmt.Errorf("invalid category code: %w", err)
		}
		*c = Category{Code: code}
		return nil
	}

	var obj categoryObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("invalid category object: %w", err)
	}
	code := obj.Code
	if code == "" {
		code = obj.ID
	}
	label := obj.Label
	if label == nil {
		label = obj.Name
	}
	*c = Category{Code: code, Label: label}
	return nil
}

// IsEmpty reports whether the category carries no code and no label.
func (c *Category) IsEmpty() bool {
	return c == nil || (c.Code == "" && c.Label == nil)
}
