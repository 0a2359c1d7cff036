package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/couples_finance_bff/internal/utils"
	"github.com/gin-gonic/gin"
)

// untrackedPaths are never reported as usage events.
var untrackedPaths = map[string]bool{
	"/health": true,
}

// resultCountKey lets handlers attach the number of returned items to the usage event.
const resultCountKey = "resultCount"

// SetResultCount records how many items a handler returned.
func SetResultCount(c *gin.Context, n int) {
	c.Set(resultCountKey, n)
}

// UsageEvents reports one PostHog event per successful authenticated request.
func UsageEvents(analytics *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if analytics == nil || !analytics.IsInitialized() || untrackedPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}
		event := eventNameForRoute(c.FullPath())
		if event == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		for _, param := range c.Params {
			props["param_"+param.Key] = param.Value
		}
		if count, ok := c.Get(resultCountKey); ok {
			props["result_count"] = count
		}

		analytics.Enqueue(userID, event, props)
	}
}

// eventNameForRoute turns "/api/v1/installments/:groupID" into "installments_groupID_viewed".
func eventNameForRoute(route string) string {
	route = strings.TrimPrefix(route, "/api/v1")
	route = strings.Trim(route, "/")
	if route == "" {
		return ""
	}
	route = strings.ReplaceAll(route, ":", "")
	return strings.ReplaceAll(route, "/", "_") + "_viewed"
}
