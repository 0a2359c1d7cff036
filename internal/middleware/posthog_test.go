package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestEventNameForRoute(t *testing.T) {
	tests := []struct {
		route string
		want  string
	}{
		{"/api/v1/installments", "installments_viewed"},
		{"/api/v1/installments/summary", "installments_summary_viewed"},
		{"/api/v1/installments/:groupID", "installments_groupID_viewed"},
		{"/api/v1/transactions", "transactions_viewed"},
		{"/api/v1/", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			assert.Equal(t, tt.want, eventNameForRoute(tt.route))
		})
	}
}

func TestUsageEvents_NoClientIsPassThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(UsageEvents(nil))
	r.GET("/api/v1/installments", func(c *gin.Context) {
		SetResultCount(c, 3)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/installments", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
