package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const apiKeyHeader = "x-api-key"

// serviceUserID is the user ID assigned to requests authenticated by API key.
const serviceUserID = "service"

// APIKeyAuth authenticates service-to-service requests carrying an x-api-key header.
// Keys are checked against bcrypt hashes; on a match the JWT middleware is skipped.
// Requests without a key, or with an unknown key, continue to the JWT check.
func APIKeyAuth(keyHashes []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(apiKeyHeader)
		if key == "" || len(keyHashes) == 0 {
			c.Next()
			return
		}

		if !matchesAnyHash(key, keyHashes) {
			GetLoggerFromCtx(c.Request.Context()).Warn("Unknown API key presented")
			c.Next()
			return
		}

		logger := GetLoggerFromCtx(c.Request.Context()).With(slog.String("user_id", serviceUserID))
		ctx := WithUserID(c.Request.Context(), serviceUserID)
		c.Request = c.Request.WithContext(WithLogger(ctx, logger))
		c.Set(authMethodKey, "api_key")
		c.Next()
	}
}

func matchesAnyHash(key string, hashes []string) bool {
	for _, hash := range hashes {
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil {
			return true
		}
	}
	return false
}
