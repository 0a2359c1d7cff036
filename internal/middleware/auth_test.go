package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-that-is-long-enough"

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.RegisteredClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}

// newAuthRouter records what the protected handler saw in the request context.
func newAuthRouter(issuer string, keyHashes []string, seenUser, seenToken *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(APIKeyAuth(keyHashes), AuthMiddleware(testSecret, issuer))
	r.GET("/protected", func(c *gin.Context) {
		*seenUser, _ = GetUserIDFromContext(c)
		*seenToken, _ = GetBearerTokenFromCtx(c.Request.Context())
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	valid := jwt.RegisteredClaims{
		Subject:   "user_1",
		Issuer:    "finance-api",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	noSubject := valid
	noSubject.Subject = ""
	otherIssuer := valid
	otherIssuer.Issuer = "someone-else"

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  string
		wantUser   string
	}{
		{"missing header", "", http.StatusUnauthorized, "Authorization header required", ""},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "Authorization header format must be Bearer {token}", ""},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized, "Invalid token", ""},
		{"expired", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired), http.StatusUnauthorized, "Token has expired", ""},
		{"wrong secret", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), valid), http.StatusUnauthorized, "Invalid token", ""},
		{"none alg rejected", "Bearer " + signToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, valid), http.StatusUnauthorized, "Invalid token", ""},
		{"wrong issuer", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), otherIssuer), http.StatusUnauthorized, "Invalid token", ""},
		{"missing subject", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noSubject), http.StatusUnauthorized, "Invalid token claims", ""},
		{"valid", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), valid), http.StatusNoContent, "", "user_1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seenUser, seenToken string
			r := newAuthRouter("finance-api", nil, &seenUser, &seenToken)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantError != "" {
				assert.JSONEq(t, `{"error":"`+tt.wantError+`"}`, w.Body.String())
			}
			assert.Equal(t, tt.wantUser, seenUser)
			if tt.wantUser != "" {
				assert.NotEmpty(t, seenToken, "raw token is forwarded for upstream calls")
			}
		})
	}
}

func TestAPIKeyAuth(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right-key"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("known key skips jwt", func(t *testing.T) {
		var seenUser, seenToken string
		r := newAuthRouter("", []string{string(hash)}, &seenUser, &seenToken)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("x-api-key", "right-key")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "service", seenUser)
		assert.Empty(t, seenToken)
	})

	t.Run("unknown key falls through to jwt", func(t *testing.T) {
		var seenUser, seenToken string
		r := newAuthRouter("", []string{string(hash)}, &seenUser, &seenToken)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("x-api-key", "wrong-key")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, seenUser)
	})
}
