package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func protectedRouter(handlerHit *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		*handlerHit = true
		c.JSON(http.StatusOK, gin.H{
			"email": c.GetString("email"),
			"name":  c.GetString("name"),
		})
	})
	return r
}

func TestAuthMiddlewareRejections(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	expired := signToken(t, testSecret, jwt.MapClaims{
		"email": "learner@example.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})
	wrongSecret := signToken(t, "other-secret", jwt.MapClaims{
		"email": "learner@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	noEmail := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Token abc"},
		{"bare bearer", "Bearer "},
		{"garbage token", "Bearer not-a-jwt"},
		{"expired token", "Bearer " + expired},
		{"wrong signing key", "Bearer " + wrongSecret},
		{"missing email claim", "Bearer " + noEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerHit := false
			r := protectedRouter(&handlerHit)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"message": "unauthorized access"}`, w.Body.String())
			assert.False(t, handlerHit, "handler must not run for a rejected request")
		})
	}
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	token := signToken(t, testSecret, jwt.MapClaims{
		"email": "learner@example.com",
		"name":  "Learner",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	handlerHit := false
	r := protectedRouter(&handlerHit)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, handlerHit)
	assert.JSONEq(t, `{"email": "learner@example.com", "name": "Learner"}`, w.Body.String())
}

func TestAuthMiddlewareNameDefaultsEmpty(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	token := signToken(t, testSecret, jwt.MapClaims{
		"email": "learner@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	handlerHit := false
	r := protectedRouter(&handlerHit)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email": "learner@example.com", "name": ""}`, w.Body.String())
}
