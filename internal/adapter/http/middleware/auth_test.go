package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventpilot/internal/config"

	"github.com/gin-gonic/gin"
)

func authRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/v1/protected", JwtAuthMiddleware(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"operator": c.GetString("operatorEmail")})
	})
	return r
}

func TestJwtAuthMiddleware(t *testing.T) {
	cfg := &config.Config{Auth: config.AuthConfig{JWTSecret: "test-secret"}}

	t.Run("missing header", func(t *testing.T) {
		r := authRouter(cfg)
		req := httptest.NewRequest(http.MethodGet, "/v1/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		r := authRouter(cfg)
		req := httptest.NewRequest(http.MethodGet, "/v1/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := GenerateToken("ops@example.com", "test-secret", -time.Minute)
		if err != nil {
			t.Fatalf("generate token: %v", err)
		}

		r := authRouter(cfg)
		req := httptest.NewRequest(http.MethodGet, "/v1/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := GenerateToken("ops@example.com", "other-secret", time.Minute)
		if err != nil {
			t.Fatalf("generate token: %v", err)
		}

		r := authRouter(cfg)
		req := httptest.NewRequest(http.MethodGet, "/v1/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token sets the operator", func(t *testing.T) {
		token, err := GenerateToken("ops@example.com", "test-secret", time.Minute)
		if err != nil {
			t.Fatalf("generate token: %v", err)
		}

		r := authRouter(cfg)
		req := httptest.NewRequest(http.MethodGet, "/v1/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"operator":"ops@example.com"}` {
			t.Fatalf("unexpected body: %s", body)
		}
	})
}
