package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"neuroad-server/config"
)

func corsRouter(origins []string) *gin.Engine {
	config.AppConfig = &config.Config{
		Server: config.ServerConfig{CORSOrigins: origins},
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS())
	r.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func corsRequest(r *gin.Engine, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", origin)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORSConfiguredOrigins(t *testing.T) {
	r := corsRouter([]string{"https://app.neuroad.dev"})

	w := corsRequest(r, "https://app.neuroad.dev")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.neuroad.dev" {
		t.Errorf("Access-Control-Allow-Origin = %q, want the configured origin", got)
	}

	w = corsRequest(r, "https://evil.example")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Access-Control-Allow-Origin = %q for a foreign origin, want empty", got)
	}
}

func TestCORSWildcard(t *testing.T) {
	r := corsRouter([]string{"*"})

	w := corsRequest(r, "https://anywhere.example")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://anywhere.example" {
		t.Errorf("Access-Control-Allow-Origin = %q, want the request origin", got)
	}
}
