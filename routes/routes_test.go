package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"neuroad-server/config"
	"neuroad-server/pkg/logger"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	if err := config.LoadConfig(); err != nil {
		t.Fatalf("load config: %v", err)
	}
	logger.InitLogger(config.AppConfig)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r)
	return r
}

func TestHealthCheck(t *testing.T) {
	r := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d, want 200", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status = %q, want healthy", body["status"])
	}
}

func TestAPIRoot(t *testing.T) {
	r := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/ = %d, want 200", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	want := "NeuroAd API - AI-Powered Neuromarketing Content Generator"
	if body["message"] != want {
		t.Errorf("message = %q, want %q", body["message"], want)
	}
}

func TestCatalogRoutes(t *testing.T) {
	r := testRouter(t)

	tests := []struct {
		path string
		want int
	}{
		{"/api/strategies", 15},
		{"/api/platforms", 5},
		{"/api/marketing-tips", 8},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != http.StatusOK {
				t.Fatalf("GET %s = %d, want 200", tt.path, w.Code)
			}

			var items []json.RawMessage
			if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if len(items) != tt.want {
				t.Errorf("GET %s returned %d items, want %d", tt.path, len(items), tt.want)
			}
		})
	}
}
