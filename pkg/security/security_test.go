package security

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func corsRouter(origins *OriginSet) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS(origins))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func TestCORSAllowList(t *testing.T) {
	origins := NewOriginSet([]string{"http://localhost:5173"})
	router := corsRouter(origins)

	tests := []struct {
		name        string
		origin      string
		wantAllowed string
	}{
		{"allowed", "http://localhost:5173", "http://localhost:5173"},
		{"not allowed", "http://evil.example.com", ""},
		{"no origin header", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllowed {
				t.Errorf("Allow-Origin = %q, want %q", got, tt.wantAllowed)
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	origins := NewOriginSet([]string{"http://localhost:5173"})
	router := corsRouter(origins)

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", rec.Code)
	}
}

// 配置热更新后白名单立即生效
func TestOriginSetReplace(t *testing.T) {
	origins := NewOriginSet([]string{"http://old.example.com"})
	router := corsRouter(origins)

	origins.Replace([]string{"http://new.example.com"})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://old.example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("old origin still allowed: %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://new.example.com")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://new.example.com" {
		t.Errorf("new origin not allowed: %q", got)
	}
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	// 没带ID时生成一个
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("expected generated X-Request-Id header")
	}
	if rec.Body.String() != rec.Header().Get("X-Request-Id") {
		t.Error("context request_id differs from response header")
	}

	// 带了ID时原样透传
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-Id", "upstream-id-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-Id"); got != "upstream-id-123" {
		t.Errorf("X-Request-Id = %q, want upstream-id-123", got)
	}
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimiter(3, time.Minute))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	var last int
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:12345"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		last = rec.Code
		if i < 3 && rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, rec.Code)
		}
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("fourth request: status = %d, want 429", last)
	}
}
