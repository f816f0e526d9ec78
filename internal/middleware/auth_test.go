package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kernel_school_backend/internal/config"
	"kernel_school_backend/internal/model"
	"kernel_school_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const middlewareTestSecret = "middleware-test-secret"

func middlewareTestConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     middlewareTestSecret,
			ExpireTime: time.Hour,
		},
	}
}

func tokenFor(t *testing.T, role model.UserRole) string {
	t.Helper()
	user := &model.User{FullName: "Test", Email: "t@example.com", Role: role, Tariff: model.TariffFree}
	user.ID = 1
	token, err := util.GenerateJWT(user, middlewareTestSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func protectedRouter(cfg *config.Config, roles ...model.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/")
	group.Use(AuthMiddleware(cfg))
	if len(roles) > 0 {
		group.Use(RoleMiddleware(roles...))
	}
	group.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	cfg := middlewareTestConfig()

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"malformed token", "Bearer not.a.token", http.StatusUnauthorized},
		{"valid token", "Bearer " + tokenFor(t, model.Student), http.StatusOK},
	}

	router := protectedRouter(cfg)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	cfg := middlewareTestConfig()
	user := &model.User{Role: model.Student}
	user.ID = 1
	expired, err := util.GenerateJWT(user, middlewareTestSecret, -time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	router := protectedRouter(cfg)
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

// 角色检查严格匹配：管理员访问仅限学生的接口同样403
func TestRoleMiddleware(t *testing.T) {
	cfg := middlewareTestConfig()

	tests := []struct {
		name       string
		allowed    []model.UserRole
		tokenRole  model.UserRole
		wantStatus int
	}{
		{"student on student route", []model.UserRole{model.Student}, model.Student, http.StatusOK},
		{"admin on admin route", []model.UserRole{model.Admin}, model.Admin, http.StatusOK},
		{"student on admin route", []model.UserRole{model.Admin}, model.Student, http.StatusForbidden},
		{"admin on student route", []model.UserRole{model.Student}, model.Admin, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := protectedRouter(cfg, tt.allowed...)
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set("Authorization", "Bearer "+tokenFor(t, tt.tokenRole))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
