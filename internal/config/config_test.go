package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const baseYAML = `
server:
  port: "4000"
  mode: debug
database:
  host: localhost
  port: 3306
  user: school
  password: school
  dbname: kernel_s1
  charset: utf8mb4
  parsetime: true
jwt:
  secret: %q
  expire_hours: 168
storage:
  type: none
ai:
  base_url: http://localhost:8085
cors:
  allowed_origins:
    - http://localhost:5173
rate_limit:
  max_requests: 600
  window_minutes: 1
seed:
  admin_email: admin@test.local
  admin_password: admin-pass
`

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, fmt.Sprintf(baseYAML, "dev-secret"))

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	if cfg.Server.Port != "4000" {
		t.Errorf("port = %q, want 4000", cfg.Server.Port)
	}
	if cfg.JWT.ExpireTime != 168*time.Hour {
		t.Errorf("expire = %v, want 168h", cfg.JWT.ExpireTime)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "http://localhost:5173" {
		t.Errorf("origins = %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.AI.BaseURL != "http://localhost:8085" {
		t.Errorf("ai base url = %q", cfg.AI.BaseURL)
	}
	// seed 块解析不到的话，部署脚本会静默跳过管理员初始化
	if cfg.Seed.AdminEmail != "admin@test.local" || cfg.Seed.AdminPassword != "admin-pass" {
		t.Errorf("seed = %+v", cfg.Seed)
	}
}

func TestLoadConfigRejectsWeakSecretInRelease(t *testing.T) {
	dir := t.TempDir()
	content := fmt.Sprintf(baseYAML, "short")
	content = strings.Replace(content, "mode: debug", "mode: release", 1)
	writeConfig(t, dir, content)

	if _, err := LoadConfig(dir); err == nil {
		t.Fatal("expected error for short JWT secret in release mode")
	}
}
