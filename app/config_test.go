package app

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("WEB_ORIGIN", "")
	t.Setenv("BOOTSTRAP_ADMIN_EMAIL", "")
	t.Setenv("BOOTSTRAP_ADMIN_NAME", "")

	cfg := loadConfig()

	if cfg.RedisAddr != "127.0.0.1:6379" {
		t.Errorf("RedisAddr = %q, want default", cfg.RedisAddr)
	}
	if cfg.WebOrigin != "http://localhost:3000" {
		t.Errorf("WebOrigin = %q, want default", cfg.WebOrigin)
	}
	if cfg.JWTSecret != "test-secret" {
		t.Errorf("JWTSecret = %q, want env value", cfg.JWTSecret)
	}
	if cfg.BootstrapName != "Administrator" {
		t.Errorf("BootstrapName = %q, want default", cfg.BootstrapName)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("REDIS_ADDR", "redis:6380")
	t.Setenv("WEB_ORIGIN", "https://lending.example.edu")
	t.Setenv("BOOTSTRAP_ADMIN_EMAIL", "admin@example.edu")

	cfg := loadConfig()

	if cfg.RedisAddr != "redis:6380" {
		t.Errorf("RedisAddr = %q", cfg.RedisAddr)
	}
	if cfg.WebOrigin != "https://lending.example.edu" {
		t.Errorf("WebOrigin = %q", cfg.WebOrigin)
	}
	if cfg.BootstrapEmail != "admin@example.edu" {
		t.Errorf("BootstrapEmail = %q", cfg.BootstrapEmail)
	}
}
