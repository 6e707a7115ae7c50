package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.TokenTTL != 4*time.Hour {
		t.Errorf("expected default token ttl 4h, got %v", cfg.TokenTTL)
	}
	if cfg.JWTSecret != DefaultJWTSecret {
		t.Errorf("expected the development secret fallback, got %q", cfg.JWTSecret)
	}
	if cfg.IsProduction() {
		t.Error("default environment must not be production")
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Errorf("expected wildcard origins by default, got %v", cfg.AllowedOrigins)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("APP_ENV", "production")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.JWTSecret != "prod-secret" {
		t.Errorf("expected configured secret, got %q", cfg.JWTSecret)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Errorf("expected ttl 30m, got %v", cfg.TokenTTL)
	}
	if !cfg.IsProduction() {
		t.Error("expected production mode")
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example.com" {
		t.Errorf("expected two trimmed origins, got %v", cfg.AllowedOrigins)
	}
}
