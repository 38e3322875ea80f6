package config

import (
	"context"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:3000" {
		t.Errorf("wrong default API URL: %q", cfg.APIBaseURL)
	}
	if cfg.CacheBackend != "memory" {
		t.Errorf("wrong default cache backend: %q", cfg.CacheBackend)
	}
	if cfg.TokenFile == "" {
		t.Error("token file must resolve to a default location")
	}
	if !cfg.IsDevelopment() {
		t.Error("default env is development")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STORECTL_API_URL", "https://admin.example.com")
	t.Setenv("STORECTL_CACHE", "redis")
	t.Setenv("REDIS_ADDR", "redis.internal:6380")
	t.Setenv("ENV", "production")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIBaseURL != "https://admin.example.com" {
		t.Errorf("API URL override ignored: %q", cfg.APIBaseURL)
	}
	if cfg.CacheBackend != "redis" {
		t.Errorf("cache backend override ignored: %q", cfg.CacheBackend)
	}
	if cfg.Redis.Addr != "redis.internal:6380" {
		t.Errorf("redis addr override ignored: %q", cfg.Redis.Addr)
	}
	if cfg.IsDevelopment() {
		t.Error("production env must not report development")
	}
}

func TestLoad_ExplicitTokenFile(t *testing.T) {
	t.Setenv("STORECTL_TOKEN_FILE", "/tmp/storectl-test-token")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TokenFile != "/tmp/storectl-test-token" {
		t.Errorf("explicit token file ignored: %q", cfg.TokenFile)
	}
}
