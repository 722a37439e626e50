package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("server.addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Session.CookieName != "adminToken" {
		t.Errorf("session.cookie_name = %q, want adminToken", cfg.Session.CookieName)
	}
	if cfg.Session.CookieMaxAge != 7*24*time.Hour {
		t.Errorf("session.cookie_max_age = %v, want 168h", cfg.Session.CookieMaxAge)
	}
	if cfg.Refresh.PageSize != 10 {
		t.Errorf("refresh.page_size = %d, want 10", cfg.Refresh.PageSize)
	}
	if cfg.Backend.URL != "" {
		t.Errorf("backend.url = %q, want empty", cfg.Backend.URL)
	}
	if cfg.IsProduction() {
		t.Error("default env should not be production")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ADMIN_PORTAL_SERVER_ADDR", ":9999")
	t.Setenv("ADMIN_PORTAL_BACKEND_URL", "http://backend:4000")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("server.addr = %q, want :9999", cfg.Server.Addr)
	}
	if cfg.Backend.URL != "http://backend:4000" {
		t.Errorf("backend.url = %q, want http://backend:4000", cfg.Backend.URL)
	}
}

func TestGetReturnsLoaded(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if Get() != cfg {
		t.Error("Get should return the last loaded config")
	}
}
