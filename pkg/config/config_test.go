package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}
	if cfg.App.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.App.Port)
	}
	if got := cfg.Session.TTL; got != 24*time.Hour {
		t.Fatalf("expected session ttl 24h, got %v", got)
	}
	if cfg.Session.CookieName != "sf_session" {
		t.Fatalf("unexpected cookie name %q", cfg.Session.CookieName)
	}
	if cfg.Session.UsesRedis() {
		t.Fatalf("expected memory session store by default")
	}
	if cfg.Catalog.Path != "" {
		t.Fatalf("expected embedded catalog by default, got %q", cfg.Catalog.Path)
	}
	if len(cfg.App.CORSOrigins) != 1 || cfg.App.CORSOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected default cors origins %v", cfg.App.CORSOrigins)
	}
}

func TestLoad_CORSOriginsList(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvCORSOrigins, "https://pradomglobal.co.uk,https://www.pradomglobal.co.uk")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if len(cfg.App.CORSOrigins) != 2 {
		t.Fatalf("expected two origins, got %v", cfg.App.CORSOrigins)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAppEnv); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAppEnv, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_RedisStoreRequiresEndpoint(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvSessionStore, "redis")

	if _, err := Load(); err == nil {
		t.Fatal("expected redis session store without endpoint to fail")
	}

	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if !cfg.Session.UsesRedis() {
		t.Fatalf("expected redis session store")
	}
}

func TestLoad_RejectsUnknownStore(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvSessionStore, "postgres")

	if _, err := Load(); err == nil {
		t.Fatal("expected unknown session store to fail")
	}
}

func TestLoad_RejectsNonPositiveTTL(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvSessionTTL, "0s")

	if _, err := Load(); err == nil {
		t.Fatal("expected zero ttl to fail")
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "production")
	for _, key := range []string{EnvPort, EnvSessionStore, EnvSessionTTL, EnvSessionCookie, EnvRedisURL, EnvRedisAddr, EnvCatalogPath, EnvCORSOrigins} {
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset %s: %v", key, err)
		}
	}
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "prod"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
	if prodConfig.IsDev() {
		t.Fatalf("expected IsDev false for %q", prodConfig.Env)
	}
}
