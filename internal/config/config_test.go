package config

import (
	"testing"
	"time"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_USER", "inv")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "inventory")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ACCESS_TOKEN_TTL_MIN", "30")
	t.Setenv("BCRYPT_COST", "10")
}

func TestLoad(t *testing.T) {
	setBaseEnv(t)
	cfg := Load()
	if cfg.Port != "8080" || cfg.JWTSecret != "s3cret" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.AccessTTLMin != 30 || cfg.BcryptCost != 10 {
		t.Fatalf("unexpected numeric config: ttl=%d cost=%d", cfg.AccessTTLMin, cfg.BcryptCost)
	}
	// Defaults apply when the identity vars are unset.
	if cfg.AppName == "" || cfg.AppVersion == "" {
		t.Fatalf("expected app identity defaults, got %q %q", cfg.AppName, cfg.AppVersion)
	}
}

func TestLoadCacheConfigDefaults(t *testing.T) {
	cfg := LoadCacheConfig()
	if !cfg.Enabled {
		t.Fatalf("cache should default to enabled")
	}
	if !cfg.Methods["GET"] {
		t.Fatalf("GET should be cached by default")
	}
	if cfg.Methods["POST"] {
		t.Fatalf("POST must never default to cached")
	}
	if cfg.TTL != 30*time.Second {
		t.Fatalf("expected 30s default TTL, got %s", cfg.TTL)
	}
}

func TestLoadCacheConfigOverrides(t *testing.T) {
	t.Setenv("CACHE_METHODS", "get, head")
	t.Setenv("CACHE_TTL", "2m")
	cfg := LoadCacheConfig()
	if !cfg.Methods["GET"] || !cfg.Methods["HEAD"] {
		t.Fatalf("methods should be upper-cased and trimmed: %v", cfg.Methods)
	}
	if cfg.TTL != 2*time.Minute {
		t.Fatalf("expected 2m TTL, got %s", cfg.TTL)
	}
}

func TestLoadRateLimitConfigClamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "-3")
	t.Setenv("RATE_LIMIT_TTL", "1s")
	cfg := LoadRateLimitConfig()
	if cfg.Capacity < 1 || cfg.RefillTokens < 1 {
		t.Fatalf("capacity/refill must clamp to >=1: %+v", cfg)
	}
	if cfg.TTL < 5*cfg.RefillInterval {
		t.Fatalf("TTL must cover several refill intervals: %+v", cfg)
	}
}
