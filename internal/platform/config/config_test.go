package config

import (
	"os"
	"testing"
	"time"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if old, ok := os.LookupEnv(key); ok {
			os.Unsetenv(key)
			t.Cleanup(func() { os.Setenv(key, old) })
		}
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	unsetEnv(t, "OJ_BASE_URL", "OJ_TIMEOUT_SECONDS", "OJ_CSRF_COOKIE_NAME", "OJ_CSRF_HEADER_NAME",
		"OJ_CSRF_FORM_FIELD", "REDIS_ADDR", "REDIS_DB", "OJ_STATE_PREFIX", "OJ_DOWNLOAD_DIR")

	cfg := FromEnv()
	if cfg.BaseURL != "http://localhost:8000/api" {
		t.Errorf("Unexpected base URL %s", cfg.BaseURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Expected 30s timeout, got %s", cfg.Timeout)
	}
	if cfg.CSRFCookieName != "csrftoken" || cfg.CSRFHeaderName != "X-CSRFToken" || cfg.CSRFFormField != "csrfmiddlewaretoken" {
		t.Errorf("Unexpected CSRF defaults %+v", cfg)
	}
	if cfg.RedisAddr != "" || cfg.RedisDB != 0 || cfg.StatePrefix != "oj" || cfg.DownloadDir != "." {
		t.Errorf("Unexpected defaults %+v", cfg)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("OJ_BASE_URL", "https://judge.example.com/api")
	t.Setenv("OJ_TIMEOUT_SECONDS", "5")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("OJ_SESSION_ID", "abc")

	cfg := FromEnv()
	if cfg.BaseURL != "https://judge.example.com/api" || cfg.Timeout != 5*time.Second {
		t.Errorf("Unexpected config %+v", cfg)
	}
	if cfg.RedisAddr != "localhost:6379" || cfg.RedisDB != 2 || cfg.SessionID != "abc" {
		t.Errorf("Unexpected config %+v", cfg)
	}
}

func TestFromEnv_InvalidIntFallsBack(t *testing.T) {
	for _, value := range []string{"abc", "0", "-3"} {
		t.Setenv("OJ_TIMEOUT_SECONDS", value)
		if got := FromEnv().Timeout; got != 30*time.Second {
			t.Errorf("OJ_TIMEOUT_SECONDS=%q: expected fallback, got %s", value, got)
		}
	}
}
