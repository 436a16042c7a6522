package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// Empty values read as unset, isolating the test from the caller's env.
	t.Setenv("PRODUCTION_URL", "")
	t.Setenv("STATUS_PAGE_URL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.BaseURL != defaultBaseURL {
		t.Errorf("BaseURL = %q, want default", cfg.BaseURL)
	}
	if cfg.StatusPageURL != defaultStatusPageURL {
		t.Errorf("StatusPageURL = %q, want default", cfg.StatusPageURL)
	}
	if cfg.LogLevel != "ERROR" {
		t.Errorf("LogLevel = %q, want ERROR", cfg.LogLevel)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %s, want 30s", cfg.RequestTimeout)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PRODUCTION_URL", "https://myapp.example.com")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.BaseURL != "https://myapp.example.com" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.LogLevel != "DEBUG" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %s", cfg.RequestTimeout)
	}
}

func TestLoadInvalidTimeout(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "0")

	_, err := Load()
	if !errors.Is(err, errInvalidTimeout) {
		t.Errorf("err = %v, want errInvalidTimeout", err)
	}

	t.Setenv("REQUEST_TIMEOUT_SECONDS", "301")

	_, err = Load()
	if !errors.Is(err, errInvalidTimeout) {
		t.Errorf("err = %v, want errInvalidTimeout", err)
	}
}

func TestLoadNonNumericTimeoutFallsBack(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %s, want default 30s", cfg.RequestTimeout)
	}
}

func TestLoadInvalidBaseURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "no scheme", url: "myapp.example.com"},
		{name: "wrong scheme", url: "ftp://myapp.example.com"},
		{name: "garbage", url: "://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PRODUCTION_URL", tt.url)

			_, err := Load()
			if !errors.Is(err, errInvalidBaseURL) {
				t.Errorf("err = %v, want errInvalidBaseURL", err)
			}
		})
	}
}

func TestLoadInvalidStatusPageURL(t *testing.T) {
	t.Setenv("STATUS_PAGE_URL", "not-a-url")

	_, err := Load()
	if !errors.Is(err, errInvalidStatusPageURL) {
		t.Errorf("err = %v, want errInvalidStatusPageURL", err)
	}
}
