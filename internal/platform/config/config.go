package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

const defaultBaseURL = "https://your-railway-app.up.railway.app"

const defaultStatusPageURL = "https://status.notion.so/api/v2/status.json"

var (
	errInvalidTimeout       = errors.New("config: REQUEST_TIMEOUT_SECONDS must be 1-300")
	errInvalidBaseURL       = errors.New("config: PRODUCTION_URL must be an absolute http(s) URL")
	errInvalidStatusPageURL = errors.New("config: STATUS_PAGE_URL must be an absolute http(s) URL")
)

// Config holds all tool configuration loaded from environment variables.
type Config struct {
	BaseURL        string
	StatusPageURL  string
	LogLevel       string
	RequestTimeout time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	cfg := Config{
		BaseURL:        getEnv("PRODUCTION_URL", defaultBaseURL),
		StatusPageURL:  getEnv("STATUS_PAGE_URL", defaultStatusPageURL),
		LogLevel:       getEnv("LOG_LEVEL", "ERROR"),
		RequestTimeout: time.Duration(getEnvAsInt("REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.RequestTimeout < time.Second || c.RequestTimeout > 300*time.Second {
		return fmt.Errorf("%w: got %s", errInvalidTimeout, c.RequestTimeout)
	}

	if err := validateHTTPURL(c.BaseURL); err != nil {
		return fmt.Errorf("%w: %q", errInvalidBaseURL, c.BaseURL)
	}
	if err := validateHTTPURL(c.StatusPageURL); err != nil {
		return fmt.Errorf("%w: %q", errInvalidStatusPageURL, c.StatusPageURL)
	}

	return nil
}

func validateHTTPURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return errors.New("not an absolute http(s) URL")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}
