package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultJQueryURL       = "https://code.jquery.com/jquery-1.12.4.min.js"
	defaultBootstrapCSSURL = "https://cdnjs.cloudflare.com/ajax/libs/twitter-bootstrap/2.3.2/css/bootstrap.min.css"
)

type Config struct {
	Port             int
	LogLevel         string
	BaseURL          string
	JQueryURL        string
	BootstrapCSSURL  string
	DefaultHideAfter time.Duration
	FlashSecret      string
	CSRFKey          string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first if present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            envInt("PORT", 8080),
		LogLevel:        envString("LOG_LEVEL", "info"),
		BaseURL:         envString("BASE_URL", "http://localhost:8080"),
		JQueryURL:       envString("JQUERY_URL", defaultJQueryURL),
		BootstrapCSSURL: envString("BOOTSTRAP_CSS_URL", defaultBootstrapCSSURL),
	}

	var missing []string

	hideAfter, err := envDuration("DEFAULT_HIDE_AFTER", 0)
	if err != nil {
		missing = append(missing, "DEFAULT_HIDE_AFTER (must be a duration such as 5s)")
	}
	cfg.DefaultHideAfter = hideAfter

	cfg.FlashSecret = os.Getenv("FLASH_SECRET")
	if len(cfg.FlashSecret) < 16 {
		missing = append(missing, "FLASH_SECRET (must be at least 16 characters)")
	}

	cfg.CSRFKey = os.Getenv("CSRF_KEY")
	if len(cfg.CSRFKey) != 32 {
		missing = append(missing, "CSRF_KEY (must be exactly 32 characters)")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing or invalid environment variables: %v", missing)
	}

	return cfg, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback, fmt.Errorf("parsing %s: %w", key, err)
	}
	return d, nil
}
