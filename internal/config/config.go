package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the service. It is built once at
// startup and passed to the components that need it.
type Config struct {
	Host            string
	Port            string
	AllowedOrigins  []string
	MaxBodyBytes    int64
	MaxPixels       int
	AutoOrient      bool
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	LogLevel        string
	LogFormat       string
	GinMode         string
}

// Load reads configuration from the environment, after merging in a .env
// file from the working directory if one exists.
func Load() (*Config, error) {
	// A missing .env is normal in containers.
	_ = godotenv.Load()

	cfg := &Config{
		Host:            getEnv("COLOR_DETECT_HOST", "0.0.0.0"),
		Port:            getEnv("PORT", "5050"),
		AllowedOrigins:  splitList(getEnv("COLOR_DETECT_ALLOWED_ORIGINS", "*")),
		LogLevel:        strings.ToLower(getEnv("COLOR_DETECT_LOG_LEVEL", "info")),
		LogFormat:       strings.ToLower(getEnv("COLOR_DETECT_LOG_FORMAT", "json")),
		GinMode:         getEnv("GIN_MODE", "release"),
		MaxBodyBytes:    32 << 20,
		MaxPixels:       100_000_000,
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     120 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}

	var err error
	if cfg.MaxBodyBytes, err = getInt64("COLOR_DETECT_MAX_BODY_BYTES", cfg.MaxBodyBytes); err != nil {
		return nil, err
	}
	maxPixels, err := getInt64("COLOR_DETECT_MAX_PIXELS", int64(cfg.MaxPixels))
	if err != nil {
		return nil, err
	}
	cfg.MaxPixels = int(maxPixels)
	if cfg.AutoOrient, err = getBool("COLOR_DETECT_AUTO_ORIENT", false); err != nil {
		return nil, err
	}
	if cfg.ReadTimeout, err = getSeconds("COLOR_DETECT_READ_TIMEOUT", cfg.ReadTimeout); err != nil {
		return nil, err
	}
	if cfg.WriteTimeout, err = getSeconds("COLOR_DETECT_WRITE_TIMEOUT", cfg.WriteTimeout); err != nil {
		return nil, err
	}
	if cfg.IdleTimeout, err = getSeconds("COLOR_DETECT_IDLE_TIMEOUT", cfg.IdleTimeout); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getSeconds("COLOR_DETECT_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT environment variable must be set")
	}
	if p, err := strconv.Atoi(c.Port); err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("PORT must be a number between 1 and 65535, got %q", c.Port)
	}
	if len(c.AllowedOrigins) == 0 {
		return errors.New("COLOR_DETECT_ALLOWED_ORIGINS must list at least one origin")
	}
	if c.MaxBodyBytes <= 0 {
		return errors.New("COLOR_DETECT_MAX_BODY_BYTES must be positive")
	}
	if c.MaxPixels <= 0 {
		return errors.New("COLOR_DETECT_MAX_PIXELS must be positive")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("COLOR_DETECT_LOG_LEVEL must be debug, info, warn or error, got %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("COLOR_DETECT_LOG_FORMAT must be json or console, got %q", c.LogFormat)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test, got %q", c.GinMode)
	}
	return nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// AllowsAnyOrigin reports whether the CORS policy is unrestricted.
func (c *Config) AllowsAnyOrigin() bool {
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getInt64(key string, defaultValue int64) (int64, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

// getSeconds reads a whole number of seconds.
func getSeconds(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s: must not be negative", key)
	}
	return time.Duration(n) * time.Second, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
