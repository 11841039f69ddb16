package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

type Mode string

const (
	ModeLocal  Mode = "local"  // mock gateway unless told otherwise
	ModeAPIKey Mode = "apikey" // Gemini Developer API
	ModeGCP    Mode = "gcp"    // Vertex AI
)

const defaultMaxUploadBytes = 20 << 20

type Config struct {
	Mode Mode

	Port string

	APIKey       string
	GCPProjectID string
	GCPLocation  string
	ImageModel   string
	ChatModel    string

	UseMockGateway bool
	StylesFile     string // empty = built-in catalog
	MaxUploadBytes int64

	LogLevel string
	LogFile  string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if v == "1" || v == "true" || v == "TRUE" {
		return true
	}
	return false
}

func getInt64Env(key string, def int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

// Load reads all env vars and builds the config
func Load() (*Config, error) {
	var mode Mode
	switch getEnv("LUMINA_MODE", "local") {
	case "gcp":
		mode = ModeGCP
	case "apikey":
		mode = ModeAPIKey
	default:
		mode = ModeLocal
	}

	maxUpload, err := getInt64Env("LUMINA_MAX_UPLOAD_BYTES", defaultMaxUploadBytes)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Mode: mode,

		Port: getEnv("LUMINA_PORT", "8080"),

		APIKey:       getEnv("LUMINA_API_KEY", os.Getenv("GOOGLE_API_KEY")),
		GCPProjectID: getEnv("LUMINA_GCP_PROJECT", ""),
		GCPLocation:  getEnv("LUMINA_GCP_LOCATION", "us-central1"),
		ImageModel:   getEnv("LUMINA_IMAGE_MODEL", "gemini-2.5-flash-image"),
		ChatModel:    getEnv("LUMINA_CHAT_MODEL", "gemini-3-pro-preview"),

		UseMockGateway: getBoolEnv("LUMINA_USE_MOCK_GATEWAY", mode == ModeLocal),
		StylesFile:     getEnv("LUMINA_STYLES_FILE", ""),
		MaxUploadBytes: maxUpload,

		LogLevel: getEnv("LUMINA_LOG_LEVEL", "info"),
		LogFile:  getEnv("LUMINA_LOG_FILE", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected mode has the credentials it needs.
func (c *Config) Validate() error {
	if c.MaxUploadBytes <= 0 {
		return errors.New("LUMINA_MAX_UPLOAD_BYTES must be positive")
	}
	if c.UseMockGateway {
		return nil
	}
	switch c.Mode {
	case ModeGCP:
		if c.GCPProjectID == "" {
			return errors.New("LUMINA_GCP_PROJECT must be set in gcp mode")
		}
	case ModeAPIKey:
		if c.APIKey == "" {
			return errors.New("LUMINA_API_KEY or GOOGLE_API_KEY must be set in apikey mode")
		}
	case ModeLocal:
		return errors.New("local mode requires the mock gateway; set LUMINA_MODE=apikey or gcp")
	}
	return nil
}
