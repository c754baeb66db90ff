package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini = "gemini"
	ProviderMock   = "mock"
)

type Config struct {
	Addr     string
	LogLevel string

	Provider          string
	GeminiAPIKey      string
	GeminiTextModel   string
	GeminiVisionModel string
	GeminiImageModel  string
	MockDelay         time.Duration

	MaxBodyMB      int
	HTTPTimeout    time.Duration
	RequestTimeout time.Duration
	PreferIPv4     bool

	APIURL   string
	StoreURL string
}

// Load reads the environment. Values from a .env file in the working
// directory fill in variables that are not already set.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:              env("DIRECTOR_SERVER_ADDR", ":8080"),
		LogLevel:          strings.ToLower(env("DIRECTOR_LOG_LEVEL", "info")),
		Provider:          strings.ToLower(env("DIRECTOR_PROVIDER", ProviderGemini)),
		GeminiAPIKey:      env("GEMINI_API_KEY", ""),
		GeminiTextModel:   env("GEMINI_TEXT_MODEL", "gemini-2.5-flash"),
		GeminiVisionModel: env("GEMINI_VISION_MODEL", "gemini-2.5-flash"),
		GeminiImageModel:  env("GEMINI_IMAGE_MODEL", "gemini-2.5-flash-image"),
		MockDelay:         envDuration("DIRECTOR_MOCK_DELAY", 0),
		MaxBodyMB:         envInt("DIRECTOR_MAX_BODY_MB", 20),
		HTTPTimeout:       envDuration("DIRECTOR_HTTP_TIMEOUT", 180*time.Second),
		RequestTimeout:    envDuration("DIRECTOR_REQUEST_TIMEOUT", 170*time.Second),
		PreferIPv4:        envBool("DIRECTOR_PREFER_IPV4", false),
		APIURL:            strings.TrimRight(env("DIRECTOR_API_URL", "http://localhost:8080"), "/"),
		StoreURL:          env("DIRECTOR_STORE_URL", defaultStorePath()),
	}
}

func (c Config) Validate() error {
	switch c.Provider {
	case ProviderMock:
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return errors.New("GEMINI_API_KEY is required when DIRECTOR_PROVIDER=gemini")
		}
	default:
		return errors.New("DIRECTOR_PROVIDER must be gemini or mock")
	}
	if c.MaxBodyMB <= 0 {
		return errors.New("DIRECTOR_MAX_BODY_MB must be positive")
	}
	if c.HTTPTimeout <= 0 {
		return errors.New("DIRECTOR_HTTP_TIMEOUT must be positive")
	}
	return nil
}

func defaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", ".director")
	}
	return filepath.Join(dir, "director")
}

func env(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
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

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		if n, err := strconv.Atoi(v); err == nil {
			return time.Duration(n) * time.Second
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
