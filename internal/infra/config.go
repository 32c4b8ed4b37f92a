package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv            string
	AssetsDir         string
	GeminiAPIKey      string
	GeminiModel       string
	GeminiBaseURL     string
	GeminiTransport   string
	GeminiHTTPTimeout time.Duration
	GenerationRetries int
	GenerationBackoff time.Duration
	GenerationDelay   time.Duration
	LogFile           string
	Port              string
	HTTPReadTimeout   time.Duration
	HTTPWriteTimeout  time.Duration
	HTTPIdleTimeout   time.Duration
	RateLimitPerMin   int
}

// EnvFiles are loaded, in order, before the environment is read. Variables
// already present in the process environment win.
var EnvFiles = []string{".env", ".env.local"}

// Transports accepted by GEMINI_TRANSPORT.
const (
	TransportREST      = "rest"
	TransportSDK       = "sdk"
	TransportSynthetic = "synthetic"
)

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	for _, f := range EnvFiles {
		// Missing files are fine.
		_ = godotenv.Load(f)
	}

	cfg := &Config{
		AppEnv:            getEnv("APP_ENV", "development"),
		AssetsDir:         getEnv("ASSETS_DIR", "./assets"),
		GeminiAPIKey:      strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:       getEnv("GEMINI_IMAGE_MODEL", "gemini-2.0-flash-exp-image-generation"),
		GeminiBaseURL:     getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GeminiTransport:   strings.ToLower(getEnv("GEMINI_TRANSPORT", TransportREST)),
		GeminiHTTPTimeout: time.Second * time.Duration(getEnvInt("GEMINI_HTTP_TIMEOUT_SECONDS", 120)),
		GenerationRetries: getEnvInt("GENERATION_RETRIES", 2),
		GenerationBackoff: getEnvDuration("GENERATION_BACKOFF_MS", 2000*time.Millisecond),
		GenerationDelay:   getEnvDuration("GENERATION_DELAY_MS", 1000*time.Millisecond),
		LogFile:           os.Getenv("LOG_FILE"),
		Port:              getEnv("PORT", "8080"),
		HTTPReadTimeout:   time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:  time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:   time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:   getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
	}

	switch cfg.GeminiTransport {
	case TransportREST, TransportSDK, TransportSynthetic:
	default:
		return nil, fmt.Errorf("GEMINI_TRANSPORT must be one of rest, sdk, synthetic (got %q)", cfg.GeminiTransport)
	}

	if cfg.GenerationRetries < 0 {
		return nil, fmt.Errorf("GENERATION_RETRIES must not be negative")
	}

	if cfg.GenerationDelay < 0 {
		return nil, fmt.Errorf("GENERATION_DELAY_MS must not be negative")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return fallback
}

// getEnvDuration reads a millisecond count.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if ms, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return fallback
}
