package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Browser    BrowserConfig
	Acquirer   AcquirerConfig
	Speller    SpellerConfig
	Lighthouse LighthouseConfig
	Auth       AuthConfig
	RateLimit  RateLimitConfig
	History    HistoryConfig
	Log        LogConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 8080
	Mode string // "debug", "release", "test"; default: "release"
}

// BrowserConfig controls the Rod browser instance.
type BrowserConfig struct {
	// Headless controls whether the browser runs headless.
	Headless bool // default: true

	// MaxPages is the page pool capacity (max concurrent tabs).
	MaxPages int // default: 4

	// NoSandbox disables Chrome's sandbox (needed in Docker).
	NoSandbox bool // default: false

	// BrowserBin overrides the Chromium binary path.
	BrowserBin string
}

// AcquirerConfig controls page acquisition behavior.
type AcquirerConfig struct {
	// PrimaryTimeout bounds the wait for the primary page's body.
	PrimaryTimeout time.Duration // default: 15s

	// SampleTimeout bounds the wait for the supplementary page's body.
	SampleTimeout time.Duration // default: 10s

	// SettleDelay is the pause after scrolling to the bottom, giving
	// lazy-loaded content a chance to render.
	SettleDelay time.Duration // default: 2s

	// MinWords is the filtered word count below which analysis
	// short-circuits with a "too short" result.
	MinWords int // default: 20
}

// SpellerConfig controls the two correction oracles.
type SpellerConfig struct {
	// LanguageToolURL is the base URL of a LanguageTool server
	// (its /v2/check endpoint is used).
	LanguageToolURL string // default: "http://localhost:8010"

	// Language is the locale sent to LanguageTool.
	Language string // default: "en-US"

	// LLMBaseURL is the OpenAI-compatible API base for the model corrector.
	LLMBaseURL string // default: "http://localhost:11434/v1"

	// LLMAPIKey authenticates against the LLM API. May be empty for
	// local backends.
	LLMAPIKey string

	// LLMModel is the chat model used for spellchecking.
	LLMModel string // default: "llama3:8b-instruct"

	// Timeout bounds each oracle call.
	Timeout time.Duration // default: 60s
}

// LighthouseConfig controls the external performance-audit subprocess.
type LighthouseConfig struct {
	// Binary is the lighthouse executable.
	Binary string // default: "lighthouse"

	// OutputPath is the fixed JSON artifact path, overwritten each run.
	OutputPath string // default: "static/wireframe.json"

	// PollAttempts and PollInterval bound the wait for the artifact
	// (defaults: 20 x 500ms, ~10s total).
	PollAttempts int           // default: 20
	PollInterval time.Duration // default: 500ms
}

// AuthConfig controls API key authentication.
type AuthConfig struct {
	// Enabled toggles API key authentication.
	Enabled bool // default: false

	// APIKeys is the list of valid API keys.
	APIKeys []string
}

// RateLimitConfig controls per-key rate limiting.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate per API key.
	RequestsPerSecond float64 // default: 1

	// Burst is the maximum burst size per API key.
	Burst int // default: 3
}

// HistoryConfig controls the session history store.
type HistoryConfig struct {
	// MaxEntries bounds the history; the oldest entry is evicted first.
	MaxEntries int // default: 100
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "json"
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host: envOr("PAGELENS_HOST", "0.0.0.0"),
			Port: envIntOr("PAGELENS_PORT", 8080),
			Mode: envOr("PAGELENS_MODE", "release"),
		},
		Browser: BrowserConfig{
			Headless:   envBoolOr("PAGELENS_HEADLESS", true),
			MaxPages:   envIntOr("PAGELENS_MAX_PAGES", 4),
			NoSandbox:  envBoolOr("PAGELENS_NO_SANDBOX", false),
			BrowserBin: os.Getenv("PAGELENS_BROWSER_BIN"),
		},
		Acquirer: AcquirerConfig{
			PrimaryTimeout: envDurationOr("PAGELENS_PRIMARY_TIMEOUT", 15*time.Second),
			SampleTimeout:  envDurationOr("PAGELENS_SAMPLE_TIMEOUT", 10*time.Second),
			SettleDelay:    envDurationOr("PAGELENS_SETTLE_DELAY", 2*time.Second),
			MinWords:       envIntOr("PAGELENS_MIN_WORDS", 20),
		},
		Speller: SpellerConfig{
			LanguageToolURL: envOr("PAGELENS_LANGUAGETOOL_URL", "http://localhost:8010"),
			Language:        envOr("PAGELENS_LANGUAGE", "en-US"),
			LLMBaseURL:      envOr("PAGELENS_LLM_BASE_URL", "http://localhost:11434/v1"),
			LLMAPIKey:       os.Getenv("PAGELENS_LLM_API_KEY"),
			LLMModel:        envOr("PAGELENS_LLM_MODEL", "llama3:8b-instruct"),
			Timeout:         envDurationOr("PAGELENS_SPELLER_TIMEOUT", 60*time.Second),
		},
		Lighthouse: LighthouseConfig{
			Binary:       envOr("PAGELENS_LIGHTHOUSE_BIN", "lighthouse"),
			OutputPath:   envOr("PAGELENS_LIGHTHOUSE_OUT", "static/wireframe.json"),
			PollAttempts: envIntOr("PAGELENS_LIGHTHOUSE_POLL_ATTEMPTS", 20),
			PollInterval: envDurationOr("PAGELENS_LIGHTHOUSE_POLL_INTERVAL", 500*time.Millisecond),
		},
		Auth: AuthConfig{
			Enabled: envBoolOr("PAGELENS_AUTH_ENABLED", false),
			APIKeys: envSliceOr("PAGELENS_API_KEYS", nil),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: envFloatOr("PAGELENS_RATE_RPS", 1.0),
			Burst:             envIntOr("PAGELENS_RATE_BURST", 3),
		},
		History: HistoryConfig{
			MaxEntries: envIntOr("PAGELENS_HISTORY_MAX", 100),
		},
		Log: LogConfig{
			Level:  envOr("PAGELENS_LOG_LEVEL", "info"),
			Format: envOr("PAGELENS_LOG_FORMAT", "json"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envSliceOr(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return fallback
}
