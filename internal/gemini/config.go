package gemini

import (
	"os"
	"strconv"
)

// Config holds all configuration for the generation gateway.
type Config struct {
	APIKey    string
	Model     string
	Endpoint  string
	TimeoutMs int
	LogCalls  bool
}

// DefaultConfig returns a Config with sensible defaults. The API key has
// no default and must come from the environment.
func DefaultConfig() Config {
	return Config{
		Model:     "gemini-2.5-flash",
		Endpoint:  "https://generativelanguage.googleapis.com/v1beta",
		TimeoutMs: 60000,
	}
}

// LoadConfig reads gateway configuration from environment variables,
// falling back to defaults for any unset values. The credential is read
// from GEMINI_API_KEY, with API_KEY as a legacy fallback; when both are
// set the former wins.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.APIKey = v
	} else if v := os.Getenv("API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("BRIEFGEN_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("BRIEFGEN_GEMINI_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("BRIEFGEN_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("BRIEFGEN_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
