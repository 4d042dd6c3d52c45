// README: Config loader with env defaults for HTTP, weather, search, AI, and tracing settings.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ForecastConfig holds the thresholds used to classify trip weather.
// The exact cutoffs are tunable; any day crossing one of them marks the
// whole range unfavorable.
type ForecastConfig struct {
	MaxPrecipProbability float64
	MinTempC             float64
	MaxTempC             float64
}

type Config struct {
	HTTP struct {
		Addr string
	}
	Weather struct {
		APIKey  string
		BaseURL string
	}
	Search struct {
		MapsKey    string
		MaxResults int
	}
	AI struct {
		Provider  string // "gemini" or "openai"
		GeminiKey string
		OpenAIKey string
		Model     string
	}
	Trace struct {
		APIKey   string
		Endpoint string
		Project  string
	}
	Forecast    ForecastConfig
	CallTimeout time.Duration
}

// Load reads configuration from the environment. Missing required
// credentials are a startup failure, never a runtime one.
func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("WAYFARE_HTTP_ADDR", ":8080")

	cfg.Weather.BaseURL = envOrDefault("WAYFARE_WEATHER_BASE_URL", "https://api.openweathermap.org")
	cfg.Search.MaxResults = envOrDefaultInt("WAYFARE_SEARCH_MAX_RESULTS", 8)

	cfg.AI.Provider = envOrDefault("WAYFARE_AI_PROVIDER", "gemini")
	cfg.AI.Model = os.Getenv("WAYFARE_AI_MODEL")

	cfg.Trace.Endpoint = envOrDefault("LANGSMITH_ENDPOINT", "https://api.smith.langchain.com")
	cfg.Trace.Project = envOrDefault("LANGSMITH_PROJECT", "wayfare")

	cfg.Forecast.MaxPrecipProbability = envOrDefaultFloat("WAYFARE_MAX_PRECIP_PROBABILITY", 0.5)
	cfg.Forecast.MinTempC = envOrDefaultFloat("WAYFARE_MIN_TEMP_C", 0)
	cfg.Forecast.MaxTempC = envOrDefaultFloat("WAYFARE_MAX_TEMP_C", 35)

	cfg.CallTimeout = time.Duration(envOrDefaultInt("WAYFARE_CALL_TIMEOUT_SECONDS", 30)) * time.Second

	var err error
	if cfg.Weather.APIKey, err = envOrError("OPENWEATHER_API_KEY"); err != nil {
		return Config{}, err
	}
	if cfg.Search.MapsKey, err = envOrError("GOOGLE_MAPS_API_KEY"); err != nil {
		return Config{}, err
	}
	if cfg.Trace.APIKey, err = envOrError("LANGSMITH_API_KEY"); err != nil {
		return Config{}, err
	}

	switch cfg.AI.Provider {
	case "gemini":
		if cfg.AI.GeminiKey, err = envOrError("GEMINI_API_KEY"); err != nil {
			return Config{}, err
		}
	case "openai":
		if cfg.AI.OpenAIKey, err = envOrError("OPENAI_API_KEY"); err != nil {
			return Config{}, err
		}
	default:
		return Config{}, fmt.Errorf("config: unknown AI provider %q (want gemini or openai)", cfg.AI.Provider)
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrError(key string) (string, error) {
	if v := os.Getenv(key); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("config: environment variable %s is required", key)
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}
