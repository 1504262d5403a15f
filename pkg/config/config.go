package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Chat deployment modes: "stream" serves SSE by default, "buffered" returns
// the full reply as one JSON body. Callers can still pick per request via
// the Accept header.
const (
	ModeStream   = "stream"
	ModeBuffered = "buffered"
)

type Config struct {
	Port        string
	DatabaseURL string

	OpenRouterAPIKey   string
	OpenRouterBase     string
	OpenRouterModel    string
	OpenRouterAppTitle string
	OpenRouterReferer  string

	ChatMode  string
	MaxTokens int
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		OpenRouterAPIKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBase:     os.Getenv("OPENROUTER_BASE_URL"),
		OpenRouterModel:    getEnv("OPENROUTER_MODEL", "openai/gpt-3.5-turbo"),
		OpenRouterAppTitle: getEnv("OPENROUTER_APP_TITLE", "stockchat"),
		OpenRouterReferer:  os.Getenv("OPENROUTER_REFERER"),

		ChatMode:  getEnv("CHAT_MODE", ModeStream),
		MaxTokens: getEnvInt("CHAT_MAX_TOKENS", 500),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
