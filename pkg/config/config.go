package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	GoogleClientID     string
	GoogleClientSecret string

	DBDriver    string // postgres or sqlite
	DatabaseURL string
	SQLitePath  string

	AIProvider    string // gemini, ollama or auto
	GeminiAPIKey  string
	GeminiModel   string
	OllamaBaseURL string
	OllamaModel   string
	AITimeout     time.Duration

	Timezone          string
	SessionTTL        time.Duration
	DailySeedInterval time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:               getEnv("PORT", "8080"),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		DBDriver:           getEnv("DB_DRIVER", "postgres"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		SQLitePath:         getEnv("SQLITE_PATH", "lifeops.db"),
		AIProvider:         getEnv("AI_PROVIDER", "auto"),
		GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		OllamaBaseURL:      getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:        getEnv("OLLAMA_MODEL", "llama3"),
		AITimeout:          getDuration("AI_TIMEOUT", 60*time.Second),
		Timezone:           getEnv("TIMEZONE", "Asia/Seoul"),
		SessionTTL:         getDuration("SESSION_TTL", 50*time.Minute),
		DailySeedInterval:  getDuration("DAILY_SEED_INTERVAL", 15*time.Minute),
	}
}

// Location resolves Timezone, falling back to UTC
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("[Config] unknown TIMEZONE %q, using UTC: %v", c.Timezone, err)
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
		log.Printf("[Config] invalid %s %q, using %s", key, v, defaultValue)
	}
	return defaultValue
}
