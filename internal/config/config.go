package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const devSessionSecret = "lumina-dev-session-secret"

type Config struct {
	// Server
	Port     string
	Env      string
	LogLevel string

	// Gemini AI (the API key itself is read per call from GEMINI_API_KEY / API_KEY)
	GeminiModel          string
	GeminiTemperature    float32
	GeminiConcurrentReqs int

	// Assistant
	AssistantRequestsPerMin int

	// Sessions
	SessionSecret string
	SessionTTL    time.Duration

	// Redis (optional, live-update fan-out only)
	RedisURL string

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	env := getEnvOrDefault("ENV", "development")

	cfg := &Config{
		Port:                    getEnvOrDefault("PORT", "8080"),
		Env:                     env,
		LogLevel:                getEnvOrDefault("LOG_LEVEL", "info"),
		GeminiModel:             getEnvOrDefault("GEMINI_MODEL", "gemini-3-flash-preview"),
		GeminiTemperature:       float32(getEnvAsFloatOrDefault("GEMINI_TEMPERATURE", 0.7)),
		GeminiConcurrentReqs:    getEnvAsIntOrDefault("GEMINI_CONCURRENT_REQUESTS", 5),
		AssistantRequestsPerMin: getEnvAsIntOrDefault("ASSISTANT_REQUESTS_PER_MINUTE", 20),
		SessionSecret:           sessionSecret(env),
		SessionTTL:              getEnvAsDurationOrDefault("SESSION_TTL", 2*time.Hour),
		RedisURL:                getEnvOrDefault("REDIS_URL", ""),
		FrontendURL:             getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}

	return cfg
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// sessionSecret is required outside development.
func sessionSecret(env string) string {
	if env == "development" {
		return getEnvOrDefault("SESSION_SECRET", devSessionSecret)
	}
	return mustGetEnv("SESSION_SECRET")
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsFloatOrDefault(key string, defaultVal float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal
	}
	return f
}

func getEnvAsDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}
