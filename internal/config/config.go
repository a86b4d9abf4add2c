package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Progress ProgressConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	// JWTSecret signs admin session tokens. Login (and everything behind the
	// admin gate) fails with a server-config error when it is empty.
	JWTSecret string

	// AdminPasswordHash (bcrypt) is preferred; AdminPassword is the plaintext
	// fallback for local setups.
	AdminPassword     string
	AdminPasswordHash string

	TokenTTL string
}

type ProgressConfig struct {
	// DefaultTotalSteps applies when a step write does not carry its own
	// total.
	DefaultTotalSteps int

	// StatsDebounceMs is the quiet window before the stats watcher refetches
	// after a burst of change events.
	StatsDebounceMs int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JWTSecret:         getEnv("JWT_SECRET", ""),
			AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			TokenTTL:          getEnv("ADMIN_TOKEN_TTL", "24h"),
		},
		Progress: ProgressConfig{
			DefaultTotalSteps: getEnvAsInt("PROGRESS_TOTAL_STEPS", 5),
			StatsDebounceMs:   getEnvAsInt("PROGRESS_STATS_DEBOUNCE_MS", 300),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
