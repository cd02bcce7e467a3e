package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	MongoURI       string
	DbName         string
	AllowedOrigins []string
	TrustedProxies []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort: getEnv("APP_PORT", "8080"),
		// Store settings intentionally fall back to empty strings;
		// a bad connection string surfaces when the client connects.
		MongoURI:       getEnv("MONGODB_URI", ""),
		DbName:         getEnv("DB_NAME", ""),
		AllowedOrigins: parseList(os.Getenv("ALLOWED_ORIGINS")),
		TrustedProxies: parseList(os.Getenv("TRUSTED_PROXIES")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		values = append(values, item)
	}

	if len(values) == 0 {
		return nil
	}

	return values
}
