package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	Addr         string
	DataDir      string
	StoreBackend string // "file" or "redis"

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret      string
	AccessTokenTTL time.Duration

	AdminEmail    string
	AdminPassword string

	LogLevel string
	LogJSON  bool
	LogFile  string

	ShippingCharge    float64
	FreeShippingAbove float64
	TaxRate           float64
	INRPerUSD         float64
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		Addr:         ":" + getEnvOrDefault("PORT", "8080"),
		DataDir:      getEnvOrDefault("DATA_DIR", "./data"),
		StoreBackend: getEnvOrDefault("STORE_BACKEND", "file"),

		RedisAddr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:       getIntEnv("REDIS_DB", 0),

		JWTSecret:      getEnvOrDefault("JWT_SECRET", ""),
		AccessTokenTTL: getDurationEnv("ACCESS_TOKEN_TTL", 12, time.Hour),

		AdminEmail:    getEnvOrDefault("ADMIN_EMAIL", "admin@shop.com"),
		AdminPassword: getEnvOrDefault("ADMIN_PASSWORD", "Admin@123"),

		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		LogJSON:  getBoolEnv("LOG_JSON", false),
		LogFile:  getEnvOrDefault("LOG_FILE", ""),

		ShippingCharge:    getFloatEnv("SHIPPING_CHARGE", 50),
		FreeShippingAbove: getFloatEnv("FREE_SHIPPING_ABOVE", 500),
		TaxRate:           getFloatEnv("TAX_RATE", 0.05),
		INRPerUSD:         getFloatEnv("INR_PER_USD", 83),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}

func getIntEnv(key string, defaultValue int) int {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
