package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServiceName string

	ServerPort int

	DBDriver    string
	DatabaseURL string
	DBUser      string
	DBPassword  string
	DBInit      bool

	LogLevel string

	KafkaBrokers []string
	KafkaTopic   string
}

// Load reads the service configuration from the environment. A .env file in
// the working directory, when present, is loaded first.
func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("notice: .env not loaded: %v, using system environment", err)
	}

	cfg := Config{
		ServiceName: EnvDefault("SERVICE_NAME", "restaurant"),

		ServerPort: EnvIntDefault("SERVER_PORT", 8080),

		DBDriver:    strings.ToLower(EnvDefault("DB_DRIVER", "pgx")),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBInit:      EnvBoolDefault("DB_INIT", true),

		LogLevel: EnvDefault("LOG_LEVEL", "info"),

		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   EnvDefault("KAFKA_TOPIC", "restaurant_events"),
	}

	MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	MustOneOf(cfg.DBDriver, "DB_DRIVER", "pgx", "postgres", "sqlite")

	return cfg
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func EnvBoolDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
