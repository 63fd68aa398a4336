package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCSV(t *testing.T) {
	require.Nil(t, CSV(""))
	require.Equal(t, []string{"a:9092", "b:9092"}, CSV(" a:9092, ,b:9092 "))
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv("RESTAURANT_TEST_STR", "")
	t.Setenv("RESTAURANT_TEST_INT", "not-a-number")
	t.Setenv("RESTAURANT_TEST_BOOL", "false")

	require.Equal(t, "def", EnvDefault("RESTAURANT_TEST_STR", "def"))
	require.Equal(t, 42, EnvIntDefault("RESTAURANT_TEST_INT", 42))
	require.False(t, EnvBoolDefault("RESTAURANT_TEST_BOOL", true))
	require.True(t, EnvBoolDefault("RESTAURANT_TEST_MISSING", true))
}

func TestLoad(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/restaurant")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("KAFKA_BROKERS", "kafka:9092")
	t.Setenv("KAFKA_TOPIC", "")

	cfg := Load()
	require.Equal(t, "postgres", cfg.DBDriver)
	require.Equal(t, 9090, cfg.ServerPort)
	require.Equal(t, []string{"kafka:9092"}, cfg.KafkaBrokers)
	require.Equal(t, "restaurant_events", cfg.KafkaTopic)
	require.True(t, cfg.DBInit)
}
