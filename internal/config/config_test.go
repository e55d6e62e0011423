package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const minimalConfig = `
auth:
  jwt_secret: 0123456789abcdef0123
storage:
  driver: memory
`

func TestLoad_Defaults(t *testing.T) {
	var cfg Config
	require.NoError(t, cleanenvport.LoadPath(writeConfig(t, minimalConfig), &cfg))

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "pg-finder", cfg.Auth.Issuer)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 48*time.Hour, cfg.Booking.PendingTTL)
	assert.Equal(t, "booking.status", cfg.Kafka.Topic)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Kafka.Enabled())
}

func TestLoad_ShortSecretRejected(t *testing.T) {
	var cfg Config
	err := cleanenvport.LoadPath(writeConfig(t, "auth:\n  jwt_secret: short\n"), &cfg)

	require.ErrorIs(t, err, cleanenvport.ErrConfigValidation)
}

func TestLoad_UnknownDriverRejected(t *testing.T) {
	var cfg Config
	err := cleanenvport.LoadPath(writeConfig(t, "auth:\n  jwt_secret: 0123456789abcdef0123\nstorage:\n  driver: mongo\n"), &cfg)

	require.ErrorIs(t, err, cleanenvport.ErrConfigValidation)
}

func TestLoad_SampleFile(t *testing.T) {
	var cfg Config
	require.NoError(t, cleanenvport.LoadPath(filepath.Join("..", "..", "config", "config.yaml"), &cfg))

	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.BrokerList())
}

func TestKafkaConfig_BrokerList(t *testing.T) {
	k := KafkaConfig{Brokers: " kafka-1:9092, ,kafka-2:9092 "}

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, k.BrokerList())
	assert.True(t, k.Enabled())
}

func TestLoggerConfig_LogLevel(t *testing.T) {
	assert.Equal(t, logger.DebugLevel, LoggerConfig{Level: "debug"}.LogLevel())
	assert.Equal(t, logger.ErrorLevel, LoggerConfig{Level: "error"}.LogLevel())
	assert.Equal(t, logger.InfoLevel, LoggerConfig{Level: "bogus"}.LogLevel())
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5433, User: "u", Password: "p", Database: "pgfinder", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5433 user=u password=p dbname=pgfinder sslmode=disable", p.DSN())
}
