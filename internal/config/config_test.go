package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := newViper()
	v.Set("JWT_SECRET", "secret")

	cfg, err := FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, EventsNone, cfg.Events.Backend)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Events.KafkaBrokers)
	assert.False(t, cfg.SeedData)
}

func TestFromViper_Overrides(t *testing.T) {
	v := newViper()
	v.Set("JWT_SECRET", "secret")
	v.Set("DB_DRIVER", "SQLite")
	v.Set("DATABASE_DSN", "file::memory:")
	v.Set("EVENTS_BACKEND", "kafka")
	v.Set("KAFKA_BROKERS", "k1:9092, k2:9092,")
	v.Set("JWT_TTL", "90m")

	cfg, err := FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Events.KafkaBrokers)
	assert.Equal(t, 90*time.Minute, cfg.JWT.TTL)
}

func TestFromViper_Rejects(t *testing.T) {
	tests := []struct {
		name string
		set  map[string]string
		want string
	}{
		{"missing secret", map[string]string{"JWT_SECRET": ""}, "JWT_SECRET"},
		{"bad driver", map[string]string{"JWT_SECRET": "s", "DB_DRIVER": "mysql"}, "DB_DRIVER"},
		{"bad events backend", map[string]string{"JWT_SECRET": "s", "EVENTS_BACKEND": "nats"}, "EVENTS_BACKEND"},
		{"kafka without brokers", map[string]string{"JWT_SECRET": "s", "EVENTS_BACKEND": "kafka", "KAFKA_BROKERS": " "}, "KAFKA_BROKERS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper()
			for k, val := range tt.set {
				v.Set(k, val)
			}
			_, err := FromViper(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFromViper_EmptyViper(t *testing.T) {
	_, err := FromViper(viper.New())
	assert.Error(t, err)
}
