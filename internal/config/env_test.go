package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("APP_ADDR", "")
	t.Setenv("STORAGE_DRIVER", "")

	env := FromViper(newViper())

	assert.Equal(t, ":3001", env.AppAddr)
	assert.Equal(t, "file", env.StorageDriver)
	assert.Equal(t, "data", env.DataDir)
	assert.True(t, env.RequireDriverSession)
	assert.False(t, env.StrictTransitions)
	assert.Empty(t, env.KafkaBrokers)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9000")
	t.Setenv("STORAGE_DRIVER", " Redis ")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("BOOKING_STRICT_TRANSITIONS", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	env := FromViper(newViper())

	assert.Equal(t, ":9000", env.AppAddr)
	assert.Equal(t, "redis", env.StorageDriver)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, env.KafkaBrokers)
	assert.True(t, env.StrictTransitions)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, env.CORSAllowedOrigins)
}

func TestLocation(t *testing.T) {
	assert.Equal(t, time.Local, Env{}.Location())
	assert.Equal(t, time.Local, Env{Timezone: "Not/AZone"}.Location())
	assert.Equal(t, "UTC", Env{Timezone: "UTC"}.Location().String())
}
