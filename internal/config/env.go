package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Env struct {
	AppAddr  string
	GinMode  string
	LogLevel string
	Timezone string

	StorageDriver string
	DataDir       string
	MySQLDSN      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	KafkaBrokers []string
	KafkaTopic   string

	StrictTransitions    bool
	RequireDriverSession bool
	CORSAllowedOrigins   []string
	StaticDir            string
	DefaultDriverID      string
}

// LoadEnv reads .env (when present) and the process environment.
func LoadEnv() Env {
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ADDR", ":3001")
	v.SetDefault("GIN_MODE", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_TIMEZONE", "")
	v.SetDefault("STORAGE_DRIVER", "file")
	v.SetDefault("DATA_DIR", "data")
	v.SetDefault("MYSQL_DSN", "root:@tcp(127.0.0.1:3306)/luxride?parseTime=true&charset=utf8mb4&timeout=5s")
	v.SetDefault("REDIS_ADDR", "127.0.0.1:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_PREFIX", "luxride:")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_TOPIC", "booking-events")
	v.SetDefault("BOOKING_STRICT_TRANSITIONS", false)
	v.SetDefault("REQUIRE_DRIVER_SESSION", true)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("STATIC_DIR", ".")
	v.SetDefault("DEFAULT_DRIVER_ID", "")
	return v
}

// FromViper maps viper keys onto Env. Exposed so commands can bind flags first.
func FromViper(v *viper.Viper) Env {
	return Env{
		AppAddr:  strings.TrimSpace(v.GetString("APP_ADDR")),
		GinMode:  strings.TrimSpace(v.GetString("GIN_MODE")),
		LogLevel: strings.TrimSpace(v.GetString("LOG_LEVEL")),
		Timezone: strings.TrimSpace(v.GetString("APP_TIMEZONE")),

		StorageDriver: strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER"))),
		DataDir:       strings.TrimSpace(v.GetString("DATA_DIR")),
		MySQLDSN:      strings.TrimSpace(v.GetString("MYSQL_DSN")),
		RedisAddr:     strings.TrimSpace(v.GetString("REDIS_ADDR")),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),
		RedisPrefix:   v.GetString("REDIS_PREFIX"),

		KafkaBrokers: splitList(v.GetString("KAFKA_BROKERS")),
		KafkaTopic:   strings.TrimSpace(v.GetString("KAFKA_TOPIC")),

		StrictTransitions:    v.GetBool("BOOKING_STRICT_TRANSITIONS"),
		RequireDriverSession: v.GetBool("REQUIRE_DRIVER_SESSION"),
		CORSAllowedOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		StaticDir:            strings.TrimSpace(v.GetString("STATIC_DIR")),
		DefaultDriverID:      strings.TrimSpace(v.GetString("DEFAULT_DRIVER_ID")),
	}
}

// Location resolves APP_TIMEZONE, falling back to the host zone.
func (e Env) Location() *time.Location {
	if e.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(e.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func splitList(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
