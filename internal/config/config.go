package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName          string
	AppEnv           string
	AppPort          string
	DatabaseURL      string
	RedisURL         string
	JWTSecret        string
	StatsCacheTTL    time.Duration
	StudentIDOffset  uint
	DefaultCourseFee int64
	SeedEnabled      bool
	SeedToken        string
	PaymentRateMax   int
	PaymentRateWin   time.Duration
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("INSTITUTE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Institute API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("stats.cache_ttl", "5m")
	v.SetDefault("student.id_offset", 1000)
	v.SetDefault("default.course_fee", 2000)
	v.SetDefault("seed.enabled", false)
	v.SetDefault("payment.rate_max", 30)
	v.SetDefault("payment.rate_window", "1m")

	ttl, err := time.ParseDuration(v.GetString("stats.cache_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid stats cache ttl: %w", err)
	}

	rateWindow, err := time.ParseDuration(v.GetString("payment.rate_window"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid payment rate window: %w", err)
	}

	cfg := Config{
		AppName:          v.GetString("app.name"),
		AppEnv:           v.GetString("app.env"),
		AppPort:          v.GetString("app.port"),
		DatabaseURL:      v.GetString("database.url"),
		RedisURL:         v.GetString("redis.url"),
		JWTSecret:        v.GetString("jwt.secret"),
		StatsCacheTTL:    ttl,
		StudentIDOffset:  v.GetUint("student.id_offset"),
		DefaultCourseFee: v.GetInt64("default.course_fee"),
		SeedEnabled:      v.GetBool("seed.enabled"),
		SeedToken:        v.GetString("seed.token"),
		PaymentRateMax:   v.GetInt("payment.rate_max"),
		PaymentRateWin:   rateWindow,
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided")
	}

	if cfg.DefaultCourseFee <= 0 {
		cfg.DefaultCourseFee = 2000
	}

	return cfg, nil
}
