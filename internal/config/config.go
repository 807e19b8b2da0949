package config

import (
	"github.com/maxviazov/mghl-recap-service/internal/logger"
	"github.com/maxviazov/mghl-recap-service/internal/recap"
)

type Config struct {
	App      AppConfig           `mapstructure:"app"`
	Logger   logger.LoggerConfig `mapstructure:"logger"`
	Postgres PostgresConfig      `mapstructure:"postgres"`
	HTTP     HTTPConfig          `mapstructure:"http"`
	Recap    RecapConfig         `mapstructure:"recap"`
}

type AppConfig struct {
	Name    string `mapstructure:"name" validate:"required"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env"`
	Port    int    `mapstructure:"port" validate:"gt=0,lte=65535"`
}

// PostgresConfig either carries a full URL or the discrete connection parts.
// Durations are in seconds.
type PostgresConfig struct {
	URL               string `mapstructure:"url"`
	Host              string `mapstructure:"host"`
	Port              int    `mapstructure:"port"`
	User              string `mapstructure:"user"`
	Password          string `mapstructure:"password"`
	DBName            string `mapstructure:"db"`
	SSLMode           string `mapstructure:"sslmode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	MaxConns          int32  `mapstructure:"max_conns" validate:"gte=0"`
	MinConns          int32  `mapstructure:"min_conns" validate:"gte=0,ltefield=MaxConns"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime" validate:"gte=0"`
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time" validate:"gte=0"`
	HealthCheckPeriod int    `mapstructure:"health_check_period" validate:"gte=0"`
}

// HTTPConfig tunes the http.Server and the middleware chain. Timeouts are in seconds.
type HTTPConfig struct {
	ReadTimeout     int      `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout    int      `mapstructure:"write_timeout" validate:"gt=0"`
	IdleTimeout     int      `mapstructure:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout int      `mapstructure:"shutdown_timeout" validate:"gt=0"`
	CORSOrigins     []string `mapstructure:"cors_origins"`
	// RecapRate is the sustained number of recap generations per second; RecapBurst the bucket size.
	RecapRate  float64 `mapstructure:"recap_rate" validate:"gt=0"`
	RecapBurst int     `mapstructure:"recap_burst" validate:"gt=0"`
}

type RecapConfig struct {
	// WindowHours is the trailing window of completed matches included in a recap.
	WindowHours   int `mapstructure:"window_hours" validate:"gt=0"`
	recap.Options `mapstructure:",squash"`
}

func defaults() Config {
	return Config{
		App: AppConfig{Name: "mghl-recap-service", Version: "0.1.0", Env: "dev", Port: 8080},
		Postgres: PostgresConfig{
			Host:              "localhost",
			Port:              5432,
			SSLMode:           "disable",
			MaxConns:          10,
			MinConns:          1,
			MaxConnLifetime:   3600,
			MaxConnIdleTime:   300,
			HealthCheckPeriod: 30,
		},
		HTTP: HTTPConfig{
			ReadTimeout:     10,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			CORSOrigins:     []string{"*"},
			RecapRate:       2,
			RecapBurst:      5,
		},
		Recap: RecapConfig{WindowHours: 48, Options: recap.DefaultOptions()},
	}
}
