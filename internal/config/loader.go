package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ErrMissingCredentials is returned when neither a database URL nor user+db+password are configured.
var ErrMissingCredentials = errors.New("postgres credentials are required (APP_POSTGRES_URL or APP_POSTGRES_USER/PASSWORD/DB)")

// secrets are never read from the YAML file alone; each key accepts the canonical APP_* name plus common aliases.
var secrets = map[string][]string{
	"postgres.url":      {"APP_POSTGRES_URL", "DATABASE_URL"},
	"postgres.user":     {"APP_POSTGRES_USER", "POSTGRES_USER", "DB_USER"},
	"postgres.password": {"APP_POSTGRES_PASSWORD", "POSTGRES_PASSWORD", "DB_PASSWORD"},
	"postgres.db":       {"APP_POSTGRES_DB", "POSTGRES_DB", "DB_NAME"},
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	for key, envs := range secrets {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}

	config := defaults()
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks struct rules and the required database credentials.
func (c *Config) Validate() error {
	if !c.Postgres.hasCredentials() {
		return ErrMissingCredentials
	}
	v := validator.New()
	for name, section := range map[string]any{
		"app":      c.App,
		"postgres": c.Postgres,
		"http":     c.HTTP,
		"recap":    c.Recap,
	} {
		if err := v.Struct(section); err != nil {
			return fmt.Errorf("config %s validation error: %w", name, err)
		}
	}
	return nil
}

func (p PostgresConfig) hasCredentials() bool {
	if strings.TrimSpace(p.URL) != "" {
		return true
	}
	return p.User != "" && p.Password != "" && p.DBName != ""
}
