package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all environment-provided settings. Secrets are injected into
// the auth layer and database from here rather than read ambiently.
type Config struct {
	Port string `envconfig:"PORT" default:"3001"`

	DatabaseURL string `envconfig:"DATABASE_URL"`
	DBHost      string `envconfig:"DB_HOST" default:"localhost"`
	DBUser      string `envconfig:"DB_USER" default:"postgres"`
	DBPassword  string `envconfig:"DB_PASSWORD"`
	DBName      string `envconfig:"DB_NAME" default:"workshop"`
	DBPort      string `envconfig:"DB_PORT" default:"5432"`

	AppPassword string `envconfig:"APP_PASSWORD" required:"true"`
	JWTSecret   string `envconfig:"JWT_SECRET" required:"true"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DSN returns DATABASE_URL when set, otherwise a DSN assembled from the
// discrete DB_* variables.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}
