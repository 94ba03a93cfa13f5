package config

import (
	"github.com/Heidric/contact-intake/pkg/log"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/vrischmann/envconfig"
)

const (
	defaultServerAddress = ":8080"
	defaultMaxBodyBytes  = 64 << 10
)

type Config struct {
	Logger             *log.Config
	ServerAddress      string   `envconfig:"optional"`
	MaxBodyBytes       int64    `envconfig:"optional"`
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS,optional"`
}

func NewConfig() (*Config, error) {
	c := &Config{
		Logger: &log.Config{},
	}

	_ = godotenv.Load()

	if err := envconfig.Init(c); err != nil {
		return nil, errors.Wrap(err, "init config")
	}

	c.SetDefault()

	return c, nil
}

func (c *Config) SetDefault() *Config {
	if c.Logger == nil {
		c.Logger = &log.Config{}
	}
	c.Logger.SetDefault()

	if c.ServerAddress == "" {
		c.ServerAddress = defaultServerAddress
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = defaultMaxBodyBytes
	}

	return c
}
