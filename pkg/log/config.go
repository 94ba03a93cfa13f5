package log

import "github.com/rs/zerolog"

type Config struct {
	Level  string `envconfig:"optional"`
	Pretty bool   `envconfig:"optional"`
}

// SetDefault fills unset fields. It returns the receiver so it can be chained.
func (c *Config) SetDefault() *Config {
	if c.Level == "" {
		c.Level = zerolog.LevelInfoValue
	}
	return c
}
