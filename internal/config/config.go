package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"bucksbot"`
		Port int    `envconfig:"PORT" default:"8080"`
		Env  string `envconfig:"APP_ENV" default:"dev"`
	}

	Snapshot struct {
		Path         string        `envconfig:"SNAPSHOT_PATH" default:"bank.json"`
		SaveInterval time.Duration `envconfig:"SNAPSHOT_SAVE_INTERVAL" default:"6m"`
	}

	Bot struct {
		// Trigger is the word a comment must contain to address the bot.
		Trigger    string   `envconfig:"BOT_TRIGGER" default:"!bucks"`
		Name       string   `envconfig:"BOT_NAME" default:"bucksbot"`
		Moderators []string `envconfig:"BOT_MODERATORS"`
	}

	Auth struct {
		Secret   string        `envconfig:"JWT_SECRET" default:"changeme-secret"`
		Issuer   string        `envconfig:"JWT_ISSUER" default:"bucksbot"`
		TokenTTL time.Duration `envconfig:"JWT_TTL" default:"24h"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
