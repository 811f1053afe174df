package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds everything supplied through the environment. Static guild
// tables (channels, roles, languages) live in guild.go and are compiled in.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required"`
	StorageDir   string `env:"STORAGE_DIR" envDefault:"data"`

	TranslateURL     string        `env:"TRANSLATE_URL" envDefault:"https://libretranslate.de/translate"`
	TranslateTimeout time.Duration `env:"TRANSLATE_TIMEOUT" envDefault:"10s"`

	InactivityThreshold time.Duration `env:"INACTIVITY_THRESHOLD" envDefault:"720h"`
	SweepInterval       time.Duration `env:"SWEEP_INTERVAL" envDefault:"24h"`

	InitSlashCommands bool `env:"INIT_SLASH_COMMANDS" envDefault:"true"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`
}

// New reads the environment, loading .env first if present.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using system environment")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
