package config

import (
	"errors"
	"fmt"
	"time"

	"karltracker/internal/repository"

	"github.com/caarlos0/env/v11"
)

const (
	MarkerBackendFile     = "file"
	MarkerBackendPostgres = "postgres"
	MarkerBackendSQLite   = "sqlite"
)

type Config struct {
	Repo     repository.Config `envPrefix:"REPO_"`
	LogLevel string            `env:"LOGGER_LEVEL" envDefault:"debug"`
	Port     string            `env:"PORT" envDefault:"3000"`

	DiscordToken string `env:"DISCORD_TOKEN,required,notEmpty"`
	ClientID     string `env:"CLIENT_ID" envDefault:""`
	GuildID      string `env:"GUILD_ID" envDefault:""`
	ChannelID    string `env:"CHANNEL_ID,required,notEmpty"`

	RiotAPIKey      string        `env:"RIOT_API_KEY,required,notEmpty"`
	SummonerName    string        `env:"SUMMONER_NAME,required,notEmpty"`
	RiotTagLine     string        `env:"RIOT_TAG_LINE" envDefault:"EUNE"`
	RegionalRouting string        `env:"REGIONAL_ROUTING" envDefault:"europe"`
	PlatformRouting string        `env:"PLATFORM_ROUTING" envDefault:"eun1"`
	RiotHTTPTimeout time.Duration `env:"RIOT_HTTP_TIMEOUT" envDefault:"10s"`
	PollInterval    time.Duration `env:"POLL_INTERVAL" envDefault:"60s"`

	MarkerBackend string `env:"MARKER_BACKEND" envDefault:"file"`
	MarkerFile    string `env:"MARKER_FILE" envDefault:"lastMatchId.txt"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"data/karltracker.db"`
}

func ReadEnvConfig(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// Validate checks the settings env tags cannot express.
func (c *Config) Validate() error {
	var errs []error

	switch c.MarkerBackend {
	case MarkerBackendFile, MarkerBackendPostgres, MarkerBackendSQLite:
	default:
		errs = append(errs, fmt.Errorf("MARKER_BACKEND must be one of %q, %q, %q; got %q",
			MarkerBackendFile, MarkerBackendPostgres, MarkerBackendSQLite, c.MarkerBackend))
	}

	if c.PollInterval <= 0 {
		errs = append(errs, errors.New("POLL_INTERVAL must be positive"))
	}

	return errors.Join(errs...)
}

// DeployConfig is the subset cmd/deploy needs to register commands.
type DeployConfig struct {
	LogLevel     string `env:"LOGGER_LEVEL" envDefault:"debug"`
	DiscordToken string `env:"DISCORD_TOKEN,required,notEmpty"`
	ClientID     string `env:"CLIENT_ID" envDefault:""`
	GuildID      string `env:"GUILD_ID" envDefault:""`
}

func ReadDeployConfig(cfg *DeployConfig) error {
	return env.Parse(cfg)
}
