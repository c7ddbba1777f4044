package config

import (
	"fmt"

	"cribbage/game"
	"cribbage/searcher"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	MinDiscardSimulations = 200
	MaxDiscardSimulations = 2000
	MinPeggingSimulations = 60
	MaxPeggingSimulations = 500
)

type Config struct {
	LogLevel           string `yaml:"log-level" env:"CRIBBAGE_LOG_LEVEL" env-default:"info"`
	Seed               uint64 `yaml:"seed" env:"CRIBBAGE_SEED" env-default:"1"`
	DiscardSimulations int    `yaml:"discard-simulations" env:"CRIBBAGE_DISCARD_SIMULATIONS" env-default:"500"`
	PeggingSimulations int    `yaml:"pegging-simulations" env:"CRIBBAGE_PEGGING_SIMULATIONS" env-default:"200"`
	HouseBonus         bool   `yaml:"house-bonus" env:"CRIBBAGE_HOUSE_BONUS" env-default:"true"`
	MaxScore           int    `yaml:"max-score" env:"CRIBBAGE_MAX_SCORE" env-default:"120"`
	Games              int    `yaml:"games" env:"CRIBBAGE_GAMES" env-default:"30"`
	OutputDir          string `yaml:"output-dir" env:"CRIBBAGE_OUTPUT_DIR" env-default:"experiments"`
}

// Load reads the YAML file at path, or the environment when path is empty.
// A .env file in the working directory is loaded into the environment first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, config)
	} else {
		err = cleanenv.ReadEnv(config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

func (c *Config) Validate() error {
	if c.DiscardSimulations < MinDiscardSimulations || c.DiscardSimulations > MaxDiscardSimulations {
		return fmt.Errorf("discard simulations %d outside [%d, %d]",
			c.DiscardSimulations, MinDiscardSimulations, MaxDiscardSimulations)
	}
	if c.PeggingSimulations < MinPeggingSimulations || c.PeggingSimulations > MaxPeggingSimulations {
		return fmt.Errorf("pegging simulations %d outside [%d, %d]",
			c.PeggingSimulations, MinPeggingSimulations, MaxPeggingSimulations)
	}
	if c.MaxScore <= 0 {
		return fmt.Errorf("max score must be positive, got %d", c.MaxScore)
	}
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	return nil
}

func (c *Config) Rules() game.Rules {
	return &game.StandardRules{SevenEightNine: c.HouseBonus, TargetScore: c.MaxScore}
}

func (c *Config) SearcherOptions() []searcher.Option {
	return []searcher.Option{
		searcher.WithDiscardSimulations(c.DiscardSimulations),
		searcher.WithPeggingSimulations(c.PeggingSimulations),
	}
}
