package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config shapes the runner only. The engine itself is configured by
// exactly its three construction parameters; everything else here belongs
// to the wrapper layer.
type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Board    Board    `yaml:"board"`
	SelfPlay SelfPlay `yaml:"self-play"`
}

type Board struct {
	Width   int `yaml:"width" env:"BOARD_WIDTH" env-default:"7"`
	Height  int `yaml:"height" env:"BOARD_HEIGHT" env-default:"6"`
	Connect int `yaml:"connect" env:"BOARD_CONNECT" env-default:"4"`
}

type SelfPlay struct {
	Games   int    `yaml:"games" env:"SELFPLAY_GAMES" env-default:"100"`
	Workers int    `yaml:"workers" env:"SELFPLAY_WORKERS" env-default:"8"`
	Seed    uint64 `yaml:"seed" env:"SELFPLAY_SEED" env-default:"1"`
	OutDir  string `yaml:"out-dir" env:"SELFPLAY_OUT_DIR" env-default:"results"`
}

// MustLoad reads the config file at path, or environment variables with
// their defaults when path is empty.
func MustLoad(path string) *Config {
	cfg := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(cfg)
	} else {
		err = cleanenv.ReadConfig(path, cfg)
	}
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return cfg
}
