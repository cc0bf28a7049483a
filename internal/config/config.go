package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// Config holds the shell's tunables. Every field has a working default so
// the shell runs with no config file at all.
type Config struct {
	Prompt      string   `yaml:"prompt"`
	HistoryFile string   `yaml:"history_file"`
	HomeDir     string   `yaml:"home_dir"`
	MaxLineLen  int      `yaml:"max_line_len"`
	MaxArgs     int      `yaml:"max_args"`
	MaxJobs     int      `yaml:"max_jobs"` // 0 means unbounded
	Plugins     []string `yaml:"plugins"`
}

// Default returns the configuration used when no file is given.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := cfg.fillDefaults(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads a YAML config file and fills in defaults for anything unset.
// A missing file is not an error; it yields pure defaults.
func Load(file string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return Default()
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.fillDefaults(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) fillDefaults() error {
	if cfg.HomeDir == "" {
		if home := os.Getenv("HOME"); home != "" {
			cfg.HomeDir = home
		} else {
			var err error
			cfg.HomeDir, err = os.UserHomeDir()
			if err != nil {
				return err
			}
		}
	}

	if cfg.Prompt == "" {
		cfg.Prompt = ": "
	}
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = filepath.Join(cfg.HomeDir, ".smallsh_history")
	}
	if cfg.MaxLineLen == 0 {
		cfg.MaxLineLen = 2048
	}
	if cfg.MaxArgs == 0 {
		cfg.MaxArgs = 512
	}
	return nil
}
