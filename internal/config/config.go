package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Source SourceConfig `toml:"source"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

// SourceConfig names where the source document lives. Exactly one of the
// three must be set.
type SourceConfig struct {
	File        string `toml:"file"`
	URL         string `toml:"url"`
	PostgresDSN string `toml:"postgres_dsn"`
}

var ErrAmbiguousSource = errors.New("configure exactly one of source file, url or postgres_dsn")

func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{Addr: ":8080"},
		Source: SourceConfig{File: "data/pulse.json"},
	}
}

// Load reads config.toml next to the binary (if present) and applies env
// overrides on top of the defaults.
func Load() (*AppConfig, error) {
	cfg := DefaultConfig()

	path := filepath.Join(exeDir(), "config.toml")
	data, err := os.ReadFile(path)
	if err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if v := os.Getenv("PULSE_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("PULSE_SOURCE_FILE"); v != "" {
		cfg.Source = SourceConfig{File: v}
	}
	if v := os.Getenv("PULSE_SOURCE_URL"); v != "" {
		cfg.Source = SourceConfig{URL: v}
	}
	if v := os.Getenv("PULSE_POSTGRES_DSN"); v != "" {
		cfg.Source = SourceConfig{PostgresDSN: v}
	}

	if err := cfg.Source.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s SourceConfig) validate() error {
	set := 0
	if s.File != "" {
		set++
	}
	if s.URL != "" {
		set++
	}
	if s.PostgresDSN != "" {
		set++
	}
	if set != 1 {
		return ErrAmbiguousSource
	}
	return nil
}

func exeDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
