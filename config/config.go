// Package config loads the agent configuration: built-in defaults, an
// optional TOML file, and a PORT environment override.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Config is the full agent configuration.
type Config struct {
	Server     Server     `toml:"server"`
	Agent      Agent      `toml:"agent"`
	Dictionary Dictionary `toml:"dictionary"`
}

// Server contains the HTTP listener configuration.
type Server struct {
	Port         int      `toml:"port"`
	ManifestPath string   `toml:"manifest_path"`
	CORSOrigins  []string `toml:"cors_origins"`
}

// Agent contains the agent identity.
type Agent struct {
	Name string `toml:"name"`
}

// Dictionary contains configuration for the Free Dictionary API.
type Dictionary struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: Server{
			Port:         8000,
			ManifestPath: ".well-known/agent.json",
			CORSOrigins:  []string{"http://localhost:5173", "http://localhost:3000"},
		},
		Agent: Agent{
			Name: "SmartDict Bot",
		},
		Dictionary: Dictionary{
			BaseURL:        "https://api.dictionaryapi.dev/api/v2/entries/en",
			TimeoutSeconds: 10,
		},
	}
}

// Load reads the config file at path and applies the PORT environment
// override. An empty path or a missing file loads defaults only.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Missing file is fine; defaults apply.
		case err != nil:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("config: invalid PORT %q", port)
		}
		cfg.Server.Port = n
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: port out of range: %d", c.Server.Port)
	}
	if c.Agent.Name == "" {
		return errors.New("config: agent name required")
	}
	if c.Dictionary.BaseURL == "" {
		return errors.New("config: dictionary base_url required")
	}
	if c.Dictionary.TimeoutSeconds <= 0 {
		return errors.New("config: dictionary timeout must be positive")
	}
	return nil
}
