// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server    ServerConfig     `toml:"server"`
	Database  DatabaseConfig   `toml:"database"`
	ImageHost *ImageHostConfig `toml:"imagehost"`
}

type ServerConfig struct {
	Host          string `toml:"host"`
	Port          int    `toml:"port"`
	LogLevel      string `toml:"log_level"`
	AdminPassword string `toml:"admin_password"`
	CORSOrigin    string `toml:"cors_origin"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

// ImageHostConfig configures the external image-hosting service. When the
// table is absent the upload endpoints are disabled.
type ImageHostConfig struct {
	URL            string `toml:"url"`
	Cloud          string `toml:"cloud"`
	APIKey         string `toml:"api_key"`
	PosterFolder   string `toml:"poster_folder"`
	PreviewsFolder string `toml:"previews_folder"`
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Apply defaults
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = "info"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "./data/reelcat.db"
	}
	if cfg.ImageHost != nil {
		if cfg.ImageHost.PosterFolder == "" {
			cfg.ImageHost.PosterFolder = "movie_posters"
		}
		if cfg.ImageHost.PreviewsFolder == "" {
			cfg.ImageHost.PreviewsFolder = "preview_images"
		}
	}

	return &cfg, nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
