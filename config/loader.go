package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// ConfigPaths are searched lowest priority first, each overriding the last.
var ConfigPaths = []string{
	"~/.config/fifths/config.yaml",
	"./.fifths.yaml",
}

type Loader struct {
	configPaths []string
	getenv      func(string) string
}

func NewLoader() *Loader {
	return &Loader{configPaths: ConfigPaths, getenv: os.Getenv}
}

// Load is Resolve followed by Validate.
func (l *Loader) Load(customPath string) (*Config, error) {
	config, err := l.Resolve(customPath)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// Resolve builds the configuration from defaults, then config files (or only
// customPath when given), then FIFTHS_* environment variables. The result is
// not validated, so callers can layer flags on top first.
func (l *Loader) Resolve(customPath string) (*Config, error) {
	config := DefaultConfig()

	if customPath != "" {
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		for _, path := range l.configPaths {
			expanded := expandPath(path)
			if !fileExists(expanded) {
				continue
			}
			if err := l.loadFromFile(config, expanded); err != nil {
				log.Warn("Skipping config file", "path", expanded, "err", err)
			}
		}
	}

	l.applyEnvOverrides(config)
	return config, nil
}

// loadFromFile decodes on top of the existing values, so keys missing from
// the file keep what they had.
func (l *Loader) loadFromFile(config *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

func (l *Loader) applyEnvOverrides(config *Config) {
	envMappings := map[string]*string{
		"FIFTHS_STORAGE_BACKEND":  &config.Storage.Backend,
		"FIFTHS_STORAGE_PATH":     &config.Storage.Path,
		"FIFTHS_STORAGE_KEY":      &config.Storage.Key,
		"FIFTHS_DYNAMO_ENDPOINT":  &config.Storage.Dynamo.Endpoint,
		"FIFTHS_DYNAMO_REGION":    &config.Storage.Dynamo.Region,
		"FIFTHS_DYNAMO_TABLE":     &config.Storage.Dynamo.Table,
		"FIFTHS_SERVER_ADDR":      &config.Server.Addr,
		"FIFTHS_DISPLAY_NOTATION": &config.Display.Notation,
		"FIFTHS_LOG_LEVEL":        &config.Log.Level,
	}
	for envVar, field := range envMappings {
		if v := l.getenv(envVar); v != "" {
			*field = v
		}
	}

	if origins := l.getenv("FIFTHS_SERVER_ALLOWED_ORIGINS"); origins != "" {
		config.Server.AllowedOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				config.Server.AllowedOrigins = append(config.Server.AllowedOrigins, o)
			}
		}
	}
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
