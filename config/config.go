package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/jsphweid/fifths/constants"
	"github.com/jsphweid/fifths/note"
)

type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

type StorageConfig struct {
	Backend string       `yaml:"backend"` // memory|file|sqlite|dynamodb
	Path    string       `yaml:"path"`    // directory for file, database file for sqlite
	Key     string       `yaml:"key"`
	Dynamo  DynamoConfig `yaml:"dynamo"`
}

type DynamoConfig struct {
	Endpoint string `yaml:"endpoint"`
	Region   string `yaml:"region"`
	Table    string `yaml:"table"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type DisplayConfig struct {
	Notation string `yaml:"notation"` // sharp|flat
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: "file",
			Path:    constants.GetDataDir(),
			Key:     constants.StorageKey,
			Dynamo: DynamoConfig{
				Endpoint: "http://localhost:8000",
				Region:   "localhost",
				Table:    "fifths-progressions",
			},
		},
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
		},
		Display: DisplayConfig{Notation: "sharp"},
		Log:     LogConfig{Level: "info"},
	}
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "memory", "file", "sqlite", "dynamodb":
	default:
		return fmt.Errorf("storage.backend must be one of memory, file, sqlite, dynamodb, got %q", c.Storage.Backend)
	}
	if c.Storage.Backend != "memory" && c.Storage.Backend != "dynamodb" && c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required for the %s backend", c.Storage.Backend)
	}
	if c.Storage.Backend == "dynamodb" && c.Storage.Dynamo.Table == "" {
		return fmt.Errorf("storage.dynamo.table is required for the dynamodb backend")
	}
	if strings.TrimSpace(c.Storage.Key) == "" {
		return fmt.Errorf("storage.key cannot be empty")
	}
	if _, err := note.ParseNotation(c.Display.Notation); err != nil {
		return fmt.Errorf("display.notation: %w", err)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// UseSharp is the startup notation. Validate has already checked it.
func (c *Config) UseSharp() bool {
	useSharp, err := note.ParseNotation(c.Display.Notation)
	if err != nil {
		return true
	}
	return useSharp
}
