package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/jsphweid/fifths/app"
	"github.com/jsphweid/fifths/config"
	"github.com/jsphweid/fifths/constants"
	"github.com/jsphweid/fifths/storage"
	"github.com/jsphweid/fifths/store"
	"github.com/spf13/cobra"
)

var (
	cfg        *config.Config
	configPath string
	logLevel   string
	backend    string
	notation   string
)

var rootCmd = &cobra.Command{
	Use:   "fifths",
	Short: "Circle of fifths progression diagrams",
	Long: `fifths keeps a list of melody/chord progressions and draws each one
on the circle of fifths as an SVG diagram.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = constants.GetConfigPath()
		}
		// flags win over file and env, so validate only after applying them
		loaded, err := config.NewLoader().Resolve(path)
		if err != nil {
			return err
		}
		if backend != "" {
			loaded.Storage.Backend = backend
		}
		if notation != "" {
			loaded.Display.Notation = notation
		}
		if logLevel != "" {
			loaded.Log.Level = logLevel
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("configuration validation failed: %w", err)
		}
		level, _ := log.ParseLevel(loaded.Log.Level)
		log.SetLevel(level)
		cfg = loaded
		return nil
	},
}

func init() {
	log.SetOutput(os.Stderr)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./.fifths.yaml or ~/.config/fifths/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "storage backend: memory, file, sqlite or dynamodb")
	rootCmd.PersistentFlags().StringVar(&notation, "notation", "", "sharp or flat note names")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// openApp wires storage, store and app from the loaded config. The returned
// func closes the storage.
func openApp() (*app.App, func(), error) {
	s, err := storage.Open(cfg.Storage)
	if err != nil {
		return nil, nil, err
	}
	a := app.New(store.New(s, cfg.Storage.Key), cfg.UseSharp())
	closeFn := func() {
		if err := s.Close(); err != nil {
			log.Warn("Could not close storage", "err", err)
		}
	}
	return a, closeFn, nil
}

func parseIndex(arg string) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("index must be a number, got %q", arg)
	}
	return i, nil
}
