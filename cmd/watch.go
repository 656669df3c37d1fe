package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/bep/debounce"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/jsphweid/fifths/app"
	"github.com/jsphweid/fifths/storage"
	"github.com/jsphweid/fifths/store"
	"github.com/spf13/cobra"
)

var watchDelay time.Duration

func init() {
	watchCmd.Flags().StringVar(&outDirFlag, "out", "./diagrams", "directory for the SVG files")
	watchCmd.Flags().DurationVar(&watchDelay, "delay", 200*time.Millisecond, "quiet period before re-exporting")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-exports diagrams whenever the stored list changes",
	Long: `Watches the file backend and rewrites the SVG directory every time the
progression list is saved or cleared by another fifths process.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Storage.Backend != "file" {
			return fmt.Errorf("watch only works with the file backend, not %s", cfg.Storage.Backend)
		}
		fs, err := storage.NewFile(cfg.Storage.Path)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return watchAndExport(ctx, fs, cfg.Storage.Key, cfg.UseSharp(), outDirFlag, watchDelay)
	},
}

// watchAndExport exports once, then again after every burst of changes to
// the key's file. It returns when ctx is done.
func watchAndExport(ctx context.Context, fs *storage.File, key string, useSharp bool, outDir string, delay time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			log.Warn("Failed to close watcher", "err", err)
		}
	}()

	// the directory, not the file: saves replace it by rename
	if err := watcher.Add(fs.Dir()); err != nil {
		return fmt.Errorf("failed to watch %s: %w", fs.Dir(), err)
	}

	var mu sync.Mutex
	export := func() {
		mu.Lock()
		defer mu.Unlock()
		a := app.New(store.New(fs, key), useSharp)
		if _, err := exportAll(a, outDir); err != nil {
			log.Error("Export failed", "err", err)
		}
	}
	export()

	debounced := debounce.New(delay)
	target := filepath.Clean(fs.Path(key))
	log.Info("Watching for changes", "path", target, "out", outDir)

	for {
		select {
		case <-ctx.Done():
			// drop a pending export and wait out a running one
			debounced(func() {})
			mu.Lock()
			mu.Unlock()
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				log.Debug("Store changed", "op", event.Op.String())
				debounced(export)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			log.Warn("Watch error", "err", err)
		}
	}
}
