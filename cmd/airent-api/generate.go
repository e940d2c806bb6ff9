package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ChrisWren/airent-api/compiler/gen"
	"github.com/ChrisWren/airent-api/compiler/load"
)

// debounceInterval coalesces the burst of events editors emit on save.
const debounceInterval = 200 * time.Millisecond

var generateFlags struct {
	workers int
	watch   bool
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Augment the schemas and write the entity modules",
	Long: `Load the config and the entity schemas, augment them and write the
generated modules under the entity path.

Examples:
  # Generate once
  airent-api generate

  # Regenerate whenever a schema changes
  airent-api generate --watch`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVarP(&generateFlags.workers, "workers", "w", 0, "number of parallel file writers (default GOMAXPROCS)")
	generateCmd.Flags().BoolVar(&generateFlags.watch, "watch", false, "regenerate when a schema file changes")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := generate(ctx, cfgFile, logger); err != nil {
		return err
	}
	if !generateFlags.watch {
		return nil
	}
	return watch(ctx, cfgFile, logger)
}

// generate runs one load, augment and write cycle.
func generate(ctx context.Context, configPath string, logger *slog.Logger) error {
	start := time.Now()
	g, err := load.LoadGraph(configPath)
	if err != nil {
		return err
	}
	if err := gen.Augment(g, gen.WithVerbose(verbose), gen.WithLogger(logger)); err != nil {
		return err
	}
	w := gen.NewFragmentWriter(g, filepath.Dir(configPath)).
		WithWorkers(generateFlags.workers).
		WithLogger(logger)
	if err := w.WriteAll(ctx); err != nil {
		return err
	}
	m := w.Metrics()
	logger.Info("generated entities",
		"entities", len(g.Entities),
		"written", m.FilesWritten,
		"skipped", m.FilesSkipped,
		"bytes", m.TotalBytes,
		"duration", time.Since(start),
	)
	return nil
}

// watch regenerates on every change of the schema directory until the
// context is cancelled. Failed runs are logged and do not stop watching.
func watch(ctx context.Context, configPath string, logger *slog.Logger) error {
	cfg, err := load.LoadConfig(configPath)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	dir := load.SchemaDir(configPath, cfg)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch path: %w", err)
	}
	logger.Info("watching schemas", "path", dir)

	var (
		timer   *time.Timer
		trigger = make(chan struct{}, 1)
	)
	for {
		select {
		case <-ctx.Done():
			logger.Info("watcher stopped")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("schema event", "path", event.Name, "op", event.Op.String())
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceInterval, func() {
				select {
				case trigger <- struct{}{}:
				default:
				}
			})
		case <-trigger:
			if err := generate(ctx, configPath, logger); err != nil {
				logger.Error("generation failed", "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			logger.Error("watcher error", "error", err)
		}
	}
}
