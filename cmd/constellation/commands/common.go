// Package commands holds the cobra commands of the constellation CLI.
package commands

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/constellation/artist"
	"github.com/katalvlaran/constellation/config"
	"github.com/katalvlaran/constellation/logger"
	"github.com/katalvlaran/constellation/snapshot"
)

var (
	configPath string
	logLevel   string
	jsonLogs   bool

	// cfg is loaded once by Init.
	cfg *config.Config
)

// RegisterFlags adds the global flags to root.
func RegisterFlags(root *cobra.Command) {
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to a TOML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides log.level)")
	root.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit JSON logs on stderr")
}

// Init loads configuration and the global logger before any command runs.
func Init(cmd *cobra.Command) error {
	c, err := config.Load(configPath)
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	level := c.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	if err := logger.Initialize(c.Log.JSON || jsonLogs, level); err != nil {
		return errors.Wrap(err, "initialize logger")
	}
	cfg = c
	logger.Logger.Debugw("configuration loaded", "command", cmd.Name(), "config", configPath)
	return nil
}

// Sync flushes the logger.
func Sync() { logger.Sync() }

func currentConfig() *config.Config {
	if cfg == nil {
		cfg = config.Default()
	}
	return cfg
}

func loadArtists(path string) (artist.Set, error) {
	if path == "" {
		return artist.Set{}, errors.WithHint(errors.New("no artist file"), "pass --artists <file.yaml>")
	}
	return artist.LoadFile(path)
}

// buildSnapshot builds the graph for set, with a spinner when interactive.
func buildSnapshot(ctx context.Context, set artist.Set, interactive bool) (*snapshot.Snapshot, error) {
	c := currentConfig()
	log := logger.Named("cli")

	var spinner *pterm.SpinnerPrinter
	if interactive {
		spinner, _ = pterm.DefaultSpinner.Start("Building artist graph...")
	}
	progress := func(e snapshot.Event) {
		log.Debugw("build progress", "stage", string(e.Stage), "artists", e.Artists,
			"nodes", e.Nodes, "edges", e.Edges, "clusters", e.Clusters)
		if spinner != nil {
			spinner.UpdateText(fmt.Sprintf("Building artist graph: %s", e.Stage))
		}
	}

	store, err := snapshot.NewStore(append(c.StoreOptions(set), snapshot.WithProgress(progress))...)
	if err != nil {
		return nil, err
	}
	snap, err := store.Build(ctx, set.Artists)
	if err != nil {
		if spinner != nil {
			spinner.Fail(err.Error())
		}
		return nil, err
	}
	if spinner != nil {
		spinner.Success(fmt.Sprintf("Built %d artists, %d connections", len(snap.Graph.Nodes), len(snap.Graph.Edges)))
	}
	return snap, nil
}
