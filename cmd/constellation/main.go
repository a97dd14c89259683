package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/constellation/cmd/constellation/commands"
)

var rootCmd = &cobra.Command{
	Use:   "constellation",
	Short: "Artist similarity graphs and the Connections path game",
	Long: `constellation turns a ranked list of favourite artists into a
degree-bounded similarity graph and lets you play "Connections" on it:
walk from a start artist to a target artist one similar artist at a time.

Configuration sources (lowest precedence first):
  1. Built-in defaults
  2. ./constellation.toml or ~/.constellation/constellation.toml (or --config)
  3. CONSTELLATION_* environment variables
  4. Command line flags

Examples:
  constellation build --artists artists.yaml          # Summarise the graph
  constellation build --artists artists.yaml --json   # Dump the graph as JSON
  constellation play --artists artists.yaml           # Play a casual game
  constellation config show                           # Show effective configuration`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return commands.Init(cmd)
	},
}

func init() {
	commands.RegisterFlags(rootCmd)
	rootCmd.AddCommand(commands.BuildCmd)
	rootCmd.AddCommand(commands.PlayCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	commands.Sync()
	if err != nil {
		os.Exit(1)
	}
}
