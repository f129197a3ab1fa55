package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// global flags
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "mclog",
	Short: "Extract structured events and stats from a Minecraft server",
	Long: `mclog tails a Minecraft server log, classifies lines into structured
events (deaths, advancements, joins, chat, ...), reads the server's
per-player stat snapshots, and either prints them or stores them in
Postgres.

Commands:
  collect   Run the periodic collection loop (log events + stat snapshots)
  watch     Follow the live log and print classified events
  classify  Classify an existing log file in one pass`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to YAML config file (environment variables still override)")

	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(classifyCmd)
}

// newLogger builds the CLI logger. Verbose mode enables debug output.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
