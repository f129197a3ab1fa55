package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mclog/mclog-go/internal/config"
	"github.com/mclog/mclog-go/internal/serverdir"
	"github.com/mclog/mclog-go/pkg/mclog"
)

var (
	// watch flags
	watchLogFile      string
	watchFormat       string
	watchTypes        []string
	watchExcludeTypes []string
	watchRaw          bool
	watchFromStart    bool
	watchPatterns     []string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow the server log and output classified events",
	Long: `Follow the server log file in real-time and output classified events.

Events are output as JSON Lines by default (one JSON object per line),
which makes it easy to process with tools like jq.

Examples:
  # Watch the default server log (/opt/minecraft/logs/latest.log)
  mclog watch

  # Specify the log file
  mclog watch --log-file /srv/mc/logs/latest.log

  # Output only death and chat events
  mclog watch --types death,chat

  # Human-readable output
  mclog watch --format pretty

  # Replay the whole file first
  mclog watch --from-start

  # Add custom YAML patterns on top of the built-in classifier
  mclog watch --patterns my_patterns.yaml

  # Pipe to jq for filtering
  mclog watch | jq 'select(.event_type == "death")'`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchLogFile, "log-file", "l", "",
		"Server log file (default: <server_dir>/logs/latest.log)")
	watchCmd.Flags().StringVarP(&watchFormat, "format", "f", "jsonl",
		"Output format: jsonl, pretty")
	watchCmd.Flags().StringSliceVarP(&watchTypes, "types", "t", nil,
		"Event types to show (comma-separated, e.g. death,join,chat)")
	watchCmd.Flags().StringSliceVar(&watchExcludeTypes, "exclude-types", nil,
		"Event types to hide (comma-separated)")
	watchCmd.Flags().BoolVar(&watchRaw, "raw", false,
		"Include raw log messages in output")
	watchCmd.Flags().BoolVar(&watchFromStart, "from-start", false,
		"Read the log file from the beginning instead of only new lines")
	watchCmd.Flags().StringSliceVarP(&watchPatterns, "patterns", "p", nil,
		"YAML pattern files with custom event definitions")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !ValidFormats[watchFormat] {
		return fmt.Errorf("unknown format: %s", watchFormat)
	}

	includes, err := NormalizeEventTypes(watchTypes)
	if err != nil {
		return err
	}
	excludes, err := NormalizeEventTypes(watchExcludeTypes)
	if err != nil {
		return err
	}
	if err := RejectOverlap(includes, excludes); err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logFile := watchLogFile
	if logFile == "" {
		logFile = cfg.LogFile
	}
	if logFile == "" {
		// No explicit path anywhere: resolve the server install and fail
		// fast if it does not exist, rather than tailing a phantom path.
		layout, err := serverdir.Find(cfg.ServerDir)
		if err != nil {
			return err
		}
		logFile = layout.LogFile
	}

	opts := []mclog.WatchOption{
		mclog.WithIncludeRaw(watchRaw),
		mclog.WithFilter(includes, excludes),
	}
	if watchFromStart {
		opts = append(opts, mclog.WithFromStart())
	}
	if verbose {
		opts = append(opts, mclog.WithLogger(newLogger()))
	}

	// Custom patterns run alongside the built-in classifier.
	cl, err := buildClassifier(watchPatterns)
	if err != nil {
		return err
	}
	if cl != nil {
		opts = append(opts, mclog.WithClassifier(cl))
	}

	watcher, err := mclog.NewWatcher(logFile, opts...)
	if err != nil {
		return err
	}
	defer watcher.Close()

	events, errs, err := watcher.Watch(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil // Channel closed
			}
			if err := OutputEvent(watchFormat, ev, os.Stdout); err != nil {
				return fmt.Errorf("output error: %w", err)
			}

		case err, ok := <-errs:
			if !ok {
				return nil // Channel closed
			}
			if verbose {
				fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			}

		case <-ctx.Done():
			return nil
		}
	}
}
