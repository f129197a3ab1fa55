package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mclog/mclog-go/pkg/mclog"
)

var (
	// classify flags
	classifyFormat   string
	classifyTypes    []string
	classifyDate     string
	classifyPatterns []string
)

var classifyCmd = &cobra.Command{
	Use:   "classify <log-file>",
	Short: "Classify an existing log file in one pass",
	Long: `Classify every line of an existing log file and output the recognized
events, then exit.

Server logs carry only a time of day, not a date; by default the file's
lines are stamped with today's date. Use --date for archived logs.

Examples:
  # Classify today's log
  mclog classify /opt/minecraft/logs/latest.log

  # Classify an archived log with its original date
  mclog classify 2026-08-20-1.log --date 2026-08-20

  # Only deaths, human-readable
  mclog classify latest.log --types death --format pretty`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVarP(&classifyFormat, "format", "f", "jsonl",
		"Output format: jsonl, pretty")
	classifyCmd.Flags().StringSliceVarP(&classifyTypes, "types", "t", nil,
		"Event types to show (comma-separated, e.g. death,join,chat)")
	classifyCmd.Flags().StringVar(&classifyDate, "date", "",
		"Calendar date for the log's timestamps (YYYY-MM-DD, default today)")
	classifyCmd.Flags().StringSliceVarP(&classifyPatterns, "patterns", "p", nil,
		"YAML pattern files with custom event definitions")
}

func runClassify(cmd *cobra.Command, args []string) error {
	if !ValidFormats[classifyFormat] {
		return fmt.Errorf("unknown format: %s", classifyFormat)
	}

	includes, err := NormalizeEventTypes(classifyTypes)
	if err != nil {
		return err
	}
	typeFilter := make(map[string]bool, len(includes))
	for _, t := range includes {
		typeFilter[string(t)] = true
	}

	logDate := time.Now()
	if classifyDate != "" {
		logDate, err = time.ParseInLocation(time.DateOnly, classifyDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date format (want YYYY-MM-DD): %w", err)
		}
	}

	cl, err := buildClassifier(classifyPatterns)
	if err != nil {
		return err
	}
	if cl == nil {
		cl = mclog.DefaultClassifier{}
	}

	lines, err := readLogLines(args[0])
	if err != nil {
		return err
	}

	ctx := context.Background()
	for _, line := range lines {
		result, err := cl.ClassifyLine(ctx, line, logDate)
		if err != nil {
			if verbose {
				fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			}
			continue
		}
		for _, ev := range result.Events {
			if len(typeFilter) > 0 && !typeFilter[string(ev.Type)] {
				continue
			}
			if err := OutputEvent(classifyFormat, ev, os.Stdout); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
		}
	}

	return nil
}

// readLogLines reads a complete log file into lines. Unlike the incremental
// tail reader, a final line without a trailing newline is still returned;
// the file is done being written.
func readLogLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	raw := strings.Split(string(data), "\n")
	if len(raw) > 0 && raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}

	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSuffix(line, "\r")
		lines = append(lines, strings.ToValidUTF8(line, "�"))
	}
	return lines, nil
}
