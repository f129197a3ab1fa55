package mclog

import (
	"fmt"
	"log/slog"

	"github.com/mclog/mclog-go/pkg/mclog/event"
)

// WatchOption configures Watch behavior using the functional options pattern.
type WatchOption func(*watchConfig)

// watchConfig holds internal configuration for the watcher.
type watchConfig struct {
	fromStart  bool
	includeRaw bool
	logger     *slog.Logger
	filter     *compiledFilter
	classifier Classifier
}

// defaultWatchConfig returns a watchConfig with sensible defaults.
func defaultWatchConfig() *watchConfig {
	return &watchConfig{
		classifier: DefaultClassifier{},
	}
}

// applyWatchOptions applies functional options to a watchConfig.
func applyWatchOptions(opts []WatchOption) *watchConfig {
	cfg := defaultWatchConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// validate checks for invalid option combinations.
func (c *watchConfig) validate() error {
	if c.classifier == nil {
		return fmt.Errorf("classifier must not be nil")
	}
	return nil
}

// WithFromStart reads the log file from the beginning instead of only
// watching for new lines (the default, tail -f behavior).
func WithFromStart() WatchOption {
	return func(c *watchConfig) {
		c.fromStart = true
	}
}

// WithIncludeRaw includes the original log message in Event.RawMessage.
// Default: false.
func WithIncludeRaw(include bool) WatchOption {
	return func(c *watchConfig) {
		c.includeRaw = include
	}
}

// WithLogger sets a custom logger for debug output.
// If logger is nil, logging is disabled (default behavior).
func WithLogger(logger *slog.Logger) WatchOption {
	return func(c *watchConfig) {
		c.logger = logger
	}
}

// WithClassifier sets a custom classifier for log lines.
// If cl is nil, this option has no effect (the default classifier remains
// active).
func WithClassifier(cl Classifier) WatchOption {
	return func(c *watchConfig) {
		if cl != nil {
			c.classifier = cl
		}
	}
}

// WithClassifiers combines multiple classifiers using ChainAll mode.
// At least one classifier is required.
func WithClassifiers(classifiers ...Classifier) WatchOption {
	return func(c *watchConfig) {
		if len(classifiers) > 0 {
			c.classifier = &Chain{
				Mode:        ChainAll,
				Classifiers: classifiers,
			}
		}
	}
}

// WithIncludeTypes filters events to only include the specified types.
// If called multiple times, only the last call takes effect.
func WithIncludeTypes(types ...event.Type) WatchOption {
	return func(c *watchConfig) {
		if c.filter == nil {
			c.filter = &compiledFilter{}
		}
		c.filter.include = make(map[event.Type]struct{}, len(types))
		for _, t := range types {
			c.filter.include[t] = struct{}{}
		}
	}
}

// WithExcludeTypes filters out events of the specified types.
// Exclude takes precedence over include.
// If called multiple times, only the last call takes effect.
func WithExcludeTypes(types ...event.Type) WatchOption {
	return func(c *watchConfig) {
		if c.filter == nil {
			c.filter = &compiledFilter{}
		}
		c.filter.exclude = make(map[event.Type]struct{}, len(types))
		for _, t := range types {
			c.filter.exclude[t] = struct{}{}
		}
	}
}

// WithFilter sets both include and exclude type filters.
// Exclude takes precedence over include.
func WithFilter(include, exclude []event.Type) WatchOption {
	return func(c *watchConfig) {
		c.filter = newCompiledFilter(include, exclude)
	}
}
