// Package reporting forwards collector errors to Sentry when a DSN is
// configured, and degrades to a no-op otherwise.
package reporting

import (
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
)

var enabled bool

// Init configures Sentry from the given DSN. An empty DSN disables reporting
// entirely; Capture then only logs. The returned flush func must be called
// before exit to drain buffered events.
func Init(dsn string) (func(), error) {
	if dsn == "" {
		enabled = false
		return func() {}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn: dsn,
	})
	if err != nil {
		return nil, err
	}
	enabled = true

	flush := func() {
		sentry.Flush(5 * time.Second)
	}
	return flush, nil
}

// Capture reports err to Sentry with optional key/value tags.
func Capture(err error, tags map[string]string, logger *slog.Logger) {
	if err == nil {
		return
	}

	logger.Error("reporting error", slog.String("error", err.Error()), slog.Any("tags", tags))

	if !enabled {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		if len(tags) > 0 {
			scope.SetTags(tags)
		}
		sentry.CaptureException(err)
	})
}
