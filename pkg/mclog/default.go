package mclog

import (
	"context"
	"time"

	"github.com/mclog/mclog-go/internal/classifier"
	"github.com/mclog/mclog-go/pkg/mclog/event"
)

// DefaultClassifier wraps the built-in classifier for standard server log
// events: deaths, advancements, challenges, goals, joins, leaves, chat,
// logins, and server starts.
type DefaultClassifier struct{}

// ClassifyLine implements the Classifier interface.
// The context parameter is for future use (e.g., timeout/cancellation).
func (DefaultClassifier) ClassifyLine(ctx context.Context, line string, logDate time.Time) (ClassifyResult, error) {
	ev, err := classifier.Classify(line, logDate)
	if err != nil {
		return ClassifyResult{}, err
	}
	if ev == nil {
		return ClassifyResult{Matched: false}, nil
	}
	return ClassifyResult{Events: []event.Event{*ev}, Matched: true}, nil
}

// Ensure DefaultClassifier implements Classifier.
var _ Classifier = DefaultClassifier{}
