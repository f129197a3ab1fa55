package mclog

import (
	"context"
	"errors"
	"time"

	"github.com/mclog/mclog-go/pkg/mclog/event"
)

// ClassifyResult represents the result of classifying a log line.
type ClassifyResult struct {
	// Events contains the classified events.
	Events []event.Event

	// Matched indicates whether the classifier recognized the input.
	// This can be true even if Events is empty.
	Matched bool
}

// Classifier is the interface for log line classifiers. Implementations
// include DefaultClassifier (built-in server events) and the pattern
// subpackage's RegexClassifier.
//
// logDate supplies the calendar date for the line's time-of-day prefix,
// since server logs carry no date themselves.
type Classifier interface {
	// ClassifyLine classifies a single log line.
	// Returns ClassifyResult with Matched=true if the line was recognized.
	// Returns error only for unexpected failures (not for unrecognized lines).
	ClassifyLine(ctx context.Context, line string, logDate time.Time) (ClassifyResult, error)
}

// ClassifierFunc is an adapter to allow ordinary functions to be used as
// Classifiers.
type ClassifierFunc func(ctx context.Context, line string, logDate time.Time) (ClassifyResult, error)

// ClassifyLine implements the Classifier interface.
func (f ClassifierFunc) ClassifyLine(ctx context.Context, line string, logDate time.Time) (ClassifyResult, error) {
	return f(ctx, line, logDate)
}

// ChainMode specifies how Chain executes classifiers.
type ChainMode int

const (
	// ChainAll executes all classifiers and combines results (default).
	ChainAll ChainMode = iota

	// ChainFirst stops at the first classifier that matches.
	ChainFirst

	// ChainContinueOnError skips classifiers that return errors and continues.
	// Errors are collected and returned together at the end.
	ChainContinueOnError
)

// Chain combines multiple classifiers.
type Chain struct {
	Mode        ChainMode
	Classifiers []Classifier
}

// ClassifyLine implements the Classifier interface.
//
// If the context is cancelled during execution, ClassifyLine returns
// immediately with partial results and the context error.
func (c *Chain) ClassifyLine(ctx context.Context, line string, logDate time.Time) (ClassifyResult, error) {
	var allEvents []event.Event
	var errs []error
	anyMatched := false

	for _, cl := range c.Classifiers {
		if err := ctx.Err(); err != nil {
			return ClassifyResult{Events: allEvents, Matched: anyMatched}, err
		}

		if cl == nil {
			continue
		}

		result, err := cl.ClassifyLine(ctx, line, logDate)
		if err != nil {
			if c.Mode == ChainContinueOnError {
				errs = append(errs, err)
				continue
			}
			return ClassifyResult{}, err
		}
		if result.Matched {
			anyMatched = true
			allEvents = append(allEvents, result.Events...)
			if c.Mode == ChainFirst {
				return ClassifyResult{Events: allEvents, Matched: true}, nil
			}
		}
	}

	if len(errs) > 0 {
		return ClassifyResult{Events: allEvents, Matched: anyMatched}, errors.Join(errs...)
	}

	return ClassifyResult{Events: allEvents, Matched: anyMatched}, nil
}
