package pattern

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/mclog/mclog-go/pkg/mclog"
	"github.com/mclog/mclog-go/pkg/mclog/event"
)

// playerGroup is the named capture group that, when present, is copied into
// Event.Player in addition to Event.Data.
const playerGroup = "player"

// linePrefixRE matches the standard server log prefix and captures the
// time-of-day and the message part. Patterns are matched against the message
// part only.
var linePrefixRE = regexp.MustCompile(`^\[(\d{2}:\d{2}:\d{2})\] \[[^\]]+\]: (.+)$`)

// RegexClassifier is a Classifier implementation that matches log lines
// using user-defined regular expression patterns from a YAML file.
//
// Named capture groups (?P<name>...) in patterns are extracted into the
// Event.Data field. The classifier checks all patterns and can generate
// multiple events from a single line if multiple patterns match.
//
// RegexClassifier is safe for concurrent use by multiple goroutines.
type RegexClassifier struct {
	patterns []*compiledPattern
}

// compiledPattern represents a single compiled pattern with its metadata.
type compiledPattern struct {
	id        string
	eventType event.Type
	regex     *regexp.Regexp
	hasGroups bool
}

// NewRegexClassifier creates a RegexClassifier from a PatternFile.
// This function compiles all regular expressions and validates their syntax.
// Returns an error if any pattern has invalid regex syntax.
//
// Example:
//
//	pf, err := pattern.Load("patterns.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cl, err := pattern.NewRegexClassifier(pf)
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewRegexClassifier(pf *PatternFile) (*RegexClassifier, error) {
	if pf == nil {
		return nil, fmt.Errorf("pattern file is nil")
	}

	patterns := make([]*compiledPattern, 0, len(pf.Patterns))
	for i, p := range pf.Patterns {
		re, err := regexp.Compile(p.Regex)
		if err != nil {
			return nil, &PatternError{
				Index:   i,
				ID:      p.ID,
				Field:   "regex",
				Message: fmt.Sprintf("invalid regular expression: %v", err),
			}
		}

		hasGroups := false
		for _, name := range re.SubexpNames() {
			if name != "" {
				hasGroups = true
				break
			}
		}

		patterns = append(patterns, &compiledPattern{
			id:        p.ID,
			eventType: event.Type(p.EventType),
			regex:     re,
			hasGroups: hasGroups,
		})
	}

	return &RegexClassifier{patterns: patterns}, nil
}

// NewRegexClassifierFromFile is a convenience function that loads a pattern
// file and creates a RegexClassifier in one step.
//
// Example:
//
//	cl, err := pattern.NewRegexClassifierFromFile("patterns.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewRegexClassifierFromFile(path string) (*RegexClassifier, error) {
	pf, err := Load(path)
	if err != nil {
		return nil, err
	}
	return NewRegexClassifier(pf)
}

// ClassifyLine implements the mclog.Classifier interface.
// It matches the message part of the line against all patterns and returns
// all matching events, in the order patterns were defined in the file.
//
// The context parameter is currently unused but is provided for future
// enhancements (e.g., timeout support).
func (c *RegexClassifier) ClassifyLine(ctx context.Context, line string, logDate time.Time) (mclog.ClassifyResult, error) {
	prefix := linePrefixRE.FindStringSubmatch(line)
	if prefix == nil {
		return mclog.ClassifyResult{Matched: false}, nil
	}
	message := prefix[2]

	timestamp, hasTimestamp := combineTimestamp(prefix[1], logDate)

	var allEvents []event.Event

	// Check all patterns (similar to ChainAll mode)
	for _, cp := range c.patterns {
		matches := cp.regex.FindStringSubmatch(message)
		if matches == nil {
			continue
		}

		ev := event.Event{
			Type:       cp.eventType,
			RawMessage: message,
		}
		if hasTimestamp {
			ev.Timestamp = timestamp
		}

		// Extract named capture groups into the Data field.
		// SubexpNames() keeps a 1:1 correspondence with matches indices,
		// which correctly handles mixed unnamed and named capture groups.
		if cp.hasGroups {
			allNames := cp.regex.SubexpNames()
			data := make(map[string]string, len(allNames)-1)
			for i := 1; i < len(allNames); i++ {
				if allNames[i] != "" && i < len(matches) {
					data[allNames[i]] = matches[i]
				}
			}
			ev.Data = data
			ev.Player = data[playerGroup]
		}
		// If no named groups, leave Data as nil (not empty map)

		allEvents = append(allEvents, ev)
	}

	if len(allEvents) == 0 {
		return mclog.ClassifyResult{Matched: false}, nil
	}

	return mclog.ClassifyResult{
		Events:  allEvents,
		Matched: true,
	}, nil
}

// combineTimestamp merges the time-of-day from a log line with the calendar
// date of logDate, in logDate's location.
func combineTimestamp(clock string, logDate time.Time) (time.Time, bool) {
	t, err := time.Parse(time.TimeOnly, clock)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(
		logDate.Year(), logDate.Month(), logDate.Day(),
		t.Hour(), t.Minute(), t.Second(), 0,
		logDate.Location(),
	), true
}

// Ensure RegexClassifier implements mclog.Classifier.
var _ mclog.Classifier = (*RegexClassifier)(nil)
