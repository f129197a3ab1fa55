package mclog

import (
	"time"

	"github.com/mclog/mclog-go/internal/classifier"
	"github.com/mclog/mclog-go/pkg/mclog/event"
)

// ClassifyLine classifies a single server log line into an Event.
//
// logDate supplies the calendar date for the line's time-of-day prefix;
// server logs carry no date themselves.
//
// Return values:
//   - (*Event, nil): Successfully classified event
//   - (nil, nil): Line doesn't match any known event pattern (not an error)
//   - (nil, error): Line partially matches but is malformed
//
// Example:
//
//	line := "[10:30:15] [Server thread/INFO]: Steve joined the game"
//	ev, err := mclog.ClassifyLine(line, time.Now())
//	if err != nil {
//	    log.Printf("classify error: %v", err)
//	} else if ev != nil {
//	    fmt.Printf("%s: %s\n", ev.Type, ev.Player)
//	}
//	// ev == nil && err == nil means line is not a recognized event
func ClassifyLine(line string, logDate time.Time) (*event.Event, error) {
	return classifier.Classify(line, logDate)
}

// ClassifyLines classifies a batch of lines and returns the recognized
// events in input order. Unrecognized and malformed lines are dropped.
func ClassifyLines(lines []string, logDate time.Time) []event.Event {
	var events []event.Event
	for _, line := range lines {
		ev, err := classifier.Classify(line, logDate)
		if err != nil || ev == nil {
			continue
		}
		events = append(events, *ev)
	}
	return events
}
