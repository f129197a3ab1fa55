// Package classifier parses Minecraft server log lines into typed game events.
package classifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/mclog/mclog-go/pkg/mclog/event"
)

// timeOfDayLayout is the Go time layout for the in-line timestamp.
const timeOfDayLayout = "15:04:05"

// Classify parses a single log line into an Event.
//
// Returns:
//   - (*Event, nil): the line is a recognized game event
//   - (nil, nil): not a recognized event (unknown shape, non-INFO level,
//     stack trace continuation, ...)
//
// The log carries only a time of day, so logDate supplies the calendar date
// and location the timestamp is anchored to. A log spanning midnight is
// attributed entirely to logDate; re-deriving the date per file is the
// caller's responsibility.
func Classify(line string, logDate time.Time) (*event.Event, error) {
	match := logLineRE.FindStringSubmatch(strings.TrimSpace(line))
	if match == nil {
		return nil, nil
	}

	timeStr, _, level, message := match[1], match[2], match[3], match[4]

	if level != infoLevel {
		return nil, nil
	}

	ts, err := combineTimestamp(timeStr, logDate)
	if err != nil {
		// The structural pattern guarantees digits, but an out-of-range
		// time of day ("25:00:00") still fails here. Not an event.
		return nil, nil
	}

	return classifyMessage(message, ts), nil
}

// combineTimestamp anchors an HH:MM:SS time of day to the given date.
func combineTimestamp(timeStr string, logDate time.Time) (time.Time, error) {
	t, err := time.Parse(timeOfDayLayout, timeStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		logDate.Year(), logDate.Month(), logDate.Day(),
		t.Hour(), t.Minute(), t.Second(), 0,
		logDate.Location(),
	), nil
}

// classifyMessage tests the message against the ordered recognizer list.
// First match wins; nil means no recognizer matched.
func classifyMessage(message string, ts time.Time) *event.Event {
	if m := advancementRE.FindStringSubmatch(message); m != nil {
		return newEvent(ts, m[1], event.Advancement, m[2], message)
	}

	if m := challengeRE.FindStringSubmatch(message); m != nil {
		return newEvent(ts, m[1], event.Challenge, m[2], message)
	}

	if m := goalRE.FindStringSubmatch(message); m != nil {
		return newEvent(ts, m[1], event.Goal, m[2], message)
	}

	if m := loginRE.FindStringSubmatch(message); m != nil {
		coords := fmt.Sprintf("x=%s y=%s z=%s", m[3], m[4], m[5])
		return newEvent(ts, m[1], event.Login, coords, message)
	}

	if m := joinRE.FindStringSubmatch(message); m != nil {
		return newEvent(ts, m[1], event.Join, "", message)
	}

	if m := leaveRE.FindStringSubmatch(message); m != nil {
		return newEvent(ts, m[1], event.Leave, "", message)
	}

	if m := chatRE.FindStringSubmatch(message); m != nil {
		return newEvent(ts, m[1], event.Chat, m[2], message)
	}

	if m := serverStartRE.FindStringSubmatch(message); m != nil {
		return newEvent(ts, event.ServerActor, event.ServerStart, m[1]+"s", message)
	}

	if player, ok := matchDeath(message); ok {
		return newEvent(ts, player, event.Death, message, message)
	}

	return nil
}

// matchDeath scans the death keyword list in priority order and extracts the
// player name as everything before the first keyword occurrence. Candidates
// that are empty or contain whitespace are rejected: a valid player handle
// never contains spaces, which guards against keywords appearing
// mid-sentence in unrelated messages.
func matchDeath(message string) (string, bool) {
	for _, keyword := range deathKeywords {
		idx := strings.Index(message, keyword)
		if idx < 0 {
			continue
		}
		player := strings.TrimSpace(message[:idx])
		if player == "" || strings.ContainsRune(player, ' ') {
			continue
		}
		return player, true
	}
	return "", false
}

func newEvent(ts time.Time, player string, typ event.Type, details, message string) *event.Event {
	return &event.Event{
		Timestamp:  ts,
		Player:     player,
		Type:       typ,
		Details:    details,
		RawMessage: message,
	}
}
