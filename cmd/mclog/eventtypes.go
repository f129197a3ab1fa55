package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mclog/mclog-go/pkg/mclog/event"
)

// ValidEventTypes maps CLI type names to event types.
var ValidEventTypes = buildValidEventTypes()

func buildValidEventTypes() map[string]event.Type {
	types := event.BuiltinTypes()
	m := make(map[string]event.Type, len(types))
	for _, t := range types {
		m[string(t)] = t
	}
	return m
}

// ValidEventTypeNames returns the sorted list of valid type names for help
// text and error messages.
func ValidEventTypeNames() []string {
	names := make([]string, 0, len(ValidEventTypes))
	for name := range ValidEventTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NormalizeEventTypes converts CLI type names into event types.
// Names are case-insensitive, surrounding whitespace is ignored, and
// duplicates are removed (first occurrence wins the position).
func NormalizeEventTypes(names []string) ([]event.Type, error) {
	if len(names) == 0 {
		return nil, nil
	}

	seen := make(map[event.Type]struct{}, len(names))
	result := make([]event.Type, 0, len(names))
	for _, name := range names {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if normalized == "" {
			return nil, fmt.Errorf("empty event type (valid types: %s)", strings.Join(ValidEventTypeNames(), ", "))
		}

		t, ok := ValidEventTypes[normalized]
		if !ok {
			return nil, fmt.Errorf("unknown event type %q (valid types: %s)", name, strings.Join(ValidEventTypeNames(), ", "))
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		result = append(result, t)
	}
	return result, nil
}

// RejectOverlap returns an error if any type appears in both the include and
// exclude lists, since that combination filters everything out silently.
func RejectOverlap(includes, excludes []event.Type) error {
	if len(includes) == 0 || len(excludes) == 0 {
		return nil
	}

	excluded := make(map[event.Type]struct{}, len(excludes))
	for _, t := range excludes {
		excluded[t] = struct{}{}
	}
	for _, t := range includes {
		if _, ok := excluded[t]; ok {
			return fmt.Errorf("event type %q is both included and excluded", t)
		}
	}
	return nil
}
