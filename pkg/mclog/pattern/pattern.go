// Package pattern provides custom pattern matching for Minecraft server
// logs. It allows users to define their own event types via YAML
// configuration files with regular expression patterns.
package pattern

// PatternFile represents the structure of a YAML pattern file.
// Pattern files allow users to classify log lines the built-in classifier
// does not know about, without writing code.
//
// Example YAML file:
//
//	version: 1
//	patterns:
//	  - id: villager_trade
//	    event_type: villager_trade
//	    regex: '(?P<player>\w+) traded with (?P<profession>\w+)'
//	  - id: backup_done
//	    event_type: backup_done
//	    regex: 'Backup completed in (?P<seconds>[\d.]+)s'
type PatternFile struct {
	// Version is the pattern file format version. Currently only version 1 is supported.
	Version int `yaml:"version"`

	// Patterns is the list of pattern definitions.
	Patterns []Pattern `yaml:"patterns"`
}

// Pattern represents a single log pattern definition.
// Each pattern consists of a unique identifier, an event type, and a regular
// expression. The regex may contain named capture groups (?P<name>...) which
// will be extracted into the Event.Data field. A group named "player" is
// additionally copied into Event.Player.
type Pattern struct {
	// ID is a unique identifier for this pattern (e.g., "villager_trade").
	// IDs must be unique within a pattern file.
	ID string `yaml:"id"`

	// EventType is the value to use for the Event.Type field when this pattern matches.
	EventType string `yaml:"event_type"`

	// Regex is the regular expression pattern to match against the message
	// part of log lines. Named capture groups (?P<name>...) will be
	// extracted into Event.Data.
	Regex string `yaml:"regex"`
}
