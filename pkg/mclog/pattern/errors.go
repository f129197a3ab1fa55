package pattern

import "fmt"

// ValidationError reports a pattern file that violates the file-level
// schema: an unsupported version, a missing patterns section, or a file
// exceeding the size limits.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// PatternError reports a defect in a single pattern entry: a regex that
// does not compile, a duplicate ID, or a missing field. Index locates the
// entry within the file when the ID itself is the missing field.
type PatternError struct {
	Index   int
	ID      string
	Field   string
	Message string
	Cause   error
}

func (e *PatternError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("pattern %q: %s: %s", e.ID, e.Field, e.Message)
	}
	return fmt.Sprintf("pattern[%d]: %s: %s", e.Index, e.Field, e.Message)
}

func (e *PatternError) Unwrap() error {
	return e.Cause
}
