package mclog

import (
	"errors"
	"fmt"
)

// ErrWatcherClosed is returned by Watch after Close has been called.
var ErrWatcherClosed = errors.New("watcher is closed")

// ErrAlreadyWatching is returned by Watch when it has already been called on
// this Watcher instance.
var ErrAlreadyWatching = errors.New("watcher is already watching")

// Watch operation names used in WatchError.Op.
const (
	WatchOpTail = "tail"
)

// WatchError wraps errors from the watching machinery with the operation and
// file path that failed.
type WatchError struct {
	Op   string
	Path string
	Err  error
}

func (e *WatchError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("watch %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("watch %s: %v", e.Op, e.Err)
}

func (e *WatchError) Unwrap() error { return e.Err }

// ClassifyError wraps a classifier failure together with the offending line.
type ClassifyError struct {
	Line string
	Err  error
}

func (e *ClassifyError) Error() string {
	return fmt.Sprintf("classify %q: %v", e.Line, e.Err)
}

func (e *ClassifyError) Unwrap() error { return e.Err }
