package mclog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/nxadm/tail"

	"github.com/mclog/mclog-go/pkg/mclog/event"
)

// watcherErrBuffer is the buffer size for the error channel.
// A small buffer prevents error loss during brief moments when the consumer
// is busy processing events, while keeping memory usage minimal.
const watcherErrBuffer = 16

// Watcher monitors a server log file and emits classified events.
type Watcher struct {
	cfg  watchConfig // internal configuration (immutable after creation)
	path string
	log  *slog.Logger

	now func() time.Time // supplies the calendar date for timestamps

	mu       sync.Mutex
	closed   bool
	cancel   context.CancelFunc // cancel func to stop the goroutine
	doneCh   chan struct{}      // signals when goroutine has exited
	watching bool               // true if Watch() has been called
}

// discardLogger returns a logger that discards all output.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// NewWatcher creates a watcher for the log file at path using functional
// options. Does NOT start goroutines (cheap to call). The file does not
// need to exist yet; the watcher picks it up once the server creates it,
// and follows it across rotations.
//
// Example:
//
//	watcher, err := mclog.NewWatcher("/opt/minecraft/logs/latest.log",
//	    mclog.WithIncludeTypes(event.Join, event.Leave),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	events, errs, err := watcher.Watch(ctx)
func NewWatcher(path string, opts ...WatchOption) (*Watcher, error) {
	cfg := applyWatchOptions(opts)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if path == "" {
		return nil, fmt.Errorf("log file path must not be empty")
	}

	log := cfg.logger
	if log == nil {
		log = discardLogger
	}

	return &Watcher{
		cfg:  *cfg, // copy to ensure immutability
		path: path,
		log:  log,
		now:  time.Now,
	}, nil
}

// Watch starts watching and returns channels.
// When ctx is cancelled, channels are closed automatically.
// Both channels close on ctx.Done() or fatal error.
// Watch can only be called once per Watcher instance.
//
// Returns ErrWatcherClosed if the watcher has been closed.
// Returns ErrAlreadyWatching if Watch() has already been called.
func (w *Watcher) Watch(ctx context.Context) (<-chan event.Event, <-chan error, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil, nil, ErrWatcherClosed
	}
	if w.watching {
		return nil, nil, ErrAlreadyWatching
	}
	w.watching = true

	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.doneCh = make(chan struct{})

	eventCh := make(chan event.Event)
	errCh := make(chan error, watcherErrBuffer)

	go w.run(ctx, eventCh, errCh)

	return eventCh, errCh, nil
}

// Close stops the watcher and releases resources.
// Safe to call multiple times.
// Blocks until the goroutine has exited.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true

	if w.cancel != nil {
		w.cancel()
	}
	doneCh := w.doneCh
	w.mu.Unlock()

	// Wait for goroutine to exit if Watch was called
	if doneCh != nil {
		<-doneCh
	}
	return nil
}

func (w *Watcher) run(ctx context.Context, eventCh chan<- event.Event, errCh chan<- error) {
	defer close(w.doneCh) // Signal that goroutine has exited
	defer close(eventCh)
	defer close(errCh)

	tailCfg := tail.Config{
		Follow:    true,
		ReOpen:    true, // survive log rotation
		MustExist: false,
		Logger:    tail.DiscardingLogger,
	}
	if !w.cfg.fromStart {
		tailCfg.Location = &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd}
	}

	t, err := tail.TailFile(w.path, tailCfg)
	if err != nil {
		sendError(ctx, errCh, &WatchError{Op: WatchOpTail, Path: w.path, Err: err})
		return
	}
	defer func() {
		_ = t.Stop()
		t.Cleanup()
	}()
	w.log.Debug("started tailing", "path", w.path, "from_start", w.cfg.fromStart)

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-t.Lines:
			if !ok {
				return
			}
			if line.Err != nil {
				sendError(ctx, errCh, &WatchError{Op: WatchOpTail, Path: w.path, Err: line.Err})
				continue
			}
			w.processLine(ctx, line.Text, eventCh, errCh)
		}
	}
}

func (w *Watcher) processLine(ctx context.Context, line string, eventCh chan<- event.Event, errCh chan<- error) {
	result, err := w.cfg.classifier.ClassifyLine(ctx, line, w.now())

	// Process events even if there's an error (e.g., ChainContinueOnError
	// mode). This ensures partial success from multi-classifier chains is
	// not lost.
	if err != nil {
		w.emit(ctx, result.Events, eventCh)
		sendError(ctx, errCh, &ClassifyError{Line: line, Err: err})
		return
	}

	if !result.Matched {
		return // Not a recognized event
	}

	w.emit(ctx, result.Events, eventCh)
}

func (w *Watcher) emit(ctx context.Context, events []event.Event, eventCh chan<- event.Event) {
	for _, ev := range events {
		if w.cfg.filter != nil && !w.cfg.filter.Allows(ev.Type) {
			continue
		}
		if !w.cfg.includeRaw {
			ev.RawMessage = ""
		}

		select {
		case eventCh <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// sendError sends an error to the error channel.
// With a buffered channel, errors are only dropped if the buffer is full.
// The context case ensures we don't block during shutdown.
func sendError(ctx context.Context, errCh chan<- error, err error) {
	if err == nil {
		return
	}
	select {
	case errCh <- err:
	case <-ctx.Done():
		// Don't block during shutdown
	default:
		// Drop error only if buffer is full (rare with buffer size 16)
	}
}

// Watch creates a watcher for the log file at path and starts watching.
// This is the preferred way to create and start a watcher.
//
// Note: This function does not return the underlying Watcher, so callers
// cannot call Close() to perform synchronous shutdown. The watcher stops
// when the context is cancelled. For more control over shutdown, use
// NewWatcher and Watcher.Watch directly.
func Watch(ctx context.Context, path string, opts ...WatchOption) (<-chan event.Event, <-chan error, error) {
	w, err := NewWatcher(path, opts...)
	if err != nil {
		return nil, nil, err
	}
	return w.Watch(ctx)
}
