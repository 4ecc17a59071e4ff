// Package watcher reports changes other programs make to the files open
// in the editor.
//
// fsnotify is pointed at the parent directory of every watched file, so
// editors that save by renaming a temp file over the original are still
// seen. Bursts of events for one file are coalesced into a single Event
// after the debounce delay.
package watcher

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher errors.
var (
	ErrWatcherClosed   = errors.New("watcher closed")
	ErrAlreadyWatching = errors.New("already watching")
	ErrNotWatching     = errors.New("not watching")
)

// Op is a set of file operations.
type Op uint8

const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
)

// Has reports whether o contains op.
func (o Op) Has(op Op) bool {
	return o&op != 0
}

// String returns the operations joined with "|".
func (o Op) String() string {
	var parts []string
	if o.Has(OpCreate) {
		parts = append(parts, "create")
	}
	if o.Has(OpWrite) {
		parts = append(parts, "write")
	}
	if o.Has(OpRemove) {
		parts = append(parts, "remove")
	}
	if o.Has(OpRename) {
		parts = append(parts, "rename")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Event is a coalesced change to one watched file.
type Event struct {
	Path      string
	Op        Op
	Timestamp time.Time
}

// Config configures a Watcher.
type Config struct {
	// Debounce is how long a file must stay quiet before its event is sent.
	Debounce time.Duration
	// BufferSize is the capacity of the Events channel.
	BufferSize int
}

// DefaultConfig returns the default watcher configuration.
func DefaultConfig() Config {
	return Config{
		Debounce:   100 * time.Millisecond,
		BufferSize: 16,
	}
}

// Option configures a Watcher.
type Option func(*Config)

// WithDebounce sets the debounce delay.
func WithDebounce(d time.Duration) Option {
	return func(c *Config) {
		c.Debounce = d
	}
}

// WithBufferSize sets the event channel capacity.
func WithBufferSize(n int) Option {
	return func(c *Config) {
		c.BufferSize = n
	}
}

type pendingEvent struct {
	ops   Op
	timer *time.Timer
}

// Watcher watches a set of files.
type Watcher struct {
	mu sync.Mutex

	fs     *fsnotify.Watcher
	config Config

	files      map[string]bool
	dirs       map[string]int
	suppressed map[string]time.Time
	pending    map[string]*pendingEvent

	events chan Event
	errors chan error

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// New creates a watcher and starts its event loop.
func New(opts ...Option) (*Watcher, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.Debounce <= 0 {
		config.Debounce = DefaultConfig().Debounce
	}
	if config.BufferSize <= 0 {
		config.BufferSize = DefaultConfig().BufferSize
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fs:         fsw,
		config:     config,
		files:      make(map[string]bool),
		dirs:       make(map[string]int),
		suppressed: make(map[string]time.Time),
		pending:    make(map[string]*pendingEvent),
		events:     make(chan Event, config.BufferSize),
		errors:     make(chan error, config.BufferSize),
		closeCh:    make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Watch starts watching path. The file itself need not exist yet, but
// its directory must.
func (w *Watcher) Watch(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if w.files[absPath] {
		return ErrAlreadyWatching
	}

	dir := filepath.Dir(absPath)
	if w.dirs[dir] == 0 {
		if err := w.fs.Add(dir); err != nil {
			return err
		}
	}
	w.dirs[dir]++
	w.files[absPath] = true
	return nil
}

// Unwatch stops watching path.
func (w *Watcher) Unwatch(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if !w.files[absPath] {
		return ErrNotWatching
	}

	delete(w.files, absPath)
	dir := filepath.Dir(absPath)
	w.dirs[dir]--
	if w.dirs[dir] == 0 {
		delete(w.dirs, dir)
		return w.fs.Remove(dir)
	}
	return nil
}

// Suppress drops events for path for the next d, e.g. while the editor
// writes the file itself.
func (w *Watcher) Suppress(path string, d time.Duration) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.suppressed[absPath] = time.Now().Add(d)
}

// IsWatching reports whether path is watched.
func (w *Watcher) IsWatching(path string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.files[absPath]
}

// WatchedFiles returns the watched paths in sorted order.
func (w *Watcher) WatchedFiles() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	paths := make([]string, 0, len(w.files))
	for p := range w.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Events returns the event channel. It is closed by Close.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the error channel. It is closed by Close.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher. Pending events are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	for path, pe := range w.pending {
		pe.timer.Stop()
		delete(w.pending, path)
	}
	w.mu.Unlock()

	w.closedWg.Wait()

	err := w.fs.Close()

	w.mu.Lock()
	close(w.events)
	close(w.errors)
	w.mu.Unlock()

	return err
}

func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case fsEvent, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handleFSEvent(fsEvent)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

func (w *Watcher) handleFSEvent(fsEvent fsnotify.Event) {
	op := convertOp(fsEvent.Op)
	if op == 0 {
		return
	}
	path := filepath.Clean(fsEvent.Name)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || !w.files[path] {
		return
	}
	if until, ok := w.suppressed[path]; ok {
		if time.Now().Before(until) {
			return
		}
		delete(w.suppressed, path)
	}

	if pe, ok := w.pending[path]; ok {
		pe.ops |= op
		pe.timer.Reset(w.config.Debounce)
		return
	}
	w.pending[path] = &pendingEvent{
		ops:   op,
		timer: time.AfterFunc(w.config.Debounce, func() { w.flush(path) }),
	}
}

// flush sends the coalesced event for path.
func (w *Watcher) flush(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	pe, ok := w.pending[path]
	if !ok || w.closed {
		return
	}
	delete(w.pending, path)

	select {
	case w.events <- Event{Path: path, Op: pe.ops, Timestamp: time.Now()}:
	default:
		// Channel full, drop event
	}
}

func (w *Watcher) sendError(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case w.errors <- err:
	default:
	}
}

func convertOp(fsOp fsnotify.Op) Op {
	var op Op
	if fsOp.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if fsOp.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if fsOp.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if fsOp.Has(fsnotify.Rename) {
		op |= OpRename
	}
	return op
}
