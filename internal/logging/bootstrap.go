// Package logging builds per-name loggers with a console sink and a
// size-rotated, timestamped file sink rooted at a project's logs
// directory.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// filenameStamp is the timestamp embedded in log filenames,
	// <name>_<stamp>.log.
	filenameStamp = "20060102_150405"

	// timeFormat is the timestamp printed on each log line.
	timeFormat = "2006-01-02 15:04:05"

	// DefaultMaxBytes and DefaultBackupCount give 5 MB segments with
	// five retained backups.
	DefaultMaxBytes    = 5_000_000
	DefaultBackupCount = 5
)

// Logger names become part of filenames, so they follow identifier
// rules rather than arbitrary path syntax.
var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Options configures the sinks attached to a handle on its first
// request. The zero value logs at info level with rotation disabled.
type Options struct {
	Level       log.Level
	MaxBytes    int64 // 0 disables rotation
	BackupCount int
}

// ParseLevel maps a severity name (DEBUG, INFO, WARNING, ERROR) to a
// level, case-insensitively. WARN is accepted as an alias of WARNING.
func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	}
	return log.InfoLevel, fmt.Errorf("unknown log level %q", s)
}

// Handle is the live logger for one name.
type Handle struct {
	Name   string
	Logger *log.Logger

	path string
	file *rotatingWriter // nil when running console-only
}

// Path returns the active log file path, empty when the handle is
// running console-only.
func (h *Handle) Path() string {
	return h.path
}

// Bootstrap hands out logger handles keyed by name. Repeated requests
// for the same name return the existing handle unchanged, so bootstrap
// code reached from several entry points never attaches a second set
// of sinks.
type Bootstrap struct {
	mu      sync.Mutex
	console io.Writer
	handles map[string]*Handle
	now     func() time.Time
}

// New returns an empty bootstrap writing console output to stderr.
func New() *Bootstrap {
	return &Bootstrap{
		console: os.Stderr,
		handles: make(map[string]*Handle),
		now:     time.Now,
	}
}

// NewWithConsole returns a bootstrap writing console output to w.
func NewWithConsole(w io.Writer) *Bootstrap {
	b := New()
	b.console = w
	return b
}

// GetLogger returns the handle for name, creating it on the first
// request. opts only takes effect on that first request. logsDir must
// already exist; the bootstrap does not create it. When the file sink
// cannot be opened the returned handle still works console-only and
// the error is a *InitError describing the failure. The degraded
// handle is registered like any other, so re-acquisition stays
// idempotent.
func (b *Bootstrap) GetLogger(name, logsDir string, opts Options) (*Handle, error) {
	if !namePattern.MatchString(name) {
		return nil, &NameError{Name: name}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if h, ok := b.handles[name]; ok {
		return h, nil
	}

	h := &Handle{Name: name}
	out := b.console

	var initErr error
	path := filepath.Join(logsDir, fmt.Sprintf("%s_%s.log", name, b.now().Format(filenameStamp)))
	fw, err := newRotatingWriter(path, opts.MaxBytes, opts.BackupCount)
	if err != nil {
		initErr = &InitError{Name: name, Path: path, Err: err}
	} else {
		h.file = fw
		h.path = path
		out = io.MultiWriter(b.console, fw)
	}

	h.Logger = log.NewWithOptions(out, log.Options{
		Level:           opts.Level,
		Prefix:          name,
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
	})

	b.handles[name] = h
	return h, initErr
}

// Close closes every file sink. Handles keep working console-only
// afterwards.
func (b *Bootstrap) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var first error
	for _, h := range b.handles {
		if h.file == nil {
			continue
		}
		if err := h.file.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
