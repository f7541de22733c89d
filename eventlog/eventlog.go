// Package eventlog emits structured JSON planning events to the console and
// a size-rotated log file.
//
// Overview:
//
//   - Every event is one JSON line (log/slog JSON handler) fanned out to a
//     console writer and <dir>/events.log.
//   - Sensitive fields (token, auth, authorization, password, secret,
//     api_key) are redacted at any nesting depth before encoding.
//   - When events.log exceeds the size limit it is rotated by renaming:
//     events.log → events.log.1 → … up to the backup count, oldest dropped.
//     File logging failures are swallowed; the console stream is the source
//     of truth and event emission must never fail a planning request.
//   - Tail returns the last N lines of the current log file for quick
//     diagnostics endpoints.
package eventlog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// redactedKeys are field names whose values are never written out.
var redactedKeys = map[string]struct{}{
	"token":         {},
	"auth":          {},
	"authorization": {},
	"password":      {},
	"secret":        {},
	"api_key":       {},
}

const redactedValue = "<redacted>"

// Options configures a Logger.
//
// Dir      – directory holding events.log (created on first write).
// MaxBytes – rotation threshold for events.log.
// Backups  – number of rotated files kept (events.log.1 .. .N).
// Console  – console stream receiving every event line.
type Options struct {
	Dir      string
	MaxBytes int64
	Backups  int
	Console  io.Writer
}

// Option is a functional option for New.
type Option func(*Options)

// WithDir sets the log directory. Default ".logs".
func WithDir(dir string) Option {
	return func(o *Options) { o.Dir = dir }
}

// WithMaxBytes sets the rotation threshold. Default 1 MiB.
func WithMaxBytes(n int64) Option {
	return func(o *Options) { o.MaxBytes = n }
}

// WithBackups sets how many rotated files are kept. Default 5.
func WithBackups(n int) Option {
	return func(o *Options) { o.Backups = n }
}

// WithConsole redirects the console stream. Default os.Stdout.
func WithConsole(w io.Writer) Option {
	return func(o *Options) { o.Console = w }
}

// DefaultOptions returns the standard configuration: ".logs" directory,
// 1 MiB rotation threshold, five backups, stdout console.
func DefaultOptions() Options {
	return Options{
		Dir:      ".logs",
		MaxBytes: 1 << 20,
		Backups:  5,
		Console:  os.Stdout,
	}
}

// Logger writes redacted JSON event lines to a console stream and a rotated
// file. Safe for concurrent use.
type Logger struct {
	opts Options

	mu  sync.Mutex
	log *slog.Logger
}

// New constructs a Logger. Construction never touches the filesystem; the
// log directory is created on the first event.
func New(opts ...Option) *Logger {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	l := &Logger{opts: cfg}
	sink := io.MultiWriter(cfg.Console, &fileWriter{logger: l})
	l.log = slog.New(slog.NewJSONHandler(sink, nil))

	return l
}

// Path returns the current log file path.
func (l *Logger) Path() string {
	return filepath.Join(l.opts.Dir, "events.log")
}

// Event emits one structured event. Field values are redacted recursively;
// keys are sorted so a given event always serializes the same way.
func (l *Logger) Event(event string, fields map[string]any) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, redact(k, fields[k])))
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.LogAttrs(context.Background(), slog.LevelInfo, event, attrs...)
}

// Tail returns up to limit trailing lines of the current log file. A
// missing file yields an empty slice, not an error.
func (l *Logger) Tail(limit int) ([]string, error) {
	if limit < 1 {
		limit = 1
	}

	data, err := os.ReadFile(l.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}

		return nil, fmt.Errorf("eventlog: tail: %w", err)
	}

	lines := bytes.Split(bytes.TrimRight(data, "\n"), []byte("\n"))
	if len(lines) == 1 && len(lines[0]) == 0 {
		return []string{}, nil
	}
	if len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}

	out := make([]string, len(lines))
	for i, ln := range lines {
		out[i] = string(ln)
	}

	return out, nil
}

// redact replaces the values of sensitive keys and descends into nested
// maps and slices.
func redact(key string, v any) any {
	if _, hit := redactedKeys[strings.ToLower(key)]; hit {
		return redactedValue
	}
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[k] = redact(k, inner)
		}

		return out
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = redact("", inner)
		}

		return out
	default:
		return v
	}
}

// fileWriter appends event lines to events.log, rotating first when the
// file has outgrown the threshold. All errors are swallowed by contract.
type fileWriter struct {
	logger *Logger
}

// Write implements io.Writer.
func (w *fileWriter) Write(p []byte) (int, error) {
	opts := w.logger.opts
	path := w.logger.Path()

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return len(p), nil
	}

	if info, err := os.Stat(path); err == nil && info.Size() > opts.MaxBytes {
		rotate(path, opts.Backups)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return len(p), nil
	}
	defer f.Close()
	_, _ = f.Write(p)

	return len(p), nil
}

// rotate shifts events.log.N-1 → events.log.N for N down to 1, dropping the
// oldest backup and freeing the live path.
func rotate(path string, backups int) {
	for i := backups; i > 0; i-- {
		older := fmt.Sprintf("%s.%d", path, i)
		newer := path
		if i > 1 {
			newer = fmt.Sprintf("%s.%d", path, i-1)
		}
		if _, err := os.Stat(older); err == nil {
			_ = os.Remove(older)
		}
		if _, err := os.Stat(newer); err == nil {
			_ = os.Rename(newer, older)
		}
	}
}
