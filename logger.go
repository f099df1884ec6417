package nfont

import "context"
import "log/slog"
import "sync/atomic"

// nopHandler silently discards all records. Enabled returns false so
// callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// Sets the logger used by nfont. By default, nothing is logged.
// Pass nil to restore the silent default.
//
// Log levels used by nfont:
//   - [slog.LevelDebug]: load summaries (metrics, atlas sizes, glyph counts).
//   - [slog.LevelWarn]: atlas exhaustion (logged once per load).
//   - [slog.LevelError]: load failures.
//
// Example:
//   nfont.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
func SetLogger(logger *slog.Logger) {
	if logger == nil { logger = slog.New(nopHandler{}) }
	loggerPtr.Store(logger)
}

// Returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
