package tftcmd

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard is a slog.Handler that drops records before they are built.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

var (
	silent  = slog.New(discard{})
	current atomic.Pointer[slog.Logger]
)

// SetLogger configures the logger used by tftcmd and its sub-packages. By
// default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: cache hits, misses and evictions, executed sequences
//   - [slog.LevelWarn]: transport failures and rejected sequences
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the current logger. Sub-packages (spibus, dcs) call it to
// share the same configuration.
func Logger() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return silent
}
