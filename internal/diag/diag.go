// Package diag is the single structured-logging entry point shared by the
// supervisor and generator binaries: one JSON line per event, to stderr
// by default, built on logiface/stumpy.
package diag

import (
	"io"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Logger is the concrete logger type used throughout both binaries.
type Logger = logiface.Logger[*stumpy.Event]

// Builder is the concrete event builder returned by Logger.Info, .Err, and
// so on; named here so call sites building nested arrays/objects don't need
// to spell out the stumpy event type themselves.
type Builder = logiface.Builder[*stumpy.Event]

// New builds a Logger writing newline-delimited JSON to w. A nil w logs to
// os.Stderr (stumpy's own default).
func New(w io.Writer) *Logger {
	var opts []stumpy.Option
	if w != nil {
		opts = append(opts, stumpy.WithWriter(w))
	}
	return stumpy.L.New(stumpy.L.WithStumpy(opts...))
}

// Role names the process kind, attached to every event as a field so
// mixed supervisor/generator logs (e.g. redirected to one file by a
// shell pipeline) stay attributable.
type Role string

const (
	RoleSupervisor Role = "supervisor"
	RoleGenerator  Role = "generator"
)

// WithRole returns a child logger with role permanently attached, using
// logiface's context/field chaining rather than re-threading the value
// through every call site.
func WithRole(l *Logger, role Role) *Logger {
	return l.Clone().Str("role", string(role)).Logger()
}
