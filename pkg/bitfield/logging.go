package bitfield

import (
	"io"
	"log/slog"
)

// Diagnostic tracing is opt-in and carried per descriptor. There is no
// package-level logger and nothing is configured at import time; a BitField
// constructed without WithLogger discards every event.

// slog.DiscardHandler requires Go 1.24; this construction is equivalent on
// older toolchains (no record is ever enabled or written).
var discard = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))

// Option configures optional BitField behavior at construction.
type Option func(*BitField)

// WithLogger attaches a structured logger to the field. Mask derivation and
// sign-extension steps are reported at Debug level. A nil logger restores
// the default, which discards all events.
func WithLogger(l *slog.Logger) Option {
	return func(f *BitField) {
		if l == nil {
			l = discard
		}
		f.logger = l
	}
}
