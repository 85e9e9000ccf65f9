// Package obslog provides a small slog-based logger shared by the heap
// engine and cmd/heapctl. It defaults to discarding everything: callers
// that never call Init get zero-overhead, zero-configuration logging.
package obslog

import (
	"io"
	"log/slog"
	"os"
)

// L is the package-level logger. It starts out discarding all output.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures Init.
type Options struct {
	// Enabled turns logging on. If false, Init discards all output
	// regardless of the other fields.
	Enabled bool

	// Writer receives log output when Enabled is true. Defaults to
	// os.Stderr.
	Writer io.Writer

	// Level is the minimum level logged. Defaults to slog.LevelInfo.
	Level slog.Level
}

// Init reconfigures the package-level logger. Call it once during process
// startup; it is not safe to call concurrently with logging calls.
func Init(opts Options) {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	L = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: opts.Level}))
}
