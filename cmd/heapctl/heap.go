package main

import (
	"log/slog"
	"os"

	"github.com/kendreaditya/malloc/heap"
	"github.com/kendreaditya/malloc/heap/arena"
	"github.com/kendreaditya/malloc/internal/obslog"
)

// newHeap constructs a fresh allocator over a portable Slice arena, wired
// to obslog when --verbose is set.
func newHeap() (*heap.Allocator, error) {
	var opts []heap.Option
	if verbose {
		obslog.Init(obslog.Options{Enabled: true, Writer: os.Stderr, Level: slog.LevelDebug})
		opts = append(opts, heap.WithLogger(obslog.L))
	}
	return heap.New(arena.NewSlice(), opts...)
}
