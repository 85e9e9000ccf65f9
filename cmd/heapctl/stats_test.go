package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStatsCmd_NoTraceReportsEmptyHeap(t *testing.T) {
	statsTracePath = ""
	assert.NoError(t, runStatsCmd())
}

func TestRunStatsCmd_ReplaysTraceBeforeReporting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.txt")
	require.NoError(t, os.WriteFile(path, []byte("a 1 2000\nf 1\n"), 0o644))

	statsTracePath = path
	defer func() { statsTracePath = "" }()

	assert.NoError(t, runStatsCmd())
}
