package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsTracePath string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print free-list population and heap span after replaying a trace",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatsCmd()
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsTracePath, "trace", "", "Trace file to replay before reporting")
	rootCmd.AddCommand(statsCmd)
}

func runStatsCmd() error {
	a, err := newHeap()
	if err != nil {
		return err
	}

	if statsTracePath != "" {
		ops, err := loadTrace(statsTracePath)
		if err != nil {
			return fmt.Errorf("failed to load trace: %w", err)
		}
		runner := newTraceRunner(a)
		for i, op := range ops {
			if _, err := runner.apply(op); err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
		}
	}

	stats := a.Stats()
	if jsonOut {
		return printJSON(stats)
	}

	printInfo("heap span: [%d, %d) (%d bytes)\n", stats.HeapLo, stats.HeapHi, stats.HeapHi-stats.HeapLo)
	printInfo("free lists:\n")
	for cls, n := range stats.FreeListCounts {
		printInfo("  class %d: %d blocks\n", cls, n)
	}
	return nil
}
