package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkTracePath string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Build a heap, replay an optional trace, and run the invariant checker",
	Long: `check replays the trace given by --trace (or runs an empty heap if
omitted), then reports whether the resulting heap satisfies the boundary-tag
and free-list invariants.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck()
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkTracePath, "trace", "", "Trace file to replay before checking")
	rootCmd.AddCommand(checkCmd)
}

type checkResult struct {
	OK       bool `json:"ok"`
	LineNo   int  `json:"line"`
	NumOps   int  `json:"num_ops"`
	OpsApply int  `json:"ops_applied"`
}

func runCheck() error {
	a, err := newHeap()
	if err != nil {
		return err
	}

	var ops []traceOp
	if checkTracePath != "" {
		ops, err = loadTrace(checkTracePath)
		if err != nil {
			return fmt.Errorf("failed to load trace: %w", err)
		}
	}

	runner := newTraceRunner(a)
	applied := 0
	for i, op := range ops {
		if _, err := runner.apply(op); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		applied++
	}

	ok := a.Check(applied)
	result := checkResult{OK: ok, NumOps: len(ops), OpsApply: applied}

	if jsonOut {
		return printJSON(result)
	}
	if ok {
		printInfo("heap OK (%d operations applied)\n", applied)
	} else {
		printInfo("heap FAILED invariant check after %d operations\n", applied)
	}
	return nil
}
