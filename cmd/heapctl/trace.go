package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kendreaditya/malloc/heap"
	"github.com/spf13/cobra"
)

// traceOp is one line of a replayable allocation trace:
//
//	a <id> <n>     allocate n bytes, remember the result under id
//	f <id>         free the block previously allocated under id
//	r <id> <n>     reallocate the block under id to n bytes
//	z <id> <m> <n> zero-allocate m*n bytes, remember the result under id
type traceOp struct {
	verb byte
	id   int
	m, n int
}

func parseTraceLine(line string) (traceOp, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return traceOp{}, fmt.Errorf("empty trace line")
	}
	if len(fields[0]) != 1 {
		return traceOp{}, fmt.Errorf("unknown verb %q", fields[0])
	}
	verb := fields[0][0]

	switch verb {
	case 'a':
		if len(fields) != 3 {
			return traceOp{}, fmt.Errorf("want 'a <id> <n>', got %q", line)
		}
		id, err := strconv.Atoi(fields[1])
		if err != nil {
			return traceOp{}, fmt.Errorf("bad id in %q: %w", line, err)
		}
		n, err := strconv.Atoi(fields[2])
		if err != nil {
			return traceOp{}, fmt.Errorf("bad size in %q: %w", line, err)
		}
		return traceOp{verb: 'a', id: id, n: n}, nil

	case 'f':
		if len(fields) != 2 {
			return traceOp{}, fmt.Errorf("want 'f <id>', got %q", line)
		}
		id, err := strconv.Atoi(fields[1])
		if err != nil {
			return traceOp{}, fmt.Errorf("bad id in %q: %w", line, err)
		}
		return traceOp{verb: 'f', id: id}, nil

	case 'r':
		if len(fields) != 3 {
			return traceOp{}, fmt.Errorf("want 'r <id> <n>', got %q", line)
		}
		id, err := strconv.Atoi(fields[1])
		if err != nil {
			return traceOp{}, fmt.Errorf("bad id in %q: %w", line, err)
		}
		n, err := strconv.Atoi(fields[2])
		if err != nil {
			return traceOp{}, fmt.Errorf("bad size in %q: %w", line, err)
		}
		return traceOp{verb: 'r', id: id, n: n}, nil

	case 'z':
		if len(fields) != 4 {
			return traceOp{}, fmt.Errorf("want 'z <id> <m> <n>', got %q", line)
		}
		id, err := strconv.Atoi(fields[1])
		if err != nil {
			return traceOp{}, fmt.Errorf("bad id in %q: %w", line, err)
		}
		m, err := strconv.Atoi(fields[2])
		if err != nil {
			return traceOp{}, fmt.Errorf("bad m in %q: %w", line, err)
		}
		n, err := strconv.Atoi(fields[3])
		if err != nil {
			return traceOp{}, fmt.Errorf("bad n in %q: %w", line, err)
		}
		return traceOp{verb: 'z', id: id, m: m, n: n}, nil
	}

	return traceOp{}, fmt.Errorf("unknown verb %q", string(verb))
}

// loadTrace reads and parses every non-blank, non-comment line of path.
func loadTrace(path string) ([]traceOp, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var ops []traceOp
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		op, err := parseTraceLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		ops = append(ops, op)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ops, nil
}

// traceRunner applies traceOps to an allocator, tracking each id's current
// Ptr so that later 'f'/'r' lines can refer back to an earlier 'a'/'z'.
type traceRunner struct {
	a   *heap.Allocator
	ids map[int]heap.Ptr
}

func newTraceRunner(a *heap.Allocator) *traceRunner {
	return &traceRunner{a: a, ids: make(map[int]heap.Ptr)}
}

// apply runs op and returns a human-readable description of the result.
func (r *traceRunner) apply(op traceOp) (string, error) {
	switch op.verb {
	case 'a':
		p, _, err := r.a.Allocate(op.n)
		if err != nil {
			return "", err
		}
		r.ids[op.id] = p
		return fmt.Sprintf("a %d %d -> ptr=%d", op.id, op.n, p), nil

	case 'f':
		p, ok := r.ids[op.id]
		if !ok {
			return "", fmt.Errorf("free of unknown id %d", op.id)
		}
		if err := r.a.Free(p); err != nil {
			return "", err
		}
		delete(r.ids, op.id)
		return fmt.Sprintf("f %d -> ok", op.id), nil

	case 'r':
		p, ok := r.ids[op.id]
		if !ok {
			return "", fmt.Errorf("reallocate of unknown id %d", op.id)
		}
		newP, _, err := r.a.Reallocate(p, op.n)
		if err != nil {
			return "", err
		}
		if op.n <= 0 {
			delete(r.ids, op.id)
		} else {
			r.ids[op.id] = newP
		}
		return fmt.Sprintf("r %d %d -> ptr=%d", op.id, op.n, newP), nil

	case 'z':
		p, _, err := r.a.ZeroAllocate(op.m, op.n)
		if err != nil {
			return "", err
		}
		r.ids[op.id] = p
		return fmt.Sprintf("z %d %d %d -> ptr=%d", op.id, op.m, op.n, p), nil
	}
	return "", fmt.Errorf("unknown verb %q", string(op.verb))
}

var traceCmd = &cobra.Command{
	Use:   "trace <file>",
	Short: "Replay a line-oriented allocation trace against a fresh heap",
	Long: `trace replays a file of allocation operations against a freshly
initialized heap, printing the result of each line.

Trace line formats:
  a <id> <n>      allocate n bytes, remembered as id
  f <id>          free the block known as id
  r <id> <n>      reallocate the block known as id to n bytes
  z <id> <m> <n>  zero-allocate m*n bytes, remembered as id`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTrace(args[0])
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)
}

func runTrace(path string) error {
	ops, err := loadTrace(path)
	if err != nil {
		return fmt.Errorf("failed to load trace: %w", err)
	}

	a, err := newHeap()
	if err != nil {
		return err
	}

	runner := newTraceRunner(a)
	type result struct {
		Line string `json:"line"`
	}
	var results []result

	for i, op := range ops {
		printVerbose("applying line %d\n", i+1)
		desc, err := runner.apply(op)
		if err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		if jsonOut {
			results = append(results, result{Line: desc})
		} else {
			printInfo("%s\n", desc)
		}
	}

	if jsonOut {
		return printJSON(results)
	}
	return nil
}
