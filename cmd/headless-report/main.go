package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Garsondee/No-Loose-Threads/internal/board"
)

type runStats struct {
	runIndex int
	seed     int64
	level    int

	result board.SolveResult
	err    error

	frames       int
	threads      [3]int
	starts       int
	completes    int
	chains       int
	abandons     int
	detaches     int
	drops        int
	reverts      int
	revertCauses map[string]int

	entries []board.LogEntry
}

func newRootCmd() *cobra.Command {
	var (
		runs     int
		level    int
		seedBase int64
		seedStep int64
		showLog  bool
	)
	cmd := &cobra.Command{
		Use:           "headless-report",
		Short:         "Play a level's scripted solution without a window and report the outcome",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if runs <= 0 {
				return fmt.Errorf("--runs must be > 0")
			}
			if _, ok := board.SolutionFor(level); !ok {
				return fmt.Errorf("no scripted solution for level %d (supported: %s)", level, supportedLevels())
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "=== Headless Board Report ===\n")
			fmt.Fprintf(out, "level=%d runs=%d seed_base=%d seed_step=%d\n\n", level, runs, seedBase, seedStep)

			all := make([]runStats, 0, runs)
			for i := 0; i < runs; i++ {
				rs := runLevel(i+1, level, seedBase+int64(i)*seedStep)
				all = append(all, rs)
				printRun(out, rs, showLog)
			}
			printAggregate(out, all)
			for _, rs := range all {
				if rs.err != nil || !rs.result.Solved {
					return fmt.Errorf("run %d did not solve level %d", rs.runIndex, level)
				}
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&runs, "runs", 3, "number of headless runs")
	f.IntVar(&level, "level", 0, "level to play")
	f.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	f.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	f.BoolVar(&showLog, "log", false, "print every event of each run")
	return cmd
}

func supportedLevels() string {
	var levels []string
	for l := 0; l < board.LevelCount; l++ {
		if _, ok := board.SolutionFor(l); ok {
			levels = append(levels, fmt.Sprint(l))
		}
	}
	return strings.Join(levels, ", ")
}

// runLevel plays the scripted solution of level on a fresh board.
func runLevel(runIndex, level int, seed int64) runStats {
	rs := runStats{runIndex: runIndex, seed: seed, level: level, revertCauses: map[string]int{}}
	h := board.NewHarness(level, board.WithSeed(seed), board.WithEventLog(0))
	sol, _ := board.SolutionFor(level)
	rs.result, rs.err = h.Play(sol)

	b := h.Board
	rs.frames = b.Frame()
	rs.threads = b.State().ThreadCount
	el := b.Log()
	rs.starts = el.Count(board.CatThread, "start")
	rs.completes = el.Count(board.CatThread, "complete")
	rs.chains = el.Count(board.CatThread, "chain")
	rs.abandons = el.Count(board.CatThread, "abandon")
	rs.detaches = el.Count(board.CatThread, "detach")
	rs.drops = el.Count(board.CatTile, "drop")
	for _, e := range el.Filter(board.CatTile, "revert") {
		rs.reverts++
		rs.revertCauses[revertCause(e.Value)]++
	}
	rs.entries = el.Entries()
	return rs
}

// revertCause extracts the reason from a "<type>: <reason>" revert value.
func revertCause(v string) string {
	if _, cause, ok := strings.Cut(v, ": "); ok {
		return cause
	}
	return v
}

func printRun(out io.Writer, rs runStats, showLog bool) {
	fmt.Fprintf(out, "--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	if rs.err != nil {
		fmt.Fprintf(out, "error: %v\n", rs.err)
	}
	fmt.Fprintf(out, "verdict: solved=%v cases=%v\n", rs.result.Solved, rs.result.Cases)
	fmt.Fprintf(out, "frames=%d threads_per_case=%v\n", rs.frames, rs.threads)
	fmt.Fprintf(out, "thread_events: start=%d complete=%d chain=%d abandon=%d detach=%d\n",
		rs.starts, rs.completes, rs.chains, rs.abandons, rs.detaches)
	fmt.Fprintf(out, "tile_events: drop=%d revert=%d causes=%s\n", rs.drops, rs.reverts, joinCounts(rs.revertCauses))
	if showLog {
		for _, e := range rs.entries {
			fmt.Fprintf(out, "  %s\n", e)
		}
	}
	fmt.Fprintln(out)
}

func printAggregate(out io.Writer, all []runStats) {
	solved := 0
	var frames, completes, reverts int
	causes := map[string]int{}
	for _, rs := range all {
		if rs.err == nil && rs.result.Solved {
			solved++
		}
		frames += rs.frames
		completes += rs.completes
		reverts += rs.reverts
		for k, v := range rs.revertCauses {
			causes[k] += v
		}
	}
	fmt.Fprintf(out, "=== Aggregate ===\n")
	fmt.Fprintf(out, "runs=%d solved=%d\n", len(all), solved)
	fmt.Fprintf(out, "avg_per_run: frames=%.1f complete=%.1f revert=%.1f\n",
		avg(frames, len(all)), avg(completes, len(all)), avg(reverts, len(all)))
	fmt.Fprintf(out, "revert_causes: %s\n", joinCounts(causes))
}

func avg(sum int, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// joinCounts renders counts as sorted key=value pairs, or "-" when empty.
func joinCounts(m map[string]int) string {
	if len(m) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, m[k])
	}
	return strings.Join(parts, ",")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
