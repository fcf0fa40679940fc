// Package output renders a solve result in the plain-text report
// format: an evaluation line followed by section-id-sorted assignment
// lines, or a single failure line.
package output

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/calgarycs/timetable/internal/solver"
)

// Write formats result to w. It flushes before returning, so callers
// don't need to wrap w themselves.
func Write(w io.Writer, result *solver.Result) error {
	bw := bufio.NewWriter(w)

	if !result.Found {
		if _, err := fmt.Fprintln(bw, "No solution found."); err != nil {
			return err
		}
		return bw.Flush()
	}

	if _, err := fmt.Fprintf(bw, "Eval-value: %d\n", result.Eval); err != nil {
		return err
	}

	ids := make([]string, 0, len(result.Assignments))
	for id := range result.Assignments {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if _, err := fmt.Fprintf(bw, "%s : %s\n", id, result.Assignments[id]); err != nil {
			return err
		}
	}

	return bw.Flush()
}
