package solver

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/calgarycs/timetable/internal/timetable"
)

// DefaultDeadline is the wall-clock budget for the branch-and-bound
// phase when the caller doesn't specify one.
const DefaultDeadline = 300 * time.Second

// Options controls a single solve run.
type Options struct {
	Deadline   time.Duration // 0 means DefaultDeadline
	Seed       int64         // seeds the randomized-restart generator
	NodeBudget int           // 0 means DefaultNodeBudget
	Restarts   int           // 0 means DefaultRestarts
}

// Result is the outcome of a solve run.
type Result struct {
	Found       bool
	Assignments map[string]string // section id -> slot id
	Eval        int
}

// Solve runs the full pipeline: static preprocessing, application and
// validation of forced partial assignments, a greedy seed search for
// an upper bound, and branch-and-bound best-first search. The returned
// error is non-nil only for fatal, pre-search failures (infeasible
// static preprocessing or a broken forced partial assignment); a
// search that simply finds nothing is reported via Result.Found=false
// with a nil error.
func Solve(problem *timetable.Problem, opts Options) (*Result, error) {
	staticValid, err := Preprocess(problem)
	if err != nil {
		return nil, err
	}

	root, err := applyPartialAssignments(problem, staticValid)
	if err != nil {
		return nil, err
	}

	nodeBudget := opts.NodeBudget
	if nodeBudget <= 0 {
		nodeBudget = DefaultNodeBudget
	}
	restarts := opts.Restarts
	if restarts <= 0 {
		restarts = DefaultRestarts
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	seed, seedFound := GreedySeed(problem, staticValid, root, nodeBudget, restarts, rng)

	upperBound := math.Inf(1)
	if seedFound {
		upperBound = Cost(seed, problem) + MinFilledCost(seed, problem)
	}

	deadline := opts.Deadline
	if deadline <= 0 {
		deadline = DefaultDeadline
	}

	best, found := BranchAndBound(problem, staticValid, root, upperBound, time.Now().Add(deadline))
	if !found {
		if !seedFound {
			return &Result{Found: false}, nil
		}
		best = seed
	}

	return &Result{
		Found:       true,
		Assignments: best.Assignments,
		Eval:        GrandObjective(best, problem),
	}, nil
}

// applyPartialAssignments binds every forced (section, slot) pair from
// the problem onto the empty root state, in problem order so that a
// forced tutorial sees its forced parent lecture already placed. A
// slot-id that doesn't exist in the section's kind pool, or a forced
// assignment that breaks a hard rule, is fatal.
func applyPartialAssignments(problem *timetable.Problem, staticValid map[string][]*timetable.Slot) (*State, error) {
	state := NewState()
	for _, section := range problem.AllSections() {
		slotID, ok := problem.Partial[section.ID]
		if !ok {
			continue
		}
		slot, ok := problem.Slot(slotID, section.Kind)
		if !ok {
			return nil, fmt.Errorf("forced partial assignment for %q cites unknown slot %q", section.ID, slotID)
		}
		if !IsValid(state, problem, section, slot) {
			return nil, fmt.Errorf("forced partial assignment for %q to %q violates a hard constraint", section.ID, slotID)
		}
		state = state.Assign(section, slot)
	}
	return state, nil
}
