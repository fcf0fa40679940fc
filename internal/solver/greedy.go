package solver

import (
	"math"
	"math/rand"
	"sort"

	"github.com/calgarycs/timetable/internal/timetable"
)

// DefaultNodeBudget bounds a single greedy depth-first pass.
const DefaultNodeBudget = 5000

// DefaultRestarts is the number of randomized passes attempted after a
// deterministic first pass fails to complete within the node budget.
const DefaultRestarts = 20

// GreedySeed runs a deterministic depth-first pass first; if it fails
// to complete within nodeBudget expansions, it retries up to
// maxRestarts times with randomized MRV tie-breaking and LCV jitter,
// keeping the lowest-cost complete assignment found. rng may be nil
// for the deterministic pass; it must be non-nil to get distinct
// restarts.
func GreedySeed(problem *timetable.Problem, staticValid map[string][]*timetable.Slot, initial *State, nodeBudget, maxRestarts int, rng *rand.Rand) (*State, bool) {
	if nodeBudget <= 0 {
		nodeBudget = DefaultNodeBudget
	}

	if sol, ok := greedyPass(problem, staticValid, initial, nodeBudget, nil); ok {
		return sol, true
	}
	if rng == nil {
		return nil, false
	}

	var best *State
	bestCost := math.Inf(1)
	for i := 0; i < maxRestarts; i++ {
		sol, ok := greedyPass(problem, staticValid, initial, nodeBudget, rng)
		if !ok {
			continue
		}
		cost := Cost(sol, problem) + MinFilledCost(sol, problem)
		if best == nil || cost < bestCost {
			best, bestCost = sol, cost
		}
	}
	return best, best != nil
}

func greedyPass(problem *timetable.Problem, staticValid map[string][]*timetable.Slot, start *State, budget int, rng *rand.Rand) (*State, bool) {
	nodes := 0

	var dfs func(state *State) (*State, bool)
	dfs = func(state *State) (*State, bool) {
		if state.IsComplete(problem) {
			return state, true
		}
		nodes++
		if nodes > budget {
			return nil, false
		}

		section := pickMRV(state, problem, staticValid, rng)
		if section == nil {
			return nil, false
		}
		candidates := validSlots(state, problem, staticValid[section.ID], section)
		if len(candidates) == 0 {
			return nil, false
		}
		for _, slot := range orderLCV(state, problem, section, candidates, rng) {
			if result, ok := dfs(state.Assign(section, slot)); ok {
				return result, true
			}
			if nodes > budget {
				return nil, false
			}
		}
		return nil, false
	}

	return dfs(start)
}

func validSlots(state *State, problem *timetable.Problem, candidates []*timetable.Slot, section *timetable.Section) []*timetable.Slot {
	out := make([]*timetable.Slot, 0, len(candidates))
	for _, slot := range candidates {
		if IsValid(state, problem, section, slot) {
			out = append(out, slot)
		}
	}
	return out
}

func degree(problem *timetable.Problem, sectionID string) int {
	d := len(problem.Incompatible[sectionID])
	for _, pair := range problem.Pairs {
		if pair[0] == sectionID || pair[1] == sectionID {
			d++
		}
	}
	return d
}

// pickMRV selects the unassigned section with the fewest state-valid
// slots, breaking ties by degree (most-constrained first), and finally
// by section id for determinism, or uniformly at random among the
// remaining ties when rng is supplied.
func pickMRV(state *State, problem *timetable.Problem, staticValid map[string][]*timetable.Slot, rng *rand.Rand) *timetable.Section {
	type candidate struct {
		section *timetable.Section
		count   int
		degree  int
	}

	unassigned := state.Unassigned(problem)
	if len(unassigned) == 0 {
		return nil
	}
	scored := make([]candidate, 0, len(unassigned))
	for _, sec := range unassigned {
		count := len(validSlots(state, problem, staticValid[sec.ID], sec))
		scored = append(scored, candidate{sec, count, degree(problem, sec.ID)})
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].count != scored[j].count {
			return scored[i].count < scored[j].count
		}
		if scored[i].degree != scored[j].degree {
			return scored[i].degree > scored[j].degree
		}
		return scored[i].section.ID < scored[j].section.ID
	})

	if rng == nil {
		return scored[0].section
	}
	tied := 1
	for tied < len(scored) && scored[tied].count == scored[0].count && scored[tied].degree == scored[0].degree {
		tied++
	}
	return scored[rng.Intn(tied)].section
}

// orderLCV orders candidate slots by ascending g-cost after assignment,
// with optional small randomized jitter to diversify restarts.
func orderLCV(state *State, problem *timetable.Problem, section *timetable.Section, candidates []*timetable.Slot, rng *rand.Rand) []*timetable.Slot {
	type scored struct {
		slot  *timetable.Slot
		score float64
	}
	out := make([]scored, len(candidates))
	for i, slot := range candidates {
		child := state.Assign(section, slot)
		score := Cost(child, problem)
		if rng != nil {
			score += rng.Float64() * 1e-6
		}
		out[i] = scored{slot, score}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].score < out[j].score })

	result := make([]*timetable.Slot, len(out))
	for i, s := range out {
		result[i] = s.slot
	}
	return result
}
