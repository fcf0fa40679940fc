package solver

import (
	"container/heap"
	"time"

	"github.com/calgarycs/timetable/internal/timetable"
)

// bnbNode is one entry on the best-first frontier.
type bnbNode struct {
	state    *State
	f        float64
	assigned int
}

// bnbFrontier is a min-heap on f, tie-broken toward nodes with more
// assignments (closer to a goal).
type bnbFrontier []*bnbNode

func (f bnbFrontier) Len() int { return len(f) }
func (f bnbFrontier) Less(i, j int) bool {
	if f[i].f != f[j].f {
		return f[i].f < f[j].f
	}
	return f[i].assigned > f[j].assigned
}
func (f bnbFrontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }
func (f *bnbFrontier) Push(x interface{}) {
	*f = append(*f, x.(*bnbNode))
}
func (f *bnbFrontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// BranchAndBound runs a best-first search over partial assignments
// rooted at root, seeded with an upper bound from the greedy search
// (pass +Inf if none was found), subject to a wall-clock deadline. It
// returns the best complete state found (the incumbent) and whether
// one was found at all.
func BranchAndBound(problem *timetable.Problem, staticValid map[string][]*timetable.Slot, root *State, upperBound float64, deadline time.Time) (*State, bool) {
	frontier := &bnbFrontier{}
	heap.Init(frontier)
	heap.Push(frontier, &bnbNode{state: root, f: Cost(root, problem) + Heuristic(root, problem, staticValid), assigned: len(root.Assignments)})

	bound := upperBound
	var incumbent *State

	for frontier.Len() > 0 {
		if time.Now().After(deadline) {
			break
		}
		node := heap.Pop(frontier).(*bnbNode)
		if node.f >= bound {
			continue
		}

		if node.state.IsComplete(problem) {
			obj := Cost(node.state, problem) + MinFilledCost(node.state, problem)
			if obj < bound {
				bound = obj
				incumbent = node.state
			}
			continue
		}

		section := pickMRV(node.state, problem, staticValid, nil)
		if section == nil {
			continue
		}
		candidates := validSlots(node.state, problem, staticValid[section.ID], section)
		if len(candidates) == 0 {
			continue
		}
		for _, slot := range candidates {
			child := node.state.Assign(section, slot)
			g := Cost(child, problem)
			h := Heuristic(child, problem, staticValid)
			fChild := g + h
			if fChild >= bound {
				continue
			}
			heap.Push(frontier, &bnbNode{state: child, f: fChild, assigned: len(child.Assignments)})
		}
	}

	return incumbent, incumbent != nil
}
