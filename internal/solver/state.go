// Package solver implements the constraint-satisfaction and
// branch-and-bound search engine: state representation, the
// hard-constraint checker, the soft-cost evaluator, the admissible
// heuristic, a greedy seed search, and best-first branch-and-bound.
package solver

import (
	"sort"

	"github.com/calgarycs/timetable/internal/timetable"
)

// usage tracks, per slot, how many sections of each usage category are
// currently assigned there. Lecture, tutorial, and lab counts are kept
// apart because rule 1 gates each of them against the same capacity-max
// independently; al counts active-learning-tagged sections regardless
// of category.
type usage struct {
	Lec, Tut, Lab, AL int
}

func (u usage) of(sub timetable.SubKind) int {
	switch sub {
	case timetable.SubLecture:
		return u.Lec
	case timetable.SubLab:
		return u.Lab
	default:
		return u.Tut
	}
}

func (u usage) total() int {
	return u.Lec + u.Tut + u.Lab
}

// State is the persistent-by-copy search node: a partial assignment of
// sections to slots, plus the derived usage counters and the auxiliary
// index of slots currently hosting a 500-level lecture. It never
// mutates in place; Assign returns an extended copy.
type State struct {
	Assignments map[string]string // section id -> slot id
	usage       map[string]usage  // "<kind>|<slot id>" -> usage
	occupied500 []*timetable.Slot
}

func slotUsageKey(kind timetable.Kind, slotID string) string {
	return string(kind) + "|" + slotID
}

// NewState returns the empty root state.
func NewState() *State {
	return &State{
		Assignments: make(map[string]string),
		usage:       make(map[string]usage),
	}
}

// UsageAt reports the current usage counters for a slot.
func (s *State) UsageAt(kind timetable.Kind, slotID string) usage {
	return s.usage[slotUsageKey(kind, slotID)]
}

// ResolvedSlot looks up, among problem's slots, the slot a section is
// currently assigned to. It reports false when the section is unassigned
// or when its assigned slot id is not one of problem's slots.
func (s *State) ResolvedSlot(problem *timetable.Problem, sectionID string) (*timetable.Slot, bool) {
	slotID, ok := s.Assignments[sectionID]
	if !ok {
		return nil, false
	}
	sec, ok := problem.Section(sectionID)
	if !ok {
		return nil, false
	}
	return problem.Slot(slotID, sec.Kind)
}

// Assign returns a new state with section bound to slot. The caller is
// responsible for having already validated the assignment with IsValid;
// Assign itself performs no checking.
func (s *State) Assign(section *timetable.Section, slot *timetable.Slot) *State {
	next := &State{
		Assignments: make(map[string]string, len(s.Assignments)+1),
		usage:       make(map[string]usage, len(s.usage)+1),
		occupied500: append([]*timetable.Slot(nil), s.occupied500...),
	}
	for k, v := range s.Assignments {
		next.Assignments[k] = v
	}
	for k, v := range s.usage {
		next.usage[k] = v
	}
	next.Assignments[section.ID] = slot.ID

	key := slotUsageKey(slot.Kind, slot.ID)
	u := next.usage[key]
	switch section.SubKind() {
	case timetable.SubLecture:
		u.Lec++
	case timetable.SubLab:
		u.Lab++
	default:
		u.Tut++
	}
	if section.ActiveLearningRequired {
		u.AL++
	}
	next.usage[key] = u

	if section.Is500Level() && section.Kind == timetable.Lecture {
		next.occupied500 = append(next.occupied500, slot)
	}
	return next
}

// IsComplete reports whether every section in the problem has an
// assignment.
func (s *State) IsComplete(problem *timetable.Problem) bool {
	return len(s.Assignments) == len(problem.Lectures)+len(problem.Tutorials)
}

// Unassigned returns the sections with no assignment yet, in a stable
// (problem) order.
func (s *State) Unassigned(problem *timetable.Problem) []*timetable.Section {
	out := make([]*timetable.Section, 0, len(problem.Lectures)+len(problem.Tutorials)-len(s.Assignments))
	for _, sec := range problem.AllSections() {
		if _, ok := s.Assignments[sec.ID]; !ok {
			out = append(out, sec)
		}
	}
	return out
}

// AssignedSectionIDs returns the ids currently bound, sorted.
func (s *State) AssignedSectionIDs() []string {
	ids := make([]string, 0, len(s.Assignments))
	for id := range s.Assignments {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
