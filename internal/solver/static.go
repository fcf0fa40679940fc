package solver

import "github.com/calgarycs/timetable/internal/timetable"

// Preprocess computes, for every section, the ordered list of slots
// that pass the purely static (state-independent) filters: matching
// kind, not unwanted, and — for evening sections — an hour of 18 or
// later. It reports an error naming the first section left with an
// empty candidate list, since such an instance can never be solved.
func Preprocess(problem *timetable.Problem) (map[string][]*timetable.Slot, error) {
	valid := make(map[string][]*timetable.Slot, len(problem.Lectures)+len(problem.Tutorials))

	for _, section := range problem.AllSections() {
		pool := problem.SlotsFor(section.Kind)
		candidates := make([]*timetable.Slot, 0, len(pool))
		for _, slot := range pool {
			if problem.Unwanted[section.ID][slot.ID] {
				continue
			}
			if section.IsEvening() && slot.Hour < 18 {
				continue
			}
			candidates = append(candidates, slot)
		}
		if len(candidates) == 0 {
			return nil, &InfeasibleError{Section: section.ID, Reason: "no slot survives static filtering"}
		}
		valid[section.ID] = candidates
	}
	return valid, nil
}

// InfeasibleError reports a section or forced assignment that makes
// the instance unsolvable before any search begins.
type InfeasibleError struct {
	Section string
	Reason  string
}

func (e *InfeasibleError) Error() string {
	return "section " + e.Section + ": " + e.Reason
}
