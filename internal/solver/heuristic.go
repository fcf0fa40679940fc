package solver

import "github.com/calgarycs/timetable/internal/timetable"

// Heuristic returns h(S), an admissible under-estimate of the soft
// cost still payable by any completion of state: a min-filled lower
// bound plus a preference lower bound. Pair and section-difference
// penalties are omitted since neither has a useful lower bound other
// than zero.
func Heuristic(state *State, problem *timetable.Problem, staticValid map[string][]*timetable.Slot) float64 {
	w := problem.Weights
	var total float64

	unassigned := state.Unassigned(problem)

	potential := make(map[string]int, len(problem.LectureSlots)+len(problem.TutorialSlots))
	for _, slot := range problem.AllSlots() {
		potential[slotUsageKey(slot.Kind, slot.ID)] = state.UsageAt(slot.Kind, slot.ID).total()
	}
	for _, sec := range unassigned {
		for _, slot := range staticValid[sec.ID] {
			potential[slotUsageKey(slot.Kind, slot.ID)]++
		}
	}
	for _, slot := range problem.AllSlots() {
		if p := potential[slotUsageKey(slot.Kind, slot.ID)]; p < slot.MinFilled {
			total += float64(slot.MinFilled-p) * w.MinFilled
		}
	}

	for _, sec := range unassigned {
		prefs := problem.Preferences[sec.ID]
		if len(prefs) == 0 {
			continue
		}
		var base float64
		bySlot := make(map[string]float64, len(prefs))
		for _, pref := range prefs {
			base += float64(pref.Value)
			bySlot[pref.SlotID] += float64(pref.Value)
		}
		var maxReduction float64
		for _, slot := range staticValid[sec.ID] {
			if v := bySlot[slot.ID]; v > maxReduction {
				maxReduction = v
			}
		}
		total += (base - maxReduction) * w.Preference
	}

	return total
}
