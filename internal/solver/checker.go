package solver

import "github.com/calgarycs/timetable/internal/timetable"

// specialPair is one half of the CPSC 351/851 and 413/913 special-slot
// rule (§4.2 rule 10): when the base course exists in the instance, the
// special course's lecture must land on (TU, 18:00).
type specialPair struct {
	base, special int
}

var specialPairs = []specialPair{{base: 351, special: 851}, {base: 413, special: 913}}

// IsValid reports whether assigning section to slot preserves every
// hard constraint, given the sections and slots already bound in
// state. Rule order matches the checker's fixed order; it never
// changes the outcome but is kept stable for readability and testing.
func IsValid(state *State, problem *timetable.Problem, section *timetable.Section, slot *timetable.Slot) bool {
	return checkCapacity(state, section, slot) &&
		checkActiveLearning(state, section, slot) &&
		checkLectureTutorialOverlap(state, problem, section, slot) &&
		checkIncompatible(state, problem, section, slot) &&
		checkUnwanted(problem, section, slot) &&
		checkPartialAssignment(problem, section, slot) &&
		check500Level(state, section, slot) &&
		checkEvening(section, slot) &&
		checkTuesdayEleven(section, slot) &&
		checkSpecialPairs(state, problem, section, slot)
}

func checkCapacity(state *State, section *timetable.Section, slot *timetable.Slot) bool {
	u := state.UsageAt(slot.Kind, slot.ID)
	return u.of(section.SubKind()) < slot.CapacityMax
}

func checkActiveLearning(state *State, section *timetable.Section, slot *timetable.Slot) bool {
	if !section.ActiveLearningRequired {
		return true
	}
	u := state.UsageAt(slot.Kind, slot.ID)
	return slot.ALCapacity > 0 && u.AL < slot.ALCapacity
}

func checkLectureTutorialOverlap(state *State, problem *timetable.Problem, section *timetable.Section, slot *timetable.Slot) bool {
	if section.Kind == timetable.Tutorial {
		if section.ParentLectureID == "" {
			return true
		}
		parentSlot, ok := state.ResolvedSlot(problem, section.ParentLectureID)
		if !ok {
			return true
		}
		return !slot.Overlaps(parentSlot)
	}

	for _, tut := range problem.Tutorials {
		if tut.ParentLectureID != section.ID {
			continue
		}
		tutSlot, ok := state.ResolvedSlot(problem, tut.ID)
		if !ok {
			continue
		}
		if slot.Overlaps(tutSlot) {
			return false
		}
	}
	return true
}

func checkIncompatible(state *State, problem *timetable.Problem, section *timetable.Section, slot *timetable.Slot) bool {
	for otherID := range problem.Incompatible[section.ID] {
		otherSlot, ok := state.ResolvedSlot(problem, otherID)
		if !ok {
			continue
		}
		if slot.Overlaps(otherSlot) {
			return false
		}
	}
	return true
}

func checkUnwanted(problem *timetable.Problem, section *timetable.Section, slot *timetable.Slot) bool {
	return !problem.Unwanted[section.ID][slot.ID]
}

func checkPartialAssignment(problem *timetable.Problem, section *timetable.Section, slot *timetable.Slot) bool {
	forced, ok := problem.Partial[section.ID]
	if !ok {
		return true
	}
	return forced == slot.ID
}

func check500Level(state *State, section *timetable.Section, slot *timetable.Slot) bool {
	if !section.Is500Level() || section.Kind != timetable.Lecture {
		return true
	}
	for _, occupied := range state.occupied500 {
		if slot.Overlaps(occupied) {
			return false
		}
	}
	return true
}

func checkEvening(section *timetable.Section, slot *timetable.Slot) bool {
	if !section.IsEvening() {
		return true
	}
	return slot.Hour >= 18
}

func checkTuesdayEleven(section *timetable.Section, slot *timetable.Slot) bool {
	if section.Kind != timetable.Lecture {
		return true
	}
	return !(slot.Day == "TU" && slot.Hour == 11 && slot.Minute == 0)
}

func checkSpecialPairs(state *State, problem *timetable.Problem, section *timetable.Section, slot *timetable.Slot) bool {
	if section.Kind != timetable.Lecture {
		return true
	}
	for _, pair := range specialPairs {
		switch section.CourseNumber {
		case pair.special:
			base, exists := problem.LectureByNumber(section.Department, pair.base)
			if !exists {
				continue
			}
			if !(slot.Day == "TU" && slot.Hour == 18 && slot.Minute == 0) {
				return false
			}
			if baseSlot, assigned := state.ResolvedSlot(problem, base.ID); assigned && slot.Overlaps(baseSlot) {
				return false
			}
		case pair.base:
			special, exists := problem.LectureByNumber(section.Department, pair.special)
			if !exists {
				continue
			}
			specialSlot, assigned := state.ResolvedSlot(problem, special.ID)
			if !assigned {
				continue
			}
			if slot.Overlaps(specialSlot) {
				return false
			}
		}
	}
	return true
}
