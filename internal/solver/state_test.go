package solver

import (
	"testing"

	"github.com/calgarycs/timetable/internal/timetable"
)

func TestAssignReturnsNewStateWithoutMutatingParent(t *testing.T) {
	slot := timetable.NewSlot("MO", "8:00", 8, 0, 1, 0, 0, timetable.Lecture, 0)
	sec := mustSection(t, "X 100 LEC 01")

	parent := NewState()
	child := parent.Assign(sec, slot)

	if len(parent.Assignments) != 0 {
		t.Fatalf("the parent state must not be mutated by Assign")
	}
	if child.Assignments[sec.ID] != slot.ID {
		t.Fatalf("expected the child to carry the new assignment")
	}
	if parent.UsageAt(timetable.Lecture, slot.ID).total() != 0 {
		t.Fatalf("the parent's usage counters must not change")
	}
	if child.UsageAt(timetable.Lecture, slot.ID).total() != 1 {
		t.Fatalf("expected the child's usage counter to reflect the new assignment")
	}
}

func TestIsCompleteCountsBothLecturesAndTutorials(t *testing.T) {
	p := timetable.NewProblem()
	lecSlot := timetable.NewSlot("MO", "8:00", 8, 0, 1, 0, 0, timetable.Lecture, 0)
	tutSlot := timetable.NewSlot("TU", "9:00", 9, 0, 1, 0, 0, timetable.Tutorial, 0)
	p.AddLectureSlot(lecSlot)
	p.AddTutorialSlot(tutSlot)
	lec := mustSection(t, "X 100 LEC 01")
	tut := mustSection(t, "X 100 LEC 01 TUT 02")
	p.AddSection(lec)
	p.AddSection(tut)

	state := NewState()
	if state.IsComplete(p) {
		t.Fatalf("the empty state must not be complete")
	}
	state = state.Assign(lec, lecSlot)
	if state.IsComplete(p) {
		t.Fatalf("a state missing the tutorial must not be complete")
	}
	state = state.Assign(tut, tutSlot)
	if !state.IsComplete(p) {
		t.Fatalf("a state with every section bound must be complete")
	}
}

func TestUnassignedExcludesBoundSections(t *testing.T) {
	p := timetable.NewProblem()
	slot := timetable.NewSlot("MO", "8:00", 8, 0, 2, 0, 0, timetable.Lecture, 0)
	p.AddLectureSlot(slot)
	a := mustSection(t, "X 100 LEC 01")
	b := mustSection(t, "X 200 LEC 01")
	p.AddSection(a)
	p.AddSection(b)

	state := NewState().Assign(a, slot)
	remaining := state.Unassigned(p)
	if len(remaining) != 1 || remaining[0].ID != b.ID {
		t.Fatalf("expected only %q to remain unassigned, got %+v", b.ID, remaining)
	}
}

func TestSlotOverlapsIsSymmetricAndReflexive(t *testing.T) {
	a := timetable.NewSlot("MO", "8:00", 8, 0, 1, 0, 0, timetable.Lecture, 0)
	b := timetable.NewSlot("WE", "8:00", 8, 0, 1, 0, 0, timetable.Lecture, 1)
	if !a.Overlaps(a) {
		t.Fatalf("a slot must always overlap itself")
	}
	if a.Overlaps(b) != b.Overlaps(a) {
		t.Fatalf("overlap must be symmetric")
	}
}
