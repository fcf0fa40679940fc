package timetable

import "testing"

func TestProblemAddAndLookupSlots(t *testing.T) {
	p := NewProblem()
	lec := NewSlot("MO", "8:00", 8, 0, 3, 1, 0, Lecture, 0)
	tut := NewSlot("TU", "9:00", 9, 0, 2, 0, 0, Tutorial, 0)
	p.AddLectureSlot(lec)
	p.AddTutorialSlot(tut)

	if got, ok := p.Slot(lec.ID, Lecture); !ok || got != lec {
		t.Fatalf("expected to find the lecture slot by id")
	}
	if _, ok := p.Slot(lec.ID, Tutorial); ok {
		t.Fatalf("a lecture slot id should not resolve in the tutorial pool")
	}
	if len(p.SlotsFor(Lecture)) != 1 || len(p.SlotsFor(Tutorial)) != 1 {
		t.Fatalf("expected one slot in each pool")
	}
	if len(p.AllSlots()) != 2 {
		t.Fatalf("expected AllSlots to concatenate both pools")
	}
}

func TestProblemAddSectionRejectsDuplicates(t *testing.T) {
	p := NewProblem()
	a, _ := ParseSection("CPSC 433 LEC 01", false)
	b, _ := ParseSection("CPSC 433 LEC 01", false)

	if err := p.AddSection(a); err != nil {
		t.Fatalf("unexpected error adding the first section: %v", err)
	}
	if err := p.AddSection(b); err == nil {
		t.Fatalf("expected an error for a duplicate section id")
	}

	got, ok := p.Section("CPSC 433 LEC 01")
	if !ok || got != a {
		t.Fatalf("expected to find the section by id")
	}
}

func TestProblemAllSectionsOrdersLecturesBeforeTutorials(t *testing.T) {
	p := NewProblem()
	lec, _ := ParseSection("CPSC 433 LEC 01", false)
	tut, _ := ParseSection("CPSC 433 LEC 01 TUT 02", false)
	p.AddSection(tut)
	p.AddSection(lec)

	all := p.AllSections()
	if len(all) != 2 || all[0] != lec || all[1] != tut {
		t.Fatalf("expected lectures before tutorials, got %+v", all)
	}
}

func TestProblemAddIncompatibleIsBidirectional(t *testing.T) {
	p := NewProblem()
	p.AddIncompatible("A", "B")

	if !p.Incompatible["A"]["B"] || !p.Incompatible["B"]["A"] {
		t.Fatalf("expected the incompatibility to be recorded in both directions")
	}
}

func TestProblemAddUnwanted(t *testing.T) {
	p := NewProblem()
	p.AddUnwanted("A", "MO, 8:00")
	p.AddUnwanted("A", "TU, 9:00")

	if len(p.Unwanted["A"]) != 2 {
		t.Fatalf("expected two unwanted slots recorded for section A")
	}
	if !p.Unwanted["A"]["MO, 8:00"] {
		t.Fatalf("expected MO, 8:00 to be recorded as unwanted")
	}
}

func TestProblemLectureByNumber(t *testing.T) {
	p := NewProblem()
	lec, _ := ParseSection("CPSC 351 LEC 01", false)
	p.AddSection(lec)

	got, ok := p.LectureByNumber("CPSC", 351)
	if !ok || got != lec {
		t.Fatalf("expected to find CPSC 351's lecture")
	}
	if _, ok := p.LectureByNumber("CPSC", 851); ok {
		t.Fatalf("did not expect to find a lecture that was never added")
	}
}
