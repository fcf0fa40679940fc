package input

import (
	"strings"
	"testing"

	"github.com/calgarycs/timetable/internal/timetable"
)

const sample = `
Name: Fall 2026

Lecture slots:
MO, 8:00, 3, 2, 1
TU, 11:00, 2, 1, 0

Tutorial slots:
MO, 14:00, 2, 1, 0

Lectures:
CPSC 433 LEC 01
CPSC 331 LEC 01, true

Tutorials:
CPSC 433 LEC 01 TUT 02
CPSC 433 LEC 01 LAB 03

Not compatible:
CPSC 433 LEC 01, CPSC 331 LEC 01

Unwanted:
CPSC 433 LEC 01, TU, 11:00

Preferences:
MO, 8:00, CPSC 433 LEC 01, 10

Pair:
CPSC 433 LEC 01, CPSC 331 LEC 01

Partial assignments:
CPSC 331 LEC 01, MO, 8:00
`

func TestParseReaderFullSample(t *testing.T) {
	p, err := ParseReader("sample", strings.NewReader(sample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(p.LectureSlots) != 2 || len(p.TutorialSlots) != 1 {
		t.Fatalf("expected 2 lecture slots and 1 tutorial slot, got %d/%d", len(p.LectureSlots), len(p.TutorialSlots))
	}
	if len(p.Lectures) != 2 || len(p.Tutorials) != 2 {
		t.Fatalf("expected 2 lectures and 2 tutorials, got %d/%d", len(p.Lectures), len(p.Tutorials))
	}

	lec, ok := p.Section("CPSC 331 LEC 01")
	if !ok || !lec.ActiveLearningRequired {
		t.Fatalf("expected CPSC 331 LEC 01 to require active learning")
	}

	if !p.Incompatible["CPSC 433 LEC 01"]["CPSC 331 LEC 01"] {
		t.Fatalf("expected the not-compatible row to be recorded")
	}
	if !p.Unwanted["CPSC 433 LEC 01"][timetable.SlotID("TU", "11:00")] {
		t.Fatalf("expected the unwanted row to be recorded")
	}
	prefs := p.Preferences["CPSC 433 LEC 01"]
	if len(prefs) != 1 || prefs[0].Value != 10 || prefs[0].SlotID != timetable.SlotID("MO", "8:00") {
		t.Fatalf("preference row parsed incorrectly: %+v", prefs)
	}
	if len(p.Pairs) != 1 || p.Pairs[0] != [2]string{"CPSC 433 LEC 01", "CPSC 331 LEC 01"} {
		t.Fatalf("expected the pair row to be recorded")
	}
	if p.Partial["CPSC 331 LEC 01"] != timetable.SlotID("MO", "8:00") {
		t.Fatalf("expected the partial assignment to be recorded")
	}
}

func TestParseReaderSkipsRowsCitingUnknownSections(t *testing.T) {
	doc := `
Lectures:
CPSC 433 LEC 01

Not compatible:
CPSC 433 LEC 01, CPSC 999 LEC 01
`
	p, err := ParseReader("sample", strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Incompatible) != 0 {
		t.Fatalf("expected the row citing an unknown section to be silently skipped, got %+v", p.Incompatible)
	}
}

func TestParseReaderRejectsMalformedSlotRow(t *testing.T) {
	doc := `
Lecture slots:
MO, 8:00
`
	if _, err := ParseReader("sample", strings.NewReader(doc)); err == nil {
		t.Fatalf("expected an error for a truncated slot row")
	} else if !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("expected the error to cite the offending line number, got %v", err)
	}
}

func TestParseReaderRejectsBadActiveLearningFlag(t *testing.T) {
	doc := `
Lectures:
CPSC 433 LEC 01, maybe
`
	if _, err := ParseReader("sample", strings.NewReader(doc)); err == nil {
		t.Fatalf("expected an error for an invalid active-learning flag")
	}
}
