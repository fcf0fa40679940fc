package main

import "testing"

func TestParseWeightsOrdersFieldsPositionally(t *testing.T) {
	w, err := parseWeights([]string{"1", "2", "3", "4", "5", "6", "7", "8"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.MinFilled != 1 || w.Preference != 2 || w.Pair != 3 || w.SectionDiff != 4 ||
		w.PenLectureMin != 5 || w.PenTutorialMin != 6 || w.PenNotPaired != 7 || w.PenSection != 8 {
		t.Fatalf("weights parsed out of order: %+v", w)
	}
}

func TestParseWeightsRejectsNonNumeric(t *testing.T) {
	if _, err := parseWeights([]string{"x", "0", "0", "0", "0", "0", "0", "0"}); err == nil {
		t.Fatalf("expected an error for a non-numeric weight")
	}
}
