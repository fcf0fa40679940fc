package timetable

import (
	"fmt"
	"strconv"
	"strings"
)

// Section is a concrete lecture or tutorial/lab offering.
type Section struct {
	ID                     string
	Department             string
	CourseNumber           int
	Kind                   Kind
	SectionNumber          string
	ParentLectureID        string // non-empty iff this is a tutorial
	IsLab                  bool   // true when the id used a LAB token rather than TUT
	ActiveLearningRequired bool
}

// Is500Level reports whether the course number falls in [500, 599].
func (s *Section) Is500Level() bool {
	return s.CourseNumber >= 500 && s.CourseNumber <= 599
}

// IsEvening reports whether the section number begins with '9'.
func (s *Section) IsEvening() bool {
	return strings.HasPrefix(s.SectionNumber, "9")
}

// ParseSection parses a section identifier of the form
// "DEPT NUM LEC NN" or "DEPT NUM LEC NN TUT MM" (or "LAB MM"), with an
// optional trailing "true"/"false" active-learning flag already split out.
func ParseSection(id string, activeLearningRequired bool) (*Section, error) {
	fields := strings.Fields(id)
	if len(fields) < 4 {
		return nil, fmt.Errorf("malformed section identifier %q", id)
	}

	dept := fields[0]
	number, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("malformed course number in %q: %v", id, err)
	}
	if fields[2] != "LEC" {
		return nil, fmt.Errorf("expected LEC after course number in %q", id)
	}
	lecSection := fields[3]

	sec := &Section{
		ID:                     id,
		Department:             dept,
		CourseNumber:           number,
		SectionNumber:          lecSection,
		Kind:                   Lecture,
		ActiveLearningRequired: activeLearningRequired,
	}

	switch {
	case len(fields) == 4:
		// plain lecture
	case len(fields) == 6 && (fields[4] == "TUT" || fields[4] == "LAB"):
		sec.Kind = Tutorial
		sec.IsLab = fields[4] == "LAB"
		sec.SectionNumber = fields[5]
		sec.ParentLectureID = strings.Join(fields[:4], " ")
	default:
		return nil, fmt.Errorf("malformed section identifier %q", id)
	}

	return sec, nil
}

// SubKind distinguishes the three usage counters a slot tracks: a
// section is either a lecture, a lab, or a (non-lab) tutorial.
type SubKind int

const (
	SubLecture SubKind = iota
	SubTutorial
	SubLab
)

func (s *Section) SubKind() SubKind {
	switch {
	case s.Kind == Lecture:
		return SubLecture
	case s.IsLab:
		return SubLab
	default:
		return SubTutorial
	}
}
