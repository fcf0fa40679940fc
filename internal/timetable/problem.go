package timetable

import "fmt"

// Preference records that section C would like to land on SlotID, at
// a penalty of Value if it doesn't.
type Preference struct {
	SlotID string
	Value  int
}

// Weights bundles the eight numeric knobs supplied on the command line.
type Weights struct {
	MinFilled      float64
	Preference     float64
	Pair           float64
	SectionDiff    float64
	PenLectureMin  float64 // accepted for compatibility, unused by the cost function
	PenTutorialMin float64 // accepted for compatibility, unused by the cost function
	PenNotPaired   float64
	PenSection     float64
}

// Problem is the read-only input bundle a solve run operates against.
// It never changes after construction; solver states borrow a pointer
// to it and never mutate it.
type Problem struct {
	LectureSlots  []*Slot
	TutorialSlots []*Slot

	Lectures  []*Section
	Tutorials []*Section

	Incompatible map[string]map[string]bool // section id -> set of incompatible section ids
	Unwanted     map[string]map[string]bool // section id -> set of unwanted slot ids
	Preferences  map[string][]Preference    // section id -> preferences
	Pairs        [][2]string                // required pairs, by section id
	Partial      map[string]string          // section id -> forced slot id

	Weights Weights

	sectionByID     map[string]*Section
	slotByKindAndID map[Kind]map[string]*Slot
}

// NewProblem builds an empty, mutable-during-construction Problem. Use
// the Add* methods to populate it, then treat it as read-only.
func NewProblem() *Problem {
	return &Problem{
		Incompatible:    make(map[string]map[string]bool),
		Unwanted:        make(map[string]map[string]bool),
		Preferences:     make(map[string][]Preference),
		Partial:         make(map[string]string),
		sectionByID:     make(map[string]*Section),
		slotByKindAndID: map[Kind]map[string]*Slot{Lecture: {}, Tutorial: {}},
	}
}

func (p *Problem) AddLectureSlot(s *Slot) {
	p.LectureSlots = append(p.LectureSlots, s)
	p.slotByKindAndID[Lecture][s.ID] = s
}

func (p *Problem) AddTutorialSlot(s *Slot) {
	p.TutorialSlots = append(p.TutorialSlots, s)
	p.slotByKindAndID[Tutorial][s.ID] = s
}

func (p *Problem) AddSection(s *Section) error {
	if _, exists := p.sectionByID[s.ID]; exists {
		return fmt.Errorf("duplicate section identifier %q", s.ID)
	}
	p.sectionByID[s.ID] = s
	if s.Kind == Lecture {
		p.Lectures = append(p.Lectures, s)
	} else {
		p.Tutorials = append(p.Tutorials, s)
	}
	return nil
}

// Section looks up a section by identifier.
func (p *Problem) Section(id string) (*Section, bool) {
	s, ok := p.sectionByID[id]
	return s, ok
}

// Slot looks up a slot by (identifier, kind).
func (p *Problem) Slot(id string, kind Kind) (*Slot, bool) {
	s, ok := p.slotByKindAndID[kind][id]
	return s, ok
}

// AllSections returns lectures followed by tutorials.
func (p *Problem) AllSections() []*Section {
	out := make([]*Section, 0, len(p.Lectures)+len(p.Tutorials))
	out = append(out, p.Lectures...)
	out = append(out, p.Tutorials...)
	return out
}

// AllSlots returns lecture slots followed by tutorial slots.
func (p *Problem) AllSlots() []*Slot {
	out := make([]*Slot, 0, len(p.LectureSlots)+len(p.TutorialSlots))
	out = append(out, p.LectureSlots...)
	out = append(out, p.TutorialSlots...)
	return out
}

// SlotsFor returns the candidate slot pool for a section's kind.
func (p *Problem) SlotsFor(kind Kind) []*Slot {
	if kind == Lecture {
		return p.LectureSlots
	}
	return p.TutorialSlots
}

// AddIncompatible records an unordered incompatible pair by id, both
// directions, so checker lookups are O(degree).
func (p *Problem) AddIncompatible(a, b string) {
	if p.Incompatible[a] == nil {
		p.Incompatible[a] = make(map[string]bool)
	}
	if p.Incompatible[b] == nil {
		p.Incompatible[b] = make(map[string]bool)
	}
	p.Incompatible[a][b] = true
	p.Incompatible[b][a] = true
}

// AddUnwanted records that section is not to be placed in the given slot id.
func (p *Problem) AddUnwanted(section, slotID string) {
	if p.Unwanted[section] == nil {
		p.Unwanted[section] = make(map[string]bool)
	}
	p.Unwanted[section][slotID] = true
}

// LectureByNumber finds a CPSC (or any department's) lecture by
// department and course number, used by the special-pair rule (§4.2 rule 10).
func (p *Problem) LectureByNumber(dept string, number int) (*Section, bool) {
	for _, l := range p.Lectures {
		if l.Department == dept && l.CourseNumber == number {
			return l, true
		}
	}
	return nil, false
}
