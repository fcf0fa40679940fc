// Package input reads the line-oriented timetabling input file format:
// a sequence of header-introduced sections, each holding comma-separated
// rows, as described by the external-interfaces table of the spec this
// solver implements.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/calgarycs/timetable/internal/timetable"
)

const (
	hdrName          = "Name:"
	hdrLectureSlots  = "Lecture slots:"
	hdrTutorialSlots = "Tutorial slots:"
	hdrLectures      = "Lectures:"
	hdrTutorials     = "Tutorials:"
	hdrNotCompatible = "Not compatible:"
	hdrUnwanted      = "Unwanted:"
	hdrPreferences   = "Preferences:"
	hdrPair          = "Pair:"
	hdrPartial       = "Partial assignments:"
)

var headers = []string{
	hdrName, hdrLectureSlots, hdrTutorialSlots, hdrLectures, hdrTutorials,
	hdrNotCompatible, hdrUnwanted, hdrPreferences, hdrPair, hdrPartial,
}

// Parse reads the timetabling input at path and builds a Problem. The
// eight numeric weights are supplied separately (they come from the
// command line, not the file) via ApplyWeights.
func Parse(path string) (*timetable.Problem, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ParseReader(path, fp)
}

// ParseReader is Parse with an already-open reader, for testing without
// touching the filesystem.
func ParseReader(name string, r io.Reader) (*timetable.Problem, error) {
	problem := timetable.NewProblem()

	section := ""
	lineNumber := 0
	lecturePos, tutorialPos := 0, 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNumber++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		if hdr, isHeader := matchHeader(raw); isHeader {
			section = hdr
			continue
		}

		fields := splitFields(raw)
		var err error
		switch section {
		case hdrName:
			// informational only

		case hdrLectureSlots:
			var slot *timetable.Slot
			if slot, err = timetable.ParseSlotHeader(fields, timetable.Lecture, lecturePos); err == nil {
				problem.AddLectureSlot(slot)
				lecturePos++
			}

		case hdrTutorialSlots:
			var slot *timetable.Slot
			if slot, err = timetable.ParseSlotHeader(fields, timetable.Tutorial, tutorialPos); err == nil {
				problem.AddTutorialSlot(slot)
				tutorialPos++
			}

		case hdrLectures:
			err = addSection(problem, fields)

		case hdrTutorials:
			err = addSection(problem, fields)

		case hdrNotCompatible:
			err = addNotCompatible(problem, fields)

		case hdrUnwanted:
			err = addUnwanted(problem, fields)

		case hdrPreferences:
			err = addPreference(problem, fields)

		case hdrPair:
			err = addPair(problem, fields)

		case hdrPartial:
			err = addPartial(problem, fields)

		default:
			err = fmt.Errorf("data row found before any section header")
		}

		if err != nil {
			return nil, fmt.Errorf("%q line %d: %v", name, lineNumber, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%q: %v", name, err)
	}

	return problem, nil
}

func matchHeader(line string) (string, bool) {
	for _, h := range headers {
		if strings.HasPrefix(line, h) {
			return h, true
		}
	}
	return "", false
}

func splitFields(line string) []string {
	parts := strings.Split(line, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

func addSection(problem *timetable.Problem, fields []string) error {
	if len(fields) == 0 || fields[0] == "" {
		return fmt.Errorf("expected a section identifier")
	}
	al := false
	if len(fields) > 1 {
		switch strings.ToLower(fields[1]) {
		case "true":
			al = true
		case "false", "":
			al = false
		default:
			return fmt.Errorf("expected true or false for the active-learning flag, found %q", fields[1])
		}
	}
	sec, err := timetable.ParseSection(fields[0], al)
	if err != nil {
		return err
	}
	return problem.AddSection(sec)
}

func addNotCompatible(problem *timetable.Problem, fields []string) error {
	if len(fields) < 2 {
		return fmt.Errorf("expected %q", "section-id-1, section-id-2")
	}
	if _, ok := problem.Section(fields[0]); !ok {
		return nil // unknown section: silently skipped
	}
	if _, ok := problem.Section(fields[1]); !ok {
		return nil
	}
	problem.AddIncompatible(fields[0], fields[1])
	return nil
}

func addUnwanted(problem *timetable.Problem, fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("expected %q", "section-id, DAY, HH:MM")
	}
	if _, ok := problem.Section(fields[0]); !ok {
		return nil
	}
	slotID := timetable.SlotID(fields[1], fields[2])
	problem.AddUnwanted(fields[0], slotID)
	return nil
}

func addPreference(problem *timetable.Problem, fields []string) error {
	if len(fields) < 4 {
		return fmt.Errorf("expected %q", "DAY, HH:MM, section-id, integer")
	}
	sectionID := fields[2]
	if _, ok := problem.Section(sectionID); !ok {
		return nil
	}
	value, err := strconv.Atoi(fields[3])
	if err != nil {
		return fmt.Errorf("invalid preference value %q: %v", fields[3], err)
	}
	slotID := timetable.SlotID(fields[0], fields[1])
	problem.Preferences[sectionID] = append(problem.Preferences[sectionID], timetable.Preference{SlotID: slotID, Value: value})
	return nil
}

func addPair(problem *timetable.Problem, fields []string) error {
	if len(fields) < 2 {
		return fmt.Errorf("expected %q", "section-id-1, section-id-2")
	}
	if _, ok := problem.Section(fields[0]); !ok {
		return nil
	}
	if _, ok := problem.Section(fields[1]); !ok {
		return nil
	}
	problem.Pairs = append(problem.Pairs, [2]string{fields[0], fields[1]})
	return nil
}

func addPartial(problem *timetable.Problem, fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("expected %q", "section-id, DAY, HH:MM")
	}
	if _, ok := problem.Section(fields[0]); !ok {
		return nil
	}
	problem.Partial[fields[0]] = timetable.SlotID(fields[1], fields[2])
	return nil
}

// ApplyWeights attaches the eight command-line weights to a parsed Problem.
func ApplyWeights(problem *timetable.Problem, w timetable.Weights) {
	problem.Weights = w
}
