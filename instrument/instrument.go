package instrument

import (
	"strings"

	"github.com/jsphweid/fretfinder/pitch"
	"github.com/jsphweid/fretfinder/spelling"
)

const (
	NumStrings = 6

	// DefaultMaxFret covers the whole neck for chord search.
	DefaultMaxFret = 20

	// PracticeMaxFret is the smaller range used for single-note practice.
	PracticeMaxFret = 13
)

// Tuning lists open-string pitches from the highest string (index 0) to the
// lowest.
type Tuning [NumStrings]pitch.Pitch

// Standard is E4 B3 G3 D3 A2 E2.
var Standard = Tuning{
	{Class: 4, Octave: 4},
	{Class: 11, Octave: 3},
	{Class: 7, Octave: 3},
	{Class: 2, Octave: 3},
	{Class: 9, Octave: 2},
	{Class: 4, Octave: 2},
}

type Instrument struct {
	Tuning  Tuning
	MaxFret int
}

func New(t Tuning, maxFret int) Instrument {
	return Instrument{Tuning: t, MaxFret: maxFret}
}

// Guitar is a standard-tuned six string with the full chord range.
func Guitar() Instrument {
	return New(Standard, DefaultMaxFret)
}

// ParseTuning reads six space separated note names, highest string first,
// e.g. "e4 b3 g3 d3 a2 d2".
func ParseTuning(s string) (Tuning, error) {
	var t Tuning
	fields := strings.Fields(s)
	if len(fields) != NumStrings {
		return t, ErrTuningLength
	}
	for i, f := range fields {
		p, err := spelling.ParsePitch(f)
		if err != nil {
			return t, err
		}
		t[i] = p
	}
	return t, nil
}

func (in Instrument) Reachable(stringIndex, fret int) pitch.Pitch {
	return pitch.Transpose(in.Tuning[stringIndex], fret)
}

// FretsFor scans frets 0..MaxFret in ascending order and reports each one
// whose pitch class matches target, ignoring octave.
func (in Instrument) FretsFor(stringIndex int, target pitch.Pitch) []int {
	var res []int
	for fret := 0; fret <= in.MaxFret; fret++ {
		if in.Reachable(stringIndex, fret).SameClass(target) {
			res = append(res, fret)
		}
	}
	return res
}

// Occurrences counts how many (string, fret) positions up to maxFret sound
// each pitch.
func (in Instrument) Occurrences(maxFret int) map[pitch.Pitch]int {
	res := make(map[pitch.Pitch]int)
	for s := range in.Tuning {
		for fret := 0; fret <= maxFret; fret++ {
			res[in.Reachable(s, fret)]++
		}
	}
	return res
}

// Header labels the strings for diagram output, e.g. " e  B  G  D  A  E".
// Strings at or above octave 4 use lower case letters.
func (in Instrument) Header() string {
	cells := make([]string, 0, NumStrings)
	for _, open := range in.Tuning {
		label := "?"
		if names := spelling.Spellings(open); len(names) > 0 {
			label = names[0].Name()
			for _, n := range names {
				if n.Accidentals == 0 {
					label = n.Name()
				}
			}
		}
		if open.Octave < 4 {
			label = strings.ToUpper(label[:1]) + label[1:]
		}
		cells = append(cells, padLeft(label, 2))
	}
	return strings.Join(cells, " ")
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
