// Package spelling converts between letter note names and pitches and
// enumerates the enharmonic spellings of a pitch.
package spelling

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/fretfinder/pitch"
)

// DefaultMaxAccidentals bounds Spellings to at most one sharp or flat.
const DefaultMaxAccidentals = 1

var ErrInvalidNoteName = errors.New("invalid note name")

var letterToClass = map[rune]int{'c': 0, 'd': 2, 'e': 4, 'f': 5, 'g': 7, 'a': 9, 'b': 11}

var classToLetter = func() map[int]rune {
	m := make(map[int]rune, len(letterToClass))
	for letter, class := range letterToClass {
		m[class] = letter
	}
	return m
}()

// NoteName is a letter with a signed accidental count. Positive counts raise
// the letter ("is" in LilyPond), negative counts lower it ("es").
type NoteName struct {
	Letter      rune
	Accidentals int
	Octave      int
}

// Name is the LilyPond pitch name without octave marks, e.g. "bes" or "fis".
func (n NoteName) Name() string {
	marker := "is"
	if n.Accidentals < 0 {
		marker = "es"
	}
	return string(n.Letter) + strings.Repeat(marker, abs(n.Accidentals))
}

func (n NoteName) String() string {
	return n.Name() + strconv.Itoa(n.Octave)
}

// PitchFromName resolves a note name to its pitch.
func PitchFromName(n NoteName) pitch.Pitch {
	base, ok := letterToClass[n.Letter]
	if !ok {
		panic(fmt.Sprintf("note name has no letter %q", n.Letter))
	}
	return pitch.Normalize(base+n.Accidentals, n.Octave)
}

// Spell names p by shifting it shift semitones onto a natural letter and
// marking the difference back with accidentals. A downward shift needs
// sharps, an upward shift needs flats.
func Spell(p pitch.Pitch, shift int) (NoteName, bool) {
	moved := pitch.Transpose(p, shift)
	letter, ok := classToLetter[moved.Class]
	if !ok {
		return NoteName{}, false
	}
	return NoteName{Letter: letter, Accidentals: -shift, Octave: moved.Octave}, true
}

func Spellings(p pitch.Pitch) []NoteName {
	return SpellingsWithin(p, DefaultMaxAccidentals)
}

// SpellingsWithin returns every spelling of p using at most maxAccidentals
// markers, ordered from most sharps to most flats.
func SpellingsWithin(p pitch.Pitch, maxAccidentals int) []NoteName {
	var res []NoteName
	seen := make(map[NoteName]bool)
	for shift := -maxAccidentals; shift <= maxAccidentals; shift++ {
		n, ok := Spell(p, shift)
		if !ok || seen[n] {
			continue
		}
		seen[n] = true
		res = append(res, n)
	}
	return res
}

// Parse reads a note name with an integer octave. Accidentals may be written
// LilyPond style ("bes2", "fisis3") or with '#' and 'b' ("Bb2", "F#3").
func Parse(s string) (NoteName, error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	if lower == "" {
		return NoteName{}, fmt.Errorf("%w: empty", ErrInvalidNoteName)
	}

	letter := rune(lower[0])
	if _, ok := letterToClass[letter]; !ok {
		return NoteName{}, fmt.Errorf("%w: %q has no letter a-g", ErrInvalidNoteName, s)
	}

	rest := lower[1:]
	var accidentals int
AccidentalLoop:
	for {
		switch {
		case strings.HasPrefix(rest, "is"):
			accidentals++
			rest = rest[2:]
		case strings.HasPrefix(rest, "es"):
			accidentals--
			rest = rest[2:]
		case strings.HasPrefix(rest, "#"):
			accidentals++
			rest = rest[1:]
		case strings.HasPrefix(rest, "b"):
			accidentals--
			rest = rest[1:]
		default:
			break AccidentalLoop
		}
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return NoteName{}, fmt.Errorf("%w: %q has no octave", ErrInvalidNoteName, s)
	}
	return NoteName{Letter: letter, Accidentals: accidentals, Octave: octave}, nil
}

// ParsePitch is Parse followed by PitchFromName.
func ParsePitch(s string) (pitch.Pitch, error) {
	n, err := Parse(s)
	if err != nil {
		return pitch.Pitch{}, err
	}
	return PitchFromName(n), nil
}

// Lilypond renders n in LilyPond absolute octave notation, where the bare
// name sits in octave 3.
func Lilypond(n NoteName) string {
	primes := abs(n.Octave - 3)
	mark := "'"
	if n.Octave < 3 {
		mark = ","
	}
	return n.Name() + strings.Repeat(mark, primes)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
