package pitch

import "fmt"

// Pitch is a pitch class (0-11) in a given octave. Octave 4 holds middle C.
type Pitch struct {
	Class  int `json:"class"`
	Octave int `json:"octave"`
}

const SemitonesPerOctave = 12

var sharpNames = [SemitonesPerOctave]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Normalize folds an unbounded semitone offset into a Pitch, carrying whole
// octaves into octave. Negative offsets borrow from lower octaves.
func Normalize(offset, octave int) Pitch {
	total := offset + SemitonesPerOctave*octave
	oct := total / SemitonesPerOctave
	class := total % SemitonesPerOctave
	if class < 0 {
		class += SemitonesPerOctave
		oct--
	}
	return Pitch{Class: class, Octave: oct}
}

func Transpose(p Pitch, semitones int) Pitch {
	return Normalize(p.Class+semitones, p.Octave)
}

// FromMIDI converts a MIDI key number (60 = C4) to a Pitch.
func FromMIDI(key int) Pitch {
	return Normalize(key, -1)
}

func (p Pitch) MIDI() int {
	return (p.Octave+1)*SemitonesPerOctave + p.Class
}

func (p Pitch) Less(o Pitch) bool {
	if p.Octave != o.Octave {
		return p.Octave < o.Octave
	}
	return p.Class < o.Class
}

func (p Pitch) SameClass(o Pitch) bool {
	return p.Class == o.Class
}

func (p Pitch) String() string {
	n := Normalize(p.Class, p.Octave)
	return fmt.Sprintf("%s%d", sharpNames[n.Class], n.Octave)
}
