// Package progression holds the chord progressions shipped with the tool.
package progression

import (
	"fmt"
	"sort"

	"github.com/jsphweid/fretfinder/chord"
)

type Progression struct {
	Name   string
	Capo   int
	Chords []chord.Chord
}

// Builtin are three voicings of F C/E Dm7 F/C Gm7/Bb C F C, each with the
// capo it is meant to be played under.
var Builtin = map[string]Progression{
	"first": {
		Name: "first",
		Capo: 1,
		Chords: []chord.Chord{
			chord.MustParse("f3", "f4", "a4", "c5"),
			chord.MustParse("e3", "g4", "c5"),
			chord.MustParse("d3", "f4", "a4", "c5"),
			chord.MustParse("c3", "f4", "a4", "c5"),
			chord.MustParse("bes2", "f4", "g4", "d5"),
			chord.MustParse("c3", "e4", "g4", "c5"),
			chord.MustParse("f3", "f4", "a4", "c5"),
			chord.MustParse("c3", "e4", "g4", "c5"),
		},
	},
	"second": {
		Name: "second",
		Capo: 3,
		Chords: []chord.Chord{
			chord.MustParse("f3", "c4", "f4", "a4"),
			chord.MustParse("e3", "c4", "g4"),
			chord.MustParse("d3", "c4", "f4", "a4"),
			chord.MustParse("c3", "c4", "f4", "a4"),
			chord.MustParse("bes2", "d4", "f4", "g4"),
			chord.MustParse("c3", "c4", "e4", "g4"),
			chord.MustParse("f3", "c4", "f4", "a4"),
			chord.MustParse("c3", "c4", "e4", "g4"),
		},
	},
	"third": {
		Name: "third",
		Capo: 3,
		Chords: []chord.Chord{
			chord.MustParse("f3", "a3", "c4", "f4"),
			chord.MustParse("e3", "g3", "c4", "g4"),
			chord.MustParse("d3", "a3", "c4", "f4"),
			chord.MustParse("c3", "a3", "c4", "f4"),
			chord.MustParse("bes2", "g3", "d4", "f4", "g4"),
			chord.MustParse("c3", "g3", "c4", "e4", "g4"),
			chord.MustParse("f3", "a3", "c4", "f4"),
			chord.MustParse("c3", "g3", "c4", "e4"),
		},
	},
}

func Names() []string {
	var names []string
	for name := range Builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Get(name string) (Progression, error) {
	p, ok := Builtin[name]
	if !ok {
		return Progression{}, fmt.Errorf("unknown progression %q (have %v)", name, Names())
	}
	return p, nil
}
