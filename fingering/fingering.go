// Package fingering finds the string/fret assignments that sound a chord and
// picks the easiest one under a capo.
package fingering

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/fretfinder/instrument"
	"github.com/jsphweid/fretfinder/pitch"
	"github.com/jsphweid/fretfinder/util"
)

// Fingering maps a string index (0 = highest string) to a fret.
type Fingering map[int]int

// Strings returns the used string indexes in ascending order.
func (f Fingering) Strings() []int {
	return util.GetSortedKeys(f)
}

// Frets returns the fret of every used string, ordered by string index.
func (f Fingering) Frets() []int {
	var res []int
	for _, s := range f.Strings() {
		res = append(res, f[s])
	}
	return res
}

func (f Fingering) String() string {
	var parts []string
	for _, s := range f.Strings() {
		parts = append(parts, fmt.Sprintf("%d:%d", s, f[s]))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (f Fingering) clone() Fingering {
	res := make(Fingering, len(f))
	for s, fret := range f {
		res[s] = fret
	}
	return res
}

func distinctFrets(f Fingering) []int {
	set := make(map[int]bool, len(f))
	for _, fret := range f {
		set[fret] = true
	}
	frets := util.GetKeys(set)
	sort.Ints(frets)
	return frets
}

// Sounding lists the pitches f produces on in, ordered by string index.
func Sounding(in instrument.Instrument, f Fingering) []pitch.Pitch {
	var res []pitch.Pitch
	for _, s := range f.Strings() {
		res = append(res, in.Reachable(s, f[s]))
	}
	return res
}
