package fingering

import (
	"github.com/jsphweid/fretfinder/chord"
	"github.com/jsphweid/fretfinder/instrument"
	"gonum.org/v1/gonum/stat"
)

// CapoEases holds, for one capo position, the easiest ease of every chord of
// a progression.
type CapoEases struct {
	Capo  int
	Eases []int
}

func (c CapoEases) Mean() float64 {
	xs := make([]float64, len(c.Eases))
	for i, e := range c.Eases {
		xs[i] = float64(e)
	}
	return stat.Mean(xs, nil)
}

// SweepCapos tries capo 0..maxCapo and stops at the first capo under which
// some chord has no fingering with a defined ease.
func SweepCapos(in instrument.Instrument, chords []chord.Chord, maxCapo int, opts ...Option) []CapoEases {
	found := FindAll(in, chords, opts...)

	var res []CapoEases
	for capo := 0; capo <= maxCapo; capo++ {
		row := CapoEases{Capo: capo}
		for _, fs := range found {
			ease, ok := Easiest(fs, capo)
			if !ok {
				return res
			}
			row.Eases = append(row.Eases, ease)
		}
		res = append(res, row)
	}
	return res
}

// SuggestCapo returns the swept capo with the lowest mean ease; the lower
// capo wins a tie.
func SuggestCapo(sweep []CapoEases) (CapoEases, bool) {
	if len(sweep) == 0 {
		return CapoEases{}, false
	}
	best := sweep[0]
	for _, row := range sweep[1:] {
		if row.Mean() < best.Mean() {
			best = row
		}
	}
	return best, true
}
