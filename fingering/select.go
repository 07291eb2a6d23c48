package fingering

import (
	"errors"

	"github.com/jsphweid/fretfinder/util"
)

// DefaultMaxEase is the exclusive upper bound on span for a playable choice.
const DefaultMaxEase = 4

var ErrNegativeCapo = errors.New("capo must not be negative")

// ValidateCapo rejects capo positions below the nut.
func ValidateCapo(capo int) error {
	if capo < 0 {
		return ErrNegativeCapo
	}
	return nil
}

// Ease is the fret span of f ignoring frets held by the capo. It is undefined
// (false) when any other fret sits below the capo.
func Ease(f Fingering, capo int) (int, bool) {
	var used []int
	for _, fret := range distinctFrets(f) {
		if fret == capo {
			continue
		}
		if fret < capo {
			return 0, false
		}
		used = append(used, fret)
	}
	return util.Span(used), true
}

// ClosedCount is the number of strings that need a finger, i.e. are not
// stopped by the capo alone.
func ClosedCount(f Fingering, capo int) int {
	var n int
	for _, fret := range f {
		if fret != capo {
			n++
		}
	}
	return n
}

// SelectBest picks the fingering with the fewest closed strings among those
// whose ease is defined and below maxEase. Ties go to the earliest in fs.
func SelectBest(fs []Fingering, capo int, maxEase int) (Fingering, bool) {
	var best Fingering
	bestClosed := -1
	for _, f := range fs {
		ease, ok := Ease(f, capo)
		if !ok || ease >= maxEase {
			continue
		}
		closed := ClosedCount(f, capo)
		if bestClosed < 0 || closed < bestClosed {
			best = f
			bestClosed = closed
		}
	}
	if bestClosed < 0 {
		return nil, false
	}
	return best.clone(), true
}

// Easiest is the smallest defined ease among fs.
func Easiest(fs []Fingering, capo int) (int, bool) {
	best, found := 0, false
	for _, f := range fs {
		ease, ok := Ease(f, capo)
		if ok && (!found || ease < best) {
			best, found = ease, true
		}
	}
	return best, found
}

// Choice is the outcome of selecting a fingering for one chord.
type Choice struct {
	Fingering Fingering
	Ease      int
	Closed    int
	Found     bool
}

// Choose runs SelectBest and fills in the scores of the winner.
func Choose(fs []Fingering, capo int, maxEase int) Choice {
	f, ok := SelectBest(fs, capo, maxEase)
	if !ok {
		return Choice{}
	}
	ease, _ := Ease(f, capo)
	return Choice{Fingering: f, Ease: ease, Closed: ClosedCount(f, capo), Found: true}
}
