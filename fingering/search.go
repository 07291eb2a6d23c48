package fingering

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/jsphweid/fretfinder/chord"
	"github.com/jsphweid/fretfinder/instrument"
	"github.com/jsphweid/fretfinder/util"
)

// FretPolicy decides which fret to keep when a string reaches the same pitch
// class at several frets.
type FretPolicy int

const (
	// HighestFret keeps the last match of an ascending fret scan.
	HighestFret FretPolicy = iota
	LowestFret
)

func (p FretPolicy) String() string {
	switch p {
	case HighestFret:
		return "highest"
	case LowestFret:
		return "lowest"
	default:
		return "unknown"
	}
}

func ParseFretPolicy(s string) (FretPolicy, error) {
	switch s {
	case "highest", "":
		return HighestFret, nil
	case "lowest":
		return LowestFret, nil
	default:
		return HighestFret, fmt.Errorf("unknown fret policy %q (want highest or lowest)", s)
	}
}

func (p FretPolicy) pick(frets []int) (int, bool) {
	if len(frets) == 0 {
		return 0, false
	}
	if p == LowestFret {
		return frets[0], true
	}
	return frets[len(frets)-1], true
}

type searchOptions struct {
	policy FretPolicy
}

type Option func(*searchOptions)

func WithFretPolicy(p FretPolicy) Option {
	return func(o *searchOptions) {
		o.policy = p
	}
}

// Find lists every complete fingering of c on in. Strings are assigned to the
// chord's pitches (in the chord's ascending order) by trying each ordered
// selection of distinct strings in lexicographic order, so the result order
// is deterministic. Matching compares pitch class only: any octave of a pitch
// on any string will do.
func Find(in instrument.Instrument, c chord.Chord, opts ...Option) []Fingering {
	o := searchOptions{policy: HighestFret}
	for _, opt := range opts {
		opt(&o)
	}

	pitches := c.Pitches()
	var res []Fingering

	// frets per (string, chord pitch) do not depend on the permutation
	candidates := make([][][]int, len(in.Tuning))
	for s := range in.Tuning {
		candidates[s] = make([][]int, len(pitches))
		for i, p := range pitches {
			candidates[s][i] = in.FretsFor(s, p)
		}
	}

	util.Permutations(len(in.Tuning), len(pitches), func(perm []int) {
		f := make(Fingering, len(pitches))
		for noteIndex, stringIndex := range perm {
			fret, ok := o.policy.pick(candidates[stringIndex][noteIndex])
			if !ok {
				return
			}
			f[stringIndex] = fret
		}
		if len(f) == len(pitches) {
			res = append(res, f)
		}
	})

	slog.Debug("fingering: search done", "chord", c.String(), "policy", o.policy.String(), "found", len(res))
	return res
}

// FindAll runs Find for each chord on a pool of GOMAXPROCS workers. Results
// keep the order of chords.
func FindAll(in instrument.Instrument, chords []chord.Chord, opts ...Option) [][]Fingering {
	return findAll(in, chords, runtime.GOMAXPROCS(0), opts...)
}

func findAll(in instrument.Instrument, chords []chord.Chord, workers int, opts ...Option) [][]Fingering {
	res := make([][]Fingering, len(chords))
	workers = util.Max(1, util.Min(workers, len(chords)))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res[i] = Find(in, chords[i], opts...)
			}
		}()
	}
	for i := range chords {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return res
}
