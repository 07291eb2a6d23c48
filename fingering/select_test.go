package fingering

import (
	"testing"

	"github.com/jsphweid/fretfinder/instrument"
	"github.com/jsphweid/fretfinder/progression"
	"github.com/stretchr/testify/assert"
)

func TestEase(t *testing.T) {
	cases := []struct {
		name   string
		f      Fingering
		capo   int
		want   int
		wantOk bool
	}{
		{"fret below capo disqualifies", Fingering{0: 1, 1: 3, 2: 3}, 3, 0, false},
		{"capo frets are left out of the span", Fingering{0: 3, 1: 3, 2: 5}, 3, 0, true},
		{"only capo frets", Fingering{0: 2, 3: 2}, 2, 0, true},
		{"open frets are left out of the span", Fingering{0: 0, 1: 1, 2: 0, 3: 2}, 0, 1, true},
		{"span above capo", Fingering{0: 1, 1: 4, 2: 6}, 1, 2, true},
		{"empty", Fingering{}, 5, 0, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := Ease(c.f, c.capo)
			assert.Equal(t, c.wantOk, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestEaseDefinedImpliesNoFretBelowCapo(t *testing.T) {
	fs := Find(instrument.Guitar(), cMajor, WithFretPolicy(LowestFret))
	for capo := 0; capo <= 12; capo++ {
		for _, f := range fs {
			if _, ok := Ease(f, capo); !ok {
				continue
			}
			for _, fret := range f {
				assert.GreaterOrEqual(t, fret, capo)
			}
		}
	}
}

func TestClosedCount(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1, ClosedCount(Fingering{0: 3, 1: 3, 2: 5}, 3))
	assert.Equal(3, ClosedCount(Fingering{0: 3, 1: 3, 2: 5}, 0))
	assert.Equal(0, ClosedCount(Fingering{}, 0))
}

func TestSelectBestPrefersFewestClosedStrings(t *testing.T) {
	fs := []Fingering{
		{0: 5, 1: 6, 2: 7},
		{0: 3, 1: 3, 2: 5},
		{0: 3, 1: 4, 2: 5},
	}

	best, ok := SelectBest(fs, 3, DefaultMaxEase)

	assert := assert.New(t)
	assert.True(ok)
	assert.Equal(fs[1], best)
}

func TestSelectBestTiesGoToFirstSeen(t *testing.T) {
	fs := []Fingering{
		{0: 5, 1: 6},
		{0: 7, 1: 8},
	}

	best, ok := SelectBest(fs, 0, DefaultMaxEase)
	assert.True(t, ok)
	assert.Equal(t, fs[0], best)
}

func TestSelectBestRespectsMaxEase(t *testing.T) {
	fs := []Fingering{
		{0: 1, 1: 5},
		{0: 2, 1: 7},
	}

	_, ok := SelectBest(fs, 0, DefaultMaxEase)
	assert.False(t, ok)

	best, ok := SelectBest(fs, 0, 5)
	assert.True(t, ok)
	assert.Equal(t, fs[0], best)
}

func TestSelectBestNothingPlayable(t *testing.T) {
	_, ok := SelectBest(nil, 0, DefaultMaxEase)
	assert.False(t, ok)

	_, ok = SelectBest([]Fingering{{0: 1, 1: 2}}, 3, DefaultMaxEase)
	assert.False(t, ok)
}

func TestSelectBestReturnsCopy(t *testing.T) {
	fs := []Fingering{{0: 3}}
	best, _ := SelectBest(fs, 0, DefaultMaxEase)
	best[0] = 9
	assert.Equal(t, 3, fs[0][0])
}

func TestSelectBestCMajorScenario(t *testing.T) {
	g := instrument.Guitar()
	for _, policy := range []FretPolicy{HighestFret, LowestFret} {
		t.Run(policy.String(), func(t *testing.T) {
			fs := Find(g, cMajor, WithFretPolicy(policy))
			best, ok := SelectBest(fs, 0, DefaultMaxEase)

			assert := assert.New(t)
			assert.True(ok)
			assertCovers(t, g, cMajor, best)

			ease, ok := Ease(best, 0)
			assert.True(ok)
			assert.Less(ease, DefaultMaxEase)

			closed := ClosedCount(best, 0)
			for _, f := range fs {
				if e, ok := Ease(f, 0); ok && e < DefaultMaxEase {
					assert.GreaterOrEqual(ClosedCount(f, 0), closed)
				}
			}
		})
	}
}

func TestSelectBestNeverExceedsMaxEase(t *testing.T) {
	g := instrument.Guitar()
	for name, prog := range progression.Builtin {
		t.Run(name, func(t *testing.T) {
			for _, c := range prog.Chords {
				for maxEase := 1; maxEase <= 5; maxEase++ {
					best, ok := SelectBest(Find(g, c), prog.Capo, maxEase)
					if !ok {
						continue
					}
					ease, defined := Ease(best, prog.Capo)
					assert.True(t, defined)
					assert.Less(t, ease, maxEase)
				}
			}
		})
	}
}

func TestEasiest(t *testing.T) {
	fs := []Fingering{
		{0: 2, 1: 5},
		{0: 2, 1: 3},
		{0: 0, 1: 2},
	}

	ease, ok := Easiest(fs, 1)
	assert.True(t, ok)
	assert.Equal(t, 1, ease)

	_, ok = Easiest(fs, 4)
	assert.False(t, ok)
}

func TestChoose(t *testing.T) {
	c := Choose([]Fingering{{0: 3, 1: 3, 2: 5}}, 3, DefaultMaxEase)

	assert := assert.New(t)
	assert.True(c.Found)
	assert.Equal(0, c.Ease)
	assert.Equal(1, c.Closed)

	assert.False(Choose(nil, 0, DefaultMaxEase).Found)
}

func TestValidateCapo(t *testing.T) {
	assert := assert.New(t)
	assert.NoError(ValidateCapo(0))
	assert.NoError(ValidateCapo(3))
	assert.ErrorIs(ValidateCapo(-1), ErrNegativeCapo)
}
