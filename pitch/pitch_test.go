package pitch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCarriesAndBorrows(t *testing.T) {
	cases := []struct {
		offset, octave int
		want           Pitch
	}{
		{0, 4, Pitch{0, 4}},
		{11, 4, Pitch{11, 4}},
		{12, 4, Pitch{0, 5}},
		{25, 2, Pitch{1, 4}},
		{-1, 4, Pitch{11, 3}},
		{-12, 4, Pitch{0, 3}},
		{-13, 0, Pitch{11, -2}},
	}

	for _, c := range cases {
		name := fmt.Sprintf("normalize(%v, %v)", c.offset, c.octave)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.want, Normalize(c.offset, c.octave))
		})
	}
}

func TestNormalizeIsIdempotentAndInRange(t *testing.T) {
	assert := assert.New(t)
	for offset := -40; offset <= 40; offset++ {
		for octave := -3; octave <= 6; octave++ {
			p := Normalize(offset, octave)
			assert.GreaterOrEqual(p.Class, 0)
			assert.Less(p.Class, 12)
			assert.Equal(p, Normalize(p.Class, p.Octave))
		}
	}
}

func TestTransposeRoundTrip(t *testing.T) {
	assert := assert.New(t)
	for class := 0; class < 12; class++ {
		p := Pitch{Class: class, Octave: 3}
		for k := -30; k <= 30; k++ {
			assert.Equal(p, Transpose(Transpose(p, k), -k))
		}
	}
}

func TestMIDIConversion(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Pitch{0, 4}, FromMIDI(60))
	assert.Equal(Pitch{4, 2}, FromMIDI(40))
	assert.Equal(64, Pitch{4, 4}.MIDI())
	for key := 0; key < 128; key++ {
		assert.Equal(key, FromMIDI(key).MIDI())
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "A#2", Pitch{10, 2}.String())
	assert.Equal(t, "C4", Pitch{0, 4}.String())
}
