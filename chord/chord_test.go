package chord

import (
	"testing"

	"github.com/jsphweid/fretfinder/pitch"
	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestNewSortsAndCollapsesDuplicates(t *testing.T) {
	c := New(
		pitch.Pitch{Class: 7, Octave: 4},
		pitch.Pitch{Class: 0, Octave: 3},
		pitch.Pitch{Class: 4, Octave: 4},
		pitch.Pitch{Class: 7, Octave: 4},
	)

	assert := assert.New(t)
	assert.Equal(3, c.Len())
	assert.Equal([]pitch.Pitch{{Class: 0, Octave: 3}, {Class: 4, Octave: 4}, {Class: 7, Octave: 4}}, c.Pitches())
	assert.Equal("{C3 E4 G4}", c.String())
}

func TestNewNormalizesInput(t *testing.T) {
	c := New(pitch.Pitch{Class: 12, Octave: 3}, pitch.Pitch{Class: 0, Octave: 4})
	assert.Equal(t, 1, c.Len())
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	c, err := Parse([]string{"bes2", "f4", "g4", "d5"})
	assert.NoError(err)
	assert.Equal("46-65-67-74", c.Key())

	_, err = Parse([]string{"c3", "x4"})
	assert.Error(err)
}

func TestCreateChordKeyDoesNotMutateInput(t *testing.T) {
	notes := []uint8{67, 60, 64}
	assert.Equal(t, "60-64-67", CreateChordKey(notes))
	assert.Equal(t, []uint8{67, 60, 64}, notes)
}

func event(delta uint32, msg midi.Message) smf.Event {
	return smf.Event{Delta: delta, Message: smf.Message(msg)}
}

func TestFromSMF(t *testing.T) {
	s := &smf.SMF{
		Tracks: []smf.Track{
			{
				event(0, midi.NoteOn(0, 48, 100)),
				event(0, midi.NoteOn(0, 64, 100)),
				event(480, midi.NoteOff(0, 64)),
				event(0, midi.NoteOn(0, 65, 100)),
				event(480, midi.NoteOff(0, 48)),
				event(0, midi.NoteOff(0, 65)),
			},
			{
				event(0, midi.NoteOn(1, 67, 90)),
				event(480, midi.NoteOn(1, 67, 0)),
			},
		},
	}

	chords, err := FromSMF(s)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(chords, 2)
	assert.Equal(int64(0), chords[0].Tick)
	assert.Equal("48-64-67", chords[0].Chord.Key())
	assert.Equal(int64(480), chords[1].Tick)
	assert.Equal("48-65", chords[1].Chord.Key())
}
