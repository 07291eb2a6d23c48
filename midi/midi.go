package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/fretfinder/pitch"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	TicksPerQuarter = 960

	// ChordTicks is how long each voicing sounds in a written progression.
	ChordTicks = 3 * TicksPerQuarter

	velocity = 90
)

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading midi file: %w", err)
	}
	return Read(bytes.NewReader(dat))
}

func Read(r io.Reader) (s *smf.SMF, e error) {
	// the smf reader can panic on malformed input
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = nil
			e = fmt.Errorf("parsing midi file: %v", r)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("parsing midi file: %w", err)
	}
	return res, nil
}

// Progression lays out voicings one after another, each held for ChordTicks.
// An empty voicing becomes a rest.
func Progression(voicings [][]pitch.Pitch) (*smf.SMF, error) {
	var res smf.SMF
	res.TimeFormat = smf.MetricTicks(TicksPerQuarter)

	var track smf.Track
	var rest uint32
	for _, voicing := range voicings {
		if len(voicing) == 0 {
			rest += ChordTicks
			continue
		}
		for i, p := range voicing {
			key, err := midiKey(p)
			if err != nil {
				return nil, err
			}
			delta := uint32(0)
			if i == 0 {
				delta = rest
			}
			track = append(track, smf.Event{Delta: delta, Message: smf.Message(gomidi.NoteOn(0, key, velocity))})
		}
		for i, p := range voicing {
			key, _ := midiKey(p)
			delta := uint32(0)
			if i == 0 {
				delta = ChordTicks
			}
			track = append(track, smf.Event{Delta: delta, Message: smf.Message(gomidi.NoteOff(0, key))})
		}
		rest = 0
	}
	track.Close(rest)

	res.Tracks = append(res.Tracks, track)
	return &res, nil
}

var ErrKeyRange = errors.New("pitch outside midi key range")

func midiKey(p pitch.Pitch) (uint8, error) {
	key := p.MIDI()
	if key < 0 || key > 127 {
		return 0, fmt.Errorf("%w: %v", ErrKeyRange, p)
	}
	return uint8(key), nil
}

func Write(w io.Writer, s *smf.SMF) error {
	_, err := s.WriteTo(w)
	return err
}

func WriteMidiFile(filepath string, s *smf.SMF) error {
	f, err := os.Create(filepath)
	if err != nil {
		return fmt.Errorf("creating midi file: %w", err)
	}
	defer f.Close()

	if err := Write(f, s); err != nil {
		return fmt.Errorf("writing midi file: %w", err)
	}
	return nil
}
