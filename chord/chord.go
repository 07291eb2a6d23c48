package chord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/fretfinder/pitch"
	"github.com/jsphweid/fretfinder/spelling"
	"github.com/jsphweid/fretfinder/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Chord is a set of pitches. Pitches are kept in ascending order so every
// chord has one fixed iteration order; equal pitches collapse, so unison
// voices cannot be expressed.
type Chord struct {
	pitches []pitch.Pitch
}

func New(pitches ...pitch.Pitch) Chord {
	set := make(map[pitch.Pitch]bool, len(pitches))
	var res []pitch.Pitch
	for _, p := range pitches {
		p = pitch.Normalize(p.Class, p.Octave)
		if set[p] {
			continue
		}
		set[p] = true
		res = append(res, p)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Less(res[j])
	})
	return Chord{pitches: res}
}

// Parse builds a chord from note names such as "c3", "e4" or "bes2".
func Parse(names []string) (Chord, error) {
	var pitches []pitch.Pitch
	for _, name := range names {
		p, err := spelling.ParsePitch(name)
		if err != nil {
			return Chord{}, fmt.Errorf("parsing chord: %w", err)
		}
		pitches = append(pitches, p)
	}
	return New(pitches...), nil
}

// MustParse is Parse for literal chords; it panics on bad names.
func MustParse(names ...string) Chord {
	c, err := Parse(names)
	if err != nil {
		panic(err)
	}
	return c
}

func FromMIDI(keys []uint8) Chord {
	var pitches []pitch.Pitch
	for _, k := range keys {
		pitches = append(pitches, pitch.FromMIDI(int(k)))
	}
	return New(pitches...)
}

func (c Chord) Pitches() []pitch.Pitch {
	return append([]pitch.Pitch(nil), c.pitches...)
}

func (c Chord) Len() int {
	return len(c.pitches)
}

func (c Chord) MIDI() []uint8 {
	var res []uint8
	for _, p := range c.pitches {
		res = append(res, uint8(p.MIDI()))
	}
	return res
}

// Key identifies the chord by its sorted MIDI keys, e.g. "48-64-67".
func (c Chord) Key() string {
	return CreateChordKey(c.MIDI())
}

func (c Chord) String() string {
	var names []string
	for _, p := range c.pitches {
		names = append(names, p.String())
	}
	return "{" + strings.Join(names, " ") + "}"
}

func CreateChordKey(notes []uint8) string {
	sorted := append([]uint8(nil), notes...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	var parts []string
	for _, note := range sorted {
		parts = append(parts, fmt.Sprintf("%v", note))
	}
	return strings.Join(parts, "-")
}

// Timed is a chord sounding from Tick (absolute ticks from the start of the
// file) until the next Timed.
type Timed struct {
	Tick  int64
	Chord Chord
}

type reducedEvent struct {
	tick      int64
	isNoteOff bool
	key       uint8
}

func snapshot(pressed map[uint8]bool) Chord {
	return FromMIDI(util.GetKeys(pressed))
}

// FromSMF collects the set of sounding notes at every tick where it changes,
// across all tracks. Silent moments are skipped.
func FromSMF(s *smf.SMF) (chords []Timed, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading note events: %v", r)
		}
	}()

	var events []reducedEvent
	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				events = append(events, reducedEvent{tick: absTicks, isNoteOff: velocity == 0, key: key})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				events = append(events, reducedEvent{tick: absTicks, isNoteOff: true, key: key})
			}
		}
	}

	// earlier ticks first, note offs before note ons at the same tick
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].isNoteOff && !events[j].isNoteOff
	})

	tickToChord := make(map[int64]Chord)
	pressed := make(map[uint8]bool)
	for _, evt := range events {
		if evt.isNoteOff {
			delete(pressed, evt.key)
		} else {
			pressed[evt.key] = true
		}
		tickToChord[evt.tick] = snapshot(pressed)
	}

	for _, tick := range util.GetSortedKeys(tickToChord) {
		c := tickToChord[tick]
		if c.Len() > 0 {
			chords = append(chords, Timed{Tick: tick, Chord: c})
		}
	}
	return chords, nil
}
