package instrument

import (
	"errors"
	"fmt"
)

// MaxUsableFret bounds the fret range a search may scan.
const MaxUsableFret = 36

var ErrTuningLength = fmt.Errorf("tuning needs %d strings", NumStrings)

var ErrNegativeFret = errors.New("max fret must not be negative")

var ErrMaxFretTooHigh = fmt.Errorf("max fret must not exceed %d", MaxUsableFret)

// Validate checks the instrument can be searched.
func (in Instrument) Validate() error {
	if in.MaxFret < 0 {
		return ErrNegativeFret
	}
	if in.MaxFret > MaxUsableFret {
		return ErrMaxFretTooHigh
	}
	return nil
}
