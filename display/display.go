// Package display renders fingerings as one-line fret diagrams, one column
// per string from the highest string to the lowest.
package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jsphweid/fretfinder/fingering"
	"github.com/jsphweid/fretfinder/instrument"
)

const NotFound = "no fingering found"

const cellWidth = 2

func cell(f fingering.Fingering, stringIndex int) string {
	fret, ok := f[stringIndex]
	if !ok {
		return strings.Repeat(" ", cellWidth)
	}
	return fmt.Sprintf("%*s", cellWidth, strconv.Itoa(fret))
}

// Diagram renders f as six space separated cells, e.g. " 3  1  0  2  3   ".
func Diagram(f fingering.Fingering) string {
	cells := make([]string, instrument.NumStrings)
	for i := range cells {
		cells[i] = cell(f, i)
	}
	return strings.Join(cells, " ")
}

// Line is Diagram for a found choice and NotFound otherwise.
func Line(c fingering.Choice) string {
	if !c.Found {
		return NotFound
	}
	return Diagram(c.Fingering)
}

// Table writes a header row followed by one line per choice.
func Table(w io.Writer, in instrument.Instrument, choices []fingering.Choice) error {
	if _, err := fmt.Fprintln(w, in.Header()); err != nil {
		return err
	}
	for _, c := range choices {
		if _, err := fmt.Fprintln(w, Line(c)); err != nil {
			return err
		}
	}
	return nil
}
