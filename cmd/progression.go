package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jsphweid/fretfinder/chord"
	"github.com/jsphweid/fretfinder/constants"
	"github.com/jsphweid/fretfinder/display"
	"github.com/jsphweid/fretfinder/fingering"
	"github.com/jsphweid/fretfinder/instrument"
	"github.com/jsphweid/fretfinder/midi"
	"github.com/jsphweid/fretfinder/pitch"
	"github.com/jsphweid/fretfinder/progression"
	"github.com/spf13/cobra"
)

var (
	progressionCapo    int
	progressionMaxEase int
	progressionOut     string
)

func init() {
	flags := progressionCmd.Flags()
	flags.IntVar(&progressionCapo, "capo", 0, "capo fret (default: the progression's own capo)")
	flags.IntVar(&progressionMaxEase, "max-ease", constants.GetMaxEase(), "fret spans at or above this are rejected")
	flags.StringVar(&progressionOut, "out", "", "also write the chosen voicings to this midi file")
	rootCmd.AddCommand(progressionCmd)
}

var progressionCmd = &cobra.Command{
	Use:   "progression [NAME...]",
	Short: "Fingers the built-in progressions",
	Long:  fmt.Sprintf("Fingers the built-in progressions %v, each under its own capo.", progression.Names()),
	Run: func(cmd *cobra.Command, args []string) {
		var override *int
		if cmd.Flags().Changed("capo") {
			override = &progressionCapo
		}
		cobra.CheckErr(runProgressions(os.Stdout, args, override))
	},
}

func runProgressions(w io.Writer, names []string, capoOverride *int) error {
	if len(names) == 0 {
		names = progression.Names()
	}
	in, err := instrumentFromFlags()
	if err != nil {
		return err
	}
	opts, err := searchOptionsFromFlags()
	if err != nil {
		return err
	}
	if capoOverride != nil {
		if err := fingering.ValidateCapo(*capoOverride); err != nil {
			return err
		}
	}

	var voicings [][]pitch.Pitch
	for _, name := range names {
		p, err := progression.Get(name)
		if err != nil {
			return err
		}
		c := p.Capo
		if capoOverride != nil {
			c = *capoOverride
		}

		choices := chooseAll(in, p.Chords, c, progressionMaxEase, opts)
		if _, err := fmt.Fprintf(w, "%s (capo %d)\n", p.Name, c); err != nil {
			return err
		}
		if err := display.Table(w, in, choices); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		for _, choice := range choices {
			voicings = append(voicings, fingering.Sounding(in, choice.Fingering))
		}
	}

	if progressionOut != "" {
		s, err := midi.Progression(voicings)
		if err != nil {
			return err
		}
		if err := midi.WriteMidiFile(progressionOut, s); err != nil {
			return err
		}
		slog.Info("progression: midi written", "path", progressionOut, "chords", len(voicings))
	}
	return nil
}

func chooseAll(in instrument.Instrument, chords []chord.Chord, capo, maxEase int, opts []fingering.Option) []fingering.Choice {
	found := fingering.FindAll(in, chords, opts...)
	choices := make([]fingering.Choice, len(chords))
	for i, fs := range found {
		choices[i] = fingering.Choose(fs, capo, maxEase)
		if !choices[i].Found {
			slog.Warn("no fingering found", "chord", chords[i].String(), "capo", capo, "candidates", len(fs))
		}
	}
	return choices
}
