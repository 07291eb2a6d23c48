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
	"github.com/spf13/cobra"
)

var (
	capo    int
	maxEase int
	showAll bool
)

func init() {
	fingerCmd.Flags().IntVar(&capo, "capo", 0, "capo fret")
	fingerCmd.Flags().IntVar(&maxEase, "max-ease", constants.GetMaxEase(), "fret spans at or above this are rejected")
	fingerCmd.Flags().BoolVar(&showAll, "all", false, "list every candidate with its scores")
	rootCmd.AddCommand(fingerCmd)
}

var fingerCmd = &cobra.Command{
	Use:   "finger NOTE...",
	Short: "Fingers one chord",
	Long: `Fingers one chord given as note names with octaves, e.g.

  fretfinder finger c3 e4 g4 --capo 0`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(finger(os.Stdout, args))
	},
}

func finger(w io.Writer, notes []string) error {
	in, err := instrumentFromFlags()
	if err != nil {
		return err
	}
	opts, err := searchOptionsFromFlags()
	if err != nil {
		return err
	}
	if err := fingering.ValidateCapo(capo); err != nil {
		return err
	}
	c, err := chord.Parse(notes)
	if err != nil {
		return err
	}

	fs := fingering.Find(in, c, opts...)
	choice := fingering.Choose(fs, capo, maxEase)
	slog.Info("finger: chord searched", "chord", c.String(), "candidates", len(fs), "capo", capo, "found", choice.Found)

	if showAll {
		if err := writeCandidates(w, in, fs, capo); err != nil {
			return err
		}
	}
	return display.Table(w, in, []fingering.Choice{choice})
}

func writeCandidates(w io.Writer, in instrument.Instrument, fs []fingering.Fingering, capo int) error {
	if _, err := fmt.Fprintf(w, "%s  ease closed\n", in.Header()); err != nil {
		return err
	}
	for _, f := range fs {
		ease := "  -"
		if e, ok := fingering.Ease(f, capo); ok {
			ease = fmt.Sprintf("%3d", e)
		}
		if _, err := fmt.Fprintf(w, "%s  %s %6d\n", display.Diagram(f), ease, fingering.ClosedCount(f, capo)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
