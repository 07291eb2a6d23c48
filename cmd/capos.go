package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/fretfinder/constants"
	"github.com/jsphweid/fretfinder/fingering"
	"github.com/jsphweid/fretfinder/progression"
	"github.com/spf13/cobra"
)

var sweepMaxCapo int

func init() {
	caposCmd.Flags().IntVar(&sweepMaxCapo, "max-capo", constants.MaxCapo, "highest capo to try")
	rootCmd.AddCommand(caposCmd)
}

var caposCmd = &cobra.Command{
	Use:   "capos [NAME...]",
	Short: "Shows how easy each progression is under each capo",
	Long: `For every capo from 0 up, prints the easiest fret span of each chord of the
progression, stopping at the first capo that leaves some chord unplayable, and
suggests the capo with the lowest average span.`,
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(sweep(os.Stdout, args))
	},
}

func sweep(w io.Writer, names []string) error {
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

	for _, name := range names {
		p, err := progression.Get(name)
		if err != nil {
			return err
		}
		rows := fingering.SweepCapos(in, p.Chords, sweepMaxCapo, opts...)
		if _, err := fmt.Fprintf(w, "%s\n", p.Name); err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := fmt.Fprintf(w, "%3d %v mean %.2f\n", row.Capo, row.Eases, row.Mean()); err != nil {
				return err
			}
		}
		summary := "no capo works"
		if best, ok := fingering.SuggestCapo(rows); ok {
			summary = fmt.Sprintf("suggested capo: %d", best.Capo)
		}
		if _, err := fmt.Fprintf(w, "%s\n\n", summary); err != nil {
			return err
		}
	}
	return nil
}
