package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/fretfinder/spelling"
	"github.com/spf13/cobra"
)

var maxAccidentals int

func init() {
	spellCmd.Flags().IntVar(&maxAccidentals, "max-accidentals", spelling.DefaultMaxAccidentals, "most sharps or flats per spelling")
	rootCmd.AddCommand(spellCmd)
}

var spellCmd = &cobra.Command{
	Use:   "spell NOTE...",
	Short: "Lists the enharmonic spellings of notes",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(spell(os.Stdout, args))
	},
}

func spell(w io.Writer, notes []string) error {
	for _, note := range notes {
		p, err := spelling.ParsePitch(note)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%s (%v):", note, p)
		for _, n := range spelling.SpellingsWithin(p, maxAccidentals) {
			line += fmt.Sprintf(" %s [%s]", n, spelling.Lilypond(n))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
