package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jsphweid/fretfinder/instrument"
	"github.com/jsphweid/fretfinder/pitch"
	"github.com/jsphweid/fretfinder/spelling"
	"github.com/spf13/cobra"
)

var boardFrets int

func init() {
	boardCmd.Flags().IntVar(&boardFrets, "frets", instrument.PracticeMaxFret, "highest fret counted")
	rootCmd.AddCommand(boardCmd)
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Counts the positions that sound each note",
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(board(os.Stdout))
	},
}

func board(w io.Writer) error {
	in, err := instrumentFromFlags()
	if err != nil {
		return err
	}

	counts := in.Occurrences(boardFrets)
	pitches := make([]pitch.Pitch, 0, len(counts))
	for p := range counts {
		pitches = append(pitches, p)
	}
	sort.Slice(pitches, func(i, j int) bool {
		return pitches[i].Less(pitches[j])
	})

	for _, p := range pitches {
		var names []string
		for _, n := range spelling.Spellings(p) {
			names = append(names, spelling.Lilypond(n))
		}
		if _, err := fmt.Fprintf(w, "%-4v %d %v\n", p, counts[p], names); err != nil {
			return err
		}
	}
	return nil
}
