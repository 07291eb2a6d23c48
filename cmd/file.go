package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jsphweid/fretfinder/chord"
	"github.com/jsphweid/fretfinder/constants"
	"github.com/jsphweid/fretfinder/display"
	"github.com/jsphweid/fretfinder/midi"
	"github.com/jsphweid/fretfinder/util"
	"github.com/spf13/cobra"
)

var (
	fileCapo    int
	fileMaxEase int
	fileLimit   int
)

func init() {
	fileCmd.Flags().IntVar(&fileCapo, "capo", 0, "capo fret")
	fileCmd.Flags().IntVar(&fileMaxEase, "max-ease", constants.GetMaxEase(), "fret spans at or above this are rejected")
	fileCmd.Flags().IntVar(&fileLimit, "limit", 0, "most midi files to read from directories (0 for all)")
	rootCmd.AddCommand(fileCmd)
}

var fileCmd = &cobra.Command{
	Use:   "file PATH...",
	Short: "Fingers every chord of midi files",
	Long:  `Fingers every chord of midi files. Directories are searched for .mid and .midi files.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(fingerFiles(os.Stdout, args))
	},
}

func fingerFiles(w io.Writer, args []string) error {
	paths, err := util.GatherMidiPaths(args, fileLimit)
	if err != nil {
		return err
	}
	for i, path := range paths {
		slog.Info("file: processing", "n", i+1, "of", len(paths), "path", path)
		if len(paths) > 1 {
			if _, err := fmt.Fprintf(w, "%s\n", path); err != nil {
				return err
			}
		}
		if err := fingerFile(w, path); err != nil {
			slog.Warn("file: skipping", "path", path, "err", err)
		}
	}
	return nil
}

func fingerFile(w io.Writer, path string) error {
	in, err := instrumentFromFlags()
	if err != nil {
		return err
	}
	opts, err := searchOptionsFromFlags()
	if err != nil {
		return err
	}

	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	timed, err := chord.FromSMF(parsed)
	if err != nil {
		return err
	}
	slog.Info("file: chords extracted", "path", path, "chords", len(timed))

	chords := make([]chord.Chord, len(timed))
	for i, t := range timed {
		chords[i] = t.Chord
	}
	choices := chooseAll(in, chords, fileCapo, fileMaxEase, opts)

	if _, err := fmt.Fprintf(w, "%8s %s  chord\n", "tick", in.Header()); err != nil {
		return err
	}
	for i, t := range timed {
		line := display.Line(choices[i])
		if _, err := fmt.Fprintf(w, "%8d %-17s  %s\n", t.Tick, line, t.Chord); err != nil {
			return err
		}
	}
	return nil
}
