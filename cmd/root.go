package cmd

import (
	"github.com/jsphweid/fretfinder/constants"
	"github.com/jsphweid/fretfinder/fingering"
	"github.com/jsphweid/fretfinder/instrument"
	"github.com/jsphweid/fretfinder/logging"
	"github.com/spf13/cobra"
)

var (
	debug      bool
	maxFret    int
	tuningArg  string
	fretPolicy string
)

var rootCmd = &cobra.Command{
	Use:   "fretfinder",
	Short: "Finds guitar fingerings for chords",
	Long: `Finds every way to play a chord on a six string guitar and picks the
easiest one under a given capo.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(debug)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&debug, "debug", false, "log at debug level")
	flags.IntVar(&maxFret, "max-fret", constants.GetMaxFret(), "highest usable fret")
	flags.StringVar(&tuningArg, "tuning", "", `open strings from highest to lowest, e.g. "e4 b3 g3 d3 a2 d2" (default standard)`)
	flags.StringVar(&fretPolicy, "fret-policy", "highest", "fret kept when a string reaches a note twice: highest or lowest")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func instrumentFromFlags() (instrument.Instrument, error) {
	return buildInstrument(tuningArg, maxFret)
}

func buildInstrument(tuning string, frets int) (instrument.Instrument, error) {
	t := instrument.Standard
	if tuning != "" {
		parsed, err := instrument.ParseTuning(tuning)
		if err != nil {
			return instrument.Instrument{}, err
		}
		t = parsed
	}
	in := instrument.New(t, frets)
	return in, in.Validate()
}

func searchOptionsFromFlags() ([]fingering.Option, error) {
	policy, err := fingering.ParseFretPolicy(fretPolicy)
	if err != nil {
		return nil, err
	}
	return []fingering.Option{fingering.WithFretPolicy(policy)}, nil
}
