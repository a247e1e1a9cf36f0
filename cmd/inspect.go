package cmd

import (
	"fmt"

	"github.com/ltrask/melodiff/model"
	"github.com/ltrask/melodiff/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <snapshot.dat>",
	Short: "Inspects a saved analysis snapshot",
	Long:  `Inspects a saved analysis snapshot`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(inspect(args[0]))
	},
}

func inspect(path string) error {
	snapshot, err := util.ReadBinary[model.AnalysisSnapshot](path)
	if err != nil {
		return err
	}

	fmt.Printf("Source: %v\n", snapshot.SourcePath)
	fmt.Printf("Onsets: %v\n", len(snapshot.Rhythm.OnsetTimes))
	if snapshot.Rhythm.TempoBpm != nil {
		fmt.Printf("Tempo: %.1f bpm (stability %.2f)\n", *snapshot.Rhythm.TempoBpm, snapshot.Rhythm.Stability)
	}
	fmt.Printf("Notes (%v):\n", len(snapshot.Notes))
	for _, n := range snapshot.Notes {
		fmt.Printf("  %v midi=%v start=%.3fs dur=%.3fs avg=%.1fHz\n",
			n.NoteName, n.MidiNumber, n.StartTime, n.Duration, n.AvgPitchHz)
	}
	return nil
}
