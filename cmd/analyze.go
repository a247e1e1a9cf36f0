package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ltrask/melodiff/contour"
	"github.com/ltrask/melodiff/model"
	"github.com/ltrask/melodiff/notes"
	"github.com/ltrask/melodiff/rhythm"
	"github.com/ltrask/melodiff/util"
	"github.com/spf13/cobra"
)

var analyzeSavePath string
var analyzeOutPath string
var analyzeMinNoteDuration float64
var analyzePitchTolerance float64

func init() {
	analyzeCmd.Flags().StringVar(&analyzeSavePath, "save", "", "write a binary snapshot of the analysis")
	analyzeCmd.Flags().StringVar(&analyzeOutPath, "out", "", "write the analysis as JSON")
	analyzeCmd.Flags().Float64Var(&analyzeMinNoteDuration, "min-note-duration", notes.DefaultOptions().MinNoteDuration, "minimum note duration in seconds")
	analyzeCmd.Flags().Float64Var(&analyzePitchTolerance, "pitch-tolerance", notes.DefaultOptions().PitchToleranceSemitones, "grouping tolerance in semitones")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <contour.json>",
	Short: "Analyzes a single recording",
	Long:  `Extracts the note sequence and rhythm profile from one recording's pitch contour.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(analyze(args[0]))
	},
}

func analyze(path string) error {
	rec, err := contour.ReadFile(path)
	if err != nil {
		return err
	}

	opts := notes.Options{
		MinNoteDuration:         analyzeMinNoteDuration,
		PitchToleranceSemitones: analyzePitchTolerance,
	}
	noteSeq, err := notes.Extract(rec.Samples, opts)
	if err != nil {
		return err
	}
	profile := rhythm.Extract(rec.Onsets)

	printAnalysisSummary(noteSeq, profile)

	snapshot := model.AnalysisSnapshot{
		SourcePath: path,
		Notes:      noteSeq,
		Rhythm:     profile,
	}
	if analyzeSavePath != "" {
		if err := util.WriteBinary(analyzeSavePath, snapshot); err != nil {
			return err
		}
		fmt.Printf("Saved snapshot to %v\n", analyzeSavePath)
	}
	if analyzeOutPath != "" {
		dat, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(analyzeOutPath, dat, 0666); err != nil {
			return err
		}
		fmt.Printf("Exported analysis to %v\n", analyzeOutPath)
	}
	return nil
}

func printAnalysisSummary(noteSeq []model.NoteEvent, profile model.RhythmProfile) {
	fmt.Printf("Detected %v distinct notes\n", len(noteSeq))
	for i, n := range noteSeq {
		if i >= 5 {
			fmt.Println("...")
			break
		}
		fmt.Printf("  %v at %.2fs for %.2fs (%.1f Hz)\n", n.NoteName, n.StartTime, n.Duration, n.AvgPitchHz)
	}
	if profile.TempoBpm != nil {
		fmt.Printf("Tempo: %.1f bpm (stability %.2f)\n", *profile.TempoBpm, profile.Stability)
	} else {
		fmt.Println("Tempo: N/A (fewer than 2 onsets)")
	}
}
