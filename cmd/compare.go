package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/ltrask/melodiff/compare"
	"github.com/ltrask/melodiff/constants"
	"github.com/ltrask/melodiff/contour"
	"github.com/ltrask/melodiff/db"
	"github.com/ltrask/melodiff/midiref"
	"github.com/ltrask/melodiff/model"
	"github.com/ltrask/melodiff/notes"
	"github.com/ltrask/melodiff/rhythm"
	"github.com/spf13/cobra"
)

var compareOutPath string
var compareTimeWindow float64

func init() {
	compareCmd.Flags().StringVar(&compareOutPath, "out", "", "report path (defaults to OUT_DIR/<id>.json)")
	compareCmd.Flags().Float64Var(&compareTimeWindow, "time-window", compare.DefaultConfig().TimeWindow, "matching window in seconds")
	rootCmd.AddCommand(compareCmd)
}

var compareCmd = &cobra.Command{
	Use:   "compare <reference> <candidate.json>",
	Short: "Compares a performance against a reference",
	Long: `Compares a candidate recording against a reference. The reference is
either another contour JSON or a .mid/.midi score; the candidate is always a
contour JSON.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(runCompare(args[0], args[1]))
	},
}

// loadPerformance returns the note sequence and rhythm profile for one
// input, handling both contour JSON and MIDI score references.
func loadPerformance(path string) ([]model.NoteEvent, model.RhythmProfile, error) {
	if strings.HasSuffix(path, ".mid") || strings.HasSuffix(path, ".midi") {
		noteSeq, err := midiref.ReadFile(path)
		if err != nil {
			return nil, model.RhythmProfile{}, err
		}
		return noteSeq, rhythm.Extract(midiref.Onsets(noteSeq)), nil
	}

	rec, err := contour.ReadFile(path)
	if err != nil {
		return nil, model.RhythmProfile{}, err
	}
	noteSeq, err := notes.Extract(rec.Samples, notes.DefaultOptions())
	if err != nil {
		return nil, model.RhythmProfile{}, err
	}
	return noteSeq, rhythm.Extract(rec.Onsets), nil
}

func runCompare(refPath, candPath string) error {
	fmt.Printf("Reference: %v\n", refPath)
	fmt.Printf("Candidate: %v\n", candPath)

	refNotes, refRhythm, err := loadPerformance(refPath)
	if err != nil {
		return err
	}
	candNotes, candRhythm, err := loadPerformance(candPath)
	if err != nil {
		return err
	}

	cfg := compare.DefaultConfig()
	cfg.TimeWindow = compareTimeWindow
	result := compare.Compare(refNotes, candNotes, refRhythm, candRhythm, cfg)
	printComparisonSummary(result)

	report := model.CompareResponse{
		Id:     uuid.New().String(),
		Result: result,
	}
	attachMetadata(&report, filepath.Base(refPath), filepath.Base(candPath))

	outPath := compareOutPath
	if outPath == "" {
		if err := os.MkdirAll(constants.GetOutDir(), 0777); err != nil {
			return err
		}
		outPath = filepath.Join(constants.GetOutDir(), report.Id+".json")
	}
	dat, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, dat, 0666); err != nil {
		return err
	}
	fmt.Printf("\nExported report to %v\n", outPath)
	return nil
}

// attachMetadata decorates the report when a metadata table is configured.
// Lookups are best-effort: a comparison never fails over missing metadata.
func attachMetadata(report *model.CompareResponse, refName, candName string) {
	if constants.GetMetadataTable() == "" {
		return
	}
	var names []string
	for _, name := range []string{refName, candName} {
		if name != "" {
			names = append(names, name)
		}
	}
	metadatas, err := db.GetRecordingMetadatas(names)
	if err != nil {
		fmt.Printf("Skipping metadata because: %v\n", err)
		return
	}
	if m, ok := metadatas[refName]; ok {
		report.ReferenceMetadata = &m
	}
	if m, ok := metadatas[candName]; ok {
		report.CandidateMetadata = &m
	}
}

func printComparisonSummary(result model.ComparisonResult) {
	fmt.Println("\n=== Summary ===")
	fmt.Printf("Overall Similarity: %.1f%%\n", result.OverallSimilarity*100)
	fmt.Printf("Note Accuracy: %.1f%%\n", result.NoteAccuracy*100)
	fmt.Printf("Pitch Accuracy: %.1f%%\n", result.PitchAccuracy*100)
	fmt.Printf("Timing Accuracy: %.1f%%\n", result.TimingAccuracy*100)
	fmt.Printf("Rhythm Accuracy: %.1f%%\n", result.RhythmAccuracy*100)

	if len(result.MissedNotes) > 0 {
		fmt.Printf("Missed Notes (%v):", len(result.MissedNotes))
		for i, n := range result.MissedNotes {
			if i >= 5 {
				fmt.Printf(" ...")
				break
			}
			fmt.Printf(" %v@%.2fs", n.NoteName, n.Time)
		}
		fmt.Println()
	}
	if len(result.ExtraNotes) > 0 {
		fmt.Printf("Extra Notes (%v):", len(result.ExtraNotes))
		for i, n := range result.ExtraNotes {
			if i >= 5 {
				fmt.Printf(" ...")
				break
			}
			fmt.Printf(" %v@%.2fs", n.NoteName, n.Time)
		}
		fmt.Println()
	}
}
