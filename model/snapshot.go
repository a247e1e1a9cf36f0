package model

// AnalysisSnapshot is the gob-encoded cache of one recording's analysis,
// written by `analyze --save` and read back by `inspect`.
type AnalysisSnapshot struct {
	SourcePath string
	Notes      []NoteEvent
	Rhythm     RhythmProfile
}
