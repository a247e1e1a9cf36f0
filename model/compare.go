package model

// NoteRef points at a note in its source sequence: missed notes carry the
// reference note's name and start, extra notes the candidate's.
type NoteRef struct {
	NoteName string  `json:"note"`
	Time     float64 `json:"time"`
}

// PitchError is a matched pair whose pitch landed more than 50 cents off.
// CentsDelta is signed: positive means the candidate played sharp.
type PitchError struct {
	NoteName   string  `json:"note"`
	Time       float64 `json:"time"`
	CentsDelta float64 `json:"cents_delta"`
}

// TimingError is a matched pair whose attack landed more than 50 ms off.
// MsDelta is signed: positive means the candidate played late.
type TimingError struct {
	NoteName string  `json:"note"`
	Time     float64 `json:"time"`
	MsDelta  float64 `json:"ms_delta"`
}

// ComparisonResult is the full report for one reference/candidate pair.
// All scores are in [0,1]; the error lists preserve source time order.
type ComparisonResult struct {
	NoteAccuracy      float64       `json:"note_accuracy"`
	PitchAccuracy     float64       `json:"pitch_accuracy"`
	TimingAccuracy    float64       `json:"timing_accuracy"`
	RhythmAccuracy    float64       `json:"rhythm_accuracy"`
	OverallSimilarity float64       `json:"overall_similarity"`
	MissedNotes       []NoteRef     `json:"missed_notes"`
	ExtraNotes        []NoteRef     `json:"extra_notes"`
	PitchErrors       []PitchError  `json:"pitch_errors"`
	TimingErrors      []TimingError `json:"timing_errors"`
}
