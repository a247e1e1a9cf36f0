package model

// RhythmProfile describes the onset timing of one recording. Intervals has
// len(OnsetTimes)-1 entries. TempoBpm is nil when fewer than 2 onsets exist.
// Stability is 1 - coefficient_of_variation(Intervals), clamped to [0,1].
type RhythmProfile struct {
	OnsetTimes []float64 `json:"onset_times"`
	Intervals  []float64 `json:"intervals"`
	TempoBpm   *float64  `json:"tempo_bpm,omitempty"`
	Stability  float64   `json:"stability"`
}
