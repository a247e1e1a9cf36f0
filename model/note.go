package model

// PitchSample is one frame of the pitch contour produced by the external
// tracker. Confidence is optional; nil when the tracker doesn't report one.
type PitchSample struct {
	Time        float64  `json:"time"`
	FrequencyHz float64  `json:"frequency_hz"`
	Confidence  *float64 `json:"confidence,omitempty"`
}

// NoteEvent is a discrete note derived from a pitch contour or a MIDI score.
// Never mutated after creation. Within a sequence, events are ordered by
// StartTime and do not overlap.
type NoteEvent struct {
	NoteName   string  `json:"note_name"`
	MidiNumber uint8   `json:"midi_number"`
	StartTime  float64 `json:"start_time"`
	Duration   float64 `json:"duration"`
	AvgPitchHz float64 `json:"avg_pitch_hz"`
}
