package model

// Recording is the wire form of one performance: the tracker's pitch
// contour plus its onset timestamps.
type Recording struct {
	Name    string        `json:"name,omitempty"`
	Samples []PitchSample `json:"samples"`
	Onsets  []float64     `json:"onsets"`
}

type CompareRequestBody struct {
	Reference Recording `json:"reference"`
	Candidate Recording `json:"candidate"`
}

type CompareResponse struct {
	Id                string             `json:"id"`
	Result            ComparisonResult   `json:"result"`
	ReferenceMetadata *RecordingMetadata `json:"reference_metadata,omitempty"`
	CandidateMetadata *RecordingMetadata `json:"candidate_metadata,omitempty"`
}

type RecordingMetadata struct {
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Instrument string `json:"instrument"`
	Year       uint   `json:"year,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
