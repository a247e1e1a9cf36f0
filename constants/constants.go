package constants

import "os"

func GetOutDir() string {
	path := os.Getenv("OUT_DIR")
	if path != "" {
		return path
	}
	return "./out"
}

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

// GetMetadataTable returns the DynamoDB table holding recording metadata.
// Empty means metadata lookups are disabled.
func GetMetadataTable() string {
	return os.Getenv("METADATA_TABLE")
}

func GetDynamoEndpoint() string {
	endpoint := os.Getenv("DYNAMO_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

// Extraction defaults. Anything shorter than MinNoteDuration is treated as
// noise; a sample within PitchToleranceSemitones of the running average
// extends the current note.
const MinNoteDuration = 0.1
const PitchToleranceSemitones = 1.0

// Matching defaults. Candidates are searched within MatchWindowSeconds of a
// reference note's start and preferred when within PitchConsistencyCents.
const MatchWindowSeconds = 0.5
const PitchConsistencyCents = 50.0

// Reporting thresholds: matched pairs beyond these land in the error lists.
const PitchErrorCents = 50.0
const TimingErrorMs = 50.0
