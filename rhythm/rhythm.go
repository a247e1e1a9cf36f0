// Package rhythm derives inter-onset intervals, tempo, and tempo stability
// from the onset timestamps of one recording.
package rhythm

import (
	"math"

	"github.com/ltrask/melodiff/model"
	"github.com/ltrask/melodiff/util"
)

// Extract builds a rhythm profile from time-ordered onsets. Zero or one
// onsets is a valid degenerate case: empty intervals, no tempo, stability 0.
func Extract(onsets []float64) model.RhythmProfile {
	profile := model.RhythmProfile{
		OnsetTimes: onsets,
		Intervals:  make([]float64, 0),
	}
	if len(onsets) < 2 {
		return profile
	}

	for i := 1; i < len(onsets); i++ {
		profile.Intervals = append(profile.Intervals, onsets[i]-onsets[i-1])
	}

	mean := util.Mean(profile.Intervals)
	if mean <= 0 {
		// Degenerate contour (coincident onsets); tempo is meaningless.
		return profile
	}

	bpm := 60 / mean
	profile.TempoBpm = &bpm

	var variance float64
	for _, v := range profile.Intervals {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(profile.Intervals))
	cv := math.Sqrt(variance) / mean
	profile.Stability = util.Clamp01(1 - cv)

	return profile
}
