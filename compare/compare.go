// Package compare aligns a candidate note sequence against a reference and
// scores the performance on note, pitch, timing, and rhythm dimensions.
package compare

import (
	"math"

	"github.com/ltrask/melodiff/constants"
	"github.com/ltrask/melodiff/model"
	"github.com/ltrask/melodiff/pitch"
	"github.com/ltrask/melodiff/util"
)

type Config struct {
	// TimeWindow in seconds: a candidate only matches a reference note whose
	// start lies within this distance. Also the scale for timing accuracy.
	TimeWindow float64
	// PitchToleranceCents: matched pairs further off than this are reported
	// as pitch errors.
	PitchToleranceCents float64
	// TimingErrorMs: matched pairs further off than this are reported as
	// timing errors.
	TimingErrorMs float64
}

func DefaultConfig() Config {
	return Config{
		TimeWindow:          constants.MatchWindowSeconds,
		PitchToleranceCents: constants.PitchConsistencyCents,
		TimingErrorMs:       constants.TimingErrorMs,
	}
}

// MatchedPair is one aligned reference/candidate note. TimeDelta and
// CentsDelta are signed: positive means the candidate played late or sharp.
type MatchedPair struct {
	Reference  model.NoteEvent
	Candidate  model.NoteEvent
	TimeDelta  float64
	CentsDelta float64
}

// Match greedily aligns candidate notes to reference notes. Reference notes
// are processed in time order and each candidate is consumed at most once,
// so an earlier reference note can take a candidate that a later,
// pitch-closer reference note would have preferred. That first-come
// exclusivity is intentional; changing it would change scoring.
//
// Returns the matched pairs plus the unmatched reference (missed) and
// candidate (extra) notes, each in source order.
func Match(reference, candidate []model.NoteEvent, cfg Config) ([]MatchedPair, []model.NoteEvent, []model.NoteEvent) {
	used := make([]bool, len(candidate))
	pairs := make([]MatchedPair, 0, len(reference))
	missed := make([]model.NoteEvent, 0)

	for _, ref := range reference {
		best := -1
		var bestCents, bestDelta float64
		for i, cand := range candidate {
			if used[i] {
				continue
			}
			delta := cand.StartTime - ref.StartTime
			if math.Abs(delta) > cfg.TimeWindow {
				continue
			}
			// Note events always carry a positive average pitch, so the
			// conversion cannot fail here.
			cents, err := pitch.DifferenceCents(cand.AvgPitchHz, ref.AvgPitchHz)
			if err != nil {
				continue
			}
			// Prefer the smallest cents difference; break ties by smaller
			// time delta. Strict comparisons keep the earliest candidate on
			// a full tie, which makes matching deterministic.
			better := best == -1 ||
				math.Abs(cents) < math.Abs(bestCents) ||
				(math.Abs(cents) == math.Abs(bestCents) && math.Abs(delta) < math.Abs(bestDelta))
			if better {
				best = i
				bestCents = cents
				bestDelta = delta
			}
		}

		if best == -1 {
			missed = append(missed, ref)
			continue
		}
		used[best] = true
		pairs = append(pairs, MatchedPair{
			Reference:  ref,
			Candidate:  candidate[best],
			TimeDelta:  bestDelta,
			CentsDelta: bestCents,
		})
	}

	extra := make([]model.NoteEvent, 0)
	for i, cand := range candidate {
		if !used[i] {
			extra = append(extra, cand)
		}
	}
	return pairs, missed, extra
}

// Compare matches the candidate against the reference and assembles the
// full report. It is a pure function: identical inputs always produce an
// identical result.
func Compare(refNotes, candNotes []model.NoteEvent, refRhythm, candRhythm model.RhythmProfile, cfg Config) model.ComparisonResult {
	pairs, missed, extra := Match(refNotes, candNotes, cfg)

	res := model.ComparisonResult{
		NoteAccuracy:   noteAccuracy(len(refNotes), len(candNotes), len(pairs)),
		PitchAccuracy:  pitchAccuracy(refNotes, candNotes, pairs),
		TimingAccuracy: timingAccuracy(refNotes, candNotes, pairs, cfg),
		RhythmAccuracy: rhythmAccuracy(refRhythm, candRhythm, len(refNotes), len(candNotes)),
		MissedNotes:    make([]model.NoteRef, 0, len(missed)),
		ExtraNotes:     make([]model.NoteRef, 0, len(extra)),
		PitchErrors:    make([]model.PitchError, 0),
		TimingErrors:   make([]model.TimingError, 0),
	}

	res.OverallSimilarity = util.Clamp01(0.30*res.NoteAccuracy +
		0.25*res.PitchAccuracy +
		0.25*res.TimingAccuracy +
		0.20*res.RhythmAccuracy)

	for _, n := range missed {
		res.MissedNotes = append(res.MissedNotes, model.NoteRef{NoteName: n.NoteName, Time: n.StartTime})
	}
	for _, n := range extra {
		res.ExtraNotes = append(res.ExtraNotes, model.NoteRef{NoteName: n.NoteName, Time: n.StartTime})
	}
	for _, p := range pairs {
		if math.Abs(p.CentsDelta) > cfg.PitchToleranceCents {
			res.PitchErrors = append(res.PitchErrors, model.PitchError{
				NoteName:   p.Reference.NoteName,
				Time:       p.Reference.StartTime,
				CentsDelta: p.CentsDelta,
			})
		}
		if math.Abs(p.TimeDelta*1000) > cfg.TimingErrorMs {
			res.TimingErrors = append(res.TimingErrors, model.TimingError{
				NoteName: p.Reference.NoteName,
				Time:     p.Reference.StartTime,
				MsDelta:  p.TimeDelta * 1000,
			})
		}
	}

	return res
}

func noteAccuracy(refCount, candCount, matched int) float64 {
	if refCount == 0 {
		// Two silent recordings are a perfect trivial match.
		if candCount == 0 {
			return 1
		}
		return 0
	}
	return util.Clamp01(float64(matched) / float64(refCount))
}

// trivialScore covers the no-matched-pairs cases: two empty sequences score
// perfectly, anything else scores zero.
func trivialScore(refCount, candCount int) float64 {
	if refCount == 0 && candCount == 0 {
		return 1
	}
	return 0
}

func pitchAccuracy(ref, cand []model.NoteEvent, pairs []MatchedPair) float64 {
	if len(pairs) == 0 {
		return trivialScore(len(ref), len(cand))
	}
	var totalCents float64
	for _, p := range pairs {
		totalCents += math.Abs(p.CentsDelta)
	}
	avg := totalCents / float64(len(pairs))
	// 0 cents -> 1.0, >=100 cents (a full semitone) -> 0.0.
	return util.Clamp01(1 - avg/100)
}

func timingAccuracy(ref, cand []model.NoteEvent, pairs []MatchedPair, cfg Config) float64 {
	if len(pairs) == 0 {
		return trivialScore(len(ref), len(cand))
	}
	var totalMs float64
	for _, p := range pairs {
		totalMs += math.Abs(p.TimeDelta * 1000)
	}
	avg := totalMs / float64(len(pairs))
	return util.Clamp01(1 - avg/(cfg.TimeWindow*1000))
}

func rhythmAccuracy(ref, cand model.RhythmProfile, refCount, candCount int) float64 {
	// Comparing silence to silence: don't punish the absent tempo.
	if refCount == 0 && candCount == 0 && ref.TempoBpm == nil && cand.TempoBpm == nil {
		return 1
	}

	var tempoMatch float64
	if ref.TempoBpm != nil && cand.TempoBpm != nil {
		tempoMatch = math.Max(0, 1-math.Abs(*ref.TempoBpm-*cand.TempoBpm) / *ref.TempoBpm)
	}
	stabilityMatch := 1 - math.Abs(ref.Stability-cand.Stability)
	return util.Clamp01(0.6*tempoMatch + 0.4*stabilityMatch)
}
