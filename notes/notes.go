// Package notes turns a raw pitch contour into discrete note events by
// grouping consecutive samples of similar pitch.
package notes

import (
	"fmt"
	"math"

	"github.com/ltrask/melodiff/constants"
	"github.com/ltrask/melodiff/model"
	"github.com/ltrask/melodiff/pitch"
)

type Options struct {
	// MinNoteDuration in seconds; shorter groups are discarded as noise.
	MinNoteDuration float64
	// PitchToleranceSemitones bounds how far a sample's nearest MIDI value
	// may sit from the running average and still extend the current note.
	PitchToleranceSemitones float64
}

func DefaultOptions() Options {
	return Options{
		MinNoteDuration:         constants.MinNoteDuration,
		PitchToleranceSemitones: constants.PitchToleranceSemitones,
	}
}

// accumulator is the note under construction while scanning the contour.
type accumulator struct {
	startTime float64
	lastTime  float64
	midiSum   float64
	hzSum     float64
	count     int
}

func (a *accumulator) add(s model.PitchSample, midi float64) {
	if a.count == 0 {
		a.startTime = s.Time
	}
	a.lastTime = s.Time
	a.midiSum += midi
	a.hzSum += s.FrequencyHz
	a.count++
}

func (a *accumulator) avgMidi() float64 {
	return a.midiSum / float64(a.count)
}

// flush emits the accumulated note if it lasted long enough, then resets.
func (a *accumulator) flush(minDuration float64) (model.NoteEvent, bool) {
	defer func() { *a = accumulator{} }()
	if a.count == 0 {
		return model.NoteEvent{}, false
	}
	duration := a.lastTime - a.startTime
	if duration < minDuration {
		return model.NoteEvent{}, false
	}
	midi := uint8(math.Round(a.avgMidi()))
	return model.NoteEvent{
		NoteName:   pitch.MidiToNoteName(midi),
		MidiNumber: midi,
		StartTime:  a.startTime,
		Duration:   duration,
		AvgPitchHz: a.hzSum / float64(a.count),
	}, true
}

// Extract groups a time-ordered pitch contour into note events. An empty
// contour yields an empty sequence, not an error; a non-positive or
// non-finite frequency aborts with pitch.ErrInvalidFrequency.
func Extract(samples []model.PitchSample, opts Options) ([]model.NoteEvent, error) {
	var res []model.NoteEvent
	var acc accumulator

	for _, s := range samples {
		midi, err := pitch.HzToMidi(s.FrequencyHz)
		if err != nil {
			return nil, err
		}
		if rounded := math.Round(midi); rounded < 0 || rounded > 127 {
			return nil, fmt.Errorf("%w: %v Hz at %vs is outside the MIDI range",
				pitch.ErrInvalidFrequency, s.FrequencyHz, s.Time)
		}

		if acc.count > 0 && math.Abs(math.Round(midi)-acc.avgMidi()) > opts.PitchToleranceSemitones {
			if note, ok := acc.flush(opts.MinNoteDuration); ok {
				res = append(res, note)
			}
		}
		acc.add(s, midi)
	}

	// The contour ended mid-note: the open accumulator still counts.
	if note, ok := acc.flush(opts.MinNoteDuration); ok {
		res = append(res, note)
	}

	return res, nil
}
