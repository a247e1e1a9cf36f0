// Package midiref builds a reference note sequence from a standard MIDI
// file, so a performance can be compared against a score instead of a
// reference recording.
package midiref

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/ltrask/melodiff/model"
	"github.com/ltrask/melodiff/pitch"
	"gitlab.com/gomidi/midi/v2/smf"
)

// ReadFile parses a MIDI file into an ordered note sequence.
func ReadFile(filepath string) (n []model.NoteEvent, e error) {
	// the smf reader can panic on malformed files
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading midi file... %w", err)
	}

	parsed, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, fmt.Errorf("error parsing midi file... %w", err)
	}

	return Notes(parsed)
}

// Notes walks every track, pairs NoteOn/NoteOff events, and emits one
// NoteEvent per sounded note, ordered by start time.
func Notes(s *smf.SMF) ([]model.NoteEvent, error) {
	var res []model.NoteEvent

	for _, track := range s.Tracks {
		var absTicks int64
		pressed := make(map[uint8]float64)
		for _, event := range track {
			absTicks += int64(event.Delta)
			// TimeAt reports microseconds
			absTime := float64(s.TimeAt(absTicks)) / 1e6
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				pressed[key] = absTime
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				start, ok := pressed[key]
				if !ok {
					continue
				}
				delete(pressed, key)
				res = append(res, model.NoteEvent{
					NoteName:   pitch.MidiToNoteName(key),
					MidiNumber: key,
					StartTime:  start,
					Duration:   absTime - start,
					AvgPitchHz: pitch.MidiToHz(key),
				})
			}
		}
	}

	// note-off order across tracks is arbitrary, sort for determinism
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].StartTime != res[j].StartTime {
			return res[i].StartTime < res[j].StartTime
		}
		return res[i].MidiNumber < res[j].MidiNumber
	})
	return res, nil
}

// Onsets are the note start times, feeding the rhythm profile the same way
// the tracker's onset detector would.
func Onsets(notes []model.NoteEvent) []float64 {
	res := make([]float64, 0, len(notes))
	for _, n := range notes {
		res = append(res, n.StartTime)
	}
	return res
}
