// Package pitch holds the stateless frequency/MIDI/note-name conversions
// everything else is built on. A4 = MIDI 69 = 440 Hz.
package pitch

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidFrequency = errors.New("invalid frequency")

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// HzToMidi converts a frequency to a fractional MIDI number. Callers that
// need an integer round it themselves (ties round up).
func HzToMidi(hz float64) (float64, error) {
	if hz <= 0 || math.IsInf(hz, 0) || math.IsNaN(hz) {
		return 0, fmt.Errorf("%w: %v Hz", ErrInvalidFrequency, hz)
	}
	return 69 + 12*math.Log2(hz/440), nil
}

// MidiToHz is the inverse of HzToMidi for integer notes, used when a note
// sequence comes from a MIDI score rather than a recording.
func MidiToHz(midi uint8) float64 {
	return 440 * math.Pow(2, (float64(midi)-69)/12)
}

// MidiToNoteName maps a rounded MIDI number to scientific pitch notation,
// e.g. 69 -> "A4", 60 -> "C4".
func MidiToNoteName(midi uint8) string {
	octave := int(midi)/12 - 1
	return fmt.Sprintf("%v%v", noteNames[midi%12], octave)
}

// HzToNoteName names the nearest equal-tempered note for a frequency.
func HzToNoteName(hz float64) (string, error) {
	midi, err := HzToMidi(hz)
	if err != nil {
		return "", err
	}
	rounded := math.Round(midi)
	if rounded < 0 || rounded > 127 {
		return "", fmt.Errorf("%w: %v Hz is outside the MIDI range", ErrInvalidFrequency, hz)
	}
	return MidiToNoteName(uint8(rounded)), nil
}

// DifferenceCents measures how far hz sits from referenceHz in cents
// (100 cents = one semitone). Positive means hz is sharp of the reference.
func DifferenceCents(hz float64, referenceHz float64) (float64, error) {
	if hz <= 0 || math.IsInf(hz, 0) || math.IsNaN(hz) {
		return 0, fmt.Errorf("%w: %v Hz", ErrInvalidFrequency, hz)
	}
	if referenceHz <= 0 || math.IsInf(referenceHz, 0) || math.IsNaN(referenceHz) {
		return 0, fmt.Errorf("%w: reference %v Hz", ErrInvalidFrequency, referenceHz)
	}
	return 1200 * math.Log2(hz/referenceHz), nil
}
