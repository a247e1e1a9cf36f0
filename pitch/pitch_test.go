package pitch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHzToMidi(t *testing.T) {
	assert := assert.New(t)

	midi, err := HzToMidi(440)
	assert.NoError(err)
	assert.InDelta(69, midi, 0.001)

	midi, err = HzToMidi(261.63)
	assert.NoError(err)
	assert.InDelta(60, midi, 0.01)
}

func TestHzToMidiRejectsBadFrequencies(t *testing.T) {
	assert := assert.New(t)

	for _, hz := range []float64{0, -10, math.Inf(1), math.NaN()} {
		_, err := HzToMidi(hz)
		assert.ErrorIs(err, ErrInvalidFrequency)
	}
}

func TestMidiToNoteName(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("A4", MidiToNoteName(69))
	assert.Equal("C4", MidiToNoteName(60))
	assert.Equal("C5", MidiToNoteName(72))
	assert.Equal("C-1", MidiToNoteName(0))
	assert.Equal("G9", MidiToNoteName(127))
}

func TestHzToNoteName(t *testing.T) {
	assert := assert.New(t)

	name, err := HzToNoteName(440)
	assert.NoError(err)
	assert.Equal("A4", name)

	name, err = HzToNoteName(523.25)
	assert.NoError(err)
	assert.Equal("C5", name)

	_, err = HzToNoteName(-1)
	assert.ErrorIs(err, ErrInvalidFrequency)

	// finite but far above the MIDI range
	_, err = HzToNoteName(30000)
	assert.ErrorIs(err, ErrInvalidFrequency)
}

func TestMidiToHzRoundTrips(t *testing.T) {
	assert := assert.New(t)
	assert.InDelta(440, MidiToHz(69), 0.001)

	midi, err := HzToMidi(MidiToHz(60))
	assert.NoError(err)
	assert.InDelta(60, midi, 0.0001)
}

func TestDifferenceCents(t *testing.T) {
	assert := assert.New(t)

	cents, err := DifferenceCents(440, 440)
	assert.NoError(err)
	assert.InDelta(0, cents, 0.01)

	// one semitone sharp
	cents, err = DifferenceCents(466.16, 440)
	assert.NoError(err)
	assert.InDelta(100, cents, 1)

	// sign flips when flat
	cents, err = DifferenceCents(440, 466.16)
	assert.NoError(err)
	assert.InDelta(-100, cents, 1)

	_, err = DifferenceCents(0, 440)
	assert.ErrorIs(err, ErrInvalidFrequency)
	_, err = DifferenceCents(440, 0)
	assert.ErrorIs(err, ErrInvalidFrequency)
}
