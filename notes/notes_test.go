package notes

import (
	"testing"

	"github.com/ltrask/melodiff/model"
	"github.com/ltrask/melodiff/pitch"
	"github.com/stretchr/testify/assert"
)

// steady appends samples of a fixed frequency every 10ms from start to end
// inclusive, mimicking a tracker's hop size.
func steady(samples []model.PitchSample, hz float64, start float64, end float64) []model.PitchSample {
	for t := start; t <= end+1e-9; t += 0.01 {
		samples = append(samples, model.PitchSample{Time: t, FrequencyHz: hz})
	}
	return samples
}

func TestExtractEmptyContour(t *testing.T) {
	assert := assert.New(t)

	res, err := Extract(nil, DefaultOptions())
	assert.NoError(err)
	assert.Empty(res)

	res, err = Extract([]model.PitchSample{}, DefaultOptions())
	assert.NoError(err)
	assert.Empty(res)
}

func TestExtractSingleSteadyNote(t *testing.T) {
	samples := steady(nil, 440, 0, 0.3)

	res, err := Extract(samples, DefaultOptions())

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(res, 1)
	assert.Equal("A4", res[0].NoteName)
	assert.Equal(uint8(69), res[0].MidiNumber)
	assert.InDelta(0, res[0].StartTime, 1e-9)
	assert.InDelta(0.3, res[0].Duration, 0.001)
	assert.InDelta(440, res[0].AvgPitchHz, 0.001)
}

func TestExtractFlushesFinalNote(t *testing.T) {
	// the second note is never closed by a pitch change, only by
	// end-of-input, and must still be emitted
	samples := steady(nil, 440, 0, 0.2)
	samples = steady(samples, 523.25, 0.21, 0.4)

	res, err := Extract(samples, DefaultOptions())

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(res, 2)
	assert.Equal("A4", res[0].NoteName)
	assert.Equal("C5", res[1].NoteName)
	assert.InDelta(0.21, res[1].StartTime, 0.001)
	assert.InDelta(0.19, res[1].Duration, 0.001)
}

func TestExtractDiscardsShortBlips(t *testing.T) {
	samples := steady(nil, 440, 0, 0.2)
	// a 20ms spike two octaves up, well under the 100ms minimum
	samples = steady(samples, 1760, 0.21, 0.23)
	samples = steady(samples, 440, 0.24, 0.44)

	res, err := Extract(samples, DefaultOptions())

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(res, 2)
	assert.Equal("A4", res[0].NoteName)
	assert.Equal("A4", res[1].NoteName)
	assert.InDelta(0.24, res[1].StartTime, 0.001)
}

func TestExtractToleratesVibrato(t *testing.T) {
	// wobble within one semitone of A4 stays a single note
	var samples []model.PitchSample
	freqs := []float64{440, 452, 431, 445, 440, 436, 448, 440, 441, 439, 440}
	for i, hz := range freqs {
		samples = append(samples, model.PitchSample{Time: float64(i) * 0.02, FrequencyHz: hz})
	}

	res, err := Extract(samples, DefaultOptions())

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(res, 1)
	assert.Equal("A4", res[0].NoteName)
}

func TestExtractSingleSampleDiscarded(t *testing.T) {
	samples := []model.PitchSample{{Time: 1, FrequencyHz: 440}}

	res, err := Extract(samples, DefaultOptions())

	assert := assert.New(t)
	assert.NoError(err)
	assert.Empty(res)
}

func TestExtractSurfacesInvalidFrequency(t *testing.T) {
	samples := steady(nil, 440, 0, 0.2)
	samples = append(samples, model.PitchSample{Time: 0.21, FrequencyHz: -5})

	_, err := Extract(samples, DefaultOptions())
	assert.ErrorIs(t, err, pitch.ErrInvalidFrequency)

	// finite but ultrasonic, beyond any MIDI note
	samples = steady(nil, 440, 0, 0.2)
	samples = append(samples, model.PitchSample{Time: 0.21, FrequencyHz: 30000})
	_, err = Extract(samples, DefaultOptions())
	assert.ErrorIs(t, err, pitch.ErrInvalidFrequency)
}

func TestExtractOrderedAndNonOverlapping(t *testing.T) {
	samples := steady(nil, 261.63, 0, 0.15)
	samples = steady(samples, 329.63, 0.16, 0.31)
	samples = steady(samples, 392, 0.32, 0.47)

	res, err := Extract(samples, DefaultOptions())

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(res, 3)
	for i := 1; i < len(res); i++ {
		prevEnd := res[i-1].StartTime + res[i-1].Duration
		assert.GreaterOrEqual(res[i].StartTime, prevEnd)
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	samples := steady(nil, 440, 0, 0.2)
	samples = steady(samples, 523.25, 0.21, 0.4)
	samples = steady(samples, 392, 0.41, 0.6)

	first, err1 := Extract(samples, DefaultOptions())
	second, err2 := Extract(samples, DefaultOptions())

	assert := assert.New(t)
	assert.NoError(err1)
	assert.NoError(err2)
	assert.Equal(first, second)
}
