package midiref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func makeScore(t *testing.T) *smf.SMF {
	t.Helper()
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(960)

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(120))
	// C4 for one quarter, then E4 for one quarter
	tr.Add(0, midi.NoteOn(0, 60, 100))
	tr.Add(960, midi.NoteOff(0, 60))
	tr.Add(0, midi.NoteOn(0, 64, 100))
	tr.Add(960, midi.NoteOff(0, 64))
	tr.Close(0)
	s.Add(tr)
	return s
}

func TestNotes(t *testing.T) {
	res, err := Notes(makeScore(t))

	assert := assert.New(t)
	assert.NoError(err)
	if !assert.Len(res, 2) {
		return
	}

	// at 120 bpm a 960-tick quarter lasts half a second
	assert.Equal("C4", res[0].NoteName)
	assert.Equal(uint8(60), res[0].MidiNumber)
	assert.InDelta(0, res[0].StartTime, 0.001)
	assert.InDelta(0.5, res[0].Duration, 0.001)
	assert.InDelta(261.63, res[0].AvgPitchHz, 0.01)

	assert.Equal("E4", res[1].NoteName)
	assert.InDelta(0.5, res[1].StartTime, 0.001)
	assert.InDelta(0.5, res[1].Duration, 0.001)
}

func TestOnsets(t *testing.T) {
	res, err := Notes(makeScore(t))
	assert.NoError(t, err)

	onsets := Onsets(res)
	assert.Len(t, onsets, 2)
	assert.InDelta(t, 0, onsets[0], 0.001)
	assert.InDelta(t, 0.5, onsets[1], 0.001)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile("does-not-exist.mid")
	assert.Error(t, err)
}
