// Package contour reads the pitch-contour JSON exported by the external
// pitch/onset tracker. Decoding audio and producing the contour is the
// tracker's job; this package only parses and validates its output.
package contour

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ltrask/melodiff/model"
)

func ReadFile(path string) (*model.Recording, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading contour file: %w", err)
	}

	var rec model.Recording
	if err := json.Unmarshal(dat, &rec); err != nil {
		return nil, fmt.Errorf("error parsing contour file %v: %w", path, err)
	}

	if err := Validate(&rec); err != nil {
		return nil, fmt.Errorf("invalid contour file %v: %w", path, err)
	}
	return &rec, nil
}

// Validate checks the tracker's ordering contract: sample times and onsets
// are non-negative and non-decreasing. Empty samples/onsets are fine.
func Validate(rec *model.Recording) error {
	for i, s := range rec.Samples {
		if s.Time < 0 {
			return fmt.Errorf("sample %v has negative time %v", i, s.Time)
		}
		if i > 0 && s.Time < rec.Samples[i-1].Time {
			return fmt.Errorf("sample %v out of order (%v after %v)", i, s.Time, rec.Samples[i-1].Time)
		}
	}
	for i, t := range rec.Onsets {
		if t < 0 {
			return fmt.Errorf("onset %v has negative time %v", i, t)
		}
		if i > 0 && t < rec.Onsets[i-1] {
			return fmt.Errorf("onset %v out of order (%v after %v)", i, t, rec.Onsets[i-1])
		}
	}
	return nil
}
