package util

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"

	"golang.org/x/exp/constraints"
)

func Mean[A constraints.Float](nums []A) A {
	if len(nums) == 0 {
		return 0
	}
	var total A
	for _, v := range nums {
		total += v
	}
	return total / A(len(nums))
}

// Clamp01 absorbs floating-point drift on values that are [0,1] by
// construction.
func Clamp01[A constraints.Float](v A) A {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// WriteBinary gob-encodes data to a file, used for analysis snapshots.
func WriteBinary(filename string, data any) error {
	buf := new(bytes.Buffer)
	encoder := gob.NewEncoder(buf)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("could not encode %v: %w", filename, err)
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0666); err != nil {
		return fmt.Errorf("could not write %v: %w", filename, err)
	}
	return nil
}

func ReadBinary[A any](path string) (A, error) {
	var data A
	f, err := os.Open(path)
	if err != nil {
		return data, fmt.Errorf("could not open %v: %w", path, err)
	}
	defer f.Close()

	decoder := gob.NewDecoder(f)
	if err := decoder.Decode(&data); err != nil {
		return data, fmt.Errorf("could not decode %v: %w", path, err)
	}
	return data, nil
}
