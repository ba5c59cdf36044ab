package rng

import (
	"errors"
	"fmt"
)

// UniformInt32 returns a uniform integer in [min, max] inclusive.
// Integer-only rejection sampling (no floats). This is unbiased assuming the uint32 stream is uniform.
func UniformInt32(d Drawer, min int, max int) (int32, error) {
	if err := CheckRange(min, max); err != nil {
		return 0, err
	}

	rangeSize := uint32(max - min + 1)

	// limit = floor(2^32 / rangeSize) * rangeSize
	limit := (uint64(1)<<32)/uint64(rangeSize) * uint64(rangeSize)

	for {
		x, err := d.NextU32()
		if err != nil {
			return 0, fmt.Errorf("error fetching random number: %w", err)
		}

		if uint64(x) < limit {
			return int32(x%rangeSize) + int32(min), nil
		}
		// reject and retry
	}
}

// CheckRange validates the bounds accepted by UniformInt32.
func CheckRange(min int, max int) error {
	if min < -1000000000 {
		return errors.New("the minimum value should not be lower than -1,000,000,000")
	}
	if min > 1000000000 {
		return errors.New("the minimum value should not be higher than 1,000,000,000")
	}
	if max < -1000000000 {
		return errors.New("the maximum value should not be lower than -1,000,000,000")
	}
	if max > 1000000000 {
		return errors.New("the maximum value should not be higher than 1,000,000,000")
	}
	if min > max {
		return errors.New("the minimum value should be smaller than or equal to the maximum value")
	}
	return nil
}
