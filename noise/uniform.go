package noise

import (
	"fmt"
	"math"
)

// SampleUniformUnit draws a float in (0, 1) following Mironov's
// construction: the exponent is a censored geometric(p=0.5, cap=1023)
// trial count (the number of leading zero bits before the first one),
// and the mantissa is filled with mantissaPrecision uniform bits. This
// gives every representable float a probability proportional to its
// ulp, rather than the coarse, evenly-spaced draws a naive
// rand.Float64()-style construction would produce.
func SampleUniformUnit() (float64, error) {
	exp := 1
	for ; exp <= maxGeometricTrials; exp++ {
		b, err := SampleBit()
		if err != nil {
			return 0, err
		}
		if b {
			break
		}
	}
	mantissaInt, err := sampleUniformBits(mantissaPrecision)
	if err != nil {
		return 0, err
	}
	frac := float64(mantissaInt) / float64(uint64(1)<<mantissaPrecision)
	return math.Ldexp(1+frac, -exp), nil
}

// SampleUniformFloat draws a float uniformly on [lo, hi) by
// affine-scaling SampleUniformUnit's (0, 1) draw.
func SampleUniformFloat(lo, hi float64) (float64, error) {
	if lo > hi {
		return 0, fmt.Errorf("%w: lo=%v hi=%v", ErrInvalidRange, lo, hi)
	}
	if lo == hi {
		return lo, nil
	}
	u, err := SampleUniformUnit()
	if err != nil {
		return 0, err
	}
	return lo + u*(hi-lo), nil
}

// bitsNeeded returns ceil(log2(n)) for n >= 2, and 1 for n = 1.
func bitsNeeded(n uint64) int {
	bits := 0
	for v := n - 1; v > 0; v >>= 1 {
		bits++
	}
	if bits == 0 {
		bits = 1
	}
	return bits
}

// SampleUniformInt draws an integer uniformly on [lo, hi] by
// rejection-sampling a big-endian integer of ceil(log2(n)) bits, where
// n = hi - lo + 1. Returns lo directly when lo == hi (no randomness
// consumed), and ErrInvalidRange when lo > hi.
func SampleUniformInt(lo, hi int64) (int64, error) {
	v, _, err := sampleUniformIntTrials(lo, hi, false, 0)
	return v, err
}

// SampleUniformIntConstantTime behaves as SampleUniformInt but always
// performs exactly maxTrials rejection rounds (the constant-time mode
// from spec §5), returning the first in-range draw it found, or
// ErrTruncationExhausted if none of the maxTrials rounds landed
// in-range.
func SampleUniformIntConstantTime(lo, hi int64, maxTrials int) (int64, error) {
	v, found, err := sampleUniformIntTrials(lo, hi, true, maxTrials)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrTruncationExhausted
	}
	return v, nil
}

func sampleUniformIntTrials(lo, hi int64, constantTime bool, maxTrials int) (int64, bool, error) {
	if lo > hi {
		return 0, false, fmt.Errorf("%w: lo=%d hi=%d", ErrInvalidRange, lo, hi)
	}
	if lo == hi {
		return lo, true, nil
	}
	span := uint64(hi-lo) + 1
	bits := bitsNeeded(span)
	result := int64(0)
	found := false
	trial := 0
	for {
		v, err := sampleUniformBits(bits)
		if err != nil {
			return 0, false, err
		}
		if v < span && !found {
			result = lo + int64(v)
			found = true
			if !constantTime {
				return result, true, nil
			}
		}
		trial++
		if constantTime {
			if trial >= maxTrials {
				return result, found, nil
			}
		} else if found {
			return result, true, nil
		}
	}
}
