package noise

import (
	"fmt"
	"math"
)

// maxGeometricTrials bounds the censored-geometric trial budget used
// throughout this package (SampleBitProb, CensoredGeometric, and the
// uniform-float exponent draw), matching the spec's fixed cap of 1023.
const maxGeometricTrials = 1023

// mantissaPrecision is IEEE-754 binary64's significand width.
const mantissaPrecision = 52

// mantissaBits expands mantissa (as returned by math.Frexp, in
// [0.5, 1)) into its most-significant-bit-first binary digits: the
// leading 1 plus the mantissaPrecision stored bits.
func mantissaBits(mantissa float64) [mantissaPrecision + 1]bool {
	var bits [mantissaPrecision + 1]bool
	m := mantissa
	for i := 0; i < len(bits); i++ {
		m *= 2
		if m >= 1 {
			bits[i] = true
			m--
		}
	}
	return bits
}

// SampleBitProb draws an exact Bernoulli(p) sample using only unbiased
// bits. It decomposes p into its IEEE-754 exponent and mantissa and
// compares p's binary expansion, bit by bit, against a freshly drawn
// (and never fully materialized) uniform variate: at the first
// differing bit position, the comparison determines the outcome. The
// comparison is capped at maxGeometricTrials positions, which absorbs
// the censored-geometric failure distribution into the tail exactly as
// the spec describes.
func SampleBitProb(p float64) (bool, error) {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return false, fmt.Errorf("%w: p=%v", ErrInvalidProbability, p)
	}
	if p == 0 {
		return false, nil
	}
	if p == 1 {
		return true, nil
	}
	mantissa, exp := math.Frexp(p) // p = mantissa * 2^exp, 0.5 <= mantissa < 1
	bits := mantissaBits(mantissa)
	// mantissa's leading bit is always 1 (mantissa is in [0.5, 1)), and
	// it denotes the value at position 2^(exp-1) of p's own binary
	// expansion. So whenever exp < 0, p's expansion has -exp leading
	// zero bits before that mantissa bit ever applies; trials landing
	// in that region must compare against an implicit 0, not skip
	// straight to the mantissa (spec §4.C's "index into the mantissa at
	// the position dictated by the exponent").
	leadingZeros := 0
	if exp < 0 {
		leadingZeros = -exp
	}
	for trial := 0; trial < maxGeometricTrials; trial++ {
		u, err := SampleBit()
		if err != nil {
			return false, err
		}
		var pBit bool
		if trial < leadingZeros {
			pBit = false
		} else if idx := trial - leadingZeros; idx < len(bits) {
			pBit = bits[idx]
		} else {
			pBit = false // p's precision is exhausted; remaining bits are 0
		}
		switch {
		case !u && pBit:
			return true, nil
		case u && !pBit:
			return false, nil
		default:
			continue // tie at this bit position; compare the next one
		}
	}
	// Exhausted the trial cap without a decisive bit: treat the tie as
	// "not less".
	return false, nil
}
