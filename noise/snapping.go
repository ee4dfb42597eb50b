package noise

import "math"

// SnappingPrecision computes the Snapping mechanism's working
// precision p = max(118, ceil(log2(epsilon)) + 2), per spec §4.C step
// 1. 118 bits comfortably exceeds binary64's 52-bit mantissa, which is
// the point: the mechanism reasons about rounding error at a precision
// finer than the value it is protecting.
func SnappingPrecision(epsilon float64) int {
	p := int(math.Ceil(math.Log2(epsilon))) + 2
	if p < 118 {
		p = 118
	}
	return p
}

// RedefineEpsilon computes the Snapping mechanism's "redefined
// epsilon" eps' = (eps - 2^-p) / (1 + 12*B*2^-p), per spec §4.C step 2,
// where B bounds |x|/sensitivity. A non-positive result means epsilon
// is too small relative to B for this precision to protect the
// mechanism; callers must treat that as ErrEpsilonBelowSnappingFloor.
func RedefineEpsilon(epsilon, bound float64, p int) float64 {
	twoNegP := math.Ldexp(1, -p)
	return (epsilon - twoNegP) / (1 + 12*bound*twoNegP)
}

// SnappingLambdaExponent returns m such that Lambda = 2^m is the
// smallest power of two at least 1/epsilonPrime, per spec §4.C step 3.
func SnappingLambdaExponent(epsilonPrime float64) int {
	return int(math.Ceil(math.Log2(1 / epsilonPrime)))
}

// RoundToMultipleOfLambda rounds x to the nearest multiple of
// Lambda = 2^m, rounding half to even, and returns exactly 0 when
// |x| < Lambda/2. This is the Snapping mechanism's defining step (spec
// §4.C step 5, tested by property P5): the result y always satisfies
// y / 2^m being an integer, and |y - x| <= 2^(m-1) whenever
// |x| >= 2^m.
func RoundToMultipleOfLambda(x float64, m int) float64 {
	lambda := math.Ldexp(1, m)
	if math.Abs(x) < lambda/2 {
		return 0
	}
	return math.RoundToEven(x/lambda) * lambda
}

// Snap applies the Snapping mechanism to x: a floating-point-safe
// Laplace replacement whose output is rounded to a power-of-two
// multiple, immune to the floating-point precision attacks that can
// leak information from a naive Laplace implementation. sensitivity
// must be positive, epsilon the mechanism's privacy usage, and bound B
// an a priori bound on |x|/sensitivity (values outside are clipped).
func Snap(x, sensitivity, epsilon, bound float64) (float64, error) {
	if sensitivity <= 0 {
		return 0, ErrInvalidSensitivity
	}
	if epsilon <= 0 {
		return 0, ErrInvalidEpsilon
	}
	if bound <= 0 {
		return 0, ErrInvalidBound
	}
	p := SnappingPrecision(epsilon)
	epsilonPrime := RedefineEpsilon(epsilon, bound, p)
	if epsilonPrime <= 0 {
		return 0, ErrEpsilonBelowSnappingFloor
	}
	m := SnappingLambdaExponent(epsilonPrime)

	u, err := SampleUniformUnit()
	if err != nil {
		return 0, err
	}
	sign, err := SampleBit()
	if err != nil {
		return 0, err
	}
	innerLaplace := math.Log(u) / epsilonPrime
	if sign {
		innerLaplace = -innerLaplace
	}

	rounded := RoundToMultipleOfLambda(innerLaplace, m)
	scaled := clip(x/sensitivity+rounded, -bound, bound)
	return scaled * sensitivity, nil
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
