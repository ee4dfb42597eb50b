package noise

import "math"

// SampleGaussian draws a sample from Normal(mean, stddev) via the
// Box-Muller inverse-CDF composition over two SampleUniformUnit draws.
// The spec notes that a build may instead route this through an
// arbitrary-precision library for floating-point safety when one is
// available; this engine does not link one, so it always takes the
// inverse-CDF path.
func SampleGaussian(mean, stddev float64) (float64, error) {
	if stddev <= 0 {
		return 0, ErrInvalidStddev
	}
	u1, err := SampleUniformUnit()
	if err != nil {
		return 0, err
	}
	u2, err := SampleUniformUnit()
	if err != nil {
		return 0, err
	}
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + stddev*z, nil
}

// SampleTruncatedGaussian draws a Normal(mean, stddev) sample
// conditioned on landing in [lower, upper] via rejection sampling. When
// enforceConstantTime is set, it always performs exactly maxTrials
// draws (discarding all but the first in-bound one), per the
// constant-time mode described in spec §5; otherwise it returns as
// soon as a draw lands in bounds. Returns ErrTruncationExhausted if no
// draw landed in bounds within maxTrials attempts.
func SampleTruncatedGaussian(mean, stddev, lower, upper float64, enforceConstantTime bool, maxTrials int) (float64, error) {
	if stddev <= 0 {
		return 0, ErrInvalidStddev
	}
	if lower > upper {
		return 0, ErrInvalidRange
	}
	result := 0.0
	found := false
	for i := 0; i < maxTrials; i++ {
		v, err := SampleGaussian(mean, stddev)
		if err != nil {
			return 0, err
		}
		if v >= lower && v <= upper {
			if !found {
				result = v
				found = true
			}
			if !enforceConstantTime {
				return result, nil
			}
		}
	}
	if !found {
		return 0, ErrTruncationExhausted
	}
	return result, nil
}
