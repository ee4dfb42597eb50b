package noise

import "math"

// SampleLaplace draws a sample from Lap(0, scale) via the standard
// inverse-CDF composition: an unbiased sign bit times an Exponential(1)
// variate (obtained as -ln(U) for U uniform on (0,1)), scaled by scale.
func SampleLaplace(scale float64) (float64, error) {
	if scale <= 0 {
		return 0, ErrInvalidScale
	}
	u, err := SampleUniformUnit()
	if err != nil {
		return 0, err
	}
	sign, err := SampleBit()
	if err != nil {
		return 0, err
	}
	magnitude := -math.Log(u) * scale
	if sign {
		return magnitude, nil
	}
	return -magnitude, nil
}
