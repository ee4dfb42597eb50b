package value

import (
	"fmt"
	"math"
	"strconv"

	"github.com/arborcroft/dpgraph/noise"
)

// CastFloat converts arr to a Float-kinded array of the same shape.
// Bool becomes 0/1, Int is widened, Str is parsed with strconv; any
// cell that fails to parse, or that parses to NaN, is imputed with a
// uniform draw on [lower, upper] rather than left invalid. Requires a
// finite, non-empty bound (lower <= upper) to impute with.
func CastFloat(arr *Array, lower, upper float64) (*Array, error) {
	if !(lower <= upper) || math.IsNaN(lower) || math.IsNaN(upper) {
		return nil, ErrEmptyBounds
	}
	out := make([]Scalar, arr.Len())
	for i, d := range arr.data {
		f, ok := scalarToFloat(d)
		if !ok || math.IsNaN(f) {
			imputed, err := noise.SampleUniformFloat(lower, upper)
			if err != nil {
				return nil, fmt.Errorf("data: imputing cast_float cell %d: %w", i, err)
			}
			f = imputed
		}
		out[i] = FloatScalar(f)
	}
	return NewArray(KindFloat, arr.shape, out)
}

// CastInt converts arr to an Int-kinded array of the same shape. Bool
// becomes 0/1, Float is truncated toward zero, Str is parsed with
// strconv; any cell that fails to parse is imputed with a uniform
// integer draw on [lower, upper], and so is any
// Float cell holding NaN ("NaN-int casts impute likewise", per spec
// §4.A).
func CastInt(arr *Array, lower, upper int64) (*Array, error) {
	if lower > upper {
		return nil, ErrEmptyBounds
	}
	out := make([]Scalar, arr.Len())
	for i, d := range arr.data {
		v, ok := scalarToInt(d)
		if !ok {
			imputed, err := noise.SampleUniformInt(lower, upper)
			if err != nil {
				return nil, fmt.Errorf("data: imputing cast_int cell %d: %w", i, err)
			}
			v = imputed
		}
		out[i] = IntScalar(v)
	}
	return NewArray(KindInt, arr.shape, out)
}

func scalarToFloat(d Scalar) (float64, bool) {
	switch d.Kind {
	case KindFloat:
		return d.F, true
	case KindInt:
		return float64(d.I), true
	case KindBool:
		if d.B {
			return 1, true
		}
		return 0, true
	case KindStr:
		f, err := strconv.ParseFloat(d.S, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func scalarToInt(d Scalar) (int64, bool) {
	switch d.Kind {
	case KindInt:
		return d.I, true
	case KindFloat:
		if math.IsNaN(d.F) || math.IsInf(d.F, 0) {
			return 0, false
		}
		return int64(d.F), true
	case KindBool:
		if d.B {
			return 1, true
		}
		return 0, true
	case KindStr:
		v, err := strconv.ParseInt(d.S, 10, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}
