package value

import "fmt"

// Array is a dense rectangular value of up to two dimensions, stored as
// a flat, row-major buffer of homogeneously-kinded Scalars. Shape is
// either empty (a 0-dimensional scalar), length 1 ([n], a single
// column of n records), or length 2 ([n, m], n records by m columns).
type Array struct {
	kind  Kind
	shape []int
	data  []Scalar
}

// NewArray constructs an Array, validating that shape has at most two
// dimensions, that its product matches len(data), and that every
// element of data carries the declared kind.
func NewArray(kind Kind, shape []int, data []Scalar) (*Array, error) {
	if len(shape) > 2 {
		return nil, fmt.Errorf("%w: got %d dimensions", ErrDimensionality, len(shape))
	}
	want := 1
	for _, s := range shape {
		want *= s
	}
	if len(shape) == 0 {
		want = len(data)
		if want > 1 {
			return nil, fmt.Errorf("%w: 0-d array must hold exactly one scalar", ErrShapeMismatch)
		}
	}
	if want != len(data) {
		return nil, fmt.Errorf("%w: shape implies %d elements, got %d", ErrShapeMismatch, want, len(data))
	}
	for i, d := range data {
		if d.Kind != kind {
			return nil, fmt.Errorf("%w: element %d is %s, array is %s", ErrWrongKind, i, d.Kind, kind)
		}
	}
	cp := make([]Scalar, len(data))
	copy(cp, data)
	return &Array{kind: kind, shape: append([]int(nil), shape...), data: cp}, nil
}

// Kind reports the scalar kind carried by the array.
func (a *Array) Kind() Kind { return a.kind }

// Shape reports the array's dimensions (0, 1, or 2 entries).
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// Len reports the total number of scalar elements.
func (a *Array) Len() int { return len(a.data) }

// NumColumns reports the number of columns: 1 for 0-d and 1-d arrays,
// shape[1] for 2-d arrays.
func (a *Array) NumColumns() (int, error) {
	switch len(a.shape) {
	case 0, 1:
		return 1, nil
	case 2:
		return a.shape[1], nil
	default:
		return 0, ErrDimensionality
	}
}

// NumRecords reports shape[0] for 1-d and 2-d arrays, or 1 for a 0-d
// scalar.
func (a *Array) NumRecords() (int, error) {
	switch len(a.shape) {
	case 0:
		return 1, nil
	case 1, 2:
		return a.shape[0], nil
	default:
		return 0, ErrDimensionality
	}
}

// Float returns the array's data as a []float64. Returns ErrWrongKind
// if the array is not Float-kinded.
func (a *Array) Float() ([]float64, error) {
	if a.kind != KindFloat {
		return nil, fmt.Errorf("%w: array is %s", ErrWrongKind, a.kind)
	}
	out := make([]float64, len(a.data))
	for i, d := range a.data {
		out[i] = d.F
	}
	return out, nil
}

// Int returns the array's data as a []int64. Returns ErrWrongKind if
// the array is not Int-kinded.
func (a *Array) Int() ([]int64, error) {
	if a.kind != KindInt {
		return nil, fmt.Errorf("%w: array is %s", ErrWrongKind, a.kind)
	}
	out := make([]int64, len(a.data))
	for i, d := range a.data {
		out[i] = d.I
	}
	return out, nil
}

// Bool returns the array's data as a []bool. Returns ErrWrongKind if
// the array is not Bool-kinded.
func (a *Array) Bool() ([]bool, error) {
	if a.kind != KindBool {
		return nil, fmt.Errorf("%w: array is %s", ErrWrongKind, a.kind)
	}
	out := make([]bool, len(a.data))
	for i, d := range a.data {
		out[i] = d.B
	}
	return out, nil
}

// Str returns the array's data as a []string. Returns ErrWrongKind if
// the array is not Str-kinded.
func (a *Array) Str() ([]string, error) {
	if a.kind != KindStr {
		return nil, fmt.Errorf("%w: array is %s", ErrWrongKind, a.kind)
	}
	out := make([]string, len(a.data))
	for i, d := range a.data {
		out[i] = d.S
	}
	return out, nil
}

// LowerFloat is equivalent to Float; it is named separately so call
// sites that pass an Array as a per-column lower-bound literal (the
// "lower" argument to Clamp/Impute/Resize) read as bounds accessors
// rather than generic data accessors.
func (a *Array) LowerFloat() ([]float64, error) { return a.Float() }

// UpperFloat is equivalent to Float; see LowerFloat.
func (a *Array) UpperFloat() ([]float64, error) { return a.Float() }

// Categories builds a single-column Jagged categorical domain from the
// array's distinct values, sorted and deduplicated. It is a convenience
// over constructing a Jagged by hand when an Array literal is supplied
// where a categorical domain is expected.
func (a *Array) Categories() (*Jagged, error) {
	seen := make(map[Scalar]struct{}, len(a.data))
	uniq := make([]Scalar, 0, len(a.data))
	for _, d := range a.data {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		uniq = append(uniq, d)
	}
	for i := 1; i < len(uniq); i++ {
		for j := i; j > 0 && uniq[j].Less(uniq[j-1]); j-- {
			uniq[j], uniq[j-1] = uniq[j-1], uniq[j]
		}
	}
	return &Jagged{kind: a.kind, columns: []*[]Scalar{&uniq}}, nil
}

// AsValue wraps the array as the Value interface.
func (a *Array) AsValue() Value { return arrayValue{a} }

// arrayValue adapts *Array to the Value interface without polluting
// Array's own method set with the other variants' failing accessors.
type arrayValue struct{ a *Array }

func (v arrayValue) AsArray() (*Array, error)           { return v.a, nil }
func (v arrayValue) AsDataframe() (*Dataframe, error)   { return nil, fmt.Errorf("%w: have array", ErrWrongVariant) }
func (v arrayValue) AsPartitions() (*Partitions, error) { return nil, fmt.Errorf("%w: have array", ErrWrongVariant) }
func (v arrayValue) AsJagged() (*Jagged, error)         { return nil, fmt.Errorf("%w: have array", ErrWrongVariant) }
func (v arrayValue) AsFunction() (*Function, error)     { return nil, fmt.Errorf("%w: have array", ErrWrongVariant) }
func (v arrayValue) variantName() string                { return "array" }
