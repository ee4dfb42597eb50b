package value

import "errors"

// Sentinel errors for the value package. Callers should branch with
// errors.Is; call sites attach context with fmt.Errorf("%w: ...", ErrX).
var (
	// ErrWrongVariant indicates an accessor was called on a Value whose
	// concrete variant does not match (e.g. Dataframe() on an Array).
	ErrWrongVariant = errors.New("data: value is not the requested variant")

	// ErrWrongKind indicates an accessor was called expecting a scalar
	// kind (Float, Int, ...) the Array does not hold.
	ErrWrongKind = errors.New("data: array does not hold the requested scalar kind")

	// ErrShapeMismatch indicates an operation over two arrays whose
	// shapes are incompatible.
	ErrShapeMismatch = errors.New("data: incompatible array shapes")

	// ErrDimensionality indicates a shape with more than 2 dimensions,
	// which Array does not support.
	ErrDimensionality = errors.New("data: array supports at most 2 dimensions")

	// ErrColumnMismatch indicates a Dataframe whose children disagree on
	// num_records or dataset_id (invariant I2).
	ErrColumnMismatch = errors.New("data: dataframe columns disagree on record count or dataset id")

	// ErrUnsortedCategories indicates a Jagged categorical domain that is
	// not deduplicated and sorted, which violates the property invariant
	// that categories must be canonical before comparison.
	ErrUnsortedCategories = errors.New("data: categories are not deduplicated and sorted")

	// ErrEmptyBounds indicates cast_float/cast_int was asked to impute
	// without a usable [min, max] bound.
	ErrEmptyBounds = errors.New("data: imputation requires a finite [lower, upper] bound")

	// ErrUncomparableKeys indicates two IndexKeys of incompatible
	// concrete types were compared.
	ErrUncomparableKeys = errors.New("data: index keys are not comparable")
)
