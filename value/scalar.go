package value

// Kind identifies the scalar type carried by an Array or Jagged.
type Kind int

// The four scalar kinds the engine understands. Float is IEEE-754
// binary64; there is no separate "double" vs "single" precision split.
const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindStr
)

// String renders a Kind for error messages and report generation.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindStr:
		return "str"
	default:
		return "unknown"
	}
}

// DataType mirrors Kind at the property level; kept as a distinct type
// because a Property's DataType can additionally describe the absence
// of a value (DataTypeUnknown) prior to propagation.
type DataType int

// DataType values. DataTypeUnknown marks a node whose type has not yet
// been propagated (or, after a failed propagation, could not be).
const (
	DataTypeUnknown DataType = iota
	DataTypeBool
	DataTypeInt
	DataTypeFloat
	DataTypeStr
)

// String renders a DataType for error messages and report generation.
func (d DataType) String() string {
	switch d {
	case DataTypeBool:
		return "bool"
	case DataTypeInt:
		return "int"
	case DataTypeFloat:
		return "float"
	case DataTypeStr:
		return "str"
	default:
		return "unknown"
	}
}

// FromKind converts a Kind into its corresponding DataType.
func FromKind(k Kind) DataType {
	switch k {
	case KindBool:
		return DataTypeBool
	case KindInt:
		return DataTypeInt
	case KindFloat:
		return DataTypeFloat
	case KindStr:
		return DataTypeStr
	default:
		return DataTypeUnknown
	}
}

// Scalar is a single tagged value, used as the flat storage unit of
// Array and as the element type of Jagged category lists.
type Scalar struct {
	Kind Kind
	B    bool
	I    int64
	F    float64
	S    string
}

// BoolScalar constructs a Bool-kinded Scalar.
func BoolScalar(b bool) Scalar { return Scalar{Kind: KindBool, B: b} }

// IntScalar constructs an Int-kinded Scalar.
func IntScalar(i int64) Scalar { return Scalar{Kind: KindInt, I: i} }

// FloatScalar constructs a Float-kinded Scalar.
func FloatScalar(f float64) Scalar { return Scalar{Kind: KindFloat, F: f} }

// StrScalar constructs a Str-kinded Scalar.
func StrScalar(s string) Scalar { return Scalar{Kind: KindStr, S: s} }

// Equal reports whether two scalars of the same kind hold equal values.
// Scalars of differing kinds are never equal.
func (s Scalar) Equal(o Scalar) bool {
	if s.Kind != o.Kind {
		return false
	}
	switch s.Kind {
	case KindBool:
		return s.B == o.B
	case KindInt:
		return s.I == o.I
	case KindFloat:
		return s.F == o.F
	case KindStr:
		return s.S == o.S
	default:
		return false
	}
}

// Less gives scalars of the same kind a total order, used to sort and
// deduplicate categorical domains before they are compared.
func (s Scalar) Less(o Scalar) bool {
	switch s.Kind {
	case KindBool:
		return !s.B && o.B
	case KindInt:
		return s.I < o.I
	case KindFloat:
		return s.F < o.F
	case KindStr:
		return s.S < o.S
	default:
		return false
	}
}

// AsIndexKey converts a scalar into the IndexKey it denotes when used
// as a partition category.
func (s Scalar) AsIndexKey() IndexKey {
	switch s.Kind {
	case KindBool:
		return BoolKey(s.B)
	case KindInt:
		return IntKey(s.I)
	case KindStr:
		return StrKey(s.S)
	default:
		// Float categories are not addressable IndexKeys; callers must
		// bin floats into categories before partitioning by them.
		return StrKey("")
	}
}
