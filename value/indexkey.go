package value

import "fmt"

// IndexKey labels Dataframe columns and Partitions categories. It is one
// of BoolKey, IntKey, StrKey, or TupleKey, and carries a total order so
// that keys can be sorted deterministically wherever ordering matters
// (category deduplication, report generation).
type IndexKey interface {
	fmt.Stringer
	// kind returns a small rank used to order keys of different
	// concrete types before comparing values within the same type.
	kind() int
	// less reports whether this key sorts before other, given they
	// share the same kind() rank.
	less(other IndexKey) bool
	// equal reports whether this key equals other.
	equal(other IndexKey) bool
}

const (
	kindBool = iota
	kindInt
	kindStr
	kindTuple
)

// BoolKey is a boolean-valued IndexKey.
type BoolKey bool

func (k BoolKey) String() string    { return fmt.Sprintf("%t", bool(k)) }
func (k BoolKey) kind() int         { return kindBool }
func (k BoolKey) less(o IndexKey) bool {
	return !bool(k) && bool(o.(BoolKey))
}
func (k BoolKey) equal(o IndexKey) bool {
	ok, isBool := o.(BoolKey)
	return isBool && ok == k
}

// IntKey is an integer-valued IndexKey.
type IntKey int64

func (k IntKey) String() string { return fmt.Sprintf("%d", int64(k)) }
func (k IntKey) kind() int      { return kindInt }
func (k IntKey) less(o IndexKey) bool {
	return int64(k) < int64(o.(IntKey))
}
func (k IntKey) equal(o IndexKey) bool {
	ok, isInt := o.(IntKey)
	return isInt && ok == k
}

// StrKey is a string-valued IndexKey.
type StrKey string

func (k StrKey) String() string { return string(k) }
func (k StrKey) kind() int      { return kindStr }
func (k StrKey) less(o IndexKey) bool {
	return string(k) < string(o.(StrKey))
}
func (k StrKey) equal(o IndexKey) bool {
	ok, isStr := o.(StrKey)
	return isStr && ok == k
}

// TupleKey is a composite IndexKey used by multi-column partitioning.
type TupleKey []IndexKey

func (k TupleKey) String() string {
	s := "("
	for i, e := range k {
		if i > 0 {
			s += ", "
		}
		s += e.String()
	}
	return s + ")"
}
func (k TupleKey) kind() int { return kindTuple }
func (k TupleKey) less(o IndexKey) bool {
	other := o.(TupleKey)
	n := len(k)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if Less(k[i], other[i]) {
			return true
		}
		if Less(other[i], k[i]) {
			return false
		}
	}
	return len(k) < len(other)
}
func (k TupleKey) equal(o IndexKey) bool {
	other, ok := o.(TupleKey)
	if !ok || len(other) != len(k) {
		return false
	}
	for i := range k {
		if !k[i].equal(other[i]) {
			return false
		}
	}
	return true
}

// Less reports whether a sorts before b under IndexKey's total order:
// keys of different concrete kinds order by kind rank (Bool < Int < Str
// < Tuple) before any same-kind comparison is attempted.
func Less(a, b IndexKey) bool {
	if a.kind() != b.kind() {
		return a.kind() < b.kind()
	}
	return a.less(b)
}

// Equal reports whether a and b are the same IndexKey.
func Equal(a, b IndexKey) bool {
	if a.kind() != b.kind() {
		return false
	}
	return a.equal(b)
}

// SortKeys sorts ks in place using the IndexKey total order.
func SortKeys(ks []IndexKey) {
	// Simple insertion sort: IndexKey sets in this engine are small
	// (argument maps, partition categories), so O(n^2) is not a concern
	// and avoids importing sort for a three-line comparator.
	for i := 1; i < len(ks); i++ {
		for j := i; j > 0 && Less(ks[j], ks[j-1]); j-- {
			ks[j], ks[j-1] = ks[j-1], ks[j]
		}
	}
}
