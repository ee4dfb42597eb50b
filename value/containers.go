package value

import "fmt"

// Value is the tagged union every graph node ultimately carries: an
// Array, a Dataframe, a Partitions, a Jagged, or a Function. Each
// accessor returns ErrWrongVariant when called against a different
// concrete variant, so callers can write `a, err := v.AsArray()` and
// treat the error as "not an array" without a type switch.
type Value interface {
	AsArray() (*Array, error)
	AsDataframe() (*Dataframe, error)
	AsPartitions() (*Partitions, error)
	AsJagged() (*Jagged, error)
	AsFunction() (*Function, error)
	variantName() string
}

// orderedColumns is the shared ordered-map backing for Dataframe and
// Partitions: an IndexKey-labelled, insertion-ordered sequence of
// Values.
type orderedColumns struct {
	keys []IndexKey
	vals map[string]Value
}

func newOrderedColumns() orderedColumns {
	return orderedColumns{vals: make(map[string]Value)}
}

func (o *orderedColumns) set(k IndexKey, v Value) {
	s := k.String() + "#" + fmt.Sprint(k.kind())
	if _, exists := o.vals[s]; !exists {
		o.keys = append(o.keys, k)
	}
	o.vals[s] = v
}

func (o *orderedColumns) get(k IndexKey) (Value, bool) {
	s := k.String() + "#" + fmt.Sprint(k.kind())
	v, ok := o.vals[s]
	return v, ok
}

// Keys returns the columns/categories in insertion order.
func (o *orderedColumns) Keys() []IndexKey { return append([]IndexKey(nil), o.keys...) }

// Len reports the number of entries.
func (o *orderedColumns) Len() int { return len(o.keys) }

// Dataframe is a column-named Value whose children are all Arrays
// sharing the same record count and dataset id (invariant I2).
type Dataframe struct {
	orderedColumns
}

// NewDataframe constructs an empty Dataframe.
func NewDataframe() *Dataframe { return &Dataframe{orderedColumns: newOrderedColumns()} }

// Set assigns column key to array, requiring array have the same
// NumRecords as any existing column (invariant I2).
func (d *Dataframe) Set(key IndexKey, arr *Array) error {
	if d.Len() > 0 {
		wantN, _ := arr.NumRecords()
		for _, k := range d.Keys() {
			existing, _ := d.get(k)
			ea, err := existing.AsArray()
			if err != nil {
				continue
			}
			gotN, _ := ea.NumRecords()
			if gotN != wantN {
				return fmt.Errorf("%w: column %s has %d records, new column has %d", ErrColumnMismatch, k, gotN, wantN)
			}
		}
	}
	d.set(key, arr.AsValue())
	return nil
}

// Column fetches the Array at key.
func (d *Dataframe) Column(key IndexKey) (*Array, error) {
	v, ok := d.get(key)
	if !ok {
		return nil, fmt.Errorf("%w: no column %s", ErrWrongVariant, key)
	}
	return v.AsArray()
}

func (d *Dataframe) AsArray() (*Array, error) { return nil, fmt.Errorf("%w: have dataframe", ErrWrongVariant) }
func (d *Dataframe) AsDataframe() (*Dataframe, error) { return d, nil }
func (d *Dataframe) AsPartitions() (*Partitions, error) {
	return nil, fmt.Errorf("%w: have dataframe", ErrWrongVariant)
}
func (d *Dataframe) AsJagged() (*Jagged, error)     { return nil, fmt.Errorf("%w: have dataframe", ErrWrongVariant) }
func (d *Dataframe) AsFunction() (*Function, error) { return nil, fmt.Errorf("%w: have dataframe", ErrWrongVariant) }
func (d *Dataframe) variantName() string            { return "dataframe" }

// Partitions is an ordered map from category IndexKey to a disjoint
// subset of a dataset; every child shares the parent's schema.
type Partitions struct {
	orderedColumns
}

// NewPartitions constructs an empty Partitions.
func NewPartitions() *Partitions { return &Partitions{orderedColumns: newOrderedColumns()} }

// Set assigns the subset at category key.
func (p *Partitions) Set(key IndexKey, v Value) { p.set(key, v) }

// Part fetches the subset at category key.
func (p *Partitions) Part(key IndexKey) (Value, error) {
	v, ok := p.get(key)
	if !ok {
		return nil, fmt.Errorf("%w: no partition %s", ErrWrongVariant, key)
	}
	return v, nil
}

func (p *Partitions) AsArray() (*Array, error) { return nil, fmt.Errorf("%w: have partitions", ErrWrongVariant) }
func (p *Partitions) AsDataframe() (*Dataframe, error) {
	return nil, fmt.Errorf("%w: have partitions", ErrWrongVariant)
}
func (p *Partitions) AsPartitions() (*Partitions, error) { return p, nil }
func (p *Partitions) AsJagged() (*Jagged, error)         { return nil, fmt.Errorf("%w: have partitions", ErrWrongVariant) }
func (p *Partitions) AsFunction() (*Function, error)     { return nil, fmt.Errorf("%w: have partitions", ErrWrongVariant) }
func (p *Partitions) variantName() string                { return "partitions" }

// Jagged holds a per-column list of optional category lists: columns[i]
// is nil when column i's categories are unknown, and otherwise points
// to a deduplicated, sorted slice of same-kinded Scalars.
type Jagged struct {
	kind    Kind
	columns []*[]Scalar
}

// NewJagged constructs a Jagged of the given kind with n columns, all
// initially of unknown category domain.
func NewJagged(kind Kind, numColumns int) *Jagged {
	return &Jagged{kind: kind, columns: make([]*[]Scalar, numColumns)}
}

// Kind reports the scalar kind of the categories.
func (j *Jagged) Kind() Kind { return j.kind }

// NumColumns reports the column count.
func (j *Jagged) NumColumns() int { return len(j.columns) }

// SetColumn assigns the deduplicated, sorted category list for column
// i. Returns ErrUnsortedCategories if cats is not sorted/deduplicated.
func (j *Jagged) SetColumn(i int, cats []Scalar) error {
	for k := 1; k < len(cats); k++ {
		if !cats[k-1].Less(cats[k]) {
			return ErrUnsortedCategories
		}
	}
	cp := append([]Scalar(nil), cats...)
	j.columns[i] = &cp
	return nil
}

// Column returns column i's category list, or (nil, false) when that
// column's domain is unknown.
func (j *Jagged) Column(i int) ([]Scalar, bool) {
	if i < 0 || i >= len(j.columns) || j.columns[i] == nil {
		return nil, false
	}
	return *j.columns[i], true
}

func (j *Jagged) AsArray() (*Array, error)      { return nil, fmt.Errorf("%w: have jagged", ErrWrongVariant) }
func (j *Jagged) AsDataframe() (*Dataframe, error) { return nil, fmt.Errorf("%w: have jagged", ErrWrongVariant) }
func (j *Jagged) AsPartitions() (*Partitions, error) {
	return nil, fmt.Errorf("%w: have jagged", ErrWrongVariant)
}
func (j *Jagged) AsJagged() (*Jagged, error)     { return j, nil }
func (j *Jagged) AsFunction() (*Function, error) { return nil, fmt.Errorf("%w: have jagged", ErrWrongVariant) }
func (j *Jagged) variantName() string            { return "jagged" }

// Function is an opaque lambda over a subgraph, used by the Map
// component to apply a per-partition transform.
type Function struct {
	// EntryNodeID is the id of the subgraph's output node; BoundNodeIDs
	// lists every node id the lambda's body touches, so Map can clone
	// the subgraph once per partition.
	EntryNodeID  uint32
	BoundNodeIDs []uint32
}

func (f *Function) AsArray() (*Array, error) { return nil, fmt.Errorf("%w: have function", ErrWrongVariant) }
func (f *Function) AsDataframe() (*Dataframe, error) {
	return nil, fmt.Errorf("%w: have function", ErrWrongVariant)
}
func (f *Function) AsPartitions() (*Partitions, error) {
	return nil, fmt.Errorf("%w: have function", ErrWrongVariant)
}
func (f *Function) AsJagged() (*Jagged, error)     { return nil, fmt.Errorf("%w: have function", ErrWrongVariant) }
func (f *Function) AsFunction() (*Function, error) { return f, nil }
func (f *Function) variantName() string            { return "function" }
