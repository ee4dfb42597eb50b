package graphmodel

import "github.com/arborcroft/dpgraph/value"

// Nature classifies what a Property's underlying data actually is,
// independent of its privacy state. Most Variants, Union included,
// produce Array; Partition nodes produce Partitions; Map and Join
// nodes produce Dataframe.
type Nature int

const (
	NatureArray Nature = iota
	NatureDataframe
	NaturePartitions
	NatureJagged
	NatureFunction
)

// GroupID identifies one partition of a Partition node's output, used
// to track per-partition privacy usage and group-size amplification
// (spec §7's group-size adjustment) independently across siblings.
type GroupID struct {
	PartitionID uint32
	Index       value.IndexKey
}

// AggregatorProvenance is the copy of a producing aggregator
// Component, plus the input Properties it consumed, that an
// aggregator's output Property carries forward. Sensitivity
// derivation (package sensitivity) reads this directly rather than
// walking back through the Graph, so a Property remains meaningful
// even after the Component that produced it has been mutated or
// removed by later propagation passes.
type AggregatorProvenance struct {
	Component    Component
	InputNature  []Nature
	InputLower   []float64
	InputUpper   []float64
	InputLowerInt []int64
	InputUpperInt []int64
	InputNumRecords []int64
	InputGroupSize  int
}

// Property is the symbolic record the propagation fixpoint computes
// for one graph node: what shape/type/bounds the node's data has, and
// whether and how tightly it is privacy-protected.
type Property struct {
	Nature Nature

	NumRecords    int64
	NumRecordsMax bool // true if NumRecords is only an upper bound

	NumColumns int

	// Bounds, one pair of slices per column; empty when data is
	// unbounded (bounds are required before a sensitivity can be
	// derived, per spec §4.A/§7).
	Lower    []float64
	Upper    []float64
	LowerInt []int64
	UpperInt []int64
	HasBounds bool

	DataType value.DataType

	// Releasable is true once the Property's value has already passed
	// through a DP mechanism (or is a public Literal); a non-releasable
	// Property cannot be the direct input to Union(flatten=true). The
	// report lists every node with its Releasable flag.
	Releasable bool

	// GroupSize upper-bounds how many records in the protected dataset
	// a single individual's participation can affect; 1 unless the
	// node descends from a Partition whose group_size amplification
	// applies (spec §7).
	GroupSize int

	// Aggregator is the provenance record attached when this Property
	// was produced by an aggregator Variant; nil otherwise (elementary
	// transforms and mechanisms do not set it).
	Aggregator *AggregatorProvenance

	// Group, set on Properties living inside a Partitions container,
	// identifies which partition/index this Property belongs to.
	Group *GroupID

	Categories *value.Jagged
}

// Clone returns a deep-enough copy of p safe for an independent
// downstream node to mutate without aliasing p's slices.
func (p *Property) Clone() *Property {
	if p == nil {
		return nil
	}
	q := *p
	q.Lower = append([]float64(nil), p.Lower...)
	q.Upper = append([]float64(nil), p.Upper...)
	q.LowerInt = append([]int64(nil), p.LowerInt...)
	q.UpperInt = append([]int64(nil), p.UpperInt...)
	if p.Aggregator != nil {
		agg := *p.Aggregator
		q.Aggregator = &agg
	}
	if p.Group != nil {
		g := *p.Group
		q.Group = &g
	}
	return &q
}
