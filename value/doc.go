// Package value defines the tagged value union that flows through
// every computation graph node.
//
// A Value is one of Array, Dataframe, Partitions, Jagged, or Function
// (see array.go and containers.go). Each concrete type implements the Value interface and
// exposes typed accessors (Array.Float, Array.Int, Array.NumColumns,
// Array.LowerFloat/UpperFloat, Array.Categories, Value.AsArray /
// AsDataframe / AsPartitions / AsJagged) that report a *data:*-prefixed
// error when the underlying variant or scalar kind disagrees, rather
// than panicking.
//
// The per-node symbolic record the propagation engine derives is not
// in this package: it is graphmodel.Property (graphmodel/property.go).
package value
