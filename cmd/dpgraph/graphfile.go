package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arborcroft/dpgraph/graphmodel"
	"github.com/arborcroft/dpgraph/value"
)

// jsonGraph is the on-disk analysis description the validate command
// reads: a flat list of nodes, each naming its Variant, its named
// arguments by referencing another node's ID, and a subset of Params
// (epsilon, delta, mechanism, lower, upper, num_partitions) plus an
// optional literal. It is deliberately minimal compared to the
// original implementation's protobuf analysis message.
type jsonGraph struct {
	Nodes []jsonNode `json:"nodes"`
}

type jsonNode struct {
	ID      uint32            `json:"id"`
	Variant string            `json:"variant"`
	Args    map[string]uint32 `json:"args"`

	Literal *jsonLiteral `json:"literal,omitempty"`

	Epsilon    float64   `json:"epsilon,omitempty"`
	Delta      float64   `json:"delta,omitempty"`
	Mechanism  string    `json:"mechanism,omitempty"`
	Lower      []float64 `json:"lower,omitempty"`
	Upper      []float64 `json:"upper,omitempty"`
	NumPartitions int    `json:"num_partitions,omitempty"`
}

type jsonLiteral struct {
	Kind       string    `json:"kind"`
	Shape      []int     `json:"shape"`
	Floats     []float64 `json:"floats,omitempty"`
	Ints       []int64   `json:"ints,omitempty"`
	Strs       []string  `json:"strs,omitempty"`
}

func loadGraph(path string) (*graphmodel.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading graph file: %w", err)
	}
	var jg jsonGraph
	if err := json.Unmarshal(data, &jg); err != nil {
		return nil, fmt.Errorf("parsing graph file: %w", err)
	}

	g := graphmodel.NewGraph()
	for _, n := range jg.Nodes {
		variant, ok := graphmodel.ParseVariant(n.Variant)
		if !ok {
			return nil, fmt.Errorf("node %d: unknown variant %q", n.ID, n.Variant)
		}
		c := graphmodel.NewComponent(variant)
		for name, argID := range n.Args {
			c.SetArg(value.StrKey(name), argID)
		}
		c.Params.Epsilon = n.Epsilon
		c.Params.Delta = n.Delta
		c.Params.Lower = n.Lower
		c.Params.Upper = n.Upper
		c.Params.NumPartitions = n.NumPartitions
		c.Params.Mechanism = parseMechanism(n.Mechanism)
		if n.Literal != nil {
			lit, err := buildLiteral(n.Literal)
			if err != nil {
				return nil, fmt.Errorf("node %d: literal: %w", n.ID, err)
			}
			c.Literal = lit
		}
		if err := g.AddNodeWithID(n.ID, c); err != nil {
			return nil, fmt.Errorf("node %d: %w", n.ID, err)
		}
	}
	return g, nil
}

func parseMechanism(name string) graphmodel.MechanismKind {
	switch name {
	case "gaussian":
		return graphmodel.MechanismGaussian
	case "analytic_gaussian":
		return graphmodel.MechanismAnalyticGaussian
	case "simple_geometric":
		return graphmodel.MechanismSimpleGeometric
	case "snapping":
		return graphmodel.MechanismSnapping
	case "exponential":
		return graphmodel.MechanismExponential
	default:
		return graphmodel.MechanismLaplace
	}
}

func buildLiteral(lit *jsonLiteral) (value.Value, error) {
	var kind value.Kind
	var data []value.Scalar
	switch lit.Kind {
	case "float":
		kind = value.KindFloat
		for _, f := range lit.Floats {
			data = append(data, value.FloatScalar(f))
		}
	case "int":
		kind = value.KindInt
		for _, i := range lit.Ints {
			data = append(data, value.IntScalar(i))
		}
	case "str":
		kind = value.KindStr
		for _, s := range lit.Strs {
			data = append(data, value.StrScalar(s))
		}
	default:
		return nil, fmt.Errorf("unknown literal kind %q", lit.Kind)
	}
	arr, err := value.NewArray(kind, lit.Shape, data)
	if err != nil {
		return nil, err
	}
	return arr.AsValue(), nil
}
