// Package report defines the JSON contract GenerateReport returns and
// a thin Build function assembling it from propagation results and
// composed privacy usage. It carries no formatting prose or rendering
// logic (spec's non-goals explicitly exclude a human-readable report
// renderer) — Build's job ends at a structurally complete, directly
// json.Marshal-able value.
package report

import (
	"github.com/arborcroft/dpgraph/graphmodel"
	"github.com/arborcroft/dpgraph/privacy"
)

// NodeReport is one node's entry in the report.
type NodeReport struct {
	NodeID     uint32  `json:"node_id"`
	Variant    string  `json:"variant"`
	Releasable bool    `json:"releasable"`
	NumRecords int64   `json:"num_records,omitempty"`
	DataType   string  `json:"data_type,omitempty"`
	Epsilon    float64 `json:"epsilon,omitempty"`
	Delta      float64 `json:"delta,omitempty"`
	Omitted    bool    `json:"omitted,omitempty"`
}

// Report is the top-level structure returned by GenerateReport.
type Report struct {
	Nodes         []NodeReport `json:"nodes"`
	TotalEpsilon  float64      `json:"total_epsilon"`
	TotalDelta    float64      `json:"total_delta"`
	Warnings      []string     `json:"warnings,omitempty"`
	FailedNodeIDs []uint32     `json:"failed_node_ids,omitempty"`
}

// Build assembles a Report from a graph, its propagated Properties,
// per-node mechanism usages, and the composed analysis-wide total.
func Build(g *graphmodel.Graph, properties map[uint32]*graphmodel.Property, usages map[uint32]privacy.Usage, total privacy.Usage, warnings []string, failed map[uint32]error) Report {
	r := Report{
		TotalEpsilon: total.Epsilon,
		TotalDelta:   total.Delta,
		Warnings:     warnings,
	}
	for _, id := range g.NodeIDs() {
		c, err := g.Get(id)
		if err != nil {
			continue
		}
		p, ok := properties[id]
		if !ok {
			if _, isFailed := failed[id]; isFailed {
				r.FailedNodeIDs = append(r.FailedNodeIDs, id)
			}
			continue
		}
		n := NodeReport{
			NodeID:     id,
			Variant:    c.Variant.String(),
			Releasable: p.Releasable,
			NumRecords: p.NumRecords,
			DataType:   p.DataType.String(),
			Omitted:    c.Omit,
		}
		if u, ok := usages[id]; ok {
			n.Epsilon = u.Epsilon
			n.Delta = u.Delta
		}
		r.Nodes = append(r.Nodes, n)
	}
	return r
}
