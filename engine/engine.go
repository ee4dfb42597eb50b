package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/arborcroft/dpgraph/graphmodel"
	"github.com/arborcroft/dpgraph/privacy"
	"github.com/arborcroft/dpgraph/propagate"
	"github.com/arborcroft/dpgraph/report"
)

// Engine drives one or more analyses against the same
// privacy.PrivacyDefinition, logging and (if configured) instrumenting
// every operation it performs.
type Engine struct {
	Definition privacy.PrivacyDefinition
	Logger     zerolog.Logger
	Metrics    *Metrics // nil disables instrumentation

	// FailureMode controls ValidateAnalysis's behavior on a single
	// node's propagation failure; defaults to propagate.FailStatic.
	FailureMode propagate.FailureMode
}

// New builds an Engine. metrics may be nil to run uninstrumented.
func New(def privacy.PrivacyDefinition, logger zerolog.Logger, metrics *Metrics) *Engine {
	return &Engine{Definition: def, Logger: logger, Metrics: metrics}
}

// Analysis bundles a graph together with the fixpoint result of its
// most recent successful ValidateAnalysis call, so the remaining six
// operations can be called without re-running propagation.
type Analysis struct {
	ID     string
	Graph  *graphmodel.Graph
	Result *propagate.Result
}

// ValidateAnalysis runs the property-propagation fixpoint over g,
// starting from known, and returns an Analysis handle for the
// remaining operations. Each call is tagged with a fresh uuid so log
// lines from concurrent analyses can be told apart; metrics carry no
// analysis id.
func (e *Engine) ValidateAnalysis(ctx context.Context, g *graphmodel.Graph, known map[uint32]*graphmodel.Property) (*Analysis, error) {
	id := uuid.NewString()
	log := e.Logger.With().Str("analysis_id", id).Logger()
	log.Info().Int("nodes", g.Len()).Msg("validating analysis")

	res, err := propagate.Propagate(ctx, g, known, e.FailureMode)
	if err != nil {
		log.Error().Err(err).Msg("analysis validation failed")
		e.observeOutcome("error")
		return nil, fmt.Errorf("engine: validating analysis: %w", err)
	}
	for range res.Warnings {
		e.observePropagationError("warning")
	}
	if e.Metrics != nil {
		e.Metrics.nodesPropagated.Add(float64(len(res.Properties)))
	}
	log.Info().Int("properties", len(res.Properties)).Int("warnings", len(res.Warnings)).Msg("analysis validated")
	e.observeOutcome("ok")

	return &Analysis{ID: id, Graph: g, Result: res}, nil
}

func (e *Engine) observeOutcome(outcome string) {
	if e.Metrics != nil {
		e.Metrics.analysesTotal.WithLabelValues(outcome).Inc()
	}
}

func (e *Engine) observePropagationError(variant string) {
	if e.Metrics != nil {
		e.Metrics.propagationErrors.WithLabelValues(variant).Inc()
	}
}

// GetProperties returns the Property computed for every successfully
// propagated node in a.
func (e *Engine) GetProperties(a *Analysis) (map[uint32]*graphmodel.Property, error) {
	if a == nil || a.Result == nil {
		return nil, ErrNoAnalysis
	}
	return a.Result.Properties, nil
}

// ExpandComponent exposes a single on-demand expansion of a DP
// composite node, for callers that want to inspect the subgraph a
// composite would produce without re-running the whole fixpoint.
func (e *Engine) ExpandComponent(g *graphmodel.Graph, nodeID uint32) (*graphmodel.ComponentExpansion, error) {
	c, err := g.Get(nodeID)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	if !c.Variant.IsDpComposite() {
		return nil, fmt.Errorf("engine: node %d (%s) is not a DP composite", nodeID, c.Variant)
	}
	return propagate.ExpandComponent(g, nodeID, c, map[uint32]*graphmodel.Property{})
}

// ComputePrivacyUsage extracts the per-node epsilon/delta cost of
// every mechanism node in a, then composes them into one
// analysis-wide total via privacy.BatchPrivacyUsage.
func (e *Engine) ComputePrivacyUsage(a *Analysis) (map[uint32]privacy.Usage, privacy.Usage, error) {
	if a == nil || a.Result == nil {
		return nil, privacy.Usage{}, ErrNoAnalysis
	}
	usages := make(map[uint32]privacy.Usage)
	groups := make(map[uint32]*graphmodel.GroupID)

	for id, p := range a.Result.Properties {
		if !p.Releasable {
			continue
		}
		c, err := a.Graph.Get(id)
		if err != nil || !c.Variant.IsMechanism() {
			continue
		}
		eff := privacy.Usage{Epsilon: c.Params.Epsilon, Delta: c.Params.Delta}
		actual, err := privacy.EffectiveToActual(eff, 1, 1, p.GroupSize)
		if err != nil {
			return nil, privacy.Usage{}, fmt.Errorf("engine: converting effective usage at node %d: %w", id, err)
		}
		usages[id] = actual
		groups[id] = p.Group
	}

	total, err := privacy.BatchPrivacyUsage(usages, groups)
	if err != nil {
		return nil, privacy.Usage{}, fmt.Errorf("engine: composing privacy usage: %w", err)
	}
	if e.Metrics != nil {
		e.Metrics.epsilonConsumed.Observe(total.Epsilon)
	}
	if err := privacy.Check(e.Definition, total); err != nil {
		e.Logger.Warn().Str("analysis_id", a.ID).Err(err).Msg("analysis exceeds configured budget")
	}
	return usages, total, nil
}

// GenerateReport builds the JSON-serializable report.Report for a,
// given the per-node and total privacy usage ComputePrivacyUsage
// returned.
func (e *Engine) GenerateReport(a *Analysis, usages map[uint32]privacy.Usage, total privacy.Usage) (report.Report, error) {
	if a == nil || a.Result == nil {
		return report.Report{}, ErrNoAnalysis
	}
	return report.Build(a.Graph, a.Result.Properties, usages, total, a.Result.Warnings, a.Result.Failed), nil
}

// AccuracyToPrivacyUsage converts a desired accuracy guarantee into
// the epsilon (and, for Gaussian mechanisms, delta) that achieves it,
// delegating to package privacy's calibration for mechanism.
func (e *Engine) AccuracyToPrivacyUsage(mechanism graphmodel.MechanismKind, sensitivity, alpha, accuracy, delta, bound float64) (privacy.Usage, error) {
	return privacy.AccuracyToPrivacyUsage(mechanism, sensitivity, alpha, accuracy, delta, bound)
}

// PrivacyUsageToAccuracy converts an already-chosen privacy usage into
// the accuracy guarantee it delivers, delegating to package privacy.
func (e *Engine) PrivacyUsageToAccuracy(mechanism graphmodel.MechanismKind, sensitivity, alpha float64, usage privacy.Usage) (float64, error) {
	return privacy.PrivacyUsageToAccuracy(mechanism, sensitivity, alpha, usage)
}

// Release resolves the value of each requested sink node. A node
// whose Property is not Releasable is reported via ErrNotReleasable
// rather than aborting the whole batch, so a caller requesting ten
// sinks can still get the nine that succeeded.
func (e *Engine) Release(a *Analysis, sinkIDs []uint32) ([]graphmodel.ReleaseNode, map[uint32]error) {
	nodes := make([]graphmodel.ReleaseNode, 0, len(sinkIDs))
	failures := make(map[uint32]error)

	for _, id := range sinkIDs {
		p, ok := a.Result.Properties[id]
		if !ok {
			failures[id] = ErrSinkNotFound
			continue
		}
		if !p.Releasable {
			failures[id] = ErrNotReleasable
			continue
		}
		rn := graphmodel.ReleaseNode{NodeID: id, Property: p}
		if c, err := a.Graph.Get(id); err == nil {
			if c.Variant == graphmodel.VariantLiteral {
				rn.Value = c.Literal
			}
			rn.EpsilonConsumed = c.Params.Epsilon
			rn.DeltaConsumed = c.Params.Delta
		}
		nodes = append(nodes, rn)
	}
	return nodes, failures
}
