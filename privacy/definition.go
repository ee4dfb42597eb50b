package privacy

import "github.com/arborcroft/dpgraph/sensitivity"

// PrivacyDefinition is the contract an analysis is validated and
// accounted against: which neighboring relation sensitivities are
// derived under, the overall epsilon/delta budget, and whether
// strict parameter checking rejects mechanisms that merely look
// under-calibrated (rather than only ones that are definitely wrong).
type PrivacyDefinition struct {
	Neighboring             sensitivity.Neighboring
	BudgetEpsilon           float64
	BudgetDelta             float64
	StrictParameterChecking bool

	// GroupSize is the number of rows one individual may contribute; 1
	// by default. It is carried on the definition only: propagation
	// takes each source node's GroupSize from the Properties passed to
	// it, and accounting takes it from each mechanism node's Property,
	// so neither reads this field.
	GroupSize int
}

// DefaultDefinition returns the conservative default: substitution
// neighboring, strict checking on, group size 1, and no budget
// (BudgetEpsilon/BudgetDelta left at zero, meaning unconstrained —
// callers wanting an enforced budget must set them explicitly).
func DefaultDefinition() PrivacyDefinition {
	return PrivacyDefinition{
		Neighboring:             sensitivity.Substitute,
		StrictParameterChecking: true,
		GroupSize:               1,
	}
}

// HasBudget reports whether d carries an enforceable epsilon budget.
func (d PrivacyDefinition) HasBudget() bool {
	return d.BudgetEpsilon > 0
}
