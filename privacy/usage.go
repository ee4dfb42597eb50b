package privacy

import "fmt"

// Usage is the epsilon/delta a single release, or a composition of
// many, has consumed. Delta is 0 for pure-epsilon mechanisms
// (Laplace, SimpleGeometric, Snapping, Exponential) and positive for
// approximate-DP mechanisms (Gaussian, AnalyticGaussian).
type Usage struct {
	Epsilon float64
	Delta   float64
}

// Validate rejects a non-positive epsilon or a delta outside [0, 1).
func (u Usage) Validate() error {
	if u.Epsilon <= 0 {
		return fmt.Errorf("%w: epsilon %v must be positive", ErrInvalidUsage, u.Epsilon)
	}
	if u.Delta < 0 || u.Delta >= 1 {
		return fmt.Errorf("%w: delta %v must be in [0, 1)", ErrInvalidUsage, u.Delta)
	}
	return nil
}

// Check validates u against def's budget, if one is configured.
func Check(def PrivacyDefinition, u Usage) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if !def.HasBudget() {
		return nil
	}
	if u.Epsilon > def.BudgetEpsilon || (def.BudgetDelta > 0 && u.Delta > def.BudgetDelta) {
		return fmt.Errorf("%w: used (%v, %v) against budget (%v, %v)",
			ErrBudgetExceeded, u.Epsilon, u.Delta, def.BudgetEpsilon, def.BudgetDelta)
	}
	return nil
}
