package cassowary

// Strength is the priority of a constraint. Required must always hold exactly
// (or the add is rejected); lower strengths are satisfied on a best-effort,
// weighted basis: violating a constraint costs its strength in the minimized
// objective, so a Strong preference dominates any number of Weak ones.
type Strength float64

const (
	// Required marks a constraint that must hold exactly.
	Required Strength = 1_001_001_000
	// Strong is the highest non-required priority (also used by SuggestValue).
	Strong Strength = 1_000_000
	// Medium sits between Strong and Weak.
	Medium Strength = 1_000
	// Weak is the lowest priority; it only breaks ties within the feasible region.
	Weak Strength = 1
)

// NewStrength builds a custom strength, clamped to at most Required.
func NewStrength(value float64) Strength {
	if value > float64(Required) {
		return Required
	}

	return Strength(value)
}

// IsRequired reports whether the strength is at or above the Required threshold.
func (s Strength) IsRequired() bool { return s >= Required }
