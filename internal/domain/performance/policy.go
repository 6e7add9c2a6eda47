package performance

import "github.com/patpaw111/web-absn/internal/pkg/validator"

// PolicyVariant names a scoring algorithm. The two variants existed side by
// side historically and disagreed on weighting and on the lateness grace
// window, so the choice is an explicit per-request parameter.
type PolicyVariant string

const (
	// VariantPointDeduction starts every employee at 100 and subtracts flat
	// penalties per late and absent day. Canonical variant.
	VariantPointDeduction PolicyVariant = "point_deduction"

	// VariantSAW scores by Simple Additive Weighting: per-criterion counts are
	// normalized against the period maximum and combined with fixed weights.
	VariantSAW PolicyVariant = "saw"
)

var PolicyVariantValues = []string{
	string(VariantPointDeduction),
	string(VariantSAW),
}

// Policy configures classification and scoring for one computation.
type Policy struct {
	Variant PolicyVariant

	// GraceMinutes, when > 0, collapses lateness beyond the window into
	// absence for both counting and scoring.
	GraceMinutes int

	// Point-deduction penalties.
	LatePenalty   float64
	AbsentPenalty float64

	// SAW weights.
	PresentWeight float64
	LateWeight    float64
	AbsentWeight  float64
}

// DefaultPolicy is the point-deduction variant with no grace window.
func DefaultPolicy() Policy {
	return Policy{
		Variant:       VariantPointDeduction,
		LatePenalty:   5,
		AbsentPenalty: 10,
	}
}

// SAWPolicy applies the 30-minute grace window and the historical SAW weights.
func SAWPolicy() Policy {
	return Policy{
		Variant:       VariantSAW,
		GraceMinutes:  30,
		PresentWeight: 0.5,
		LateWeight:    0.3,
		AbsentWeight:  0.2,
	}
}

// PolicyByName resolves a request parameter to a policy.
func PolicyByName(name string) (Policy, error) {
	switch PolicyVariant(name) {
	case VariantPointDeduction, "":
		return DefaultPolicy(), nil
	case VariantSAW:
		return SAWPolicy(), nil
	}
	return Policy{}, validator.ValidationErrors{{
		Field:   "policy",
		Message: "policy must be point_deduction or saw",
	}}
}
