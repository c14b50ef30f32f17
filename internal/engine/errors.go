package engine

import "errors"

// Sentinel errors returned by the engine. Callers match them with errors.Is;
// wrapped messages carry the specifics. Aggregate operations that hit
// ErrUnknownFood or ErrPlanInfeasible still return their partial result
// alongside the error.
var (
	// ErrInvalidInput marks out-of-range biometric or profile values,
	// rejected before any calculation runs.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownFood marks a food id not present in the catalog. The
	// offending entry is skipped; aggregation continues.
	ErrUnknownFood = errors.New("unknown food")

	// ErrPlanInfeasible marks a meal slot with zero eligible foods after
	// exclusions. The remaining slots are still filled and returned.
	ErrPlanInfeasible = errors.New("plan infeasible")

	// ErrInsufficientInput marks a comparison with fewer than two valid
	// food ids.
	ErrInsufficientInput = errors.New("insufficient input")
)
