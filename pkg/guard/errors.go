package guard

import "errors"

// Configuration faults caught at registration time. A guard that silently
// protects nothing is a defect, not a runtime condition.
var (
	// ErrEvaluatorRequired is returned when a guard is built without an evaluator.
	ErrEvaluatorRequired = errors.New("guard.evaluator_required")

	// ErrUnprotectedOperation is returned when an operation is registered
	// with no checks and no role gate but was not declared public. An empty
	// check list on an ALL-composition gate admits everyone.
	ErrUnprotectedOperation = errors.New("guard.unprotected_operation")

	// ErrDuplicateOperation is returned when an operation identifier is
	// registered twice.
	ErrDuplicateOperation = errors.New("guard.duplicate_operation")

	// ErrUnknownOperation is returned when mounting a handler for an
	// operation that was never registered.
	ErrUnknownOperation = errors.New("guard.unknown_operation")

	// ErrInvalidRoute is returned when a registered operation omits its
	// HTTP method or pattern.
	ErrInvalidRoute = errors.New("guard.invalid_route")
)
