package rbac

import "errors"

// Configuration faults detected while building a catalog. Evaluation itself
// never returns errors: an unknown (resource, action) pair is a legitimate
// deny, not a failure.
var (
	// ErrDuplicateRule is returned when two rules target the same
	// (resource, action) pair.
	ErrDuplicateRule = errors.New("rbac.duplicate_rule")

	// ErrEmptyResource is returned when a rule omits its resource.
	ErrEmptyResource = errors.New("rbac.empty_resource")

	// ErrEmptyAction is returned when a rule omits its action.
	ErrEmptyAction = errors.New("rbac.empty_action")

	// ErrInvalidCatalogFile is returned when a catalog file cannot be parsed.
	ErrInvalidCatalogFile = errors.New("rbac.invalid_catalog_file")
)
