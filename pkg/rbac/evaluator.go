package rbac

import "context"

// Evaluator decides whether a role satisfies permission checks against a
// catalog. It is pure and lock-free: verdicts are booleans, never errors, and
// concurrent use requires no coordination.
type Evaluator struct {
	catalog *Catalog
}

// NewEvaluator creates an evaluator over the given catalog.
func NewEvaluator(catalog *Catalog) *Evaluator {
	return &Evaluator{catalog: catalog}
}

// Catalog returns the catalog the evaluator consults.
func (e *Evaluator) Catalog() *Catalog {
	return e.catalog
}

// Check reports whether role may perform action on resource. An absent role
// never passes; a pair without a catalog rule denies every role.
func (e *Evaluator) Check(role Role, resource Resource, action Action) bool {
	if role == RoleAbsent {
		return false
	}
	return e.catalog.Allows(role, resource, action)
}

// CheckAll reports whether role passes every check. An empty check list is
// vacuously true; callers must not declare an empty list for an operation
// that needs protection (the guard registry rejects that at registration).
func (e *Evaluator) CheckAll(role Role, checks []Check) bool {
	for _, c := range checks {
		if !e.Check(role, c.Resource, c.Action) {
			return false
		}
	}
	return true
}

// CheckAny reports whether role passes at least one check. An empty check
// list is vacuously false.
func (e *Evaluator) CheckAny(role Role, checks []Check) bool {
	for _, c := range checks {
		if e.Check(role, c.Resource, c.Action) {
			return true
		}
	}
	return false
}

// CheckFromContext evaluates Check using the role stored in ctx. A missing
// role evaluates as RoleAbsent.
func (e *Evaluator) CheckFromContext(ctx context.Context, resource Resource, action Action) bool {
	role, _ := RoleFromContext(ctx)
	return e.Check(role, resource, action)
}

// CheckAllFromContext evaluates CheckAll using the role stored in ctx.
func (e *Evaluator) CheckAllFromContext(ctx context.Context, checks []Check) bool {
	role, _ := RoleFromContext(ctx)
	return e.CheckAll(role, checks)
}

// CheckAnyFromContext evaluates CheckAny using the role stored in ctx.
func (e *Evaluator) CheckAnyFromContext(ctx context.Context, checks []Check) bool {
	role, _ := RoleFromContext(ctx)
	return e.CheckAny(role, checks)
}
