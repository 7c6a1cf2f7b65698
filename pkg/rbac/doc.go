// Package rbac provides the permission matrix and evaluator at the heart of
// the application's access control.
//
// The model is deliberately closed-world: a Catalog maps (resource, action)
// pairs to the roles allowed to perform them, and any pair without a rule is
// denied to everyone. Evaluation returns booleans, never errors — a missing
// rule, an unknown role, or an unauthenticated caller are all legitimate
// "denied" outcomes, not failures.
//
// Basic usage:
//
//	catalog, err := rbac.NewCatalog([]rbac.Rule{
//	    {Resource: rbac.ResourceClients, Action: rbac.ActionRead,
//	        Roles: []rbac.Role{rbac.RoleAdmin, rbac.RoleUser, rbac.RoleTecnico}},
//	    {Resource: rbac.ResourceClients, Action: rbac.ActionDelete,
//	        Roles: []rbac.Role{rbac.RoleAdmin}},
//	})
//	if err != nil {
//	    // configuration defect: duplicate or malformed rule
//	}
//
//	eval := rbac.NewEvaluator(catalog)
//	eval.Check(rbac.RoleUser, rbac.ResourceClients, rbac.ActionDelete) // false
//	eval.Check(rbac.RoleAdmin, rbac.ResourceClients, rbac.ActionDelete) // true
//
// Multiple checks compose with CheckAll (conjunction, vacuously true when
// empty) and CheckAny (disjunction, vacuously false when empty). The same
// catalog data can be loaded from a YAML file shared with the frontend so the
// UI hides exactly what the server rejects.
package rbac
