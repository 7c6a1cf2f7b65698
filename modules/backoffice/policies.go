package backoffice

import (
	"net/http"

	"github.com/gestionix/accesskit/pkg/guard"
	"github.com/gestionix/accesskit/pkg/rbac"
)

// CatalogRules is the application's permission matrix. The same rules are
// exported to the frontend (see rbac.Catalog YAML support) so the UI hides
// exactly what the server rejects. Pairs not listed here are denied to
// everyone.
func CatalogRules() []rbac.Rule {
	all := []rbac.Role{rbac.RoleAdmin, rbac.RoleUser, rbac.RoleTecnico}
	adminOnly := []rbac.Role{rbac.RoleAdmin}
	adminAndUser := []rbac.Role{rbac.RoleAdmin, rbac.RoleUser}

	return []rbac.Rule{
		{Resource: rbac.ResourceClients, Action: rbac.ActionRead, Roles: all},
		{Resource: rbac.ResourceClients, Action: rbac.ActionCreate, Roles: adminAndUser},
		{Resource: rbac.ResourceClients, Action: rbac.ActionUpdate, Roles: adminAndUser},
		{Resource: rbac.ResourceClients, Action: rbac.ActionDelete, Roles: adminOnly},

		{Resource: rbac.ResourceUsers, Action: rbac.ActionRead, Roles: adminOnly},
		{Resource: rbac.ResourceUsers, Action: rbac.ActionCreate, Roles: adminOnly},
		{Resource: rbac.ResourceUsers, Action: rbac.ActionUpdate, Roles: adminOnly},
		{Resource: rbac.ResourceUsers, Action: rbac.ActionDelete, Roles: adminOnly},

		{Resource: rbac.ResourceServiceTypes, Action: rbac.ActionRead, Roles: all},
		{Resource: rbac.ResourceServiceTypes, Action: rbac.ActionCreate, Roles: adminOnly},
		{Resource: rbac.ResourceServiceTypes, Action: rbac.ActionUpdate, Roles: adminOnly},
		{Resource: rbac.ResourceServiceTypes, Action: rbac.ActionDelete, Roles: adminOnly},
	}
}

// DeniedRedirect is where browsers land when they follow a link to a surface
// their role cannot see.
const DeniedRedirect = "/dashboard"

// newRegistry declares every protected operation with its route and policy.
// This table replaces per-handler role checks: it is consumed once at
// startup, and adding an operation without a policy is a registration error.
func newRegistry(eval *rbac.Evaluator, onDenied func(op guard.Operation) func(*http.Request, rbac.Role)) (*guard.Registry, error) {
	reg, err := guard.NewRegistry(eval)
	if err != nil {
		return nil, err
	}

	type entry struct {
		op     guard.Operation
		method string
		path   string
		policy guard.Policy
	}

	check := func(res rbac.Resource, act rbac.Action) []rbac.Check {
		return []rbac.Check{rbac.NewCheck(res, act)}
	}

	entries := []entry{
		{"clientes.read", http.MethodGet, "/clientes", guard.Policy{Checks: check(rbac.ResourceClients, rbac.ActionRead)}},
		{"clientes.create", http.MethodPost, "/clientes", guard.Policy{Checks: check(rbac.ResourceClients, rbac.ActionCreate)}},
		{"clientes.update", http.MethodPut, "/clientes/{id}", guard.Policy{Checks: check(rbac.ResourceClients, rbac.ActionUpdate)}},
		{"clientes.delete", http.MethodDelete, "/clientes/{id}", guard.Policy{Checks: check(rbac.ResourceClients, rbac.ActionDelete)}},

		{"usuarios.read", http.MethodGet, "/usuarios", guard.Policy{Checks: check(rbac.ResourceUsers, rbac.ActionRead)}},
		{"usuarios.create", http.MethodPost, "/usuarios", guard.Policy{Checks: check(rbac.ResourceUsers, rbac.ActionCreate)}},
		{"usuarios.update", http.MethodPut, "/usuarios/{id}", guard.Policy{Checks: check(rbac.ResourceUsers, rbac.ActionUpdate)}},
		{"usuarios.delete", http.MethodDelete, "/usuarios/{id}", guard.Policy{Checks: check(rbac.ResourceUsers, rbac.ActionDelete)}},

		{"tipos-de-servicio.read", http.MethodGet, "/tipos-de-servicio", guard.Policy{Checks: check(rbac.ResourceServiceTypes, rbac.ActionRead)}},
		{"tipos-de-servicio.create", http.MethodPost, "/tipos-de-servicio", guard.Policy{Checks: check(rbac.ResourceServiceTypes, rbac.ActionCreate)}},
		{"tipos-de-servicio.update", http.MethodPut, "/tipos-de-servicio/{id}", guard.Policy{Checks: check(rbac.ResourceServiceTypes, rbac.ActionUpdate)}},
		{"tipos-de-servicio.delete", http.MethodDelete, "/tipos-de-servicio/{id}", guard.Policy{Checks: check(rbac.ResourceServiceTypes, rbac.ActionDelete)}},

		// Admin surfaces are gated on the role directly, no catalog lookup.
		{"admin.dashboard", http.MethodGet, "/admin", guard.Policy{RequiredRole: rbac.RoleAdmin, RedirectTo: DeniedRedirect}},
		{"admin.settings", http.MethodGet, "/admin/settings", guard.Policy{RequiredRole: rbac.RoleAdmin, RedirectTo: DeniedRedirect}},
	}

	for _, e := range entries {
		if onDenied != nil {
			e.policy.OnDenied = onDenied(e.op)
		}
		if err := reg.Register(e.op, guard.Route{Method: e.method, Pattern: e.path, Policy: e.policy}); err != nil {
			return nil, err
		}
	}

	return reg, nil
}
