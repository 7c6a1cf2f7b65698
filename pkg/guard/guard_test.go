package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestionix/accesskit/pkg/guard"
	"github.com/gestionix/accesskit/pkg/rbac"
)

func newTestEvaluator(t *testing.T) *rbac.Evaluator {
	t.Helper()

	catalog, err := rbac.NewCatalog([]rbac.Rule{
		{Resource: rbac.ResourceClients, Action: rbac.ActionRead,
			Roles: []rbac.Role{rbac.RoleAdmin, rbac.RoleUser, rbac.RoleTecnico}},
		{Resource: rbac.ResourceClients, Action: rbac.ActionUpdate,
			Roles: []rbac.Role{rbac.RoleAdmin, rbac.RoleUser}},
		{Resource: rbac.ResourceClients, Action: rbac.ActionDelete,
			Roles: []rbac.Role{rbac.RoleAdmin}},
		{Resource: rbac.ResourceUsers, Action: rbac.ActionRead,
			Roles: []rbac.Role{rbac.RoleAdmin}},
	})
	require.NoError(t, err)

	return rbac.NewEvaluator(catalog)
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil evaluator rejected", func(t *testing.T) {
		t.Parallel()

		_, err := guard.New(nil, nil, guard.RequireAll)
		assert.ErrorIs(t, err, guard.ErrEvaluatorRequired)
	})
}

func TestGuard_Evaluate(t *testing.T) {
	t.Parallel()

	eval := newTestEvaluator(t)

	readAndUpdate := []rbac.Check{
		rbac.NewCheck(rbac.ResourceClients, rbac.ActionRead),
		rbac.NewCheck(rbac.ResourceClients, rbac.ActionUpdate),
	}

	t.Run("require all", func(t *testing.T) {
		t.Parallel()

		g, err := guard.New(eval, readAndUpdate, guard.RequireAll)
		require.NoError(t, err)

		assert.True(t, g.Evaluate(rbac.RoleUser).Allowed)
		// TECNICO holds read but not update.
		assert.False(t, g.Evaluate(rbac.RoleTecnico).Allowed)
		assert.False(t, g.Evaluate(rbac.RoleAbsent).Allowed)
	})

	t.Run("require any", func(t *testing.T) {
		t.Parallel()

		g, err := guard.New(eval, readAndUpdate, guard.RequireAny)
		require.NoError(t, err)

		assert.True(t, g.Evaluate(rbac.RoleTecnico).Allowed)
		assert.False(t, g.Evaluate(rbac.RoleAbsent).Allowed)
	})

	t.Run("verdict follows role changes", func(t *testing.T) {
		t.Parallel()

		g, err := guard.New(eval, readAndUpdate, guard.RequireAll)
		require.NoError(t, err)

		assert.True(t, g.Evaluate(rbac.RoleAdmin).Allowed)
		assert.False(t, g.Evaluate(rbac.RoleTecnico).Allowed)
		assert.True(t, g.Evaluate(rbac.RoleAdmin).Allowed, "no caching beyond the snapshot")
	})
}

func TestGuard_DenialPolicies(t *testing.T) {
	t.Parallel()

	eval := newTestEvaluator(t)
	deleteClients := []rbac.Check{rbac.NewCheck(rbac.ResourceClients, rbac.ActionDelete)}

	t.Run("nothing rendered by default", func(t *testing.T) {
		t.Parallel()

		g, err := guard.New(eval, deleteClients, guard.RequireAll)
		require.NoError(t, err)

		d := g.Evaluate(rbac.RoleUser)
		assert.False(t, d.Allowed)
		assert.False(t, d.Fallback)
		assert.Empty(t, d.RedirectTo)
	})

	t.Run("fallback wins over redirect", func(t *testing.T) {
		t.Parallel()

		g, err := guard.New(eval, deleteClients, guard.RequireAll,
			guard.WithFallback(), guard.WithRedirect("/dashboard"))
		require.NoError(t, err)

		d := g.Evaluate(rbac.RoleUser)
		assert.False(t, d.Allowed)
		assert.True(t, d.Fallback)
		assert.Empty(t, d.RedirectTo, "exactly one denial behavior fires")
	})

	t.Run("redirect fires once per transition", func(t *testing.T) {
		t.Parallel()

		g, err := guard.New(eval, deleteClients, guard.RequireAll,
			guard.WithRedirect("/dashboard"))
		require.NoError(t, err)

		require.True(t, g.Evaluate(rbac.RoleAdmin).Allowed)

		// Session refresh downgraded the role: one redirect.
		first := g.Evaluate(rbac.RoleUser)
		assert.Equal(t, "/dashboard", first.RedirectTo)

		// Re-renders with the same denied verdict must not re-redirect.
		for range 3 {
			again := g.Evaluate(rbac.RoleUser)
			assert.False(t, again.Allowed)
			assert.Empty(t, again.RedirectTo)
		}

		// Allowed again, then denied again: a new transition, a new redirect.
		require.True(t, g.Evaluate(rbac.RoleAdmin).Allowed)
		assert.Equal(t, "/dashboard", g.Evaluate(rbac.RoleUser).RedirectTo)
	})

	t.Run("first evaluation denied still redirects", func(t *testing.T) {
		t.Parallel()

		g, err := guard.New(eval, deleteClients, guard.RequireAll,
			guard.WithRedirect("/dashboard"))
		require.NoError(t, err)

		d := g.Evaluate(rbac.RoleTecnico)
		assert.Equal(t, "/dashboard", d.RedirectTo)
		assert.Empty(t, g.Evaluate(rbac.RoleTecnico).RedirectTo)
	})
}

func TestRoleGuard(t *testing.T) {
	t.Parallel()

	g := guard.NewRoleGuard(rbac.RoleAdmin)

	tests := []struct {
		role rbac.Role
		want bool
	}{
		{rbac.RoleAdmin, true},
		{rbac.RoleUser, false},
		{rbac.RoleTecnico, false},
		{rbac.RoleAbsent, false},
		{rbac.Role("SUPERADMIN"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, g.Evaluate(tt.role).Allowed, "role %q", tt.role)
	}
}

// The admin gate and the matrix must agree when both apply: a rule granting
// a pair only to ADMIN yields the same verdicts as the role gate.
func TestRoleGuard_AgreesWithCatalog(t *testing.T) {
	t.Parallel()

	eval := newTestEvaluator(t)
	adminOnly := []rbac.Check{rbac.NewCheck(rbac.ResourceUsers, rbac.ActionRead)}

	matrix, err := guard.New(eval, adminOnly, guard.RequireAll)
	require.NoError(t, err)
	roleGate := guard.NewRoleGuard(rbac.RoleAdmin)

	for _, role := range []rbac.Role{rbac.RoleAdmin, rbac.RoleUser, rbac.RoleTecnico, rbac.RoleAbsent} {
		assert.Equal(t, roleGate.Evaluate(role).Allowed, matrix.Evaluate(role).Allowed, "role %q", role)
	}
}
