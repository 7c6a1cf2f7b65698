package rbac

import "context"

// roleCtxKey is the context key for the caller's role.
type roleCtxKey struct{}

// SetRoleToContext stores the caller's role in the context. The identity
// layer calls this once per request; the core never mutates it afterwards.
func SetRoleToContext(ctx context.Context, role Role) context.Context {
	return context.WithValue(ctx, roleCtxKey{}, role)
}

// RoleFromContext retrieves the caller's role from the context. The second
// return value is false when no role was attached, i.e. the caller is
// unauthenticated.
func RoleFromContext(ctx context.Context) (Role, bool) {
	role, ok := ctx.Value(roleCtxKey{}).(Role)
	if !ok || role == RoleAbsent {
		return RoleAbsent, false
	}
	return role, true
}
