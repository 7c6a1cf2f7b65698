package guard

import (
	"net/http"

	"github.com/gestionix/accesskit/pkg/rbac"
)

// Policy is the denial configuration for a protected server operation,
// attached once at registration time.
type Policy struct {
	// Checks the caller's role must satisfy.
	Checks []rbac.Check

	// Composition selects ALL (default) or ANY satisfaction.
	Composition Composition

	// RequiredRole gates the operation on a single role with no catalog
	// lookup, instead of (or in addition to) Checks. Both mechanisms may
	// apply; the caller must satisfy every configured one.
	RequiredRole rbac.Role

	// Fallback handles denied requests when set. Takes precedence over
	// RedirectTo.
	Fallback http.Handler

	// RedirectTo is the location denied requests are redirected to.
	RedirectTo string

	// OnDenied is an observation hook invoked for every denied request,
	// before the denial response is written. It must not write to the
	// response itself.
	OnDenied func(r *http.Request, role rbac.Role)
}

// permits evaluates the policy for a role. An operation configured with both
// a role gate and checks requires both to agree.
func (p Policy) permits(eval *rbac.Evaluator, role rbac.Role) bool {
	if p.RequiredRole != rbac.RoleAbsent {
		if role == rbac.RoleAbsent || role != p.RequiredRole {
			return false
		}
	}
	if len(p.Checks) > 0 {
		if p.Composition == RequireAny {
			return eval.CheckAny(role, p.Checks)
		}
		return eval.CheckAll(role, p.Checks)
	}
	return true
}

// protected reports whether the policy actually gates anything.
func (p Policy) protected() bool {
	return len(p.Checks) > 0 || p.RequiredRole != rbac.RoleAbsent
}

// deny writes the denial response: fallback content if configured, otherwise
// a redirect if configured, otherwise an empty 403. Exactly one fires.
func (p Policy) deny(w http.ResponseWriter, r *http.Request, role rbac.Role) {
	if p.OnDenied != nil {
		p.OnDenied(r, role)
	}

	switch {
	case p.Fallback != nil:
		p.Fallback.ServeHTTP(w, r)
	case p.RedirectTo != "":
		http.Redirect(w, r, p.RedirectTo, http.StatusSeeOther)
	default:
		w.WriteHeader(http.StatusForbidden)
	}
}

// Middleware enforces a policy on the server boundary. Unlike the stateful
// Guard, it is stateless: every request is its own verdict snapshot, taken
// from the role the identity layer put in the request context. This is the
// actual security boundary — UI-side guards are advisory only and are never
// trusted here.
func Middleware(eval *rbac.Evaluator, policy Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := rbac.RoleFromContext(r.Context())
			if !policy.permits(eval, role) {
				policy.deny(w, r, role)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is shorthand for the admin-only middleware used by surfaces
// gated directly on the ADMIN role rather than the permission matrix.
func RequireAdmin(opts ...func(*Policy)) func(http.Handler) http.Handler {
	policy := Policy{RequiredRole: rbac.RoleAdmin}
	for _, opt := range opts {
		opt(&policy)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := rbac.RoleFromContext(r.Context())
			if role != rbac.RoleAdmin {
				policy.deny(w, r, role)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
