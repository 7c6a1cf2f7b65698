package guard

import (
	"sync"

	"github.com/gestionix/accesskit/pkg/rbac"
)

// Composition selects how multiple checks combine into one verdict.
type Composition int

const (
	// RequireAll passes only when every check passes. This is the default.
	RequireAll Composition = iota

	// RequireAny passes when at least one check passes.
	RequireAny
)

// Decision is the outcome of one guard evaluation, telling the consumer
// exactly what to present.
//
// When Allowed is false, at most one denial behavior applies: Fallback is
// true when configured fallback content should be rendered; otherwise
// RedirectTo names the redirect target, set only on the evaluation where the
// verdict transitions from allowed to denied so a re-render loop cannot
// re-issue the redirect; otherwise nothing is rendered.
type Decision struct {
	Allowed    bool
	Fallback   bool
	RedirectTo string
}

// Guard wraps a protected unit of UI or server logic with a denial policy.
// Verdicts are recomputed from the current role and check snapshot on every
// Evaluate call and are never cached; only the redirect side effect is
// deduplicated across consecutive denied verdicts.
//
// A Guard instance tracks verdict transitions and is safe for concurrent use,
// but it models a single protected surface for a single caller session — the
// stateless HTTP middleware is the flavor to share across requests.
type Guard struct {
	permits  func(rbac.Role) bool
	fallback bool
	redirect string

	mu          sync.Mutex
	lastAllowed bool
	evaluated   bool
}

// Option configures a Guard.
type Option func(*Guard)

// WithFallback declares that the consumer has fallback content to render on
// denial. Fallback takes precedence over a redirect target.
func WithFallback() Option {
	return func(g *Guard) {
		g.fallback = true
	}
}

// WithRedirect sets the location the guard redirects to on denial.
func WithRedirect(location string) Option {
	return func(g *Guard) {
		g.redirect = location
	}
}

// New builds a guard over the evaluator for the given checks.
func New(eval *rbac.Evaluator, checks []rbac.Check, composition Composition, opts ...Option) (*Guard, error) {
	if eval == nil {
		return nil, ErrEvaluatorRequired
	}

	permits := func(role rbac.Role) bool {
		if composition == RequireAny {
			return eval.CheckAny(role, checks)
		}
		return eval.CheckAll(role, checks)
	}

	return newGuard(permits, opts...), nil
}

// NewRoleGuard builds a guard admitting exactly the given role, with no
// catalog lookup. The admin-only surfaces of the application use
// NewRoleGuard(rbac.RoleAdmin, ...).
func NewRoleGuard(required rbac.Role, opts ...Option) *Guard {
	return newGuard(func(role rbac.Role) bool {
		return role != rbac.RoleAbsent && role == required
	}, opts...)
}

func newGuard(permits func(rbac.Role) bool, opts ...Option) *Guard {
	g := &Guard{permits: permits}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Evaluate computes the verdict for the caller's current role. Roles can
// change between calls (e.g. on session refresh); each call reflects the
// snapshot it was given.
func (g *Guard) Evaluate(role rbac.Role) Decision {
	allowed := g.permits(role)

	g.mu.Lock()
	transitioned := g.evaluated && g.lastAllowed && !allowed
	if !g.evaluated && !allowed {
		// The very first verdict being denied counts as a transition:
		// there is no earlier denied render to have redirected already.
		transitioned = true
	}
	g.evaluated = true
	g.lastAllowed = allowed
	g.mu.Unlock()

	if allowed {
		return Decision{Allowed: true}
	}

	if g.fallback {
		return Decision{Fallback: true}
	}
	if g.redirect != "" && transitioned {
		return Decision{RedirectTo: g.redirect}
	}
	return Decision{}
}
