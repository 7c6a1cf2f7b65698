package guard

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gestionix/accesskit/pkg/rbac"
)

// Operation identifies a protected server operation, e.g. "clientes.delete".
type Operation string

// Route is a registry entry: where an operation lives and the policy that
// guards it. Registration is static configuration consumed once, replacing
// the scattered per-handler role checks of a decorator-driven design.
type Route struct {
	Method  string
	Pattern string
	Policy  Policy

	// Public marks an operation as deliberately unguarded. Without it, a
	// route whose policy protects nothing is rejected as a configuration
	// fault rather than silently admitting everyone.
	Public bool
}

// Registry maps operation identifiers to their routes and guard policies.
// Populate it at startup, then Mount the handlers; it is not safe for
// concurrent mutation.
type Registry struct {
	eval  *rbac.Evaluator
	ops   map[Operation]Route
	order []Operation
}

// NewRegistry creates an empty registry over the evaluator.
func NewRegistry(eval *rbac.Evaluator) (*Registry, error) {
	if eval == nil {
		return nil, ErrEvaluatorRequired
	}
	return &Registry{
		eval: eval,
		ops:  make(map[Operation]Route),
	}, nil
}

// Register adds an operation with its route and policy.
func (reg *Registry) Register(op Operation, route Route) error {
	if route.Method == "" || route.Pattern == "" {
		return fmt.Errorf("%w: %s needs method and pattern", ErrInvalidRoute, op)
	}
	if _, exists := reg.ops[op]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateOperation, op)
	}
	if !route.Public && !route.Policy.protected() {
		return fmt.Errorf("%w: %s has no checks and no role gate", ErrUnprotectedOperation, op)
	}

	reg.ops[op] = route
	reg.order = append(reg.order, op)
	return nil
}

// MustRegister is Register that panics on configuration faults, for static
// route tables built at startup.
func (reg *Registry) MustRegister(op Operation, route Route) {
	if err := reg.Register(op, route); err != nil {
		panic(err)
	}
}

// Handler wraps h with the operation's guard policy.
func (reg *Registry) Handler(op Operation, h http.Handler) (http.Handler, error) {
	route, ok := reg.ops[op]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}
	if route.Public {
		return h, nil
	}
	return Middleware(reg.eval, route.Policy)(h), nil
}

// Mount registers every operation's guarded handler on the router. Handlers
// without a registry entry and registry entries without a handler are both
// configuration faults.
func (reg *Registry) Mount(r chi.Router, handlers map[Operation]http.Handler) error {
	for op := range handlers {
		if _, ok := reg.ops[op]; !ok {
			return fmt.Errorf("%w: handler for %s", ErrUnknownOperation, op)
		}
	}

	for _, op := range reg.order {
		h, ok := handlers[op]
		if !ok {
			return fmt.Errorf("%w: no handler for %s", ErrUnknownOperation, op)
		}

		guarded, err := reg.Handler(op, h)
		if err != nil {
			return err
		}

		route := reg.ops[op]
		r.Method(route.Method, route.Pattern, guarded)
	}

	return nil
}

// Operations enumerates registered operations in registration order, for
// diagnostics and tests.
func (reg *Registry) Operations() []Operation {
	out := make([]Operation, len(reg.order))
	copy(out, reg.order)
	return out
}
