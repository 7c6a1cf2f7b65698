package backoffice

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gestionix/accesskit/pkg/audit"
	"github.com/gestionix/accesskit/pkg/clientip"
	"github.com/gestionix/accesskit/pkg/guard"
	"github.com/gestionix/accesskit/pkg/rbac"
	"github.com/gestionix/accesskit/pkg/throttle"
)

// RouterOptions wires the access-control core into the application's routes.
// Handlers are the app's CRUD glue and come from outside this module; the
// identity middleware comes from the session layer and is the only thing
// allowed to put a role into the request context.
type RouterOptions struct {
	// Evaluator decides permission checks against the app catalog.
	Evaluator *rbac.Evaluator

	// Throttle bounds login and password-reset attempts.
	Throttle *throttle.Throttle

	// Authenticate resolves the session and stores the caller's role in
	// the request context. Requests without a session pass through with no
	// role, i.e. unauthenticated.
	Authenticate func(http.Handler) http.Handler

	// Handlers maps each registered operation to its handler.
	Handlers map[guard.Operation]http.Handler

	// Login and PasswordReset are the credential endpoints. The throttle
	// admits or rejects before they run.
	Login         http.Handler
	PasswordReset http.Handler

	// Audit records denied and throttled outcomes. Optional.
	Audit *audit.Logger
}

// Router assembles the guarded backoffice router:
//
//	clientip -> authenticate -> [throttle] /auth/*
//	                         -> [guard]    protected operations
//
// The throttle runs in front of the guard for authentication endpoints and
// applies to anonymous callers; the guard enforces the permission matrix on
// everything else. Both record their negative outcomes to the audit log.
func Router(opts RouterOptions) (chi.Router, error) {
	if opts.Evaluator == nil {
		return nil, guard.ErrEvaluatorRequired
	}
	if opts.Throttle == nil && (opts.Login != nil || opts.PasswordReset != nil) {
		return nil, errors.New("backoffice: throttle is required for auth endpoints")
	}

	auditor := opts.Audit
	if auditor == nil {
		auditor = audit.NewLogger(nil)
	}

	onDenied := func(op guard.Operation) func(*http.Request, rbac.Role) {
		return func(r *http.Request, role rbac.Role) {
			auditor.Record(r.Context(), audit.Event{
				Outcome:   audit.OutcomeDenied,
				Operation: string(op),
				Role:      string(role),
				Identity:  clientip.GetIPFromContext(r.Context()),
			})
		}
	}

	reg, err := newRegistry(opts.Evaluator, onDenied)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(clientip.Middleware)
	if opts.Authenticate != nil {
		r.Use(opts.Authenticate)
	}

	identityKey := func(req *http.Request) string {
		return clientip.GetIPFromContext(req.Context())
	}

	onThrottled := func(class throttle.OperationClass) throttle.MiddlewareOption {
		return throttle.WithOnThrottled(func(w http.ResponseWriter, req *http.Request, result *throttle.Result) {
			role, _ := rbac.RoleFromContext(req.Context())
			auditor.Record(req.Context(), audit.Event{
				Outcome:   audit.OutcomeThrottled,
				Operation: string(class),
				Role:      string(role),
				Identity:  clientip.GetIPFromContext(req.Context()),
			})
			throttle.DefaultThrottledResponder(w, req, result)
		})
	}

	r.Route("/auth", func(auth chi.Router) {
		if opts.Login != nil {
			auth.With(throttle.Middleware(opts.Throttle, throttle.ClassLogin, identityKey, onThrottled(throttle.ClassLogin))).
				Method(http.MethodPost, "/login", opts.Login)
		}
		if opts.PasswordReset != nil {
			auth.With(throttle.Middleware(opts.Throttle, throttle.ClassPasswordReset, identityKey, onThrottled(throttle.ClassPasswordReset))).
				Method(http.MethodPost, "/password-reset", opts.PasswordReset)
		}
	})

	if err := reg.Mount(r, opts.Handlers); err != nil {
		return nil, err
	}

	return r, nil
}
