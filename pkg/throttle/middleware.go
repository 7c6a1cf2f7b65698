package throttle

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gestionix/accesskit/pkg/logger"
)

// middlewareConfig carries optional middleware behavior.
type middlewareConfig struct {
	onThrottled func(w http.ResponseWriter, r *http.Request, result *Result)
	skipFunc    func(r *http.Request) bool
	logger      *slog.Logger
}

// MiddlewareOption configures the throttle middleware.
type MiddlewareOption func(*middlewareConfig)

// WithOnThrottled sets a custom responder for throttled attempts.
func WithOnThrottled(fn func(w http.ResponseWriter, r *http.Request, result *Result)) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.onThrottled = fn
	}
}

// WithSkipFunc sets a predicate that bypasses throttling for a request.
func WithSkipFunc(fn func(r *http.Request) bool) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.skipFunc = fn
	}
}

// WithLogger sets the logger used for counter store failures.
func WithLogger(logger *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Middleware wraps authentication-class endpoints with the admission
// throttle. The verdict is a pre-condition: a throttled request never reaches
// the protected handler, and on counter store failure the class's FailMode
// decides — authentication classes fail closed rather than silently admitting.
//
// A request with no extractable identity key is denied outright: admitting it
// would exempt callers who strip identifying information.
func Middleware(t *Throttle, class OperationClass, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	if keyFunc == nil {
		panic("throttle.Middleware: keyFunc is required")
	}

	cfg := &middlewareConfig{
		onThrottled: DefaultThrottledResponder,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.skipFunc != nil && cfg.skipFunc(r) {
				next.ServeHTTP(w, r)
				return
			}

			key := keyFunc(r)
			if key == "" {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			result, err := t.Admit(r.Context(), key, class)
			if err != nil {
				cfg.logger.LogAttrs(r.Context(), slog.LevelError, "throttle counter store failure",
					slog.String("operation_class", string(class)),
					logger.Error(err))
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed() {
				cfg.onThrottled(w, r, result)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// DefaultThrottledResponder writes the standard 429 response with a
// Retry-After hint. Custom responders can delegate to it after observing the
// rejection.
func DefaultThrottledResponder(w http.ResponseWriter, r *http.Request, result *Result) {
	retryAfter := int(result.RetryAfter().Seconds())
	if retryAfter < 1 {
		retryAfter = 1
	}
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
}
