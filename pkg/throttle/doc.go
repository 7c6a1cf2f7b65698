// Package throttle bounds the rate of sensitive operations — login and
// password-reset attempts — per caller identity, independent of authorization.
// It runs in front of permission checks and applies to anonymous callers.
//
// The policy is a fixed window: by default 5 admitted attempts per 60-second
// window per (identity, operation class). Attempts past the limit return a
// Throttled verdict and do not extend the window, so a hammering attacker
// cannot postpone recovery for legitimate callers.
//
// The counter lives behind the Store interface, an atomic
// increment-with-expiry contract with in-memory and Redis implementations.
// Store calls carry a bounded timeout; when the store is unreachable the
// verdict is resolved by the operation class's FailMode, and authentication
// classes fail closed — denying is the only way to preserve the
// anti-brute-force guarantee when the counter cannot be trusted.
//
//	store := throttle.NewMemoryStore()
//	t, err := throttle.New(store,
//	    throttle.WithPolicy(throttle.ClassLogin, throttle.Policy{
//	        Limit:  5,
//	        Window: time.Minute,
//	    }),
//	)
//
//	result, err := t.Admit(ctx, clientIP, throttle.ClassLogin)
//	if !result.Allowed() {
//	    // reject with "try again later"; the protected operation must not run
//	}
package throttle
