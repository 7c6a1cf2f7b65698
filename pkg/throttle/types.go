package throttle

import "time"

// OperationClass names a class of sensitive operations throttled together.
// Each (identity, class) pair gets its own counter window.
type OperationClass string

// Operation classes protected by the application.
const (
	ClassLogin         OperationClass = "login"
	ClassPasswordReset OperationClass = "password-reset"
)

// FailMode selects what Admit does when the counter store is unreachable.
type FailMode int

const (
	// FailClosed denies the attempt on store failure. This is the default
	// and the only acceptable mode for authentication-class operations:
	// an attacker must not be able to bypass the limit by degrading the
	// counter store.
	FailClosed FailMode = iota

	// FailOpen admits the attempt on store failure. Opt-in, for operation
	// classes where availability matters more than the admission bound.
	FailOpen
)

// Policy is the throttle configuration for one operation class.
type Policy struct {
	// Limit is the number of attempts admitted per window. Must be >= 1.
	Limit int

	// Window is the fixed window length. Must be >= 1ms. Rejected attempts
	// never extend an active window, so recovery time is bounded.
	Window time.Duration

	// FailMode governs behavior on counter store failure.
	FailMode FailMode
}

// Status is the admission verdict. Throttled is distinct from a permission
// denial so callers can answer "try again later" rather than "not permitted".
type Status int

const (
	StatusAllowed Status = iota
	StatusThrottled
)

func (s Status) String() string {
	if s == StatusAllowed {
		return "allowed"
	}
	return "throttled"
}

// Result describes the outcome of one admission attempt.
type Result struct {
	Status    Status
	Limit     int       // Attempts admitted per window.
	Remaining int       // Attempts left in the current window.
	ResetAt   time.Time // When the current window elapses.
}

// Allowed reports whether the attempt was admitted.
func (r *Result) Allowed() bool {
	return r.Status == StatusAllowed
}

// RetryAfter returns how long to wait until the window resets.
// Returns 0 for admitted attempts.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return time.Until(r.ResetAt)
}
