package throttle

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Throttle bounds the rate of sensitive operations per caller identity,
// independent of role or permission outcome. It runs for anonymous callers
// too; the identity key is typically a client IP or account identifier.
//
// The algorithm is a fixed window: the first attempt for an (identity, class)
// pair opens a window, each attempt increments the counter, and attempts past
// the limit are throttled until the window elapses. Rejections do not extend
// the window, so a continuous attacker cannot starve legitimate callers
// beyond the window length.
type Throttle struct {
	store         Store
	defaultPolicy Policy
	policies      map[OperationClass]Policy
	storeTimeout  time.Duration
}

// DefaultPolicy is applied to operation classes without an explicit policy:
// 5 admitted attempts per 60-second window, failing closed.
var DefaultPolicy = Policy{
	Limit:    5,
	Window:   60 * time.Second,
	FailMode: FailClosed,
}

// defaultStoreTimeout bounds each counter store round trip. A store that
// cannot answer in time is treated as unavailable.
const defaultStoreTimeout = 500 * time.Millisecond

// Option configures a Throttle.
type Option func(*Throttle) error

// WithDefaultPolicy replaces the fallback policy for unconfigured classes.
func WithDefaultPolicy(p Policy) Option {
	return func(t *Throttle) error {
		if err := p.validate(); err != nil {
			return err
		}
		t.defaultPolicy = p
		return nil
	}
}

// WithPolicy sets the policy for a specific operation class.
func WithPolicy(class OperationClass, p Policy) Option {
	return func(t *Throttle) error {
		if err := p.validate(); err != nil {
			return err
		}
		t.policies[class] = p
		return nil
	}
}

// WithStoreTimeout bounds each counter store call.
func WithStoreTimeout(d time.Duration) Option {
	return func(t *Throttle) error {
		if d <= 0 {
			return fmt.Errorf("%w: store timeout must be positive, got %v", ErrInvalidPolicy, d)
		}
		t.storeTimeout = d
		return nil
	}
}

// New creates a Throttle over the given counter store.
func New(store Store, opts ...Option) (*Throttle, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}

	t := &Throttle{
		store:         store,
		defaultPolicy: DefaultPolicy,
		policies:      make(map[OperationClass]Policy),
		storeTimeout:  defaultStoreTimeout,
	}

	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// PolicyFor returns the effective policy for the given operation class.
func (t *Throttle) PolicyFor(class OperationClass) Policy {
	if p, ok := t.policies[class]; ok {
		return p
	}
	return t.defaultPolicy
}

// Admit records one attempt for (identityKey, class) and returns the verdict.
//
// The returned Result is always usable, even alongside an error: on counter
// store failure the verdict is resolved by the class's FailMode (Throttled
// for FailClosed, Allowed for FailOpen) and the error, wrapped with
// ErrStoreUnavailable, is surfaced for logging only. Callers must honor the
// Result regardless — a Throttled verdict means the protected operation must
// not execute.
func (t *Throttle) Admit(ctx context.Context, identityKey string, class OperationClass) (*Result, error) {
	if identityKey == "" {
		return nil, ErrKeyRequired
	}

	policy := t.PolicyFor(class)

	ctx, cancel := context.WithTimeout(ctx, t.storeTimeout)
	defer cancel()

	count, ttl, err := t.store.IncrementAndGet(ctx, counterKey(identityKey, class), policy.Window)
	if err != nil {
		return failureResult(policy), errors.Join(ErrStoreUnavailable, err)
	}

	remaining := policy.Limit - int(count)
	result := &Result{
		Status:    StatusAllowed,
		Limit:     policy.Limit,
		Remaining: max(0, remaining),
		ResetAt:   time.Now().Add(ttl),
	}
	if count > int64(policy.Limit) {
		result.Status = StatusThrottled
	}

	return result, nil
}

// Reset clears the window for (identityKey, class). Intended for tests and
// operator intervention, not for request paths.
func (t *Throttle) Reset(ctx context.Context, identityKey string, class OperationClass) error {
	if identityKey == "" {
		return ErrKeyRequired
	}

	ctx, cancel := context.WithTimeout(ctx, t.storeTimeout)
	defer cancel()

	return t.store.Delete(ctx, counterKey(identityKey, class))
}

// failureResult resolves a store failure per the policy's FailMode.
func failureResult(policy Policy) *Result {
	status := StatusThrottled
	if policy.FailMode == FailOpen {
		status = StatusAllowed
	}
	return &Result{
		Status:    status,
		Limit:     policy.Limit,
		Remaining: 0,
		ResetAt:   time.Now().Add(policy.Window),
	}
}

func (p Policy) validate() error {
	if p.Limit < 1 {
		return fmt.Errorf("%w: limit must be >= 1, got %d", ErrInvalidPolicy, p.Limit)
	}
	if p.Window < time.Millisecond {
		return fmt.Errorf("%w: window must be >= 1ms, got %v", ErrInvalidPolicy, p.Window)
	}
	return nil
}
