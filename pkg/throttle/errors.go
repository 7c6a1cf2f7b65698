package throttle

import "errors"

var (
	// ErrKeyRequired is returned when Admit is called with an empty identity key.
	ErrKeyRequired = errors.New("throttle.identity_key_required")

	// ErrInvalidPolicy is returned for a policy with a non-positive limit or window.
	ErrInvalidPolicy = errors.New("throttle.invalid_policy")

	// ErrStoreRequired is returned when the throttle is constructed without a store.
	ErrStoreRequired = errors.New("throttle.store_required")

	// ErrStoreUnavailable wraps counter store failures. Admit still returns a
	// usable Result alongside it, resolved per the class's FailMode.
	ErrStoreUnavailable = errors.New("throttle.store_unavailable")
)
