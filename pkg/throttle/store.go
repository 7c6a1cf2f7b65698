package throttle

import (
	"context"
	"time"
)

// Store is the atomic-increment-with-expiry contract the throttle requires of
// its counter backend.
//
// IncrementAndGet must behave as a single indivisible read-modify-write: two
// concurrent attempts at the boundary of the limit must observe distinct
// counts, so only one of them can land on the last admitted slot. The window
// expiry is set when the counter is created and must NOT be extended by later
// increments; a fixed window guarantees recovery at a known time.
type Store interface {
	// IncrementAndGet atomically increments the counter for key, creating
	// it with the given window on first use or after expiry, and returns
	// the post-increment count together with the time left in the window.
	IncrementAndGet(ctx context.Context, key string, window time.Duration) (count int64, ttl time.Duration, err error)

	// Delete removes the counter for key, resetting its window.
	Delete(ctx context.Context, key string) error
}
