package audit

import (
	"time"

	"github.com/google/uuid"
)

// Outcome classifies a recorded access decision. Only negative outcomes are
// recorded; admitted traffic is the normal case and is not an audit event.
type Outcome string

const (
	// OutcomeDenied is a permission denial: absent role, a role outside
	// the rule's set, or an admin-gate mismatch.
	OutcomeDenied Outcome = "denied"

	// OutcomeThrottled is an admission rejection: the caller exhausted its
	// window, or the counter store failed closed.
	OutcomeThrottled Outcome = "throttled"
)

// Event is one recorded decision.
type Event struct {
	ID        uuid.UUID
	Time      time.Time
	Outcome   Outcome
	Operation string // Operation identifier or endpoint, e.g. "clientes.delete".
	Role      string // Caller role; empty for anonymous callers.
	Identity  string // Identity key, e.g. client IP. Optional.
}
