// Package audit records denied and throttled access decisions as structured
// slog events with unique identifiers, so abuse patterns can be traced
// without touching the decision path.
package audit
