// Package clientip extracts and validates the client IP address from HTTP
// requests. The throttle uses it as the caller identity key for endpoints
// reachable by anonymous callers, so invalid or spoofed garbage is dropped
// rather than passed through.
package clientip
