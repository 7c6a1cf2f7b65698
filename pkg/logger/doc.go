// Package logger builds the application's slog loggers with consistent
// formatting and provides attribute helpers for the fields the access layer
// logs: errors, roles, identities and operations.
package logger
