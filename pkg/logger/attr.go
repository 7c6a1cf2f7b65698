package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Role records a caller role under the key "role".
func Role(role string) slog.Attr {
	return slog.String("role", role)
}

// Identity records a caller identity key under the key "identity".
func Identity(id string) slog.Attr {
	return slog.String("identity", id)
}

// Operation records an operation identifier under the key "operation".
func Operation(op string) slog.Attr {
	return slog.String("operation", op)
}
