package audit_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestionix/accesskit/pkg/audit"
)

func TestLogger_Record(t *testing.T) {
	t.Parallel()

	t.Run("fills id and timestamp", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := audit.NewLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

		e := logger.Record(context.Background(), audit.Event{
			Outcome:   audit.OutcomeDenied,
			Operation: "clientes.delete",
			Role:      "USER",
		})

		assert.NotEqual(t, uuid.Nil, e.ID)
		assert.False(t, e.Time.IsZero())

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "access decision", entry["msg"])
		assert.Equal(t, "denied", entry["outcome"])
		assert.Equal(t, "clientes.delete", entry["operation"])
		assert.Equal(t, "USER", entry["role"])
		assert.Equal(t, e.ID.String(), entry["event_id"])
	})

	t.Run("preserves explicit id", func(t *testing.T) {
		t.Parallel()

		logger := audit.NewLogger(nil)
		id := uuid.New()

		e := logger.Record(context.Background(), audit.Event{
			ID:       id,
			Outcome:  audit.OutcomeThrottled,
			Identity: "203.0.113.5",
		})
		assert.Equal(t, id, e.ID)
	})

	t.Run("nil logger discards safely", func(t *testing.T) {
		t.Parallel()

		logger := audit.NewLogger(nil)
		assert.NotPanics(t, func() {
			logger.Record(context.Background(), audit.Event{Outcome: audit.OutcomeDenied})
		})
	})
}
