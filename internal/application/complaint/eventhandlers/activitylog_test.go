package eventhandlers

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complaintdesk/internal/domain/complaint"
	"complaintdesk/internal/domain/shared/events"
	"complaintdesk/internal/shared/logger"
)

func TestActivityLogHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLoggerWithSlog(slog.New(slog.NewJSONHandler(&buf, nil)))
	h := NewActivityLogHandler(log)

	c, err := complaint.NewComplaint("comp-1", "COMP-2024-0006", complaint.Actor{ID: "user-1", Name: "Rajesh Kumar"},
		"POL-2024-001234", "Billing", "Low", "Refund", "Refund pending", time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.NoError(t, h.Handle(complaint.NewSubmittedEvent(c)))

	out := buf.String()
	assert.Contains(t, out, `"msg":"complaint activity"`)
	assert.Contains(t, out, `"code":"COMP-2024-0006"`)
	assert.Contains(t, out, `"event_type":"complaint.submitted"`)
	assert.Contains(t, out, `"category":"Billing"`)
}

func TestActivityLogHandler_RegisterCoversEveryEventType(t *testing.T) {
	h := NewActivityLogHandler(logger.NewNopLogger())
	d := events.NewInMemoryEventDispatcher(4, logger.NewNopLogger())

	require.NoError(t, h.Register(d))
	for _, et := range complaint.EventTypes() {
		assert.True(t, h.CanHandle(et), et)
	}
	assert.False(t, h.CanHandle("user.registered"))
}
