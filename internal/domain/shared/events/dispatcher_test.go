package events

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complaintdesk/internal/shared/logger"
)

type recordingHandler struct {
	mu   sync.Mutex
	seen []string
	err  error
}

func (h *recordingHandler) Handle(event DomainEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seen = append(h.seen, event.GetAggregateID())
	return h.err
}

func (h *recordingHandler) CanHandle(eventType string) bool {
	return true
}

func (h *recordingHandler) ids() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.seen...)
}

func TestInMemoryEventDispatcher_DeliversInOrderAndDrainsOnStop(t *testing.T) {
	d := NewInMemoryEventDispatcher(16, logger.NewNopLogger())
	h := &recordingHandler{}
	require.NoError(t, d.Subscribe("complaint.submitted", h))
	require.NoError(t, d.Start())

	at := time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC)
	for _, id := range []string{"comp-1", "comp-2", "comp-3"} {
		require.NoError(t, d.Publish(NewBaseEvent(id, "complaint.submitted", at)))
	}
	require.NoError(t, d.Publish(NewBaseEvent("comp-9", "complaint.archived", at)))

	require.NoError(t, d.Stop())
	assert.Equal(t, []string{"comp-1", "comp-2", "comp-3"}, h.ids())
}

func TestInMemoryEventDispatcher_PublishRequiresRunning(t *testing.T) {
	d := NewInMemoryEventDispatcher(1, logger.NewNopLogger())

	err := d.Publish(NewBaseEvent("comp-1", "complaint.submitted", time.Now()))
	assert.Error(t, err)

	require.NoError(t, d.Start())
	assert.Error(t, d.Start())
	require.NoError(t, d.Stop())
	assert.Error(t, d.Stop())
	assert.Error(t, d.Publish(NewBaseEvent("comp-1", "complaint.submitted", time.Now())))
}

func TestInMemoryEventDispatcher_SubscribeValidation(t *testing.T) {
	d := NewInMemoryEventDispatcher(0, logger.NewNopLogger())

	assert.Error(t, d.Subscribe("", &recordingHandler{}))
	assert.Error(t, d.Subscribe("complaint.submitted", nil))
}

func TestInMemoryEventDispatcher_HandlerFailureAndPanicDoNotStopDelivery(t *testing.T) {
	d := NewInMemoryEventDispatcher(8, logger.NewNopLogger())
	failing := &recordingHandler{err: errors.New("boom")}
	after := &recordingHandler{}
	panicking := NewSimpleEventHandler("complaint.assigned", func(DomainEvent) error {
		panic("handler bug")
	})

	require.NoError(t, d.Subscribe("complaint.assigned", failing))
	require.NoError(t, d.Subscribe("complaint.assigned", panicking))
	require.NoError(t, d.Subscribe("complaint.assigned", after))
	require.NoError(t, d.Start())

	require.NoError(t, d.Publish(NewBaseEvent("comp-1", "complaint.assigned", time.Now())))
	require.NoError(t, d.Publish(NewBaseEvent("comp-2", "complaint.assigned", time.Now())))
	require.NoError(t, d.Stop())

	assert.Equal(t, []string{"comp-1", "comp-2"}, failing.ids())
	assert.Equal(t, []string{"comp-1", "comp-2"}, after.ids())
}

func TestSimpleEventHandler(t *testing.T) {
	called := false
	h := NewSimpleEventHandler("complaint.archived", func(e DomainEvent) error {
		called = true
		assert.Equal(t, 1, e.GetVersion())
		return nil
	})

	assert.True(t, h.CanHandle("complaint.archived"))
	assert.False(t, h.CanHandle("complaint.submitted"))
	require.NoError(t, h.Handle(NewBaseEvent("comp-1", "complaint.archived", time.Now())))
	assert.True(t, called)
	assert.NoError(t, NopPublisher{}.Publish(NewBaseEvent("comp-1", "x", time.Now())))
}
