package events

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInMemoryEventStore_AppendAndRead(t *testing.T) {
	store := NewInMemoryEventStore(nil)

	require.NoError(t, store.AppendEvent("run-1", NewEvent("check.started", "", 3)))
	require.NoError(t, store.AppendEvent("run-2", NewEvent("check.started", "", 1)))
	require.NoError(t, store.AppendEvent("run-1", NewEvent("check.completed", "", true)))

	events, err := store.ReadEvents("run-1", 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "run-1", events[0].StreamID())
	assert.Equal(t, 1, events[0].Version())
	assert.Equal(t, 2, events[1].Version())
	assert.Equal(t, true, events[1].Data())

	tail, err := store.ReadEvents("run-1", 2)
	require.NoError(t, err)
	assert.Len(t, tail, 1)

	none, err := store.ReadEvents("run-1", 5)
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := store.ReadAllEvents(1)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "run-2", all[0].StreamID())
	assert.Equal(t, 3, store.Position())
}

func TestInMemoryEventStore_Subscribe(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	store := NewInMemoryEventStore(zap.New(core))

	var seen []string
	handler := &HandlerFunc{
		Types: []string{"check.completed"},
		Fn: func(e Event) error {
			seen = append(seen, e.StreamID())
			return nil
		},
	}
	failing := &HandlerFunc{
		Types: []string{"check.completed"},
		Fn:    func(Event) error { return errors.New("boom") },
	}

	require.NoError(t, store.Subscribe([]string{"check.completed"}, handler))
	require.NoError(t, store.Subscribe([]string{"check.completed"}, failing))

	require.NoError(t, store.AppendEvent("run-1", NewEvent("check.started", "", nil)))
	require.NoError(t, store.AppendEvent("run-1", NewEvent("check.completed", "", nil)))
	assert.Equal(t, []string{"run-1"}, seen)
	assert.Equal(t, 1, logs.FilterMessage("event handler failed").Len())

	require.NoError(t, store.Unsubscribe(handler))
	require.NoError(t, store.AppendEvent("run-2", NewEvent("check.completed", "", nil)))
	assert.Equal(t, []string{"run-1"}, seen)
}
