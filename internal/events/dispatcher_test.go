package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_Publish(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []Event
	d.Subscribe(EventAccountRegistered, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})
	d.Subscribe(EventAccountDeleted, func(context.Context, Event) error {
		t.Fatal("unexpected handler call")
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventAccountRegistered, Username: "alice"}))
	require.Len(t, got, 1)
	assert.Equal(t, "alice", got[0].Username)
	assert.NotEmpty(t, got[0].ID)
	assert.False(t, got[0].Timestamp.IsZero())
}

func TestDispatcher_JoinsHandlerErrors(t *testing.T) {
	d := NewInMemoryDispatcher()
	errFirst := errors.New("first")
	errThird := errors.New("third")

	calls := 0
	d.Subscribe(EventFavoriteAdded, func(context.Context, Event) error { calls++; return errFirst })
	d.Subscribe(EventFavoriteAdded, func(context.Context, Event) error { calls++; return nil })
	d.Subscribe(EventFavoriteAdded, func(context.Context, Event) error { calls++; return errThird })

	err := d.Publish(context.Background(), Event{Type: EventFavoriteAdded})
	assert.Equal(t, 3, calls)
	assert.ErrorIs(t, err, errFirst)
	assert.ErrorIs(t, err, errThird)
}

func TestDispatcher_NoListeners(t *testing.T) {
	assert.NoError(t, NewInMemoryDispatcher().Publish(context.Background(), Event{Type: EventAccountUpdated}))
}
