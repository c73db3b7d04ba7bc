package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/webbomj/rsschool-nodejs-task-graphql/internal/eventbus"
	"github.com/webbomj/rsschool-nodejs-task-graphql/internal/events"
)

func TestWithEventsPublishesStoreCalls(t *testing.T) {
	eventbus.Use(eventbus.New())
	defer eventbus.Use(nil)

	var calls []events.StoreCall
	eventbus.Subscribe(func(ctx context.Context, e events.StoreCall) { calls = append(calls, e) })

	st := WithEvents(NewMemory())
	ctx := context.Background()

	u, err := st.CreateUser(ctx, CreateUser{Name: "a"})
	require.NoError(t, err)
	_, err = st.GetUser(ctx, u.ID)
	require.NoError(t, err)
	_, err = st.GetUser(ctx, "missing")
	require.Error(t, err)

	require.Len(t, calls, 3)
	require.Equal(t, "users", calls[0].Collection)
	require.Equal(t, "create", calls[0].Op)
	require.NoError(t, calls[0].Err)
	require.Equal(t, "get", calls[1].Op)
	require.False(t, calls[1].Start.IsZero())
	require.ErrorIs(t, calls[2].Err, ErrNotFound)
}
