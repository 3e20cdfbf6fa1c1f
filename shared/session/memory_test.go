package session_test

import (
	"context"
	"deportur/shared/session"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type screenState struct {
	Search   string  `json:"search"`
	Selected *int64  `json:"selected"`
	Items    []int64 `json:"items"`
}

func TestMemoryStore_SaveLoad(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	ctx := context.Background()
	selected := int64(7)

	err := store.Save(ctx, "operator-1", "customers", screenState{Search: "ana", Selected: &selected, Items: []int64{7, 9}})
	require.NoError(t, err)

	var got screenState
	found, err := store.Load(ctx, "operator-1", "customers", &got)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "ana", got.Search)
	assert.Equal(t, int64(7), *got.Selected)
	assert.Equal(t, []int64{7, 9}, got.Items)
}

func TestMemoryStore_IsolatesSessions(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "operator-1", "customers", screenState{Search: "ana"}))

	var got screenState
	found, err := store.Load(ctx, "operator-2", "customers", &got)

	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStore_ValuesAreCopied(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	ctx := context.Background()
	state := screenState{Items: []int64{1, 2}}

	require.NoError(t, store.Save(ctx, "operator-1", "equipment", state))

	state.Items[0] = 99

	var got screenState
	_, err := store.Load(ctx, "operator-1", "equipment", &got)

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, got.Items)
}

func TestMemoryStore_DeleteAndClear(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "operator-1", "customers", screenState{}))
	require.NoError(t, store.Save(ctx, "operator-1", "destinations", screenState{}))
	require.NoError(t, store.Save(ctx, "operator-2", "customers", screenState{}))

	require.NoError(t, store.Delete(ctx, "operator-1", "customers"))
	assert.Equal(t, 2, store.Len())

	require.NoError(t, store.Clear(ctx, "operator-1"))
	assert.Equal(t, 1, store.Len())

	var got screenState
	found, err := store.Load(ctx, "operator-2", "customers", &got)

	require.NoError(t, err)
	assert.True(t, found)
}

func TestMemoryStore_Sweep(t *testing.T) {
	store := session.NewMemoryStore(time.Millisecond)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "operator-1", "customers", screenState{}))
	time.Sleep(5 * time.Millisecond)

	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 0, store.Len())

	var got screenState
	found, err := store.Load(ctx, "operator-1", "customers", &got)

	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStore_ClearIsExact(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "a", "customers", screenState{}))
	require.NoError(t, store.Save(ctx, "a/b", "customers", screenState{Search: "kept"}))
	require.NoError(t, store.Save(ctx, "a#tab-1", "customers", screenState{Search: "kept"}))

	require.NoError(t, store.Clear(ctx, "a"))
	assert.Equal(t, 2, store.Len())

	var got screenState
	found, err := store.Load(ctx, "a/b", "customers", &got)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "kept", got.Search)
}

func TestScoped(t *testing.T) {
	tests := []struct {
		name     string
		subject  string
		tab      string
		expected string
		err      error
	}{
		{name: "default session", subject: "auth0|alice", expected: "auth0|alice"},
		{name: "tab of the same operator", subject: "auth0|alice", tab: "tab-1", expected: "auth0|alice#tab-1"},
		{name: "another operator's subject stays scoped", subject: "auth0|mallory", tab: "auth0|alice", err: session.ErrInvalidSessionID},
		{name: "separator", subject: "auth0|mallory", tab: "x#y", err: session.ErrInvalidSessionID},
		{name: "path", subject: "auth0|mallory", tab: "a/b", err: session.ErrInvalidSessionID},
		{name: "too long", subject: "auth0|mallory", tab: strings.Repeat("a", 65), err: session.ErrInvalidSessionID},
		{name: "no subject", tab: "tab-1", err: session.ErrMissingSession},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := session.Scoped(tt.subject, tt.tab)

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestID(t *testing.T) {
	_, err := session.ID(context.Background())
	assert.ErrorIs(t, err, session.ErrMissingSession)
}
