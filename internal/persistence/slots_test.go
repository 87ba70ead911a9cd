package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSlot_GetSet(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")
	slot, err := NewFileSlot(dir)
	require.NoError(t, err)

	_, err = slot.Get(ctx, "kanban-tasks")
	assert.ErrorIs(t, err, ErrSlotEmpty)

	require.NoError(t, slot.Set(ctx, "kanban-tasks", []byte(`[]`)))
	require.NoError(t, slot.Set(ctx, "kanban-tasks", []byte(`[{"id":"a"}]`)))

	got, err := slot.Get(ctx, "kanban-tasks")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, string(got))

	// No temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileSlot_KeyCannotEscapeDirectory(t *testing.T) {
	slot, err := NewFileSlot(t.TempDir())
	require.NoError(t, err)

	path := slot.Path("../../etc/passwd")
	assert.Equal(t, slot.dir, filepath.Dir(path))
}

func TestFileSlot_RequiresDirectory(t *testing.T) {
	_, err := NewFileSlot("")
	assert.Error(t, err)
}

func TestMemorySlot_CopiesValues(t *testing.T) {
	ctx := context.Background()
	slot := NewMemorySlot()
	value := []byte("abc")
	require.NoError(t, slot.Set(ctx, "k", value))
	value[0] = 'x'

	got, err := slot.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
	assert.False(t, slot.Durable())
}

func TestRedisSlot_GetSet(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	slot, err := NewRedisSlot(client, "flowboard:")
	require.NoError(t, err)

	_, err = slot.Get(ctx, "kanban-tasks")
	assert.ErrorIs(t, err, ErrSlotEmpty)

	require.NoError(t, slot.Set(ctx, "kanban-tasks", []byte(`[]`)))
	stored, err := mr.Get("flowboard:kanban-tasks")
	require.NoError(t, err)
	assert.Equal(t, `[]`, stored)
	assert.Zero(t, mr.TTL("flowboard:kanban-tasks"))

	// Borrowed clients are left open
	require.NoError(t, slot.Close())
	assert.NoError(t, client.Ping(ctx).Err())
}

func TestRedisSlot_AdapterRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	ctx := context.Background()
	slot, err := DialRedisSlot(ctx, &redis.Options{Addr: mr.Addr()}, "")
	require.NoError(t, err)
	adapter := NewAdapter(slot)
	t.Cleanup(func() { _ = adapter.Close() })

	require.NoError(t, adapter.Save(ctx, sampleTasks()))
	assert.Equal(t, sampleTasks(), adapter.Load(ctx))
	assert.True(t, adapter.Available())
}

func TestRedisSlot_RequiresClient(t *testing.T) {
	_, err := NewRedisSlot(nil, "")
	assert.ErrorIs(t, err, ErrNoRedisClient)
}

func TestDialRedisSlot_Unreachable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	_, err = DialRedisSlot(context.Background(), &redis.Options{Addr: addr, MaxRetries: -1}, "")
	assert.Error(t, err)
}
