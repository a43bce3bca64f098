package ecs

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityPoolGenerations(t *testing.T) {
	p := NewEntityPool()
	a := p.Create()
	require.False(t, a.IsZero())
	require.True(t, p.Alive(a))
	assert.False(t, p.Alive(NoEntity))

	require.True(t, p.Destroy(a))
	assert.False(t, p.Alive(a))
	assert.False(t, p.Destroy(a), "stale handle must be ignored")

	b := p.Create()
	assert.Equal(t, a.Index(), b.Index(), "slot is recycled")
	assert.Equal(t, a.Generation()+1, b.Generation())
	assert.False(t, p.Alive(a))
	assert.True(t, p.Alive(b))
}

func TestStoreKeepsRegistrationOrder(t *testing.T) {
	s := NewStore[string]()
	ids := []EntityID{NewEntityID(3, 0), NewEntityID(1, 0), NewEntityID(7, 0), NewEntityID(2, 0)}
	for i, id := range ids {
		s.Set(id, fmt.Sprint("e", i))
	}
	s.Remove(ids[1])
	s.Remove(NewEntityID(99, 0)) // unknown: no-op

	assert.Equal(t, []string{"e0", "e2", "e3"}, slices.Collect(s.Values()))
	v, ok := s.Get(ids[3])
	require.True(t, ok)
	assert.Equal(t, "e3", v)
	assert.Equal(t, 3, s.Len())

	s.Set(ids[2], "replaced")
	assert.Equal(t, []string{"e0", "replaced", "e3"}, slices.Collect(s.Values()))
}

func TestStoreIterationIsRestartable(t *testing.T) {
	s := NewStore[int]()
	for i := 1; i <= 3; i++ {
		s.Set(NewEntityID(uint32(i), 0), i)
	}
	seq := s.Values()
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(seq))
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(seq))

	var first []int
	for v := range seq {
		first = append(first, v)
		break
	}
	assert.Equal(t, []int{1}, first)
}

func TestWorldDeferredQueues(t *testing.T) {
	w := NewWorld()
	live := NewStore[string]()
	w.Registry().Register(live)

	a := w.CreateEntity()
	live.Set(a, "a")

	b := w.CreateEntity()
	w.QueueSpawn(b, func() { live.Set(b, "b") })
	assert.False(t, live.Has(b), "spawn must wait for the flush")

	w.MarkForDestruction(a)
	w.MarkForDestruction(a)
	assert.True(t, w.MarkedForDestruction(a))
	assert.Equal(t, 1, w.PendingDestructions(), "repeat marks are idempotent")

	assert.Equal(t, 1, w.FlushSpawnQueue())
	assert.True(t, live.Has(b))
	assert.Equal(t, 1, w.FlushDestroyQueue())

	assert.False(t, live.Has(a))
	assert.False(t, w.Alive(a))
	assert.False(t, w.MarkedForDestruction(a))

	// removing an absent handle is a no-op
	w.MarkForDestruction(a)
	assert.Zero(t, w.PendingDestructions())
	assert.Zero(t, w.FlushDestroyQueue())
}

func TestWorldSpawnAndDestroySameTick(t *testing.T) {
	w := NewWorld()
	live := NewStore[int]()
	w.Registry().Register(live)

	id := w.CreateEntity()
	w.QueueSpawn(id, func() { live.Set(id, 1) })
	w.MarkForDestruction(id)

	w.FlushSpawnQueue()
	w.FlushDestroyQueue()
	assert.Zero(t, live.Len())
}

func TestWorldLockedFlushPanics(t *testing.T) {
	w := NewWorld()
	w.Lock()
	require.PanicsWithError(t, "flush spawn queue: "+ErrLocked.Error(), func() {
		w.FlushSpawnQueue()
	})
	require.PanicsWithError(t, "flush destroy queue: "+ErrLocked.Error(), func() {
		w.FlushDestroyQueue()
	})
	w.Unlock()
	assert.NotPanics(t, func() { w.FlushDestroyQueue() })
}
