package ecs

import (
	"errors"
	"fmt"
)

var (
	// ErrLocked is raised when the live set is mutated while entities are being advanced.
	ErrLocked = errors.New("ecs: world mutated during advance phase")
	// ErrDoubleAdd is raised when the same entity instance is added twice.
	ErrDoubleAdd = errors.New("ecs: entity added twice")
)

type pendingSpawn struct {
	id     EntityID
	commit func()
}

// World owns handle allocation and the two deferred queues that are drained
// at tick end: spawns first, then destructions. Accessed only from the
// simulation goroutine, so there are no locks.
type World struct {
	pool         *EntityPool
	registry     *Registry
	spawnQueue   []pendingSpawn
	destroyQueue []EntityID
	doomed       map[EntityID]struct{}
	locked       bool
}

func NewWorld() *World {
	return &World{
		pool:         NewEntityPool(),
		registry:     NewRegistry(),
		spawnQueue:   make([]pendingSpawn, 0, 32),
		destroyQueue: make([]EntityID, 0, 32),
		doomed:       make(map[EntityID]struct{}, 32),
	}
}

func (w *World) Pool() *EntityPool   { return w.pool }
func (w *World) Registry() *Registry { return w.registry }

func (w *World) CreateEntity() EntityID {
	return w.pool.Create()
}

func (w *World) Alive(id EntityID) bool {
	return w.pool.Alive(id)
}

// Lock marks the start of the advance phase. Until Unlock, only the deferred
// queues may be touched.
func (w *World) Lock()        { w.locked = true }
func (w *World) Unlock()      { w.locked = false }
func (w *World) Locked() bool { return w.locked }

// MustBeUnlocked panics with ErrLocked if called inside the advance phase.
func (w *World) MustBeUnlocked(op string) {
	if w.locked {
		panic(fmt.Errorf("%s: %w", op, ErrLocked))
	}
}

// QueueSpawn defers commit until FlushSpawnQueue. The handle is already
// allocated so it can be referenced (and even queued for removal) right away.
func (w *World) QueueSpawn(id EntityID, commit func()) {
	w.spawnQueue = append(w.spawnQueue, pendingSpawn{id: id, commit: commit})
}

// PendingSpawns returns the number of queued spawns.
func (w *World) PendingSpawns() int { return len(w.spawnQueue) }

// FlushSpawnQueue commits queued spawns in the order they were queued.
func (w *World) FlushSpawnQueue() int {
	w.MustBeUnlocked("flush spawn queue")
	n := 0
	for _, s := range w.spawnQueue {
		if !w.pool.Alive(s.id) {
			continue
		}
		s.commit()
		n++
	}
	clear(w.spawnQueue)
	w.spawnQueue = w.spawnQueue[:0]
	return n
}

// MarkForDestruction queues an entity for end-of-tick removal. Marking the
// same handle again, or a handle that is no longer alive, does nothing.
func (w *World) MarkForDestruction(id EntityID) {
	if !w.pool.Alive(id) {
		return
	}
	if _, ok := w.doomed[id]; ok {
		return
	}
	w.doomed[id] = struct{}{}
	w.destroyQueue = append(w.destroyQueue, id)
}

// MarkedForDestruction reports whether id is queued for removal this tick.
func (w *World) MarkedForDestruction(id EntityID) bool {
	_, ok := w.doomed[id]
	return ok
}

// PendingDestructions returns the number of queued removals.
func (w *World) PendingDestructions() int { return len(w.destroyQueue) }

// FlushDestroyQueue clears every queued entity from all stores and frees its
// handle. Returns how many entities were destroyed.
func (w *World) FlushDestroyQueue() int {
	w.MustBeUnlocked("flush destroy queue")
	n := 0
	for _, id := range w.destroyQueue {
		w.registry.RemoveAll(id)
		if w.pool.Destroy(id) {
			n++
		}
	}
	w.destroyQueue = w.destroyQueue[:0]
	clear(w.doomed)
	return n
}
