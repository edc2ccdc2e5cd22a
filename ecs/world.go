package ecs

import (
	"fmt"
	"sort"

	"github.com/milk9111/rollbrawler/ecs/component"
)

// World owns entities and their component storages.
type World struct {
	gens   []generation
	alive  []bool
	free   []entityID
	stores map[component.ComponentID]*SparseSet
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity, reusing freed ids with a bumped
// generation.
func CreateEntity(w *World) Entity {
	if n := len(w.free); n > 0 {
		id := w.free[n-1]
		w.free = w.free[:n-1]
		w.alive[id-1] = true
		return makeEntity(id, w.gens[id-1])
	}
	w.gens = append(w.gens, 1)
	w.alive = append(w.alive, true)
	id := entityID(len(w.gens))
	return makeEntity(id, 1)
}

// DestroyEntity removes e and all its components. It reports whether e was
// alive.
func DestroyEntity(w *World, e Entity) bool {
	if !IsAlive(w, e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	id := e.id()
	w.alive[id-1] = false
	w.gens[id-1]++
	w.free = append(w.free, id)
	return true
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	id := int(e.id())
	if id <= 0 || id > len(w.gens) {
		return false
	}
	return w.alive[id-1] && w.gens[id-1] == e.generation()
}

// Entities returns all live entities in creation order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, len(w.gens))
	for i, gen := range w.gens {
		if w.alive[i] {
			out = append(out, makeEntity(entityID(i+1), gen))
		}
	}
	return out
}

func (w *World) store(kind component.Kind, create bool) *SparseSet {
	s, ok := w.stores[kind.ID()]
	if !ok && create {
		s = &SparseSet{}
		w.stores[kind.ID()] = s
	}
	return s
}

// AddComponent attaches or replaces the value of kind on e.
func (w *World) AddComponent(e Entity, kind component.Kind, value any) error {
	if kind == nil || kind.ID() == 0 {
		return component.ErrInvalidComponentKind
	}
	if !IsAlive(w, e) {
		return fmt.Errorf("%w: add %s to %v", component.ErrEntityNotAlive, kind.Name(), e)
	}
	if value == nil {
		return fmt.Errorf("%w: add %s to %v", component.ErrNilComponent, kind.Name(), e)
	}
	w.store(kind, true).Set(e, value)
	return nil
}

// GetComponent returns the raw value of kind on e.
func (w *World) GetComponent(e Entity, kind component.Kind) (any, bool) {
	if !IsAlive(w, e) || kind == nil {
		return nil, false
	}
	s := w.store(kind, false)
	if !s.Has(e) {
		return nil, false
	}
	return s.Get(e), true
}

func (w *World) HasComponent(e Entity, kind component.Kind) bool {
	_, ok := w.GetComponent(e, kind)
	return ok
}

func (w *World) RemoveComponent(e Entity, kind component.Kind) bool {
	if !IsAlive(w, e) || kind == nil {
		return false
	}
	return w.store(kind, false).Remove(e)
}

// Query returns the live entities that have every kind, sorted by id so
// system order is deterministic.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k, false)
		if s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	// iterate the smallest set
	sort.Slice(sets, func(i, j int) bool { return sets[i].Len() < sets[j].Len() })

	out := make([]Entity, 0, sets[0].Len())
	for _, e := range sets[0].Entities() {
		if !IsAlive(w, e) {
			continue
		}
		if hasAll(sets[1:], e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id() < out[j].id() })
	return out
}

// First returns the lowest id entity matching kinds.
func (w *World) First(kinds ...component.Kind) (Entity, bool) {
	ents := w.Query(kinds...)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}
