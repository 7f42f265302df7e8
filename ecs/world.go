package ecs

import (
	"fmt"

	"github.com/milk9111/roomscale/ecs/component"
)

// System updates a world once per frame.
type System interface {
	Update(w *World)
}

// World owns entities, component storage, the name index, system order,
// and the frame event queue. All access happens on the update goroutine;
// events are delivered serially, so there is no locking.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	names    map[string]Entity
	byEntity map[Entity]string
	systems  []System
	events   EventQueue
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		stores:   make(map[component.ComponentID]*SparseSet),
		names:    make(map[string]Entity),
		byEntity: make(map[Entity]string),
	}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes an entity together with its components and name.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	if name, ok := w.byEntity[e]; ok {
		delete(w.names, name)
		delete(w.byEntity, e)
	}
	return true
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// Entities returns all live entities.
func (w *World) Entities() []Entity {
	return w.entities.all()
}

// SetName registers a unique scene name for e, the resolution surface for
// configured references.
func (w *World) SetName(e Entity, name string) error {
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	if name == "" {
		return fmt.Errorf("ecs: empty entity name")
	}
	if prev, ok := w.names[name]; ok && prev != e {
		return fmt.Errorf("ecs: name %q already taken by entity %s", name, prev)
	}
	if old, ok := w.byEntity[e]; ok {
		delete(w.names, old)
	}
	w.names[name] = e
	w.byEntity[e] = name
	return nil
}

// FindByName resolves a scene name to a live entity.
func (w *World) FindByName(name string) (Entity, bool) {
	e, ok := w.names[name]
	if !ok || !w.IsAlive(e) {
		return 0, false
	}
	return e, true
}

// NameOf returns the registered name of e, if any.
func (w *World) NameOf(e Entity) (string, bool) {
	name, ok := w.byEntity[e]
	return name, ok
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once, then flushes the event queue. Events pushed
// before Update are visible to every system of the same frame.
func (w *World) Update() {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		if s != nil {
			s.Update(w)
		}
	}
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	return &w.events
}

func (w *World) store(id component.ComponentID) *SparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// AddComponent stores a component value for e.
func (w *World) AddComponent(e Entity, id component.ComponentID, v any) error {
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	if id == 0 {
		return component.ErrInvalidComponentKind
	}
	if v == nil {
		return component.ErrNilComponent
	}
	w.store(id).Set(e, v)
	return nil
}

// GetComponent returns the stored component value for e.
func (w *World) GetComponent(e Entity, id component.ComponentID) (any, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	v := w.store(id).Get(e)
	return v, v != nil
}

// HasComponent reports whether e has the component.
func (w *World) HasComponent(e Entity, id component.ComponentID) bool {
	return w.IsAlive(e) && w.store(id).Has(e)
}

// RemoveComponent deletes the component from e, reporting whether it existed.
func (w *World) RemoveComponent(e Entity, id component.ComponentID) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.store(id).Remove(e)
}

// Query returns entities that carry every listed component kind.
func (w *World) Query(ids ...component.ComponentID) []Entity {
	if len(ids) == 0 {
		return nil
	}
	result := w.store(ids[0])
	for _, id := range ids[1:] {
		result = intersect(result, w.store(id))
	}
	out := make([]Entity, 0, result.Len())
	for _, e := range result.Entities() {
		if w.IsAlive(e) {
			out = append(out, e)
		}
	}
	return out
}
