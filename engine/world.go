package engine

import (
	"sort"
	"time"

	"github.com/lixenwraith/vi-pong/core"
)

// System is implemented by every per-frame update step
type System interface {
	Name() string
	Update(world *World, dt time.Duration)
	Priority() int // Lower values run first
}

// World is the entity registry: typed component stores, singleton resources and ordered systems
type World struct {
	nextEntityID core.Entity

	Components ComponentStore
	Resource   *Resource

	systems []System
}

// NewWorld creates an empty world with fresh resources
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		Components:   newComponentStore(),
		Resource:     NewResource(),
		systems:      make([]System, 0, 8),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.Components.all() {
		s.Remove(e)
	}
}

// Alive reports whether any store still holds the entity
func (w *World) Alive(e core.Entity) bool {
	for _, s := range w.Components.all() {
		if s.Has(e) {
			return true
		}
	}
	return false
}

// Clear removes all entities and components, resources are kept
func (w *World) Clear() {
	w.nextEntityID = 1
	for _, s := range w.Components.all() {
		s.Clear()
	}
}

// AddSystem registers a system, keeping the list ordered by priority
// Systems with equal priority keep registration order
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems once, in priority order
func (w *World) Update(dt time.Duration) {
	for _, system := range w.systems {
		system.Update(w, dt)
	}
}
