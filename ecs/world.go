package ecs

import (
	"time"

	"go.uber.org/zap"

	"github.com/autophage/engine/internal/xlog"
	"github.com/autophage/engine/profiler"
)

// World owns every entity, component array, and system in one simulation.
// It is the library's single entry point: callers create entities, attach
// components, register systems, and drive ticks all through a World value.
type World struct {
	entities   *EntityManager
	components *componentRegistry
	systems    *SystemRegistry
	events     *EventBus
}

// NewWorld returns an empty World with capacity pre-reserved for
// entityCapacity entities.
func NewWorld(entityCapacity int) *World {
	return &World{
		entities:   NewEntityManager(entityCapacity),
		components: newComponentRegistry(),
		systems:    NewSystemRegistry(),
		events:     NewEventBus(),
	}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.Create()
}

// DestroyEntity destroys e, removing every component it holds across every
// registered component array, and reports whether e was alive.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.Destroy(e) {
		return false
	}
	w.components.onEntityDestroyed(e)
	return true
}

// IsAlive reports whether e is currently alive.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.IsAlive(e)
}

// EntityCount returns the number of currently alive entities.
func (w *World) EntityCount() int {
	return w.entities.AliveCount()
}

// ReserveEntities grows entity storage for at least count entities.
func (w *World) ReserveEntities(count int) {
	w.entities.Reserve(count)
}

// AddComponent attaches a T component to e, replacing any existing T it
// already holds, and returns a pointer to the stored value.
func AddComponent[T any](w *World, e Entity, value T) *T {
	return arrayFor[T](w.components).Set(e, value)
}

// GetComponent returns a pointer to e's T component and true, or nil and
// false if e has none.
func GetComponent[T any](w *World, e Entity) (*T, bool) {
	return arrayFor[T](w.components).Get(e)
}

// HasComponent reports whether e holds a T component.
func HasComponent[T any](w *World, e Entity) bool {
	return arrayFor[T](w.components).Has(e)
}

// RemoveComponent removes e's T component, if any.
func RemoveComponent[T any](w *World, e Entity) {
	arrayFor[T](w.components).Remove(e)
}

// Query returns a query over a single component type.
func Query[A any](w *World) Query1[A] {
	return NewQuery1[A](w)
}

// Query2Of returns a query over two component types.
func Query2Of[A, B any](w *World) Query2[A, B] {
	return NewQuery2[A, B](w)
}

// Query3Of returns a query over three component types.
func Query3Of[A, B, C any](w *World) Query3[A, B, C] {
	return NewQuery3[A, B, C](w)
}

// Query4Of returns a query over four component types.
func Query4Of[A, B, C, D any](w *World) Query4[A, B, C, D] {
	return NewQuery4[A, B, C, D](w)
}

// View returns a non-allocating iterator over a single component type.
func View[A any](w *World) View1[A] {
	return NewView1[A](w)
}

// View2Of returns a non-allocating iterator over two component types.
func View2Of[A, B any](w *World) View2[A, B] {
	return NewView2[A, B](w)
}

// View3Of returns a non-allocating iterator over three component types.
func View3Of[A, B, C any](w *World) View3[A, B, C] {
	return NewView3[A, B, C](w)
}

// View4Of returns a non-allocating iterator over four component types.
func View4Of[A, B, C, D any](w *World) View4[A, B, C, D] {
	return NewView4[A, B, C, D](w)
}

// RegisterSystem adds s to the world's system registry.
func (w *World) RegisterSystem(s System) {
	w.systems.Register(s)
}

// GetSystem returns the system registered under name, if any.
func (w *World) GetSystem(name string) (System, bool) {
	return w.systems.Get(name)
}

// ReplaceSystem swaps the system registered under name for replacement,
// shutting the old system down and initializing the replacement in its
// slot, preserving its position in update order.
func (w *World) ReplaceSystem(name string, replacement System) error {
	xlog.L().Info("world: replacing system", zap.String("name", name), zap.String("replacement", replacement.Name()))
	return w.systems.ReplaceByName(w, name, replacement)
}

// ReplaceSystemByType finds the first registered system whose dynamic type
// matches Old, shuts it down, installs replacement in its slot, and
// initializes replacement. If no system of type Old is registered,
// replacement is appended and initialized instead.
func ReplaceSystemByType[Old System](w *World, replacement System) error {
	xlog.L().Info("world: replacing system by type", zap.String("replacement", replacement.Name()))
	return ReplaceByType[Old](w.systems, w, replacement)
}

// Init runs Init on every registered system, in registration order.
func (w *World) Init() error {
	closeScope := xlog.Scope("world.init")
	defer closeScope()
	if err := w.systems.InitAll(w); err != nil {
		xlog.L().Error("world: init failed", zap.Error(err))
		return err
	}
	return nil
}

// Tick runs one simulation frame: it opens a profiler frame, updates every
// enabled system once in registration order, stamps the frame with entity
// and system counts and the measured update duration, and closes the
// frame. Equivalent to begin_frame; update_all(dt); end_frame.
func (w *World) Tick(dt float32) {
	profiler.BeginFrame()

	start := time.Now()
	w.systems.UpdateAll(w, dt)
	elapsed := time.Since(start)

	profiler.SetEntityCount(w.EntityCount())
	profiler.SetSystemCount(w.systems.Len())
	profiler.RecordUpdateTime(int64(elapsed))

	profiler.EndFrame()
}

// Shutdown runs Shutdown on every registered system, in reverse registration
// order.
func (w *World) Shutdown() error {
	closeScope := xlog.Scope("world.shutdown")
	defer closeScope()
	if err := w.systems.ShutdownAll(w); err != nil {
		xlog.L().Error("world: shutdown reported errors", zap.Error(err))
		return err
	}
	return nil
}

// Events returns the world's event bus.
func (w *World) Events() *EventBus {
	return w.events
}

// Clear resets the world to empty: no entities, no components, no systems,
// no event subscriptions.
func (w *World) Clear() {
	w.entities.Clear()
	w.components.clear()
	w.systems = NewSystemRegistry()
	w.events = NewEventBus()
}
