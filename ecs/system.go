package ecs

import (
	"reflect"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/autophage/engine/internal/xlog"
)

// System is one unit of per-tick behavior registered against a World. Init
// and Shutdown run once each, in registration order and reverse registration
// order respectively; Update runs once per tick for every enabled system.
type System interface {
	Name() string
	Init(w *World) error
	Update(w *World, dt float32)
	Shutdown(w *World)
	Enabled() bool
	SetEnabled(bool)
}

// VariantSystem is a System that can run under more than one implementation
// strategy. The optimizer package switches the active variant at runtime;
// the system is responsible for branching its Update behavior on it.
type VariantSystem interface {
	System
	ActiveVariant() Variant
	AvailableVariants() []Variant
	SetVariant(Variant) bool
}

// BaseSystem gives embedding systems a name and an enabled flag for free, the
// way most systems only need to override Init/Update/Shutdown.
type BaseSystem struct {
	name    string
	enabled bool
}

// NewBaseSystem returns a BaseSystem with the given name, enabled by default.
func NewBaseSystem(name string) BaseSystem {
	return BaseSystem{name: name, enabled: true}
}

func (b *BaseSystem) Name() string      { return b.name }
func (b *BaseSystem) Enabled() bool     { return b.enabled }
func (b *BaseSystem) SetEnabled(v bool) { b.enabled = v }

// ProxySystem adapts a bare update function into a System, giving code that
// hot-swaps behavior at the function level (rather than swapping whole
// System implementations) a slot in the registry. Init and Shutdown are
// no-ops unless overridden by setting the corresponding fields.
type ProxySystem struct {
	BaseSystem
	UpdateFunc   func(w *World, dt float32)
	InitFunc     func(w *World) error
	ShutdownFunc func(w *World)
}

// NewProxySystem wraps fn as a named System.
func NewProxySystem(name string, fn func(w *World, dt float32)) *ProxySystem {
	return &ProxySystem{BaseSystem: NewBaseSystem(name), UpdateFunc: fn}
}

func (p *ProxySystem) Init(w *World) error {
	if p.InitFunc == nil {
		return nil
	}
	return p.InitFunc(w)
}

func (p *ProxySystem) Update(w *World, dt float32) {
	if p.UpdateFunc != nil {
		p.UpdateFunc(w, dt)
	}
}

func (p *ProxySystem) Shutdown(w *World) {
	if p.ShutdownFunc != nil {
		p.ShutdownFunc(w)
	}
}

// SystemRegistry holds an ordered list of Systems and dispatches Init/Update/
// Shutdown across them. Slot identity and order survive replacement: a
// system replaced by name or by matching Name() keeps the same position in
// the update order that the system it replaced held.
type SystemRegistry struct {
	systems []System
	index   map[string]int
}

// NewSystemRegistry returns an empty SystemRegistry.
func NewSystemRegistry() *SystemRegistry {
	return &SystemRegistry{index: make(map[string]int)}
}

// Register appends s to the registry under its own Name(). Registering a
// second system under a name already in use replaces it in place, preserving
// its slot.
func (r *SystemRegistry) Register(s System) {
	name := s.Name()
	if i, ok := r.index[name]; ok {
		r.systems[i] = s
		return
	}
	r.index[name] = len(r.systems)
	r.systems = append(r.systems, s)
}

// Get returns the system registered under name, if any.
func (r *SystemRegistry) Get(name string) (System, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.systems[i], true
}

// ReplaceByName swaps the system at name's slot for replacement, preserving
// update order. The old system's Shutdown runs before replacement's Init. If
// name is not registered, replacement is appended as a new slot and still
// initialized.
func (r *SystemRegistry) ReplaceByName(w *World, name string, replacement System) error {
	if i, ok := r.index[name]; ok {
		old := r.systems[i]
		old.Shutdown(w)

		r.systems[i] = replacement
		if replacement.Name() != name {
			delete(r.index, name)
			r.index[replacement.Name()] = i
		}
		return replacement.Init(w)
	}
	r.Register(replacement)
	return replacement.Init(w)
}

// ReplaceByType finds the first registered system whose dynamic type matches
// Old, shuts it down, installs replacement in its slot, and initializes
// replacement, preserving update order. If no system of type Old is
// registered, replacement is appended and initialized instead.
func ReplaceByType[Old System](r *SystemRegistry, w *World, replacement System) error {
	var zero Old
	wantType := reflect.TypeOf(zero)

	for i, s := range r.systems {
		if reflect.TypeOf(s) != wantType {
			continue
		}
		old := r.systems[i]
		old.Shutdown(w)

		name := old.Name()
		r.systems[i] = replacement
		if replacement.Name() != name {
			delete(r.index, name)
			r.index[replacement.Name()] = i
		}
		return replacement.Init(w)
	}

	r.Register(replacement)
	return replacement.Init(w)
}

// InitAll calls Init on every system in registration order, stopping at the
// first error.
func (r *SystemRegistry) InitAll(w *World) error {
	for _, s := range r.systems {
		if err := s.Init(w); err != nil {
			return err
		}
	}
	return nil
}

// UpdateAll calls Update on every enabled system in registration order.
// Disabled systems are skipped entirely, including their tick's cost.
func (r *SystemRegistry) UpdateAll(w *World, dt float32) {
	for _, s := range r.systems {
		if s.Enabled() {
			s.Update(w, dt)
		}
	}
}

// ShutdownAll calls Shutdown on every system in reverse registration order,
// so a system's dependencies (registered before it) shut down after it does.
// A panic in one system's Shutdown is recovered and aggregated rather than
// aborting the rest of the pass, so every system gets a chance to shut down.
func (r *SystemRegistry) ShutdownAll(w *World) error {
	var err error
	for i := len(r.systems) - 1; i >= 0; i-- {
		func() {
			defer func() {
				if rec := recover(); rec != nil {
					xlog.L().Error("system panicked during shutdown",
						zap.String("system", r.systems[i].Name()), zap.Any("panic", rec))
					err = multierr.Append(err, NewError(SystemError, r.systems[i].Name()))
				}
			}()
			r.systems[i].Shutdown(w)
		}()
	}
	return err
}

// Len returns the number of registered systems.
func (r *SystemRegistry) Len() int { return len(r.systems) }

// CollectThenRemove implements the cleanup pattern for structural mutation
// during a scan: it first gathers every entity in ComponentArray[T] for which
// match returns true, then destroys those entities (with all their
// components) only after the scan has fully completed, so the removal never
// disturbs the array being scanned mid-iteration. It returns the number of
// entities matched.
func CollectThenRemove[T any](w *World, match func(Entity, *T) bool) int {
	arr := arrayFor[T](w.components)
	var doomed []Entity
	arr.ForEach(func(e Entity, v *T) {
		if match(e, v) {
			doomed = append(doomed, e)
		}
	})
	for _, e := range doomed {
		w.DestroyEntity(e)
	}
	return len(doomed)
}
