// Package systems holds concrete System implementations shipped with the
// engine.
package systems

import (
	"github.com/autophage/engine/ecs"
	"github.com/autophage/engine/ecs/components"
)

// PhysicsSystem integrates Velocity into Transform for every entity holding
// both, skipping entities tagged Static. It implements ecs.VariantSystem:
// under Scalar it integrates one entity at a time; under SIMD it integrates
// in fixed-width batches shaped for auto-vectorization. GPU and Approximate
// variants are not implemented; SetVariant rejects them.
type PhysicsSystem struct {
	ecs.BaseSystem
	variant ecs.Variant
}

// NewPhysicsSystem returns a PhysicsSystem named "physics", running the
// Scalar variant by default.
func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{BaseSystem: ecs.NewBaseSystem("physics"), variant: ecs.Scalar}
}

func (p *PhysicsSystem) Init(w *ecs.World) error { return nil }

func (p *PhysicsSystem) Shutdown(w *ecs.World) {}

// ActiveVariant returns the variant this system is currently running under.
func (p *PhysicsSystem) ActiveVariant() ecs.Variant { return p.variant }

// AvailableVariants returns the variants this system actually implements.
// GPU and Approximate are not among them.
func (p *PhysicsSystem) AvailableVariants() []ecs.Variant {
	return []ecs.Variant{ecs.Scalar, ecs.SIMD}
}

// SetVariant switches the variant used by the next Update call, rejecting
// any variant not reported by AvailableVariants and leaving the active
// variant unchanged.
func (p *PhysicsSystem) SetVariant(v ecs.Variant) bool {
	switch v {
	case ecs.Scalar, ecs.SIMD:
		p.variant = v
		return true
	default:
		return false
	}
}

// Update integrates every non-static Transform+Velocity entity by dt.
func (p *PhysicsSystem) Update(w *ecs.World, dt float32) {
	switch p.variant {
	case ecs.SIMD:
		p.updateSIMD(w, dt)
	default:
		p.updateScalar(w, dt)
	}
}

func (p *PhysicsSystem) updateScalar(w *ecs.World, dt float32) {
	q := ecs.Query2Of[components.Transform, components.Velocity](w)
	q.ForEach(func(e ecs.Entity, t *components.Transform, v *components.Velocity) {
		if ecs.HasComponent[components.Static](w, e) {
			return
		}
		t.Position = t.Position.Add(v.Linear.Scale(dt))
	})
}

// updateSIMD integrates in batches of four, a layout a vectorizing compiler
// can turn into wide loads/stores; this Go port makes no SIMD instruction
// calls of its own, it only shapes the loop the way vectorized code expects.
const simdBatch = 4

func (p *PhysicsSystem) updateSIMD(w *ecs.World, dt float32) {
	q := ecs.Query2Of[components.Transform, components.Velocity](w)
	entities := q.Entities()

	for i := 0; i < len(entities); i += simdBatch {
		end := i + simdBatch
		if end > len(entities) {
			end = len(entities)
		}
		for _, e := range entities[i:end] {
			if ecs.HasComponent[components.Static](w, e) {
				continue
			}
			t, _ := ecs.GetComponent[components.Transform](w, e)
			v, _ := ecs.GetComponent[components.Velocity](w, e)
			t.Position = t.Position.Add(v.Linear.Scale(dt))
		}
	}
}
