// Package optimizer adjusts a VariantSystem's active execution strategy at
// runtime based on live entity counts, so a system written once can run
// scalar at small scale and switch to a wider strategy once it would pay
// off.
package optimizer

import (
	"go.uber.org/zap"

	"github.com/autophage/engine/ecs"
	"github.com/autophage/engine/internal/xlog"
)

// Thresholds configures when Controller switches a system's variant.
type Thresholds struct {
	ScaleUpEntities   int
	ScaleDownEntities int
}

// DefaultThresholds matches the engine's shipped configuration defaults:
// scale up past 500 entities, scale back down below 100.
func DefaultThresholds() Thresholds {
	return Thresholds{ScaleUpEntities: 500, ScaleDownEntities: 100}
}

// Controller watches one VariantSystem and switches it between Scalar and
// SIMD based on entity count, at most once per Tick call. Logging goes
// through the process-wide xlog logger.
type Controller struct {
	system     ecs.VariantSystem
	thresholds Thresholds
}

// NewController returns a Controller driving system under thresholds.
func NewController(system ecs.VariantSystem, thresholds Thresholds) *Controller {
	return &Controller{system: system, thresholds: thresholds}
}

// Tick evaluates entityCount against the configured thresholds and switches
// the controlled system's variant at most once: Scalar to SIMD once
// entityCount exceeds ScaleUpEntities, or SIMD back to Scalar once
// entityCount drops below ScaleDownEntities. Entity counts between the two
// thresholds never trigger a switch, avoiding oscillation at the boundary.
// A rejected switch (the system doesn't support the target variant) is
// logged and leaves the active variant untouched.
func (c *Controller) Tick(entityCount int) {
	current := c.system.ActiveVariant()

	var target ecs.Variant
	switch {
	case entityCount > c.thresholds.ScaleUpEntities && current == ecs.Scalar:
		target = ecs.SIMD
	case entityCount < c.thresholds.ScaleDownEntities && current == ecs.SIMD:
		target = ecs.Scalar
	default:
		return
	}

	if !c.system.SetVariant(target) {
		xlog.L().Warn("optimizer: variant switch rejected",
			zap.String("from", current.String()),
			zap.String("to", target.String()),
			zap.Int("entity_count", entityCount),
		)
		return
	}

	xlog.L().Info("optimizer: switched variant",
		zap.String("from", current.String()),
		zap.String("to", target.String()),
		zap.Int("entity_count", entityCount),
	)
}

// ActiveVariant returns the controlled system's current variant.
func (c *Controller) ActiveVariant() ecs.Variant {
	return c.system.ActiveVariant()
}
