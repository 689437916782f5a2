package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autophage/engine/ecs"
)

type fakeVariantSystem struct {
	ecs.BaseSystem
	variant   ecs.Variant
	available []ecs.Variant
}

func newFakeVariantSystem() *fakeVariantSystem {
	return &fakeVariantSystem{
		BaseSystem: ecs.NewBaseSystem("fake"),
		variant:    ecs.Scalar,
		available:  []ecs.Variant{ecs.Scalar, ecs.SIMD},
	}
}

func (f *fakeVariantSystem) Init(*ecs.World) error            { return nil }
func (f *fakeVariantSystem) Update(*ecs.World, float32)       {}
func (f *fakeVariantSystem) Shutdown(*ecs.World)              {}
func (f *fakeVariantSystem) ActiveVariant() ecs.Variant       { return f.variant }
func (f *fakeVariantSystem) AvailableVariants() []ecs.Variant { return f.available }

func (f *fakeVariantSystem) SetVariant(v ecs.Variant) bool {
	for _, a := range f.available {
		if a == v {
			f.variant = v
			return true
		}
	}
	return false
}

func TestController_ScalesUpPastThreshold(t *testing.T) {
	sys := newFakeVariantSystem()
	c := NewController(sys, DefaultThresholds())

	c.Tick(600)
	assert.Equal(t, ecs.SIMD, c.ActiveVariant())
}

func TestController_ScalesDownBelowThreshold(t *testing.T) {
	sys := newFakeVariantSystem()
	sys.SetVariant(ecs.SIMD)
	c := NewController(sys, DefaultThresholds())

	c.Tick(50)
	assert.Equal(t, ecs.Scalar, c.ActiveVariant())
}

func TestController_NoSwitchInDeadZone(t *testing.T) {
	sys := newFakeVariantSystem()
	c := NewController(sys, DefaultThresholds())

	c.Tick(250)
	assert.Equal(t, ecs.Scalar, c.ActiveVariant())
}

func TestController_FullScenario_ScaleUpThenDown(t *testing.T) {
	sys := newFakeVariantSystem()
	c := NewController(sys, DefaultThresholds())

	c.Tick(600)
	assert.Equal(t, ecs.SIMD, c.ActiveVariant())

	c.Tick(50)
	assert.Equal(t, ecs.Scalar, c.ActiveVariant())
}

func TestController_RejectsUnsupportedVariant(t *testing.T) {
	sys := &fakeVariantSystem{
		BaseSystem: ecs.NewBaseSystem("fake"),
		variant:    ecs.Scalar,
		available:  []ecs.Variant{ecs.Scalar},
	}
	c := NewController(sys, DefaultThresholds())

	c.Tick(600)
	assert.Equal(t, ecs.Scalar, c.ActiveVariant())
}
