package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type viewPos struct{ X float32 }
type viewVel struct{ DX float32 }
type viewTag struct{}
type viewHealth struct{ HP int }

func TestView1_IteratesEveryMatch(t *testing.T) {
	w := NewWorld(0)
	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	AddComponent(w, e1, viewPos{X: 1})
	AddComponent(w, e2, viewPos{X: 2})

	seen := map[Entity]float32{}
	for e, p := range View[viewPos](w).All() {
		seen[e] = p.X
	}

	assert.Equal(t, map[Entity]float32{e1: 1, e2: 2}, seen)
}

func TestView1_MutatesInPlace(t *testing.T) {
	w := NewWorld(0)
	e := w.CreateEntity()
	AddComponent(w, e, viewPos{X: 1})

	for _, p := range View[viewPos](w).All() {
		p.X += 10
	}

	v, _ := GetComponent[viewPos](w, e)
	assert.Equal(t, float32(11), v.X)
}

func TestView1_BreakStopsEarly(t *testing.T) {
	w := NewWorld(0)
	for i := 0; i < 5; i++ {
		e := w.CreateEntity()
		AddComponent(w, e, viewPos{X: float32(i)})
	}

	count := 0
	for range View[viewPos](w).All() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestView2_SkipsNonMatches(t *testing.T) {
	w := NewWorld(0)
	both := w.CreateEntity()
	onlyPos := w.CreateEntity()

	AddComponent(w, both, viewPos{X: 1})
	AddComponent(w, both, viewVel{DX: 5})
	AddComponent(w, onlyPos, viewPos{X: 2})

	view := View2Of[viewPos, viewVel](w)
	assert.Equal(t, 1, view.Count())
	assert.True(t, view.Any())

	for item := range view.All() {
		assert.Equal(t, both, item.Entity)
		item.A.X += item.B.DX
	}

	v, _ := GetComponent[viewPos](w, both)
	assert.Equal(t, float32(6), v.X)
}

func TestView2_EmptyIsNotAny(t *testing.T) {
	w := NewWorld(0)
	view := View2Of[viewPos, viewVel](w)
	assert.False(t, view.Any())
	assert.Equal(t, 0, view.Count())
}

func TestView3_MatchesAllThree(t *testing.T) {
	w := NewWorld(0)
	all3 := w.CreateEntity()
	missingTag := w.CreateEntity()

	AddComponent(w, all3, viewPos{X: 1})
	AddComponent(w, all3, viewVel{DX: 2})
	AddComponent(w, all3, viewTag{})

	AddComponent(w, missingTag, viewPos{X: 9})
	AddComponent(w, missingTag, viewVel{DX: 9})

	view := View3Of[viewPos, viewVel, viewTag](w)
	assert.Equal(t, 1, view.Count())

	for item := range view.All() {
		assert.Equal(t, all3, item.Entity)
	}
}

func TestView4_MatchesAllFour(t *testing.T) {
	w := NewWorld(0)
	e := w.CreateEntity()
	AddComponent(w, e, viewPos{X: 1})
	AddComponent(w, e, viewVel{DX: 2})
	AddComponent(w, e, viewTag{})
	AddComponent(w, e, viewHealth{HP: 10})

	view := View4Of[viewPos, viewVel, viewTag, viewHealth](w)
	assert.True(t, view.Any())

	for item := range view.All() {
		assert.Equal(t, 10, item.D.HP)
	}
}
