package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type position struct{ X, Y float32 }

func TestComponentArray_SetAndGet(t *testing.T) {
	arr := NewComponentArray[position]()
	m := NewEntityManager(0)
	e := m.Create()

	arr.Set(e, position{1, 2})
	v, ok := arr.Get(e)
	require.True(t, ok)
	assert.Equal(t, position{1, 2}, *v)
	assert.Equal(t, 1, arr.Len())
}

func TestComponentArray_SetReplacesInPlace(t *testing.T) {
	arr := NewComponentArray[position]()
	m := NewEntityManager(0)
	e := m.Create()

	arr.Set(e, position{1, 2})
	arr.Set(e, position{3, 4})

	assert.Equal(t, 1, arr.Len())
	v, _ := arr.Get(e)
	assert.Equal(t, position{3, 4}, *v)
}

func TestComponentArray_RemoveSwapsWithLast(t *testing.T) {
	arr := NewComponentArray[position]()
	m := NewEntityManager(0)
	e1 := m.Create()
	e2 := m.Create()
	e3 := m.Create()

	arr.Set(e1, position{1, 0})
	arr.Set(e2, position{2, 0})
	arr.Set(e3, position{3, 0})

	arr.Remove(e1)

	assert.Equal(t, 2, arr.Len())
	assert.False(t, arr.Has(e1))
	assert.True(t, arr.Has(e2))
	assert.True(t, arr.Has(e3))

	v2, _ := arr.Get(e2)
	v3, _ := arr.Get(e3)
	assert.Equal(t, position{2, 0}, *v2)
	assert.Equal(t, position{3, 0}, *v3)
}

func TestComponentArray_RemoveIsIdempotent(t *testing.T) {
	arr := NewComponentArray[position]()
	m := NewEntityManager(0)
	e := m.Create()
	arr.Set(e, position{1, 1})

	arr.Remove(e)
	assert.NotPanics(t, func() { arr.Remove(e) })
	assert.Equal(t, 0, arr.Len())
}

func TestComponentArray_ForEachDenseOrder(t *testing.T) {
	arr := NewComponentArray[position]()
	m := NewEntityManager(0)
	e1 := m.Create()
	e2 := m.Create()
	arr.Set(e1, position{1, 0})
	arr.Set(e2, position{2, 0})

	var seen []Entity
	arr.ForEach(func(e Entity, p *position) {
		seen = append(seen, e)
		p.X *= 10
	})

	assert.Equal(t, []Entity{e1, e2}, seen)
	v1, _ := arr.Get(e1)
	assert.Equal(t, float32(10), v1.X)
}

func TestComponentArray_DataIsContiguous(t *testing.T) {
	arr := NewComponentArray[position]()
	m := NewEntityManager(0)
	for i := 0; i < 5; i++ {
		arr.Set(m.Create(), position{float32(i), 0})
	}
	assert.Len(t, arr.Data(), 5)
}

func TestComponentArray_ClearEmptiesArray(t *testing.T) {
	arr := NewComponentArray[position]()
	m := NewEntityManager(0)
	e := m.Create()
	arr.Set(e, position{1, 1})
	arr.Clear()
	assert.Equal(t, 0, arr.Len())
	assert.False(t, arr.Has(e))
}
