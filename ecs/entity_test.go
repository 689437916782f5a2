package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityManager_CreateAssignsGenerationOne(t *testing.T) {
	m := NewEntityManager(0)
	e := m.Create()
	assert.Equal(t, uint32(0), e.Index)
	assert.Equal(t, uint32(1), e.Generation)
	assert.True(t, e.Valid())
}

func TestEntityManager_DestroyThenRecreateBumpsGeneration(t *testing.T) {
	m := NewEntityManager(0)
	e1 := m.Create()
	require.True(t, m.Destroy(e1))

	e2 := m.Create()
	assert.Equal(t, e1.Index, e2.Index)
	assert.Equal(t, uint32(2), e2.Generation)
	assert.False(t, m.IsAlive(e1))
	assert.True(t, m.IsAlive(e2))
}

func TestEntityManager_RecyclingIsLIFO(t *testing.T) {
	m := NewEntityManager(0)
	a := m.Create()
	b := m.Create()
	c := m.Create()

	require.True(t, m.Destroy(a))
	require.True(t, m.Destroy(b))
	require.True(t, m.Destroy(c))

	r1 := m.Create()
	r2 := m.Create()
	r3 := m.Create()

	assert.Equal(t, c.Index, r1.Index)
	assert.Equal(t, b.Index, r2.Index)
	assert.Equal(t, a.Index, r3.Index)
}

func TestEntityManager_DestroyUnknownIsNoOp(t *testing.T) {
	m := NewEntityManager(0)
	e := Entity{Index: 7, Generation: 1}
	assert.False(t, m.Destroy(e))
	assert.False(t, m.IsAlive(e))
}

func TestEntityManager_AliveCountAndCapacity(t *testing.T) {
	m := NewEntityManager(0)
	e1 := m.Create()
	m.Create()
	assert.Equal(t, 2, m.AliveCount())
	assert.Equal(t, 2, m.Capacity())

	m.Destroy(e1)
	assert.Equal(t, 1, m.AliveCount())
	assert.Equal(t, 2, m.Capacity())
	assert.Equal(t, 1, m.RecycledCount())
}

func TestEntityManager_ClearResetsToFresh(t *testing.T) {
	m := NewEntityManager(0)
	m.Create()
	m.Create()
	m.Clear()

	assert.Equal(t, 0, m.AliveCount())
	assert.Equal(t, 0, m.Capacity())

	e := m.Create()
	assert.Equal(t, uint32(0), e.Index)
	assert.Equal(t, uint32(1), e.Generation)
}

func TestEntityManager_ForEachVisitsAliveInOrder(t *testing.T) {
	m := NewEntityManager(0)
	e1 := m.Create()
	e2 := m.Create()
	e3 := m.Create()
	m.Destroy(e2)

	var seen []Entity
	m.ForEach(func(e Entity) { seen = append(seen, e) })

	assert.Equal(t, []Entity{e1, e3}, seen)
}

func TestInvalidEntity(t *testing.T) {
	assert.False(t, InvalidEntity.Valid())
}
