package ecs

// Query1 iterates entities holding a single component type. Queries over
// more component types (Query2..Query4) additionally intersect membership
// against the primary array's dense entities, so the primary array should be
// the smallest of the set for best performance — by convention, the first
// type argument is always the primary array, rather than measuring array
// sizes at construction time.
type Query1[A any] struct {
	a *ComponentArray[A]
}

// NewQuery1 constructs a query over component A.
func NewQuery1[A any](w *World) Query1[A] {
	return Query1[A]{a: arrayFor[A](w.components)}
}

// ForEach streams every matching entity with no allocation.
func (q Query1[A]) ForEach(fn func(Entity, *A)) {
	q.a.ForEach(fn)
}

// Entities materializes the matching entity set.
func (q Query1[A]) Entities() []Entity {
	out := make([]Entity, len(q.a.Entities()))
	copy(out, q.a.Entities())
	return out
}

// Count returns the number of matching entities.
func (q Query1[A]) Count() int { return q.a.Len() }

// Any reports whether at least one entity matches.
func (q Query1[A]) Any() bool { return q.a.Len() > 0 }

// Query2 iterates entities holding both A and B.
type Query2[A, B any] struct {
	a *ComponentArray[A]
	b *ComponentArray[B]
}

// NewQuery2 constructs a query over components A and B.
func NewQuery2[A, B any](w *World) Query2[A, B] {
	return Query2[A, B]{a: arrayFor[A](w.components), b: arrayFor[B](w.components)}
}

// ForEach streams every entity holding both components, with no allocation.
func (q Query2[A, B]) ForEach(fn func(Entity, *A, *B)) {
	q.a.ForEach(func(e Entity, av *A) {
		if bv, ok := q.b.Get(e); ok {
			fn(e, av, bv)
		}
	})
}

// Entities materializes the matching entity set.
func (q Query2[A, B]) Entities() []Entity {
	var out []Entity
	q.ForEach(func(e Entity, _ *A, _ *B) { out = append(out, e) })
	return out
}

// Count returns the number of matching entities.
func (q Query2[A, B]) Count() int {
	n := 0
	q.ForEach(func(Entity, *A, *B) { n++ })
	return n
}

// Any reports whether at least one entity matches.
func (q Query2[A, B]) Any() bool {
	found := false
	q.a.ForEach(func(e Entity, _ *A) {
		if !found && q.b.Has(e) {
			found = true
		}
	})
	return found
}

// Query3 iterates entities holding A, B, and C.
type Query3[A, B, C any] struct {
	a *ComponentArray[A]
	b *ComponentArray[B]
	c *ComponentArray[C]
}

// NewQuery3 constructs a query over components A, B, and C.
func NewQuery3[A, B, C any](w *World) Query3[A, B, C] {
	return Query3[A, B, C]{
		a: arrayFor[A](w.components),
		b: arrayFor[B](w.components),
		c: arrayFor[C](w.components),
	}
}

// ForEach streams every entity holding all three components.
func (q Query3[A, B, C]) ForEach(fn func(Entity, *A, *B, *C)) {
	q.a.ForEach(func(e Entity, av *A) {
		bv, ok := q.b.Get(e)
		if !ok {
			return
		}
		cv, ok := q.c.Get(e)
		if !ok {
			return
		}
		fn(e, av, bv, cv)
	})
}

// Entities materializes the matching entity set.
func (q Query3[A, B, C]) Entities() []Entity {
	var out []Entity
	q.ForEach(func(e Entity, _ *A, _ *B, _ *C) { out = append(out, e) })
	return out
}

// Count returns the number of matching entities.
func (q Query3[A, B, C]) Count() int {
	n := 0
	q.ForEach(func(Entity, *A, *B, *C) { n++ })
	return n
}

// Any reports whether at least one entity matches.
func (q Query3[A, B, C]) Any() bool {
	found := false
	q.ForEach(func(Entity, *A, *B, *C) { found = true })
	return found
}

// Query4 iterates entities holding A, B, C, and D.
type Query4[A, B, C, D any] struct {
	a *ComponentArray[A]
	b *ComponentArray[B]
	c *ComponentArray[C]
	d *ComponentArray[D]
}

// NewQuery4 constructs a query over four component types.
func NewQuery4[A, B, C, D any](w *World) Query4[A, B, C, D] {
	return Query4[A, B, C, D]{
		a: arrayFor[A](w.components),
		b: arrayFor[B](w.components),
		c: arrayFor[C](w.components),
		d: arrayFor[D](w.components),
	}
}

// ForEach streams every entity holding all four components.
func (q Query4[A, B, C, D]) ForEach(fn func(Entity, *A, *B, *C, *D)) {
	q.a.ForEach(func(e Entity, av *A) {
		bv, ok := q.b.Get(e)
		if !ok {
			return
		}
		cv, ok := q.c.Get(e)
		if !ok {
			return
		}
		dv, ok := q.d.Get(e)
		if !ok {
			return
		}
		fn(e, av, bv, cv, dv)
	})
}

// Entities materializes the matching entity set.
func (q Query4[A, B, C, D]) Entities() []Entity {
	var out []Entity
	q.ForEach(func(e Entity, _ *A, _ *B, _ *C, _ *D) { out = append(out, e) })
	return out
}

// Count returns the number of matching entities.
func (q Query4[A, B, C, D]) Count() int {
	n := 0
	q.ForEach(func(Entity, *A, *B, *C, *D) { n++ })
	return n
}

// Any reports whether at least one entity matches.
func (q Query4[A, B, C, D]) Any() bool {
	found := false
	q.ForEach(func(Entity, *A, *B, *C, *D) { found = true })
	return found
}
