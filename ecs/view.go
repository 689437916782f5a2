package ecs

import "iter"

// View1 is a non-allocating iterator over every entity holding a single
// component type. Unlike Query1.ForEach, which drives a callback, View1.All
// returns a range-over-func sequence: the caller pulls one entity at a time
// and may break out of the loop early without having visited the rest.
type View1[A any] struct {
	a *ComponentArray[A]
}

// NewView1 constructs a view over component A.
func NewView1[A any](w *World) View1[A] {
	return View1[A]{a: arrayFor[A](w.components)}
}

// All yields every entity holding A, in dense storage order.
func (v View1[A]) All() iter.Seq2[Entity, *A] {
	return func(yield func(Entity, *A) bool) {
		entities := v.a.Entities()
		for i := range entities {
			if !yield(entities[i], &v.a.dense[i]) {
				return
			}
		}
	}
}

// Count returns the number of matching entities.
func (v View1[A]) Count() int { return v.a.Len() }

// Any reports whether at least one entity matches.
func (v View1[A]) Any() bool { return v.a.Len() > 0 }

// View2Item is one entity's pair of matched components, yielded by View2.All.
type View2Item[A, B any] struct {
	Entity Entity
	A      *A
	B      *B
}

// View2 is a non-allocating iterator over every entity holding both A and B.
// A is the primary array: iteration walks A's dense storage and skips any
// entity lacking B, the same lazy skip-invalid strategy a forward iterator
// over a sparse set uses.
type View2[A, B any] struct {
	a *ComponentArray[A]
	b *ComponentArray[B]
}

// NewView2 constructs a view over components A and B.
func NewView2[A, B any](w *World) View2[A, B] {
	return View2[A, B]{a: arrayFor[A](w.components), b: arrayFor[B](w.components)}
}

// All yields every entity holding both components, skipping non-matches
// lazily as the sequence is pulled.
func (v View2[A, B]) All() iter.Seq[View2Item[A, B]] {
	return func(yield func(View2Item[A, B]) bool) {
		entities := v.a.Entities()
		for i := range entities {
			e := entities[i]
			bv, ok := v.b.Get(e)
			if !ok {
				continue
			}
			if !yield(View2Item[A, B]{Entity: e, A: &v.a.dense[i], B: bv}) {
				return
			}
		}
	}
}

// Count returns the number of matching entities.
func (v View2[A, B]) Count() int {
	n := 0
	for range v.All() {
		n++
	}
	return n
}

// Any reports whether at least one entity matches.
func (v View2[A, B]) Any() bool {
	for range v.All() {
		return true
	}
	return false
}

// View3Item is one entity's matched components, yielded by View3.All.
type View3Item[A, B, C any] struct {
	Entity Entity
	A      *A
	B      *B
	C      *C
}

// View3 is a non-allocating iterator over every entity holding A, B, and C.
type View3[A, B, C any] struct {
	a *ComponentArray[A]
	b *ComponentArray[B]
	c *ComponentArray[C]
}

// NewView3 constructs a view over components A, B, and C.
func NewView3[A, B, C any](w *World) View3[A, B, C] {
	return View3[A, B, C]{
		a: arrayFor[A](w.components),
		b: arrayFor[B](w.components),
		c: arrayFor[C](w.components),
	}
}

// All yields every entity holding all three components, skipping non-matches
// lazily as the sequence is pulled.
func (v View3[A, B, C]) All() iter.Seq[View3Item[A, B, C]] {
	return func(yield func(View3Item[A, B, C]) bool) {
		entities := v.a.Entities()
		for i := range entities {
			e := entities[i]
			bv, ok := v.b.Get(e)
			if !ok {
				continue
			}
			cv, ok := v.c.Get(e)
			if !ok {
				continue
			}
			if !yield(View3Item[A, B, C]{Entity: e, A: &v.a.dense[i], B: bv, C: cv}) {
				return
			}
		}
	}
}

// Count returns the number of matching entities.
func (v View3[A, B, C]) Count() int {
	n := 0
	for range v.All() {
		n++
	}
	return n
}

// Any reports whether at least one entity matches.
func (v View3[A, B, C]) Any() bool {
	for range v.All() {
		return true
	}
	return false
}

// View4Item is one entity's matched components, yielded by View4.All.
type View4Item[A, B, C, D any] struct {
	Entity Entity
	A      *A
	B      *B
	C      *C
	D      *D
}

// View4 is a non-allocating iterator over every entity holding A, B, C, and D.
type View4[A, B, C, D any] struct {
	a *ComponentArray[A]
	b *ComponentArray[B]
	c *ComponentArray[C]
	d *ComponentArray[D]
}

// NewView4 constructs a view over four component types.
func NewView4[A, B, C, D any](w *World) View4[A, B, C, D] {
	return View4[A, B, C, D]{
		a: arrayFor[A](w.components),
		b: arrayFor[B](w.components),
		c: arrayFor[C](w.components),
		d: arrayFor[D](w.components),
	}
}

// All yields every entity holding all four components, skipping non-matches
// lazily as the sequence is pulled.
func (v View4[A, B, C, D]) All() iter.Seq[View4Item[A, B, C, D]] {
	return func(yield func(View4Item[A, B, C, D]) bool) {
		entities := v.a.Entities()
		for i := range entities {
			e := entities[i]
			bv, ok := v.b.Get(e)
			if !ok {
				continue
			}
			cv, ok := v.c.Get(e)
			if !ok {
				continue
			}
			dv, ok := v.d.Get(e)
			if !ok {
				continue
			}
			if !yield(View4Item[A, B, C, D]{Entity: e, A: &v.a.dense[i], B: bv, C: cv, D: dv}) {
				return
			}
		}
	}
}

// Count returns the number of matching entities.
func (v View4[A, B, C, D]) Count() int {
	n := 0
	for range v.All() {
		n++
	}
	return n
}

// Any reports whether at least one entity matches.
func (v View4[A, B, C, D]) Any() bool {
	for range v.All() {
		return true
	}
	return false
}
