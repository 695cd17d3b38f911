package depot

import (
	"iter"

	"github.com/TheBitDrifter/mask"
	iter_util "github.com/TheBitDrifter/util/iter"
)

// Row2 is one result of a two-component query: an entity plus pointers to
// its first instance of each queried type.
type Row2[A, B any] struct {
	Entity EntityID
	A      *A
	B      *B
}

// Row3 is one result of a three-component query.
type Row3[A, B, C any] struct {
	Entity EntityID
	A      *A
	B      *B
	C      *C
}

// QueryEntities returns the ids of living entities holding every listed
// component type. Candidate order follows the first component's storage, so
// result order is unspecified. Querying a type with no storage yields an
// empty result, not an error.
func QueryEntities(w *World, comps ...Component) []EntityID {
	if len(comps) == 0 {
		return nil
	}
	driver := w.backend(comps[0].Key())
	if driver == nil {
		return nil
	}
	var queryMask mask.Mask
	for _, c := range comps {
		if w.backend(c.Key()) == nil {
			return nil
		}
		queryMask.Mark(c.Key())
	}
	matches := iter.Seq[EntityID](func(yield func(EntityID) bool) {
		for _, id := range driver.ids() {
			m, ok := w.registry[id]
			if !ok || !m.ContainsAll(queryMask) {
				continue
			}
			if !yield(id) {
				return
			}
		}
	})
	return iter_util.Collect(matches)
}

// Query2 yields full (entity, A, B) tuples for every entity present in both
// storages. The qualifying ids are collected up front, then resolved per id,
// so mutating through the yielded pointers is safe: no two live references
// alias and the id set is fixed before the first yield.
func Query2[A, B any](w *World, ca ComponentType[A], cb ComponentType[B]) iter.Seq[Row2[A, B]] {
	return func(yield func(Row2[A, B]) bool) {
		for _, id := range QueryEntities(w, ca, cb) {
			a, okA := ca.Get(w, id)
			b, okB := cb.Get(w, id)
			if !okA || !okB {
				continue
			}
			if !yield(Row2[A, B]{Entity: id, A: a, B: b}) {
				return
			}
		}
	}
}

// Query3 is Query2 extended to three component types; intersections chain.
func Query3[A, B, C any](w *World, ca ComponentType[A], cb ComponentType[B], cc ComponentType[C]) iter.Seq[Row3[A, B, C]] {
	return func(yield func(Row3[A, B, C]) bool) {
		for _, id := range QueryEntities(w, ca, cb, cc) {
			a, okA := ca.Get(w, id)
			b, okB := cb.Get(w, id)
			c, okC := cc.Get(w, id)
			if !okA || !okB || !okC {
				continue
			}
			if !yield(Row3[A, B, C]{Entity: id, A: a, B: b, C: c}) {
				return
			}
		}
	}
}
