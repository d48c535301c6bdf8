// SPDX-License-Identifier: MIT

package hull

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// idSet is a set of 32-bit identifiers backed by a roaring bitmap. It holds
// a facet's above-set (point ids) and a point's back-references (facet ids).
// Iteration is in ascending order.
type idSet[T ~uint32] struct {
	rb *roaring.Bitmap
}

func newIDSet[T ~uint32]() idSet[T] {
	return idSet[T]{rb: roaring.New()}
}

// add inserts id and reports whether it was absent.
func (s idSet[T]) add(id T) bool { return s.rb.CheckedAdd(uint32(id)) }

// remove deletes id and reports whether it was present.
func (s idSet[T]) remove(id T) bool { return s.rb.CheckedRemove(uint32(id)) }

func (s idSet[T]) contains(id T) bool { return s.rb.Contains(uint32(id)) }

func (s idSet[T]) isEmpty() bool { return s.rb.IsEmpty() }

func (s idSet[T]) len() int { return int(s.rb.GetCardinality()) }

func (s idSet[T]) clone() idSet[T] { return idSet[T]{rb: s.rb.Clone()} }

// union returns a new set holding s ∪ o.
func (s idSet[T]) union(o idSet[T]) idSet[T] { return idSet[T]{rb: roaring.Or(s.rb, o.rb)} }

// merge adds every id of o to s in place.
func (s idSet[T]) merge(o idSet[T]) { s.rb.Or(o.rb) }

func (s idSet[T]) all() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(T(it.Next())) {
				return
			}
		}
	}
}

func (s idSet[T]) slice() []T {
	out := make([]T, 0, s.len())
	for id := range s.all() {
		out = append(out, id)
	}

	return out
}
