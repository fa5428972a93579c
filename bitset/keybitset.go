// Copyright 2024 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

// Package bitset implements KeyBitSet, the compact set of entity keys used
// throughout the store to mirror a Backing's live keys and to drive the
// query engine's join algebra. It is a thin wrapper over a Roaring bitmap,
// the same compressed-bitmap family erigon-lib uses to encode history
// shards (see erigon-lib/kv's AccountsHistory/StorageHistory layout notes).
package bitset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// KeyBitSet is a compact, ordered set of uint32 keys.
type KeyBitSet struct {
	bm *roaring.Bitmap
}

// MaxUsableKey is the largest key guaranteed usable across backings: Roaring
// reserves math.MaxUint32 as an internal sentinel in some encodings, so
// entity keys top out one below it.
const MaxUsableKey = uint32(1<<32-1) - 1

// New returns an empty KeyBitSet.
func New() *KeyBitSet {
	return &KeyBitSet{bm: roaring.New()}
}

// FromSlice builds a KeyBitSet containing exactly the given keys.
func FromSlice(keys []uint32) *KeyBitSet {
	bm := roaring.New()
	bm.AddMany(keys)
	return &KeyBitSet{bm: bm}
}

// Add inserts k into the set. Idempotent.
func (s *KeyBitSet) Add(k uint32) {
	s.bm.Add(k)
}

// Remove deletes k from the set. No-op if absent.
func (s *KeyBitSet) Remove(k uint32) {
	s.bm.Remove(k)
}

// Contains reports whether k is a member.
func (s *KeyBitSet) Contains(k uint32) bool {
	return s.bm.Contains(k)
}

// Clear empties the set in place.
func (s *KeyBitSet) Clear() {
	s.bm.Clear()
}

// Len returns the number of members.
func (s *KeyBitSet) Len() int {
	return int(s.bm.GetCardinality())
}

// Clone returns an independent copy.
func (s *KeyBitSet) Clone() *KeyBitSet {
	return &KeyBitSet{bm: s.bm.Clone()}
}

// Iter yields members in ascending order.
func (s *KeyBitSet) Iter() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := s.bm.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// ToSlice materializes the set's members in ascending order.
func (s *KeyBitSet) ToSlice() []uint32 {
	return s.bm.ToArray()
}

// Union returns the union of all given sets. An empty argument list
// returns an empty set.
func Union(sets ...*KeyBitSet) *KeyBitSet {
	bms := make([]*roaring.Bitmap, len(sets))
	for i, s := range sets {
		bms[i] = s.bm
	}
	return &KeyBitSet{bm: roaring.FastOr(bms...)}
}

// Intersect returns the intersection of all given sets. An empty argument
// list returns an empty set (not a universe) since KeyBitSet has no
// implicit universe to intersect against.
func Intersect(sets ...*KeyBitSet) *KeyBitSet {
	if len(sets) == 0 {
		return New()
	}
	out := sets[0].bm.Clone()
	for _, s := range sets[1:] {
		out.And(s.bm)
	}
	return &KeyBitSet{bm: out}
}

// AndNot returns the members of a that are not members of b (set
// difference), used to compute the complement of an Absent position's
// keyset relative to a bounded candidate set.
func AndNot(a, b *KeyBitSet) *KeyBitSet {
	out := a.bm.Clone()
	out.AndNot(b.bm)
	return &KeyBitSet{bm: out}
}

// Equal reports whether a and b contain exactly the same members.
func Equal(a, b *KeyBitSet) bool {
	return a.bm.Equals(b.bm)
}
