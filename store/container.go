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

package store

import (
	"sync"

	"github.com/erigontech/entitystore/bitset"
	"github.com/erigontech/entitystore/typeid"
)

// container is the uniform get/insert/remove/clear/iterate contract every
// concrete backing container (OrderedMap, HashedMap, SparseVecMap)
// implements over (Key, *typeid.Box). It never sees T: type erasure already
// happened in the Box, so one non-generic interface covers all three
// variants and all three can live side by side in Store.typeMap.
type container interface {
	get(k Key) (*typeid.Box, bool)
	insert(k Key, b *typeid.Box) // always replaces any existing box for k
	remove(k Key)
	clear()
	iterKeys(keys *bitset.KeyBitSet, yield func(Key) bool)
	iterBindings(keys *bitset.KeyBitSet, yield func(Key, *typeid.Box) bool)
}

// typedBacking is the concrete anyBacking: one container plus the KeyBitSet
// mirror of its live keys and the borrow lock for a single field type.
type typedBacking struct {
	h    typeid.Handle
	knd  Kind
	mu   sync.RWMutex
	live *bitset.KeyBitSet
	data container
}

func newTypedBacking(h typeid.Handle, knd Kind) *typedBacking {
	var data container
	switch knd {
	case Ordered:
		data = newOrderedContainer()
	case Sparse:
		data = newSparseContainer()
	default:
		data = newHashedContainer()
	}
	return &typedBacking{h: h, knd: knd, live: bitset.New(), data: data}
}

func (b *typedBacking) kind() Kind            { return b.knd }
func (b *typedBacking) handle() typeid.Handle { return b.h }

func (b *typedBacking) has(k Key) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.live.Contains(k.ToU32())
}

func (b *typedBacking) getBox(k Key) (*typeid.Box, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.live.Contains(k.ToU32()) {
		return nil, false
	}
	return b.data.get(k)
}

// insertBox replaces any existing box for k and keeps live in sync with data.
func (b *typedBacking) insertBox(k Key, box *typeid.Box) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data.insert(k, box)
	b.live.Add(k.ToU32())
}

func (b *typedBacking) deleteKey(k Key) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.live.Contains(k.ToU32()) {
		return
	}
	b.data.remove(k)
	b.live.Remove(k.ToU32())
}

func (b *typedBacking) clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data.clear()
	b.live.Clear()
}

func (b *typedBacking) keys() *bitset.KeyBitSet {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.live.Clone()
}

func (b *typedBacking) iterKeys(yield func(Key) bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	b.data.iterKeys(b.live.Clone(), yield)
}

func (b *typedBacking) iterBindings(yield func(Key, *typeid.Box) bool) {
	b.mu.RLock()
	live := b.live.Clone()
	defer b.mu.RUnlock()
	b.data.iterBindings(live, yield)
}

// b.mu guards the brief span of each get/insert/remove against concurrent
// mutation of the same Backing. It is not held across a caller's use of a
// returned *T — Go has no borrow checker to scope that lifetime to, so
// nothing here prevents a caller from racing itself across goroutines; what
// it does guarantee is that two positions in one query signature can never
// legitimately request conflicting access to the same Backing, because
// query.validateTerms rejects that combination at construction time before
// any lock is ever taken.
