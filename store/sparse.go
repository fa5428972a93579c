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
	"github.com/erigontech/entitystore/bitset"
	"github.com/erigontech/entitystore/typeid"
	"github.com/erigontech/entitystore/internal/xmath"
)

// sparseGrowChunk is the minimum number of slots sparseContainer grows by
// at a time, so a single high key doesn't force a slot-by-slot reallocation
// dance.
const sparseGrowChunk = 256

// sparseContainer is the SparseVecMap backing: a directly-indexed slice
// where the key's uint32 form is the index. Absent slots hold nil; the only
// thing guarding a read from ever observing an absent slot as "present" is
// the enclosing typedBacking's live KeyBitSet — sparseContainer itself
// never reads an index outside the caller-supplied keys set.
type sparseContainer struct {
	slots []*typeid.Box
}

func newSparseContainer() *sparseContainer {
	return &sparseContainer{}
}

func (c *sparseContainer) ensureLen(n int) {
	if n <= len(c.slots) {
		return
	}
	grown := xmath.CeilDiv(n, sparseGrowChunk) * sparseGrowChunk
	next := make([]*typeid.Box, grown)
	copy(next, c.slots)
	c.slots = next
}

func (c *sparseContainer) get(k Key) (*typeid.Box, bool) {
	idx := int(k.ToU32())
	if idx >= len(c.slots) {
		return nil, false
	}
	b := c.slots[idx]
	return b, b != nil
}

func (c *sparseContainer) insert(k Key, b *typeid.Box) {
	idx := int(k.ToU32())
	c.ensureLen(idx + 1)
	c.slots[idx] = b
}

func (c *sparseContainer) remove(k Key) {
	idx := int(k.ToU32())
	if idx >= len(c.slots) {
		return
	}
	c.slots[idx] = nil
}

func (c *sparseContainer) clear() {
	c.slots = nil
}

func (c *sparseContainer) iterKeys(keys *bitset.KeyBitSet, yield func(Key) bool) {
	for u := range keys.Iter() {
		if !yield(KeyFromU32(u)) {
			return
		}
	}
}

func (c *sparseContainer) iterBindings(keys *bitset.KeyBitSet, yield func(Key, *typeid.Box) bool) {
	for u := range keys.Iter() {
		idx := int(u)
		if idx >= len(c.slots) || c.slots[idx] == nil {
			continue
		}
		if !yield(KeyFromU32(u), c.slots[idx]) {
			return
		}
	}
}
