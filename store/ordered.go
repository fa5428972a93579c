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
	"github.com/google/btree"

	"github.com/erigontech/entitystore/bitset"
	"github.com/erigontech/entitystore/typeid"
)

// orderedEntry is the btree.BTreeG item: ordered purely by Key.
type orderedEntry struct {
	key Key
	box *typeid.Box
}

func orderedLess(a, b orderedEntry) bool { return a.key < b.key }

// orderedContainer is the OrderedMap backing: a balanced B-tree keyed by
// Key, iterating in ascending Key order, matching erigon-lib's own
// preference for B-tree-shaped ordered indexes (google/btree is a direct
// erigon-lib dependency).
type orderedContainer struct {
	t *btree.BTreeG[orderedEntry]
}

func newOrderedContainer() *orderedContainer {
	return &orderedContainer{t: btree.NewG(32, orderedLess)}
}

func (c *orderedContainer) get(k Key) (*typeid.Box, bool) {
	e, ok := c.t.Get(orderedEntry{key: k})
	if !ok {
		return nil, false
	}
	return e.box, true
}

func (c *orderedContainer) insert(k Key, b *typeid.Box) {
	c.t.ReplaceOrInsert(orderedEntry{key: k, box: b})
}

func (c *orderedContainer) remove(k Key) {
	c.t.Delete(orderedEntry{key: k})
}

func (c *orderedContainer) clear() {
	c.t.Clear(false)
}

func (c *orderedContainer) iterKeys(keys *bitset.KeyBitSet, yield func(Key) bool) {
	c.t.Ascend(func(e orderedEntry) bool {
		if !keys.Contains(e.key.ToU32()) {
			return true
		}
		return yield(e.key)
	})
}

func (c *orderedContainer) iterBindings(keys *bitset.KeyBitSet, yield func(Key, *typeid.Box) bool) {
	c.t.Ascend(func(e orderedEntry) bool {
		if !keys.Contains(e.key.ToU32()) {
			return true
		}
		return yield(e.key, e.box)
	})
}
