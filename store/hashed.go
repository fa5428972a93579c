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
	"github.com/spaolacci/murmur3"

	"github.com/erigontech/entitystore/bitset"
	"github.com/erigontech/entitystore/typeid"
)

type hashedEntry struct {
	key Key
	box *typeid.Box
}

// hashedContainer is the HashedMap backing: a bucketed hash table hashed
// with murmur3 (a non-cryptographic, FNV-class hasher), growing by doubling
// once the load factor crosses 1. Iteration order is bucket order,
// unspecified but stable across a single snapshot.
type hashedContainer struct {
	buckets [][]hashedEntry
	count   int
}

const hashedInitialBuckets = 16

func newHashedContainer() *hashedContainer {
	return &hashedContainer{buckets: make([][]hashedEntry, hashedInitialBuckets)}
}

func (c *hashedContainer) bucketIndex(k Key, numBuckets int) int {
	var buf [4]byte
	u := k.ToU32()
	buf[0] = byte(u)
	buf[1] = byte(u >> 8)
	buf[2] = byte(u >> 16)
	buf[3] = byte(u >> 24)
	h := murmur3.Sum32(buf[:])
	return int(h) % numBuckets
}

func (c *hashedContainer) get(k Key) (*typeid.Box, bool) {
	idx := c.bucketIndex(k, len(c.buckets))
	for _, e := range c.buckets[idx] {
		if e.key == k {
			return e.box, true
		}
	}
	return nil, false
}

func (c *hashedContainer) insert(k Key, b *typeid.Box) {
	idx := c.bucketIndex(k, len(c.buckets))
	for i, e := range c.buckets[idx] {
		if e.key == k {
			c.buckets[idx][i].box = b
			return
		}
	}
	c.buckets[idx] = append(c.buckets[idx], hashedEntry{key: k, box: b})
	c.count++
	if c.count > len(c.buckets) {
		c.grow()
	}
}

func (c *hashedContainer) grow() {
	next := make([][]hashedEntry, len(c.buckets)*2)
	old := c.buckets
	c.buckets = next
	for _, bucket := range old {
		for _, e := range bucket {
			idx := c.bucketIndex(e.key, len(c.buckets))
			c.buckets[idx] = append(c.buckets[idx], e)
		}
	}
}

func (c *hashedContainer) remove(k Key) {
	idx := c.bucketIndex(k, len(c.buckets))
	bucket := c.buckets[idx]
	for i, e := range bucket {
		if e.key == k {
			c.buckets[idx] = append(bucket[:i], bucket[i+1:]...)
			c.count--
			return
		}
	}
}

func (c *hashedContainer) clear() {
	c.buckets = make([][]hashedEntry, hashedInitialBuckets)
	c.count = 0
}

func (c *hashedContainer) iterKeys(keys *bitset.KeyBitSet, yield func(Key) bool) {
	for _, bucket := range c.buckets {
		for _, e := range bucket {
			if !keys.Contains(e.key.ToU32()) {
				continue
			}
			if !yield(e.key) {
				return
			}
		}
	}
}

func (c *hashedContainer) iterBindings(keys *bitset.KeyBitSet, yield func(Key, *typeid.Box) bool) {
	for _, bucket := range c.buckets {
		for _, e := range bucket {
			if !keys.Contains(e.key.ToU32()) {
				continue
			}
			if !yield(e.key, e.box) {
				return
			}
		}
	}
}
