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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/erigontech/entitystore/typeid"
)

func TestDefaultKindPicksSparseForSmallTypes(t *testing.T) {
	require.Equal(t, Sparse, defaultKind(1))
	require.Equal(t, Sparse, defaultKind(4))
	require.Equal(t, Hashed, defaultKind(8))
	require.Equal(t, Hashed, defaultKind(32))
}

func TestTypedBackingInsertGetDeleteRoundTrip(t *testing.T) {
	for _, knd := range []Kind{Ordered, Hashed, Sparse} {
		b := newTypedBacking(typeid.Of[int](), knd)

		require.False(t, b.has(Key(3)))
		b.insertBox(Key(3), typeid.NewBox(99))
		require.True(t, b.has(Key(3)))

		box, ok := b.getBox(Key(3))
		require.True(t, ok)
		v, ok := typeid.Downcast[int](box)
		require.True(t, ok)
		require.Equal(t, 99, v)

		b.deleteKey(Key(3))
		require.False(t, b.has(Key(3)))
		_, ok = b.getBox(Key(3))
		require.False(t, ok)
	}
}

// TestSparseBackingHandlesHighKeyWithoutReadingUninitializedSlots exercises
// the sparse container's hole safety: inserting a single far key must not
// make any lower, never-inserted key appear present.
func TestSparseBackingHandlesHighKeyWithoutReadingUninitializedSlots(t *testing.T) {
	b := newTypedBacking(typeid.Of[int](), Sparse)
	b.insertBox(Key(1000), typeid.NewBox(7))

	require.True(t, b.has(Key(1000)))
	for _, k := range []Key{0, 1, 500, 999, 1001} {
		require.False(t, b.has(k), "key %d must not be present", k)
	}

	seen := map[Key]bool{}
	b.iterKeys(func(k Key) bool {
		seen[k] = true
		return true
	})
	require.Equal(t, map[Key]bool{Key(1000): true}, seen)
}

func TestTypedBackingClearEmptiesButKeepsUsable(t *testing.T) {
	b := newTypedBacking(typeid.Of[int](), Hashed)
	b.insertBox(Key(1), typeid.NewBox(1))
	b.insertBox(Key(2), typeid.NewBox(2))
	b.clear()

	require.Equal(t, 0, b.keys().Len())
	b.insertBox(Key(1), typeid.NewBox(5))
	require.True(t, b.has(Key(1)))
}

func TestOrderedBackingIteratesAscending(t *testing.T) {
	b := newTypedBacking(typeid.Of[int](), Ordered)
	for _, k := range []Key{5, 1, 3, 2, 4} {
		b.insertBox(k, typeid.NewBox(int(k)))
	}

	var got []Key
	b.iterKeys(func(k Key) bool {
		got = append(got, k)
		return true
	})
	require.Equal(t, []Key{1, 2, 3, 4, 5}, got)
}

func TestHashedBackingGrowsAndKeepsAllEntries(t *testing.T) {
	b := newTypedBacking(typeid.Of[int](), Hashed)
	for i := uint32(0); i < 100; i++ {
		b.insertBox(Key(i), typeid.NewBox(int(i)))
	}
	require.Equal(t, 100, b.keys().Len())
	for i := uint32(0); i < 100; i++ {
		require.True(t, b.has(Key(i)))
	}
}
