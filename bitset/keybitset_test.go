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

package bitset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyBitSetAddContainsRemove(t *testing.T) {
	s := New()
	require.False(t, s.Contains(5))

	s.Add(5)
	s.Add(7)
	require.True(t, s.Contains(5))
	require.True(t, s.Contains(7))
	require.Equal(t, 2, s.Len())

	s.Remove(5)
	require.False(t, s.Contains(5))
	require.Equal(t, 1, s.Len())
}

func TestKeyBitSetUnionIntersect(t *testing.T) {
	a := FromSlice([]uint32{1, 2, 3})
	b := FromSlice([]uint32{2, 3, 4})

	u := Union(a, b)
	require.Equal(t, []uint32{1, 2, 3, 4}, u.ToSlice())

	i := Intersect(a, b)
	require.Equal(t, []uint32{2, 3}, i.ToSlice())

	d := AndNot(a, b)
	require.Equal(t, []uint32{1}, d.ToSlice())
}

func TestKeyBitSetEmptyIntersectIsEmpty(t *testing.T) {
	require.Equal(t, 0, Intersect().Len())
}

func TestKeyBitSetIterAscending(t *testing.T) {
	s := FromSlice([]uint32{9, 1, 5})
	var got []uint32
	for k := range s.Iter() {
		got = append(got, k)
	}
	require.Equal(t, []uint32{1, 5, 9}, got)
}

func TestKeyBitSetCloneIndependence(t *testing.T) {
	a := FromSlice([]uint32{1})
	b := a.Clone()
	b.Add(2)
	require.Equal(t, 1, a.Len())
	require.Equal(t, 2, b.Len())
}

func TestKeyBitSetEqual(t *testing.T) {
	a := FromSlice([]uint32{1, 2})
	b := FromSlice([]uint32{2, 1})
	require.True(t, Equal(a, b))
}

func TestKeyBitSetBoundaryKeys(t *testing.T) {
	s := New()
	s.Add(0)
	s.Add(MaxUsableKey)
	require.True(t, s.Contains(0))
	require.True(t, s.Contains(MaxUsableKey))
	require.Equal(t, 2, s.Len())
}
