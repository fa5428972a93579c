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

type position struct{ X, Y int }
type velocity struct{ DX, DY int }
type tag struct{}

func TestInsertGetRoundTrip(t *testing.T) {
	s := New()
	Insert(s, Key(1), position{X: 1, Y: 2})

	v, ok := Get[position](s, Key(1))
	require.True(t, ok)
	require.Equal(t, position{X: 1, Y: 2}, v)

	_, ok = Get[position](s, Key(2))
	require.False(t, ok)

	_, ok = Get[velocity](s, Key(1))
	require.False(t, ok)
}

func TestInsertReplacesExisting(t *testing.T) {
	s := New()
	Insert(s, Key(1), position{X: 1, Y: 1})
	Insert(s, Key(1), position{X: 9, Y: 9})

	v, ok := Get[position](s, Key(1))
	require.True(t, ok)
	require.Equal(t, position{X: 9, Y: 9}, v)
}

func TestGetMutObservesLiveMutation(t *testing.T) {
	s := New()
	Insert(s, Key(1), position{X: 0, Y: 0})

	p, ok := GetMut[position](s, Key(1))
	require.True(t, ok)
	p.X = 42

	v, ok := Get[position](s, Key(1))
	require.True(t, ok)
	require.Equal(t, 42, v.X)
}

func TestRemoveOnlyDeletesOwnType(t *testing.T) {
	s := New()
	Insert(s, Key(1), position{X: 1, Y: 1})
	Insert(s, Key(1), velocity{DX: 1, DY: 1})

	Remove[position](s, Key(1))

	_, ok := Get[position](s, Key(1))
	require.False(t, ok)
	_, ok = Get[velocity](s, Key(1))
	require.True(t, ok)
}

func TestRemoveKeyDeletesEverywhere(t *testing.T) {
	s := New()
	Insert(s, Key(1), position{X: 1, Y: 1})
	Insert(s, Key(1), velocity{DX: 1, DY: 1})
	Insert(s, Key(1), tag{})

	RemoveKey(s, Key(1))

	require.False(t, ContainsKey(s, Key(1)))
	_, ok := Get[position](s, Key(1))
	require.False(t, ok)
	_, ok = Get[velocity](s, Key(1))
	require.False(t, ok)
}

func TestClearKeepsBackingRegistered(t *testing.T) {
	s := New()
	Insert(s, Key(1), position{X: 1, Y: 1})
	Clear[position](s)

	require.True(t, ContainsType[position](s))
	require.False(t, ContainsTypeKey[position](s, Key(1)))
	require.Equal(t, 0, Keys[position](s).Len())
}

func TestRegisterBackingBeforeFirstInsert(t *testing.T) {
	s := New()
	err := RegisterBacking[position](s, Ordered)
	require.NoError(t, err)

	Insert(s, Key(5), position{X: 1, Y: 1})
	require.Equal(t, Ordered, s.typeMap[typeid.Of[position]()].kind())
}

func TestRegisterBackingAfterFirstInsertErrors(t *testing.T) {
	s := New()
	Insert(s, Key(1), position{X: 1, Y: 1})

	err := RegisterBacking[position](s, Ordered)
	require.Error(t, err)
}

func TestKeysUnionAcrossTypes(t *testing.T) {
	s := New()
	Insert(s, Key(1), position{})
	Insert(s, Key(2), velocity{})

	all := KeysAll(s)
	require.Equal(t, 2, all.Len())
	require.True(t, all.Contains(1))
	require.True(t, all.Contains(2))
}

func TestIterAllBindingsVisitsEveryTriple(t *testing.T) {
	s := New()
	Insert(s, Key(1), position{X: 1})
	Insert(s, Key(1), velocity{DX: 1})
	Insert(s, Key(2), position{X: 2})

	count := 0
	for range IterAllBindings(s) {
		count++
	}
	require.Equal(t, 3, count)
}

func TestIterBindingsAtFiltersToOneKey(t *testing.T) {
	s := New()
	Insert(s, Key(1), position{X: 1})
	Insert(s, Key(1), velocity{DX: 1})
	Insert(s, Key(2), position{X: 2})

	count := 0
	for b := range IterBindingsAt(s, Key(1)) {
		require.Equal(t, Key(1), b.Key)
		count++
	}
	require.Equal(t, 2, count)
}

func TestEmptyStoreYieldsNothing(t *testing.T) {
	s := New()

	require.Equal(t, 0, KeysAll(s).Len())
	_, ok := Get[position](s, Key(0))
	require.False(t, ok)
	require.False(t, ContainsKey(s, Key(0)))

	count := 0
	for range IterTypes(s) {
		count++
	}
	require.Equal(t, 0, count)

	count = 0
	for range IterAllBindings(s) {
		count++
	}
	require.Equal(t, 0, count)
}

func TestStringRendersSanitizedSections(t *testing.T) {
	s := New()
	Insert(s, Key(1), position{X: 1, Y: 2})

	out := s.String()
	require.Contains(t, out, "position:")
	require.NotContains(t, out, "github.com")
}
