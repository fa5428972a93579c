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

package assembler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/erigontech/entitystore/store"
)

func TestAssemblerBuildsAllThreeFields(t *testing.T) {
	s := store.New()

	a := New().Key(7)
	Field(a, true)
	Field(a, uint8(1))
	Field(a, "x")
	a.Finish(s)

	_, ok := store.Get[bool](s, store.Key(7))
	require.True(t, ok)
	_, ok = store.Get[uint8](s, store.Key(7))
	require.True(t, ok)
	_, ok = store.Get[string](s, store.Key(7))
	require.True(t, ok)
}

func TestAssemblerEquivalentToDirectInsert(t *testing.T) {
	viaAssembler := store.New()
	a := New().Key(3)
	Field(a, 10)
	Field(a, "hi")
	a.Finish(viaAssembler)

	direct := store.New()
	store.Insert(direct, store.Key(3), 10)
	store.Insert(direct, store.Key(3), "hi")

	vA, okA := store.Get[int](viaAssembler, store.Key(3))
	vD, okD := store.Get[int](direct, store.Key(3))
	require.Equal(t, okD, okA)
	require.Equal(t, vD, vA)

	sA, okA := store.Get[string](viaAssembler, store.Key(3))
	sD, okD := store.Get[string](direct, store.Key(3))
	require.Equal(t, okD, okA)
	require.Equal(t, sD, sA)
}

func TestFieldsHelperEnqueuesAllPositions(t *testing.T) {
	s := store.New()
	a := New().Key(1)
	Fields3(a, "a", 2, true)
	a.Finish(s)

	_, ok := store.Get[string](s, store.Key(1))
	require.True(t, ok)
	_, ok = store.Get[int](s, store.Key(1))
	require.True(t, ok)
	_, ok = store.Get[bool](s, store.Key(1))
	require.True(t, ok)
}

func TestFieldBeforeKeyPanics(t *testing.T) {
	a := New()
	require.Panics(t, func() {
		Field(a, 1)
	})
}

func TestAssembleComposesReusableSteps(t *testing.T) {
	s := store.New()
	withDefaults := func(a *Assembler) *Assembler {
		Field(a, true)
		Field(a, int32(0))
		return a
	}

	New().Key(9).Assemble(withDefaults).Finish(s)

	v, ok := store.Get[bool](s, store.Key(9))
	require.True(t, ok)
	require.True(t, v)
	n, ok := store.Get[int32](s, store.Key(9))
	require.True(t, ok)
	require.Equal(t, int32(0), n)
}

func TestDisassembleRemovesNamedFieldsOnly(t *testing.T) {
	s := store.New()
	store.Insert(s, store.Key(2), true)
	store.Insert(s, store.Key(2), "keep")
	store.Insert(s, store.Key(2), int32(1))

	Disassemble2[bool, int32](s, store.Key(2))

	_, ok := store.Get[bool](s, store.Key(2))
	require.False(t, ok)
	_, ok = store.Get[int32](s, store.Key(2))
	require.False(t, ok)
	_, ok = store.Get[string](s, store.Key(2))
	require.True(t, ok)
}

func TestFinishPreservesPerKeyInsertionOrder(t *testing.T) {
	s := store.New()
	a := New().Key(4)
	Field(a, 1)
	Field(a, 2)
	a.Finish(s)

	v, ok := store.Get[int](s, store.Key(4))
	require.True(t, ok)
	require.Equal(t, 2, v)
}
