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

package typeid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fooType struct{ X int }

func TestHandleEqualityByType(t *testing.T) {
	a := Of[fooType]()
	b := Of[fooType]()
	require.Equal(t, a, b)

	c := Of[int]()
	require.NotEqual(t, a, c)
}

func TestHandleAsMapKey(t *testing.T) {
	m := map[Handle]string{}
	m[Of[fooType]()] = "foo"
	m[Of[int]()] = "int"

	require.Equal(t, "foo", m[Of[fooType]()])
	require.Equal(t, "int", m[Of[int]()])
}

func TestHandleNameSanitized(t *testing.T) {
	h := Of[fooType]()
	require.Equal(t, "fooType", h.Name())
}

func TestHandleNameGenericNesting(t *testing.T) {
	h := Of[map[fooType][]fooType]()
	require.Equal(t, "map[fooType][]fooType", h.Name())
}
