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

// Package store is the polymorphic, type-keyed entity store: a Store holds,
// for every distinct value type that has ever been inserted into it, a
// separate associative container (a Backing) keyed by entity Key. It mirrors
// the table-registry shape of erigon-lib/kv — one name/kind per logical
// table, looked up through a registry map — generalized from fixed table
// names to arbitrary Go types.
package store

import (
	"fmt"

	"github.com/erigontech/entitystore/bitset"
	"github.com/erigontech/entitystore/typeid"
)

// Key is the entity identifier every field is keyed by. It is bijectively
// convertible to uint32: ToU32/KeyFromU32 round-trip exactly, satisfying
// spec's Key invariant trivially since the conversion is the identity.
type Key uint32

// ToU32 returns k's uint32 form, used for KeyBitSet membership.
func (k Key) ToU32() uint32 { return uint32(k) }

// KeyFromU32 builds a Key from its uint32 form.
func KeyFromU32(u uint32) Key { return Key(u) }

// Kind selects which concrete container backs a given field type.
type Kind int

const (
	// Ordered is a balanced ordered map; iteration is ascending Key order.
	Ordered Kind = iota
	// Hashed is an unordered hash table; iteration order is unspecified
	// but stable across a single snapshot.
	Hashed
	// Sparse is a direct-indexed vector addressed by the key's uint32 form.
	Sparse
)

func (k Kind) String() string {
	switch k {
	case Ordered:
		return "Ordered"
	case Hashed:
		return "Hashed"
	case Sparse:
		return "Sparse"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// anyBacking is the type-erased interface every concrete Backing[T]
// satisfies, so Store can hold heterogeneous backings in one map keyed by
// typeid.Handle. All methods operate on Key/typeid.Box so no method needs
// its own type parameter (Go forbids generic methods).
type anyBacking interface {
	kind() Kind
	handle() typeid.Handle
	has(k Key) bool
	getBox(k Key) (*typeid.Box, bool)
	insertBox(k Key, box *typeid.Box)
	deleteKey(k Key)
	clear()
	keys() *bitset.KeyBitSet
	iterKeys(yield func(Key) bool)
	iterBindings(yield func(Key, *typeid.Box) bool)
}

// defaultKind picks Sparse for small types, Hashed otherwise. It only needs
// an upper bound on sizeof(T) relative to a pointer, which reflect gives us
// without needing a value.
func defaultKind(size uintptr) Kind {
	const pointerSize = 8
	if size < pointerSize {
		return Sparse
	}
	return Hashed
}
