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

// Package query is the variadic join engine over a store.Store: a query
// signature is an ordered tuple of Term positions (Req, ReqMut, Opt, OptMut,
// NoField), each naming the field type it concerns and how the caller wants
// to borrow it. Go has no variadic generics, so arities are expanded
// explicitly (Get1..Get5, Iter1..Iter5, IterKeys1..IterKeys5) rather than
// through a single variadic signature type.
package query

import (
	"fmt"

	"github.com/erigontech/entitystore/bitset"
	"github.com/erigontech/entitystore/store"
	"github.com/erigontech/entitystore/typeid"
)

type mode int

const (
	modeReqShared mode = iota
	modeReqExclusive
	modeOptShared
	modeOptExclusive
	modeAbsent
)

// Term is the self-referential constraint every signature position
// satisfies: Self is always the concrete term type itself (Req[T], Opt[T],
// ...), so materialize can return a fully-typed result without Store or the
// query engine ever needing a type switch.
type Term[Self any] interface {
	handleOf() typeid.Handle
	modeOf() mode
	materialize(s *store.Store, k store.Key) Self
}

type termInfo struct {
	handle typeid.Handle
	mode   mode
}

func infoOf[T Term[T]]() termInfo {
	var z T
	return termInfo{handle: z.handleOf(), mode: z.modeOf()}
}

// Req is a Required-shared position: the entity must carry T, yielded as a
// copy.
type Req[T any] struct{ Value T }

func (Req[T]) handleOf() typeid.Handle { return typeid.Of[T]() }
func (Req[T]) modeOf() mode            { return modeReqShared }

func (Req[T]) materialize(s *store.Store, k store.Key) Req[T] {
	v, ok := store.Get[T](s, k)
	if !ok {
		panic(fmt.Sprintf("entitystore: query: required field %s missing for key %d", typeid.Of[T]().Name(), k))
	}
	return Req[T]{Value: v}
}

// ReqMut is a Required-exclusive position: the entity must carry T, yielded
// as a live pointer into the Store.
type ReqMut[T any] struct{ Value *T }

func (ReqMut[T]) handleOf() typeid.Handle { return typeid.Of[T]() }
func (ReqMut[T]) modeOf() mode            { return modeReqExclusive }

func (ReqMut[T]) materialize(s *store.Store, k store.Key) ReqMut[T] {
	v, ok := store.GetMut[T](s, k)
	if !ok {
		panic(fmt.Sprintf("entitystore: query: required field %s missing for key %d", typeid.Of[T]().Name(), k))
	}
	return ReqMut[T]{Value: v}
}

// Opt is an Optional-shared position: present or not, never panics.
type Opt[T any] struct {
	Value T
	Ok    bool
}

func (Opt[T]) handleOf() typeid.Handle { return typeid.Of[T]() }
func (Opt[T]) modeOf() mode            { return modeOptShared }

func (Opt[T]) materialize(s *store.Store, k store.Key) Opt[T] {
	v, ok := store.Get[T](s, k)
	return Opt[T]{Value: v, Ok: ok}
}

// OptMut is an Optional-exclusive position.
type OptMut[T any] struct {
	Value *T
	Ok    bool
}

func (OptMut[T]) handleOf() typeid.Handle { return typeid.Of[T]() }
func (OptMut[T]) modeOf() mode            { return modeOptExclusive }

func (OptMut[T]) materialize(s *store.Store, k store.Key) OptMut[T] {
	v, ok := store.GetMut[T](s, k)
	return OptMut[T]{Value: v, Ok: ok}
}

// NoField is an Absent position: the entity must NOT carry T. It carries no
// data beyond T's TypeHandle, used only for debugging and error messages.
type NoField[T any] struct{}

func (NoField[T]) handleOf() typeid.Handle { return typeid.Of[T]() }
func (NoField[T]) modeOf() mode            { return modeAbsent }

func (NoField[T]) materialize(s *store.Store, k store.Key) NoField[T] {
	if store.ContainsTypeKey[T](s, k) {
		panic(fmt.Sprintf("entitystore: query: NoField assertion violated, key %d has field %s", k, typeid.Of[T]().Name()))
	}
	return NoField[T]{}
}

// validateTerms rejects, at query-construction time, any signature that
// would require conflicting simultaneous borrows of one Backing: two
// exclusive positions on the same T, or a shared and an exclusive position
// on the same T.
func validateTerms(infos []termInfo) {
	exclusiveSeen := map[typeid.Handle]bool{}
	sharedSeen := map[typeid.Handle]bool{}
	for _, inf := range infos {
		switch inf.mode {
		case modeReqExclusive, modeOptExclusive:
			if exclusiveSeen[inf.handle] {
				panic(fmt.Sprintf("entitystore: query: signature requests exclusive access to %s more than once", inf.handle.Name()))
			}
			exclusiveSeen[inf.handle] = true
		case modeReqShared, modeOptShared:
			sharedSeen[inf.handle] = true
		}
	}
	for h := range exclusiveSeen {
		if sharedSeen[h] {
			panic(fmt.Sprintf("entitystore: query: signature requests both shared and exclusive access to %s", h.Name()))
		}
	}
}

// candidateSet computes the intersection of every Required position's
// keyset (or every key in the Store if there are no Required positions),
// then subtracts the keyset of every Absent position.
func candidateSet(s *store.Store, infos []termInfo) *bitset.KeyBitSet {
	var required []*bitset.KeyBitSet
	var absent []*bitset.KeyBitSet
	for _, inf := range infos {
		switch inf.mode {
		case modeReqShared, modeReqExclusive:
			required = append(required, store.KeysByHandle(s, inf.handle))
		case modeAbsent:
			absent = append(absent, store.KeysByHandle(s, inf.handle))
		}
	}

	var candidates *bitset.KeyBitSet
	if len(required) > 0 {
		candidates = bitset.Intersect(required...)
	} else {
		candidates = store.KeysAll(s)
	}
	for _, a := range absent {
		candidates = bitset.AndNot(candidates, a)
	}
	return candidates
}
