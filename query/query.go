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

package query

import (
	"github.com/erigontech/entitystore/bitset"
	"github.com/erigontech/entitystore/store"
)

// Go's range-over-func only accepts iterators shaped func(yield func() bool),
// func(yield func(V) bool), or func(yield func(K, V) bool) — never more than
// two yielded values. Iter1/IterKeys1 fit that directly (Key, T1); every
// higher arity bundles its term results into a TupleN struct so the
// iterator keeps exactly two yielded values, (Key, TupleN). Get1..Get5 are
// ordinary multi-return functions, which have no such restriction, so they
// return the positions unbundled.

// Tuple2 bundles two term results for Iter2/IterKeys2.
type Tuple2[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Tuple3 bundles three term results for Iter3/IterKeys3.
type Tuple3[T1, T2, T3 any] struct {
	V1 T1
	V2 T2
	V3 T3
}

// Tuple4 bundles four term results for Iter4/IterKeys4.
type Tuple4[T1, T2, T3, T4 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
}

// Tuple5 bundles five term results for Iter5/IterKeys5.
type Tuple5[T1, T2, T3, T4, T5 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
}

func dedupeKeys(keys []store.Key) *bitset.KeyBitSet {
	s := bitset.New()
	for _, k := range keys {
		s.Add(k.ToU32())
	}
	return s
}

// Get1 resolves a one-position signature for a single key. Required and
// NoField violations panic, identifying the offending type.
func Get1[T1 Term[T1]](s *store.Store, k store.Key) (store.Key, T1) {
	validateTerms([]termInfo{infoOf[T1]()})
	var z1 T1
	return k, z1.materialize(s, k)
}

// Iter1 yields every (Key, T1) satisfying the signature, ascending by Key.
func Iter1[T1 Term[T1]](s *store.Store) func(yield func(store.Key, T1) bool) {
	infos := []termInfo{infoOf[T1]()}
	validateTerms(infos)
	candidates := candidateSet(s, infos)
	return func(yield func(store.Key, T1) bool) {
		for u := range candidates.Iter() {
			k := store.KeyFromU32(u)
			var z1 T1
			if !yield(k, z1.materialize(s, k)) {
				return
			}
		}
	}
}

// IterKeys1 is Iter1 restricted to (and deduplicated against) keys.
func IterKeys1[T1 Term[T1]](s *store.Store, keys []store.Key) func(yield func(store.Key, T1) bool) {
	infos := []termInfo{infoOf[T1]()}
	validateTerms(infos)
	candidates := bitset.Intersect(candidateSet(s, infos), dedupeKeys(keys))
	return func(yield func(store.Key, T1) bool) {
		for u := range candidates.Iter() {
			k := store.KeyFromU32(u)
			var z1 T1
			if !yield(k, z1.materialize(s, k)) {
				return
			}
		}
	}
}

// Get2 resolves a two-position signature for a single key.
func Get2[T1 Term[T1], T2 Term[T2]](s *store.Store, k store.Key) (store.Key, T1, T2) {
	validateTerms([]termInfo{infoOf[T1](), infoOf[T2]()})
	var z1 T1
	var z2 T2
	return k, z1.materialize(s, k), z2.materialize(s, k)
}

// Iter2 yields every (Key, Tuple2[T1, T2]) satisfying the signature.
func Iter2[T1 Term[T1], T2 Term[T2]](s *store.Store) func(yield func(store.Key, Tuple2[T1, T2]) bool) {
	infos := []termInfo{infoOf[T1](), infoOf[T2]()}
	validateTerms(infos)
	candidates := candidateSet(s, infos)
	return func(yield func(store.Key, Tuple2[T1, T2]) bool) {
		for u := range candidates.Iter() {
			k := store.KeyFromU32(u)
			var z1 T1
			var z2 T2
			tup := Tuple2[T1, T2]{V1: z1.materialize(s, k), V2: z2.materialize(s, k)}
			if !yield(k, tup) {
				return
			}
		}
	}
}

// IterKeys2 is Iter2 restricted to (and deduplicated against) keys.
func IterKeys2[T1 Term[T1], T2 Term[T2]](s *store.Store, keys []store.Key) func(yield func(store.Key, Tuple2[T1, T2]) bool) {
	infos := []termInfo{infoOf[T1](), infoOf[T2]()}
	validateTerms(infos)
	candidates := bitset.Intersect(candidateSet(s, infos), dedupeKeys(keys))
	return func(yield func(store.Key, Tuple2[T1, T2]) bool) {
		for u := range candidates.Iter() {
			k := store.KeyFromU32(u)
			var z1 T1
			var z2 T2
			tup := Tuple2[T1, T2]{V1: z1.materialize(s, k), V2: z2.materialize(s, k)}
			if !yield(k, tup) {
				return
			}
		}
	}
}

// Get3 resolves a three-position signature for a single key.
func Get3[T1 Term[T1], T2 Term[T2], T3 Term[T3]](s *store.Store, k store.Key) (store.Key, T1, T2, T3) {
	validateTerms([]termInfo{infoOf[T1](), infoOf[T2](), infoOf[T3]()})
	var z1 T1
	var z2 T2
	var z3 T3
	return k, z1.materialize(s, k), z2.materialize(s, k), z3.materialize(s, k)
}

// Iter3 yields every (Key, Tuple3[T1, T2, T3]) satisfying the signature.
func Iter3[T1 Term[T1], T2 Term[T2], T3 Term[T3]](s *store.Store) func(yield func(store.Key, Tuple3[T1, T2, T3]) bool) {
	infos := []termInfo{infoOf[T1](), infoOf[T2](), infoOf[T3]()}
	validateTerms(infos)
	candidates := candidateSet(s, infos)
	return func(yield func(store.Key, Tuple3[T1, T2, T3]) bool) {
		for u := range candidates.Iter() {
			k := store.KeyFromU32(u)
			var z1 T1
			var z2 T2
			var z3 T3
			tup := Tuple3[T1, T2, T3]{V1: z1.materialize(s, k), V2: z2.materialize(s, k), V3: z3.materialize(s, k)}
			if !yield(k, tup) {
				return
			}
		}
	}
}

// IterKeys3 is Iter3 restricted to (and deduplicated against) keys.
func IterKeys3[T1 Term[T1], T2 Term[T2], T3 Term[T3]](s *store.Store, keys []store.Key) func(yield func(store.Key, Tuple3[T1, T2, T3]) bool) {
	infos := []termInfo{infoOf[T1](), infoOf[T2](), infoOf[T3]()}
	validateTerms(infos)
	candidates := bitset.Intersect(candidateSet(s, infos), dedupeKeys(keys))
	return func(yield func(store.Key, Tuple3[T1, T2, T3]) bool) {
		for u := range candidates.Iter() {
			k := store.KeyFromU32(u)
			var z1 T1
			var z2 T2
			var z3 T3
			tup := Tuple3[T1, T2, T3]{V1: z1.materialize(s, k), V2: z2.materialize(s, k), V3: z3.materialize(s, k)}
			if !yield(k, tup) {
				return
			}
		}
	}
}

// Get4 resolves a four-position signature for a single key.
func Get4[T1 Term[T1], T2 Term[T2], T3 Term[T3], T4 Term[T4]](s *store.Store, k store.Key) (store.Key, T1, T2, T3, T4) {
	validateTerms([]termInfo{infoOf[T1](), infoOf[T2](), infoOf[T3](), infoOf[T4]()})
	var z1 T1
	var z2 T2
	var z3 T3
	var z4 T4
	return k, z1.materialize(s, k), z2.materialize(s, k), z3.materialize(s, k), z4.materialize(s, k)
}

// Iter4 yields every (Key, Tuple4[T1, T2, T3, T4]) satisfying the signature.
func Iter4[T1 Term[T1], T2 Term[T2], T3 Term[T3], T4 Term[T4]](s *store.Store) func(yield func(store.Key, Tuple4[T1, T2, T3, T4]) bool) {
	infos := []termInfo{infoOf[T1](), infoOf[T2](), infoOf[T3](), infoOf[T4]()}
	validateTerms(infos)
	candidates := candidateSet(s, infos)
	return func(yield func(store.Key, Tuple4[T1, T2, T3, T4]) bool) {
		for u := range candidates.Iter() {
			k := store.KeyFromU32(u)
			var z1 T1
			var z2 T2
			var z3 T3
			var z4 T4
			tup := Tuple4[T1, T2, T3, T4]{
				V1: z1.materialize(s, k), V2: z2.materialize(s, k),
				V3: z3.materialize(s, k), V4: z4.materialize(s, k),
			}
			if !yield(k, tup) {
				return
			}
		}
	}
}

// IterKeys4 is Iter4 restricted to (and deduplicated against) keys.
func IterKeys4[T1 Term[T1], T2 Term[T2], T3 Term[T3], T4 Term[T4]](s *store.Store, keys []store.Key) func(yield func(store.Key, Tuple4[T1, T2, T3, T4]) bool) {
	infos := []termInfo{infoOf[T1](), infoOf[T2](), infoOf[T3](), infoOf[T4]()}
	validateTerms(infos)
	candidates := bitset.Intersect(candidateSet(s, infos), dedupeKeys(keys))
	return func(yield func(store.Key, Tuple4[T1, T2, T3, T4]) bool) {
		for u := range candidates.Iter() {
			k := store.KeyFromU32(u)
			var z1 T1
			var z2 T2
			var z3 T3
			var z4 T4
			tup := Tuple4[T1, T2, T3, T4]{
				V1: z1.materialize(s, k), V2: z2.materialize(s, k),
				V3: z3.materialize(s, k), V4: z4.materialize(s, k),
			}
			if !yield(k, tup) {
				return
			}
		}
	}
}

// Get5 resolves a five-position signature for a single key.
func Get5[T1 Term[T1], T2 Term[T2], T3 Term[T3], T4 Term[T4], T5 Term[T5]](s *store.Store, k store.Key) (store.Key, T1, T2, T3, T4, T5) {
	validateTerms([]termInfo{infoOf[T1](), infoOf[T2](), infoOf[T3](), infoOf[T4](), infoOf[T5]()})
	var z1 T1
	var z2 T2
	var z3 T3
	var z4 T4
	var z5 T5
	return k, z1.materialize(s, k), z2.materialize(s, k), z3.materialize(s, k), z4.materialize(s, k), z5.materialize(s, k)
}

// Iter5 yields every (Key, Tuple5[T1, T2, T3, T4, T5]) satisfying the
// signature.
func Iter5[T1 Term[T1], T2 Term[T2], T3 Term[T3], T4 Term[T4], T5 Term[T5]](s *store.Store) func(yield func(store.Key, Tuple5[T1, T2, T3, T4, T5]) bool) {
	infos := []termInfo{infoOf[T1](), infoOf[T2](), infoOf[T3](), infoOf[T4](), infoOf[T5]()}
	validateTerms(infos)
	candidates := candidateSet(s, infos)
	return func(yield func(store.Key, Tuple5[T1, T2, T3, T4, T5]) bool) {
		for u := range candidates.Iter() {
			k := store.KeyFromU32(u)
			var z1 T1
			var z2 T2
			var z3 T3
			var z4 T4
			var z5 T5
			tup := Tuple5[T1, T2, T3, T4, T5]{
				V1: z1.materialize(s, k), V2: z2.materialize(s, k), V3: z3.materialize(s, k),
				V4: z4.materialize(s, k), V5: z5.materialize(s, k),
			}
			if !yield(k, tup) {
				return
			}
		}
	}
}

// IterKeys5 is Iter5 restricted to (and deduplicated against) keys.
func IterKeys5[T1 Term[T1], T2 Term[T2], T3 Term[T3], T4 Term[T4], T5 Term[T5]](s *store.Store, keys []store.Key) func(yield func(store.Key, Tuple5[T1, T2, T3, T4, T5]) bool) {
	infos := []termInfo{infoOf[T1](), infoOf[T2](), infoOf[T3](), infoOf[T4](), infoOf[T5]()}
	validateTerms(infos)
	candidates := bitset.Intersect(candidateSet(s, infos), dedupeKeys(keys))
	return func(yield func(store.Key, Tuple5[T1, T2, T3, T4, T5]) bool) {
		for u := range candidates.Iter() {
			k := store.KeyFromU32(u)
			var z1 T1
			var z2 T2
			var z3 T3
			var z4 T4
			var z5 T5
			tup := Tuple5[T1, T2, T3, T4, T5]{
				V1: z1.materialize(s, k), V2: z2.materialize(s, k), V3: z3.materialize(s, k),
				V4: z4.materialize(s, k), V5: z5.materialize(s, k),
			}
			if !yield(k, tup) {
				return
			}
		}
	}
}
