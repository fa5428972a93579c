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

import "github.com/erigontech/entitystore/store"

// Disassemble1..Disassemble12 are Field/Fields's dual: they remove the
// named field types from k in one call, up to arity 12.

func Disassemble1[T1 any](s *store.Store, k store.Key) {
	store.Remove[T1](s, k)
}

func Disassemble2[T1, T2 any](s *store.Store, k store.Key) {
	store.Remove[T1](s, k)
	store.Remove[T2](s, k)
}

func Disassemble3[T1, T2, T3 any](s *store.Store, k store.Key) {
	store.Remove[T1](s, k)
	store.Remove[T2](s, k)
	store.Remove[T3](s, k)
}

func Disassemble4[T1, T2, T3, T4 any](s *store.Store, k store.Key) {
	store.Remove[T1](s, k)
	store.Remove[T2](s, k)
	store.Remove[T3](s, k)
	store.Remove[T4](s, k)
}

func Disassemble5[T1, T2, T3, T4, T5 any](s *store.Store, k store.Key) {
	store.Remove[T1](s, k)
	store.Remove[T2](s, k)
	store.Remove[T3](s, k)
	store.Remove[T4](s, k)
	store.Remove[T5](s, k)
}

func Disassemble6[T1, T2, T3, T4, T5, T6 any](s *store.Store, k store.Key) {
	store.Remove[T1](s, k)
	store.Remove[T2](s, k)
	store.Remove[T3](s, k)
	store.Remove[T4](s, k)
	store.Remove[T5](s, k)
	store.Remove[T6](s, k)
}

func Disassemble7[T1, T2, T3, T4, T5, T6, T7 any](s *store.Store, k store.Key) {
	store.Remove[T1](s, k)
	store.Remove[T2](s, k)
	store.Remove[T3](s, k)
	store.Remove[T4](s, k)
	store.Remove[T5](s, k)
	store.Remove[T6](s, k)
	store.Remove[T7](s, k)
}

func Disassemble8[T1, T2, T3, T4, T5, T6, T7, T8 any](s *store.Store, k store.Key) {
	store.Remove[T1](s, k)
	store.Remove[T2](s, k)
	store.Remove[T3](s, k)
	store.Remove[T4](s, k)
	store.Remove[T5](s, k)
	store.Remove[T6](s, k)
	store.Remove[T7](s, k)
	store.Remove[T8](s, k)
}

func Disassemble9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any](s *store.Store, k store.Key) {
	store.Remove[T1](s, k)
	store.Remove[T2](s, k)
	store.Remove[T3](s, k)
	store.Remove[T4](s, k)
	store.Remove[T5](s, k)
	store.Remove[T6](s, k)
	store.Remove[T7](s, k)
	store.Remove[T8](s, k)
	store.Remove[T9](s, k)
}

func Disassemble10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any](s *store.Store, k store.Key) {
	store.Remove[T1](s, k)
	store.Remove[T2](s, k)
	store.Remove[T3](s, k)
	store.Remove[T4](s, k)
	store.Remove[T5](s, k)
	store.Remove[T6](s, k)
	store.Remove[T7](s, k)
	store.Remove[T8](s, k)
	store.Remove[T9](s, k)
	store.Remove[T10](s, k)
}

func Disassemble11[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11 any](s *store.Store, k store.Key) {
	store.Remove[T1](s, k)
	store.Remove[T2](s, k)
	store.Remove[T3](s, k)
	store.Remove[T4](s, k)
	store.Remove[T5](s, k)
	store.Remove[T6](s, k)
	store.Remove[T7](s, k)
	store.Remove[T8](s, k)
	store.Remove[T9](s, k)
	store.Remove[T10](s, k)
	store.Remove[T11](s, k)
}

func Disassemble12[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12 any](s *store.Store, k store.Key) {
	store.Remove[T1](s, k)
	store.Remove[T2](s, k)
	store.Remove[T3](s, k)
	store.Remove[T4](s, k)
	store.Remove[T5](s, k)
	store.Remove[T6](s, k)
	store.Remove[T7](s, k)
	store.Remove[T8](s, k)
	store.Remove[T9](s, k)
	store.Remove[T10](s, k)
	store.Remove[T11](s, k)
	store.Remove[T12](s, k)
}
