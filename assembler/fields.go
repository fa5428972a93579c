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

// Fields2..Fields12 enqueue several individually typed inserts under the
// Assembler's current key in one call, covering arities 2 through 12
// (arity 1 is Field) without a variadic-generics facility.

func Fields2[T1, T2 any](a *Assembler, v1 T1, v2 T2) *Assembler {
	Field(a, v1)
	Field(a, v2)
	return a
}

func Fields3[T1, T2, T3 any](a *Assembler, v1 T1, v2 T2, v3 T3) *Assembler {
	Field(a, v1)
	Field(a, v2)
	Field(a, v3)
	return a
}

func Fields4[T1, T2, T3, T4 any](a *Assembler, v1 T1, v2 T2, v3 T3, v4 T4) *Assembler {
	Field(a, v1)
	Field(a, v2)
	Field(a, v3)
	Field(a, v4)
	return a
}

func Fields5[T1, T2, T3, T4, T5 any](a *Assembler, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5) *Assembler {
	Field(a, v1)
	Field(a, v2)
	Field(a, v3)
	Field(a, v4)
	Field(a, v5)
	return a
}

func Fields6[T1, T2, T3, T4, T5, T6 any](a *Assembler, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6) *Assembler {
	Field(a, v1)
	Field(a, v2)
	Field(a, v3)
	Field(a, v4)
	Field(a, v5)
	Field(a, v6)
	return a
}

func Fields7[T1, T2, T3, T4, T5, T6, T7 any](a *Assembler, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7) *Assembler {
	Field(a, v1)
	Field(a, v2)
	Field(a, v3)
	Field(a, v4)
	Field(a, v5)
	Field(a, v6)
	Field(a, v7)
	return a
}

func Fields8[T1, T2, T3, T4, T5, T6, T7, T8 any](a *Assembler, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7, v8 T8) *Assembler {
	Field(a, v1)
	Field(a, v2)
	Field(a, v3)
	Field(a, v4)
	Field(a, v5)
	Field(a, v6)
	Field(a, v7)
	Field(a, v8)
	return a
}

func Fields9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any](a *Assembler, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7, v8 T8, v9 T9) *Assembler {
	Field(a, v1)
	Field(a, v2)
	Field(a, v3)
	Field(a, v4)
	Field(a, v5)
	Field(a, v6)
	Field(a, v7)
	Field(a, v8)
	Field(a, v9)
	return a
}

func Fields10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any](a *Assembler, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7, v8 T8, v9 T9, v10 T10) *Assembler {
	Field(a, v1)
	Field(a, v2)
	Field(a, v3)
	Field(a, v4)
	Field(a, v5)
	Field(a, v6)
	Field(a, v7)
	Field(a, v8)
	Field(a, v9)
	Field(a, v10)
	return a
}

func Fields11[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11 any](a *Assembler, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7, v8 T8, v9 T9, v10 T10, v11 T11) *Assembler {
	Field(a, v1)
	Field(a, v2)
	Field(a, v3)
	Field(a, v4)
	Field(a, v5)
	Field(a, v6)
	Field(a, v7)
	Field(a, v8)
	Field(a, v9)
	Field(a, v10)
	Field(a, v11)
	return a
}

func Fields12[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12 any](a *Assembler, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7, v8 T8, v9 T9, v10 T10, v11 T11, v12 T12) *Assembler {
	Field(a, v1)
	Field(a, v2)
	Field(a, v3)
	Field(a, v4)
	Field(a, v5)
	Field(a, v6)
	Field(a, v7)
	Field(a, v8)
	Field(a, v9)
	Field(a, v10)
	Field(a, v11)
	Field(a, v12)
	return a
}
