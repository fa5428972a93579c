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

// Package typeid gives the store a process-wide, cheap-to-compare type
// identity (Handle) and a type-erased storage cell (Box) that can later be
// downcast back to its concrete type.
package typeid

import "reflect"

// Handle is a process-wide unique identifier for a concrete type T, paired
// with a sanitized, human-readable name. Two Handles compare equal iff they
// were produced from the same concrete type: equality and hashing compare
// both fields, and name is derived from the reflect.Type alone, so the
// outcome depends only on the type. Handle is a valid map key on its own.
type Handle struct {
	rtype reflect.Type
	name  string
}

// Of returns the Handle for type T. Calling Of[T] repeatedly for the same T
// always yields an equal Handle.
func Of[T any]() Handle {
	var zero T
	t := reflect.TypeOf(&zero).Elem()
	return Handle{rtype: t, name: sanitize(t.String())}
}

// Name returns the sanitized, module-path-free display name for this
// Handle's type, e.g. "Foo[Bar]" rather than "mypkg.Foo[otherpkg.Bar]".
func (h Handle) Name() string {
	return h.name
}

// String implements fmt.Stringer so Handles read naturally in panic
// messages and debug output.
func (h Handle) String() string {
	return h.name
}
