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

import "github.com/davecgh/go-spew/spew"

// Box is a heap cell holding a value of statically unknown type, plus a
// debug formatter captured at construction time. It stores the value
// behind a pointer so that DowncastMut can hand back a live, mutable view
// of the same storage that Downcast reads from.
type Box struct {
	value    any // always a *T for the T this Box was built with
	debugger func() string
}

// NewBox heap-allocates v and wraps it in a Box, attaching a debug
// formatter that renders the value with go-spew at call time (so it always
// reflects the box's current contents, even after an in-place mutation via
// DowncastMut).
func NewBox[T any](v T) *Box {
	p := new(T)
	*p = v
	return &Box{
		value:    p,
		debugger: func() string { return spew.Sdump(*p) },
	}
}

// Downcast returns a copy of the boxed T, or (zero, false) if the Box does
// not hold a T.
func Downcast[T any](b *Box) (T, bool) {
	p, ok := b.value.(*T)
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}

// DowncastMut returns a live, mutable pointer into the Box's storage, or
// (nil, false) if the Box does not hold a T.
func DowncastMut[T any](b *Box) (*T, bool) {
	p, ok := b.value.(*T)
	return p, ok
}

// Debug renders the boxed value's current contents for diagnostics.
func (b *Box) Debug() string {
	return b.debugger()
}
