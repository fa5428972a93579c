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

// Package assembler provides a fluent, deferred-insertion builder over a
// store.Store: operations queue up under whichever Key was last set by
// Key, and Finish drains them into the Store in enqueue order.
package assembler

import (
	"github.com/erigontech/erigon-lib/log/v3"

	"github.com/erigontech/entitystore/store"
)

// Assembler buffers insertions keyed by a "current key" set via Key, until
// Finish flushes them into a Store.
type Assembler struct {
	curKey store.Key
	hasKey bool
	ops    []func(s *store.Store)
	logger log.Logger
}

// New returns an empty Assembler, logging through log.Root() unless
// WithLogger is supplied.
func New(opts ...Option) *Assembler {
	a := &Assembler{logger: log.Root()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Option configures an Assembler at construction time.
type Option func(*Assembler)

// WithLogger attaches a structured logger, used to trace Finish flushes.
func WithLogger(l log.Logger) Option {
	return func(a *Assembler) { a.logger = l }
}

// Key sets the current key; subsequent Field/Fields calls enqueue inserts
// under it.
func (a *Assembler) Key(k store.Key) *Assembler {
	a.curKey = k
	a.hasKey = true
	return a
}

// Field enqueues Store.Insert(current key, v). Calling it before Key is a
// programmer error.
func Field[T any](a *Assembler, v T) *Assembler {
	if !a.hasKey {
		panic("entitystore: assembler: Field called before Key")
	}
	k := a.curKey
	a.ops = append(a.ops, func(s *store.Store) { store.Insert(s, k, v) })
	return a
}

// Assemble applies fn to a, allowing callers to compose reusable assembly
// steps.
func (a *Assembler) Assemble(fn func(*Assembler) *Assembler) *Assembler {
	return fn(a)
}

// Finish drains every enqueued insertion into s, in enqueue order, and
// empties the Assembler so it can be reused.
func (a *Assembler) Finish(s *store.Store) {
	a.logger.Debug("entitystore: assembler flushing", "ops", len(a.ops))
	for _, op := range a.ops {
		op(s)
	}
	a.ops = nil
}
