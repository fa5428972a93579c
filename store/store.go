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

package store

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/erigontech/erigon-lib/log/v3"

	"github.com/erigontech/entitystore/bitset"
	"github.com/erigontech/entitystore/typeid"
)

// Store is the polymorphic entity store. For every distinct value type
// that has been inserted at least once, it holds exactly one Backing; an
// optional registry lets a caller pin a type's Backing kind before first
// use, mirroring how erigon-lib/kv's TableCfg pins per-table flags ahead
// of use.
type Store struct {
	mu       sync.RWMutex
	typeMap  map[typeid.Handle]anyBacking
	registry map[typeid.Handle]Kind
	logger   log.Logger
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithLogger attaches a structured logger; Store uses it to trace backing
// creation and registry decisions. Defaults to log.Root() when omitted,
// matching the optional-logger convention turbo/snapshotsync and
// tests/state_test_util.go use elsewhere in the teacher repo.
func WithLogger(l log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New returns an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		typeMap:  map[typeid.Handle]anyBacking{},
		registry: map[typeid.Handle]Kind{},
		logger:   log.Root(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterBacking pins the Backing kind used for T. It must be called
// before the first insert of a T value; calling it afterwards is a setup
// mistake reported as an ordinary error, not a panic, since it is easy for
// a caller to check for and recover from (unlike the in-query programmer
// errors that do panic).
func RegisterBacking[T any](s *Store, kind Kind) error {
	h := typeid.Of[T]()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.typeMap[h]; exists {
		return fmt.Errorf("entitystore: RegisterBacking(%s): backing already created, register before first insert", h.Name())
	}
	s.registry[h] = kind
	s.logger.Debug("entitystore: registered backing", "type", h.Name(), "kind", kind)
	return nil
}

// backingFor returns the Backing for handle h, creating it (using the
// registry's choice, or the size-based default) on first use.
func (s *Store) backingFor(h typeid.Handle, size uintptr) anyBacking {
	s.mu.RLock()
	b, ok := s.typeMap[h]
	s.mu.RUnlock()
	if ok {
		return b
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.typeMap[h]; ok {
		return b
	}
	kind, pinned := s.registry[h]
	if !pinned {
		kind = defaultKind(size)
	}
	b = newTypedBacking(h, kind)
	s.typeMap[h] = b
	s.logger.Debug("entitystore: created backing", "type", h.Name(), "kind", kind)
	return b
}

func (s *Store) existingBacking(h typeid.Handle) (anyBacking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.typeMap[h]
	return b, ok
}

// Insert stores v under k, replacing any existing T-value for k.
func Insert[T any](s *Store, k Key, v T) {
	h := typeid.Of[T]()
	b := s.backingFor(h, sizeOf[T]())
	b.insertBox(k, typeid.NewBox(v))
}

// Get returns a shared (copied) view of the T stored at k.
func Get[T any](s *Store, k Key) (T, bool) {
	h := typeid.Of[T]()
	b, ok := s.existingBacking(h)
	if !ok {
		var zero T
		return zero, false
	}
	box, ok := b.getBox(k)
	if !ok {
		var zero T
		return zero, false
	}
	return typeid.Downcast[T](box)
}

// GetMut returns an exclusive (mutable) view of the T stored at k.
func GetMut[T any](s *Store, k Key) (*T, bool) {
	h := typeid.Of[T]()
	b, ok := s.existingBacking(h)
	if !ok {
		return nil, false
	}
	box, ok := b.getBox(k)
	if !ok {
		return nil, false
	}
	return typeid.DowncastMut[T](box)
}

// Remove deletes only the T-field for k; other fields are untouched.
func Remove[T any](s *Store, k Key) {
	h := typeid.Of[T]()
	b, ok := s.existingBacking(h)
	if !ok {
		return
	}
	b.deleteKey(k)
}

// RemoveKey deletes k from every Backing.
func RemoveKey(s *Store, k Key) {
	s.mu.RLock()
	backings := make([]anyBacking, 0, len(s.typeMap))
	for _, b := range s.typeMap {
		backings = append(backings, b)
	}
	s.mu.RUnlock()
	for _, b := range backings {
		b.deleteKey(k)
	}
}

// Clear empties the Backing for T, if one exists, but keeps it registered.
func Clear[T any](s *Store) {
	h := typeid.Of[T]()
	b, ok := s.existingBacking(h)
	if !ok {
		return
	}
	b.clear()
}

// ContainsType reports whether T has a Backing at all.
func ContainsType[T any](s *Store) bool {
	_, ok := s.existingBacking(typeid.Of[T]())
	return ok
}

// ContainsKey reports whether any Backing contains k.
func ContainsKey(s *Store, k Key) bool {
	s.mu.RLock()
	backings := make([]anyBacking, 0, len(s.typeMap))
	for _, b := range s.typeMap {
		backings = append(backings, b)
	}
	s.mu.RUnlock()
	for _, b := range backings {
		if b.has(k) {
			return true
		}
	}
	return false
}

// ContainsTypeKey reports whether T's Backing contains k.
func ContainsTypeKey[T any](s *Store, k Key) bool {
	b, ok := s.existingBacking(typeid.Of[T]())
	if !ok {
		return false
	}
	return b.has(k)
}

// Keys returns a snapshot of the KeyBitSet for T (empty set if T has no
// Backing).
func Keys[T any](s *Store) *bitset.KeyBitSet {
	b, ok := s.existingBacking(typeid.Of[T]())
	if !ok {
		return bitset.New()
	}
	return b.keys()
}

// KeysByHandle is Keys's type-erased counterpart, used by the query engine
// which only has a typeid.Handle, not a concrete T, at signature-evaluation
// time.
func KeysByHandle(s *Store, h typeid.Handle) *bitset.KeyBitSet {
	b, ok := s.existingBacking(h)
	if !ok {
		return bitset.New()
	}
	return b.keys()
}

// HandleContainsKey is ContainsTypeKey's type-erased counterpart.
func HandleContainsKey(s *Store, h typeid.Handle, k Key) bool {
	b, ok := s.existingBacking(h)
	if !ok {
		return false
	}
	return b.has(k)
}

// KeysAll returns the union of every type's KeyBitSet.
func KeysAll(s *Store) *bitset.KeyBitSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sets := make([]*bitset.KeyBitSet, 0, len(s.typeMap))
	for _, b := range s.typeMap {
		sets = append(sets, b.keys())
	}
	return bitset.Union(sets...)
}

// IterTypes yields every live TypeHandle.
func IterTypes(s *Store) func(yield func(typeid.Handle) bool) {
	return func(yield func(typeid.Handle) bool) {
		s.mu.RLock()
		handles := make([]typeid.Handle, 0, len(s.typeMap))
		for h := range s.typeMap {
			handles = append(handles, h)
		}
		s.mu.RUnlock()
		for _, h := range handles {
			if !yield(h) {
				return
			}
		}
	}
}

// Binding is one (TypeHandle, Key, *typeid.Box) triple from IterAllBindings,
// or one (TypeHandle, *typeid.Box) pair's Handle+Box from IterBindingsAt.
type Binding struct {
	Handle typeid.Handle
	Key    Key
	Box    *typeid.Box
}

// IterAllBindings yields every (TypeHandle, Key, Box) triple in the Store.
func IterAllBindings(s *Store) func(yield func(Binding) bool) {
	return func(yield func(Binding) bool) {
		s.mu.RLock()
		backings := make([]anyBacking, 0, len(s.typeMap))
		for _, b := range s.typeMap {
			backings = append(backings, b)
		}
		s.mu.RUnlock()
		for _, b := range backings {
			h := b.handle()
			stop := false
			b.iterBindings(func(k Key, box *typeid.Box) bool {
				if !yield(Binding{Handle: h, Key: k, Box: box}) {
					stop = true
					return false
				}
				return true
			})
			if stop {
				return
			}
		}
	}
}

// IterBindingsAt yields every (TypeHandle, Box) binding for k.
func IterBindingsAt(s *Store, k Key) func(yield func(Binding) bool) {
	return func(yield func(Binding) bool) {
		s.mu.RLock()
		backings := make([]anyBacking, 0, len(s.typeMap))
		for _, b := range s.typeMap {
			backings = append(backings, b)
		}
		s.mu.RUnlock()
		for _, b := range backings {
			box, ok := b.getBox(k)
			if !ok {
				continue
			}
			if !yield(Binding{Handle: b.handle(), Key: k, Box: box}) {
				return
			}
		}
	}
}

func sizeOf[T any]() uintptr {
	var zero T
	return reflect.TypeOf(&zero).Elem().Size()
}

// String renders every live type's section with its sanitized name header
// and each key's Box debug form, sorted for deterministic output.
func (s *Store) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	handles := make([]typeid.Handle, 0, len(s.typeMap))
	for h := range s.typeMap {
		handles = append(handles, h)
	}
	// Deterministic section order for reproducible debug output.
	for i := 1; i < len(handles); i++ {
		for j := i; j > 0 && handles[j-1].Name() > handles[j].Name(); j-- {
			handles[j-1], handles[j] = handles[j], handles[j-1]
		}
	}

	var sb strings.Builder
	for _, h := range handles {
		b := s.typeMap[h]
		fmt.Fprintf(&sb, "%s:\n", h.Name())
		b.iterBindings(func(k Key, box *typeid.Box) bool {
			fmt.Fprintf(&sb, "  %d: %s", k, box.Debug())
			return true
		})
	}
	return sb.String()
}
