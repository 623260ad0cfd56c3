/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package accessor provides construction-time facades over a dix registry.
//
// An accessor resolves its value eagerly when constructed and holds it for
// its whole lifetime; there is no re-resolve. A new logical value requires
// either mutating the held object in place (when it is a shared mutable
// object) or constructing a new accessor. Missing bindings are programming
// errors and panic with the offending identity.
package accessor

import (
	"errors"
	"fmt"

	"dirpx.dev/dix"
	"dirpx.dev/dix/apis"
)

// ErrNilRegistry is the panic value when an accessor is constructed
// against a nil registry.
var ErrNilRegistry = errors.New("dix(accessor): nil registry provided")

// Injected is a read-only, type-addressed accessor.
//
// Construction resolves the key from the registry's type namespace; a
// missing binding panics with *apis.UnresolvedTypeError, a binding of the
// wrong dynamic type with *apis.WrongTypeError. The resolved value is
// identity-preserving: the accessor hands back the registered instance, not
// a copy.
type Injected[T any] struct {
	key apis.Key[T]
	val T
}

// New constructs an Injected accessor resolving k from reg.
func New[T any](reg apis.Registry, k apis.Key[T]) *Injected[T] {
	if reg == nil {
		panic(ErrNilRegistry)
	}
	v, ok := reg.ResolveType(k.ID())
	if !ok {
		panic(&apis.UnresolvedTypeError{Key: k.ID()})
	}
	typed, ok := v.(T)
	if !ok {
		var zero T
		panic(&apis.WrongTypeError{
			Key:  k.ID(),
			Got:  fmt.Sprintf("%T", v),
			Want: fmt.Sprintf("%T", zero),
		})
	}
	return &Injected[T]{key: k, val: typed}
}

// Global constructs an Injected accessor against the shared dix registry.
func Global[T any](k apis.Key[T]) *Injected[T] {
	return New(dix.Registry(), k)
}

// Value returns the resolved instance.
func (a *Injected[T]) Value() T { return a.val }

// Key returns the typed key this accessor was constructed with.
func (a *Injected[T]) Key() apis.Key[T] { return a.key }

// Scoped is a path-addressed accessor.
//
// Construction resolves the slot via the registry's fatal path lookup and
// snapshots the value for the accessor's lifetime. Reregister updates the
// registry entry for the slot so that newly constructed accessors observe
// the new value; it never touches existing snapshots.
type Scoped[T any] struct {
	reg  apis.Registry
	slot apis.Slot[T]
	val  T
}

// NewScoped constructs a Scoped accessor resolving sl from reg.
// A missing path panics with *apis.UnresolvedPathError.
func NewScoped[T any](reg apis.Registry, sl apis.Slot[T]) *Scoped[T] {
	if reg == nil {
		panic(ErrNilRegistry)
	}
	v := reg.ResolvePath(sl.ID())
	typed, ok := v.(T)
	if !ok {
		var zero T
		panic(&apis.WrongTypeError{
			Path: sl.ID(),
			Got:  fmt.Sprintf("%T", v),
			Want: fmt.Sprintf("%T", zero),
		})
	}
	return &Scoped[T]{reg: reg, slot: sl, val: typed}
}

// GlobalScoped constructs a Scoped accessor against the shared dix registry.
func GlobalScoped[T any](sl apis.Slot[T]) *Scoped[T] {
	return NewScoped(dix.Registry(), sl)
}

// Value returns the snapshot taken at construction.
func (s *Scoped[T]) Value() T { return s.val }

// Slot returns the typed slot this accessor was constructed with.
func (s *Scoped[T]) Slot() apis.Slot[T] { return s.slot }

// Reregister replaces the registry value for this accessor's slot.
// The accessor's own snapshot is unchanged; only accessors constructed
// afterwards observe the new value.
func (s *Scoped[T]) Reregister(v T) error {
	return s.reg.RegisterPath(s.slot.ID(), v)
}
