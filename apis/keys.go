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

package apis

// TypeKey is an explicit identity token for a registrable type.
//
// Type keys are manually assigned, never derived from runtime type metadata.
// Declare one per registrable type, once, at package level; equal literals
// refer to the same binding. TypeKey and PathKey are distinct named types so
// the two registry namespaces can never be confused at compile time.
type TypeKey string

// PathKey is an explicit identity token for a named slot (an accessor path).
//
// Path keys model required configuration slots. Applications declare their
// closed slot set as package-level constants; resolving an unregistered path
// is a fatal programming error (see Registry.ResolvePath).
type PathKey string

// Key is a typed type-key token. The type parameter carries the expected
// value type through registration and resolution without reflection; the id
// alone determines registry identity.
type Key[T any] struct {
	id TypeKey
}

// KeyOf declares a typed key for type T under the given identity literal.
//
// Keys are cheap value tokens; declaring the same (T, id) pair twice yields
// equal keys, so they can be recreated anywhere without a shared variable.
func KeyOf[T any](id string) Key[T] {
	return Key[T]{id: TypeKey(id)}
}

// ID returns the raw identity token of the key.
func (k Key[T]) ID() TypeKey { return k.id }

// Slot is a typed path-key token for a named slot holding a value of type T.
type Slot[T any] struct {
	id PathKey
}

// SlotOf declares a typed slot under the given identity literal.
func SlotOf[T any](id string) Slot[T] {
	return Slot[T]{id: PathKey(id)}
}

// ID returns the raw identity token of the slot.
func (s Slot[T]) ID() PathKey { return s.id }

// Binding is one ordered (key, value) registration pair for
// Registry.RegisterMany. Later bindings for the same key win.
type Binding struct {
	// Key is the type-key identity to register under.
	Key TypeKey
	// Value is the instance to store.
	Value any
}

// BindingOf builds a Binding from a typed key and a matching value.
func BindingOf[T any](k Key[T], v T) Binding {
	return Binding{Key: k.ID(), Value: v}
}
