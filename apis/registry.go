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

// Registry stores registered instances under two independent namespaces:
// type keys and path keys. A value registered under a TypeKey is invisible
// to PathKey lookups and vice versa, even for identical literals.
//
// Implementations must be safe for concurrent use; reads should be lock-free
// or sync.Map-backed.
type Registry interface {
	// Register stores v under k, replacing any existing entry under the
	// LastWriteWins policy. Under the Reject policy an occupied key errors.
	Register(k TypeKey, v any) error
	// RegisterMany applies Register for each binding in sequence order;
	// later bindings for the same key win. Per-binding errors are
	// aggregated and do not stop subsequent bindings from applying.
	RegisterMany(bindings []Binding) error
	// RegisterPath stores v under p in the path namespace, replacing any
	// existing entry subject to the same overwrite policy.
	RegisterPath(p PathKey, v any) error
	// ResolveType returns the stored value for k if present. Absence is a
	// recoverable condition; callers decide their own fallback.
	ResolveType(k TypeKey) (v any, ok bool)
	// ResolvePath returns the stored value for p. An unregistered path is a
	// contract violation by the caller: implementations panic with
	// *UnresolvedPathError carrying the missing path identity.
	ResolvePath(p PathKey) any
	// RemoveType deletes the entry for k if present; no-op when absent.
	RemoveType(k TypeKey)
	// RemovePath deletes the entry for p if present; no-op when absent.
	RemovePath(p PathKey)
	// Entries returns a type-namespace snapshot for diagnostics/docs
	// (order is unspecified).
	Entries() []Entry
	// PathEntries returns a path-namespace snapshot (order is unspecified).
	PathEntries() []PathEntry
	// Count returns the total number of entries across both namespaces.
	Count() int
	// Reset clears both namespaces.
	Reset()
}

// Entry is a single (key, value) association in a type-namespace snapshot.
type Entry struct {
	// Key is the registered type key.
	Key TypeKey
	// Value is the stored instance.
	Value any
}

// PathEntry is a single (path, value) association in a path-namespace snapshot.
type PathEntry struct {
	// Path is the registered path key.
	Path PathKey
	// Value is the stored instance.
	Value any
}
