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

package registry

import (
	"errors"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"dirpx.dev/dix/apis"
	"dirpx.dev/dix/dixapi/overwrite"
	"dirpx.dev/dix/utils/keys"
)

var (
	// ErrNilValue is returned when a nil value is registered under the
	// RejectNil configuration.
	ErrNilValue = errors.New("dix(registry): nil value provided")
	// ErrConflictingRegistration indicates an attempt to re-register an
	// occupied key under the Reject overwrite policy.
	ErrConflictingRegistration = errors.New("dix(registry): conflicting registration for occupied key")
)

// New constructs a Registry that applies the overwrite and validation
// policy of cfg to both namespaces.
func New(cfg apis.Config) apis.Registry {
	return &registry{cfg: cfg}
}

// registry is a dual-namespace Registry implementation backed by sync.Map.
// Reads are lock-free; mu guards write-side consistency and the counters.
type registry struct {
	// cfg carries the overwrite policy, validation knobs, and write logger.
	cfg apis.Config
	// mu guards write-side consistency and counters.
	mu sync.Mutex
	// byType maps apis.TypeKey to the registered value.
	byType sync.Map
	// byPath maps apis.PathKey to the registered value.
	byPath sync.Map
	// typeCount and pathCount track entries per namespace.
	typeCount int
	pathCount int
}

// Register stores v under k in the type namespace.
// Under LastWriteWins an occupied key is replaced; under Reject it errors.
func (r *registry) Register(k apis.TypeKey, v any) error {
	if err := r.validate(string(k), v); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, occupied := r.byType.Load(k)
	if occupied && r.cfg.Overwrite == overwrite.Reject {
		return ErrConflictingRegistration
	}
	r.byType.Store(k, v)
	if !occupied {
		r.typeCount++
	}
	r.logDebug("type binding registered",
		zap.String("key", string(k)),
		zap.Bool("replaced", occupied))
	return nil
}

// RegisterMany applies Register for each binding in sequence order; later
// bindings for the same key win. Per-binding errors are aggregated and do
// not stop subsequent bindings from applying.
func (r *registry) RegisterMany(bindings []apis.Binding) error {
	var errs error
	for _, b := range bindings {
		errs = multierr.Append(errs, r.Register(b.Key, b.Value))
	}
	return errs
}

// RegisterPath stores v under p in the path namespace.
func (r *registry) RegisterPath(p apis.PathKey, v any) error {
	if err := r.validate(string(p), v); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, occupied := r.byPath.Load(p)
	if occupied && r.cfg.Overwrite == overwrite.Reject {
		return ErrConflictingRegistration
	}
	r.byPath.Store(p, v)
	if !occupied {
		r.pathCount++
	}
	r.logDebug("path binding registered",
		zap.String("path", string(p)),
		zap.Bool("replaced", occupied))
	return nil
}

// ResolveType returns the stored value for k if present.
// Absence is recoverable; the caller decides its own fallback.
func (r *registry) ResolveType(k apis.TypeKey) (any, bool) {
	return r.byType.Load(k)
}

// ResolvePath returns the stored value for p.
// An unregistered path is a contract violation by the caller: ResolvePath
// panics with *apis.UnresolvedPathError carrying the missing path identity.
func (r *registry) ResolvePath(p apis.PathKey) any {
	v, ok := r.byPath.Load(p)
	if !ok {
		panic(&apis.UnresolvedPathError{Path: p})
	}
	return v
}

// RemoveType deletes the entry for k if present; no-op when absent.
func (r *registry) RemoveType(k apis.TypeKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byType.LoadAndDelete(k); ok {
		r.typeCount--
		r.logDebug("type binding removed", zap.String("key", string(k)))
	}
}

// RemovePath deletes the entry for p if present; no-op when absent.
func (r *registry) RemovePath(p apis.PathKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byPath.LoadAndDelete(p); ok {
		r.pathCount--
		r.logDebug("path binding removed", zap.String("path", string(p)))
	}
}

// Entries returns a type-namespace snapshot (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0)
	r.byType.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Key:   key.(apis.TypeKey),
			Value: value,
		})
		return true
	})
	return entries
}

// PathEntries returns a path-namespace snapshot (order is unspecified).
func (r *registry) PathEntries() []apis.PathEntry {
	entries := make([]apis.PathEntry, 0)
	r.byPath.Range(func(key, value any) bool {
		entries = append(entries, apis.PathEntry{
			Path:  key.(apis.PathKey),
			Value: value,
		})
		return true
	})
	return entries
}

// Count returns the total number of entries across both namespaces.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.typeCount + r.pathCount
}

// Reset clears both namespaces.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byType = sync.Map{}
	r.byPath = sync.Map{}
	r.typeCount = 0
	r.pathCount = 0
	r.logDebug("registry reset")
}

// validate applies the shared write-path checks for both namespaces.
func (r *registry) validate(lit string, v any) error {
	if err := keys.Validate(lit); err != nil {
		return err
	}
	if v == nil && r.cfg.RejectNil {
		return ErrNilValue
	}
	return nil
}

// logDebug records a write event when a logger is configured.
// A nil logger is silent; reads are never logged.
func (r *registry) logDebug(msg string, fields ...zap.Field) {
	if l := r.cfg.Logger; l != nil {
		l.Debug(msg, fields...)
	}
}
