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

package dix

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"

	"dirpx.dev/dix/apis"
	"dirpx.dev/dix/builder"
	"dirpx.dev/dix/config"
	"dirpx.dev/dix/dixapi/common"
)

// init initializes the global dix state.
func init() {
	// Initialize state with default cfg, reg, and res.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.reg = b.BuildRegistry(s.cfg, nil, nil)
	s.res = b.BuildResolver(s.cfg, s.reg, nil, nil)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("dix: builder returned nil registry")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("dix: builder returned nil resolver")
)

// Register stores v under k in the global registry's type namespace.
// This is a convenience wrapper around the global reg.
func Register[T any](k apis.Key[T], v T) error {
	return st.Load().reg.Register(k.ID(), v)
}

// RegisterMany applies the bindings in sequence order against the global
// registry; later bindings for the same key win. Per-binding errors are
// aggregated.
func RegisterMany(bindings ...apis.Binding) error {
	return st.Load().reg.RegisterMany(bindings)
}

// RegisterPath stores v under sl in the global registry's path namespace.
func RegisterPath[T any](sl apis.Slot[T], v T) error {
	return st.Load().reg.RegisterPath(sl.ID(), v)
}

// Resolve returns the value for k from the global resolver chain.
// Absence, or a stored value whose dynamic type is not T, yields
// (zero, false); the caller decides its own fallback.
func Resolve[T any](k apis.Key[T]) (T, bool) {
	var zero T
	s := st.Load()
	v, ok := s.res.Resolve(k.ID(), s.cfg)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// MustResolve returns the value for k or panics.
//
// A missing binding panics with *apis.UnresolvedTypeError, a binding of the
// wrong dynamic type with *apis.WrongTypeError. Use Resolve when absence is
// an expected condition.
func MustResolve[T any](k apis.Key[T]) T {
	s := st.Load()
	v, ok := s.res.Resolve(k.ID(), s.cfg)
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
	return typed
}

// ResolvePath returns the value for sl from the global registry.
//
// An unregistered path is a programming error: the registry panics with
// *apis.UnresolvedPathError. A value of the wrong dynamic type panics with
// *apis.WrongTypeError.
func ResolvePath[T any](sl apis.Slot[T]) T {
	v := st.Load().reg.ResolvePath(sl.ID())
	typed, ok := v.(T)
	if !ok {
		var zero T
		panic(&apis.WrongTypeError{
			Path: sl.ID(),
			Got:  fmt.Sprintf("%T", v),
			Want: fmt.Sprintf("%T", zero),
		})
	}
	return typed
}

// Remove deletes the global type-namespace entry for k; no-op when absent.
func Remove[T any](k apis.Key[T]) {
	st.Load().reg.RemoveType(k.ID())
}

// RemovePath deletes the global path-namespace entry for sl; no-op when absent.
func RemovePath[T any](sl apis.Slot[T]) {
	st.Load().reg.RemovePath(sl.ID())
}

// Install applies each Registrar against the global registry in order.
// Nil registrars are skipped. Errors are aggregated; a failing registrar
// does not stop the ones after it.
func Install(registrars ...common.Registrar) error {
	reg := st.Load().reg
	var errs error
	for _, r := range registrars {
		if r == nil {
			continue
		}
		errs = multierr.Append(errs, r.RegisterInto(reg))
	}
	return errs
}

// SetAll explicitly sets all global dix state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced.
//
// This is the hard-reset API, mainly used by tests to get a clean
// deterministic state between test cases.
func SetAll(cfg *apis.Config, ext any, reg apis.Registry, res apis.Resolver, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Extension
	next := ext

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Registry
	nreg := reg
	npreg := false
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, old.reg, next)
	} else {
		npreg = true
	}

	// Resolver
	nres := res
	npres := false
	if nres == nil {
		nres = nbld.BuildResolver(ncfg, nreg, old.res, next)
	} else {
		npres = true
	}

	// Ensure non-nil reg and res.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  ncfg,
			ext:  next,
			reg:  nreg,
			res:  nres,
			bld:  nbld,
			preg: npreg,
			pres: npres,
		},
	)
}

// Config returns the global dix configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global dix configuration to cfg.
// It rebuilds the non-pinned global reg and res using the new configuration.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new reg and res based on the new cfg and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(cfg, old.reg, old.ext)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(cfg, nreg, old.res, old.ext)
	}

	// Ensure non-nil reg and res.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  cfg,
			ext:  old.ext,
			reg:  nreg,
			res:  nres,
			bld:  b,
			preg: old.preg,
			pres: old.pres,
		},
	)
}

// Registry returns the global dix registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry sets the global dix registry to reg and pins it.
// It rebuilds the non-pinned global resolver against the new registry.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build a new resolver based on the old cfg and new reg.
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(old.cfg, reg, old.res, old.ext)
	}

	// Ensure non-nil resolver.
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  reg,
			res:  nres,
			bld:  b,
			preg: true,
			pres: old.pres,
		},
	)
}

// Resolver returns the global dix resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver sets the global dix resolver to res and pins it.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			res:  res,
			bld:  old.bld,
			preg: old.preg,
			pres: true,
		},
	)
}

// Builder returns the global dix builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global dix builder to b.
// It rebuilds the non-pinned global reg and res using the new builder.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Build new reg and res based on the new builder and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg, old.ext)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(old.cfg, nreg, old.res, old.ext)
	}

	// Ensure non-nil reg and res.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  nreg,
			res:  nres,
			bld:  b,
			preg: old.preg,
			pres: old.pres,
		},
	)
}

// SetExt replaces the extension context and rebuilds non-pinned layers via
// the builder. The default builder reads ext as []apis.Strategy: extra
// fallback steps appended after the registry strategy.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new reg and res based on the new ext and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg, ext)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(old.cfg, nreg, old.res, ext)
	}

	// Ensure non-nil reg and res.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  ext,
			reg:  nreg,
			res:  nres,
			bld:  b,
			preg: old.preg,
			pres: old.pres,
		},
	)
}

// ExtAs returns the global dix extension context as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsRegistryPinned returns whether the global dix registry is pinned
// (exempt from automatic rebuilds).
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry exempts the global dix registry from automatic rebuilds.
func PinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			res:  old.res,
			bld:  old.bld,
			preg: true,
			pres: old.pres,
		},
	)
}

// UnpinRegistry makes the global dix registry rebuildable again.
func UnpinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			res:  old.res,
			bld:  old.bld,
			preg: false,
			pres: old.pres,
		},
	)
}

// IsResolverPinned returns whether the global dix resolver is pinned.
func IsResolverPinned() bool {
	return st.Load().pres
}

// PinResolver exempts the global dix resolver from automatic rebuilds.
func PinResolver() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			res:  old.res,
			bld:  old.bld,
			preg: old.preg,
			pres: true,
		},
	)
}

// UnpinResolver makes the global dix resolver rebuildable again.
func UnpinResolver() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			res:  old.res,
			bld:  old.bld,
			preg: old.preg,
			pres: false,
		},
	)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global dix state.
var st atomic.Pointer[state]

// state is the global dix state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global dix configuration.
	cfg apis.Config
	// ext is the global dix extension context.
	ext any
	// reg is the global dix registry.
	reg apis.Registry
	// res is the global dix resolver.
	res apis.Resolver
	// bld is the global dix builder.
	bld apis.Builder
	// preg indicates whether the registry is pinned (exempt from rebuilds).
	preg bool
	// pres indicates whether the resolver is pinned (exempt from rebuilds).
	pres bool
}
