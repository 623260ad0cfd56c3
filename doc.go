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

// Package dix provides a process-wide, keyed dependency registry.
//
// dix stores application instances under explicit identity tokens and hands
// them back to consumers at their own construction time. It is a registry,
// not a container: there is no dependency graph, no constructor wiring, no
// lifetime scoping and no lazy construction. Bootstrap code registers fully
// constructed instances; components read them back through typed keys or
// accessors.
//
// # Data model
//
// The registry holds two independent namespaces:
//
//   - Type keys (apis.TypeKey, wrapped by apis.Key[T]): one explicit,
//     manually assigned token per registrable type. Absence on lookup is a
//     recoverable condition; callers substitute their own default.
//
//   - Path keys (apis.PathKey, wrapped by apis.Slot[T]): named slots for
//     required configuration values ("cfg.baseURL"). Absence on lookup is a
//     programming error and panics with the missing identity.
//
// The namespaces never interact: the same literal registered under a type
// key is invisible to path lookups and vice versa. Identity is always an
// explicit token, never derived from runtime type metadata; the typed
// wrappers only carry the expected value type through to resolution.
//
// Entries live until explicitly removed or until the registry is discarded.
// Re-registration is governed by an overwrite policy (last write wins by
// default, see dixapi/overwrite).
//
// # Design
//
// The core of dix is a read-mostly global snapshot (state). The snapshot
// holds four things:
//
//   - Config: registry knobs (overwrite policy, nil rejection, an optional
//     write logger).
//
//   - Registry: the dual-namespace store described above. It can be written
//     to at runtime (Register, RegisterPath, RegisterMany, Remove*).
//
//   - Resolver: a read-only object that answers type-namespace lookups by
//     trying an ordered chain of strategies. The default chain consults the
//     Registry; fallback strategies (static defaults, lookup functions) can
//     be appended so callers pick their defaults once instead of at every
//     resolve site. Path lookups never go through the chain.
//
//   - Builder: a pluggable factory that constructs Registry and Resolver
//     instances for a given Config (and optional extension context), and
//     may migrate entries from previous instances.
//
// All of these live inside a single immutable struct called state. The
// package holds an atomic pointer to the current state. Readers load that
// pointer, use it, and never mutate it. Writers take a short build mutex,
// assemble a brand-new state, and publish it via an atomic pointer swap.
//
// # Global API
//
// The explicit-instance API (registry.New, resolver.New, accessor.New) is
// primary; the package-level functions are a convenience wrapper around one
// shared snapshot:
//
//	dix.Register(userVMKey, vm)
//	dix.RegisterPath(baseURLSlot, u)
//	vm, ok := dix.Resolve(userVMKey)     // absent -> (zero, false)
//	u := dix.ResolvePath(baseURLSlot)    // absent -> panic with identity
//
// Mutation helpers (SetConfig, SetBuilder, SetExt, SetRegistry, SetResolver,
// SetAll) derive a new snapshot, rebuilding or reusing Registry/Resolver as
// needed. SetAll is the hard reset, mainly for tests. SetRegistry and
// SetResolver pin the layer they replace; a pinned layer is exempt from
// automatic rebuilds until UnpinRegistry/UnpinResolver.
//
// # Error model
//
// Exactly two failure shapes exist on the lookup side:
//
//   - Type-namespace absence is an explicit (zero, false); no error value,
//     no logging, the caller decides.
//
//   - Path-namespace absence, and any failure of MustResolve or accessor
//     construction, is a panic carrying the offending identity
//     (apis.UnresolvedTypeError, apis.UnresolvedPathError,
//     apis.WrongTypeError). These mark contract violations by the caller:
//     the registry must be fully populated before consumers construct.
//
// # Concurrency model
//
// Reads (Resolve, ResolvePath, Registry, Resolver) are wait-free at the
// snapshot level: they load the current *state atomically and never take
// locks. The registry itself is sync.Map-backed, so registration and
// resolution may race safely, though the intended usage is populate-first,
// resolve-after. Writers of the snapshot serialize on a short build mutex.
//
// # Bootstrap pattern
//
// A typical binary does:
//
//  1. Declare keys and slots as package-level tokens:
//
//     var userVMKey = apis.KeyOf[*UserViewModel]("vm.user")
//     var baseURLSlot = apis.SlotOf[*url.URL]("cfg.baseURL")
//
//  2. Register everything up front, directly or via dixapi/common.Registrar
//     bundles installed with dix.Install.
//
//  3. Construct components; their accessor fields (package accessor) resolve
//     eagerly and fail loudly if step 2 missed a binding.
//
//  4. In tests, either build an isolated registry.New(cfg) instance, or call
//     dix.SetAll(...) for a deterministic global snapshot.
package dix
