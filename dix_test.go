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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dix/apis"
	"dirpx.dev/dix/builder"
	"dirpx.dev/dix/config"
	"dirpx.dev/dix/dixapi/common"
	"dirpx.dev/dix/registry"
	"dirpx.dev/dix/strategy"
	"dirpx.dev/dix/utils/keys"
)

type userVM struct {
	name string
}

var (
	userKey = apis.KeyOf[*userVM]("vm.user")
	envSlot = apis.SlotOf[string]("cfg.env")
)

// resetState swaps in a fresh, empty, unpinned global snapshot.
// Tests in this package share the global state and must not run in parallel.
func resetState(tb testing.TB) {
	tb.Helper()
	cfg := config.DefaultConfig()
	SetAll(&cfg, nil, registry.New(cfg), nil, builder.New())
	UnpinRegistry()
}

// staticResolver always answers with a fixed value.
type staticResolver struct {
	v any
}

func (r *staticResolver) Resolve(_ apis.TypeKey, _ apis.Config) (any, bool) {
	return r.v, true
}

// TestRegisterResolve_RoundTrip verifies typed registration hands back the same instance.
func TestRegisterResolve_RoundTrip(t *testing.T) {
	resetState(t)

	vm := &userVM{name: "alice"}
	require.NoError(t, Register(userKey, vm))

	got, ok := Resolve(userKey)
	require.True(t, ok)
	assert.Same(t, vm, got)
}

// TestResolve_AbsentIsRecoverable verifies a miss yields (zero, false), not a panic.
func TestResolve_AbsentIsRecoverable(t *testing.T) {
	resetState(t)

	got, ok := Resolve(userKey)
	assert.False(t, ok)
	assert.Nil(t, got)
}

// TestResolve_WrongDynamicTypeIsRecoverable verifies a type mismatch also yields (zero, false).
func TestResolve_WrongDynamicTypeIsRecoverable(t *testing.T) {
	resetState(t)

	require.NoError(t, Registry().Register(userKey.ID(), "not a viewmodel"))

	got, ok := Resolve(userKey)
	assert.False(t, ok)
	assert.Nil(t, got)
}

// TestMustResolve verifies the fatal variant's success and panic paths.
func TestMustResolve(t *testing.T) {
	resetState(t)

	vm := &userVM{name: "bob"}
	require.NoError(t, Register(userKey, vm))
	assert.Same(t, vm, MustResolve(userKey))

	require.PanicsWithError(t, `dix: no value bound for type key "vm.missing"`, func() {
		MustResolve(apis.KeyOf[*userVM]("vm.missing"))
	})

	require.NoError(t, Registry().Register("vm.number", 7))
	require.PanicsWithError(t, `dix: type key "vm.number" holds int, want *dix.userVM`, func() {
		MustResolve(apis.KeyOf[*userVM]("vm.number"))
	})
}

// TestResolvePath verifies the path namespace round trip and its fatal misses.
func TestResolvePath(t *testing.T) {
	resetState(t)

	require.NoError(t, RegisterPath(envSlot, "production"))
	assert.Equal(t, "production", ResolvePath(envSlot))

	require.PanicsWithError(t, `dix: no value bound for path key "cfg.missing"`, func() {
		ResolvePath(apis.SlotOf[string]("cfg.missing"))
	})

	require.NoError(t, Registry().RegisterPath("cfg.port", 8080))
	require.PanicsWithError(t, `dix: path key "cfg.port" holds int, want string`, func() {
		ResolvePath(apis.SlotOf[string]("cfg.port"))
	})
}

// TestRegisterMany verifies sequence-order wins and per-binding error aggregation.
func TestRegisterMany(t *testing.T) {
	resetState(t)

	first := &userVM{name: "first"}
	last := &userVM{name: "last"}
	err := RegisterMany(
		apis.BindingOf(userKey, first),
		apis.Binding{Key: "", Value: "invalid"},
		apis.BindingOf(userKey, last),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, keys.ErrEmptyKey)

	// Valid bindings before and after the failing one still applied; the
	// later one wins.
	got, ok := Resolve(userKey)
	require.True(t, ok)
	assert.Same(t, last, got)
}

// TestNamespacesNeverInteract verifies identical literals in both namespaces stay distinct.
func TestNamespacesNeverInteract(t *testing.T) {
	resetState(t)

	k := apis.KeyOf[string]("shared.name")
	sl := apis.SlotOf[string]("shared.name")

	require.NoError(t, Register(k, "typed"))
	require.NoError(t, RegisterPath(sl, "pathed"))

	got, ok := Resolve(k)
	require.True(t, ok)
	assert.Equal(t, "typed", got)
	assert.Equal(t, "pathed", ResolvePath(sl))

	Remove(k)
	_, ok = Resolve(k)
	assert.False(t, ok)
	assert.Equal(t, "pathed", ResolvePath(sl))
}

// TestRemove verifies removal in both namespaces, including the absent no-op.
func TestRemove(t *testing.T) {
	resetState(t)

	require.NoError(t, Register(userKey, &userVM{}))
	Remove(userKey)
	_, ok := Resolve(userKey)
	assert.False(t, ok)
	Remove(userKey) // absent: no-op

	require.NoError(t, RegisterPath(envSlot, "staging"))
	RemovePath(envSlot)
	RemovePath(envSlot) // absent: no-op
	require.PanicsWithError(t, `dix: no value bound for path key "cfg.env"`, func() {
		ResolvePath(envSlot)
	})
}

// TestInstall verifies registrar application order, nil skipping, and error aggregation.
func TestInstall(t *testing.T) {
	resetState(t)

	boom := errors.New("registrar boom")
	err := Install(
		common.RegistrarFunc(func(reg apis.Registry) error {
			return reg.Register(userKey.ID(), &userVM{name: "installed"})
		}),
		nil,
		common.RegistrarFunc(func(apis.Registry) error { return boom }),
		common.RegistrarFunc(func(reg apis.Registry) error {
			return reg.RegisterPath(envSlot.ID(), "installed")
		}),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	// Registrars around the failing one still ran.
	got, ok := Resolve(userKey)
	require.True(t, ok)
	assert.Equal(t, "installed", got.name)
	assert.Equal(t, "installed", ResolvePath(envSlot))
}

// TestSetExt_StrategyFallbacks verifies ext strategies serve misses while the registry wins.
func TestSetExt_StrategyFallbacks(t *testing.T) {
	resetState(t)

	require.NoError(t, Register(userKey, &userVM{name: "registered"}))

	SetExt([]apis.Strategy{
		strategy.NewStaticStrategy(map[apis.TypeKey]any{
			userKey.ID(): &userVM{name: "fallback"},
			"vm.guest":   &userVM{name: "guest"},
		}),
	})

	got, ok := Resolve(userKey)
	require.True(t, ok)
	assert.Equal(t, "registered", got.name)

	guest, ok := Resolve(apis.KeyOf[*userVM]("vm.guest"))
	require.True(t, ok)
	assert.Equal(t, "guest", guest.name)

	ext, ok := ExtAs[[]apis.Strategy]()
	require.True(t, ok)
	assert.Len(t, ext, 1)
}

// TestSetRegistry_Pins verifies an explicitly set registry survives reconfiguration.
func TestSetRegistry_Pins(t *testing.T) {
	resetState(t)

	pinned := registry.New(config.DefaultConfig())
	require.NoError(t, pinned.Register(userKey.ID(), &userVM{name: "pinned"}))

	SetRegistry(pinned)
	assert.True(t, IsRegistryPinned())
	assert.Same(t, pinned, Registry())

	SetConfig(config.NewConfig(config.WithRejectNil(true)))
	assert.Same(t, pinned, Registry())

	got, ok := Resolve(userKey)
	require.True(t, ok)
	assert.Equal(t, "pinned", got.name)

	SetRegistry(nil) // nil: no-op
	assert.Same(t, pinned, Registry())
}

// TestSetConfig_MigratesUnpinnedRegistry verifies a rebuild carries both namespaces forward.
func TestSetConfig_MigratesUnpinnedRegistry(t *testing.T) {
	resetState(t)

	require.NoError(t, Register(userKey, &userVM{name: "kept"}))
	require.NoError(t, RegisterPath(envSlot, "kept"))
	before := Registry()

	SetConfig(config.NewConfig(config.WithRejectNil(true)))

	assert.NotSame(t, before, Registry())
	assert.True(t, Config().RejectNil)

	got, ok := Resolve(userKey)
	require.True(t, ok)
	assert.Equal(t, "kept", got.name)
	assert.Equal(t, "kept", ResolvePath(envSlot))
}

// TestSetResolver_Pins verifies an explicitly set resolver survives reconfiguration.
func TestSetResolver_Pins(t *testing.T) {
	resetState(t)

	res := &staticResolver{v: &userVM{name: "static"}}
	SetResolver(res)
	assert.True(t, IsResolverPinned())
	assert.Same(t, res, Resolver())

	SetConfig(config.DefaultConfig())
	assert.Same(t, res, Resolver())

	got, ok := Resolve(userKey)
	require.True(t, ok)
	assert.Equal(t, "static", got.name)

	SetResolver(nil) // nil: no-op
	assert.Same(t, res, Resolver())
}

// TestPinToggles verifies the pin/unpin flags flip independently.
func TestPinToggles(t *testing.T) {
	resetState(t)

	assert.False(t, IsRegistryPinned())
	assert.False(t, IsResolverPinned())

	PinRegistry()
	assert.True(t, IsRegistryPinned())
	assert.False(t, IsResolverPinned())

	PinResolver()
	assert.True(t, IsResolverPinned())

	UnpinRegistry()
	UnpinResolver()
	assert.False(t, IsRegistryPinned())
	assert.False(t, IsResolverPinned())
}

// TestSetAll_Reset verifies the hard reset replaces every component.
func TestSetAll_Reset(t *testing.T) {
	resetState(t)

	require.NoError(t, Register(userKey, &userVM{name: "stale"}))

	cfg := config.NewConfig(config.WithRejectNil(true))
	fresh := registry.New(cfg)
	SetAll(&cfg, nil, fresh, nil, builder.New())

	assert.Same(t, fresh, Registry())
	assert.True(t, Config().RejectNil)
	assert.True(t, IsRegistryPinned())

	_, ok := Resolve(userKey)
	assert.False(t, ok)
}

// TestSetBuilder_RebuildsUnpinned verifies a new builder rebuilds unpinned layers with migration.
func TestSetBuilder_RebuildsUnpinned(t *testing.T) {
	resetState(t)

	require.NoError(t, Register(userKey, &userVM{name: "carried"}))
	before := Registry()

	SetBuilder(builder.New())
	assert.NotSame(t, before, Registry())

	got, ok := Resolve(userKey)
	require.True(t, ok)
	assert.Equal(t, "carried", got.name)

	SetBuilder(nil) // nil: no-op
}
