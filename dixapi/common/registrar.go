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

package common

import "dirpx.dev/dix/apis"

// Registrar installs a bundle of bindings into a Registry.
//
// # Overview
//
// Registrar is the bootstrap contract of dix. Application bootstrap code
// typically groups related bindings (a subsystem's view models, its
// configuration slots) into one Registrar per subsystem and installs them
// in one pass before any consumer is constructed. Accessors resolve at
// their own construction time, so the registry MUST be fully populated
// before the first accessor-owning component exists; Registrar makes that
// ordering explicit and testable.
//
// # Usage
//
//	type authModule struct{ vm *AuthViewModel }
//
//	func (m *authModule) RegisterInto(reg apis.Registry) error {
//	    if err := reg.Register(authViewModelKey.ID(), m.vm); err != nil {
//	        return err
//	    }
//	    return reg.RegisterPath(tokenEndpointSlot.ID(), m.endpoint)
//	}
//
// A process then installs all of its modules at startup:
//
//	if err := dix.Install(authModule, profileModule); err != nil { ... }
//
// # Contract
//
//   - RegisterInto MUST be safe to call once per Registry instance; calling
//     it again against the same registry is governed by the registry's
//     overwrite policy, not by the Registrar.
//   - RegisterInto MUST NOT resolve values from the registry it is
//     populating; install order between Registrars is unspecified.
//   - RegisterInto MUST NOT perform blocking operations or I/O. Instances
//     are expected to be constructed before installation begins.
//   - Returned errors SHOULD wrap the registry's sentinel errors so callers
//     can classify failures with errors.Is.
type Registrar interface {
	// RegisterInto writes this bundle's bindings into reg.
	RegisterInto(reg apis.Registry) error
}

// RegistrarFunc adapts a plain function to the Registrar interface.
//
// It is a convenience for small bundles that do not warrant a named type:
//
//	dix.Install(common.RegistrarFunc(func(reg apis.Registry) error {
//	    return reg.Register(clockKey.ID(), clock)
//	}))
//
// All contractual requirements of Registrar apply to the wrapped function.
type RegistrarFunc func(reg apis.Registry) error

// RegisterInto implements Registrar for RegistrarFunc.
func (f RegistrarFunc) RegisterInto(reg apis.Registry) error {
	return f(reg)
}
