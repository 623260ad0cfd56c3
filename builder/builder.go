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

package builder

import (
	"dirpx.dev/dix/apis"
	"dirpx.dev/dix/registry"
	"dirpx.dev/dix/resolver"
	"dirpx.dev/dix/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new apis.Registry based on the provided
// configuration and pre-existing registry. If a pre-existing registry is
// provided, entries of both namespaces are copied into the new registry.
func (b *builder) BuildRegistry(cfg apis.Config, prev apis.Registry, _ any) apis.Registry {
	nreg := registry.New(cfg)
	if prev != nil {
		for _, e := range prev.Entries() {
			_ = nreg.Register(e.Key, e.Value)
		}
		for _, e := range prev.PathEntries() {
			_ = nreg.RegisterPath(e.Path, e.Value)
		}
	}
	return nreg
}

// BuildResolver builds and returns a new apis.Resolver for the configuration
// and registry. The chain starts with the registry strategy; when ext is a
// []apis.Strategy, those strategies are appended as fallbacks in order.
// Any other ext value is ignored.
func (b *builder) BuildResolver(cfg apis.Config, reg apis.Registry, _ apis.Resolver, ext any) apis.Resolver {
	strats := []apis.Strategy{strategy.NewRegistryStrategy(reg)}
	if fallbacks, ok := ext.([]apis.Strategy); ok {
		strats = append(strats, fallbacks...)
	}
	return resolver.New(strats...)
}
