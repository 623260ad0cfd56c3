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

package strategy

import (
	"dirpx.dev/dix/apis"
)

// NewStaticStrategy creates an apis.Strategy serving fixed default values.
//
// It is meant as a fallback step after the registry strategy: type-namespace
// absence is recoverable, and a static step lets callers pick their defaults
// once instead of at every resolve site. The defaults map is copied; later
// mutation of the argument does not affect the strategy.
func NewStaticStrategy(defaults map[apis.TypeKey]any) apis.Strategy {
	m := make(map[apis.TypeKey]any, len(defaults))
	for k, v := range defaults {
		m[k] = v
	}
	return &staticStrategy{defaults: m}
}

// staticStrategy serves from an immutable defaults map.
type staticStrategy struct {
	defaults map[apis.TypeKey]any
}

// Ensure staticStrategy implements apis.Strategy.
var _ apis.Strategy = (*staticStrategy)(nil)

// TryResolve serves k from the defaults map.
func (s *staticStrategy) TryResolve(k apis.TypeKey, _ apis.Config) (any, bool) {
	if k == "" {
		return nil, false
	}
	v, ok := s.defaults[k]
	return v, ok
}
