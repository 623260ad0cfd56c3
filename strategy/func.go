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

// NewFuncStrategy creates an apis.Strategy from a plain lookup function.
// The function must be safe for concurrent calls. A nil fn never handles.
func NewFuncStrategy(fn func(k apis.TypeKey) (any, bool)) apis.Strategy {
	return &funcStrategy{fn: fn}
}

// funcStrategy delegates to a caller-supplied lookup function.
type funcStrategy struct {
	fn func(k apis.TypeKey) (any, bool)
}

// Ensure funcStrategy implements apis.Strategy.
var _ apis.Strategy = (*funcStrategy)(nil)

// TryResolve delegates to the wrapped function.
func (s *funcStrategy) TryResolve(k apis.TypeKey, _ apis.Config) (any, bool) {
	if s.fn == nil || k == "" {
		return nil, false
	}
	return s.fn(k)
}
