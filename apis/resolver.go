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

// Resolver coordinates strategies to resolve values in the type namespace.
// Typical chain: RegistryStrategy -> StaticStrategy/FuncStrategy fallbacks.
//
// Path keys are never chained: a path lookup goes straight to the Registry
// and is fatal when absent.
type Resolver interface {
	// Resolve returns the value for k, or (nil, false) if no strategy
	// produced one.
	Resolve(k TypeKey, cfg Config) (v any, ok bool)
}
