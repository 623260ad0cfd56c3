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

import "strconv"

// UnresolvedTypeError is the panic payload for fatal type-key lookups
// (MustResolve, accessor construction). It carries the missing key identity
// for diagnostics.
type UnresolvedTypeError struct {
	// Key is the type key that had no binding.
	Key TypeKey
}

// Error implements the error interface.
func (e *UnresolvedTypeError) Error() string {
	// Example: dix: no value bound for type key "app.viewmodel"
	return "dix: no value bound for type key " + strconv.Quote(string(e.Key))
}

// UnresolvedPathError is the panic payload for Registry.ResolvePath on an
// unregistered path. An unregistered path is a programming error, not a
// runtime condition to recover from.
type UnresolvedPathError struct {
	// Path is the path key that had no binding.
	Path PathKey
}

// Error implements the error interface.
func (e *UnresolvedPathError) Error() string {
	// Example: dix: no value bound for path key "cfg.baseURL"
	return "dix: no value bound for path key " + strconv.Quote(string(e.Path))
}

// WrongTypeError is the panic payload when a binding exists but its dynamic
// type does not match the typed key or slot it was requested through.
// Exactly one of Key and Path is set, depending on the namespace.
type WrongTypeError struct {
	// Key is the type key requested, if the lookup was type-addressed.
	Key TypeKey
	// Path is the path key requested, if the lookup was path-addressed.
	Path PathKey
	// Got is the dynamic type of the stored value.
	Got string
	// Want is the type requested by the caller.
	Want string
}

// Error implements the error interface.
func (e *WrongTypeError) Error() string {
	// Example: dix: path key "cfg.baseURL" holds string, want *url.URL
	if e.Path != "" {
		return "dix: path key " + strconv.Quote(string(e.Path)) + " holds " + e.Got + ", want " + e.Want
	}
	return "dix: type key " + strconv.Quote(string(e.Key)) + " holds " + e.Got + ", want " + e.Want
}
