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

package overwrite

import (
	"errors"
	"strings"
)

// Policy controls what a registry does when a register call targets an
// already-occupied key.
//
// # Overview
//
// Policy is a small enumerated type selected once, at registry construction
// time, and applied uniformly to both the type and the path namespace. It
// governs replacement behavior only; it has no effect on lookups, removals,
// or the fatal-on-missing-path contract.
//
// Policy is intentionally minimal: it selects a broad class of behavior and
// leaves everything else (validation, logging, diagnostics) to the registry
// configuration.
//
// # Values
//
// The following policies are defined:
//
//   - LastWriteWins — re-registration replaces the prior value.
//   - Reject        — re-registration of an occupied key is an error.
//
// # Contract
//
//   - Registry implementations MUST treat Policy as a stable, public API;
//     adding new values is allowed, but existing values MUST NOT change
//     their semantics in breaking ways.
//   - Policy values MUST be safe to use concurrently across goroutines
//     (they are plain integers).
//   - Policy SHOULD be chosen at configuration time, not switched at
//     runtime on hot paths.
type Policy int

const (
	// LastWriteWins replaces any existing entry for the same key.
	//
	// This is the default. Re-registration is an ordinary, supported
	// operation: bootstrap code may overwrite bindings (for example a test
	// fixture replacing a production instance), and sequence-ordered bulk
	// registration resolves conflicts in favor of the later entry.
	LastWriteWins Policy = iota

	// Reject refuses to replace an existing entry for the same key.
	//
	// Under Reject, a register call against an occupied key fails with the
	// registry's conflict error and leaves the stored value unchanged.
	// Registered values may be uncomparable (maps, funcs), so no
	// idempotency check is attempted: any re-registration of an occupied
	// key is rejected, even with an identical value.
	Reject
)

// ErrUnknownPolicy is returned by ParsePolicy for unrecognized literals.
var ErrUnknownPolicy = errors.New("overwrite: unknown policy")

// String returns the canonical literal for p, or "unknown" for
// out-of-range values.
func (p Policy) String() string {
	switch p {
	case LastWriteWins:
		return "last-write-wins"
	case Reject:
		return "reject"
	default:
		return "unknown"
	}
}

// IsValid reports whether p is one of the defined policies.
func (p Policy) IsValid() bool {
	return p == LastWriteWins || p == Reject
}

// ParsePolicy parses a canonical policy literal (case-insensitive).
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "last-write-wins":
		return LastWriteWins, nil
	case "reject":
		return Reject, nil
	default:
		return LastWriteWins, ErrUnknownPolicy
	}
}
