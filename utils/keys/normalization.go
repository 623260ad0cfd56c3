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

package keys

import (
	"errors"
	"strings"
	"unicode"
)

var (
	// ErrEmptyKey is returned when an empty key literal is provided.
	ErrEmptyKey = errors.New("keys: empty key literal")
	// ErrPaddedKey indicates a key literal with leading or trailing whitespace.
	// Padded literals are rejected rather than trimmed: silently normalizing
	// would make two visually distinct declarations share one binding.
	ErrPaddedKey = errors.New("keys: key literal has surrounding whitespace")
	// ErrUnprintableKey indicates a key literal containing control or other
	// unprintable characters.
	ErrUnprintableKey = errors.New("keys: key literal contains unprintable characters")
)

// Validate checks a key literal shared by both registry namespaces.
//
// Literals must be non-empty, free of surrounding whitespace, and printable.
// Validation happens on the write path only; lookups take literals as-is.
func Validate(lit string) error {
	if lit == "" {
		return ErrEmptyKey
	}
	if strings.TrimSpace(lit) != lit {
		return ErrPaddedKey
	}
	for _, r := range lit {
		if !unicode.IsPrint(r) {
			return ErrUnprintableKey
		}
	}
	return nil
}

// Join builds a dotted key literal from segments, skipping empty ones.
// Conventional form is lowercase, dot-separated: "cfg.baseURL", "vm.auth".
func Join(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ".")
}
