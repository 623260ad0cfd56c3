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

import (
	"go.uber.org/zap"

	"dirpx.dev/dix/dixapi/overwrite"
)

// Config carries read-only registry knobs.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Overwrite selects what happens when a register call hits an occupied
	// key: replace it (last write wins) or reject the registration.
	Overwrite overwrite.Policy

	// RejectNil controls whether registering a nil value is an error.
	// If false, nil is stored like any other opaque value.
	RejectNil bool

	// Logger, when non-nil, receives debug events for registry writes
	// (register/remove). Reads are never logged. A nil Logger is silent.
	Logger *zap.Logger
}
