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

package config

import (
	"go.uber.org/zap"

	"dirpx.dev/dix/apis"
	"dirpx.dev/dix/dixapi/overwrite"
)

const (
	// DefaultOverwrite represents the default overwrite policy.
	// Re-registration replaces the prior value (last write wins).
	DefaultOverwrite = overwrite.LastWriteWins
	// DefaultRejectNil represents the default for RejectNil.
	// When false, nil values are stored like any other opaque value.
	DefaultRejectNil = false
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure the overwrite policy is valid.
	if !cfg.Overwrite.IsValid() {
		cfg.Overwrite = DefaultOverwrite
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Overwrite: DefaultOverwrite,
		RejectNil: DefaultRejectNil,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithOverwrite sets the overwrite policy.
// An invalid policy resets to the default.
func WithOverwrite(p overwrite.Policy) Option {
	return func(c *apis.Config) {
		if !p.IsValid() {
			c.Overwrite = DefaultOverwrite
			return
		}
		c.Overwrite = p
	}
}

// WithRejectNil sets the RejectNil option.
func WithRejectNil(reject bool) Option {
	return func(c *apis.Config) {
		c.RejectNil = reject
	}
}

// WithLogger sets the registry write logger. A nil logger is silent.
func WithLogger(l *zap.Logger) Option {
	return func(c *apis.Config) {
		c.Logger = l
	}
}
