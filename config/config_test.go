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

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"dirpx.dev/dix/apis"
	"dirpx.dev/dix/config"
	"dirpx.dev/dix/dixapi/overwrite"
)

// TestDefaultConfig verifies the documented defaults.
func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	assert.Equal(t, overwrite.LastWriteWins, cfg.Overwrite)
	assert.False(t, cfg.RejectNil)
	assert.Nil(t, cfg.Logger)
}

// TestNewConfig_Options verifies functional options apply in order.
func TestNewConfig_Options(t *testing.T) {
	t.Parallel()

	l := zap.NewNop()
	cfg := config.NewConfig(
		config.WithOverwrite(overwrite.Reject),
		config.WithRejectNil(true),
		config.WithLogger(l),
	)

	assert.Equal(t, overwrite.Reject, cfg.Overwrite)
	assert.True(t, cfg.RejectNil)
	assert.Same(t, l, cfg.Logger)
}

// TestWithOverwrite_InvalidResets verifies an invalid policy falls back to the default.
func TestWithOverwrite_InvalidResets(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig(
		config.WithOverwrite(overwrite.Reject),
		config.WithOverwrite(overwrite.Policy(99)),
	)
	assert.Equal(t, config.DefaultOverwrite, cfg.Overwrite)
}

// TestNewConfig_GuardsRawMutation verifies the final validity check catches raw option writes.
func TestNewConfig_GuardsRawMutation(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig(func(c *apis.Config) {
		c.Overwrite = overwrite.Policy(-1)
	})
	assert.Equal(t, config.DefaultOverwrite, cfg.Overwrite)
}
