/*
 * Copyright (C) 2019-2025 Hedera Hashgraph, LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"testing"

	"github.com/nemtech/symbol-direct-connect/app/config"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigLogger(t *testing.T) {
	level := log.GetLevel()
	t.Cleanup(func() { log.SetLevel(level) })

	tests := []struct {
		level    string
		expected log.Level
	}{
		{level: "debug", expected: log.DebugLevel},
		{level: "warn", expected: log.WarnLevel},
		{level: "info", expected: log.InfoLevel},
		{level: "bogus", expected: log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			configLogger(tt.level)
			assert.Equal(t, tt.expected, log.GetLevel())
		})
	}
}

func TestLoadNetworkProperties(t *testing.T) {
	actual, err := loadNetworkProperties(config.Network{
		PropertiesPath: "app/persistence/properties/testdata/config-network.properties",
	})

	require.NoError(t, err)
	require.NotNil(t, actual)
	assert.NotZero(t, actual.MaxDifficultyBlocks)
}

func TestLoadNetworkPropertiesNotConfigured(t *testing.T) {
	actual, err := loadNetworkProperties(config.Network{})

	assert.NoError(t, err)
	assert.Nil(t, actual)
}

func TestLoadNetworkPropertiesNotFound(t *testing.T) {
	actual, err := loadNetworkProperties(config.Network{PropertiesPath: "not-found.properties"})

	assert.Error(t, err)
	assert.Nil(t, actual)
}
