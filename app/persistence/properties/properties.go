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

package properties

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	configTypeIni = "ini"
	keyDelimiter  = "::"

	chainSection     = "chain"
	mosaicSection    = "plugin:catapult.plugins.mosaic"
	namespaceSection = "plugin:catapult.plugins.namespace"
)

// NetworkProperties holds the fee related settings of a node config-network.properties file
type NetworkProperties struct {
	ChildNamespaceRentalFee        uint64
	DefaultDynamicFeeMultiplier    uint64
	MaxDifficultyBlocks            uint64
	MosaicRentalFee                uint64
	RootNamespaceRentalFeePerBlock uint64
}

// LoadNetworkProperties reads the network properties file at path. Section names contain dots, so keys are
// delimited with "::".
func LoadNetworkProperties(path string) (*NetworkProperties, error) {
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))
	v.SetConfigFile(path)
	v.SetConfigType(configTypeIni)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "Failed to read network properties %s", path)
	}

	reader := propertyReader{v: v}
	properties := &NetworkProperties{
		ChildNamespaceRentalFee:        reader.uint64(namespaceSection, "childNamespaceRentalFee"),
		DefaultDynamicFeeMultiplier:    reader.uint64(chainSection, "defaultDynamicFeeMultiplier"),
		MaxDifficultyBlocks:            reader.uint64(chainSection, "maxDifficultyBlocks"),
		MosaicRentalFee:                reader.uint64(mosaicSection, "mosaicRentalFee"),
		RootNamespaceRentalFeePerBlock: reader.uint64(namespaceSection, "rootNamespaceRentalFeePerBlock"),
	}
	if reader.err != nil {
		return nil, reader.err
	}

	log.Infof("Loaded network properties from %s: %+v", path, properties)
	return properties, nil
}

// propertyReader keeps the first error so the properties can be read in one go
type propertyReader struct {
	err error
	v   *viper.Viper
}

func (r *propertyReader) uint64(section, name string) uint64 {
	if r.err != nil {
		return 0
	}

	key := section + keyDelimiter + name
	if !r.v.IsSet(key) {
		r.err = errors.Errorf("Missing network property %s in section %s", name, section)
		return 0
	}

	value, err := ParseUint(r.v.GetString(key))
	if err != nil {
		r.err = errors.Wrapf(err, "Invalid network property %s in section %s", name, section)
	}
	return value
}

// ParseUint parses a property number, which may use ' as digit group separator, e.g. 1'000'000
func ParseUint(value string) (uint64, error) {
	trimmed := strings.ReplaceAll(strings.TrimSpace(value), "'", "")
	if trimmed == "" {
		return 0, errors.Errorf("Property value cannot be empty: '%s'", value)
	}

	return strconv.ParseUint(trimmed, 10, 64)
}
