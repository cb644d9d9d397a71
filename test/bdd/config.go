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

package bdd

import (
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	configName     = "application"
	configPrefix   = "symbol.directconnect.test"
	configTypeYaml = "yml"
	defaultConfig  = `
symbol:
  directConnect:
    test:
      log:
        level: debug
      poll:
        timeout: 0s
`
)

type config struct {
	Log  logConfig
	Poll pollConfig
}

type logConfig struct {
	Level string
}

type pollConfig struct {
	Timeout time.Duration
}

func loadConfig() (*config, error) {
	v := viper.New()
	v.SetConfigType(configTypeYaml)
	if err := v.ReadConfig(strings.NewReader(defaultConfig)); err != nil {
		return nil, err
	}

	v.SetConfigName(configName)
	v.AddConfigPath(".")
	err := v.MergeInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil:
		log.Infof("Loaded external configuration file %s", v.ConfigFileUsed())
	case !errors.As(err, &notFound):
		return nil, errors.Wrap(err, "Failed to load external configuration file")
	}

	suiteConfig := &config{}
	if err := v.Sub(configPrefix).Unmarshal(suiteConfig, addDecodeHooks); err != nil {
		return nil, errors.Wrap(err, "Failed to unmarshal config")
	}

	return suiteConfig, nil
}

func addDecodeHooks(c *mapstructure.DecoderConfig) {
	hooks := []mapstructure.DecodeHookFunc{mapstructure.StringToTimeDurationHookFunc()}
	if c.DecodeHook != nil {
		hooks = append([]mapstructure.DecodeHookFunc{c.DecodeHook}, hooks...)
	}
	c.DecodeHook = mapstructure.ComposeDecodeHookFunc(hooks...)
}
