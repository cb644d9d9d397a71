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

package config

import (
	_ "embed"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

//go:embed application.yml
var defaultConfig string

const (
	apiConfigEnvKey = "SYMBOL_DIRECT_API_CONFIG"
	configName      = "application"
	configTypeYaml  = "yml"
	envKeyDelimiter = "_"
	keyDelimiter    = "::"
)

type fullConfig struct {
	Symbol struct {
		DirectConnect Config
	}
}

// LoadConfig reads the embedded defaults, then ./application.yml, then the file named by SYMBOL_DIRECT_API_CONFIG, and
// finally environment variables such as SYMBOL_DIRECTCONNECT_DB_HOST
func LoadConfig() (*Config, error) {
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))
	v.SetConfigType(configTypeYaml)
	if err := v.ReadConfig(strings.NewReader(defaultConfig)); err != nil {
		return nil, errors.Wrap(err, "Invalid default configuration")
	}

	if err := mergeConfigFiles(v); err != nil {
		return nil, err
	}

	// env variables are bound last so every key known from the files can be overridden
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(keyDelimiter, envKeyDelimiter))

	var full fullConfig
	if err := v.Unmarshal(&full, viper.DecodeHook(mapstructure.StringToTimeDurationHookFunc())); err != nil {
		return nil, err
	}

	config := &full.Symbol.DirectConnect
	config.Log.Level = strings.ToLower(config.Log.Level)
	if err := validator.New().Struct(config); err != nil {
		return nil, errors.Wrap(err, "Invalid configuration")
	}

	redacted := *config
	redacted.Db.Password = ""
	log.Infof("Using configuration: %+v", redacted)

	return config, nil
}

func mergeConfigFiles(v *viper.Viper) error {
	v.SetConfigName(configName)
	v.AddConfigPath(".")
	if err := mergeExternalConfigFile(v); err != nil {
		return err
	}

	envConfigFile, ok := os.LookupEnv(apiConfigEnvKey)
	if !ok {
		return nil
	}

	v.SetConfigFile(envConfigFile)
	return mergeExternalConfigFile(v)
}

func mergeExternalConfigFile(v *viper.Viper) error {
	err := v.MergeInConfig()
	if err == nil {
		log.Infof("Loaded external config file: %s", v.ConfigFileUsed())
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		return err
	}

	log.Info("External configuration file not found")
	return nil
}
