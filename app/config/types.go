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
	"fmt"
	"net/url"
	"time"
)

const NetworkCacheKey = "network"

type Config struct {
	Cache           Cache
	Db              Db
	Log             Log
	Network         Network
	Port            uint16 `validate:"gt=0"`
	Retry           Retry
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" validate:"gt=0"`
}

type Cache struct {
	Network NetworkCache
}

type NetworkCache struct {
	MaxSize int `yaml:"maxSize" validate:"gt=0"`
}

type Db struct {
	AuthSource       string `yaml:"authSource"`
	Host             string `validate:"required"`
	Name             string `validate:"required"`
	Password         string
	Pool             Pool
	Port             uint16 `validate:"gt=0"`
	StatementTimeout int    `yaml:"statementTimeout" validate:"gte=0"`
	Username         string
}

// GetUri builds the mongodb connection string, credentials are only included when a username is set
func (db Db) GetUri() string {
	uri := url.URL{
		Scheme: "mongodb",
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   "/" + db.Name,
	}
	if db.Username != "" {
		uri.User = url.UserPassword(db.Username, db.Password)
		if db.AuthSource != "" {
			uri.RawQuery = url.Values{"authSource": {db.AuthSource}}.Encode()
		}
	}
	return uri.String()
}

type Log struct {
	Level string `validate:"oneof=trace debug info warn warning error fatal panic"`
}

type Network struct {
	PropertiesPath string `yaml:"propertiesPath"`
}

type Pool struct {
	MaxConnIdleTime time.Duration `yaml:"maxConnIdleTime"`
	MaxPoolSize     uint64        `yaml:"maxPoolSize" validate:"gtefield=MinPoolSize"`
	MinPoolSize     uint64        `yaml:"minPoolSize"`
}

type Retry struct {
	BackOff time.Duration `yaml:"backOff" validate:"gt=0"`
	Timeout time.Duration `validate:"gte=0"`
}
