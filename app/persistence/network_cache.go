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

package persistence

import (
	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/Code-Hex/go-generics-cache/policy/lru"
	"github.com/nemtech/symbol-direct-connect/app/config"
	"github.com/nemtech/symbol-direct-connect/app/domain/types"
)

// NetworkTypeCache remembers the network type of every node host the process talked to. The network type of a
// chain never changes so entries are never invalidated.
type NetworkTypeCache struct {
	entries *cache.Cache[string, types.NetworkType]
}

func NewNetworkTypeCache(cacheConfig config.NetworkCache) *NetworkTypeCache {
	return &NetworkTypeCache{
		entries: cache.New(cache.AsLRU[string, types.NetworkType](lru.WithCapacity(cacheConfig.MaxSize))),
	}
}

func (c *NetworkTypeCache) Get(host string) (types.NetworkType, bool) {
	return c.entries.Get(host)
}

func (c *NetworkTypeCache) Set(host string, networkType types.NetworkType) {
	c.entries.Set(host, networkType)
}
