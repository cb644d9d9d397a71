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
	"context"
	"math"
	"sort"

	"github.com/nemtech/symbol-direct-connect/app/domain/types"
	hErrors "github.com/nemtech/symbol-direct-connect/app/errors"
	"github.com/nemtech/symbol-direct-connect/app/interfaces"
	"github.com/nemtech/symbol-direct-connect/app/persistence/properties"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	chainHeightKey = "current.height"
	// transactionFeeBlocks is the number of most recent blocks the transaction fee statistics are computed over
	transactionFeeBlocks = 300
)

// networkRepository struct that has connection to the document store
type networkRepository struct {
	blockRepository interfaces.BlockRepository
	host            string
	networkCache    *NetworkTypeCache
	properties      *properties.NetworkProperties
	store           interfaces.DocumentStore
}

// NewNetworkRepository creates an instance of a networkRepository struct. The network type is cached per host, the
// rental fees need the network properties.
func NewNetworkRepository(
	store interfaces.DocumentStore,
	host string,
	networkCache *NetworkTypeCache,
	networkProperties *properties.NetworkProperties,
) interfaces.NetworkRepository {
	return &networkRepository{
		blockRepository: NewBlockRepository(store),
		host:            host,
		networkCache:    networkCache,
		properties:      networkProperties,
		store:           store,
	}
}

// NetworkType returns the network type of the first block
func (nr *networkRepository) NetworkType(ctx context.Context) (types.NetworkType, error) {
	if networkType, ok := nr.networkCache.Get(nr.host); ok {
		return networkType, nil
	}

	block, err := nr.blockRepository.FindByHeight(ctx, 1)
	if err != nil {
		return 0, err
	}

	log.Infof("Network of %s is %s", nr.host, block.Network)
	nr.networkCache.Set(nr.host, block.Network)
	return block.Network, nil
}

func (nr *networkRepository) TransactionFees(ctx context.Context) (*types.TransactionFees, error) {
	multipliers, err := nr.lastFeeMultipliers(ctx, transactionFeeBlocks)
	if err != nil {
		return nil, err
	}

	if len(multipliers) == 0 {
		return nil, errors.Wrap(hErrors.ErrRecordNotFound, "no blocks")
	}

	sort.Slice(multipliers, func(i, j int) bool { return multipliers[i] < multipliers[j] })
	var sum float64
	for _, multiplier := range multipliers {
		sum += float64(multiplier)
	}

	return &types.TransactionFees{
		AverageFeeMultiplier: uint32(math.Round(sum / float64(len(multipliers)))),
		HighestFeeMultiplier: multipliers[len(multipliers)-1],
		LowestFeeMultiplier:  multipliers[0],
		MedianFeeMultiplier:  multipliers[len(multipliers)/2],
	}, nil
}

func (nr *networkRepository) RentalFees(ctx context.Context) (*types.RentalFees, error) {
	if nr.properties == nil {
		return nil, errors.Wrap(hErrors.ErrInvalidArgument, "network properties are not configured")
	}

	dynamicFeeMultiplier, err := nr.dynamicFeeMultiplier(ctx)
	if err != nil {
		return nil, err
	}

	return &types.RentalFees{
		EffectiveChildNamespaceRentalFee:        dynamicFeeMultiplier * nr.properties.ChildNamespaceRentalFee,
		EffectiveMosaicRentalFee:                dynamicFeeMultiplier * nr.properties.MosaicRentalFee,
		EffectiveRootNamespaceRentalFeePerBlock: dynamicFeeMultiplier * nr.properties.RootNamespaceRentalFeePerBlock,
	}, nil
}

// dynamicFeeMultiplier is the median of the non zero fee multipliers of the last maxDifficultyBlocks blocks. The
// default multiplier applies while the chain is shorter than that or too few blocks set a multiplier.
func (nr *networkRepository) dynamicFeeMultiplier(ctx context.Context) (uint64, error) {
	blockCount := nr.properties.MaxDifficultyBlocks
	defaultMultiplier := nr.properties.DefaultDynamicFeeMultiplier

	multipliers, err := nr.lastFeeMultipliers(ctx, blockCount)
	if err != nil {
		return 0, err
	}

	if uint64(len(multipliers)) < blockCount {
		return defaultMultiplier, nil
	}

	nonZero := make([]uint32, 0, len(multipliers))
	for _, multiplier := range multipliers {
		if multiplier != 0 {
			nonZero = append(nonZero, multiplier)
		}
	}

	median := int(blockCount / 2)
	if len(nonZero) <= median {
		return defaultMultiplier, nil
	}

	sort.Slice(nonZero, func(i, j int) bool { return nonZero[i] < nonZero[j] })
	return uint64(nonZero[median]), nil
}

func (nr *networkRepository) lastFeeMultipliers(ctx context.Context, count uint64) ([]uint32, error) {
	height, err := nr.chainHeight(ctx)
	if err != nil {
		return nil, err
	}

	if count == 0 || height == 0 {
		return []uint32{}, nil
	}

	low := uint64(1)
	if height > count {
		low = height - count + 1
	}

	blocks, err := nr.blockRepository.FindByHeightRange(ctx, low, height+1)
	if err != nil {
		return nil, err
	}

	multipliers := make([]uint32, 0, len(blocks))
	for _, block := range blocks {
		multipliers = append(multipliers, block.FeeMultiplier)
	}
	return multipliers, nil
}

func (nr *networkRepository) chainHeight(ctx context.Context) (uint64, error) {
	records, err := nr.store.Find(ctx, chainStatisticCollection, bson.M{}, 0)
	if err != nil {
		return 0, err
	}

	if len(records) == 0 {
		return 0, errors.Wrap(hErrors.ErrRecordNotFound, chainStatisticCollection)
	}

	return records[0].Uint64(chainHeightKey)
}
