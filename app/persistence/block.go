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

	"github.com/nemtech/symbol-direct-connect/app/domain/services/merkle"
	"github.com/nemtech/symbol-direct-connect/app/domain/types"
	"github.com/nemtech/symbol-direct-connect/app/interfaces"
	"github.com/nemtech/symbol-direct-connect/app/mapper"
	"github.com/nemtech/symbol-direct-connect/app/tools"
	"github.com/pkg/errors"
)

const blockHeightKey = "block.height"

// blockRepository struct that has connection to the document store
type blockRepository struct {
	store interfaces.DocumentStore
}

// NewBlockRepository creates an instance of a blockRepository struct
func NewBlockRepository(store interfaces.DocumentStore) interfaces.BlockRepository {
	return &blockRepository{store: store}
}

func (br *blockRepository) FindByHeight(ctx context.Context, height uint64) (*types.BlockInfo, error) {
	value, err := tools.CastToInt64(height)
	if err != nil {
		return nil, err
	}

	record, err := br.store.FindOne(ctx, blocksCollection, blockHeightKey, value, 0)
	if err != nil {
		return nil, err
	}

	return mapper.DecodeBlockInfo(record)
}

func (br *blockRepository) FindByHeightRange(ctx context.Context, low, high uint64) ([]*types.BlockInfo, error) {
	if low >= high {
		return []*types.BlockInfo{}, nil
	}

	lowValue, err := tools.CastToInt64(low)
	if err != nil {
		return nil, err
	}

	highValue, err := tools.CastToInt64(high)
	if err != nil {
		return nil, err
	}

	records, err := br.store.FindRange(ctx, blocksCollection, blockHeightKey, lowValue, highValue, 0)
	if err != nil {
		return nil, err
	}

	blocks := make([]*types.BlockInfo, 0, len(records))
	for _, record := range records {
		block, err := mapper.DecodeBlockInfo(record)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}

	return blocks, nil
}

func (br *blockRepository) FindMerkleTransactionPath(
	ctx context.Context,
	height uint64,
	hash string,
) ([]types.MerklePathItem, error) {
	return br.findMerklePath(ctx, height, hash, (*types.BlockInfo).TransactionLeaves)
}

func (br *blockRepository) FindMerkleStatementPath(
	ctx context.Context,
	height uint64,
	hash string,
) ([]types.MerklePathItem, error) {
	return br.findMerklePath(ctx, height, hash, (*types.BlockInfo).StatementLeaves)
}

func (br *blockRepository) findMerklePath(
	ctx context.Context,
	height uint64,
	hash string,
	leaves func(*types.BlockInfo) []string,
) ([]types.MerklePathItem, error) {
	block, err := br.FindByHeight(ctx, height)
	if err != nil {
		return nil, err
	}

	path, err := merkle.BuildAuditPath(hash, leaves(block))
	if err != nil {
		return nil, errors.Wrapf(err, "block %d", height)
	}

	return path, nil
}
