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

package scenario

import (
	"context"
	"encoding/hex"
	"strings"

	"github.com/cucumber/godog"
	"github.com/nemtech/symbol-direct-connect/app/domain/services/merkle"
	"github.com/nemtech/symbol-direct-connect/app/domain/types"
	hErrors "github.com/nemtech/symbol-direct-connect/app/errors"
	"github.com/nemtech/symbol-direct-connect/app/persistence"
	tdomain "github.com/nemtech/symbol-direct-connect/test/domain"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

// firstLeafSeed seeds the hash of the first transaction of a block, the next ones follow
const firstLeafSeed = 0x10

type merkleFeature struct {
	*baseFeature
	height uint64
	index  int
	leaves [][]byte
	path   []types.MerklePathItem
	root   string
}

func (f *merkleFeature) blockWithTransactions(height, count int) error {
	f.height = uint64(height)
	f.leaves = make([][]byte, 0, count)
	for i := 0; i < count; i++ {
		f.leaves = append(f.leaves, tdomain.Hash(byte(firstLeafSeed+i)))
	}

	tree := merkle.FullTree(f.leaves)
	f.root = ""
	if len(tree) != 0 {
		f.root = encode(tree[len(tree)-1])
	}

	record := tdomain.NewBlockBuilder(f.height).TransactionTree(f.leaves, tree).Document()
	f.store.On("FindOne", blocksCollection, blockHeightKey, int64(height), mock.Anything).Return(record, nil)
	return nil
}

func (f *merkleFeature) requestPath(ctx context.Context, index int) error {
	if index < 0 || index >= len(f.leaves) {
		return errors.Errorf("block has no transaction %d", index)
	}

	f.index = index
	return f.findPath(ctx, encode(f.leaves[index]))
}

func (f *merkleFeature) requestUnknownPath(ctx context.Context) error {
	f.index = -1
	return f.findPath(ctx, tdomain.HashHex(0xEE))
}

func (f *merkleFeature) findPath(ctx context.Context, hash string) error {
	f.path, f.err = persistence.NewBlockRepository(f.store).FindMerkleTransactionPath(ctx, f.height, hash)
	if f.err != nil {
		log.Infof("Failed to find merkle path of %s at height %d: %v", hash, f.height, f.err)
	}
	return nil
}

func (f *merkleFeature) verifyPathLength(count int) error {
	if f.err != nil {
		return errors.Wrap(f.err, "lookup failed")
	}

	if len(f.path) != count {
		return errors.Errorf("expected %d path items, got %d", count, len(f.path))
	}
	return nil
}

func (f *merkleFeature) verifyPathProvesTransaction() error {
	if f.err != nil {
		return errors.Wrap(f.err, "lookup failed")
	}

	leaf := encode(f.leaves[f.index])
	ok, err := merkle.VerifyAuditPath(leaf, f.index, len(f.leaves), f.path, f.root)
	if err != nil {
		return err
	}

	if !ok {
		return errors.Errorf("path %+v does not prove %s against root %s", f.path, leaf, f.root)
	}
	return nil
}

func (f *merkleFeature) verifyHashNotFound() error {
	if !errors.Is(f.err, hErrors.ErrHashNotFound) {
		return errors.Errorf("expected a hash not found error, got %v", f.err)
	}
	return nil
}

func encode(hash []byte) string {
	return strings.ToUpper(hex.EncodeToString(hash))
}

func initializeMerkleScenario(ctx *godog.ScenarioContext, base *baseFeature) {
	feature := &merkleFeature{baseFeature: base}

	ctx.Step(`^a block at height (\d+) with (\d+) transactions?$`, feature.blockWithTransactions)
	ctx.Step(`^the merkle path of transaction (\d+) is requested$`, feature.requestPath)
	ctx.Step(`^the merkle path of an unknown transaction is requested$`, feature.requestUnknownPath)
	ctx.Step(`^the path has (\d+) items?$`, feature.verifyPathLength)
	ctx.Step(`^the path proves the transaction against the block merkle root$`, feature.verifyPathProvesTransaction)
	ctx.Step(`^the merkle lookup fails because the hash is not in the block$`, feature.verifyHashNotFound)
}
