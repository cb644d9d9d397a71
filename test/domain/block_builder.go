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

package domain

import (
	"github.com/nemtech/symbol-direct-connect/app/document"
	"github.com/nemtech/symbol-direct-connect/app/domain/types"
	"github.com/nemtech/symbol-direct-connect/app/interfaces"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BlockBuilder struct {
	block bson.M
	meta  bson.M
}

func (b *BlockBuilder) FeeMultiplier(feeMultiplier uint32) *BlockBuilder {
	b.block["feeMultiplier"] = int32(feeMultiplier)
	return b
}

// TransactionTree stores the flattened transaction merkle tree of the leaves
func (b *BlockBuilder) TransactionTree(leaves [][]byte, tree [][]byte) *BlockBuilder {
	b.meta["numTransactions"] = int32(len(leaves))
	b.meta["transactionMerkleTree"] = binaries(tree)
	return b
}

// StatementTree stores the flattened statement merkle tree of the leaves
func (b *BlockBuilder) StatementTree(leaves [][]byte, tree [][]byte) *BlockBuilder {
	b.meta["numStatements"] = int32(len(leaves))
	b.meta["statementMerkleTree"] = binaries(tree)
	return b
}

func (b *BlockBuilder) Record() bson.M {
	return bson.M{"_id": primitive.NewObjectID(), "meta": b.meta, "block": b.block}
}

func (b *BlockBuilder) Document() document.Document {
	return document.New(b.Record())
}

func (b *BlockBuilder) Persist(dbClient interfaces.DbClient) {
	Persist(dbClient, "blocks", b.Record())
}

func binaries(values [][]byte) bson.A {
	result := make(bson.A, len(values))
	for i, value := range values {
		result[i] = Binary(value)
	}
	return result
}

// NewBlockBuilder returns a builder of an empty normal block at height
func NewBlockBuilder(height uint64) *BlockBuilder {
	return &BlockBuilder{
		block: bson.M{
			"beneficiaryAddress": BinaryHex(RecipientAddress),
			"difficulty":         Long(100_000_000_000_000),
			"feeMultiplier":      int32(0),
			"height":             Long(height),
			"network":            int32(DefaultNetwork),
			"previousBlockHash":  Binary(Hash(0x01)),
			"receiptsHash":       Binary(Hash(0x02)),
			"signature":          BinaryHex(Signature),
			"signerPublicKey":    BinaryHex(SignerPublicKey),
			"size":               int32(372),
			"stateHash":          Binary(Hash(0x03)),
			"timestamp":          Long(height * 15_000),
			"transactionsHash":   Binary(Hash(0x04)),
			"type":               int32(types.NormalBlock),
			"version":            int32(1),
		},
		meta: bson.M{
			"generationHash":               Binary(Hash(0x05)),
			"hash":                         Binary(Hash(byte(height))),
			"numStatements":                int32(0),
			"numTransactions":              int32(0),
			"stateHashSubCacheMerkleRoots": bson.A{},
			"statementMerkleTree":          bson.A{},
			"totalFee":                     Long(0),
			"transactionMerkleTree":        bson.A{},
		},
	}
}
