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

package mapper

import (
	"github.com/nemtech/symbol-direct-connect/app/document"
	"github.com/nemtech/symbol-direct-connect/app/domain/types"
)

// DecodeBlockInfo decodes a block record made of the block header and the meta the node indexed for it
func DecodeBlockInfo(record document.Document) (*types.BlockInfo, error) {
	meta, err := record.Document(metaField)
	if err != nil {
		return nil, err
	}

	block, err := record.Document("block")
	if err != nil {
		return nil, err
	}

	info := &types.BlockInfo{}
	if err = decodeBlockMeta(meta, info); err != nil {
		return nil, err
	}

	if err = decodeBlockHeader(block, info); err != nil {
		return nil, err
	}
	return info, nil
}

func decodeBlockMeta(meta document.Document, info *types.BlockInfo) error {
	var err error
	if info.Hash, err = meta.Hex("hash"); err != nil {
		return err
	}

	if info.GenerationHash, err = meta.Hex("generationHash"); err != nil {
		return err
	}

	if info.TotalFee, err = meta.Uint64("totalFee"); err != nil {
		return err
	}

	if info.NumTransactions, err = meta.Uint32("numTransactions"); err != nil {
		return err
	}

	if meta.Has("numStatements") {
		if info.NumStatements, err = meta.Uint32("numStatements"); err != nil {
			return err
		}
	}

	if info.StateHashSubCacheMerkleRoots, err = meta.HexArray("stateHashSubCacheMerkleRoots"); err != nil {
		return err
	}

	if info.TransactionMerkleTree, err = meta.HexArray("transactionMerkleTree"); err != nil {
		return err
	}

	info.StatementMerkleTree, err = meta.HexArray("statementMerkleTree")
	return err
}

func decodeBlockHeader(block document.Document, info *types.BlockInfo) error {
	network, version, err := decodeNetworkAndVersion(block)
	if err != nil {
		return err
	}
	info.Network = network
	info.Version = version

	blockType, err := block.Uint16("type")
	if err != nil {
		return err
	}
	info.Type = types.BlockType(blockType)

	if info.Signer, err = decodePublicAccount(block, "signerPublicKey", network); err != nil {
		return err
	}

	if info.Signature, err = block.Hex("signature"); err != nil {
		return err
	}

	if block.Has("size") {
		if info.Size, err = block.Uint32("size"); err != nil {
			return err
		}
	}

	if info.Height, err = block.Uint64("height"); err != nil {
		return err
	}

	if info.Timestamp, err = block.Uint64("timestamp"); err != nil {
		return err
	}

	if info.Difficulty, err = block.Uint64("difficulty"); err != nil {
		return err
	}

	if info.FeeMultiplier, err = block.Uint32("feeMultiplier"); err != nil {
		return err
	}

	if info.PreviousBlockHash, err = block.Hex("previousBlockHash"); err != nil {
		return err
	}

	if info.TransactionsHash, err = block.Hex("transactionsHash"); err != nil {
		return err
	}

	if info.ReceiptsHash, err = block.Hex("receiptsHash"); err != nil {
		return err
	}

	if info.StateHash, err = block.Hex("stateHash"); err != nil {
		return err
	}

	if info.Beneficiary, err = decodeAddress(block, "beneficiaryAddress"); err != nil {
		return err
	}

	if info.ProofGamma, _, err = block.OptionalHex("proofGamma"); err != nil {
		return err
	}

	if info.ProofVerificationHash, _, err = block.OptionalHex("proofVerificationHash"); err != nil {
		return err
	}

	info.ProofScalar, _, err = block.OptionalHex("proofScalar")
	return err
}
