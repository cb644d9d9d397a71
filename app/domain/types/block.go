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

package types

// BlockType distinguishes nemesis, normal and importance blocks
type BlockType uint16

const (
	NemesisBlock    BlockType = 0x8043
	NormalBlock     BlockType = 0x8143
	ImportanceBlock BlockType = 0x8243
)

// BlockInfo is a block header together with the metadata the node indexes for it
type BlockInfo struct {
	Beneficiary                  Address
	Difficulty                   uint64
	FeeMultiplier                uint32
	GenerationHash               string
	Hash                         string
	Height                       uint64
	Network                      NetworkType
	NumStatements                uint32
	NumTransactions              uint32
	PreviousBlockHash            string
	ProofGamma                   string
	ProofScalar                  string
	ProofVerificationHash        string
	ReceiptsHash                 string
	Signature                    string
	Signer                       PublicAccount
	Size                         uint32
	StateHash                    string
	StateHashSubCacheMerkleRoots []string
	StatementMerkleTree          []string
	Timestamp                    uint64
	TotalFee                     uint64
	TransactionMerkleTree        []string
	TransactionsHash             string
	Type                         BlockType
	Version                      uint8
}

// TransactionLeaves returns the leaf level of the block transaction merkle tree
func (b *BlockInfo) TransactionLeaves() []string {
	return leaves(b.TransactionMerkleTree, b.NumTransactions)
}

// StatementLeaves returns the leaf level of the block statement merkle tree
func (b *BlockInfo) StatementLeaves() []string {
	return leaves(b.StatementMerkleTree, b.NumStatements)
}

func leaves(tree []string, count uint32) []string {
	if int(count) > len(tree) {
		return tree
	}
	return tree[:count]
}

// MerklePosition is the side a sibling hash takes when hashed with the running hash
type MerklePosition uint8

const (
	MerklePositionLeft  MerklePosition = 1
	MerklePositionRight MerklePosition = 2
)

func (p MerklePosition) String() string {
	if p == MerklePositionLeft {
		return "LEFT"
	}
	return "RIGHT"
}

// MerklePathItem is one sibling hash of a merkle audit path
type MerklePathItem struct {
	Hash     string
	Position MerklePosition
}

// TransactionGroup is the lifecycle stage a transaction is in
type TransactionGroup string

const (
	TransactionGroupConfirmed   TransactionGroup = "confirmed"
	TransactionGroupFailed      TransactionGroup = "failed"
	TransactionGroupPartial     TransactionGroup = "partial"
	TransactionGroupUnconfirmed TransactionGroup = "unconfirmed"
)

// TransactionStatus is the lifecycle state of a transaction
type TransactionStatus struct {
	Code     string
	Deadline Deadline
	Group    TransactionGroup
	Hash     string
	Height   uint64
}

// TransactionFees summarizes the fee multipliers of recent blocks
type TransactionFees struct {
	AverageFeeMultiplier uint32
	HighestFeeMultiplier uint32
	LowestFeeMultiplier  uint32
	MedianFeeMultiplier  uint32
}

// RentalFees are the effective rental fees derived from the current dynamic fee multiplier
type RentalFees struct {
	EffectiveChildNamespaceRentalFee        uint64
	EffectiveMosaicRentalFee                uint64
	EffectiveRootNamespaceRentalFeePerBlock uint64
}
