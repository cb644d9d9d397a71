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

package interfaces

import (
	"context"
	"time"

	"github.com/nemtech/symbol-direct-connect/app/domain/types"
)

// BlockRepository Interface that all BlockRepository structs must implement
type BlockRepository interface {
	FindByHeight(ctx context.Context, height uint64) (*types.BlockInfo, error)
	// FindByHeightRange returns the blocks from height low up to, but excluding, height high
	FindByHeightRange(ctx context.Context, low, high uint64) ([]*types.BlockInfo, error)
	FindMerkleTransactionPath(ctx context.Context, height uint64, hash string) ([]types.MerklePathItem, error)
	FindMerkleStatementPath(ctx context.Context, height uint64, hash string) ([]types.MerklePathItem, error)
}

// TransactionRepository Interface that all TransactionRepository structs must implement. Aggregates are returned
// with their inner transactions.
type TransactionRepository interface {

	// FindByHash looks the hash up in the confirmed, unconfirmed and partial collections, polling each up to timeout
	FindByHash(ctx context.Context, hash string, timeout time.Duration) (types.Transaction, error)

	// FindByGroup looks the hash up in the collection of the transaction group
	FindByGroup(
		ctx context.Context,
		hash string,
		group types.TransactionGroup,
		timeout time.Duration,
	) (types.Transaction, error)

	FindByHeight(ctx context.Context, height uint64) ([]types.Transaction, error)
	FindBySigner(ctx context.Context, signerPublicKey string, group types.TransactionGroup) ([]types.Transaction, error)
}

// ReceiptRepository Interface that all ReceiptRepository structs must implement
type ReceiptRepository interface {
	FindTransactionStatements(ctx context.Context, height uint64) ([]*types.TransactionStatement, error)
	FindAddressResolutionStatements(ctx context.Context, height uint64) ([]*types.AddressResolutionStatement, error)
	FindMosaicResolutionStatements(ctx context.Context, height uint64) ([]*types.MosaicResolutionStatement, error)
}

// TransactionStatusRepository Interface that all TransactionStatusRepository structs must implement
type TransactionStatusRepository interface {
	FindByHash(ctx context.Context, hash string) (*types.TransactionStatus, error)
	FindByHashes(ctx context.Context, hashes []string) ([]*types.TransactionStatus, error)
}

// NetworkRepository Interface that all NetworkRepository structs must implement
type NetworkRepository interface {
	NetworkType(ctx context.Context) (types.NetworkType, error)
	TransactionFees(ctx context.Context) (*types.TransactionFees, error)
	RentalFees(ctx context.Context) (*types.RentalFees, error)
}

// AccountRepository Interface that all AccountRepository structs must implement
type AccountRepository interface {
	FindByAddress(ctx context.Context, address types.Address) (*types.AccountInfo, error)
}

// MosaicRepository Interface that all MosaicRepository structs must implement
type MosaicRepository interface {
	FindById(ctx context.Context, id types.MosaicId) (*types.MosaicInfo, error)
}

// NamespaceRepository Interface that all NamespaceRepository structs must implement
type NamespaceRepository interface {

	// FindById looks the namespace up at any level of the namespace paths, preferring the active record
	FindById(ctx context.Context, id types.NamespaceId) (*types.NamespaceInfo, error)

	// FindLinkedMosaicId returns the mosaic the namespace is an alias of, errors.ErrRecordNotFound when it has none
	FindLinkedMosaicId(ctx context.Context, id types.NamespaceId) (types.MosaicId, error)

	// FindLinkedAddress returns the address the namespace is an alias of, errors.ErrRecordNotFound when it has none
	FindLinkedAddress(ctx context.Context, id types.NamespaceId) (types.Address, error)
}

// MultisigRepository Interface that all MultisigRepository structs must implement
type MultisigRepository interface {
	FindByAddress(ctx context.Context, address types.Address) (*types.MultisigAccountInfo, error)
}

// MetadataRepository Interface that all MetadataRepository structs must implement
type MetadataRepository interface {
	Find(ctx context.Context, criteria types.MetadataCriteria) ([]*types.MetadataEntry, error)

	// FindEntry returns the first entry matching the criteria, errors.ErrRecordNotFound when none does
	FindEntry(ctx context.Context, criteria types.MetadataCriteria) (*types.MetadataEntry, error)
}
