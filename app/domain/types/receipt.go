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

// Receipt is implemented by every receipt variant. The set of variants is closed.
type Receipt interface {
	ReceiptType() ReceiptType
	ReceiptVersion() uint8
	isReceipt()
}

type receiptHeader struct {
	Type    ReceiptType
	Version uint8
}

func (r receiptHeader) ReceiptType() ReceiptType {
	return r.Type
}

func (r receiptHeader) ReceiptVersion() uint8 {
	return r.Version
}

func (receiptHeader) isReceipt() {}

// BalanceChangeReceipt records a credit or debit of a single account, e.g. a harvest fee or a lock
type BalanceChangeReceipt struct {
	receiptHeader
	Amount        uint64
	MosaicId      MosaicId
	TargetAddress Address
}

// NewBalanceChangeReceipt creates a BalanceChangeReceipt of the receipt type
func NewBalanceChangeReceipt(
	receiptType ReceiptType,
	target Address,
	mosaicId MosaicId,
	amount uint64,
) *BalanceChangeReceipt {
	return &BalanceChangeReceipt{
		receiptHeader: receiptHeader{Type: receiptType, Version: ReceiptVersionBalanceChange},
		Amount:        amount,
		MosaicId:      mosaicId,
		TargetAddress: target,
	}
}

// BalanceTransferReceipt records a transfer between two accounts, e.g. a rental fee
type BalanceTransferReceipt struct {
	receiptHeader
	Amount           uint64
	MosaicId         MosaicId
	RecipientAddress Address
	SenderAddress    Address
}

func NewBalanceTransferReceipt(
	receiptType ReceiptType,
	sender Address,
	recipient Address,
	mosaicId MosaicId,
	amount uint64,
) *BalanceTransferReceipt {
	return &BalanceTransferReceipt{
		receiptHeader:    receiptHeader{Type: receiptType, Version: ReceiptVersionBalanceTransfer},
		Amount:           amount,
		MosaicId:         mosaicId,
		RecipientAddress: recipient,
		SenderAddress:    sender,
	}
}

// ArtifactId is the identifier of an artifact that can expire
type ArtifactId interface {
	MosaicId | NamespaceId
}

// ArtifactExpiryReceipt records the expiry of a mosaic or a namespace
type ArtifactExpiryReceipt[T ArtifactId] struct {
	receiptHeader
	ArtifactId T
}

func NewArtifactExpiryReceipt[T ArtifactId](receiptType ReceiptType, artifactId T) *ArtifactExpiryReceipt[T] {
	return &ArtifactExpiryReceipt[T]{
		receiptHeader: receiptHeader{Type: receiptType, Version: ReceiptVersionArtifactExpiry},
		ArtifactId:    artifactId,
	}
}

// InflationReceipt records currency created at a block
type InflationReceipt struct {
	receiptHeader
	Amount   uint64
	MosaicId MosaicId
}

func NewInflationReceipt(mosaicId MosaicId, amount uint64) *InflationReceipt {
	return &InflationReceipt{
		receiptHeader: receiptHeader{Type: ReceiptTypeInflation, Version: ReceiptVersionInflation},
		Amount:        amount,
		MosaicId:      mosaicId,
	}
}

// ReceiptSource locates the transaction that produced a receipt in its block. Primary is the 1-based index of the
// transaction, Secondary the 1-based index of the inner transaction or 0.
type ReceiptSource struct {
	Primary   uint32
	Secondary uint32
}

// Compare orders sources by their position in the block
func (s ReceiptSource) Compare(other ReceiptSource) int {
	switch {
	case s.Primary < other.Primary:
		return -1
	case s.Primary > other.Primary:
		return 1
	case s.Secondary < other.Secondary:
		return -1
	case s.Secondary > other.Secondary:
		return 1
	default:
		return 0
	}
}

// TransactionStatement groups the receipts produced by one source of a block
type TransactionStatement struct {
	Height   uint64
	Id       string
	Receipts []Receipt
	Source   ReceiptSource
}

// ResolutionEntry is a value an alias resolved to, starting at Source
type ResolutionEntry[R any] struct {
	Resolved R
	Source   ReceiptSource
}

// ResolutionStatement records what an unresolved alias resolved to over a block. Entries are in block order.
type ResolutionStatement[U any, R any] struct {
	Entries    []ResolutionEntry[R]
	Height     uint64
	Id         string
	Unresolved U
}

// Resolve returns the value of the last entry whose source is not after the given source
func (s *ResolutionStatement[U, R]) Resolve(source ReceiptSource) (R, bool) {
	var resolved R
	found := false
	for _, entry := range s.Entries {
		if entry.Source.Compare(source) > 0 {
			break
		}
		resolved = entry.Resolved
		found = true
	}
	return resolved, found
}

type AddressResolutionStatement = ResolutionStatement[UnresolvedAddress, Address]

type MosaicResolutionStatement = ResolutionStatement[UnresolvedMosaicId, MosaicId]
