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

import (
	"encoding/hex"
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// NetworkType identifies the chain a record belongs to
type NetworkType uint8

const (
	MijinNetwork       NetworkType = 0x60
	MainNetwork        NetworkType = 0x68
	PrivateNetwork     NetworkType = 0x78
	MijinTestNetwork   NetworkType = 0x90
	TestNetwork        NetworkType = 0x98
	PrivateTestNetwork NetworkType = 0xA8
)

var networkTypes = map[NetworkType]string{
	MijinNetwork:       "MIJIN",
	MainNetwork:        "MAIN_NET",
	PrivateNetwork:     "PRIVATE",
	MijinTestNetwork:   "MIJIN_TEST",
	TestNetwork:        "TEST_NET",
	PrivateTestNetwork: "PRIVATE_TEST",
}

// NetworkTypeFromValue returns the NetworkType with the raw value, or an error if no network uses it
func NetworkTypeFromValue(value int64) (NetworkType, error) {
	if value < 0 || value > 0xFF {
		return 0, fmt.Errorf("network type %d out of range", value)
	}

	networkType := NetworkType(value)
	if _, ok := networkTypes[networkType]; !ok {
		return 0, fmt.Errorf("unknown network type 0x%02X", value)
	}

	return networkType, nil
}

func (n NetworkType) String() string {
	if name, ok := networkTypes[n]; ok {
		return name
	}
	return fmt.Sprintf("NetworkType(0x%02X)", uint8(n))
}

// TransactionType is the 16-bit discriminator of a transaction
type TransactionType uint16

const (
	TransactionTypeAccountKeyLink              TransactionType = 0x414C
	TransactionTypeAccountAddressRestriction   TransactionType = 0x4150
	TransactionTypeAccountMetadata             TransactionType = 0x4144
	TransactionTypeAccountMosaicRestriction    TransactionType = 0x4250
	TransactionTypeAccountOperationRestriction TransactionType = 0x4350
	TransactionTypeAddressAlias                TransactionType = 0x424E
	TransactionTypeAggregateBonded             TransactionType = 0x4241
	TransactionTypeAggregateComplete           TransactionType = 0x4141
	TransactionTypeHashLock                    TransactionType = 0x4148
	TransactionTypeMosaicAddressRestriction    TransactionType = 0x4251
	TransactionTypeMosaicAlias                 TransactionType = 0x434E
	TransactionTypeMosaicDefinition            TransactionType = 0x414D
	TransactionTypeMosaicGlobalRestriction     TransactionType = 0x4151
	TransactionTypeMosaicMetadata              TransactionType = 0x4244
	TransactionTypeMosaicSupplyChange          TransactionType = 0x424D
	TransactionTypeMultisigAccountModification TransactionType = 0x4155
	TransactionTypeNamespaceMetadata           TransactionType = 0x4344
	TransactionTypeNamespaceRegistration       TransactionType = 0x414E
	TransactionTypeNodeKeyLink                 TransactionType = 0x424C
	TransactionTypeSecretLock                  TransactionType = 0x4152
	TransactionTypeSecretProof                 TransactionType = 0x4252
	TransactionTypeTransfer                    TransactionType = 0x4154
	TransactionTypeVotingKeyLink               TransactionType = 0x4143
	TransactionTypeVrfKeyLink                  TransactionType = 0x4243
)

var transactionTypes = map[TransactionType]string{
	TransactionTypeAccountKeyLink:              "ACCOUNT_KEY_LINK",
	TransactionTypeAccountAddressRestriction:   "ACCOUNT_ADDRESS_RESTRICTION",
	TransactionTypeAccountMetadata:             "ACCOUNT_METADATA",
	TransactionTypeAccountMosaicRestriction:    "ACCOUNT_MOSAIC_RESTRICTION",
	TransactionTypeAccountOperationRestriction: "ACCOUNT_OPERATION_RESTRICTION",
	TransactionTypeAddressAlias:                "ADDRESS_ALIAS",
	TransactionTypeAggregateBonded:             "AGGREGATE_BONDED",
	TransactionTypeAggregateComplete:           "AGGREGATE_COMPLETE",
	TransactionTypeHashLock:                    "HASH_LOCK",
	TransactionTypeMosaicAddressRestriction:    "MOSAIC_ADDRESS_RESTRICTION",
	TransactionTypeMosaicAlias:                 "MOSAIC_ALIAS",
	TransactionTypeMosaicDefinition:            "MOSAIC_DEFINITION",
	TransactionTypeMosaicGlobalRestriction:     "MOSAIC_GLOBAL_RESTRICTION",
	TransactionTypeMosaicMetadata:              "MOSAIC_METADATA",
	TransactionTypeMosaicSupplyChange:          "MOSAIC_SUPPLY_CHANGE",
	TransactionTypeMultisigAccountModification: "MULTISIG_ACCOUNT_MODIFICATION",
	TransactionTypeNamespaceMetadata:           "NAMESPACE_METADATA",
	TransactionTypeNamespaceRegistration:       "NAMESPACE_REGISTRATION",
	TransactionTypeNodeKeyLink:                 "NODE_KEY_LINK",
	TransactionTypeSecretLock:                  "SECRET_LOCK",
	TransactionTypeSecretProof:                 "SECRET_PROOF",
	TransactionTypeTransfer:                    "TRANSFER",
	TransactionTypeVotingKeyLink:               "VOTING_KEY_LINK",
	TransactionTypeVrfKeyLink:                  "VRF_KEY_LINK",
}

// TransactionTypeFromValue returns the TransactionType with the raw value. The second result is false when the
// value is not a known transaction type.
func TransactionTypeFromValue(value int64) (TransactionType, bool) {
	if value < 0 || value > 0xFFFF {
		return 0, false
	}

	transactionType := TransactionType(value)
	_, ok := transactionTypes[transactionType]
	return transactionType, ok
}

// TransactionTypeFromReversedHex parses a transaction type stored as a little endian hex string, e.g. "5441" is
// TRANSFER (0x4154)
func TransactionTypeFromReversedHex(value string) (TransactionType, error) {
	raw, err := hex.DecodeString(value)
	if err != nil || len(raw) != 2 {
		return 0, fmt.Errorf("invalid transaction type hex %q", value)
	}

	transactionType, ok := TransactionTypeFromValue(int64(raw[1])<<8 | int64(raw[0]))
	if !ok {
		return 0, fmt.Errorf("unknown transaction type 0x%02X%02X", raw[1], raw[0])
	}
	return transactionType, nil
}

// SupportedTransactionTypes returns all known transaction types in ascending order
func SupportedTransactionTypes() []TransactionType {
	supported := maps.Keys(transactionTypes)
	slices.Sort(supported)
	return supported
}

func (t TransactionType) IsAggregate() bool {
	return t == TransactionTypeAggregateComplete || t == TransactionTypeAggregateBonded
}

func (t TransactionType) String() string {
	if name, ok := transactionTypes[t]; ok {
		return name
	}
	return fmt.Sprintf("TransactionType(0x%04X)", uint16(t))
}

// ReceiptType is the 16-bit discriminator of a receipt
type ReceiptType uint16

const (
	ReceiptTypeHarvestFee          ReceiptType = 0x2143
	ReceiptTypeInflation           ReceiptType = 0x5143
	ReceiptTypeLockHashCompleted   ReceiptType = 0x2248
	ReceiptTypeLockHashCreated     ReceiptType = 0x3148
	ReceiptTypeLockHashExpired     ReceiptType = 0x2348
	ReceiptTypeLockSecretCompleted ReceiptType = 0x2252
	ReceiptTypeLockSecretCreated   ReceiptType = 0x3152
	ReceiptTypeLockSecretExpired   ReceiptType = 0x2352
	ReceiptTypeMosaicExpired       ReceiptType = 0x414D
	ReceiptTypeMosaicRentalFee     ReceiptType = 0x124D
	ReceiptTypeNamespaceDeleted    ReceiptType = 0x424E
	ReceiptTypeNamespaceExpired    ReceiptType = 0x414E
	ReceiptTypeNamespaceRentalFee  ReceiptType = 0x134E
)

var receiptTypes = map[ReceiptType]string{
	ReceiptTypeHarvestFee:          "HARVEST_FEE",
	ReceiptTypeInflation:           "INFLATION",
	ReceiptTypeLockHashCompleted:   "LOCK_HASH_COMPLETED",
	ReceiptTypeLockHashCreated:     "LOCK_HASH_CREATED",
	ReceiptTypeLockHashExpired:     "LOCK_HASH_EXPIRED",
	ReceiptTypeLockSecretCompleted: "LOCK_SECRET_COMPLETED",
	ReceiptTypeLockSecretCreated:   "LOCK_SECRET_CREATED",
	ReceiptTypeLockSecretExpired:   "LOCK_SECRET_EXPIRED",
	ReceiptTypeMosaicExpired:       "MOSAIC_EXPIRED",
	ReceiptTypeMosaicRentalFee:     "MOSAIC_RENTAL_FEE",
	ReceiptTypeNamespaceDeleted:    "NAMESPACE_DELETED",
	ReceiptTypeNamespaceExpired:    "NAMESPACE_EXPIRED",
	ReceiptTypeNamespaceRentalFee:  "NAMESPACE_RENTAL_FEE",
}

// ReceiptTypeFromValue returns the ReceiptType with the raw value. The second result is false when the value is
// not a known receipt type.
func ReceiptTypeFromValue(value int64) (ReceiptType, bool) {
	if value < 0 || value > 0xFFFF {
		return 0, false
	}

	receiptType := ReceiptType(value)
	_, ok := receiptTypes[receiptType]
	return receiptType, ok
}

func (r ReceiptType) String() string {
	if name, ok := receiptTypes[r]; ok {
		return name
	}
	return fmt.Sprintf("ReceiptType(0x%04X)", uint16(r))
}

const (
	ReceiptVersionArtifactExpiry  uint8 = 1
	ReceiptVersionBalanceChange   uint8 = 1
	ReceiptVersionBalanceTransfer uint8 = 1
	ReceiptVersionInflation       uint8 = 1
)
