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

import "fmt"

// Mosaic is an amount of a possibly aliased mosaic
type Mosaic struct {
	Amount uint64
	Id     UnresolvedMosaicId
}

// Message is the hex payload attached to a transfer, together with its UTF-8 text
type Message struct {
	Payload string
	Text    string
}

type TransferTransaction struct {
	AbstractTransaction
	Message   *Message
	Mosaics   []Mosaic
	Recipient UnresolvedAddress
}

type NamespaceRegistrationType uint8

const (
	RootNamespace  NamespaceRegistrationType = 0
	ChildNamespace NamespaceRegistrationType = 1
)

// NamespaceRegistrationTransaction registers a root namespace for Duration blocks or a child namespace under ParentId
type NamespaceRegistrationTransaction struct {
	AbstractTransaction
	Duration         uint64
	Id               NamespaceId
	Name             string
	ParentId         NamespaceId
	RegistrationType NamespaceRegistrationType
}

// MosaicFlags is the decomposed mosaic definition flag byte
type MosaicFlags struct {
	Restrictable  bool
	SupplyMutable bool
	Transferable  bool
}

const (
	mosaicFlagSupplyMutable = 0x01
	mosaicFlagTransferable  = 0x02
	mosaicFlagRestrictable  = 0x04
)

// NewMosaicFlags decomposes the flag bitfield
func NewMosaicFlags(value uint8) MosaicFlags {
	return MosaicFlags{
		Restrictable:  value&mosaicFlagRestrictable != 0,
		SupplyMutable: value&mosaicFlagSupplyMutable != 0,
		Transferable:  value&mosaicFlagTransferable != 0,
	}
}

// Value returns the flags as a bitfield
func (f MosaicFlags) Value() uint8 {
	var value uint8
	if f.SupplyMutable {
		value |= mosaicFlagSupplyMutable
	}
	if f.Transferable {
		value |= mosaicFlagTransferable
	}
	if f.Restrictable {
		value |= mosaicFlagRestrictable
	}
	return value
}

type MosaicDefinitionTransaction struct {
	AbstractTransaction
	Divisibility uint8
	Duration     uint64
	Flags        MosaicFlags
	MosaicId     MosaicId
	Nonce        uint32
}

type MosaicSupplyChangeAction uint8

const (
	MosaicSupplyDecrease MosaicSupplyChangeAction = 0
	MosaicSupplyIncrease MosaicSupplyChangeAction = 1
)

type MosaicSupplyChangeTransaction struct {
	AbstractTransaction
	Action   MosaicSupplyChangeAction
	Delta    uint64
	MosaicId UnresolvedMosaicId
}

// MultisigAccountModificationTransaction changes cosignatories and approval thresholds. The deltas are signed, a
// negative delta lowers the threshold.
type MultisigAccountModificationTransaction struct {
	AbstractTransaction
	AddressAdditions []UnresolvedAddress
	AddressDeletions []UnresolvedAddress
	MinApprovalDelta int8
	MinRemovalDelta  int8
}

type HashLockTransaction struct {
	AbstractTransaction
	Duration uint64
	Hash     string
	Mosaic   Mosaic
}

// LockHashAlgorithm is the hash a secret lock is bound to. Its values are not the stored codes, which depend on the
// schema generation of the record.
type LockHashAlgorithm uint8

const (
	LockHashSha3_256 LockHashAlgorithm = iota
	LockHashKeccak256
	LockHashHash160
	LockHashHash256
)

var lockHashAlgorithmNames = map[LockHashAlgorithm]string{
	LockHashSha3_256:  "SHA3_256",
	LockHashKeccak256: "KECCAK_256",
	LockHashHash160:   "HASH_160",
	LockHashHash256:   "HASH_256",
}

func (a LockHashAlgorithm) String() string {
	if name, ok := lockHashAlgorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("LockHashAlgorithm(%d)", uint8(a))
}

type SecretLockTransaction struct {
	AbstractTransaction
	Duration      uint64
	HashAlgorithm LockHashAlgorithm
	Mosaic        Mosaic
	Recipient     UnresolvedAddress
	Secret        string
}

type SecretProofTransaction struct {
	AbstractTransaction
	HashAlgorithm LockHashAlgorithm
	Proof         string
	Recipient     UnresolvedAddress
	Secret        string
}

type AliasAction uint8

const (
	AliasUnlink AliasAction = 0
	AliasLink   AliasAction = 1
)

type AddressAliasTransaction struct {
	AbstractTransaction
	Action      AliasAction
	Address     Address
	NamespaceId NamespaceId
}

type MosaicAliasTransaction struct {
	AbstractTransaction
	Action      AliasAction
	MosaicId    MosaicId
	NamespaceId NamespaceId
}

// AccountRestrictionFlags is the bitfield describing what an account restriction applies to
type AccountRestrictionFlags uint16

const (
	AccountRestrictionAddress   AccountRestrictionFlags = 0x0001
	AccountRestrictionMosaicId  AccountRestrictionFlags = 0x0002
	AccountRestrictionOperation AccountRestrictionFlags = 0x0004
	AccountRestrictionOutgoing  AccountRestrictionFlags = 0x4000
	AccountRestrictionBlock     AccountRestrictionFlags = 0x8000
)

func (f AccountRestrictionFlags) IsBlocking() bool {
	return f&AccountRestrictionBlock != 0
}

func (f AccountRestrictionFlags) IsOutgoing() bool {
	return f&AccountRestrictionOutgoing != 0
}

type AccountAddressRestrictionTransaction struct {
	AbstractTransaction
	Additions []UnresolvedAddress
	Deletions []UnresolvedAddress
	Flags     AccountRestrictionFlags
}

type AccountMosaicRestrictionTransaction struct {
	AbstractTransaction
	Additions []UnresolvedMosaicId
	Deletions []UnresolvedMosaicId
	Flags     AccountRestrictionFlags
}

type AccountOperationRestrictionTransaction struct {
	AbstractTransaction
	Additions []TransactionType
	Deletions []TransactionType
	Flags     AccountRestrictionFlags
}

type MosaicRestrictionType uint8

const (
	MosaicRestrictionNone MosaicRestrictionType = 0
	MosaicRestrictionEq   MosaicRestrictionType = 1
	MosaicRestrictionNe   MosaicRestrictionType = 2
	MosaicRestrictionLt   MosaicRestrictionType = 3
	MosaicRestrictionLe   MosaicRestrictionType = 4
	MosaicRestrictionGt   MosaicRestrictionType = 5
	MosaicRestrictionGe   MosaicRestrictionType = 6
)

// OptionalRestrictionValue is a restriction value that may be unset. Zero is a legal restriction value, so absence
// is carried by Present.
type OptionalRestrictionValue struct {
	Present bool
	Value   uint64
}

// NoRestrictionValue is the marker for a restriction that has no previous value
var NoRestrictionValue = OptionalRestrictionValue{}

// SomeRestrictionValue returns a present restriction value
func SomeRestrictionValue(value uint64) OptionalRestrictionValue {
	return OptionalRestrictionValue{Present: true, Value: value}
}

type MosaicGlobalRestrictionTransaction struct {
	AbstractTransaction
	MosaicId                 UnresolvedMosaicId
	NewRestrictionType       MosaicRestrictionType
	NewRestrictionValue      uint64
	PreviousRestrictionType  MosaicRestrictionType
	PreviousRestrictionValue OptionalRestrictionValue
	ReferenceMosaicId        UnresolvedMosaicId
	RestrictionKey           uint64
}

type MosaicAddressRestrictionTransaction struct {
	AbstractTransaction
	MosaicId                 UnresolvedMosaicId
	NewRestrictionValue      uint64
	PreviousRestrictionValue OptionalRestrictionValue
	RestrictionKey           uint64
	TargetAddress            UnresolvedAddress
}

// MetadataTransaction is shared by account, mosaic and namespace metadata. TargetId is nil for account metadata.
type MetadataTransaction struct {
	AbstractTransaction
	ScopedMetadataKey uint64
	TargetAddress     UnresolvedAddress
	TargetId          UnresolvedMosaicId
	Value             string
	ValueSize         uint16
	ValueSizeDelta    int16
}

type AccountMetadataTransaction struct {
	MetadataTransaction
}

type MosaicMetadataTransaction struct {
	MetadataTransaction
}

type NamespaceMetadataTransaction struct {
	MetadataTransaction
}

type LinkAction uint8

const (
	Unlink LinkAction = 0
	Link   LinkAction = 1
)

// KeyLinkTransaction is shared by account, node and VRF key links
type KeyLinkTransaction struct {
	AbstractTransaction
	Action          LinkAction
	LinkedPublicKey string
}

type AccountKeyLinkTransaction struct {
	KeyLinkTransaction
}

type NodeKeyLinkTransaction struct {
	KeyLinkTransaction
}

type VrfKeyLinkTransaction struct {
	KeyLinkTransaction
}

type VotingKeyLinkTransaction struct {
	KeyLinkTransaction
	EndEpoch   uint32
	StartEpoch uint32
}
