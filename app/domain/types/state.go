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

// ResolvedMosaic is an amount of a mosaic referenced by its definition id
type ResolvedMosaic struct {
	Amount uint64
	Id     MosaicId
}

// Importance is the harvesting importance of an account as of Height
type Importance struct {
	Height uint64
	Value  uint64
}

// AccountInfo is the state the node keeps for an account. PublicKeyHeight is zero until the account announced its
// public key.
type AccountInfo struct {
	Address         Address
	AddressHeight   uint64
	Importance      Importance
	Mosaics         []ResolvedMosaic
	PublicKey       string
	PublicKeyHeight uint64
	RecordId        string
}

// MosaicInfo is the current definition of a mosaic. Revision counts the definitions the owner published.
type MosaicInfo struct {
	Divisibility uint8
	Duration     uint64
	Flags        MosaicFlags
	Id           MosaicId
	OwnerAddress Address
	RecordId     string
	Revision     uint32
	StartHeight  uint64
	Supply       uint64
}

type AliasType uint8

const (
	AliasTypeNone    AliasType = 0
	AliasTypeMosaic  AliasType = 1
	AliasTypeAddress AliasType = 2
)

var aliasTypeNames = map[AliasType]string{
	AliasTypeNone:    "none",
	AliasTypeMosaic:  "mosaic",
	AliasTypeAddress: "address",
}

func (a AliasType) String() string {
	if name, ok := aliasTypeNames[a]; ok {
		return name
	}
	return fmt.Sprintf("AliasType(%d)", uint8(a))
}

// Alias is what a namespace links to. Only the field matching Type is set.
type Alias struct {
	Address  Address
	MosaicId MosaicId
	Type     AliasType
}

// NamespaceInfo is a namespace with the ids of its path from the root. Levels holds Depth ids, the last one being
// the namespace itself.
type NamespaceInfo struct {
	Active           bool
	Alias            Alias
	Depth            uint8
	EndHeight        uint64
	Index            uint32
	Levels           []NamespaceId
	OwnerAddress     Address
	ParentId         NamespaceId
	RecordId         string
	RegistrationType NamespaceRegistrationType
	StartHeight      uint64
}

// Id returns the id of the namespace, the deepest of its levels
func (n *NamespaceInfo) Id() NamespaceId {
	if len(n.Levels) == 0 {
		return 0
	}
	return n.Levels[len(n.Levels)-1]
}

// IsRoot tells whether the namespace has no parent
func (n *NamespaceInfo) IsRoot() bool {
	return n.RegistrationType == RootNamespace
}

// MultisigAccountInfo lists the cosignatories of an account and the multisig accounts it cosigns for
type MultisigAccountInfo struct {
	AccountAddress   Address
	Cosignatories    []Address
	MinApproval      uint32
	MinRemoval       uint32
	MultisigAccounts []Address
}

// IsMultisig tells whether the account requires cosignatures. An account only cosigning for others is not one.
func (m *MultisigAccountInfo) IsMultisig() bool {
	return m.MinApproval != 0 && m.MinRemoval != 0
}

type MetadataType uint8

const (
	MetadataTypeAccount   MetadataType = 0
	MetadataTypeMosaic    MetadataType = 1
	MetadataTypeNamespace MetadataType = 2
)

var metadataTypeNames = map[MetadataType]string{
	MetadataTypeAccount:   "account",
	MetadataTypeMosaic:    "mosaic",
	MetadataTypeNamespace: "namespace",
}

func (m MetadataType) String() string {
	if name, ok := metadataTypeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("MetadataType(%d)", uint8(m))
}

// MetadataEntry is the current value of a metadata key. TargetId is nil for account metadata and otherwise a MosaicId
// or a NamespaceId depending on MetadataType.
type MetadataEntry struct {
	CompositeHash     string
	MetadataType      MetadataType
	RecordId          string
	ScopedMetadataKey uint64
	SourceAddress     Address
	TargetAddress     Address
	TargetId          UnresolvedMosaicId
	Value             string
	ValueSize         uint16
}

// MetadataCriteria narrows a metadata search, nil fields match any entry. A TargetId implies the metadata type when
// MetadataType is not set.
type MetadataCriteria struct {
	MetadataType      *MetadataType
	ScopedMetadataKey *uint64
	SourceAddress     *Address
	TargetAddress     *Address
	TargetId          UnresolvedMosaicId
}

// IsEmpty tells whether the criteria match every entry
func (c MetadataCriteria) IsEmpty() bool {
	return c.MetadataType == nil && c.ScopedMetadataKey == nil && c.SourceAddress == nil && c.TargetAddress == nil &&
		c.TargetId == nil
}
