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
	"fmt"

	"github.com/nemtech/symbol-direct-connect/app/document"
	"github.com/nemtech/symbol-direct-connect/app/domain/types"
)

// maxNamespaceDepth is the number of levels a namespace path holds at most
const maxNamespaceDepth = 3

// DecodeAccountInfo decodes a record of the accounts collection. Only the most recent importance is kept, an account
// without importances gets the zero importance.
func DecodeAccountInfo(record document.Document) (*types.AccountInfo, error) {
	id, err := recordId(record)
	if err != nil {
		return nil, err
	}

	account, err := record.Document("account")
	if err != nil {
		return nil, err
	}

	info := &types.AccountInfo{RecordId: id}
	if info.Address, err = decodeAddress(account, "address"); err != nil {
		return nil, err
	}

	if info.AddressHeight, err = account.Uint64("addressHeight"); err != nil {
		return nil, err
	}

	if info.PublicKey, err = account.Hex("publicKey"); err != nil {
		return nil, err
	}

	if info.PublicKeyHeight, err = account.Uint64("publicKeyHeight"); err != nil {
		return nil, err
	}

	importances, err := account.Documents("importances")
	if err != nil {
		return nil, err
	}
	if len(importances) > 0 {
		if info.Importance.Value, err = importances[0].Uint64("value"); err != nil {
			return nil, err
		}
		if info.Importance.Height, err = importances[0].Uint64("height"); err != nil {
			return nil, err
		}
	}

	mosaics, err := account.Documents("mosaics")
	if err != nil {
		return nil, err
	}

	info.Mosaics = make([]types.ResolvedMosaic, 0, len(mosaics))
	for _, mosaic := range mosaics {
		mosaicId, err := decodeMosaicId(mosaic, "id")
		if err != nil {
			return nil, err
		}

		amount, err := mosaic.Uint64("amount")
		if err != nil {
			return nil, err
		}
		info.Mosaics = append(info.Mosaics, types.ResolvedMosaic{Amount: amount, Id: mosaicId})
	}

	return info, nil
}

// DecodeMosaicInfo decodes a record of the mosaics collection
func DecodeMosaicInfo(record document.Document) (*types.MosaicInfo, error) {
	id, err := recordId(record)
	if err != nil {
		return nil, err
	}

	mosaic, err := record.Document("mosaic")
	if err != nil {
		return nil, err
	}

	info := &types.MosaicInfo{RecordId: id}
	if info.Id, err = decodeMosaicId(mosaic, "id"); err != nil {
		return nil, err
	}

	if info.Supply, err = mosaic.Uint64("supply"); err != nil {
		return nil, err
	}

	if info.StartHeight, err = mosaic.Uint64("startHeight"); err != nil {
		return nil, err
	}

	if info.OwnerAddress, err = decodeAddress(mosaic, "ownerAddress"); err != nil {
		return nil, err
	}

	if info.Revision, err = mosaic.Uint32("revision"); err != nil {
		return nil, err
	}

	flags, err := mosaic.Uint8("flags")
	if err != nil {
		return nil, err
	}
	info.Flags = types.NewMosaicFlags(flags)

	if info.Divisibility, err = mosaic.Uint8("divisibility"); err != nil {
		return nil, err
	}

	if info.Duration, err = mosaic.Uint64("duration"); err != nil {
		return nil, err
	}
	return info, nil
}

// DecodeNamespaceInfo decodes a record of the namespaces collection. The path ids are read from level0 up to the
// depth of the namespace.
func DecodeNamespaceInfo(record document.Document) (*types.NamespaceInfo, error) {
	id, err := recordId(record)
	if err != nil {
		return nil, err
	}

	meta, err := record.Document(metaField)
	if err != nil {
		return nil, err
	}

	namespace, err := record.Document("namespace")
	if err != nil {
		return nil, err
	}

	info := &types.NamespaceInfo{RecordId: id}
	if info.Active, err = meta.Bool("active"); err != nil {
		return nil, err
	}

	if info.Index, err = meta.Uint32("index"); err != nil {
		return nil, err
	}

	registrationType, err := decodeEnum(namespace, "registrationType", uint8(types.ChildNamespace))
	if err != nil {
		return nil, err
	}
	info.RegistrationType = types.NamespaceRegistrationType(registrationType)

	if info.Depth, err = namespace.Uint8("depth"); err != nil {
		return nil, err
	}
	if info.Depth == 0 || info.Depth > maxNamespaceDepth {
		return nil, namespace.Field("depth", "depth %d out of range", info.Depth)
	}

	info.Levels = make([]types.NamespaceId, 0, info.Depth)
	for level := 0; level < int(info.Depth); level++ {
		levelId, err := decodeNamespaceId(namespace, fmt.Sprintf("level%d", level))
		if err != nil {
			return nil, err
		}
		info.Levels = append(info.Levels, levelId)
	}

	if info.ParentId, err = decodeNamespaceId(namespace, "parentId"); err != nil {
		return nil, err
	}

	if info.OwnerAddress, err = decodeAddress(namespace, "ownerAddress"); err != nil {
		return nil, err
	}

	if info.StartHeight, err = namespace.Uint64("startHeight"); err != nil {
		return nil, err
	}

	if info.EndHeight, err = namespace.Uint64("endHeight"); err != nil {
		return nil, err
	}

	alias, err := namespace.Document("alias")
	if err != nil {
		return nil, err
	}

	if info.Alias, err = decodeAlias(alias); err != nil {
		return nil, err
	}
	return info, nil
}

func decodeAlias(alias document.Document) (types.Alias, error) {
	aliasType, err := decodeEnum(alias, "type", uint8(types.AliasTypeAddress))
	if err != nil {
		return types.Alias{}, err
	}

	result := types.Alias{Type: types.AliasType(aliasType)}
	switch result.Type {
	case types.AliasTypeMosaic:
		result.MosaicId, err = decodeMosaicId(alias, "mosaicId")
	case types.AliasTypeAddress:
		result.Address, err = decodeAddress(alias, "address")
	}
	return result, err
}

// DecodeMultisigAccountInfo decodes a record of the multisigs collection
func DecodeMultisigAccountInfo(record document.Document) (*types.MultisigAccountInfo, error) {
	multisig, err := record.Document("multisig")
	if err != nil {
		return nil, err
	}

	info := &types.MultisigAccountInfo{}
	if info.AccountAddress, err = decodeAddress(multisig, "accountAddress"); err != nil {
		return nil, err
	}

	if info.MinApproval, err = multisig.Uint32("minApproval"); err != nil {
		return nil, err
	}

	if info.MinRemoval, err = multisig.Uint32("minRemoval"); err != nil {
		return nil, err
	}

	if info.Cosignatories, err = decodeAddresses(multisig, "cosignatoryAddresses"); err != nil {
		return nil, err
	}

	if info.MultisigAccounts, err = decodeAddresses(multisig, "multisigAddresses"); err != nil {
		return nil, err
	}
	return info, nil
}

// DecodeMetadataEntry decodes a record of the metadata collection. The value is read as UTF-8 text.
func DecodeMetadataEntry(record document.Document) (*types.MetadataEntry, error) {
	id, err := recordId(record)
	if err != nil {
		return nil, err
	}

	entry, err := record.Document("metadataEntry")
	if err != nil {
		return nil, err
	}

	info := &types.MetadataEntry{RecordId: id}
	if info.CompositeHash, err = entry.Hex("compositeHash"); err != nil {
		return nil, err
	}

	if info.SourceAddress, err = decodeAddress(entry, "sourceAddress"); err != nil {
		return nil, err
	}

	if info.TargetAddress, err = decodeAddress(entry, "targetAddress"); err != nil {
		return nil, err
	}

	if info.ScopedMetadataKey, err = entry.Uint64("scopedMetadataKey"); err != nil {
		return nil, err
	}

	metadataType, err := decodeEnum(entry, "metadataType", uint8(types.MetadataTypeNamespace))
	if err != nil {
		return nil, err
	}
	info.MetadataType = types.MetadataType(metadataType)

	switch info.MetadataType {
	case types.MetadataTypeMosaic:
		info.TargetId, err = decodeMosaicId(entry, "targetId")
	case types.MetadataTypeNamespace:
		info.TargetId, err = decodeNamespaceId(entry, "targetId")
	}
	if err != nil {
		return nil, err
	}

	if info.ValueSize, err = entry.Uint16("valueSize"); err != nil {
		return nil, err
	}

	if info.Value, err = decodeText(entry, "value"); err != nil {
		return nil, err
	}
	return info, nil
}

func decodeAddresses(doc document.Document, key string) ([]types.Address, error) {
	values, err := doc.OptionalArray(key)
	if err != nil {
		return nil, err
	}

	addresses := make([]types.Address, 0, len(values))
	for i := range values {
		address, err := decodeAddress(doc, fmt.Sprintf("%s.%d", key, i))
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, address)
	}
	return addresses, nil
}
