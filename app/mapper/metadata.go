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

// decodeMetadata reads the fields shared by the metadata transactions. targetIdKey names the mosaic or namespace id
// field and is empty for account metadata.
func decodeMetadata(
	abstract types.AbstractTransaction,
	body document.Document,
	targetIdKey string,
) (types.MetadataTransaction, error) {
	targetAddress, err := decodeUnresolvedAddress(body, "targetAddress")
	if err != nil {
		return types.MetadataTransaction{}, err
	}

	scopedMetadataKey, err := body.Uint64("scopedMetadataKey")
	if err != nil {
		return types.MetadataTransaction{}, err
	}

	valueSizeDelta, err := body.Int16("valueSizeDelta")
	if err != nil {
		return types.MetadataTransaction{}, err
	}

	valueSize, err := body.Uint16("valueSize")
	if err != nil {
		return types.MetadataTransaction{}, err
	}

	value, err := decodeText(body, "value")
	if err != nil {
		return types.MetadataTransaction{}, err
	}

	metadata := types.MetadataTransaction{
		AbstractTransaction: abstract,
		ScopedMetadataKey:   scopedMetadataKey,
		TargetAddress:       targetAddress,
		Value:               value,
		ValueSize:           valueSize,
		ValueSizeDelta:      valueSizeDelta,
	}

	if targetIdKey != "" {
		if metadata.TargetId, err = decodeUnresolvedMosaicId(body, targetIdKey); err != nil {
			return types.MetadataTransaction{}, err
		}
	}
	return metadata, nil
}

func decodeAccountMetadata(
	abstract types.AbstractTransaction,
	body document.Document,
) (*types.AccountMetadataTransaction, error) {
	metadata, err := decodeMetadata(abstract, body, "")
	if err != nil {
		return nil, err
	}
	return &types.AccountMetadataTransaction{MetadataTransaction: metadata}, nil
}

func decodeMosaicMetadata(
	abstract types.AbstractTransaction,
	body document.Document,
) (*types.MosaicMetadataTransaction, error) {
	metadata, err := decodeMetadata(abstract, body, "targetMosaicId")
	if err != nil {
		return nil, err
	}
	return &types.MosaicMetadataTransaction{MetadataTransaction: metadata}, nil
}

func decodeNamespaceMetadata(
	abstract types.AbstractTransaction,
	body document.Document,
) (*types.NamespaceMetadataTransaction, error) {
	metadata, err := decodeMetadata(abstract, body, "targetNamespaceId")
	if err != nil {
		return nil, err
	}

	// the target is a namespace id regardless of its high bit
	if id, ok := metadata.TargetId.(types.MosaicId); ok {
		metadata.TargetId = types.NamespaceId(id)
	}
	return &types.NamespaceMetadataTransaction{MetadataTransaction: metadata}, nil
}
