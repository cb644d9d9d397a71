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
	"strings"
	"unicode/utf8"

	"github.com/nemtech/symbol-direct-connect/app/document"
	"github.com/nemtech/symbol-direct-connect/app/domain/types"
)

func decodeAddress(doc document.Document, key string) (types.Address, error) {
	raw, err := doc.Bytes(key)
	if err != nil {
		return types.Address{}, err
	}

	address, err := types.NewAddressFromRaw(raw)
	if err != nil {
		return types.Address{}, doc.Field(key, "%s", err)
	}
	return address, nil
}

func decodeUnresolvedAddress(doc document.Document, key string) (types.UnresolvedAddress, error) {
	raw, err := doc.Bytes(key)
	if err != nil {
		return nil, err
	}

	address, err := types.NewUnresolvedAddressFromRaw(raw)
	if err != nil {
		return nil, doc.Field(key, "%s", err)
	}
	return address, nil
}

func decodeUnresolvedAddresses(doc document.Document, key string) ([]types.UnresolvedAddress, error) {
	values, err := doc.OptionalArray(key)
	if err != nil {
		return nil, err
	}

	addresses := make([]types.UnresolvedAddress, 0, len(values))
	for i := range values {
		address, err := decodeUnresolvedAddress(doc, fmt.Sprintf("%s.%d", key, i))
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, address)
	}
	return addresses, nil
}

func decodeMosaicId(doc document.Document, key string) (types.MosaicId, error) {
	value, err := doc.Uint64(key)
	return types.MosaicId(value), err
}

func decodeNamespaceId(doc document.Document, key string) (types.NamespaceId, error) {
	value, err := doc.Uint64(key)
	return types.NamespaceId(value), err
}

func decodeUnresolvedMosaicId(doc document.Document, key string) (types.UnresolvedMosaicId, error) {
	value, err := doc.Uint64(key)
	if err != nil {
		return nil, err
	}
	return types.NewUnresolvedMosaicId(value), nil
}

func decodeUnresolvedMosaicIds(doc document.Document, key string) ([]types.UnresolvedMosaicId, error) {
	values, err := doc.OptionalArray(key)
	if err != nil {
		return nil, err
	}

	mosaicIds := make([]types.UnresolvedMosaicId, 0, len(values))
	for i := range values {
		mosaicId, err := decodeUnresolvedMosaicId(doc, fmt.Sprintf("%s.%d", key, i))
		if err != nil {
			return nil, err
		}
		mosaicIds = append(mosaicIds, mosaicId)
	}
	return mosaicIds, nil
}

// decodeMosaic reads a mosaic from the id and amount fields of doc
func decodeMosaic(doc document.Document, idKey, amountKey string) (types.Mosaic, error) {
	id, err := decodeUnresolvedMosaicId(doc, idKey)
	if err != nil {
		return types.Mosaic{}, err
	}

	amount, err := doc.Uint64(amountKey)
	if err != nil {
		return types.Mosaic{}, err
	}

	return types.Mosaic{Amount: amount, Id: id}, nil
}

func decodePublicAccount(doc document.Document, key string, network types.NetworkType) (types.PublicAccount, error) {
	publicKey, err := doc.Hex(key)
	if err != nil {
		return types.PublicAccount{}, err
	}

	account, err := types.NewPublicAccount(publicKey, network)
	if err != nil {
		return types.PublicAccount{}, doc.Field(key, "%s", err)
	}
	return account, nil
}

// decodeText reads a binary field holding UTF-8 text. Invalid sequences are replaced.
func decodeText(doc document.Document, key string) (string, error) {
	raw, err := doc.Bytes(key)
	if err != nil {
		return "", err
	}
	return toText(raw), nil
}

func toText(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
}

// decodeEnum reads a byte field whose value must not exceed highest
func decodeEnum(doc document.Document, key string, highest uint8) (uint8, error) {
	value, err := doc.Uint8(key)
	if err != nil {
		return 0, err
	}

	if value > highest {
		return 0, doc.Field(key, "unknown value %d", value)
	}
	return value, nil
}
