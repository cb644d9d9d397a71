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

// decodeResolutionStatement decodes a resolution statement record. The unresolved and resolved values are decoded
// with their own decoders since addresses are binary and mosaic ids are integers.
func decodeResolutionStatement[U any, R any](
	record document.Document,
	decodeUnresolved func(document.Document, string) (U, error),
	decodeResolved func(document.Document, string) (R, error),
) (*types.ResolutionStatement[U, R], error) {
	statement, err := record.Document(statementField)
	if err != nil {
		return nil, err
	}

	id, err := recordId(record)
	if err != nil {
		return nil, err
	}

	height, err := statement.Uint64("height")
	if err != nil {
		return nil, err
	}

	unresolved, err := decodeUnresolved(statement, "unresolved")
	if err != nil {
		return nil, err
	}

	entryDocs, err := statement.Documents("resolutionEntries")
	if err != nil {
		return nil, err
	}

	entries := make([]types.ResolutionEntry[R], 0, len(entryDocs))
	for _, entryDoc := range entryDocs {
		source, err := decodeReceiptSource(entryDoc, "source")
		if err != nil {
			return nil, err
		}

		resolved, err := decodeResolved(entryDoc, "resolved")
		if err != nil {
			return nil, err
		}

		entries = append(entries, types.ResolutionEntry[R]{Resolved: resolved, Source: source})
	}

	return &types.ResolutionStatement[U, R]{Entries: entries, Height: height, Id: id, Unresolved: unresolved}, nil
}

// DecodeAddressResolutionStatement decodes a statement resolving an address alias
func DecodeAddressResolutionStatement(record document.Document) (*types.AddressResolutionStatement, error) {
	return decodeResolutionStatement(record, decodeUnresolvedAddress, decodeAddress)
}

// DecodeMosaicResolutionStatement decodes a statement resolving a mosaic alias
func DecodeMosaicResolutionStatement(record document.Document) (*types.MosaicResolutionStatement, error) {
	return decodeResolutionStatement(record, decodeUnresolvedMosaicId, decodeMosaicId)
}
