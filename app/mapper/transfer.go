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

func decodeTransfer(abstract types.AbstractTransaction, body document.Document) (*types.TransferTransaction, error) {
	recipient, err := decodeUnresolvedAddress(body, "recipientAddress")
	if err != nil {
		return nil, err
	}

	mosaicDocs, err := body.Documents("mosaics")
	if err != nil {
		return nil, err
	}

	mosaics := make([]types.Mosaic, 0, len(mosaicDocs))
	for _, mosaicDoc := range mosaicDocs {
		mosaic, err := decodeMosaic(mosaicDoc, "id", "amount")
		if err != nil {
			return nil, err
		}
		mosaics = append(mosaics, mosaic)
	}

	message, err := decodeMessage(body)
	if err != nil {
		return nil, err
	}

	return &types.TransferTransaction{
		AbstractTransaction: abstract,
		Message:             message,
		Mosaics:             mosaics,
		Recipient:           recipient,
	}, nil
}

// decodeMessage reads the optional message. Older records keep the payload in a message sub-document, newer ones
// store the binary payload directly.
func decodeMessage(body document.Document) (*types.Message, error) {
	key := "message"
	if !body.Has(key) {
		return nil, nil
	}

	if _, err := body.Document(key); err == nil {
		key = "message.payload"
		if !body.Has(key) {
			return nil, nil
		}
	}

	raw, err := body.Bytes(key)
	if err != nil {
		return nil, err
	}

	return &types.Message{Payload: document.EncodeHex(raw), Text: toText(raw)}, nil
}
