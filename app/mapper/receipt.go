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
	hErrors "github.com/nemtech/symbol-direct-connect/app/errors"
	"github.com/pkg/errors"
)

const statementField = "statement"

// DecodeTransactionStatement decodes a transaction statement record with its receipts in record order
func DecodeTransactionStatement(record document.Document) (*types.TransactionStatement, error) {
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

	source, err := decodeReceiptSource(statement, "source")
	if err != nil {
		return nil, err
	}

	receiptDocs, err := statement.Documents("receipts")
	if err != nil {
		return nil, err
	}

	receipts := make([]types.Receipt, 0, len(receiptDocs))
	for _, receiptDoc := range receiptDocs {
		receipt, err := DecodeReceipt(receiptDoc)
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, receipt)
	}

	return &types.TransactionStatement{Height: height, Id: id, Receipts: receipts, Source: source}, nil
}

// DecodeReceipt decodes a single receipt by its type code
func DecodeReceipt(doc document.Document) (types.Receipt, error) {
	code, err := doc.Int64("type")
	if err != nil {
		return nil, err
	}

	receiptType, ok := types.ReceiptTypeFromValue(code)
	if !ok {
		return nil, &hErrors.UnsupportedReceiptTypeError{Code: int(code)}
	}

	var receipt types.Receipt
	switch receiptType {
	case types.ReceiptTypeHarvestFee,
		types.ReceiptTypeLockHashCompleted,
		types.ReceiptTypeLockHashCreated,
		types.ReceiptTypeLockHashExpired,
		types.ReceiptTypeLockSecretCompleted,
		types.ReceiptTypeLockSecretCreated,
		types.ReceiptTypeLockSecretExpired:
		receipt, err = decodeBalanceChangeReceipt(doc, receiptType)
	case types.ReceiptTypeMosaicRentalFee, types.ReceiptTypeNamespaceRentalFee:
		receipt, err = decodeBalanceTransferReceipt(doc, receiptType)
	case types.ReceiptTypeMosaicExpired:
		receipt, err = decodeArtifactExpiryReceipt(doc, receiptType, decodeMosaicId)
	case types.ReceiptTypeNamespaceDeleted, types.ReceiptTypeNamespaceExpired:
		receipt, err = decodeArtifactExpiryReceipt(doc, receiptType, decodeNamespaceId)
	case types.ReceiptTypeInflation:
		receipt, err = decodeInflationReceipt(doc)
	default:
		return nil, &hErrors.UnsupportedReceiptTypeError{Code: int(code)}
	}

	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode receipt %s", receiptType)
	}
	return receipt, nil
}

func decodeBalanceChangeReceipt(doc document.Document, receiptType types.ReceiptType) (types.Receipt, error) {
	target, err := decodeAddress(doc, "targetAddress")
	if err != nil {
		return nil, err
	}

	mosaicId, err := decodeMosaicId(doc, "mosaicId")
	if err != nil {
		return nil, err
	}

	amount, err := doc.Uint64("amount")
	if err != nil {
		return nil, err
	}

	return types.NewBalanceChangeReceipt(receiptType, target, mosaicId, amount), nil
}

func decodeBalanceTransferReceipt(doc document.Document, receiptType types.ReceiptType) (types.Receipt, error) {
	sender, err := decodeAddress(doc, "senderAddress")
	if err != nil {
		return nil, err
	}

	recipient, err := decodeAddress(doc, "recipientAddress")
	if err != nil {
		return nil, err
	}

	mosaicId, err := decodeMosaicId(doc, "mosaicId")
	if err != nil {
		return nil, err
	}

	amount, err := doc.Uint64("amount")
	if err != nil {
		return nil, err
	}

	return types.NewBalanceTransferReceipt(receiptType, sender, recipient, mosaicId, amount), nil
}

func decodeArtifactExpiryReceipt[T types.ArtifactId](
	doc document.Document,
	receiptType types.ReceiptType,
	decodeId func(document.Document, string) (T, error),
) (types.Receipt, error) {
	artifactId, err := decodeId(doc, "artifactId")
	if err != nil {
		return nil, err
	}
	return types.NewArtifactExpiryReceipt(receiptType, artifactId), nil
}

func decodeInflationReceipt(doc document.Document) (types.Receipt, error) {
	mosaicId, err := decodeMosaicId(doc, "mosaicId")
	if err != nil {
		return nil, err
	}

	amount, err := doc.Uint64("amount")
	if err != nil {
		return nil, err
	}

	return types.NewInflationReceipt(mosaicId, amount), nil
}

func decodeReceiptSource(doc document.Document, key string) (types.ReceiptSource, error) {
	source, err := doc.Document(key)
	if err != nil {
		return types.ReceiptSource{}, err
	}

	primary, err := source.Uint32("primaryId")
	if err != nil {
		return types.ReceiptSource{}, err
	}

	secondary, err := source.Uint32("secondaryId")
	if err != nil {
		return types.ReceiptSource{}, err
	}

	return types.ReceiptSource{Primary: primary, Secondary: secondary}, nil
}

// recordId returns the hex object id of a record, empty for records built without one
func recordId(record document.Document) (string, error) {
	if !record.Has("_id") {
		return "", nil
	}
	return record.ObjectIdHex("_id")
}
