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
)

func decodeAggregate(abstract types.AbstractTransaction, body document.Document) (*types.AggregateTransaction, error) {
	transactionsHash, err := body.Hex("transactionsHash")
	if err != nil {
		return nil, err
	}

	cosignatureDocs, err := body.Documents("cosignatures")
	if err != nil {
		return nil, err
	}

	cosignatures := make([]types.Cosignature, 0, len(cosignatureDocs))
	for _, cosignatureDoc := range cosignatureDocs {
		cosignature, err := decodeCosignature(cosignatureDoc, abstract.Network)
		if err != nil {
			return nil, err
		}
		cosignatures = append(cosignatures, cosignature)
	}

	return &types.AggregateTransaction{
		AbstractTransaction: abstract,
		Cosignatures:        cosignatures,
		InnerTransactions:   []types.Transaction{},
		TransactionsHash:    transactionsHash,
	}, nil
}

func decodeCosignature(doc document.Document, network types.NetworkType) (types.Cosignature, error) {
	signer, err := decodePublicAccount(doc, "signerPublicKey", network)
	if err != nil {
		return types.Cosignature{}, err
	}

	signature, err := doc.Hex("signature")
	if err != nil {
		return types.Cosignature{}, err
	}

	var version uint64
	if doc.Has("version") {
		if version, err = doc.Uint64("version"); err != nil {
			return types.Cosignature{}, err
		}
	}

	return types.Cosignature{Signature: signature, Signer: signer, Version: version}, nil
}

// AttachInnerTransactions decodes the embedded transaction records of an aggregate and returns a copy of the
// aggregate holding them in record order. The records are the ones whose meta.aggregateHash references the
// aggregate; no records leaves the inner list empty. An embedded aggregate fails the whole reconstruction. The
// records come from a read separate from the one that produced the aggregate, so the pairing is best effort and not
// transactional.
func AttachInnerTransactions(
	aggregate *types.AggregateTransaction,
	innerRecords []document.Document,
) (*types.AggregateTransaction, error) {
	inner := make([]types.Transaction, 0, len(innerRecords))
	for _, record := range innerRecords {
		transaction, err := DecodeEmbeddedTransaction(record)
		if err != nil {
			if nested, ok := err.(*hErrors.NestedAggregateError); ok && nested.AggregateHash == "" {
				nested.AggregateHash = aggregateHash(aggregate)
			}
			return nil, err
		}
		inner = append(inner, transaction)
	}

	return aggregate.WithInnerTransactions(inner), nil
}

func aggregateHash(aggregate *types.AggregateTransaction) string {
	if aggregate.Info == nil {
		return ""
	}
	return aggregate.Info.Hash
}
