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

package persistence

import (
	"context"

	"github.com/nemtech/symbol-direct-connect/app/document"
	"github.com/nemtech/symbol-direct-connect/app/domain/types"
	"github.com/nemtech/symbol-direct-connect/app/interfaces"
	"github.com/nemtech/symbol-direct-connect/app/mapper"
)

const statementHeightKey = "statement.height"

// receiptRepository struct that has connection to the document store
type receiptRepository struct {
	store interfaces.DocumentStore
}

// NewReceiptRepository creates an instance of a receiptRepository struct
func NewReceiptRepository(store interfaces.DocumentStore) interfaces.ReceiptRepository {
	return &receiptRepository{store: store}
}

func (rr *receiptRepository) FindTransactionStatements(
	ctx context.Context,
	height uint64,
) ([]*types.TransactionStatement, error) {
	return findStatements(ctx, rr.store, transactionStatementsCollection, height, mapper.DecodeTransactionStatement)
}

func (rr *receiptRepository) FindAddressResolutionStatements(
	ctx context.Context,
	height uint64,
) ([]*types.AddressResolutionStatement, error) {
	return findStatements(
		ctx,
		rr.store,
		addressResolutionStatementsCollection,
		height,
		mapper.DecodeAddressResolutionStatement,
	)
}

func (rr *receiptRepository) FindMosaicResolutionStatements(
	ctx context.Context,
	height uint64,
) ([]*types.MosaicResolutionStatement, error) {
	return findStatements(
		ctx,
		rr.store,
		mosaicResolutionStatementsCollection,
		height,
		mapper.DecodeMosaicResolutionStatement,
	)
}

func findStatements[S any](
	ctx context.Context,
	store interfaces.DocumentStore,
	collection string,
	height uint64,
	decode func(document.Document) (S, error),
) ([]S, error) {
	filter, err := heightFilter(statementHeightKey, height)
	if err != nil {
		return nil, err
	}

	records, err := store.Find(ctx, collection, filter, 0)
	if err != nil {
		return nil, err
	}

	statements := make([]S, 0, len(records))
	for _, record := range records {
		statement, err := decode(record)
		if err != nil {
			return nil, err
		}
		statements = append(statements, statement)
	}

	return statements, nil
}
