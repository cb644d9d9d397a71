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
	"time"

	"github.com/nemtech/symbol-direct-connect/app/document"
	"github.com/nemtech/symbol-direct-connect/app/domain/types"
	hErrors "github.com/nemtech/symbol-direct-connect/app/errors"
	"github.com/nemtech/symbol-direct-connect/app/interfaces"
	"github.com/nemtech/symbol-direct-connect/app/mapper"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	aggregateHashKey   = "meta.aggregateHash"
	metaHashKey        = "meta.hash"
	metaHeightKey      = "meta.height"
	signerPublicKeyKey = "transaction.signerPublicKey"
)

// topLevelFilter excludes the inner transactions of aggregates, which the node stores next to them
var topLevelFilter = bson.M{"$exists": false}

// transactionRepository struct that has connection to the document store
type transactionRepository struct {
	store interfaces.DocumentStore
}

// NewTransactionRepository creates an instance of a transactionRepository struct
func NewTransactionRepository(store interfaces.DocumentStore) interfaces.TransactionRepository {
	return &transactionRepository{store: store}
}

// FindByHash searches the confirmed, unconfirmed and partial collections once each in that order. When the hash is
// in none of them, the confirmed collection is polled until the timeout elapses.
func (tr *transactionRepository) FindByHash(
	ctx context.Context,
	hash string,
	timeout time.Duration,
) (types.Transaction, error) {
	for _, group := range transactionGroups {
		transaction, err := tr.FindByGroup(ctx, hash, group, 0)
		if err == nil {
			return transaction, nil
		}

		if !errors.Is(err, hErrors.ErrRecordNotFound) {
			return nil, err
		}
	}

	if timeout == 0 {
		return nil, errors.Wrapf(hErrors.ErrRecordNotFound, "transaction %s", hash)
	}

	return tr.FindByGroup(ctx, hash, types.TransactionGroupConfirmed, timeout)
}

func (tr *transactionRepository) FindByGroup(
	ctx context.Context,
	hash string,
	group types.TransactionGroup,
	timeout time.Duration,
) (types.Transaction, error) {
	collection, err := collectionOf(group)
	if err != nil {
		return nil, err
	}

	hashValue, err := toBinary(hash)
	if err != nil {
		return nil, err
	}

	record, err := tr.store.FindOne(ctx, collection, metaHashKey, hashValue, timeout)
	if err != nil {
		return nil, err
	}

	return tr.decode(ctx, collection, record)
}

func (tr *transactionRepository) FindByHeight(ctx context.Context, height uint64) ([]types.Transaction, error) {
	filter, err := heightFilter(metaHeightKey, height)
	if err != nil {
		return nil, err
	}

	filter[aggregateHashKey] = topLevelFilter
	return tr.find(ctx, transactionsCollection, filter)
}

func (tr *transactionRepository) FindBySigner(
	ctx context.Context,
	signerPublicKey string,
	group types.TransactionGroup,
) ([]types.Transaction, error) {
	collection, err := collectionOf(group)
	if err != nil {
		return nil, err
	}

	signer, err := toBinary(signerPublicKey)
	if err != nil {
		return nil, err
	}

	return tr.find(ctx, collection, bson.M{signerPublicKeyKey: signer, aggregateHashKey: topLevelFilter})
}

func (tr *transactionRepository) find(
	ctx context.Context,
	collection string,
	filter bson.M,
) ([]types.Transaction, error) {
	records, err := tr.store.Find(ctx, collection, filter, 0)
	if err != nil {
		return nil, err
	}

	transactions := make([]types.Transaction, 0, len(records))
	for _, record := range records {
		transaction, err := tr.decode(ctx, collection, record)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}

	return transactions, nil
}

// decode decodes a top level transaction record. An aggregate gets its inner transactions, looked up by the
// aggregate hash in the same collection. The aggregate and its inner records are two separate reads with no
// snapshot between them, so the result is best effort: records written or pruned in between are seen as they are.
func (tr *transactionRepository) decode(
	ctx context.Context,
	collection string,
	record document.Document,
) (types.Transaction, error) {
	transaction, err := mapper.DecodeTransaction(record)
	if err != nil {
		log.Errorf("Failed to decode transaction record of %s: %s", collection, err)
		return nil, err
	}

	aggregate, ok := transaction.(*types.AggregateTransaction)
	if !ok {
		return transaction, nil
	}

	// unconfirmed aggregates carry no transaction info, the hash is read from the record
	aggregateHash, err := record.Bytes(metaHashKey)
	if err != nil {
		return nil, hErrors.NewMalformedTransaction(int(aggregate.Type), metaHashKey, err)
	}

	innerRecords, err := tr.store.Find(ctx, collection, bson.M{aggregateHashKey: binaryOf(aggregateHash)}, 0)
	if err != nil {
		return nil, err
	}

	reconstructed, err := mapper.AttachInnerTransactions(aggregate, innerRecords)
	if err != nil {
		log.Errorf("Failed to reconstruct aggregate of %s: %s", collection, err)
		return nil, err
	}

	return reconstructed, nil
}
