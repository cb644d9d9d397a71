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
	"strings"

	"github.com/nemtech/symbol-direct-connect/app/domain/types"
	hErrors "github.com/nemtech/symbol-direct-connect/app/errors"
	"github.com/nemtech/symbol-direct-connect/app/interfaces"
	"github.com/nemtech/symbol-direct-connect/app/mapper"
	"github.com/pkg/errors"
)

const statusHashKey = "status.hash"

// transactionStatusRepository struct that has connection to the document store
type transactionStatusRepository struct {
	store interfaces.DocumentStore
}

// NewTransactionStatusRepository creates an instance of a transactionStatusRepository struct
func NewTransactionStatusRepository(store interfaces.DocumentStore) interfaces.TransactionStatusRepository {
	return &transactionStatusRepository{store: store}
}

// FindByHash looks the hash up in the confirmed, unconfirmed and partial collections and finally among the
// transactions the node rejected
func (tsr *transactionStatusRepository) FindByHash(ctx context.Context, hash string) (*types.TransactionStatus, error) {
	hashValue, err := toBinary(hash)
	if err != nil {
		return nil, err
	}

	for _, group := range transactionGroups {
		record, err := tsr.store.FindOne(ctx, transactionCollections[group], metaHashKey, hashValue, 0)
		if err != nil {
			if errors.Is(err, hErrors.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}

		transaction, err := mapper.DecodeTransaction(record)
		if err != nil {
			return nil, err
		}

		return mapper.NewTransactionStatus(transaction, strings.ToUpper(hash), group), nil
	}

	record, err := tsr.store.FindOne(ctx, transactionStatusesCollection, statusHashKey, hashValue, 0)
	if err != nil {
		return nil, err
	}

	return mapper.DecodeFailedTransactionStatus(record)
}

// FindByHashes returns the statuses of the hashes which are known, in the order of the hashes
func (tsr *transactionStatusRepository) FindByHashes(
	ctx context.Context,
	hashes []string,
) ([]*types.TransactionStatus, error) {
	statuses := make([]*types.TransactionStatus, 0, len(hashes))
	for _, hash := range hashes {
		status, err := tsr.FindByHash(ctx, hash)
		if err != nil {
			if errors.Is(err, hErrors.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}
