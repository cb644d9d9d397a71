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
	"encoding/hex"

	"github.com/nemtech/symbol-direct-connect/app/domain/types"
	hErrors "github.com/nemtech/symbol-direct-connect/app/errors"
	"github.com/nemtech/symbol-direct-connect/app/tools"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	accountsCollection                    = "accounts"
	addressResolutionStatementsCollection = "addressResolutionStatements"
	blocksCollection                      = "blocks"
	chainStatisticCollection              = "chainStatistic"
	metadataCollection                    = "metadata"
	mosaicResolutionStatementsCollection  = "mosaicResolutionStatements"
	mosaicsCollection                     = "mosaics"
	multisigsCollection                   = "multisigs"
	namespacesCollection                  = "namespaces"
	partialTransactionsCollection         = "partialTransactions"
	transactionStatementsCollection       = "transactionStatements"
	transactionStatusesCollection         = "transactionStatuses"
	transactionsCollection                = "transactions"
	unconfirmedTransactionsCollection     = "unconfirmedTransactions"

	databaseErrorFormat = "%s on collection %s: %s"
)

// transactionCollections maps a transaction group to the collection holding its transactions
var transactionCollections = map[types.TransactionGroup]string{
	types.TransactionGroupConfirmed:   transactionsCollection,
	types.TransactionGroupPartial:     partialTransactionsCollection,
	types.TransactionGroupUnconfirmed: unconfirmedTransactionsCollection,
}

// transactionGroups is the order the transaction collections are searched in
var transactionGroups = []types.TransactionGroup{
	types.TransactionGroupConfirmed,
	types.TransactionGroupUnconfirmed,
	types.TransactionGroupPartial,
}

func collectionOf(group types.TransactionGroup) (string, error) {
	collection, ok := transactionCollections[group]
	if !ok {
		return "", errors.Wrapf(hErrors.ErrInvalidArgument, "unsupported transaction group %s", group)
	}
	return collection, nil
}

// toBinary converts a hex encoded hash or key, with or without 0x prefix, into the binary form the node stores it in
func toBinary(value string) (primitive.Binary, error) {
	data, err := hex.DecodeString(tools.SafeRemoveHexPrefix(value))
	if err != nil || len(data) == 0 {
		return primitive.Binary{}, errors.Wrapf(hErrors.ErrInvalidArgument, "invalid hex value '%s'", value)
	}
	return binaryOf(data), nil
}

func binaryOf(data []byte) primitive.Binary {
	return primitive.Binary{Data: data}
}

// storedId returns an id the way the node stores it, reinterpreted in a signed 64-bit field
func storedId(id uint64) int64 {
	return int64(id)
}

func heightFilter(key string, height uint64) (bson.M, error) {
	value, err := tools.CastToInt64(height)
	if err != nil {
		return nil, err
	}
	return bson.M{key: value}, nil
}
