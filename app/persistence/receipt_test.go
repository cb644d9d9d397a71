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
	"testing"

	"github.com/nemtech/symbol-direct-connect/app/document"
	"github.com/nemtech/symbol-direct-connect/app/domain/types"
	hErrors "github.com/nemtech/symbol-direct-connect/app/errors"
	tdomain "github.com/nemtech/symbol-direct-connect/test/domain"
	"github.com/nemtech/symbol-direct-connect/test/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func statementFilter(height uint64) bson.M {
	return bson.M{statementHeightKey: int64(height)}
}

func TestFindTransactionStatements(t *testing.T) {
	// given
	store := &mocks.MockDocumentStore{}
	records := []document.Document{
		tdomain.NewTransactionStatementBuilder(12).
			Receipt(tdomain.BalanceChangeReceipt(types.ReceiptTypeHarvestFee, 10)).
			Document(),
		tdomain.NewTransactionStatementBuilder(12).
			Source(1, 0).
			Receipt(tdomain.BalanceChangeReceipt(types.ReceiptTypeLockHashCreated, 20)).
			Document(),
	}
	store.On("Find", transactionStatementsCollection, statementFilter(12), noTimeout).Return(records, nil)

	// when
	actual, err := NewReceiptRepository(store).FindTransactionStatements(defaultContext, 12)

	// then
	require.NoError(t, err)
	require.Len(t, actual, 2)
	assert.Equal(t, types.ReceiptTypeHarvestFee, actual[0].Receipts[0].ReceiptType())
	assert.Equal(t, types.ReceiptSource{Primary: 1}, actual[1].Source)
}

func TestFindAddressResolutionStatements(t *testing.T) {
	// given
	store := &mocks.MockDocumentStore{}
	records := []document.Document{
		tdomain.NewResolutionStatementBuilder(13, tdomain.Binary(tdomain.AliasAddress(tdomain.CurrencyNamespace))).
			Entry(1, 0, tdomain.BinaryHex(tdomain.RecipientAddress)).
			Document(),
	}
	store.On("Find", addressResolutionStatementsCollection, statementFilter(13), noTimeout).Return(records, nil)

	// when
	actual, err := NewReceiptRepository(store).FindAddressResolutionStatements(defaultContext, 13)

	// then
	require.NoError(t, err)
	require.Len(t, actual, 1)
	assert.Equal(t, types.NamespaceId(tdomain.CurrencyNamespace), actual[0].Unresolved)
	assert.Equal(t, tdomain.RecipientAddress, actual[0].Entries[0].Resolved.Encoded())
}

func TestFindMosaicResolutionStatements(t *testing.T) {
	// given
	store := &mocks.MockDocumentStore{}
	records := []document.Document{
		tdomain.NewResolutionStatementBuilder(14, tdomain.Long(tdomain.CurrencyNamespace)).
			Entry(1, 0, tdomain.Long(tdomain.CurrencyMosaicId)).
			Document(),
	}
	store.On("Find", mosaicResolutionStatementsCollection, statementFilter(14), noTimeout).Return(records, nil)

	// when
	actual, err := NewReceiptRepository(store).FindMosaicResolutionStatements(defaultContext, 14)

	// then
	require.NoError(t, err)
	require.Len(t, actual, 1)
	assert.Equal(t, types.MosaicId(tdomain.CurrencyMosaicId), actual[0].Entries[0].Resolved)
}

func TestFindStatementsNone(t *testing.T) {
	store := &mocks.MockDocumentStore{}
	store.On("Find", transactionStatementsCollection, statementFilter(15), noTimeout).Return([]document.Document{}, nil)

	actual, err := NewReceiptRepository(store).FindTransactionStatements(defaultContext, 15)

	assert.NoError(t, err)
	assert.NotNil(t, actual)
	assert.Empty(t, actual)
}

func TestFindStatementsError(t *testing.T) {
	tests := []struct {
		name    string
		records []document.Document
		err     error
		check   func(error) bool
	}{
		{
			name:  "database error",
			err:   errDatabaseDown,
			check: func(err error) bool { return errors.Is(err, hErrors.ErrDatabaseError) },
		},
		{
			name: "unsupported receipt",
			records: []document.Document{
				tdomain.NewTransactionStatementBuilder(16).Receipt(bson.M{"type": int32(0x0001)}).Document(),
			},
			check: func(err error) bool {
				var unsupported *hErrors.UnsupportedReceiptTypeError
				return errors.As(err, &unsupported)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// given
			store := &mocks.MockDocumentStore{}
			store.On("Find", transactionStatementsCollection, statementFilter(16), noTimeout).Return(tt.records, tt.err)

			// when
			actual, err := NewReceiptRepository(store).FindTransactionStatements(defaultContext, 16)

			// then
			assert.Nil(t, actual)
			assert.True(t, tt.check(err), "%v", err)
		})
	}
}
