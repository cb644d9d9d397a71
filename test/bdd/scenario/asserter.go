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

package scenario

import (
	"fmt"

	"github.com/nemtech/symbol-direct-connect/app/domain/types"
	"github.com/stretchr/testify/assert"
)

// asserter is used to be able to retrieve the error reported by the called assertion
type asserter struct {
	err error
}

// Errorf is used by the called assertion to report an error
func (a *asserter) Errorf(format string, args ...interface{}) {
	a.err = fmt.Errorf(format, args...)
}

type assertTransactionFunc func(t *asserter, transaction types.Transaction)

func assertTransactionAll(transaction types.Transaction, funcs ...assertTransactionFunc) error {
	var t asserter
	for _, assertFunc := range funcs {
		assertFunc(&t, transaction)
		if t.err != nil {
			return t.err
		}
	}

	return t.err
}

func assertTransactionType(expected types.TransactionType) assertTransactionFunc {
	return func(t *asserter, transaction types.Transaction) {
		assert.Equal(t, expected, transaction.Base().Type)
	}
}

func assertTransactionConfirmedAt(height uint64) assertTransactionFunc {
	return func(t *asserter, transaction types.Transaction) {
		info := transaction.Base().Info
		if !assert.NotNil(t, info, "transaction info") {
			return
		}
		assert.Equal(t, height, info.Height)
	}
}

func assertTransferOf(amount uint64, recipient string) assertTransactionFunc {
	return func(t *asserter, transaction types.Transaction) {
		transfer, ok := transaction.(*types.TransferTransaction)
		if !assert.True(t, ok, "transaction is a %T", transaction) {
			return
		}

		address, ok := transfer.Recipient.(types.Address)
		if !assert.True(t, ok, "recipient is a %T", transfer.Recipient) {
			return
		}
		assert.Equal(t, recipient, address.Encoded())

		if !assert.Len(t, transfer.Mosaics, 1) {
			return
		}
		assert.Equal(t, amount, transfer.Mosaics[0].Amount)
	}
}

func assertInnerTransactions(count int, aggregateHash string) assertTransactionFunc {
	return func(t *asserter, transaction types.Transaction) {
		aggregate, ok := transaction.(*types.AggregateTransaction)
		if !assert.True(t, ok, "transaction is a %T", transaction) {
			return
		}

		if !assert.Len(t, aggregate.InnerTransactions, count) {
			return
		}

		for index, inner := range aggregate.InnerTransactions {
			base := inner.Base()
			if !assert.True(t, base.Embedded, "inner transaction %d is embedded", index) ||
				!assert.NotNil(t, base.Info, "inner transaction %d info", index) {
				return
			}

			if !assert.Equal(t, uint32(index), base.Info.Index) ||
				!assert.Equal(t, aggregateHash, base.Info.AggregateHash) {
				return
			}
		}
	}
}
