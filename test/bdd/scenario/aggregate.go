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
	"github.com/cucumber/godog"
	"github.com/nemtech/symbol-direct-connect/app/document"
	"github.com/nemtech/symbol-direct-connect/app/domain/types"
	tdomain "github.com/nemtech/symbol-direct-connect/test/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	aggregateHeight = uint64(20)
	transferType    = types.TransactionTypeTransfer
)

type aggregateFeature struct {
	*baseFeature
	aggregate *tdomain.TransactionBuilder
	hash      []byte
	inner     []document.Document
	innerCall *mock.Call
	seed      byte
}

func (f *aggregateFeature) confirmedAggregate(transactionType string, seed string) error {
	value, err := parseSeed(seed)
	if err != nil {
		return err
	}

	f.seed = value
	f.hash = tdomain.Hash(value)
	f.inner = []document.Document{}
	f.innerCall = nil
	f.aggregate = tdomain.NewAggregateBuilder().Confirmed(aggregateHeight, 0).Hash(f.hash)
	switch transactionType {
	case "complete":
	case "bonded":
		f.aggregate.Field("type", int32(types.TransactionTypeAggregateBonded))
	default:
		return errors.Errorf("unknown aggregate type %s", transactionType)
	}

	f.storeConfirmed(f.hash, f.aggregate.Document())
	f.storeInner()
	return nil
}

func (f *aggregateFeature) innerTransfers(count int) error {
	if f.aggregate == nil {
		return errors.New("no aggregate")
	}

	for i := 0; i < count; i++ {
		record := f.innerRecord(transferType).
			Field("recipientAddress", tdomain.BinaryHex(tdomain.RecipientAddress)).
			Field("mosaics", bson.A{bson.M{"id": tdomain.Long(tdomain.CurrencyMosaicId), "amount": int64(i + 1)}}).
			Document()
		f.inner = append(f.inner, record)
	}

	f.storeInner()
	return nil
}

func (f *aggregateFeature) nestedAggregate() error {
	if f.aggregate == nil {
		return errors.New("no aggregate")
	}

	record := f.innerRecord(types.TransactionTypeAggregateBonded).
		Field("transactionsHash", tdomain.Binary(tdomain.Hash(0x12))).
		Document()
	f.inner = append(f.inner, record)
	f.storeInner()
	return nil
}

// storeInner replaces the inner transactions stored for the aggregate
func (f *aggregateFeature) storeInner() {
	if f.innerCall != nil {
		f.innerCall.Unset()
	}
	f.innerCall = f.baseFeature.storeInner(f.hash, f.inner)
}

func (f *aggregateFeature) innerRecord(transactionType types.TransactionType) *tdomain.TransactionBuilder {
	index := uint32(len(f.inner))
	return tdomain.NewEmbeddedTransactionBuilder(transactionType, f.hash, f.aggregate.ObjectId(), aggregateHeight, index)
}

func (f *aggregateFeature) verifyInnerTransactions(count int) error {
	transaction, err := f.foundTransaction()
	if err != nil {
		return err
	}

	return assertTransactionAll(
		transaction,
		assertTransactionConfirmedAt(aggregateHeight),
		assertInnerTransactions(count, tdomain.HashHex(f.seed)),
	)
}

func (f *aggregateFeature) verifyAggregateType(transactionType string) error {
	transaction, err := f.foundTransaction()
	if err != nil {
		return err
	}

	expected := types.TransactionTypeAggregateComplete
	if transactionType == "bonded" {
		expected = types.TransactionTypeAggregateBonded
	}
	return assertTransactionAll(transaction, assertTransactionType(expected))
}

func initializeAggregateScenario(ctx *godog.ScenarioContext, base *baseFeature) {
	aggregate := &aggregateFeature{baseFeature: base}

	ctx.Step(`^a confirmed (complete|bonded) aggregate with hash "([0-9A-Fa-f]{2})"$`, aggregate.confirmedAggregate)
	ctx.Step(`^the aggregate holds (\d+) inner transfers?$`, aggregate.innerTransfers)
	ctx.Step(`^the aggregate holds an aggregate bonded transaction$`, aggregate.nestedAggregate)
	ctx.Step(`^the transaction is an aggregate (complete|bonded) transaction$`, aggregate.verifyAggregateType)
	ctx.Step(`^the aggregate has (\d+) inner transactions in index order$`, aggregate.verifyInnerTransactions)
}
