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

package domain

import (
	"github.com/nemtech/symbol-direct-connect/app/document"
	"github.com/nemtech/symbol-direct-connect/app/domain/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatementBuilder builds transaction statement and resolution statement records
type StatementBuilder struct {
	id        primitive.ObjectID
	statement bson.M
}

func (b *StatementBuilder) Source(primary, secondary uint32) *StatementBuilder {
	b.statement["source"] = Source(primary, secondary)
	return b
}

func (b *StatementBuilder) Receipt(receipt bson.M) *StatementBuilder {
	b.statement["receipts"] = append(b.statement["receipts"].(bson.A), receipt)
	return b
}

func (b *StatementBuilder) Unresolved(value interface{}) *StatementBuilder {
	b.statement["unresolved"] = value
	return b
}

func (b *StatementBuilder) Entry(primary, secondary uint32, resolved interface{}) *StatementBuilder {
	entry := bson.M{"source": Source(primary, secondary), "resolved": resolved}
	b.statement["resolutionEntries"] = append(b.statement["resolutionEntries"].(bson.A), entry)
	return b
}

func (b *StatementBuilder) ObjectId() primitive.ObjectID {
	return b.id
}

func (b *StatementBuilder) Record() bson.M {
	return bson.M{"_id": b.id, "statement": b.statement}
}

func (b *StatementBuilder) Document() document.Document {
	return document.New(b.Record())
}

func Source(primary, secondary uint32) bson.M {
	return bson.M{"primaryId": int32(primary), "secondaryId": int32(secondary)}
}

// BalanceChangeReceipt returns a balance change receipt crediting the default recipient
func BalanceChangeReceipt(receiptType types.ReceiptType, amount uint64) bson.M {
	return bson.M{
		"type":          int32(receiptType),
		"version":       int32(1),
		"targetAddress": BinaryHex(RecipientAddress),
		"mosaicId":      Long(CurrencyMosaicId),
		"amount":        Long(amount),
	}
}

// NewTransactionStatementBuilder returns a builder of a transaction statement without receipts
func NewTransactionStatementBuilder(height uint64) *StatementBuilder {
	return &StatementBuilder{
		id: primitive.NewObjectID(),
		statement: bson.M{
			"height":   Long(height),
			"receipts": bson.A{},
			"source":   Source(0, 0),
		},
	}
}

// NewResolutionStatementBuilder returns a builder of a resolution statement without entries
func NewResolutionStatementBuilder(height uint64, unresolved interface{}) *StatementBuilder {
	return &StatementBuilder{
		id: primitive.NewObjectID(),
		statement: bson.M{
			"height":            Long(height),
			"resolutionEntries": bson.A{},
			"unresolved":        unresolved,
		},
	}
}
