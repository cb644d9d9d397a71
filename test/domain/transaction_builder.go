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
	"github.com/nemtech/symbol-direct-connect/app/interfaces"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransactionBuilder builds transaction records laid out the way the node indexes them
type TransactionBuilder struct {
	body bson.M
	id   primitive.ObjectID
	meta bson.M
}

// Field sets a field of the transaction body
func (b *TransactionBuilder) Field(key string, value interface{}) *TransactionBuilder {
	b.body[key] = value
	return b
}

// Without removes a field of the transaction body
func (b *TransactionBuilder) Without(key string) *TransactionBuilder {
	delete(b.body, key)
	return b
}

// PackedVersion replaces the network and version fields with the legacy packed version
func (b *TransactionBuilder) PackedVersion(packed int32) *TransactionBuilder {
	delete(b.body, "network")
	b.body["version"] = packed
	return b
}

// Confirmed places the transaction at index of the block at height
func (b *TransactionBuilder) Confirmed(height uint64, index uint32) *TransactionBuilder {
	b.meta["height"] = Long(height)
	b.meta["index"] = int32(index)
	return b
}

// Hash sets the hash of a top-level transaction
func (b *TransactionBuilder) Hash(hash []byte) *TransactionBuilder {
	b.meta["hash"] = Binary(hash)
	b.meta["merkleComponentHash"] = Binary(hash)
	return b
}

func (b *TransactionBuilder) Id(id primitive.ObjectID) *TransactionBuilder {
	b.id = id
	return b
}

// ObjectId returns the record id
func (b *TransactionBuilder) ObjectId() primitive.ObjectID {
	return b.id
}

// Record returns the bson record
func (b *TransactionBuilder) Record() bson.M {
	return bson.M{"_id": b.id, "meta": b.meta, "transaction": b.body}
}

// Document returns the record as a document
func (b *TransactionBuilder) Document() document.Document {
	return document.New(b.Record())
}

func (b *TransactionBuilder) Persist(dbClient interfaces.DbClient, collection string) {
	Persist(dbClient, collection, b.Record())
}

// NewTransactionBuilder returns a builder of an unconfirmed top-level transaction of the type carrying the common
// fields
func NewTransactionBuilder(transactionType types.TransactionType) *TransactionBuilder {
	return &TransactionBuilder{
		body: bson.M{
			"deadline":        Long(DefaultDeadline),
			"maxFee":          Long(DefaultMaxFee),
			"network":         int32(DefaultNetwork),
			"signature":       BinaryHex(Signature),
			"signerPublicKey": BinaryHex(SignerPublicKey),
			"type":            int32(transactionType),
			"version":         int32(DefaultVersion),
		},
		id:   primitive.NewObjectID(),
		meta: bson.M{"height": int64(0), "hash": Binary(Hash(0xAA)), "merkleComponentHash": Binary(Hash(0xAA))},
	}
}

// NewEmbeddedTransactionBuilder returns a builder of an inner transaction of the aggregate at index
func NewEmbeddedTransactionBuilder(
	transactionType types.TransactionType,
	aggregateHash []byte,
	aggregateId primitive.ObjectID,
	height uint64,
	index uint32,
) *TransactionBuilder {
	return &TransactionBuilder{
		body: bson.M{
			"network":         int32(DefaultNetwork),
			"signerPublicKey": BinaryHex(SignerPublicKey),
			"type":            int32(transactionType),
			"version":         int32(DefaultVersion),
		},
		id: primitive.NewObjectID(),
		meta: bson.M{
			"aggregateHash": Binary(aggregateHash),
			"aggregateId":   aggregateId,
			"height":        Long(height),
			"index":         int32(index),
		},
	}
}

// NewTransferBuilder returns a builder of a transfer of currency to the default recipient
func NewTransferBuilder(amount uint64) *TransactionBuilder {
	return NewTransactionBuilder(types.TransactionTypeTransfer).
		Field("recipientAddress", BinaryHex(RecipientAddress)).
		Field("mosaics", bson.A{bson.M{"id": Long(CurrencyMosaicId), "amount": Long(amount)}})
}

// NewAggregateBuilder returns a builder of a complete aggregate without cosignatures
func NewAggregateBuilder() *TransactionBuilder {
	return NewTransactionBuilder(types.TransactionTypeAggregateComplete).
		Field("transactionsHash", Binary(Hash(0x11))).
		Field("cosignatures", bson.A{})
}
