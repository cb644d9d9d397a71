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
	"fmt"

	"github.com/nemtech/symbol-direct-connect/app/document"
	"github.com/nemtech/symbol-direct-connect/app/domain/types"
	"github.com/nemtech/symbol-direct-connect/app/interfaces"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OwnerAddress    = "98E521BD0F024F58E670A023BF3A14F3BECAF0280396BED0"
	CosignerAddress = "98B3C1D5A4F2E6B0C8D9E1F20314253647586970A1B2C3D4"
	MetadataValue   = "symbol"
)

// StateBuilder builds records of the collections holding the chain state: accounts, mosaics, namespaces, multisigs
// and metadata
type StateBuilder struct {
	collection string
	entry      bson.M
	field      string
	id         primitive.ObjectID
	meta       bson.M
}

// Field sets a field of the state entry
func (b *StateBuilder) Field(key string, value interface{}) *StateBuilder {
	b.entry[key] = value
	return b
}

// Without removes a field of the state entry
func (b *StateBuilder) Without(key string) *StateBuilder {
	delete(b.entry, key)
	return b
}

// Active sets whether a namespace record is the live one
func (b *StateBuilder) Active(active bool) *StateBuilder {
	b.meta["active"] = active
	return b
}

func (b *StateBuilder) ObjectId() primitive.ObjectID {
	return b.id
}

func (b *StateBuilder) Record() bson.M {
	record := bson.M{"_id": b.id, b.field: b.entry}
	if b.meta != nil {
		record["meta"] = b.meta
	}
	return record
}

func (b *StateBuilder) Document() document.Document {
	return document.New(b.Record())
}

func (b *StateBuilder) Persist(dbClient interfaces.DbClient) {
	Persist(dbClient, b.collection, b.Record())
}

func newStateBuilder(collection, field string, entry bson.M) *StateBuilder {
	return &StateBuilder{collection: collection, entry: entry, field: field, id: primitive.NewObjectID()}
}

// NewAccountBuilder returns a builder of an account holding the currency mosaic
func NewAccountBuilder(address string) *StateBuilder {
	return newStateBuilder("accounts", "account", bson.M{
		"address":         BinaryHex(address),
		"addressHeight":   Long(1),
		"publicKey":       BinaryHex(SignerPublicKey),
		"publicKeyHeight": Long(2),
		"importances":     bson.A{bson.M{"value": Long(500), "height": Long(720)}},
		"mosaics":         bson.A{bson.M{"id": Long(CurrencyMosaicId), "amount": Long(1_000_000)}},
	})
}

// NewMosaicBuilder returns a builder of a transferable mosaic owned by OwnerAddress
func NewMosaicBuilder(id uint64) *StateBuilder {
	return newStateBuilder("mosaics", "mosaic", bson.M{
		"id":           Long(id),
		"supply":       Long(8_999_999_998),
		"startHeight":  Long(1),
		"ownerAddress": BinaryHex(OwnerAddress),
		"revision":     int32(1),
		"flags":        int32(2),
		"divisibility": int32(6),
		"duration":     Long(0),
	})
}

// NewNamespaceBuilder returns a builder of the active namespace whose path is levels, the first one being the root
func NewNamespaceBuilder(levels ...uint64) *StateBuilder {
	entry := bson.M{
		"registrationType": int32(types.RootNamespace),
		"depth":            int32(len(levels)),
		"parentId":         Long(0),
		"ownerAddress":     BinaryHex(OwnerAddress),
		"startHeight":      Long(1),
		"endHeight":        Long(1000),
		"alias":            bson.M{"type": int32(types.AliasTypeNone)},
	}
	for i, level := range levels {
		entry[fmt.Sprintf("level%d", i)] = Long(level)
	}
	if len(levels) > 1 {
		entry["registrationType"] = int32(types.ChildNamespace)
		entry["parentId"] = Long(levels[len(levels)-2])
	}

	builder := newStateBuilder("namespaces", "namespace", entry)
	builder.meta = bson.M{"active": true, "index": int32(0)}
	return builder
}

// NewMultisigBuilder returns a builder of a 1 of 1 multisig account cosigned by CosignerAddress
func NewMultisigBuilder(address string) *StateBuilder {
	return newStateBuilder("multisigs", "multisig", bson.M{
		"accountAddress":       BinaryHex(address),
		"minApproval":          int32(1),
		"minRemoval":           int32(1),
		"cosignatoryAddresses": bson.A{BinaryHex(CosignerAddress)},
		"multisigAddresses":    bson.A{},
	})
}

// NewMetadataBuilder returns a builder of a metadata entry set by OwnerAddress on RecipientAddress. targetId is
// ignored by account metadata.
func NewMetadataBuilder(metadataType types.MetadataType, targetId uint64) *StateBuilder {
	return newStateBuilder("metadata", "metadataEntry", bson.M{
		"compositeHash":     Binary(Hash(0x4D)),
		"sourceAddress":     BinaryHex(OwnerAddress),
		"targetAddress":     BinaryHex(RecipientAddress),
		"scopedMetadataKey": Long(0xCF1D0E2B8A9C7F65),
		"targetId":          Long(targetId),
		"metadataType":      int32(metadataType),
		"valueSize":         int32(len(MetadataValue)),
		"value":             Binary([]byte(MetadataValue)),
	})
}
