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

package document

import (
	"testing"

	hErrors "github.com/nemtech/symbol-direct-connect/app/errors"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	objectId = primitive.ObjectID{0x5e, 0x0f, 0x10, 0x2a, 0x3b, 0x4c, 0x5d, 0x6e, 0x7f, 0x80, 0x91, 0xa2}
	record   = New(bson.M{
		"_id": objectId,
		"meta": bson.M{
			"height": int64(12),
			"hash":   primitive.Binary{Data: []byte{0xab, 0xcd, 0x01}},
		},
		"transaction": bson.M{
			"type":     int32(16724),
			"deadline": int64(-1),
			"index":    int32(-2),
			"delta":    int32(-3),
			"flags":    int32(200),
			"mosaics": bson.A{
				bson.M{"id": int64(1), "amount": int64(10)},
				bson.M{"id": int64(2), "amount": "bad"},
			},
			"keys":    bson.A{primitive.Binary{Data: []byte{0x01}}, "0a0b"},
			"nested":  bson.D{{Key: "value", Value: true}},
			"name":    "symbol",
			"nothing": nil,
		},
	})
)

func TestDocumentScalars(t *testing.T) {
	transaction, err := record.Document("transaction")
	require.NoError(t, err)
	assert.Equal(t, "transaction", transaction.Path())

	kind, err := transaction.Uint16("type")
	assert.NoError(t, err)
	assert.Equal(t, uint16(16724), kind)

	deadline, err := transaction.Uint64("deadline")
	assert.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), deadline)

	index, err := transaction.Uint32("index")
	assert.NoError(t, err)
	assert.Equal(t, uint32(4294967294), index)

	delta, err := transaction.Int8("delta")
	assert.NoError(t, err)
	assert.Equal(t, int8(-3), delta)

	flags, err := transaction.Int8("flags")
	assert.NoError(t, err)
	assert.Equal(t, int8(-56), flags)

	name, err := transaction.String("name")
	assert.NoError(t, err)
	assert.Equal(t, "symbol", name)

	nested, err := transaction.Bool("nested.value")
	assert.NoError(t, err)
	assert.True(t, nested)
}

func TestDocumentDottedPaths(t *testing.T) {
	height, err := record.Uint64("meta.height")
	assert.NoError(t, err)
	assert.Equal(t, uint64(12), height)

	hash, err := record.Hex("meta.hash")
	assert.NoError(t, err)
	assert.Equal(t, "ABCD01", hash)

	amount, err := record.Uint64("transaction.mosaics.0.amount")
	assert.NoError(t, err)
	assert.Equal(t, uint64(10), amount)

	id, err := record.ObjectIdHex("_id")
	assert.NoError(t, err)
	assert.Equal(t, "5E0F102A3B4C5D6E7F8091A2", id)

	assert.True(t, record.Has("transaction.mosaics.1"))
	assert.False(t, record.Has("transaction.mosaics.2"))
	assert.False(t, record.Has("transaction.nothing"))
}

func TestDocumentArrays(t *testing.T) {
	transaction, _ := record.Document("transaction")

	mosaics, err := transaction.Documents("mosaics")
	require.NoError(t, err)
	require.Len(t, mosaics, 2)
	assert.Equal(t, "transaction.mosaics.1", mosaics[1].Path())

	keys, err := transaction.HexArray("keys")
	assert.NoError(t, err)
	assert.Equal(t, []string{"01", "0A0B"}, keys)

	absent, err := transaction.Documents("cosignatures")
	assert.NoError(t, err)
	assert.Empty(t, absent)

	_, err = transaction.Array("cosignatures")
	assert.Error(t, err)
}

func TestDocumentFieldErrors(t *testing.T) {
	transaction, _ := record.Document("transaction")
	mosaics, _ := transaction.Documents("mosaics")

	tests := []struct {
		name          string
		run           func() error
		expectedField string
	}{
		{
			name:          "missing nested field",
			run:           func() error { _, err := record.Uint64("meta.index"); return err },
			expectedField: "meta.index",
		},
		{
			name:          "wrong type in array element",
			run:           func() error { _, err := mosaics[1].Uint64("amount"); return err },
			expectedField: "transaction.mosaics.1.amount",
		},
		{
			name:          "out of range byte",
			run:           func() error { _, err := transaction.Uint8("type"); return err },
			expectedField: "transaction.type",
		},
		{
			name:          "null field",
			run:           func() error { _, err := transaction.String("nothing"); return err },
			expectedField: "transaction.nothing",
		},
		{
			name:          "not a document",
			run:           func() error { _, err := transaction.Document("name"); return err },
			expectedField: "transaction.name",
		},
		{
			name:          "invalid hex",
			run:           func() error { _, err := transaction.Hex("name"); return err },
			expectedField: "transaction.name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()

			var fieldErr *hErrors.FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, tt.expectedField, fieldErr.Field)
		})
	}
}

func TestOptionalHex(t *testing.T) {
	value, present, err := record.OptionalHex("meta.merkleComponentHash")
	assert.NoError(t, err)
	assert.False(t, present)
	assert.Empty(t, value)

	value, present, err = record.OptionalHex("meta.hash")
	assert.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, "ABCD01", value)
}

func TestFromRaw(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"statement": bson.M{"height": int64(5)}})
	require.NoError(t, err)

	actual, err := FromRaw(raw)

	require.NoError(t, err)
	height, err := actual.Uint64("statement.height")
	assert.NoError(t, err)
	assert.Equal(t, uint64(5), height)
}
