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
	"context"
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/nemtech/symbol-direct-connect/app/domain/types"
	"github.com/nemtech/symbol-direct-connect/app/interfaces"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultNetwork = types.TestNetwork

	SignerPublicKey   = "2E834140FD66CF87B254A693A2C7862C819217B676D3943267156625E816EC6F"
	CosignerPublicKey = "F1BCE0C08F3D1E5A1E9B2B47F0A7F8E0B77D8B9E3C1D4B5A6978877665544332"
	RecipientAddress  = "9826D27E1D0A26CA4E316F901E23E55C8711DB20DF5C49B5"
	Signature         = "C3B1A5D0E2F4A6B8C0D2E4F6A8B0C2D4E6F8A0B2C4D6E8F0A2B4C6D8E0F2A4B6C3B1A5D0E2F4A6B8C0D2E4F6A8B0C2D4E6F8A0B2C4D6E8F0A2B4C6D8E0F2A4B6"
	CurrencyMosaicId  = uint64(0x6BED913FA20223F8)
	CurrencyNamespace = uint64(0xE74B99BA41F4AFEE)
	DefaultDeadline   = uint64(1_000_000)
	DefaultMaxFee     = uint64(25_000)
	DefaultVersion    = uint8(1)
)

// Binary wraps raw bytes the way the node stores them
func Binary(data []byte) primitive.Binary {
	return primitive.Binary{Data: data}
}

// BinaryHex wraps hex encoded bytes the way the node stores them
func BinaryHex(value string) primitive.Binary {
	data, err := hex.DecodeString(value)
	if err != nil {
		panic(err)
	}
	return Binary(data)
}

// Long stores an unsigned 64-bit value the way the node does, in a signed 64-bit field
func Long(value uint64) int64 {
	return int64(value)
}

// Hash returns a 32-byte hash made of the seed byte
func Hash(seed byte) []byte {
	hash := make([]byte, 32)
	for i := range hash {
		hash[i] = seed
	}
	return hash
}

// HashHex returns Hash(seed) upper-case hex encoded
func HashHex(seed byte) string {
	return strings.ToUpper(hex.EncodeToString(Hash(seed)))
}

// AliasAddress returns the raw unresolved address aliasing the namespace on the default network
func AliasAddress(namespaceId uint64) []byte {
	raw := make([]byte, types.AddressSize)
	raw[0] = byte(DefaultNetwork) | 0x01
	binary.LittleEndian.PutUint64(raw[1:9], namespaceId)
	return raw
}

// Persist inserts the records into the collection
func Persist(dbClient interfaces.DbClient, collection string, records ...bson.M) {
	if len(records) == 0 {
		return
	}

	documents := make([]interface{}, len(records))
	for i, record := range records {
		documents[i] = record
	}

	if _, err := dbClient.GetDb().Collection(collection).InsertMany(context.Background(), documents); err != nil {
		panic(err)
	}
}
