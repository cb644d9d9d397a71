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

package mapper

import (
	"testing"

	"github.com/nemtech/symbol-direct-connect/app/document"
	"github.com/nemtech/symbol-direct-connect/app/domain/types"
	hErrors "github.com/nemtech/symbol-direct-connect/app/errors"
	tdomain "github.com/nemtech/symbol-direct-connect/test/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestDecodeBlockInfo(t *testing.T) {
	// given
	leaves := [][]byte{tdomain.Hash(0x21), tdomain.Hash(0x22)}
	tree := append(append([][]byte{}, leaves...), tdomain.Hash(0x23))
	builder := tdomain.NewBlockBuilder(100).FeeMultiplier(25).TransactionTree(leaves, tree)

	// when
	actual, err := DecodeBlockInfo(builder.Document())

	// then
	require.NoError(t, err)
	assert.Equal(t, uint64(100), actual.Height)
	assert.Equal(t, hexOf(100), actual.Hash)
	assert.Equal(t, hexOf(0x05), actual.GenerationHash)
	assert.Equal(t, hexOf(0x01), actual.PreviousBlockHash)
	assert.Equal(t, types.NormalBlock, actual.Type)
	assert.Equal(t, tdomain.DefaultNetwork, actual.Network)
	assert.Equal(t, uint8(1), actual.Version)
	assert.Equal(t, uint32(25), actual.FeeMultiplier)
	assert.Equal(t, uint64(1_500_000), actual.Timestamp)
	assert.Equal(t, uint32(372), actual.Size)
	assert.Equal(t, tdomain.SignerPublicKey, actual.Signer.PublicKey)
	assert.Equal(t, tdomain.RecipientAddress, actual.Beneficiary.Encoded())
	assert.Equal(t, uint32(2), actual.NumTransactions)
	assert.Equal(t, []string{hexOf(0x21), hexOf(0x22), hexOf(0x23)}, actual.TransactionMerkleTree)
	assert.Equal(t, []string{hexOf(0x21), hexOf(0x22)}, actual.TransactionLeaves())
	assert.Empty(t, actual.StatementLeaves())
	assert.Empty(t, actual.ProofGamma)
}

func TestDecodeBlockInfoMissingHeader(t *testing.T) {
	record := tdomain.NewBlockBuilder(1).Record()
	delete(record["block"].(bson.M), "stateHash")

	_, err := DecodeBlockInfo(document.New(record))

	var fieldErr *hErrors.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "block.stateHash", fieldErr.Field)
}

func TestDecodeFailedTransactionStatus(t *testing.T) {
	// given
	record := bson.M{
		"status": bson.M{
			"hash":     tdomain.Binary(tdomain.Hash(0x99)),
			"code":     int32(-2143092733),
			"deadline": int64(12345),
		},
	}

	// when
	actual, err := DecodeFailedTransactionStatus(document.New(record))

	// then
	require.NoError(t, err)
	assert.Equal(t, &types.TransactionStatus{
		Code:     "0x80430003",
		Deadline: 12345,
		Group:    types.TransactionGroupFailed,
		Hash:     hexOf(0x99),
	}, actual)
}

func TestNewTransactionStatus(t *testing.T) {
	transaction, err := DecodeTransaction(tdomain.NewTransferBuilder(1).Confirmed(9, 0).Hash(tdomain.Hash(0x31)).Document())
	require.NoError(t, err)

	actual := NewTransactionStatus(transaction, hexOf(0x31), types.TransactionGroupConfirmed)

	assert.Equal(t, &types.TransactionStatus{
		Code:     "Success",
		Deadline: types.Deadline(tdomain.DefaultDeadline),
		Group:    types.TransactionGroupConfirmed,
		Hash:     hexOf(0x31),
		Height:   9,
	}, actual)
}

func TestFormatStatusCode(t *testing.T) {
	assert.Equal(t, "Success", FormatStatusCode(0))
	assert.Equal(t, "0x80530008", FormatStatusCode(0x80530008))
}
