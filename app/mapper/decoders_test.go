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
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/nemtech/symbol-direct-connect/app/domain/types"
	hErrors "github.com/nemtech/symbol-direct-connect/app/errors"
	tdomain "github.com/nemtech/symbol-direct-connect/test/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	linkedPublicKey = "A1B2C3D4E5F60718293A4B5C6D7E8F90A1B2C3D4E5F60718293A4B5C6D7E8F90"
	namespaceId     = uint64(0x85BBEA6CC462B244)
	mosaicId        = uint64(0x0DC67FBE1CAD29E3)
)

func hexOf(seed byte) string {
	return strings.ToUpper(hex.EncodeToString(tdomain.Hash(seed)))
}

func upper(value string) string {
	return strings.ToUpper(value)
}

func hexCode(value int64) string {
	return fmt.Sprintf("0x%X", value)
}

func objectIdHex(builder *tdomain.TransactionBuilder) string {
	return upper(builder.ObjectId().Hex())
}

func addressList() bson.A {
	return bson.A{tdomain.BinaryHex(tdomain.RecipientAddress), tdomain.Binary(tdomain.AliasAddress(namespaceId))}
}

func secretProofBuilder() *tdomain.TransactionBuilder {
	return tdomain.NewTransactionBuilder(types.TransactionTypeSecretProof).
		Field("recipientAddress", tdomain.BinaryHex(tdomain.RecipientAddress)).
		Field("secret", tdomain.Binary(tdomain.Hash(0x33))).
		Field("proof", tdomain.Binary([]byte{0xDE, 0xAD, 0xBE, 0xEF})).
		Field("hashAlgorithm", int32(2))
}

func rootNamespaceBuilder() *tdomain.TransactionBuilder {
	return tdomain.NewTransactionBuilder(types.TransactionTypeNamespaceRegistration).
		Field("registrationType", int32(types.RootNamespace)).
		Field("id", tdomain.Long(namespaceId)).
		Field("name", "symbol").
		Field("duration", tdomain.Long(1000))
}

func keyLinkBuilder(transactionType types.TransactionType) *tdomain.TransactionBuilder {
	return tdomain.NewTransactionBuilder(transactionType).
		Field("linkedPublicKey", tdomain.BinaryHex(linkedPublicKey)).
		Field("linkAction", int32(types.Link))
}

func metadataBuilder(transactionType types.TransactionType) *tdomain.TransactionBuilder {
	return tdomain.NewTransactionBuilder(transactionType).
		Field("targetAddress", tdomain.BinaryHex(tdomain.RecipientAddress)).
		Field("scopedMetadataKey", tdomain.Long(0xFFFFFFFFFFFFFFFF)).
		Field("valueSizeDelta", int32(-2)).
		Field("valueSize", int32(5)).
		Field("value", tdomain.Binary([]byte("hello")))
}

func globalRestrictionBuilder() *tdomain.TransactionBuilder {
	return tdomain.NewTransactionBuilder(types.TransactionTypeMosaicGlobalRestriction).
		Field("mosaicId", tdomain.Long(mosaicId)).
		Field("referenceMosaicId", int64(0)).
		Field("restrictionKey", tdomain.Long(0x1234)).
		Field("newRestrictionValue", int64(10)).
		Field("newRestrictionType", int32(types.MosaicRestrictionGe))
}

func addressRestrictionBuilder() *tdomain.TransactionBuilder {
	return tdomain.NewTransactionBuilder(types.TransactionTypeMosaicAddressRestriction).
		Field("mosaicId", tdomain.Long(mosaicId)).
		Field("restrictionKey", tdomain.Long(0x1234)).
		Field("targetAddress", tdomain.BinaryHex(tdomain.RecipientAddress)).
		Field("newRestrictionValue", int64(10))
}

func allTransactionBuilders() map[types.TransactionType]*tdomain.TransactionBuilder {
	return map[types.TransactionType]*tdomain.TransactionBuilder{
		types.TransactionTypeAccountAddressRestriction: tdomain.NewTransactionBuilder(types.TransactionTypeAccountAddressRestriction).
			Field("restrictionFlags", int32(types.AccountRestrictionAddress)).
			Field("restrictionAdditions", addressList()),
		types.TransactionTypeAccountKeyLink: keyLinkBuilder(types.TransactionTypeAccountKeyLink),
		types.TransactionTypeAccountMetadata: metadataBuilder(types.TransactionTypeAccountMetadata),
		types.TransactionTypeAccountMosaicRestriction: tdomain.NewTransactionBuilder(types.TransactionTypeAccountMosaicRestriction).
			Field("restrictionFlags", int32(types.AccountRestrictionMosaicId)).
			Field("restrictionDeletions", bson.A{tdomain.Long(mosaicId)}),
		types.TransactionTypeAccountOperationRestriction: tdomain.NewTransactionBuilder(types.TransactionTypeAccountOperationRestriction).
			Field("restrictionFlags", int32(types.AccountRestrictionOperation|types.AccountRestrictionOutgoing)).
			Field("restrictionAdditions", bson.A{int32(types.TransactionTypeTransfer)}),
		types.TransactionTypeAddressAlias: tdomain.NewTransactionBuilder(types.TransactionTypeAddressAlias).
			Field("namespaceId", tdomain.Long(namespaceId)).
			Field("address", tdomain.BinaryHex(tdomain.RecipientAddress)).
			Field("aliasAction", int32(types.AliasLink)),
		types.TransactionTypeAggregateBonded: tdomain.NewAggregateBuilder().
			Field("type", int32(types.TransactionTypeAggregateBonded)),
		types.TransactionTypeAggregateComplete: tdomain.NewAggregateBuilder(),
		types.TransactionTypeHashLock: tdomain.NewTransactionBuilder(types.TransactionTypeHashLock).
			Field("mosaicId", tdomain.Long(tdomain.CurrencyMosaicId)).
			Field("amount", tdomain.Long(10_000_000)).
			Field("duration", tdomain.Long(480)).
			Field("hash", tdomain.Binary(tdomain.Hash(0x22))),
		types.TransactionTypeMosaicAddressRestriction: addressRestrictionBuilder(),
		types.TransactionTypeMosaicAlias: tdomain.NewTransactionBuilder(types.TransactionTypeMosaicAlias).
			Field("namespaceId", tdomain.Long(namespaceId)).
			Field("mosaicId", tdomain.Long(mosaicId)).
			Field("aliasAction", int32(types.AliasUnlink)),
		types.TransactionTypeMosaicDefinition: tdomain.NewTransactionBuilder(types.TransactionTypeMosaicDefinition).
			Field("id", tdomain.Long(mosaicId)).
			Field("nonce", int32(-1)).
			Field("flags", int32(0x05)).
			Field("divisibility", int32(6)).
			Field("duration", int64(0)),
		types.TransactionTypeMosaicGlobalRestriction: globalRestrictionBuilder(),
		types.TransactionTypeMosaicMetadata: metadataBuilder(types.TransactionTypeMosaicMetadata).
			Field("targetMosaicId", tdomain.Long(mosaicId)),
		types.TransactionTypeMosaicSupplyChange: tdomain.NewTransactionBuilder(types.TransactionTypeMosaicSupplyChange).
			Field("mosaicId", tdomain.Long(tdomain.CurrencyNamespace)).
			Field("action", int32(types.MosaicSupplyIncrease)).
			Field("delta", tdomain.Long(1_000_000)),
		types.TransactionTypeMultisigAccountModification: tdomain.NewTransactionBuilder(types.TransactionTypeMultisigAccountModification).
			Field("minApprovalDelta", int32(1)).
			Field("minRemovalDelta", int32(-1)).
			Field("addressAdditions", addressList()),
		types.TransactionTypeNamespaceMetadata: metadataBuilder(types.TransactionTypeNamespaceMetadata).
			Field("targetNamespaceId", tdomain.Long(0x1234)),
		types.TransactionTypeNamespaceRegistration: rootNamespaceBuilder(),
		types.TransactionTypeNodeKeyLink:           keyLinkBuilder(types.TransactionTypeNodeKeyLink),
		types.TransactionTypeSecretLock: tdomain.NewTransactionBuilder(types.TransactionTypeSecretLock).
			Field("recipientAddress", tdomain.BinaryHex(tdomain.RecipientAddress)).
			Field("secret", tdomain.Binary(tdomain.Hash(0x33))).
			Field("mosaicId", tdomain.Long(tdomain.CurrencyMosaicId)).
			Field("amount", tdomain.Long(5)).
			Field("duration", tdomain.Long(100)).
			Field("hashAlgorithm", int32(0)),
		types.TransactionTypeSecretProof: secretProofBuilder(),
		types.TransactionTypeTransfer:    tdomain.NewTransferBuilder(1),
		types.TransactionTypeVotingKeyLink: keyLinkBuilder(types.TransactionTypeVotingKeyLink).
			Field("startEpoch", int32(1)).
			Field("endEpoch", int32(26280)),
		types.TransactionTypeVrfKeyLink: keyLinkBuilder(types.TransactionTypeVrfKeyLink),
	}
}

func decode[T types.Transaction](t *testing.T, builder *tdomain.TransactionBuilder) T {
	actual, err := DecodeTransaction(builder.Document())
	require.NoError(t, err)
	require.IsType(t, *new(T), actual)
	return actual.(T)
}

func TestDecodeTransfer(t *testing.T) {
	// given
	payload := append([]byte{0x00}, []byte("hello symbol")...)
	builder := tdomain.NewTransferBuilder(100).Field("message", bson.M{"type": int32(0), "payload": tdomain.Binary(payload)})

	// when
	actual := decode[*types.TransferTransaction](t, builder)

	// then
	recipient, ok := actual.Recipient.(types.Address)
	require.True(t, ok)
	assert.Equal(t, tdomain.RecipientAddress, recipient.Encoded())
	assert.Equal(t, []types.Mosaic{{Amount: 100, Id: types.MosaicId(tdomain.CurrencyMosaicId)}}, actual.Mosaics)
	require.NotNil(t, actual.Message)
	assert.Equal(t, "\x00hello symbol", actual.Message.Text)
	assert.Equal(t, upper(hex.EncodeToString(payload)), actual.Message.Payload)
}

func TestDecodeTransferMessageRoundTrip(t *testing.T) {
	payloads := []string{"68656C6C6F", "E38193E38293E381ABE381A1E381AF", "00", "FFFE"}

	for _, payload := range payloads {
		t.Run(payload, func(t *testing.T) {
			builder := tdomain.NewTransferBuilder(1).Field("message", tdomain.BinaryHex(payload))

			actual := decode[*types.TransferTransaction](t, builder)

			require.NotNil(t, actual.Message)
			assert.Equal(t, payload, actual.Message.Payload)
		})
	}
}

func TestDecodeTransferWithoutMosaicsAndMessage(t *testing.T) {
	builder := tdomain.NewTransferBuilder(1).Without("mosaics").
		Field("recipientAddress", tdomain.Binary(tdomain.AliasAddress(namespaceId)))

	actual := decode[*types.TransferTransaction](t, builder)

	assert.NotNil(t, actual.Mosaics)
	assert.Empty(t, actual.Mosaics)
	assert.Nil(t, actual.Message)
	assert.Equal(t, types.NamespaceId(namespaceId), actual.Recipient)
}

func TestDecodeTransferAliasedMosaic(t *testing.T) {
	builder := tdomain.NewTransferBuilder(1).
		Field("mosaics", bson.A{bson.M{"id": tdomain.Long(tdomain.CurrencyNamespace), "amount": int64(1)}})

	actual := decode[*types.TransferTransaction](t, builder)

	assert.Equal(t, types.NamespaceId(tdomain.CurrencyNamespace), actual.Mosaics[0].Id)
}

func TestDecodeNamespaceRegistration(t *testing.T) {
	root := decode[*types.NamespaceRegistrationTransaction](t, rootNamespaceBuilder())
	assert.Equal(t, types.RootNamespace, root.RegistrationType)
	assert.Equal(t, uint64(1000), root.Duration)
	assert.Equal(t, types.NamespaceId(namespaceId), root.Id)
	assert.Equal(t, "symbol", root.Name)
	assert.Zero(t, root.ParentId)

	child := decode[*types.NamespaceRegistrationTransaction](t, rootNamespaceBuilder().
		Field("registrationType", int32(types.ChildNamespace)).
		Field("name", tdomain.Binary([]byte("xym"))).
		Field("parentId", tdomain.Long(0x1111)).
		Without("duration"))
	assert.Equal(t, types.ChildNamespace, child.RegistrationType)
	assert.Equal(t, types.NamespaceId(0x1111), child.ParentId)
	assert.Equal(t, "xym", child.Name)
	assert.Zero(t, child.Duration)
}

func TestDecodeMosaicDefinition(t *testing.T) {
	builders := allTransactionBuilders()

	actual := decode[*types.MosaicDefinitionTransaction](t, builders[types.TransactionTypeMosaicDefinition])

	assert.Equal(t, types.MosaicId(mosaicId), actual.MosaicId)
	assert.Equal(t, uint32(0xFFFFFFFF), actual.Nonce)
	assert.Equal(t, types.MosaicFlags{Restrictable: true, SupplyMutable: true}, actual.Flags)
	assert.Equal(t, uint8(6), actual.Divisibility)
	assert.Zero(t, actual.Duration)
}

func TestDecodeMosaicSupplyChange(t *testing.T) {
	builders := allTransactionBuilders()

	actual := decode[*types.MosaicSupplyChangeTransaction](t, builders[types.TransactionTypeMosaicSupplyChange])

	assert.Equal(t, types.MosaicSupplyIncrease, actual.Action)
	assert.Equal(t, uint64(1_000_000), actual.Delta)
	assert.Equal(t, types.NamespaceId(tdomain.CurrencyNamespace), actual.MosaicId)
}

func TestDecodeMultisigAccountModification(t *testing.T) {
	// given
	builder := allTransactionBuilders()[types.TransactionTypeMultisigAccountModification].
		Field("minApprovalDelta", int32(0xFF)).
		Field("addressDeletions", bson.A{tdomain.Binary(tdomain.AliasAddress(1))})

	// when
	actual := decode[*types.MultisigAccountModificationTransaction](t, builder)

	// then
	assert.Equal(t, int8(-1), actual.MinApprovalDelta)
	assert.Equal(t, int8(-1), actual.MinRemovalDelta)
	require.Len(t, actual.AddressAdditions, 2)
	assert.Equal(t, tdomain.RecipientAddress, actual.AddressAdditions[0].(types.Address).Encoded())
	assert.Equal(t, types.NamespaceId(namespaceId), actual.AddressAdditions[1])
	assert.Equal(t, []types.UnresolvedAddress{types.NamespaceId(1)}, actual.AddressDeletions)
}

func TestDecodeLocks(t *testing.T) {
	builders := allTransactionBuilders()

	hashLock := decode[*types.HashLockTransaction](t, builders[types.TransactionTypeHashLock])
	assert.Equal(t, hexOf(0x22), hashLock.Hash)
	assert.Equal(t, uint64(480), hashLock.Duration)
	assert.Equal(t, types.Mosaic{Amount: 10_000_000, Id: types.MosaicId(tdomain.CurrencyMosaicId)}, hashLock.Mosaic)

	secretLock := decode[*types.SecretLockTransaction](t, builders[types.TransactionTypeSecretLock])
	assert.Equal(t, types.LockHashSha3_256, secretLock.HashAlgorithm)
	assert.Equal(t, hexOf(0x33), secretLock.Secret)
	assert.Equal(t, uint64(100), secretLock.Duration)

	secretProof := decode[*types.SecretProofTransaction](t, secretProofBuilder())
	assert.Equal(t, types.LockHashHash256, secretProof.HashAlgorithm)
	assert.Equal(t, "DEADBEEF", secretProof.Proof)
	assert.Equal(t, hexOf(0x33), secretProof.Secret)
}

func TestDecodeHashAlgorithm(t *testing.T) {
	tests := []struct {
		name     string
		code     int32
		packed   bool
		expected types.LockHashAlgorithm
	}{
		{name: "sha3", code: 0, expected: types.LockHashSha3_256},
		{name: "hash160", code: 1, expected: types.LockHashHash160},
		{name: "hash256", code: 2, expected: types.LockHashHash256},
		{name: "legacy sha3", code: 0, packed: true, expected: types.LockHashSha3_256},
		{name: "legacy keccak", code: 1, packed: true, expected: types.LockHashKeccak256},
		{name: "legacy hash160", code: 2, packed: true, expected: types.LockHashHash160},
		{name: "legacy hash256", code: 3, packed: true, expected: types.LockHashHash256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// given
			builder := secretProofBuilder().Field("hashAlgorithm", tt.code)
			if tt.packed {
				builder.PackedVersion(0x9801)
			}

			// when
			actual := decode[*types.SecretProofTransaction](t, builder)

			// then
			assert.Equal(t, tt.expected, actual.HashAlgorithm)
		})
	}
}

func TestDecodeHashAlgorithmUnknownCode(t *testing.T) {
	for _, builder := range []*tdomain.TransactionBuilder{
		secretProofBuilder().Field("hashAlgorithm", int32(3)),
		secretProofBuilder().Field("hashAlgorithm", int32(4)).PackedVersion(0x9801),
	} {
		actual, err := DecodeTransaction(builder.Document())

		assert.Nil(t, actual)
		assert.True(t, hErrors.IsMalformed(err))
	}
}

func TestLockHashAlgorithmString(t *testing.T) {
	assert.Equal(t, "KECCAK_256", types.LockHashKeccak256.String())
	assert.Equal(t, "LockHashAlgorithm(9)", types.LockHashAlgorithm(9).String())
}

func TestDecodeAliases(t *testing.T) {
	builders := allTransactionBuilders()

	addressAlias := decode[*types.AddressAliasTransaction](t, builders[types.TransactionTypeAddressAlias])
	assert.Equal(t, types.AliasLink, addressAlias.Action)
	assert.Equal(t, tdomain.RecipientAddress, addressAlias.Address.Encoded())
	assert.Equal(t, types.NamespaceId(namespaceId), addressAlias.NamespaceId)

	mosaicAlias := decode[*types.MosaicAliasTransaction](t, builders[types.TransactionTypeMosaicAlias])
	assert.Equal(t, types.AliasUnlink, mosaicAlias.Action)
	assert.Equal(t, types.MosaicId(mosaicId), mosaicAlias.MosaicId)

	_, err := DecodeTransaction(builders[types.TransactionTypeMosaicAlias].Field("aliasAction", int32(2)).Document())
	assert.Error(t, err)
}

func TestDecodeAccountRestrictions(t *testing.T) {
	builders := allTransactionBuilders()

	addressRestriction := decode[*types.AccountAddressRestrictionTransaction](
		t,
		builders[types.TransactionTypeAccountAddressRestriction],
	)
	assert.Equal(t, types.AccountRestrictionAddress, addressRestriction.Flags)
	assert.Len(t, addressRestriction.Additions, 2)
	assert.Empty(t, addressRestriction.Deletions)

	mosaicRestriction := decode[*types.AccountMosaicRestrictionTransaction](
		t,
		builders[types.TransactionTypeAccountMosaicRestriction],
	)
	assert.Empty(t, mosaicRestriction.Additions)
	assert.Equal(t, []types.UnresolvedMosaicId{types.MosaicId(mosaicId)}, mosaicRestriction.Deletions)

	operationRestriction := decode[*types.AccountOperationRestrictionTransaction](
		t,
		builders[types.TransactionTypeAccountOperationRestriction].
			Field("restrictionDeletions", bson.A{"5441", "4E41"}),
	)
	assert.True(t, operationRestriction.Flags.IsOutgoing())
	assert.False(t, operationRestriction.Flags.IsBlocking())
	assert.Equal(t, []types.TransactionType{types.TransactionTypeTransfer}, operationRestriction.Additions)
	assert.Equal(
		t,
		[]types.TransactionType{types.TransactionTypeTransfer, types.TransactionTypeNamespaceRegistration},
		operationRestriction.Deletions,
	)
}

func TestDecodeMosaicGlobalRestrictionPreviousValue(t *testing.T) {
	tests := []struct {
		name                 string
		builder              *tdomain.TransactionBuilder
		expectedPreviousType types.MosaicRestrictionType
		expectedPrevious     types.OptionalRestrictionValue
	}{
		{
			name:                 "first restriction",
			builder:              globalRestrictionBuilder(),
			expectedPreviousType: types.MosaicRestrictionNone,
			expectedPrevious:     types.NoRestrictionValue,
		},
		{
			name: "previous type none",
			builder: globalRestrictionBuilder().
				Field("previousRestrictionType", int32(types.MosaicRestrictionNone)).
				Field("previousRestrictionValue", int64(0)),
			expectedPreviousType: types.MosaicRestrictionNone,
			expectedPrevious:     types.NoRestrictionValue,
		},
		{
			name: "previous value zero",
			builder: globalRestrictionBuilder().
				Field("previousRestrictionType", int32(types.MosaicRestrictionEq)).
				Field("previousRestrictionValue", int64(0)),
			expectedPreviousType: types.MosaicRestrictionEq,
			expectedPrevious:     types.SomeRestrictionValue(0),
		},
		{
			name: "previous value",
			builder: globalRestrictionBuilder().
				Field("previousRestrictionType", int32(types.MosaicRestrictionLt)).
				Field("previousRestrictionValue", int64(7)),
			expectedPreviousType: types.MosaicRestrictionLt,
			expectedPrevious:     types.SomeRestrictionValue(7),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := decode[*types.MosaicGlobalRestrictionTransaction](t, tt.builder)

			assert.Equal(t, tt.expectedPreviousType, actual.PreviousRestrictionType)
			assert.Equal(t, tt.expectedPrevious, actual.PreviousRestrictionValue)
			assert.Equal(t, types.MosaicRestrictionGe, actual.NewRestrictionType)
			assert.Equal(t, uint64(10), actual.NewRestrictionValue)
			assert.Equal(t, types.MosaicId(0), actual.ReferenceMosaicId)
			assert.Equal(t, uint64(0x1234), actual.RestrictionKey)
		})
	}
}

func TestDecodeMosaicGlobalRestrictionHalfPreviousPair(t *testing.T) {
	tests := []struct {
		name          string
		builder       *tdomain.TransactionBuilder
		expectedField string
	}{
		{
			name:          "value without type",
			builder:       globalRestrictionBuilder().Field("previousRestrictionValue", int64(7)),
			expectedField: "transaction.previousRestrictionType",
		},
		{
			name:          "type without value",
			builder:       globalRestrictionBuilder().Field("previousRestrictionType", int32(types.MosaicRestrictionLt)),
			expectedField: "transaction.previousRestrictionValue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := DecodeTransaction(tt.builder.Document())

			assert.Nil(t, actual)
			var malformed *hErrors.MalformedTransactionError
			require.True(t, errors.As(err, &malformed), "%v", err)
			assert.Equal(t, int(types.TransactionTypeMosaicGlobalRestriction), malformed.Type)
			assert.Equal(t, tt.expectedField, malformed.Field)
		})
	}
}

func TestDecodeMosaicAddressRestrictionPreviousValue(t *testing.T) {
	tests := []struct {
		name             string
		builder          *tdomain.TransactionBuilder
		expectedPrevious types.OptionalRestrictionValue
	}{
		{"absent", addressRestrictionBuilder(), types.NoRestrictionValue},
		{
			"unset sentinel",
			addressRestrictionBuilder().Field("previousRestrictionValue", int64(-1)),
			types.NoRestrictionValue,
		},
		{"zero", addressRestrictionBuilder().Field("previousRestrictionValue", int64(0)), types.SomeRestrictionValue(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := decode[*types.MosaicAddressRestrictionTransaction](t, tt.builder)

			assert.Equal(t, tt.expectedPrevious, actual.PreviousRestrictionValue)
			assert.Equal(t, tdomain.RecipientAddress, actual.TargetAddress.(types.Address).Encoded())
		})
	}
}

func TestDecodeMetadata(t *testing.T) {
	builders := allTransactionBuilders()

	account := decode[*types.AccountMetadataTransaction](t, builders[types.TransactionTypeAccountMetadata])
	assert.Nil(t, account.TargetId)
	assert.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), account.ScopedMetadataKey)
	assert.Equal(t, int16(-2), account.ValueSizeDelta)
	assert.Equal(t, uint16(5), account.ValueSize)
	assert.Equal(t, "hello", account.Value)

	mosaic := decode[*types.MosaicMetadataTransaction](t, builders[types.TransactionTypeMosaicMetadata])
	assert.Equal(t, types.MosaicId(mosaicId), mosaic.TargetId)

	namespace := decode[*types.NamespaceMetadataTransaction](t, builders[types.TransactionTypeNamespaceMetadata])
	assert.Equal(t, types.NamespaceId(0x1234), namespace.TargetId)
}

func TestDecodeKeyLinks(t *testing.T) {
	builders := allTransactionBuilders()

	accountKeyLink := decode[*types.AccountKeyLinkTransaction](t, builders[types.TransactionTypeAccountKeyLink])
	assert.Equal(t, linkedPublicKey, accountKeyLink.LinkedPublicKey)
	assert.Equal(t, types.Link, accountKeyLink.Action)

	nodeKeyLink := decode[*types.NodeKeyLinkTransaction](
		t,
		builders[types.TransactionTypeNodeKeyLink].Field("linkAction", int32(types.Unlink)),
	)
	assert.Equal(t, types.Unlink, nodeKeyLink.Action)

	vrfKeyLink := decode[*types.VrfKeyLinkTransaction](t, builders[types.TransactionTypeVrfKeyLink])
	assert.Equal(t, linkedPublicKey, vrfKeyLink.LinkedPublicKey)

	votingKeyLink := decode[*types.VotingKeyLinkTransaction](t, builders[types.TransactionTypeVotingKeyLink])
	assert.Equal(t, uint32(1), votingKeyLink.StartEpoch)
	assert.Equal(t, uint32(26280), votingKeyLink.EndEpoch)

	legacy := decode[*types.VotingKeyLinkTransaction](t, keyLinkBuilder(types.TransactionTypeVotingKeyLink).
		Field("startPoint", int64(3)).
		Field("endPoint", int64(9)))
	assert.Equal(t, uint32(3), legacy.StartEpoch)
	assert.Equal(t, uint32(9), legacy.EndEpoch)
}
