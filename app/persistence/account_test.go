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

	"github.com/nemtech/symbol-direct-connect/app/domain/types"
	hErrors "github.com/nemtech/symbol-direct-connect/app/errors"
	tdomain "github.com/nemtech/symbol-direct-connect/test/domain"
	"github.com/nemtech/symbol-direct-connect/test/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addressOf(t *testing.T, encoded string) types.Address {
	address, err := types.NewAddressFromEncoded(encoded)
	require.NoError(t, err)
	return address
}

func TestAccountFindByAddress(t *testing.T) {
	// given
	store := &mocks.MockDocumentStore{}
	address := addressOf(t, tdomain.RecipientAddress)
	store.On("FindOne", accountsCollection, accountAddressKey, tdomain.BinaryHex(tdomain.RecipientAddress), noTimeout).
		Return(tdomain.NewAccountBuilder(tdomain.RecipientAddress).Document(), nil)

	// when
	actual, err := NewAccountRepository(store).FindByAddress(defaultContext, address)

	// then
	require.NoError(t, err)
	assert.Equal(t, address, actual.Address)
	assert.Equal(t, tdomain.SignerPublicKey, actual.PublicKey)
	store.AssertExpectations(t)
}

func TestAccountFindByAddressNotFound(t *testing.T) {
	// given
	store := &mocks.MockDocumentStore{}
	store.On("FindOne", accountsCollection, accountAddressKey, tdomain.BinaryHex(tdomain.OwnerAddress), noTimeout).
		Return(notFoundRecord, hErrors.ErrRecordNotFound)

	// when
	actual, err := NewAccountRepository(store).FindByAddress(defaultContext, addressOf(t, tdomain.OwnerAddress))

	// then
	assert.Nil(t, actual)
	assert.True(t, errors.Is(err, hErrors.ErrRecordNotFound))
}

func TestAccountFindByAddressMalformed(t *testing.T) {
	// given
	store := &mocks.MockDocumentStore{}
	record := tdomain.NewAccountBuilder(tdomain.RecipientAddress).Without("publicKeyHeight").Document()
	store.On("FindOne", accountsCollection, accountAddressKey, tdomain.BinaryHex(tdomain.RecipientAddress), noTimeout).
		Return(record, nil)

	// when
	actual, err := NewAccountRepository(store).FindByAddress(defaultContext, addressOf(t, tdomain.RecipientAddress))

	// then
	assert.Nil(t, actual)
	assert.True(t, hErrors.IsMalformed(err))
}

func TestMultisigFindByAddress(t *testing.T) {
	// given
	store := &mocks.MockDocumentStore{}
	address := addressOf(t, tdomain.RecipientAddress)
	store.On("FindOne", multisigsCollection, multisigAddressKey, tdomain.BinaryHex(tdomain.RecipientAddress), noTimeout).
		Return(tdomain.NewMultisigBuilder(tdomain.RecipientAddress).Document(), nil)

	// when
	actual, err := NewMultisigRepository(store).FindByAddress(defaultContext, address)

	// then
	require.NoError(t, err)
	assert.Equal(t, address, actual.AccountAddress)
	assert.Equal(t, []types.Address{addressOf(t, tdomain.CosignerAddress)}, actual.Cosignatories)
	store.AssertExpectations(t)
}

func TestMultisigFindByAddressNotFound(t *testing.T) {
	// given
	store := &mocks.MockDocumentStore{}
	store.On("FindOne", multisigsCollection, multisigAddressKey, tdomain.BinaryHex(tdomain.OwnerAddress), noTimeout).
		Return(notFoundRecord, hErrors.ErrRecordNotFound)

	// when
	actual, err := NewMultisigRepository(store).FindByAddress(defaultContext, addressOf(t, tdomain.OwnerAddress))

	// then
	assert.Nil(t, actual)
	assert.True(t, hErrors.IsNotFound(err))
}
