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
	"context"

	"github.com/nemtech/symbol-direct-connect/app/domain/types"
	"github.com/nemtech/symbol-direct-connect/app/interfaces"
	"github.com/nemtech/symbol-direct-connect/app/mapper"
)

const (
	accountAddressKey  = "account.address"
	multisigAddressKey = "multisig.accountAddress"
)

// accountRepository struct that has connection to the document store
type accountRepository struct {
	store interfaces.DocumentStore
}

// NewAccountRepository creates an instance of an accountRepository struct
func NewAccountRepository(store interfaces.DocumentStore) interfaces.AccountRepository {
	return &accountRepository{store: store}
}

func (ar *accountRepository) FindByAddress(ctx context.Context, address types.Address) (*types.AccountInfo, error) {
	record, err := ar.store.FindOne(ctx, accountsCollection, accountAddressKey, binaryOf(address.Bytes()), 0)
	if err != nil {
		return nil, err
	}

	return mapper.DecodeAccountInfo(record)
}

// multisigRepository struct that has connection to the document store
type multisigRepository struct {
	store interfaces.DocumentStore
}

// NewMultisigRepository creates an instance of a multisigRepository struct
func NewMultisigRepository(store interfaces.DocumentStore) interfaces.MultisigRepository {
	return &multisigRepository{store: store}
}

func (mr *multisigRepository) FindByAddress(
	ctx context.Context,
	address types.Address,
) (*types.MultisigAccountInfo, error) {
	record, err := mr.store.FindOne(ctx, multisigsCollection, multisigAddressKey, binaryOf(address.Bytes()), 0)
	if err != nil {
		return nil, err
	}

	return mapper.DecodeMultisigAccountInfo(record)
}
