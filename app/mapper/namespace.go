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
	"github.com/nemtech/symbol-direct-connect/app/document"
	"github.com/nemtech/symbol-direct-connect/app/domain/types"
)

func decodeNamespaceRegistration(
	abstract types.AbstractTransaction,
	body document.Document,
) (*types.NamespaceRegistrationTransaction, error) {
	registrationType, err := decodeEnum(body, "registrationType", uint8(types.ChildNamespace))
	if err != nil {
		return nil, err
	}

	id, err := decodeNamespaceId(body, "id")
	if err != nil {
		return nil, err
	}

	name, err := decodeName(body, "name")
	if err != nil {
		return nil, err
	}

	transaction := &types.NamespaceRegistrationTransaction{
		AbstractTransaction: abstract,
		Id:                  id,
		Name:                name,
		RegistrationType:    types.NamespaceRegistrationType(registrationType),
	}

	if transaction.RegistrationType == types.RootNamespace {
		if transaction.Duration, err = body.Uint64("duration"); err != nil {
			return nil, err
		}
	} else if transaction.ParentId, err = decodeNamespaceId(body, "parentId"); err != nil {
		return nil, err
	}

	return transaction, nil
}

// decodeName reads a namespace name stored either as a string or as binary text
func decodeName(body document.Document, key string) (string, error) {
	value, err := body.Value(key)
	if err != nil {
		return "", err
	}

	if name, ok := value.(string); ok {
		return name, nil
	}
	return decodeText(body, key)
}

func decodeAddressAlias(abstract types.AbstractTransaction, body document.Document) (*types.AddressAliasTransaction, error) {
	namespaceId, err := decodeNamespaceId(body, "namespaceId")
	if err != nil {
		return nil, err
	}

	address, err := decodeAddress(body, "address")
	if err != nil {
		return nil, err
	}

	action, err := decodeEnum(body, "aliasAction", uint8(types.AliasLink))
	if err != nil {
		return nil, err
	}

	return &types.AddressAliasTransaction{
		AbstractTransaction: abstract,
		Action:              types.AliasAction(action),
		Address:             address,
		NamespaceId:         namespaceId,
	}, nil
}
