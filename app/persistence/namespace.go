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
	"fmt"

	"github.com/nemtech/symbol-direct-connect/app/domain/types"
	hErrors "github.com/nemtech/symbol-direct-connect/app/errors"
	"github.com/nemtech/symbol-direct-connect/app/interfaces"
	"github.com/nemtech/symbol-direct-connect/app/mapper"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

const namespaceLevels = 3

// namespaceRepository struct that has connection to the document store
type namespaceRepository struct {
	store interfaces.DocumentStore
}

// NewNamespaceRepository creates an instance of a namespaceRepository struct
func NewNamespaceRepository(store interfaces.DocumentStore) interfaces.NamespaceRepository {
	return &namespaceRepository{store: store}
}

func (nr *namespaceRepository) FindById(ctx context.Context, id types.NamespaceId) (*types.NamespaceInfo, error) {
	records, err := nr.store.Find(ctx, namespacesCollection, namespaceIdFilter(id), 0)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, errors.Wrapf(hErrors.ErrRecordNotFound, "namespace %s", id)
	}

	var found *types.NamespaceInfo
	for _, record := range records {
		namespace, err := mapper.DecodeNamespaceInfo(record)
		if err != nil {
			return nil, err
		}

		if namespace.Active {
			return namespace, nil
		}
		if found == nil {
			found = namespace
		}
	}

	return found, nil
}

func (nr *namespaceRepository) FindLinkedMosaicId(ctx context.Context, id types.NamespaceId) (types.MosaicId, error) {
	namespace, err := nr.FindById(ctx, id)
	if err != nil {
		return 0, err
	}

	if namespace.Alias.Type != types.AliasTypeMosaic {
		return 0, errors.Wrapf(hErrors.ErrRecordNotFound, "namespace %s has no mosaic alias", id)
	}
	return namespace.Alias.MosaicId, nil
}

func (nr *namespaceRepository) FindLinkedAddress(ctx context.Context, id types.NamespaceId) (types.Address, error) {
	namespace, err := nr.FindById(ctx, id)
	if err != nil {
		return types.Address{}, err
	}

	if namespace.Alias.Type != types.AliasTypeAddress {
		return types.Address{}, errors.Wrapf(hErrors.ErrRecordNotFound, "namespace %s has no address alias", id)
	}
	return namespace.Alias.Address, nil
}

// namespaceIdFilter matches the records whose deepest level is the namespace
func namespaceIdFilter(id types.NamespaceId) bson.M {
	alternatives := make(bson.A, 0, namespaceLevels)
	for level := 0; level < namespaceLevels; level++ {
		alternatives = append(alternatives, bson.M{
			fmt.Sprintf("namespace.level%d", level): storedId(uint64(id)),
			"namespace.depth":                       int32(level + 1),
		})
	}
	return bson.M{"$or": alternatives}
}
