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
	hErrors "github.com/nemtech/symbol-direct-connect/app/errors"
	"github.com/nemtech/symbol-direct-connect/app/interfaces"
	"github.com/nemtech/symbol-direct-connect/app/mapper"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	metadataKeyKey           = "metadataEntry.scopedMetadataKey"
	metadataSourceAddressKey = "metadataEntry.sourceAddress"
	metadataTargetAddressKey = "metadataEntry.targetAddress"
	metadataTargetIdKey      = "metadataEntry.targetId"
	metadataTypeKey          = "metadataEntry.metadataType"
)

// metadataRepository struct that has connection to the document store
type metadataRepository struct {
	store interfaces.DocumentStore
}

// NewMetadataRepository creates an instance of a metadataRepository struct
func NewMetadataRepository(store interfaces.DocumentStore) interfaces.MetadataRepository {
	return &metadataRepository{store: store}
}

func (mr *metadataRepository) Find(
	ctx context.Context,
	criteria types.MetadataCriteria,
) ([]*types.MetadataEntry, error) {
	filter, err := metadataFilter(criteria)
	if err != nil {
		return nil, err
	}

	records, err := mr.store.Find(ctx, metadataCollection, filter, 0)
	if err != nil {
		return nil, err
	}

	entries := make([]*types.MetadataEntry, 0, len(records))
	for _, record := range records {
		entry, err := mapper.DecodeMetadataEntry(record)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (mr *metadataRepository) FindEntry(
	ctx context.Context,
	criteria types.MetadataCriteria,
) (*types.MetadataEntry, error) {
	entries, err := mr.Find(ctx, criteria)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, errors.Wrap(hErrors.ErrRecordNotFound, "metadata entry")
	}
	return entries[0], nil
}

// metadataFilter builds the query of the criteria. A target id restricts the metadata type to the kind of the id
// unless the criteria name the type.
func metadataFilter(criteria types.MetadataCriteria) (bson.M, error) {
	if criteria.IsEmpty() {
		return nil, errors.Wrap(hErrors.ErrInvalidArgument, "metadata criteria are empty")
	}

	filter := bson.M{}
	if criteria.TargetAddress != nil {
		filter[metadataTargetAddressKey] = binaryOf(criteria.TargetAddress.Bytes())
	}

	if criteria.SourceAddress != nil {
		filter[metadataSourceAddressKey] = binaryOf(criteria.SourceAddress.Bytes())
	}

	if criteria.ScopedMetadataKey != nil {
		filter[metadataKeyKey] = storedId(*criteria.ScopedMetadataKey)
	}

	metadataType := criteria.MetadataType
	switch id := criteria.TargetId.(type) {
	case types.MosaicId:
		filter[metadataTargetIdKey] = storedId(uint64(id))
		if metadataType == nil {
			mosaic := types.MetadataTypeMosaic
			metadataType = &mosaic
		}
	case types.NamespaceId:
		filter[metadataTargetIdKey] = storedId(uint64(id))
		if metadataType == nil {
			namespace := types.MetadataTypeNamespace
			metadataType = &namespace
		}
	}

	if metadataType != nil {
		filter[metadataTypeKey] = int32(*metadataType)
	}
	return filter, nil
}
