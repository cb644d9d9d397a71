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

const mosaicIdKey = "mosaic.id"

// mosaicRepository struct that has connection to the document store
type mosaicRepository struct {
	store interfaces.DocumentStore
}

// NewMosaicRepository creates an instance of a mosaicRepository struct
func NewMosaicRepository(store interfaces.DocumentStore) interfaces.MosaicRepository {
	return &mosaicRepository{store: store}
}

func (mr *mosaicRepository) FindById(ctx context.Context, id types.MosaicId) (*types.MosaicInfo, error) {
	record, err := mr.store.FindOne(ctx, mosaicsCollection, mosaicIdKey, storedId(uint64(id)), 0)
	if err != nil {
		return nil, err
	}

	return mapper.DecodeMosaicInfo(record)
}
