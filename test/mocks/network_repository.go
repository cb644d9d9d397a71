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

package mocks

import (
	"context"

	"github.com/nemtech/symbol-direct-connect/app/domain/types"
	"github.com/stretchr/testify/mock"
)

var (
	NilRentalFees      *types.RentalFees
	NilTransactionFees *types.TransactionFees
)

type MockNetworkRepository struct {
	mock.Mock
}

func (m *MockNetworkRepository) NetworkType(ctx context.Context) (types.NetworkType, error) {
	args := m.Called()
	return args.Get(0).(types.NetworkType), args.Error(1)
}

func (m *MockNetworkRepository) TransactionFees(ctx context.Context) (*types.TransactionFees, error) {
	args := m.Called()
	return args.Get(0).(*types.TransactionFees), args.Error(1)
}

func (m *MockNetworkRepository) RentalFees(ctx context.Context) (*types.RentalFees, error) {
	args := m.Called()
	return args.Get(0).(*types.RentalFees), args.Error(1)
}
