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
	"time"

	"github.com/nemtech/symbol-direct-connect/app/document"
	"github.com/stretchr/testify/mock"
)

var NilDocuments []document.Document

type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) FindOne(
	ctx context.Context,
	collection string,
	keyPath string,
	keyValue interface{},
	timeout time.Duration,
) (document.Document, error) {
	args := m.Called(collection, keyPath, keyValue, timeout)
	return args.Get(0).(document.Document), args.Error(1)
}

func (m *MockDocumentStore) Find(
	ctx context.Context,
	collection string,
	filter interface{},
	timeout time.Duration,
) ([]document.Document, error) {
	args := m.Called(collection, filter, timeout)
	return args.Get(0).([]document.Document), args.Error(1)
}

func (m *MockDocumentStore) FindRange(
	ctx context.Context,
	collection string,
	keyPath string,
	low interface{},
	high interface{},
	timeout time.Duration,
) ([]document.Document, error) {
	args := m.Called(collection, keyPath, low, high, timeout)
	return args.Get(0).([]document.Document), args.Error(1)
}
