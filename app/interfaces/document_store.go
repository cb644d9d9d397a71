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

package interfaces

import (
	"context"
	"time"

	"github.com/nemtech/symbol-direct-connect/app/document"
)

// DocumentStore Interface that all DocumentStore structs must implement. A timeout bounds how long a query polls
// until a record shows up; a zero timeout queries once.
type DocumentStore interface {

	// FindOne retrieves the first record of the collection whose keyPath field equals keyValue. It returns
	// errors.ErrRecordNotFound when no record shows up before the timeout.
	FindOne(
		ctx context.Context,
		collection string,
		keyPath string,
		keyValue interface{},
		timeout time.Duration,
	) (document.Document, error)

	// Find retrieves the records of the collection matching the filter in natural order. It returns an empty result
	// when no record shows up before the timeout.
	Find(ctx context.Context, collection string, filter interface{}, timeout time.Duration) ([]document.Document, error)

	// FindRange retrieves the records whose keyPath field is at least low and below high, ordered by that field
	FindRange(
		ctx context.Context,
		collection string,
		keyPath string,
		low interface{},
		high interface{},
		timeout time.Duration,
	) ([]document.Document, error)
}
