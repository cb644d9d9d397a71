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

	"go.mongodb.org/mongo-driver/mongo"
)

// DbClient Interface that all DbClient structs must implement
type DbClient interface {

	// GetDb returns the database
	GetDb() *mongo.Database

	// GetDbWithContext returns the database and a child context bounded by the statement timeout. The caller must call
	// the cancel function once the statement is done.
	GetDbWithContext(ctx context.Context) (*mongo.Database, context.Context, context.CancelFunc)

	// Host returns the host the client is connected to
	Host() string

	// Disconnect closes the connections of the client
	Disconnect(ctx context.Context) error
}
