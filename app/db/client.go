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

package db

import (
	"context"
	"time"

	"github.com/nemtech/symbol-direct-connect/app/interfaces"
	"go.mongodb.org/mongo-driver/mongo"
)

type client struct {
	db               *mongo.Database
	host             string
	statementTimeout uint
}

func (d *client) GetDb() *mongo.Database {
	return d.db
}

func (d *client) GetDbWithContext(ctx context.Context) (*mongo.Database, context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}

	if d.statementTimeout == 0 {
		return d.db, ctx, noop
	}

	childCtx, cancel := context.WithTimeout(ctx, time.Duration(d.statementTimeout)*time.Second)
	return d.db, childCtx, cancel
}

func (d *client) Host() string {
	return d.host
}

func (d *client) Disconnect(ctx context.Context) error {
	return d.db.Client().Disconnect(ctx)
}

func NewDbClient(db *mongo.Database, host string, statementTimeout uint) interfaces.DbClient {
	return &client{db: db, host: host, statementTimeout: statementTimeout}
}

func noop() {
	// empty cancel function
}
