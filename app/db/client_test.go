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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func newUnconnectedClient(t *testing.T) *mongo.Client {
	mongoClient, err := mongo.NewClient(options.Client().ApplyURI("mongodb://127.0.0.1:27017"))
	assert.NoError(t, err)
	return mongoClient
}

func TestGetDbWithContext(t *testing.T) {
	tests := []struct {
		name             string
		statementTimeout uint
		hasDeadline      bool
	}{
		{name: "no statement timeout"},
		{name: "with statement timeout", statementTimeout: 5, hasDeadline: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// given
			database := newUnconnectedClient(t).Database("catapult")
			dbClient := NewDbClient(database, "127.0.0.1:27017", tt.statementTimeout)

			// when
			actual, ctx, cancel := dbClient.GetDbWithContext(context.Background())
			defer cancel()

			// then
			assert.Equal(t, database, actual)
			deadline, ok := ctx.Deadline()
			assert.Equal(t, tt.hasDeadline, ok)
			if tt.hasDeadline {
				assert.WithinDuration(t, time.Now().Add(5*time.Second), deadline, time.Second)
			}
		})
	}
}

func TestGetDbWithNilContext(t *testing.T) {
	dbClient := NewDbClient(newUnconnectedClient(t).Database("catapult"), "127.0.0.1:27017", 0)

	//nolint:staticcheck
	_, ctx, cancel := dbClient.GetDbWithContext(nil)
	defer cancel()

	assert.NotNil(t, ctx)
}

func TestHost(t *testing.T) {
	dbClient := NewDbClient(newUnconnectedClient(t).Database("catapult"), "10.0.0.1:27017", 0)
	assert.Equal(t, "10.0.0.1:27017", dbClient.Host())
}
