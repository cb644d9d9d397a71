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
	"fmt"

	"github.com/nemtech/symbol-direct-connect/app/config"
	"github.com/nemtech/symbol-direct-connect/app/interfaces"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ConnectToDb establishes connection to the catapult Mongo database
func ConnectToDb(ctx context.Context, dbConfig config.Db) (interfaces.DbClient, error) {
	clientOptions := options.Client().
		ApplyURI(dbConfig.GetUri()).
		SetMaxPoolSize(dbConfig.Pool.MaxPoolSize).
		SetMinPoolSize(dbConfig.Pool.MinPoolSize).
		SetMaxConnIdleTime(dbConfig.Pool.MaxConnIdleTime)

	mongoClient, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Errorf("Failed to connect to database: %s", err)
		return nil, errors.WithStack(err)
	}

	dbClient := NewDbClient(
		mongoClient.Database(dbConfig.Name),
		fmt.Sprintf("%s:%d", dbConfig.Host, dbConfig.Port),
		uint(dbConfig.StatementTimeout),
	)

	_, pingCtx, cancel := dbClient.GetDbWithContext(ctx)
	defer cancel()
	if err = mongoClient.Ping(pingCtx, readpref.Primary()); err != nil {
		log.Warn(err)
		return dbClient, nil
	}

	log.Info("Successfully connected to database")
	return dbClient, nil
}
