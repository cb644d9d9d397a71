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
	"strconv"
	"time"

	"github.com/nemtech/symbol-direct-connect/app/config"
	"github.com/nemtech/symbol-direct-connect/app/db"
	"github.com/nemtech/symbol-direct-connect/app/interfaces"
	"github.com/ory/dockertest/v3"
	log "github.com/sirupsen/logrus"
	"github.com/thanhpk/randstr"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	dbName      = "catapult"
	dbUsername  = "catapult_integration"
	poolMaxWait = 5 * time.Minute
)

type DbResource struct {
	client   interfaces.DbClient
	params   dbParams
	pool     *dockertest.Pool
	resource *dockertest.Resource
}

// GetDbConfig returns the db config of the session
func (d DbResource) GetDbConfig() config.Db {
	return d.params.toConfig()
}

// GetDbClient returns the client connected to the test container
func (d DbResource) GetDbClient() interfaces.DbClient {
	return d.client
}

type dbParams struct {
	host     string
	port     string
	name     string
	username string
	password string
}

func (d dbParams) toConfig() config.Db {
	port, _ := strconv.ParseUint(d.port, 10, 16)
	return config.Db{
		AuthSource: "admin",
		Host:       d.host,
		Name:       d.name,
		Password:   d.password,
		Pool: config.Pool{
			MaxConnIdleTime: time.Minute,
			MaxPoolSize:     10,
			MinPoolSize:     1,
		},
		Port:             uint16(port),
		StatementTimeout: 10,
		Username:         d.username,
	}
}

// CleanupDb drops every collection written to during tests
func CleanupDb(dbClient interfaces.DbClient) {
	ctx := context.Background()
	names, err := dbClient.GetDb().ListCollectionNames(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to list collections: %s", err)
	}

	for _, name := range names {
		if err = dbClient.GetDb().Collection(name).Drop(ctx); err != nil {
			log.Fatalf("Failed to drop collection %s: %s", name, err)
		}
	}
}

func SetupDb() DbResource {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not connect to docker: %s", err)
	}

	// set max wait, used in pool.Retry to timeout
	pool.MaxWait = poolMaxWait

	log.Info("Create mongo container")
	resource, params := createMongoDb(pool)

	var dbClient interfaces.DbClient
	if err = pool.Retry(func() error {
		var err error
		dbClient, err = db.ConnectToDb(context.Background(), params.toConfig())
		if err != nil {
			return err
		}

		return dbClient.GetDb().Client().Ping(context.Background(), nil)
	}); err != nil {
		log.Fatalf("Could not connect to docker: %s", err)
	}

	return DbResource{
		client:   dbClient,
		params:   params,
		pool:     pool,
		resource: resource,
	}
}

func TearDownDb(dbResource DbResource) {
	if dbResource.client != nil {
		if err := dbResource.client.Disconnect(context.Background()); err != nil {
			log.Errorf("Failed to disconnect from mongo: %s", err)
		}
	}

	log.Info("Remove mongo container")
	if err := dbResource.pool.Purge(dbResource.resource); err != nil {
		log.Errorf("Failed to purge mongo resource: %s", err)
	}
}

func createMongoDb(pool *dockertest.Pool) (*dockertest.Resource, dbParams) {
	dbPassword := randstr.Hex(12)
	env := []string{
		"MONGO_INITDB_DATABASE=" + dbName,
		"MONGO_INITDB_ROOT_USERNAME=" + dbUsername,
		"MONGO_INITDB_ROOT_PASSWORD=" + dbPassword,
	}

	options := &dockertest.RunOptions{
		Name:       "catapult-mongo-" + randstr.Hex(8),
		Repository: "mongo",
		Tag:        "7.0",
		Env:        env,
	}
	resource, err := pool.RunWithOptions(options)
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}

	return resource, dbParams{
		// use IPv4 local address, 'localhost' may resolve to IPv6 local address in github CI
		host:     "127.0.0.1",
		port:     resource.GetPort("27017/tcp"),
		name:     dbName,
		username: dbUsername,
		password: dbPassword,
	}
}
