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
	"time"

	"github.com/nemtech/symbol-direct-connect/app/config"
	"github.com/nemtech/symbol-direct-connect/app/document"
	hErrors "github.com/nemtech/symbol-direct-connect/app/errors"
	"github.com/nemtech/symbol-direct-connect/app/interfaces"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	findOperation      = "find"
	findOneOperation   = "findOne"
	findRangeOperation = "findRange"
)

type query func(ctx context.Context, collection *mongo.Collection) ([]document.Document, error)

// documentStore polls the catapult mongo database
type documentStore struct {
	backOff  time.Duration
	dbClient interfaces.DbClient
}

// NewDocumentStore creates a DocumentStore which waits backOff between two attempts of a polling query
func NewDocumentStore(dbClient interfaces.DbClient, retryConfig config.Retry) interfaces.DocumentStore {
	return &documentStore{backOff: retryConfig.BackOff, dbClient: dbClient}
}

func (s *documentStore) FindOne(
	ctx context.Context,
	collection string,
	keyPath string,
	keyValue interface{},
	timeout time.Duration,
) (document.Document, error) {
	records, err := s.poll(ctx, collection, findOneOperation, timeout,
		func(ctx context.Context, c *mongo.Collection) ([]document.Document, error) {
			var record bson.M
			if err := c.FindOne(ctx, bson.M{keyPath: keyValue}).Decode(&record); err != nil {
				if errors.Is(err, mongo.ErrNoDocuments) {
					return nil, nil
				}
				return nil, err
			}

			return []document.Document{document.New(record)}, nil
		})
	if err != nil {
		return document.Document{}, err
	}

	if len(records) == 0 {
		return document.Document{}, errors.Wrapf(hErrors.ErrRecordNotFound, "%s with %s %v", collection, keyPath, keyValue)
	}

	return records[0], nil
}

func (s *documentStore) Find(
	ctx context.Context,
	collection string,
	filter interface{},
	timeout time.Duration,
) ([]document.Document, error) {
	return s.poll(ctx, collection, findOperation, timeout,
		func(ctx context.Context, c *mongo.Collection) ([]document.Document, error) {
			cursor, err := c.Find(ctx, filter)
			if err != nil {
				return nil, err
			}

			return decodeAll(ctx, cursor)
		})
}

func (s *documentStore) FindRange(
	ctx context.Context,
	collection string,
	keyPath string,
	low interface{},
	high interface{},
	timeout time.Duration,
) ([]document.Document, error) {
	filter := bson.M{keyPath: bson.M{"$gte": low, "$lt": high}}
	findOptions := options.Find().SetSort(bson.D{{Key: keyPath, Value: 1}})
	return s.poll(ctx, collection, findRangeOperation, timeout,
		func(ctx context.Context, c *mongo.Collection) ([]document.Document, error) {
			cursor, err := c.Find(ctx, filter, findOptions)
			if err != nil {
				return nil, err
			}

			return decodeAll(ctx, cursor)
		})
}

func (s *documentStore) poll(
	ctx context.Context,
	collection string,
	operation string,
	timeout time.Duration,
	q query,
) ([]document.Document, error) {
	attempts := 0
	defer func(start time.Time) {
		queryAttemptsHistogram.WithLabelValues(collection, operation).Observe(float64(attempts))
		queryDurationHistogram.WithLabelValues(collection, operation).Observe(time.Since(start).Seconds())
	}(time.Now())

	records, err := retry(ctx, timeout, s.backOff, func(ctx context.Context) ([]document.Document, error) {
		attempts++
		db, queryCtx, cancel := s.dbClient.GetDbWithContext(ctx)
		defer cancel()

		records, err := q(queryCtx, db.Collection(collection))
		if err != nil {
			queryErrorsCounter.WithLabelValues(collection, operation).Inc()
			log.Errorf(databaseErrorFormat, hErrors.ErrDatabaseError, collection, err)
			return nil, errors.Wrap(hErrors.ErrDatabaseError, err.Error())
		}

		return records, nil
	})
	if err != nil {
		return nil, err
	}

	if records == nil {
		records = []document.Document{}
	}
	log.Debugf("%s on %s returned %d records after %d attempts", operation, collection, len(records), attempts)
	return records, nil
}

// retry runs the query until it returns records or an error. Empty results are retried every backOff until the
// timeout elapses; a zero timeout runs the query once.
func retry(
	ctx context.Context,
	timeout time.Duration,
	backOff time.Duration,
	q func(ctx context.Context) ([]document.Document, error),
) ([]document.Document, error) {
	deadline := time.Now().Add(timeout)
	for {
		records, err := q(ctx)
		if err != nil || len(records) != 0 {
			return records, err
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return records, nil
		}

		wait := backOff
		if remaining < wait {
			wait = remaining
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, errors.WithStack(ctx.Err())
		case <-timer.C:
		}
	}
}

func decodeAll(ctx context.Context, cursor *mongo.Cursor) ([]document.Document, error) {
	var records []bson.M
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	documents := make([]document.Document, 0, len(records))
	for _, record := range records {
		documents = append(documents, document.New(record))
	}
	return documents, nil
}
