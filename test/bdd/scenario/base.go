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

package scenario

import (
	"context"

	"github.com/nemtech/symbol-direct-connect/app/document"
	"github.com/nemtech/symbol-direct-connect/app/domain/types"
	hErrors "github.com/nemtech/symbol-direct-connect/app/errors"
	"github.com/nemtech/symbol-direct-connect/app/persistence"
	tdomain "github.com/nemtech/symbol-direct-connect/test/domain"
	"github.com/nemtech/symbol-direct-connect/test/mocks"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	aggregateHashKey       = "meta.aggregateHash"
	blockHeightKey         = "block.height"
	blocksCollection       = "blocks"
	metaHashKey            = "meta.hash"
	transactionsCollection = "transactions"
)

// baseFeature holds the document store of a scenario and the outcome of its last lookup
type baseFeature struct {
	err         error
	store       *mocks.MockDocumentStore
	transaction types.Transaction
}

func (b *baseFeature) reset() {
	b.err = nil
	b.store = &mocks.MockDocumentStore{}
	b.transaction = nil
}

// storeConfirmed makes the confirmed transaction findable by its hash
func (b *baseFeature) storeConfirmed(hash []byte, record document.Document) {
	b.store.On("FindOne", transactionsCollection, metaHashKey, tdomain.Binary(hash), mock.Anything).Return(record, nil)
}

// storeInner makes the inner transactions findable by the hash of their aggregate
func (b *baseFeature) storeInner(aggregateHash []byte, records []document.Document) *mock.Call {
	filter := bson.M{aggregateHashKey: tdomain.Binary(aggregateHash)}
	return b.store.On("Find", transactionsCollection, filter, mock.Anything).Return(records, nil)
}

func (b *baseFeature) unknownHash(seed string) error {
	value, err := parseSeed(seed)
	if err != nil {
		return err
	}

	notFound := errors.Wrapf(hErrors.ErrRecordNotFound, "hash %s", tdomain.HashHex(value))
	b.store.On("FindOne", mock.Anything, metaHashKey, tdomain.Binary(tdomain.Hash(value)), mock.Anything).
		Return(document.Document{}, notFound)
	return nil
}

func (b *baseFeature) lookupTransaction(ctx context.Context, seed string) error {
	value, err := parseSeed(seed)
	if err != nil {
		return err
	}

	hash := tdomain.HashHex(value)
	b.transaction, b.err = persistence.NewTransactionRepository(b.store).FindByHash(ctx, hash, pollTimeout)
	if b.err != nil {
		log.Infof("Failed to find transaction with hash %s: %v", hash, b.err)
	} else {
		log.Infof("Found %s transaction with hash %s", b.transaction.Base().Type, hash)
	}
	return nil
}

func (b *baseFeature) verifyNotFound() error {
	if !hErrors.IsNotFound(b.err) {
		return errors.Errorf("expected a not found error, got %v", b.err)
	}
	return nil
}

func (b *baseFeature) verifyMalformed() error {
	if !hErrors.IsMalformed(b.err) {
		return errors.Errorf("expected a malformed transaction error, got %v", b.err)
	}
	return nil
}

// foundTransaction returns the transaction of the last lookup, failing when the lookup failed
func (b *baseFeature) foundTransaction() (types.Transaction, error) {
	if b.err != nil {
		return nil, errors.Wrap(b.err, "lookup failed")
	}
	return b.transaction, nil
}
