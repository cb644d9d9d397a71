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
	"github.com/cucumber/godog"
	tdomain "github.com/nemtech/symbol-direct-connect/test/domain"
	log "github.com/sirupsen/logrus"
)

type transferFeature struct {
	*baseFeature
}

func (f *transferFeature) confirmedTransfer(amount int, seed string, height int) error {
	value, err := parseSeed(seed)
	if err != nil {
		return err
	}

	hash := tdomain.Hash(value)
	record := tdomain.NewTransferBuilder(uint64(amount)).Confirmed(uint64(height), 0).Hash(hash).Document()
	f.storeConfirmed(hash, record)
	log.Debugf("Stored transfer %s at height %d", tdomain.HashHex(value), height)
	return nil
}

func (f *transferFeature) verifyTransfer(amount int, height int) error {
	transaction, err := f.foundTransaction()
	if err != nil {
		return err
	}

	return assertTransactionAll(
		transaction,
		assertTransactionType(transferType),
		assertTransactionConfirmedAt(uint64(height)),
		assertTransferOf(uint64(amount), tdomain.RecipientAddress),
	)
}

func initializeTransferScenario(ctx *godog.ScenarioContext, base *baseFeature) {
	transfer := &transferFeature{baseFeature: base}

	ctx.Step(`^a confirmed transfer of (\d+) currency units with hash "([0-9A-Fa-f]{2})" at height (\d+)$`,
		transfer.confirmedTransfer)
	ctx.Step(`^the transaction is a transfer of (\d+) currency units to the recipient confirmed at height (\d+)$`,
		transfer.verifyTransfer)
}
