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
	"strconv"
	"time"

	"github.com/cucumber/godog"
	"github.com/pkg/errors"
)

var pollTimeout time.Duration

// SetupPolling sets how long a lookup polls the confirmed transactions for a hash it can't find
func SetupPolling(timeout time.Duration) {
	pollTimeout = timeout
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	base := &baseFeature{}
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		base.reset()
		return ctx, nil
	})

	ctx.Step(`^the transaction with hash "([0-9A-Fa-f]{2})" is looked up$`, base.lookupTransaction)
	ctx.Step(`^an unknown hash "([0-9A-Fa-f]{2})"$`, base.unknownHash)
	ctx.Step(`^the lookup fails because the transaction is not found$`, base.verifyNotFound)
	ctx.Step(`^the lookup fails because the transaction is malformed$`, base.verifyMalformed)

	initializeTransferScenario(ctx, base)
	initializeAggregateScenario(ctx, base)
	initializeMerkleScenario(ctx, base)
}

// parseSeed parses the two hex digit seed a test hash is made of
func parseSeed(seed string) (byte, error) {
	value, err := strconv.ParseUint(seed, 16, 8)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid hash seed %s", seed)
	}
	return byte(value), nil
}
