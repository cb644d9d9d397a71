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

package test

import (
	"github.com/nemtech/symbol-direct-connect/app/interfaces"
	"github.com/nemtech/symbol-direct-connect/test/db"
)

type IntegrationTest struct {
	DbResource db.DbResource
}

func (it *IntegrationTest) CleanupDb() {
	db.CleanupDb(it.DbResource.GetDbClient())
}

func (it *IntegrationTest) DbClient() interfaces.DbClient {
	return it.DbResource.GetDbClient()
}

func (it *IntegrationTest) Setup() {
	it.DbResource = db.SetupDb()
}

func (it IntegrationTest) TearDown() {
	db.TearDownDb(it.DbResource)
}
