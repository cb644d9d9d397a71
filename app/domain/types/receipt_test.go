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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReceiptSourceCompare(t *testing.T) {
	assert.Equal(t, 0, ReceiptSource{1, 0}.Compare(ReceiptSource{1, 0}))
	assert.Equal(t, -1, ReceiptSource{1, 5}.Compare(ReceiptSource{2, 0}))
	assert.Equal(t, 1, ReceiptSource{2, 1}.Compare(ReceiptSource{2, 0}))
}

func TestResolutionStatementResolve(t *testing.T) {
	statement := MosaicResolutionStatement{
		Height:     10,
		Unresolved: NamespaceId(0x85BBEA6CC462B244),
		Entries: []ResolutionEntry[MosaicId]{
			{Resolved: MosaicId(1), Source: ReceiptSource{Primary: 1}},
			{Resolved: MosaicId(2), Source: ReceiptSource{Primary: 3, Secondary: 2}},
			{Resolved: MosaicId(3), Source: ReceiptSource{Primary: 5}},
		},
	}

	tests := []struct {
		name     string
		source   ReceiptSource
		expected MosaicId
		found    bool
	}{
		{"before first entry", ReceiptSource{Primary: 0}, 0, false},
		{"at first entry", ReceiptSource{Primary: 1}, 1, true},
		{"between entries", ReceiptSource{Primary: 3, Secondary: 1}, 1, true},
		{"at inner entry", ReceiptSource{Primary: 3, Secondary: 2}, 2, true},
		{"after last entry", ReceiptSource{Primary: 9}, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, found := statement.Resolve(tt.source)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestReceiptConstructors(t *testing.T) {
	address, _ := NewAddressFromEncoded(testEncodedAddress)

	balanceChange := NewBalanceChangeReceipt(ReceiptTypeHarvestFee, address, MosaicId(7), 100)
	expiry := NewArtifactExpiryReceipt(ReceiptTypeNamespaceExpired, NamespaceId(9))
	inflation := NewInflationReceipt(MosaicId(7), 50)

	assert.Equal(t, ReceiptTypeHarvestFee, balanceChange.ReceiptType())
	assert.Equal(t, ReceiptVersionBalanceChange, balanceChange.ReceiptVersion())
	assert.Equal(t, NamespaceId(9), expiry.ArtifactId)
	assert.Equal(t, ReceiptTypeInflation, inflation.ReceiptType())
}
