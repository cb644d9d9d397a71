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

package errors

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewMalformedTransactionFromFieldError(t *testing.T) {
	cause := errors.Wrap(NewFieldError("mosaicId", "missing"), "decode")

	actual := NewMalformedTransaction(0x4148, "transaction", cause)

	assert.Equal(t, &MalformedTransactionError{Type: 0x4148, Field: "mosaicId", Reason: "missing"}, actual)
	assert.Equal(t, "malformed transaction of type 0x4148: field mosaicId: missing", actual.Error())
}

func TestNewMalformedTransactionFromOtherError(t *testing.T) {
	actual := NewMalformedTransaction(0x4154, "transaction", errors.New("boom"))

	assert.Equal(t, &MalformedTransactionError{Type: 0x4154, Field: "transaction", Reason: "boom"}, actual)
}

func TestNewMalformedTransactionKeepsExisting(t *testing.T) {
	existing := &MalformedTransactionError{Type: 0x4141, Field: "cosignatures", Reason: "not an array"}

	actual := NewMalformedTransaction(0x4241, "transaction", errors.Wrap(existing, "inner"))

	assert.Same(t, existing, actual)
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{&UnsupportedTransactionTypeError{Code: 0x1234}, "unsupported transaction type 0x1234 (4660)"},
		{&UnsupportedReceiptTypeError{Code: 0xFFFF}, "unsupported receipt type 0xFFFF (65535)"},
		{&NestedAggregateError{AggregateHash: "AB", Type: 0x4141}, "aggregate AB contains nested aggregate of type 0x4141"},
		{NewFieldError("height", "expected integer, got %s", "string"), "field height: expected integer, got string"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestClassification(t *testing.T) {
	assert.True(t, IsMalformed(&MalformedTransactionError{}))
	assert.True(t, IsMalformed(errors.Wrap(&NestedAggregateError{}, "reconstruct")))
	assert.True(t, IsMalformed(NewFieldError("a", "b")))
	assert.False(t, IsMalformed(ErrRecordNotFound))
	assert.False(t, IsMalformed(&UnsupportedTransactionTypeError{}))

	assert.True(t, IsNotFound(errors.Wrap(ErrRecordNotFound, "find")))
	assert.True(t, IsNotFound(ErrHashNotFound))
	assert.False(t, IsNotFound(ErrDatabaseError))
}
