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
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrDatabaseError   = errors.New("Database error")
	ErrEmptyMerkleTree = errors.New("Merkle tree is empty")
	ErrHashNotFound    = errors.New("Hash not found in merkle tree")
	ErrInvalidArgument = errors.New("Invalid argument")
	ErrRecordNotFound  = errors.New("Record not found")
)

// FieldError reports a document field which is missing or has an unexpected shape
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %s", e.Field, e.Reason)
}

// NewFieldError creates a FieldError for the field
func NewFieldError(field, format string, args ...interface{}) *FieldError {
	return &FieldError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// MalformedTransactionError is returned when a required field of a transaction document is missing or malformed.
// Type holds the raw discriminator of the transaction being decoded.
type MalformedTransactionError struct {
	Type   int
	Field  string
	Reason string
}

func (e *MalformedTransactionError) Error() string {
	return fmt.Sprintf("malformed transaction of type 0x%04X: field %s: %s", e.Type, e.Field, e.Reason)
}

// NewMalformedTransaction converts err into a MalformedTransactionError. A FieldError cause keeps its field name,
// any other cause is reported against the fallback field.
func NewMalformedTransaction(transactionType int, fallbackField string, err error) *MalformedTransactionError {
	var malformed *MalformedTransactionError
	if errors.As(err, &malformed) {
		return malformed
	}

	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return &MalformedTransactionError{Type: transactionType, Field: fieldErr.Field, Reason: fieldErr.Reason}
	}

	return &MalformedTransactionError{Type: transactionType, Field: fallbackField, Reason: err.Error()}
}

// UnsupportedTransactionTypeError is returned for a transaction discriminator no decoder handles
type UnsupportedTransactionTypeError struct {
	Code int
}

func (e *UnsupportedTransactionTypeError) Error() string {
	return fmt.Sprintf("unsupported transaction type 0x%04X (%d)", e.Code, e.Code)
}

// UnsupportedReceiptTypeError is returned for a receipt discriminator no decoder handles
type UnsupportedReceiptTypeError struct {
	Code int
}

func (e *UnsupportedReceiptTypeError) Error() string {
	return fmt.Sprintf("unsupported receipt type 0x%04X (%d)", e.Code, e.Code)
}

// NestedAggregateError is returned when an inner transaction of an aggregate is itself an aggregate
type NestedAggregateError struct {
	AggregateHash string
	Type          int
}

func (e *NestedAggregateError) Error() string {
	return fmt.Sprintf("aggregate %s contains nested aggregate of type 0x%04X", e.AggregateHash, e.Type)
}

// IsMalformed tells whether err is caused by corrupt or unexpected input rather than a transient condition
func IsMalformed(err error) bool {
	var malformed *MalformedTransactionError
	var field *FieldError
	var nested *NestedAggregateError
	return errors.As(err, &malformed) || errors.As(err, &field) || errors.As(err, &nested)
}

// IsNotFound tells whether err reports a record that is absent, possibly only not yet visible
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRecordNotFound) || errors.Is(err, ErrHashNotFound)
}
