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

package mapper

import (
	"fmt"

	"github.com/nemtech/symbol-direct-connect/app/document"
	"github.com/nemtech/symbol-direct-connect/app/domain/types"
)

// successStatusCode is the code of a transaction that was accepted
const successStatusCode = "Success"

// DecodeFailedTransactionStatus decodes a record of the transaction status collection. The collection only keeps
// transactions the node rejected.
func DecodeFailedTransactionStatus(record document.Document) (*types.TransactionStatus, error) {
	status, err := record.Document("status")
	if err != nil {
		return nil, err
	}

	hash, err := status.Hex("hash")
	if err != nil {
		return nil, err
	}

	code, err := status.Uint32("code")
	if err != nil {
		return nil, err
	}

	deadline, err := status.Uint64("deadline")
	if err != nil {
		return nil, err
	}

	return &types.TransactionStatus{
		Code:     FormatStatusCode(code),
		Deadline: types.Deadline(deadline),
		Group:    types.TransactionGroupFailed,
		Hash:     hash,
	}, nil
}

// NewTransactionStatus builds the status of a transaction found in one of the transaction collections
func NewTransactionStatus(transaction types.Transaction, hash string, group types.TransactionGroup) *types.TransactionStatus {
	base := transaction.Base()
	status := &types.TransactionStatus{
		Code:     successStatusCode,
		Deadline: base.Deadline,
		Group:    group,
		Hash:     hash,
	}
	if base.Info != nil {
		status.Height = base.Info.Height
	}
	return status
}

// FormatStatusCode renders a raw validation result, e.g. 0x80430003
func FormatStatusCode(code uint32) string {
	if code == 0 {
		return successStatusCode
	}
	return fmt.Sprintf("0x%08X", code)
}
