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
	"time"
)

// Transaction is implemented by every transaction variant. The set of variants is closed.
type Transaction interface {
	// Base returns the fields shared by every transaction
	Base() *AbstractTransaction
	isTransaction()
}

// Deadline is a number of milliseconds since the network epoch
type Deadline uint64

// Time returns the wall clock time of the deadline given the network's epoch adjustment from the unix epoch
func (d Deadline) Time(epochAdjustment time.Duration) time.Time {
	return time.Unix(0, 0).UTC().Add(epochAdjustment + time.Duration(d)*time.Millisecond)
}

// TransactionInfo locates a transaction in confirmed history. Hash and MerkleComponentHash are set for top-level
// transactions, AggregateHash and AggregateId for embedded ones.
type TransactionInfo struct {
	AggregateHash       string
	AggregateId         string
	Hash                string
	Height              uint64
	Id                  string
	Index               uint32
	MerkleComponentHash string
}

func (t *TransactionInfo) IsEmbedded() bool {
	return t.AggregateHash != ""
}

// AbstractTransaction holds the envelope fields common to all transaction variants. Deadline, MaxFee and Signature
// are zero for embedded transactions, which inherit them from their aggregate.
type AbstractTransaction struct {
	Deadline  Deadline
	Embedded  bool
	Info      *TransactionInfo
	MaxFee    uint64
	Network   NetworkType
	Signature string
	Signer    PublicAccount
	Type      TransactionType
	Version   uint8
}

func (t *AbstractTransaction) Base() *AbstractTransaction {
	return t
}

func (*AbstractTransaction) isTransaction() {}

// IsConfirmed tells whether the transaction has been included in a block
func (t *AbstractTransaction) IsConfirmed() bool {
	return t.Info != nil && t.Info.Height > 0
}

// Cosignature is a signature added to an aggregate by a cosigner
type Cosignature struct {
	Signature string
	Signer    PublicAccount
	Version   uint64
}

// AggregateTransaction bundles inner transactions. InnerTransactions is empty until the aggregate is reconstructed
// with its embedded transactions.
type AggregateTransaction struct {
	AbstractTransaction
	Cosignatures      []Cosignature
	InnerTransactions []Transaction
	TransactionsHash  string
}

// WithInnerTransactions returns a copy of the aggregate holding the inner transactions
func (a *AggregateTransaction) WithInnerTransactions(inner []Transaction) *AggregateTransaction {
	aggregate := *a
	aggregate.Cosignatures = append([]Cosignature(nil), a.Cosignatures...)
	aggregate.InnerTransactions = append(make([]Transaction, 0, len(inner)), inner...)
	return &aggregate
}
