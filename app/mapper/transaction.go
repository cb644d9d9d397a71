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
	"strconv"

	"github.com/nemtech/symbol-direct-connect/app/document"
	"github.com/nemtech/symbol-direct-connect/app/domain/types"
	hErrors "github.com/nemtech/symbol-direct-connect/app/errors"
)

const (
	metaField        = "meta"
	transactionField = "transaction"
)

// DecodeTransaction decodes a top-level transaction record. An aggregate is returned with an empty inner transaction
// list, see AttachInnerTransactions.
func DecodeTransaction(record document.Document) (types.Transaction, error) {
	return decodeTransaction(record, false)
}

// DecodeEmbeddedTransaction decodes an inner transaction record of an aggregate. Embedded records carry no
// deadline, max fee or signature.
func DecodeEmbeddedTransaction(record document.Document) (types.Transaction, error) {
	return decodeTransaction(record, true)
}

func decodeTransaction(record document.Document, embedded bool) (types.Transaction, error) {
	body, err := record.Document(transactionField)
	if err != nil {
		return nil, hErrors.NewMalformedTransaction(0, transactionField, err)
	}

	transactionType, err := decodeTransactionType(body)
	if err != nil {
		return nil, err
	}

	if embedded && transactionType.IsAggregate() {
		aggregateHash, _, _ := record.OptionalHex("meta.aggregateHash")
		return nil, &hErrors.NestedAggregateError{AggregateHash: aggregateHash, Type: int(transactionType)}
	}

	abstract, err := decodeAbstractTransaction(record, body, transactionType, embedded)
	if err != nil {
		return nil, hErrors.NewMalformedTransaction(int(transactionType), transactionField, err)
	}

	transaction, err := decodeTransactionBody(abstract, body)
	if err != nil {
		return nil, hErrors.NewMalformedTransaction(int(transactionType), transactionField, err)
	}
	return transaction, nil
}

func decodeTransactionType(body document.Document) (types.TransactionType, error) {
	rawType, err := body.Int64("type")
	if err != nil {
		return 0, hErrors.NewMalformedTransaction(0, "transaction.type", err)
	}

	transactionType, ok := types.TransactionTypeFromValue(rawType)
	if !ok {
		return 0, &hErrors.UnsupportedTransactionTypeError{Code: int(rawType)}
	}
	return transactionType, nil
}

// decodeTransactionBody selects the decoder of the transaction type. Every known type must have a case.
func decodeTransactionBody(abstract types.AbstractTransaction, body document.Document) (types.Transaction, error) {
	switch abstract.Type {
	case types.TransactionTypeAccountAddressRestriction:
		return decodeAccountAddressRestriction(abstract, body)
	case types.TransactionTypeAccountKeyLink:
		return decodeAccountKeyLink(abstract, body)
	case types.TransactionTypeAccountMetadata:
		return decodeAccountMetadata(abstract, body)
	case types.TransactionTypeAccountMosaicRestriction:
		return decodeAccountMosaicRestriction(abstract, body)
	case types.TransactionTypeAccountOperationRestriction:
		return decodeAccountOperationRestriction(abstract, body)
	case types.TransactionTypeAddressAlias:
		return decodeAddressAlias(abstract, body)
	case types.TransactionTypeAggregateBonded, types.TransactionTypeAggregateComplete:
		return decodeAggregate(abstract, body)
	case types.TransactionTypeHashLock:
		return decodeHashLock(abstract, body)
	case types.TransactionTypeMosaicAddressRestriction:
		return decodeMosaicAddressRestriction(abstract, body)
	case types.TransactionTypeMosaicAlias:
		return decodeMosaicAlias(abstract, body)
	case types.TransactionTypeMosaicDefinition:
		return decodeMosaicDefinition(abstract, body)
	case types.TransactionTypeMosaicGlobalRestriction:
		return decodeMosaicGlobalRestriction(abstract, body)
	case types.TransactionTypeMosaicMetadata:
		return decodeMosaicMetadata(abstract, body)
	case types.TransactionTypeMosaicSupplyChange:
		return decodeMosaicSupplyChange(abstract, body)
	case types.TransactionTypeMultisigAccountModification:
		return decodeMultisigAccountModification(abstract, body)
	case types.TransactionTypeNamespaceMetadata:
		return decodeNamespaceMetadata(abstract, body)
	case types.TransactionTypeNamespaceRegistration:
		return decodeNamespaceRegistration(abstract, body)
	case types.TransactionTypeNodeKeyLink:
		return decodeNodeKeyLink(abstract, body)
	case types.TransactionTypeSecretLock:
		return decodeSecretLock(abstract, body)
	case types.TransactionTypeSecretProof:
		return decodeSecretProof(abstract, body)
	case types.TransactionTypeTransfer:
		return decodeTransfer(abstract, body)
	case types.TransactionTypeVotingKeyLink:
		return decodeVotingKeyLink(abstract, body)
	case types.TransactionTypeVrfKeyLink:
		return decodeVrfKeyLink(abstract, body)
	default:
		return nil, &hErrors.UnsupportedTransactionTypeError{Code: int(abstract.Type)}
	}
}

// decodeAbstractTransaction extracts the envelope fields shared by all transaction types
func decodeAbstractTransaction(
	record document.Document,
	body document.Document,
	transactionType types.TransactionType,
	embedded bool,
) (types.AbstractTransaction, error) {
	network, version, err := decodeNetworkAndVersion(body)
	if err != nil {
		return types.AbstractTransaction{}, err
	}

	signerKey := "signerPublicKey"
	if !body.Has(signerKey) && body.Has("signer") {
		signerKey = "signer"
	}
	signer, err := decodePublicAccount(body, signerKey, network)
	if err != nil {
		return types.AbstractTransaction{}, err
	}

	info, err := decodeTransactionInfo(record)
	if err != nil {
		return types.AbstractTransaction{}, err
	}

	abstract := types.AbstractTransaction{
		Embedded: embedded,
		Info:     info,
		Network:  network,
		Signer:   signer,
		Type:     transactionType,
		Version:  version,
	}
	if embedded {
		return abstract, nil
	}

	deadline, err := body.Uint64("deadline")
	if err != nil {
		return types.AbstractTransaction{}, err
	}

	maxFee, err := body.Uint64("maxFee")
	if err != nil {
		return types.AbstractTransaction{}, err
	}

	signature, err := body.Hex("signature")
	if err != nil {
		return types.AbstractTransaction{}, err
	}

	abstract.Deadline = types.Deadline(deadline)
	abstract.MaxFee = maxFee
	abstract.Signature = signature
	return abstract, nil
}

// decodeNetworkAndVersion reads the separate network and version fields, or unpacks the legacy version field which
// holds the network in its high byte when the document has no network field
func decodeNetworkAndVersion(body document.Document) (types.NetworkType, uint8, error) {
	var rawNetwork int64
	var version uint8
	var err error

	if body.Has("network") {
		if rawNetwork, err = body.Int64("network"); err != nil {
			return 0, 0, err
		}

		if version, err = body.Uint8("version"); err != nil {
			return 0, 0, err
		}
	} else {
		packed, err := body.Int64("version")
		if err != nil {
			return 0, 0, err
		}

		if rawNetwork, version, err = UnpackVersion(packed); err != nil {
			return 0, 0, body.Field("version", "%s", err)
		}
	}

	network, err := types.NetworkTypeFromValue(rawNetwork)
	if err != nil {
		return 0, 0, body.Field("network", "%s", err)
	}
	return network, version, nil
}

// UnpackVersion splits a legacy packed version such as 0x9068 into network 0x90 and version 0x68. The value is
// printed as hex and cut before its last two digits.
func UnpackVersion(packed int64) (int64, uint8, error) {
	if packed < 0 {
		packed &= 0xFFFF
	}

	text := fmt.Sprintf("%04x", packed)
	network, err := strconv.ParseInt(text[:len(text)-2], 16, 64)
	if err != nil {
		return 0, 0, err
	}

	version, err := strconv.ParseUint(text[len(text)-2:], 16, 8)
	if err != nil {
		return 0, 0, err
	}

	return network, uint8(version), nil
}

// decodeTransactionInfo reads the meta sub-document. Records without meta or not yet included in a block have no
// transaction info.
func decodeTransactionInfo(record document.Document) (*types.TransactionInfo, error) {
	if !record.Has(metaField) {
		return nil, nil
	}

	meta, err := record.Document(metaField)
	if err != nil {
		return nil, err
	}

	height, err := meta.Uint64("height")
	if err != nil {
		return nil, err
	}
	if height == 0 {
		return nil, nil
	}

	index, err := meta.Uint32("index")
	if err != nil {
		return nil, err
	}

	info := &types.TransactionInfo{Height: height, Index: index}
	if record.Has("_id") {
		if info.Id, err = record.ObjectIdHex("_id"); err != nil {
			return nil, err
		}
	}

	switch {
	case meta.Has("hash"):
		if info.Hash, err = meta.Hex("hash"); err != nil {
			return nil, err
		}

		if info.MerkleComponentHash, err = meta.Hex("merkleComponentHash"); err != nil {
			return nil, err
		}
	case meta.Has("aggregateHash"):
		if info.AggregateHash, err = meta.Hex("aggregateHash"); err != nil {
			return nil, err
		}

		if info.AggregateId, err = meta.ObjectIdHex("aggregateId"); err != nil {
			return nil, err
		}
	default:
		return nil, meta.Field("hash", "missing")
	}

	return info, nil
}
