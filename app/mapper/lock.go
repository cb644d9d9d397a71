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
	"github.com/nemtech/symbol-direct-connect/app/document"
	"github.com/nemtech/symbol-direct-connect/app/domain/types"
)

func decodeHashLock(abstract types.AbstractTransaction, body document.Document) (*types.HashLockTransaction, error) {
	mosaic, err := decodeMosaic(body, "mosaicId", "amount")
	if err != nil {
		return nil, err
	}

	duration, err := body.Uint64("duration")
	if err != nil {
		return nil, err
	}

	hash, err := body.Hex("hash")
	if err != nil {
		return nil, err
	}

	return &types.HashLockTransaction{
		AbstractTransaction: abstract,
		Duration:            duration,
		Hash:                hash,
		Mosaic:              mosaic,
	}, nil
}

var (
	// lockHashAlgorithms is indexed by the code of records carrying a separate network field
	lockHashAlgorithms = []types.LockHashAlgorithm{
		types.LockHashSha3_256,
		types.LockHashHash160,
		types.LockHashHash256,
	}
	// legacyLockHashAlgorithms is indexed by the code of records with a packed version
	legacyLockHashAlgorithms = []types.LockHashAlgorithm{
		types.LockHashSha3_256,
		types.LockHashKeccak256,
		types.LockHashHash160,
		types.LockHashHash256,
	}
)

// decodeHashAlgorithm picks the code table by the same document shape that selects the version scheme
func decodeHashAlgorithm(body document.Document) (types.LockHashAlgorithm, error) {
	value, err := body.Uint8("hashAlgorithm")
	if err != nil {
		return 0, err
	}

	algorithms := lockHashAlgorithms
	if !body.Has("network") {
		algorithms = legacyLockHashAlgorithms
	}

	if int(value) >= len(algorithms) {
		return 0, body.Field("hashAlgorithm", "unknown hash algorithm %d", value)
	}
	return algorithms[value], nil
}

func decodeSecretLock(abstract types.AbstractTransaction, body document.Document) (*types.SecretLockTransaction, error) {
	recipient, err := decodeUnresolvedAddress(body, "recipientAddress")
	if err != nil {
		return nil, err
	}

	secret, err := body.Hex("secret")
	if err != nil {
		return nil, err
	}

	mosaic, err := decodeMosaic(body, "mosaicId", "amount")
	if err != nil {
		return nil, err
	}

	duration, err := body.Uint64("duration")
	if err != nil {
		return nil, err
	}

	algorithm, err := decodeHashAlgorithm(body)
	if err != nil {
		return nil, err
	}

	return &types.SecretLockTransaction{
		AbstractTransaction: abstract,
		Duration:            duration,
		HashAlgorithm:       algorithm,
		Mosaic:              mosaic,
		Recipient:           recipient,
		Secret:              secret,
	}, nil
}

func decodeSecretProof(abstract types.AbstractTransaction, body document.Document) (*types.SecretProofTransaction, error) {
	recipient, err := decodeUnresolvedAddress(body, "recipientAddress")
	if err != nil {
		return nil, err
	}

	secret, err := body.Hex("secret")
	if err != nil {
		return nil, err
	}

	proof, err := body.Hex("proof")
	if err != nil {
		return nil, err
	}

	algorithm, err := decodeHashAlgorithm(body)
	if err != nil {
		return nil, err
	}

	return &types.SecretProofTransaction{
		AbstractTransaction: abstract,
		HashAlgorithm:       algorithm,
		Proof:               proof,
		Recipient:           recipient,
		Secret:              secret,
	}, nil
}
