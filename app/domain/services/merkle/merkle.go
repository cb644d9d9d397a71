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

package merkle

import (
	"encoding/hex"
	"strings"

	"github.com/nemtech/symbol-direct-connect/app/domain/types"
	hErrors "github.com/nemtech/symbol-direct-connect/app/errors"
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

// hashPair hashes two nodes of the same level into their parent
func hashPair(left, right []byte) []byte {
	record := make([]byte, 0, len(left)+len(right))
	record = append(record, left...)
	record = append(record, right...)
	digest := sha3.Sum256(record)
	return digest[:]
}

// FullTree computes the flattened tree from the leaves.
//
// structure is:
//  1. N * leaf hashes
//  2. level 1..m hashes
//  3. root hash
//
// The last node of an odd level is hashed with itself.
func FullTree(leaves [][]byte) [][]byte {
	leafCount := len(leaves)
	if leafCount == 0 {
		return nil
	}

	totalLength := 1
	for n := leafCount; n > 1; n = (n + 1) / 2 {
		totalLength += n
	}

	tree := make([][]byte, totalLength)
	copy(tree, leaves)

	n := leafCount
	j := 0
	for levelLength := leafCount; levelLength > 1; levelLength = (levelLength + 1) / 2 {
		for i := 0; i < levelLength; i += 2 {
			k := j + 1
			if i+1 == levelLength {
				k = j // odd level
			}
			tree[n] = hashPair(tree[j], tree[k])
			n++
			j = k + 1
		}
	}
	return tree
}

// Root computes the root hash of the hex encoded leaves
func Root(leaves []string) (string, error) {
	decoded, err := decodeHashes(leaves)
	if err != nil {
		return "", err
	}

	tree := FullTree(decoded)
	if tree == nil {
		return "", hErrors.ErrEmptyMerkleTree
	}
	return encodeHash(tree[len(tree)-1]), nil
}

// BuildAuditPath returns the sibling hashes needed to recompute the root from the target leaf. At every level the
// sibling of node i is i-1 (LEFT) when i is odd and i+1 (RIGHT) when i is even. The unpaired last node of an odd
// level has no sibling in the tree and contributes no path item; it is hashed with itself. Target and leaves are
// hex encoded hashes, so leaves that are not hex fail the call even when the target is among them.
func BuildAuditPath(target string, leaves []string) ([]types.MerklePathItem, error) {
	if len(leaves) == 0 {
		return nil, errors.Wrap(hErrors.ErrHashNotFound, hErrors.ErrEmptyMerkleTree.Error())
	}

	index := indexOf(target, leaves)
	if index == -1 {
		return nil, errors.Wrapf(hErrors.ErrHashNotFound, "hash %s", target)
	}

	decoded, err := decodeHashes(leaves)
	if err != nil {
		return nil, err
	}
	tree := FullTree(decoded)

	path := make([]types.MerklePathItem, 0)
	start := 0
	for count := len(leaves); count > 1; count = (count + 1) / 2 {
		sibling := index ^ 1
		if sibling < count {
			position := types.MerklePositionRight
			if index%2 == 1 {
				position = types.MerklePositionLeft
			}
			path = append(path, types.MerklePathItem{Hash: encodeHash(tree[start+sibling]), Position: position})
		}

		start += count
		index /= 2
	}

	return path, nil
}

// VerifyAuditPath recomputes the root from the leaf at index of a tree with leafCount leaves and compares it with
// root
func VerifyAuditPath(leaf string, index, leafCount int, path []types.MerklePathItem, root string) (bool, error) {
	if index < 0 || index >= leafCount {
		return false, errors.Errorf("leaf index %d out of range for %d leaves", index, leafCount)
	}

	hash, err := hex.DecodeString(leaf)
	if err != nil {
		return false, errors.Wrapf(err, "invalid leaf hash %s", leaf)
	}

	used := 0
	for count := leafCount; count > 1; count = (count + 1) / 2 {
		if index^1 < count {
			if used == len(path) {
				return false, nil
			}

			item := path[used]
			used++
			sibling, err := hex.DecodeString(item.Hash)
			if err != nil {
				return false, errors.Wrapf(err, "invalid path hash %s", item.Hash)
			}

			if item.Position == types.MerklePositionLeft {
				hash = hashPair(sibling, hash)
			} else {
				hash = hashPair(hash, sibling)
			}
		} else {
			hash = hashPair(hash, hash)
		}
		index /= 2
	}

	return used == len(path) && strings.EqualFold(encodeHash(hash), root), nil
}

func indexOf(target string, leaves []string) int {
	for i, leaf := range leaves {
		if strings.EqualFold(leaf, target) {
			return i
		}
	}
	return -1
}

func decodeHashes(hashes []string) ([][]byte, error) {
	decoded := make([][]byte, len(hashes))
	for i, hash := range hashes {
		value, err := hex.DecodeString(hash)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid merkle hash %s", hash)
		}
		decoded[i] = value
	}
	return decoded, nil
}

func encodeHash(hash []byte) string {
	return strings.ToUpper(hex.EncodeToString(hash))
}
