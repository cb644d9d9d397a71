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

func decodeMultisigAccountModification(
	abstract types.AbstractTransaction,
	body document.Document,
) (*types.MultisigAccountModificationTransaction, error) {
	minApprovalDelta, err := body.Int8("minApprovalDelta")
	if err != nil {
		return nil, err
	}

	minRemovalDelta, err := body.Int8("minRemovalDelta")
	if err != nil {
		return nil, err
	}

	additions, err := decodeUnresolvedAddresses(body, "addressAdditions")
	if err != nil {
		return nil, err
	}

	deletions, err := decodeUnresolvedAddresses(body, "addressDeletions")
	if err != nil {
		return nil, err
	}

	return &types.MultisigAccountModificationTransaction{
		AbstractTransaction: abstract,
		AddressAdditions:    additions,
		AddressDeletions:    deletions,
		MinApprovalDelta:    minApprovalDelta,
		MinRemovalDelta:     minRemovalDelta,
	}, nil
}

func decodeRestrictionFlags(body document.Document) (types.AccountRestrictionFlags, error) {
	flags, err := body.Uint16("restrictionFlags")
	return types.AccountRestrictionFlags(flags), err
}

func decodeAccountAddressRestriction(
	abstract types.AbstractTransaction,
	body document.Document,
) (*types.AccountAddressRestrictionTransaction, error) {
	flags, err := decodeRestrictionFlags(body)
	if err != nil {
		return nil, err
	}

	additions, err := decodeUnresolvedAddresses(body, "restrictionAdditions")
	if err != nil {
		return nil, err
	}

	deletions, err := decodeUnresolvedAddresses(body, "restrictionDeletions")
	if err != nil {
		return nil, err
	}

	return &types.AccountAddressRestrictionTransaction{
		AbstractTransaction: abstract,
		Additions:           additions,
		Deletions:           deletions,
		Flags:               flags,
	}, nil
}

func decodeAccountMosaicRestriction(
	abstract types.AbstractTransaction,
	body document.Document,
) (*types.AccountMosaicRestrictionTransaction, error) {
	flags, err := decodeRestrictionFlags(body)
	if err != nil {
		return nil, err
	}

	additions, err := decodeUnresolvedMosaicIds(body, "restrictionAdditions")
	if err != nil {
		return nil, err
	}

	deletions, err := decodeUnresolvedMosaicIds(body, "restrictionDeletions")
	if err != nil {
		return nil, err
	}

	return &types.AccountMosaicRestrictionTransaction{
		AbstractTransaction: abstract,
		Additions:           additions,
		Deletions:           deletions,
		Flags:               flags,
	}, nil
}

func decodeAccountOperationRestriction(
	abstract types.AbstractTransaction,
	body document.Document,
) (*types.AccountOperationRestrictionTransaction, error) {
	flags, err := decodeRestrictionFlags(body)
	if err != nil {
		return nil, err
	}

	additions, err := decodeOperations(body, "restrictionAdditions")
	if err != nil {
		return nil, err
	}

	deletions, err := decodeOperations(body, "restrictionDeletions")
	if err != nil {
		return nil, err
	}

	return &types.AccountOperationRestrictionTransaction{
		AbstractTransaction: abstract,
		Additions:           additions,
		Deletions:           deletions,
		Flags:               flags,
	}, nil
}

// decodeOperations reads transaction types stored either as integers or as byte-reversed hex strings
func decodeOperations(body document.Document, key string) ([]types.TransactionType, error) {
	values, err := body.OptionalArray(key)
	if err != nil {
		return nil, err
	}

	operations := make([]types.TransactionType, 0, len(values))
	for i, value := range values {
		elementKey := fmt.Sprintf("%s.%d", key, i)

		var operation types.TransactionType
		if hexValue, ok := value.(string); ok {
			if operation, err = types.TransactionTypeFromReversedHex(hexValue); err != nil {
				return nil, body.Field(elementKey, "%s", err)
			}
		} else {
			code, err := body.Int64(elementKey)
			if err != nil {
				return nil, err
			}

			var known bool
			if operation, known = types.TransactionTypeFromValue(code); !known {
				return nil, body.Field(elementKey, "unknown transaction type %d", code)
			}
		}
		operations = append(operations, operation)
	}
	return operations, nil
}

func decodeKeyLink(abstract types.AbstractTransaction, body document.Document) (types.KeyLinkTransaction, error) {
	linkedPublicKey, err := body.Hex("linkedPublicKey")
	if err != nil {
		return types.KeyLinkTransaction{}, err
	}

	action, err := decodeEnum(body, "linkAction", uint8(types.Link))
	if err != nil {
		return types.KeyLinkTransaction{}, err
	}

	return types.KeyLinkTransaction{
		AbstractTransaction: abstract,
		Action:              types.LinkAction(action),
		LinkedPublicKey:     linkedPublicKey,
	}, nil
}

func decodeAccountKeyLink(abstract types.AbstractTransaction, body document.Document) (*types.AccountKeyLinkTransaction, error) {
	keyLink, err := decodeKeyLink(abstract, body)
	if err != nil {
		return nil, err
	}
	return &types.AccountKeyLinkTransaction{KeyLinkTransaction: keyLink}, nil
}

func decodeNodeKeyLink(abstract types.AbstractTransaction, body document.Document) (*types.NodeKeyLinkTransaction, error) {
	keyLink, err := decodeKeyLink(abstract, body)
	if err != nil {
		return nil, err
	}
	return &types.NodeKeyLinkTransaction{KeyLinkTransaction: keyLink}, nil
}

func decodeVrfKeyLink(abstract types.AbstractTransaction, body document.Document) (*types.VrfKeyLinkTransaction, error) {
	keyLink, err := decodeKeyLink(abstract, body)
	if err != nil {
		return nil, err
	}
	return &types.VrfKeyLinkTransaction{KeyLinkTransaction: keyLink}, nil
}

func decodeVotingKeyLink(abstract types.AbstractTransaction, body document.Document) (*types.VotingKeyLinkTransaction, error) {
	keyLink, err := decodeKeyLink(abstract, body)
	if err != nil {
		return nil, err
	}

	startEpoch, err := body.Uint32(epochKey(body, "startEpoch", "startPoint"))
	if err != nil {
		return nil, err
	}

	endEpoch, err := body.Uint32(epochKey(body, "endEpoch", "endPoint"))
	if err != nil {
		return nil, err
	}

	return &types.VotingKeyLinkTransaction{
		KeyLinkTransaction: keyLink,
		EndEpoch:           endEpoch,
		StartEpoch:         startEpoch,
	}, nil
}

// epochKey picks the legacy point field name when a record predates epochs
func epochKey(body document.Document, key, legacyKey string) string {
	if !body.Has(key) && body.Has(legacyKey) {
		return legacyKey
	}
	return key
}
