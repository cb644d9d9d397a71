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

func decodeMosaicDefinition(
	abstract types.AbstractTransaction,
	body document.Document,
) (*types.MosaicDefinitionTransaction, error) {
	mosaicId, err := decodeMosaicId(body, "id")
	if err != nil {
		return nil, err
	}

	nonce, err := body.Uint32("nonce")
	if err != nil {
		return nil, err
	}

	flags, err := body.Uint8("flags")
	if err != nil {
		return nil, err
	}

	divisibility, err := body.Uint8("divisibility")
	if err != nil {
		return nil, err
	}

	duration, err := body.Uint64("duration")
	if err != nil {
		return nil, err
	}

	return &types.MosaicDefinitionTransaction{
		AbstractTransaction: abstract,
		Divisibility:        divisibility,
		Duration:            duration,
		Flags:               types.NewMosaicFlags(flags),
		MosaicId:            mosaicId,
		Nonce:               nonce,
	}, nil
}

func decodeMosaicSupplyChange(
	abstract types.AbstractTransaction,
	body document.Document,
) (*types.MosaicSupplyChangeTransaction, error) {
	mosaicId, err := decodeUnresolvedMosaicId(body, "mosaicId")
	if err != nil {
		return nil, err
	}

	action, err := decodeEnum(body, "action", uint8(types.MosaicSupplyIncrease))
	if err != nil {
		return nil, err
	}

	delta, err := body.Uint64("delta")
	if err != nil {
		return nil, err
	}

	return &types.MosaicSupplyChangeTransaction{
		AbstractTransaction: abstract,
		Action:              types.MosaicSupplyChangeAction(action),
		Delta:               delta,
		MosaicId:            mosaicId,
	}, nil
}

func decodeMosaicAlias(abstract types.AbstractTransaction, body document.Document) (*types.MosaicAliasTransaction, error) {
	namespaceId, err := decodeNamespaceId(body, "namespaceId")
	if err != nil {
		return nil, err
	}

	mosaicId, err := decodeMosaicId(body, "mosaicId")
	if err != nil {
		return nil, err
	}

	action, err := decodeEnum(body, "aliasAction", uint8(types.AliasLink))
	if err != nil {
		return nil, err
	}

	return &types.MosaicAliasTransaction{
		AbstractTransaction: abstract,
		Action:              types.AliasAction(action),
		MosaicId:            mosaicId,
		NamespaceId:         namespaceId,
	}, nil
}

func decodeMosaicGlobalRestriction(
	abstract types.AbstractTransaction,
	body document.Document,
) (*types.MosaicGlobalRestrictionTransaction, error) {
	mosaicId, err := decodeUnresolvedMosaicId(body, "mosaicId")
	if err != nil {
		return nil, err
	}

	referenceMosaicId, err := decodeUnresolvedMosaicId(body, "referenceMosaicId")
	if err != nil {
		return nil, err
	}

	restrictionKey, err := body.Uint64("restrictionKey")
	if err != nil {
		return nil, err
	}

	newValue, err := body.Uint64("newRestrictionValue")
	if err != nil {
		return nil, err
	}

	newType, err := decodeEnum(body, "newRestrictionType", uint8(types.MosaicRestrictionGe))
	if err != nil {
		return nil, err
	}

	hasPreviousType, hasPreviousValue := body.Has("previousRestrictionType"), body.Has("previousRestrictionValue")
	if hasPreviousType != hasPreviousValue {
		if hasPreviousValue {
			return nil, body.Field("previousRestrictionType", "missing while previousRestrictionValue is set")
		}
		return nil, body.Field("previousRestrictionValue", "missing while previousRestrictionType is set")
	}

	previousType := types.MosaicRestrictionNone
	if hasPreviousType {
		value, err := decodeEnum(body, "previousRestrictionType", uint8(types.MosaicRestrictionGe))
		if err != nil {
			return nil, err
		}
		previousType = types.MosaicRestrictionType(value)
	}

	previousValue := types.NoRestrictionValue
	if previousType != types.MosaicRestrictionNone {
		value, err := body.Uint64("previousRestrictionValue")
		if err != nil {
			return nil, err
		}
		previousValue = types.SomeRestrictionValue(value)
	}

	return &types.MosaicGlobalRestrictionTransaction{
		AbstractTransaction:      abstract,
		MosaicId:                 mosaicId,
		NewRestrictionType:       types.MosaicRestrictionType(newType),
		NewRestrictionValue:      newValue,
		PreviousRestrictionType:  previousType,
		PreviousRestrictionValue: previousValue,
		ReferenceMosaicId:        referenceMosaicId,
		RestrictionKey:           restrictionKey,
	}, nil
}

// unsetRestrictionValue marks an address restriction that had no value before the transaction
const unsetRestrictionValue uint64 = 0xFFFFFFFFFFFFFFFF

func decodeMosaicAddressRestriction(
	abstract types.AbstractTransaction,
	body document.Document,
) (*types.MosaicAddressRestrictionTransaction, error) {
	mosaicId, err := decodeUnresolvedMosaicId(body, "mosaicId")
	if err != nil {
		return nil, err
	}

	restrictionKey, err := body.Uint64("restrictionKey")
	if err != nil {
		return nil, err
	}

	targetAddress, err := decodeUnresolvedAddress(body, "targetAddress")
	if err != nil {
		return nil, err
	}

	newValue, err := body.Uint64("newRestrictionValue")
	if err != nil {
		return nil, err
	}

	previousValue := types.NoRestrictionValue
	if body.Has("previousRestrictionValue") {
		value, err := body.Uint64("previousRestrictionValue")
		if err != nil {
			return nil, err
		}
		if value != unsetRestrictionValue {
			previousValue = types.SomeRestrictionValue(value)
		}
	}

	return &types.MosaicAddressRestrictionTransaction{
		AbstractTransaction:      abstract,
		MosaicId:                 mosaicId,
		NewRestrictionValue:      newValue,
		PreviousRestrictionValue: previousValue,
		RestrictionKey:           restrictionKey,
		TargetAddress:            targetAddress,
	}, nil
}
