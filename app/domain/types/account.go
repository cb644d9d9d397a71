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
	"bytes"
	"encoding/base32"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/ripemd160" // #nosec G507 -- address format mandates ripemd160
	"golang.org/x/crypto/sha3"
)

const (
	AddressSize          = 24
	addressChecksumSize  = 3
	namespaceAliasFlag   = 0x01
	namespaceIdFlag      = uint64(1) << 63
	PublicKeySize        = 32
	ripemd160DigestSize  = 20
	aliasAddressIdOffset = 1
)

var addressEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// MosaicId identifies a mosaic definition
type MosaicId uint64

func (m MosaicId) String() string {
	return fmt.Sprintf("%016X", uint64(m))
}

func (MosaicId) isUnresolvedMosaicId() {}

// NamespaceId identifies a namespace. A NamespaceId can stand in for an address or a mosaic id as an alias.
type NamespaceId uint64

func (n NamespaceId) String() string {
	return fmt.Sprintf("%016X", uint64(n))
}

func (NamespaceId) isUnresolvedAddress()  {}
func (NamespaceId) isUnresolvedMosaicId() {}

// UnresolvedMosaicId is either a MosaicId or a NamespaceId aliasing a mosaic
type UnresolvedMosaicId interface {
	fmt.Stringer
	isUnresolvedMosaicId()
}

// NewUnresolvedMosaicId returns a NamespaceId when the namespace flag bit is set and a MosaicId otherwise
func NewUnresolvedMosaicId(value uint64) UnresolvedMosaicId {
	if value&namespaceIdFlag != 0 {
		return NamespaceId(value)
	}
	return MosaicId(value)
}

// UnresolvedAddress is either an Address or a NamespaceId aliasing an address
type UnresolvedAddress interface {
	fmt.Stringer
	isUnresolvedAddress()
}

// Address is a decoded account address
type Address struct {
	raw [AddressSize]byte
}

func (Address) isUnresolvedAddress() {}

// NewAddressFromRaw creates an Address from its raw bytes
func NewAddressFromRaw(raw []byte) (Address, error) {
	var address Address
	if len(raw) != AddressSize {
		return address, fmt.Errorf("address must be %d bytes, got %d", AddressSize, len(raw))
	}

	copy(address.raw[:], raw)
	return address, nil
}

// NewAddressFromEncoded creates an Address from its hex encoded form
func NewAddressFromEncoded(encoded string) (Address, error) {
	raw, err := hex.DecodeString(encoded)
	if err != nil {
		return Address{}, fmt.Errorf("invalid encoded address %q", encoded)
	}
	return NewAddressFromRaw(raw)
}

// NewAddressFromPlain creates an Address from its base32 form, dashes are ignored
func NewAddressFromPlain(plain string) (Address, error) {
	raw, err := addressEncoding.DecodeString(strings.ToUpper(strings.ReplaceAll(plain, "-", "")))
	if err != nil {
		return Address{}, fmt.Errorf("invalid plain address %q", plain)
	}
	return NewAddressFromRaw(raw)
}

// NewAddressFromPublicKey derives the address of the public key on the network
func NewAddressFromPublicKey(publicKey []byte, network NetworkType) (Address, error) {
	if len(publicKey) != PublicKeySize {
		return Address{}, fmt.Errorf("public key must be %d bytes, got %d", PublicKeySize, len(publicKey))
	}

	keyHash := sha3.Sum256(publicKey)
	hasher := ripemd160.New()
	hasher.Write(keyHash[:])

	var address Address
	address.raw[0] = byte(network)
	copy(address.raw[1:], hasher.Sum(nil))
	checksum := sha3.Sum256(address.raw[:1+ripemd160DigestSize])
	copy(address.raw[1+ripemd160DigestSize:], checksum[:addressChecksumSize])
	return address, nil
}

// NetworkType returns the network the address belongs to
func (a Address) NetworkType() NetworkType {
	return NetworkType(a.raw[0])
}

// Plain returns the base32 form of the address
func (a Address) Plain() string {
	return addressEncoding.EncodeToString(a.raw[:])
}

// Encoded returns the upper case hex form of the address
func (a Address) Encoded() string {
	return strings.ToUpper(hex.EncodeToString(a.raw[:]))
}

func (a Address) Bytes() []byte {
	return bytes.Clone(a.raw[:])
}

func (a Address) String() string {
	return a.Plain()
}

// NewUnresolvedAddressFromRaw decodes raw unresolved address bytes. When the namespace alias flag is set in the
// first byte, the following eight bytes hold the little endian namespace id.
func NewUnresolvedAddressFromRaw(raw []byte) (UnresolvedAddress, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("unresolved address is empty")
	}

	if raw[0]&namespaceAliasFlag != 0 {
		if len(raw) < aliasAddressIdOffset+8 {
			return nil, fmt.Errorf("namespace alias address too short: %d bytes", len(raw))
		}
		return NamespaceId(binary.LittleEndian.Uint64(raw[aliasAddressIdOffset : aliasAddressIdOffset+8])), nil
	}

	return NewAddressFromRaw(raw)
}

// PublicAccount is a public key together with the address it derives on a network
type PublicAccount struct {
	PublicKey string
	Address   Address
}

// NewPublicAccount creates a PublicAccount from a hex encoded public key
func NewPublicAccount(publicKey string, network NetworkType) (PublicAccount, error) {
	raw, err := hex.DecodeString(publicKey)
	if err != nil {
		return PublicAccount{}, fmt.Errorf("invalid public key %q", publicKey)
	}

	address, err := NewAddressFromPublicKey(raw, network)
	if err != nil {
		return PublicAccount{}, err
	}

	return PublicAccount{PublicKey: strings.ToUpper(publicKey), Address: address}, nil
}
