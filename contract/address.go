// Package contract derives the addresses of contracts created by
// CreateSmartContract transactions.
package contract

import (
	"encoding/hex"
	"errors"
	"fmt"
	"gsc-contract/util/base58"
	"gsc-contract/util/byteutil"
	"gsc-contract/util/hashutil"
	"strings"
)

const (
	// AddressLength is the byte length of account and contract addresses:
	// one network prefix byte followed by 20 hash bytes.
	AddressLength = 21

	// AddressPrefixMainnet is the first byte of every mainnet address.
	AddressPrefixMainnet byte = 0x26

	// addressOffset is where the address starts in the 32-byte digest.
	addressOffset = hashutil.HashLength - AddressLength
)

var (
	// ErrInvalidAddressLength is returned for owner addresses that are not AddressLength bytes.
	ErrInvalidAddressLength = errors.New("invalid address length")

	// ErrEmptyPayload is returned by NewCreation when the transaction raw data is empty.
	ErrEmptyPayload = errors.New("empty transaction raw data")
)

// Address is a 21-byte account or contract address.
type Address [AddressLength]byte

// BytesToAddress converts b to an Address, b must be exactly AddressLength bytes.
func BytesToAddress(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressLength {
		return a, fmt.Errorf("%w: get %d bytes, want %d", ErrInvalidAddressLength, len(b), AddressLength)
	}

	copy(a[:], b)
	return a, nil
}

// ParseAddress accepts the hex form (optionally 0x-prefixed) or the
// Base58Check form of an address.
// E.g., 262daebb11f20b68a2035519a8553b597bb7dbbfa4
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")

	if len(trimmed) == AddressLength*2 {
		if b, err := hex.DecodeString(trimmed); err == nil {
			return BytesToAddress(b)
		}
	}

	b, err := base58.CheckDecode(s)
	if err != nil {
		return Address{}, fmt.Errorf("address %q is neither hex nor base58check: %v", s, err)
	}

	return BytesToAddress(b)
}

// Bytes returns a copy of the address bytes.
func (a Address) Bytes() []byte {
	b := make([]byte, AddressLength)
	copy(b, a[:])
	return b
}

// Hex returns the lower-case hex form without 0x prefix.
func (a Address) Hex() string {
	return hex.EncodeToString(a[:])
}

// Base58 returns the Base58Check form.
func (a Address) Base58() string {
	return base58.CheckEncode(a[:])
}

func (a Address) String() string {
	return a.Hex()
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}

	*a = parsed
	return nil
}

// DeriveAddress computes the address of the contract created by a
// transaction, from the transaction raw data and the creator address:
//
//	keccak256(keccak256(rawData) ++ owner)[11:], first byte set to the mainnet prefix
//
// Both stages use the legacy Keccak-256 chain hash. GSC Java wallet tools
// hash the first stage (and the tx id) with SHA-256, their addresses for the
// same input differ from these.
//
// The owner must be AddressLength bytes. rawData is hashed as is, callers
// decide whether an empty payload is acceptable.
func DeriveAddress(rawData, owner []byte) (Address, error) {
	var addr Address

	if len(owner) != AddressLength {
		return addr, fmt.Errorf("%w: owner has %d bytes, want %d", ErrInvalidAddressLength, len(owner), AddressLength)
	}

	txHash := hashutil.Keccak256(rawData)
	combined := byteutil.Concat(txHash, owner)
	hash := hashutil.Keccak256(combined)

	copy(addr[:], hash[addressOffset:])
	addr[0] = AddressPrefixMainnet

	return addr, nil
}

// TxID returns the transaction id, the hex of keccak256(rawData).
// It differs from the SHA-256 tx id of GSC Java wallet tools, see DeriveAddress.
func TxID(rawData []byte) string {
	return hashutil.Keccak256Hex(rawData)
}
