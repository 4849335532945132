package ralph

import (
	"encoding/hex"
	"math/big"

	"github.com/mr-tron/base58"
)

// EncodeBool encodes a boolean as a single byte.
func EncodeBool(b bool) []byte {
	if b {
		return []byte{1}
	}
	return []byte{0}
}

// EncodeByteVec decodes a hex string and prefixes the raw bytes with their
// length as a compact signed integer.
func EncodeByteVec(hexStr string) ([]byte, error) {
	raw, err := hex.DecodeString(hexStr)
	if err != nil {
		return nil, &FormatError{Kind: "hex", Input: hexStr, Err: err}
	}

	prefix, err := EncodeI256(big.NewInt(int64(len(raw))))
	if err != nil {
		return nil, err
	}
	return append(prefix, raw...), nil
}

// EncodeAddress decodes a base58 address into its raw bytes.
// No length prefix is added; the AddressConst opcode identifies the value.
func EncodeAddress(address string) ([]byte, error) {
	raw, err := base58.Decode(address)
	if err != nil {
		return nil, &FormatError{Kind: "base58", Input: address, Err: err}
	}
	return raw, nil
}
