package ralph

import (
	"math/big"

	"github.com/holiman/uint256"
)

// Compact integer size class prefixes. The two most significant bits of the
// first byte select the class.
const (
	oneBytePrefix      = 0x00
	oneByteNegPrefix   = 0xc0
	twoBytePrefix      = 0x40
	twoByteNegPrefix   = 0x80
	fourBytePrefix     = 0x80
	fourByteNegPrefix  = 0x40
	multiBytePrefix    = 0xc0
	compactPrefixMask  = 0xc0
	compactPayloadMask = 0x3f
)

// Size class bounds. Signed bounds are one bit narrower to leave room for the sign.
const (
	unsignedOneByteBound  = 0x40
	unsignedTwoByteBound  = unsignedOneByteBound << 8
	unsignedFourByteBound = unsignedOneByteBound << 24

	signedOneByteBound  = 0x20
	signedTwoByteBound  = signedOneByteBound << 8
	signedFourByteBound = signedOneByteBound << 24
)

// MaxCompactPayload is the largest payload of a multi-byte compact integer.
const MaxCompactPayload = 32

// EncodeU256 encodes an unsigned 256-bit integer as a compact integer.
// Values below zero or at or above 2^256 fail with *RangeError.
func EncodeU256(v *big.Int) ([]byte, error) {
	if v.Sign() < 0 || v.BitLen() > 256 {
		return nil, &RangeError{Type: "U256", Value: new(big.Int).Set(v)}
	}

	if v.IsUint64() && v.Uint64() < unsignedFourByteBound {
		n := v.Uint64()
		switch {
		case n < unsignedOneByteBound:
			return []byte{byte(n) + oneBytePrefix}, nil
		case n < unsignedTwoByteBound:
			return []byte{byte(n>>8) + twoBytePrefix, byte(n)}, nil
		default:
			return []byte{byte(n>>24) + fourBytePrefix, byte(n >> 16), byte(n >> 8), byte(n)}, nil
		}
	}

	mag, _ := uint256.FromBig(v)
	return encodeMultiByte(mag, false, false), nil
}

// EncodeI256 encodes a signed 256-bit integer as a compact integer.
// Values outside [-2^255, 2^255) fail with *RangeError.
func EncodeI256(v *big.Int) ([]byte, error) {
	if v.Sign() >= 0 {
		return encodeI256Positive(v)
	}
	return encodeI256Negative(v)
}

func encodeI256Positive(v *big.Int) ([]byte, error) {
	if v.IsInt64() && v.Int64() < signedFourByteBound {
		n := v.Int64()
		switch {
		case n < signedOneByteBound:
			return []byte{byte(n) + oneBytePrefix}, nil
		case n < signedTwoByteBound:
			return []byte{byte(n>>8) + twoBytePrefix, byte(n)}, nil
		default:
			return []byte{byte(n>>24) + fourBytePrefix, byte(n >> 16), byte(n >> 8), byte(n)}, nil
		}
	}

	if v.BitLen() > 255 {
		return nil, &RangeError{Type: "I256", Value: new(big.Int).Set(v)}
	}
	mag, _ := uint256.FromBig(v)
	return encodeMultiByte(mag, true, false), nil
}

func encodeI256Negative(v *big.Int) ([]byte, error) {
	if v.IsInt64() && v.Int64() >= -signedFourByteBound {
		n := v.Int64()
		switch {
		case n >= -signedOneByteBound:
			return []byte{byte(n ^ oneByteNegPrefix)}, nil
		case n >= -signedTwoByteBound:
			return []byte{byte((n >> 8) ^ twoByteNegPrefix), byte(n)}, nil
		default:
			return []byte{byte((n >> 24) ^ fourByteNegPrefix), byte(n >> 16), byte(n >> 8), byte(n)}, nil
		}
	}

	// ~v = -v-1 is non-negative; its encoding is inverted byte by byte.
	not := new(big.Int).Not(v)
	if not.BitLen() > 255 {
		return nil, &RangeError{Type: "I256", Value: new(big.Int).Set(v)}
	}
	mag, _ := uint256.FromBig(not)
	return encodeMultiByte(mag, true, true), nil
}

// encodeMultiByte writes the header 0xc0+(n-4) followed by the n big-endian
// bytes of mag. Signed payloads keep their top bit clear before inversion.
func encodeMultiByte(mag *uint256.Int, signed, invert bool) []byte {
	payload := mag.Bytes()
	if signed && payload[0]&0x80 != 0 {
		payload = append([]byte{0x00}, payload...)
	}

	out := make([]byte, 1+len(payload))
	out[0] = byte(len(payload)-4) + multiBytePrefix
	for i, b := range payload {
		if invert {
			b = ^b
		}
		out[1+i] = b
	}
	return out
}

// DecodeU256 decodes a compact unsigned integer from the start of data.
// It returns the value and the number of bytes consumed.
func DecodeU256(data []byte) (*big.Int, int, error) {
	if len(data) == 0 {
		return nil, 0, ErrTruncated
	}

	b0 := data[0]
	switch b0 & compactPrefixMask {
	case oneBytePrefix:
		return big.NewInt(int64(b0 & compactPayloadMask)), 1, nil

	case twoBytePrefix:
		if len(data) < 2 {
			return nil, 0, ErrTruncated
		}
		n := uint64(b0&compactPayloadMask)<<8 | uint64(data[1])
		return new(big.Int).SetUint64(n), 2, nil

	case fourBytePrefix:
		if len(data) < 4 {
			return nil, 0, ErrTruncated
		}
		n := uint64(b0&compactPayloadMask)<<24 | uint64(data[1])<<16 | uint64(data[2])<<8 | uint64(data[3])
		return new(big.Int).SetUint64(n), 4, nil

	default:
		payload, err := multiBytePayload(data)
		if err != nil {
			return nil, 0, err
		}
		return new(uint256.Int).SetBytes(payload).ToBig(), 1 + len(payload), nil
	}
}

// DecodeI256 decodes a compact signed integer from the start of data.
// It returns the value and the number of bytes consumed.
func DecodeI256(data []byte) (*big.Int, int, error) {
	if len(data) == 0 {
		return nil, 0, ErrTruncated
	}

	b0 := data[0]
	switch b0 & compactPrefixMask {
	case oneBytePrefix:
		return big.NewInt(signExtend(int64(b0&compactPayloadMask), 6)), 1, nil

	case twoBytePrefix:
		if len(data) < 2 {
			return nil, 0, ErrTruncated
		}
		n := int64(b0&compactPayloadMask)<<8 | int64(data[1])
		return big.NewInt(signExtend(n, 14)), 2, nil

	case fourBytePrefix:
		if len(data) < 4 {
			return nil, 0, ErrTruncated
		}
		n := int64(b0&compactPayloadMask)<<24 | int64(data[1])<<16 | int64(data[2])<<8 | int64(data[3])
		return big.NewInt(signExtend(n, 30)), 4, nil

	default:
		payload, err := multiBytePayload(data)
		if err != nil {
			return nil, 0, err
		}
		v := new(big.Int).SetBytes(payload)
		if payload[0]&0x80 != 0 {
			v.Sub(v, new(big.Int).Lsh(big.NewInt(1), uint(8*len(payload))))
		}
		return v, 1 + len(payload), nil
	}
}

func multiBytePayload(data []byte) ([]byte, error) {
	n := int(data[0]&compactPayloadMask) + 4
	if n > MaxCompactPayload {
		return nil, ErrInvalidHeader
	}
	if len(data) < 1+n {
		return nil, ErrTruncated
	}
	return data[1 : 1+n], nil
}

// signExtend interprets the low bits of n as a two's complement number.
func signExtend(n int64, bits uint) int64 {
	if n&(1<<(bits-1)) != 0 {
		return n - 1<<bits
	}
	return n
}
