package zarith

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math/big"

	"golang.org/x/xerrors"
)

// Decode decodes a zarith encoded number from the entire input byte array.
// Assumes the input contains no extra trailing bytes.
func Decode(source []byte) (*big.Int, error) {
	if len(source) == 0 {
		return nil, xerrors.New("expected non-empty byte array")
	}

	// Split input into 8-bit bitstrings
	segments := make([]string, len(source))
	for i, curByte := range source {
		segments[i] = fmt.Sprintf("%08b", curByte)
	}

	// Trim off leading "size" bit from each segment
	for i, segment := range segments {
		segments[i] = segment[1:]
	}

	// Reverse the order of the segments.
	// Source: https://github.com/golang/go/wiki/SliceTricks#reversing
	for i := len(segments)/2 - 1; i >= 0; i-- {
		opp := len(segments) - 1 - i
		segments[i], segments[opp] = segments[opp], segments[i]
	}

	// Concat all the bits
	bitStringBuf := bytes.Buffer{}
	for _, segment := range segments {
		bitStringBuf.WriteString(segment)
	}
	bitString := bitStringBuf.String()

	// Convert from base 2 to base 10
	ret := new(big.Int)
	_, success := ret.SetString(bitString, 2)
	if !success {
		return nil, xerrors.Errorf("failed to parse bit string %s to big.Int", bitString)
	}
	return ret, nil
}

// DecodeHex decodes a zarith encoded number from the entire input hex string.
// Assumes the input contains no extra trailing bytes.
func DecodeHex(source string) (*big.Int, error) {
	decoded, err := hex.DecodeString(source)
	if err != nil {
		return nil, err
	}
	result, err := Decode(decoded)
	return result, err
}

// ReadNext reads the next variable-length zarith number from
// the given byte stream. Returns the zarith number and the count of
// bytes read. Extra bytes are ignored.
func ReadNext(byteStream []byte) (*big.Int, int, error) {
	for n := 0; n < len(byteStream); n++ {
		// if leftmost bit is zero
		if byteStream[n]&uint8(128) == 0 {
			number, err := Decode(byteStream[:n+1])
			return number, n + 1, err
		}
	}
	return nil, -1, xerrors.New("exhausted input while searching for end of next zarith number")
}

// Encode encodes a non-negative number to an unsigned zarith nat.
func Encode(value *big.Int) ([]byte, error) {
	if value == nil {
		value = big.NewInt(0)
	}
	if value.Sign() == -1 {
		return nil, xerrors.Errorf("cannot encode negative integer: %s", value)
	}

	// Convert to base 2 representation
	binaryDigits := value.Text(2)

	// Pad with leading zeros until number of bits is a multiple of 7
	numPaddingBitsRequired := (7*len(binaryDigits) - len(binaryDigits)) % 7
	paddedBinaryDigitsBuffer := bytes.Buffer{}
	for i := 0; i < numPaddingBitsRequired; i++ {
		paddedBinaryDigitsBuffer.WriteString("0")
	}
	paddedBinaryDigitsBuffer.WriteString(binaryDigits)
	paddedBinaryDigits := paddedBinaryDigitsBuffer.String()

	// Split into 7-bit segments
	numSegments := len(paddedBinaryDigits) / 7
	segments := make([]string, numSegments)
	for i := 0; i < numSegments; i++ {
		offset := 7 * i
		segments[i] = paddedBinaryDigits[offset : offset+7]
	}

	// Reverse the order of the segments
	// Source: https://github.com/golang/go/wiki/SliceTricks#reversing
	for i := len(segments)/2 - 1; i >= 0; i-- {
		opp := len(segments) - 1 - i
		segments[i], segments[opp] = segments[opp], segments[i]
	}

	// Prepend a 1 bit to each segment but the last, and a 0 bit to the last
	for i := 0; i < len(segments)-1; i++ {
		segments[i] = "1" + segments[i]
	}
	segments[len(segments)-1] = "0" + segments[len(segments)-1]

	// Concat segments to form the output bitstring
	encodedBitStringBuf := bytes.Buffer{}
	for _, segment := range segments {
		encodedBitStringBuf.WriteString(segment)
	}
	encodedBitString := encodedBitStringBuf.String()

	// Convert from bitstring to byte array
	return bitStringToBytes(encodedBitString), nil
}

// EncodeToHex encodes a non-negative number to an unsigned zarith nat and
// hex-encodes the result.
func EncodeToHex(value *big.Int) (string, error) {
	encoded, err := Encode(value)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(encoded), nil
}

// DecodeSigned decodes a signed zarith int from the entire input byte array.
// Assumes the input contains no extra trailing bytes.
func DecodeSigned(source []byte) (*big.Int, error) {
	value, n, err := ReadNextSigned(source)
	if err != nil {
		return nil, err
	}
	if n != len(source) {
		return nil, xerrors.Errorf("expected no trailing bytes, but %d of %d bytes were unused", len(source)-n, len(source))
	}
	return value, nil
}

// DecodeSignedHex decodes a signed zarith int from the entire input hex
// string. Assumes the input contains no extra trailing bytes.
func DecodeSignedHex(source string) (*big.Int, error) {
	decoded, err := hex.DecodeString(source)
	if err != nil {
		return nil, err
	}
	return DecodeSigned(decoded)
}

// ReadNextSigned reads the next variable-length signed zarith int from the
// given byte stream. The first byte carries the sign in bit 6 and 6 payload
// bits; every following byte carries 7 payload bits, least-significant group
// first. Returns the number and the count of bytes read. Extra bytes are
// ignored.
func ReadNextSigned(byteStream []byte) (*big.Int, int, error) {
	if len(byteStream) == 0 {
		return nil, -1, xerrors.New("exhausted input while searching for end of next zarith number")
	}

	first := byteStream[0]
	negative := first&0x40 != 0
	magnitude := new(big.Int).SetUint64(uint64(first & 0x3f))
	if first&0x80 == 0 {
		return signedMagnitude(magnitude, negative), 1, nil
	}

	shift := uint(6)
	for n := 1; n < len(byteStream); n++ {
		b := byteStream[n]
		chunk := new(big.Int).SetUint64(uint64(b & 0x7f))
		chunk.Lsh(chunk, shift)
		magnitude.Or(magnitude, chunk)
		shift += 7
		if b&0x80 == 0 {
			return signedMagnitude(magnitude, negative), n + 1, nil
		}
	}
	return nil, -1, xerrors.New("exhausted input while searching for end of next zarith number")
}

func signedMagnitude(magnitude *big.Int, negative bool) *big.Int {
	if negative {
		return magnitude.Neg(magnitude)
	}
	return magnitude
}

var signedMask6 = big.NewInt(0x3f)
var signedMask7 = big.NewInt(0x7f)

// EncodeSigned encodes a number to a signed zarith int. Zero always encodes
// as a single 0x00 byte.
func EncodeSigned(value *big.Int) []byte {
	if value == nil {
		value = big.NewInt(0)
	}
	negative := value.Sign() < 0
	magnitude := new(big.Int).Abs(value)

	low6 := new(big.Int).And(magnitude, signedMask6)
	rest := new(big.Int).Rsh(magnitude, 6)

	first := byte(low6.Uint64())
	if negative {
		first |= 0x40
	}
	if rest.Sign() != 0 {
		first |= 0x80
	}
	out := []byte{first}

	for rest.Sign() != 0 {
		chunk := new(big.Int).And(rest, signedMask7)
		rest.Rsh(rest, 7)
		b := byte(chunk.Uint64())
		if rest.Sign() != 0 {
			b |= 0x80
		}
		out = append(out, b)
	}
	return out
}

// EncodeSignedToHex encodes a number to a signed zarith int and hex-encodes
// the result.
func EncodeSignedToHex(value *big.Int) string {
	return hex.EncodeToString(EncodeSigned(value))
}

func bitStringToBytes(bitstring string) []byte {
	bytes := make([]byte, len(bitstring)/8)
	for i := 0; i < len(bitstring); i++ {
		bit := bitstring[i]
		if bit < '0' || bit > '1' {
			panic(xerrors.Errorf("%c is not a bit value", bit))
		}
		bytes[i>>3] |= (bit - '0') << uint(7-i&7)
	}
	return bytes
}
