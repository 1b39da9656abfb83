package tezosforge

import (
	"bytes"
	"fmt"
)

// PubKeyHashTag captures the possible tag values for $public_key_hash.
type PubKeyHashTag byte

// PubKeyHashTag values
const (
	PubKeyHashTagEd25519   PubKeyHashTag = 0
	PubKeyHashTagSecp256k1 PubKeyHashTag = 1
	PubKeyHashTagP256      PubKeyHashTag = 2
)

// PubKeyTag captures the possible tag values for $public_key.
type PubKeyTag byte

// PubKeyTag values
const (
	PubKeyTagEd25519   PubKeyTag = 0
	PubKeyTagSecp256k1 PubKeyTag = 1
	PubKeyTagP256      PubKeyTag = 2
)

// PublicKey encodes a Tezos public key in base58check encoding
// (edpk.../sppk.../p2pk...).
type PublicKey string

// MarshalBinary implements the public_key() primitive: a one-byte curve tag
// followed by the raw key material stripped from the base58check encoding.
func (p PublicKey) MarshalBinary() ([]byte, error) {
	b58prefix, b58decoded, err := Base58CheckDecode(string(p))
	if err != nil {
		return nil, err
	}
	buf := bytes.Buffer{}

	var expectedPkLength int
	switch b58prefix {
	case PrefixEd25519PublicKey:
		expectedPkLength = PubKeyLenEd25519
		buf.WriteByte(byte(PubKeyTagEd25519))
	case PrefixSecp256k1PublicKey:
		expectedPkLength = PubKeyLenSecp256k1
		buf.WriteByte(byte(PubKeyTagSecp256k1))
	case PrefixP256PublicKey:
		expectedPkLength = PubKeyLenP256
		buf.WriteByte(byte(PubKeyTagP256))
	default:
		return nil, newForgeErrorStr(ErrInvalidArgument, "public_key", string(p),
			fmt.Errorf("unexpected base58check prefix %s", b58prefix))
	}

	if len(b58decoded) != expectedPkLength {
		return nil, newForgeErrorStr(ErrInvalidArgument, "public_key", string(p),
			fmt.Errorf("expected %d bytes of key material, saw %d", expectedPkLength, len(b58decoded)))
	}
	buf.Write(b58decoded)
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *PublicKey) UnmarshalBinary(data []byte) error {
	if len(data) < 1 {
		return newForgeErrorStr(ErrInvalidArgument, "public_key", "", fmt.Errorf("too few bytes"))
	}
	pubKeyTag := PubKeyTag(data[0])
	pubKey := data[1:]
	var expectedLength int
	var base58checkPrefix Base58CheckPrefix

	switch pubKeyTag {
	case PubKeyTagEd25519:
		expectedLength = PubKeyLenEd25519
		base58checkPrefix = PrefixEd25519PublicKey
	case PubKeyTagSecp256k1:
		expectedLength = PubKeyLenSecp256k1
		base58checkPrefix = PrefixSecp256k1PublicKey
	case PubKeyTagP256:
		expectedLength = PubKeyLenP256
		base58checkPrefix = PrefixP256PublicKey
	default:
		return newForgeErrorStr(ErrInvalidArgument, "public_key", "", fmt.Errorf("invalid public_key tag %d", pubKeyTag))
	}

	if len(pubKey) < expectedLength {
		return newForgeErrorStr(ErrInvalidArgument, "public_key", "", fmt.Errorf("too few bytes of key material"))
	}
	encoded, err := Base58CheckEncode(base58checkPrefix, pubKey[:expectedLength])
	if err != nil {
		return err
	}
	*p = PublicKey(encoded)
	return nil
}
