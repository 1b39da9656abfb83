package tezosforge

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// ContractIDTag captures the possible tag values for $contract_id.
type ContractIDTag byte

// ContractIDTag values
const (
	// ContractIDTagImplicit is the tag for implicit accounts (tz1/tz2/tz3).
	ContractIDTagImplicit ContractIDTag = 0
	// ContractIDTagOriginated is the tag for originated accounts (KT1).
	ContractIDTagOriginated ContractIDTag = 1
	// ContractIDTagSmartRollup is the tag for smart-rollup addresses (sr1).
	ContractIDTagSmartRollup ContractIDTag = 2
	// ContractIDTagTxRollup is the tag for transaction-rollup addresses (txr1).
	ContractIDTagTxRollup ContractIDTag = 3
)

// CurveTag captures the one-byte curve discriminant shared by
// $public_key_hash and the tz_only form of $contract_id.
type CurveTag byte

// CurveTag values
const (
	CurveTagEd25519   CurveTag = 0
	CurveTagSecp256k1 CurveTag = 1
	CurveTagP256      CurveTag = 2
)

// AccountType is either an implicit account or an originated account.
type AccountType string

// AccountType values
const (
	AccountTypeImplicit   AccountType = "implicit"
	AccountTypeOriginated AccountType = "originated"
)

// ContractID encodes a Tezos account or contract address in base58check
// form (tz1/tz2/tz3/KT1/sr1/txr1).
type ContractID string

// DeriveOriginatedAddress computes the KT1 address that an origination
// operation with the given hash would create, disambiguated by nonce (0 for
// the first account originated by the operation, 1 for the second, ...).
// This mirrors what a node reports as "originated contracts" once an
// origination confirms; it is not needed to forge the origination itself.
func DeriveOriginatedAddress(operationHash OperationHash, nonce uint32) (ContractID, error) {
	contractHash, err := blake2b.New(ContractHashLen, nil)
	if err != nil {
		return "", err
	}

	operationHashBytes, err := operationHash.MarshalBinary()
	if err != nil {
		return "", err
	}
	if _, err := contractHash.Write(operationHashBytes); err != nil {
		return "", err
	}

	nonceBuf := new(bytes.Buffer)
	if err := binary.Write(nonceBuf, binary.BigEndian, nonce); err != nil {
		return "", err
	}
	if _, err := contractHash.Write(nonceBuf.Bytes()); err != nil {
		return "", err
	}

	encoded, err := Base58CheckEncode(PrefixContractHash, contractHash.Sum(nil))
	if err != nil {
		return "", newForgeErrorStr(ErrInvalidArgument, "operationHash", string(operationHash), err)
	}
	return ContractID(encoded), nil
}

// MarshalBinary implements the address() primitive with tz_only=false:
// distinguishes implicit, originated, smart-rollup, and tx-rollup addresses
// and emits the corresponding discriminant-tagged payload.
func (c ContractID) MarshalBinary() ([]byte, error) {
	b58prefix, b58decoded, err := Base58CheckDecode(string(c))
	if err != nil {
		return nil, err
	}

	buf := bytes.Buffer{}
	switch b58prefix {
	case PrefixEd25519PublicKeyHash, PrefixSecp256k1PublicKeyHash, PrefixP256PublicKeyHash:
		buf.WriteByte(byte(ContractIDTagImplicit))
		buf.WriteByte(byte(curveTagForPubKeyHashPrefix(b58prefix)))
		if len(b58decoded) != PubKeyHashLen {
			return nil, newForgeErrorStr(ErrInvalidArgument, "address", string(c),
				fmt.Errorf("expected %d bytes for public key hash, saw %d", PubKeyHashLen, len(b58decoded)))
		}
		buf.Write(b58decoded)

	case PrefixContractHash:
		buf.WriteByte(byte(ContractIDTagOriginated))
		if len(b58decoded) != ContractHashLen {
			return nil, newForgeErrorStr(ErrInvalidArgument, "address", string(c),
				fmt.Errorf("expected %d bytes for contract hash, saw %d", ContractHashLen, len(b58decoded)))
		}
		buf.Write(b58decoded)
		buf.WriteByte(0) // padding

	case PrefixSmartRollupAddress:
		buf.WriteByte(byte(ContractIDTagSmartRollup))
		buf.Write(b58decoded)

	case PrefixTxRollupAddress:
		buf.WriteByte(byte(ContractIDTagTxRollup))
		buf.Write(b58decoded)

	default:
		return nil, newForgeErrorStr(ErrInvalidArgument, "address", string(c),
			fmt.Errorf("unsupported base58check prefix %s", b58prefix))
	}

	return buf.Bytes(), nil
}

// MarshalBinaryTzOnly implements the address() primitive with tz_only=true:
// the input must be an implicit manager key hash (tz1/tz2/tz3), encoded as a
// one-byte curve tag followed by the 20-byte hash, with no contract_id
// discriminant byte.
func (c ContractID) MarshalBinaryTzOnly() ([]byte, error) {
	b58prefix, b58decoded, err := Base58CheckDecode(string(c))
	if err != nil {
		return nil, err
	}
	switch b58prefix {
	case PrefixEd25519PublicKeyHash, PrefixSecp256k1PublicKeyHash, PrefixP256PublicKeyHash:
		buf := bytes.Buffer{}
		buf.WriteByte(byte(curveTagForPubKeyHashPrefix(b58prefix)))
		buf.Write(b58decoded)
		return buf.Bytes(), nil
	default:
		return nil, newForgeErrorStr(ErrInvalidArgument, "address", string(c),
			fmt.Errorf("tz_only address must be tz1/tz2/tz3, got prefix %s", b58prefix))
	}
}

func curveTagForPubKeyHashPrefix(prefix Base58CheckPrefix) CurveTag {
	switch prefix {
	case PrefixEd25519PublicKeyHash:
		return CurveTagEd25519
	case PrefixSecp256k1PublicKeyHash:
		return CurveTagSecp256k1
	case PrefixP256PublicKeyHash:
		return CurveTagP256
	default:
		panic(fmt.Sprintf("not a public key hash prefix: %s", prefix))
	}
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It is the
// counterpart to MarshalBinary: the input must be a tag-prefixed
// $contract_id (implicit, originated, smart-rollup, or tx-rollup), never a
// bare $public_key_hash. Fields that are always a bare tz_only
// $public_key_hash (an operation's source, a delegate) must unmarshal via
// UnmarshalBinaryTzOnly instead: a bare $public_key_hash and a tagged
// smart-rollup/tx-rollup $contract_id are both exactly 21 bytes, and
// ContractIDTagSmartRollup (2) numerically collides with CurveTagP256 (also
// 2), so nothing in the bytes themselves says which grammar is meant — only
// the field's own protocol definition does.
func (c *ContractID) UnmarshalBinary(data []byte) error {
	contractID, n, err := unmarshalContractID(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return newForgeErrorStr(ErrInvalidArgument, "contract_id", "", fmt.Errorf("%d trailing bytes", len(data)-n))
	}
	*c = contractID
	return nil
}

// UnmarshalBinaryTzOnly implements the address() primitive with
// tz_only=true, the counterpart to MarshalBinaryTzOnly: exactly 21 bytes, a
// one-byte curve tag followed by the 20-byte hash, with no $contract_id
// discriminant byte.
func (c *ContractID) UnmarshalBinaryTzOnly(data []byte) error {
	if len(data) != TaggedPubKeyHashLen {
		return newForgeErrorStr(ErrInvalidArgument, "contract_id", "", fmt.Errorf("expected %d bytes, got %d", TaggedPubKeyHashLen, len(data)))
	}
	return c.unmarshalPubKeyHash(CurveTag(data[0]), data[1:])
}

// unmarshalContractID reads a tagged $contract_id from the front of data,
// using the tag byte at data[0] to determine the encoding's total length
// (22 bytes for implicit/originated, 21 for smart-rollup/tx-rollup, since
// those carry a bare 20-byte hash with no curve tag or padding byte), and
// returns the number of bytes consumed.
func unmarshalContractID(data []byte) (ContractID, int, error) {
	if len(data) < 1 {
		return "", 0, newForgeErrorStr(ErrInvalidArgument, "contract_id", "", fmt.Errorf("empty input"))
	}

	switch ContractIDTag(data[0]) {
	case ContractIDTagImplicit:
		if len(data) < ContractIDLen {
			return "", 0, newForgeErrorStr(ErrInvalidArgument, "contract_id", "", fmt.Errorf("expected %d bytes, got %d", ContractIDLen, len(data)))
		}
		var c ContractID
		if err := c.unmarshalPubKeyHash(CurveTag(data[1]), data[2:ContractIDLen]); err != nil {
			return "", 0, err
		}
		return c, ContractIDLen, nil
	case ContractIDTagOriginated:
		if len(data) < ContractIDLen {
			return "", 0, newForgeErrorStr(ErrInvalidArgument, "contract_id", "", fmt.Errorf("expected %d bytes, got %d", ContractIDLen, len(data)))
		}
		contractHash := data[1 : 1+ContractHashLen]
		encoded, err := Base58CheckEncode(PrefixContractHash, contractHash)
		return ContractID(encoded), ContractIDLen, err
	case ContractIDTagSmartRollup:
		const taggedLen = 1 + ContractHashLen
		if len(data) < taggedLen {
			return "", 0, newForgeErrorStr(ErrInvalidArgument, "contract_id", "", fmt.Errorf("expected %d bytes, got %d", taggedLen, len(data)))
		}
		encoded, err := Base58CheckEncode(PrefixSmartRollupAddress, data[1:taggedLen])
		return ContractID(encoded), taggedLen, err
	case ContractIDTagTxRollup:
		const taggedLen = 1 + ContractHashLen
		if len(data) < taggedLen {
			return "", 0, newForgeErrorStr(ErrInvalidArgument, "contract_id", "", fmt.Errorf("expected %d bytes, got %d", taggedLen, len(data)))
		}
		encoded, err := Base58CheckEncode(PrefixTxRollupAddress, data[1:taggedLen])
		return ContractID(encoded), taggedLen, err
	default:
		return "", 0, newForgeErrorStr(ErrInvalidArgument, "contract_id", "", fmt.Errorf("unexpected tag %d", data[0]))
	}
}

func (c *ContractID) unmarshalPubKeyHash(curveTag CurveTag, pubKeyHash []byte) error {
	var prefix Base58CheckPrefix
	switch curveTag {
	case CurveTagEd25519:
		prefix = PrefixEd25519PublicKeyHash
	case CurveTagSecp256k1:
		prefix = PrefixSecp256k1PublicKeyHash
	case CurveTagP256:
		prefix = PrefixP256PublicKeyHash
	default:
		return newForgeErrorStr(ErrInvalidArgument, "contract_id", "", fmt.Errorf("unexpected curve tag %d", curveTag))
	}
	encoded, err := Base58CheckEncode(prefix, pubKeyHash)
	*c = ContractID(encoded)
	return err
}

// EncodePubKeyHash returns the public key hash bytes corresponding to this
// contract ID, for implicit addresses only.
func (c ContractID) EncodePubKeyHash() ([]byte, error) {
	accountType, err := c.AccountType()
	if err != nil {
		return nil, err
	}
	if accountType != AccountTypeImplicit {
		return nil, newForgeErrorStr(ErrInvalidArgument, "address", string(c), fmt.Errorf("not an implicit account"))
	}
	binaryEncoded, err := c.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return binaryEncoded[1:], nil
}

// AccountType returns the account type represented by this contract ID.
func (c ContractID) AccountType() (AccountType, error) {
	b58prefix, _, err := Base58CheckDecode(string(c))
	if err != nil {
		return "", err
	}
	switch b58prefix {
	case PrefixEd25519PublicKeyHash, PrefixSecp256k1PublicKeyHash, PrefixP256PublicKeyHash:
		return AccountTypeImplicit, nil
	case PrefixContractHash, PrefixSmartRollupAddress, PrefixTxRollupAddress:
		return AccountTypeOriginated, nil
	default:
		return "", newForgeErrorStr(ErrInvalidArgument, "address", string(c), fmt.Errorf("unknown contract type"))
	}
}
