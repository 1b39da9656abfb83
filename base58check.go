package tezosforge

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// Base58CheckPrefix is an enum that models a base58check prefix used
// specifically by Tezos.
type Base58CheckPrefix int

type base58CheckPrefixInfo struct {
	id            int
	textualPrefix string
	payloadLength int
	prefixBytes   []byte
}

var base58CheckPrefixInfos = map[Base58CheckPrefix]base58CheckPrefixInfo{}

func registerBase58CheckPrefix(info base58CheckPrefixInfo) Base58CheckPrefix {
	if info.payloadLength == 0 {
		panic("no payload length set")
	}
	info.id = len(base58CheckPrefixInfos)
	prefix := Base58CheckPrefix(info.id)
	AllBase58CheckPrefixes = append(AllBase58CheckPrefixes, prefix)
	base58CheckPrefixInfos[prefix] = info
	return prefix
}

// PayloadLength is the number of bytes expected in the base58 encoded
// payload, not counting the prefix or checksum.
func (b Base58CheckPrefix) PayloadLength() int {
	return base58CheckPrefixInfos[b].payloadLength
}

// PrefixBytes are the bytes prepended to the payload before base58 encoding.
func (b Base58CheckPrefix) PrefixBytes() []byte {
	return base58CheckPrefixInfos[b].prefixBytes
}

// String prints a human recognizable textual prefix, e.g. "tz1(36)".
func (b Base58CheckPrefix) String() string {
	info := base58CheckPrefixInfos[b]
	if info.textualPrefix != "" {
		zeros := make([]byte, info.payloadLength)
		zerosStr, err := Base58CheckEncode(b, zeros)
		if err != nil {
			return info.textualPrefix
		}
		return fmt.Sprintf("%s(%d)", info.textualPrefix, len(zerosStr))
	}
	zeros := make([]byte, info.payloadLength)
	zerosStr, err := Base58CheckEncode(b, zeros)
	if err != nil {
		panic(err)
	}
	ones := bytes.Repeat([]byte{255}, info.payloadLength)
	onesStr, err := Base58CheckEncode(b, ones)
	if err != nil {
		panic(err)
	}
	return fmt.Sprintf("%s(%d)", commonPrefix(zerosStr, onesStr), len(zerosStr))
}

func commonPrefix(a string, bs ...string) string {
	prefix := []byte{}
	for i := 0; i < len(a); i++ {
		c := a[i]
		eq := true
		for _, b := range bs {
			if i >= len(b) || b[i] != c {
				eq = false
				break
			}
		}
		if eq {
			prefix = append(prefix, c)
		} else {
			return string(prefix)
		}
	}
	return string(prefix)
}

// Base58Check prefixes. Payload lengths and binary prefix bytes are protocol
// constants; see address.go (CurveTag, ContractIDTag) for the discriminant
// tables layered on top of a few of these (tz1/tz2/tz3, KT1/sr1/txr1).
var (
	// AllBase58CheckPrefixes is the list of all defined base58check prefixes.
	AllBase58CheckPrefixes = []Base58CheckPrefix{}

	PrefixBlockHash = registerBase58CheckPrefix(base58CheckPrefixInfo{
		textualPrefix: "B", payloadLength: 32, prefixBytes: []byte{1, 52},
	})
	PrefixOperationHash = registerBase58CheckPrefix(base58CheckPrefixInfo{
		textualPrefix: "o", payloadLength: 32, prefixBytes: []byte{5, 116},
	})
	PrefixOperationListHash = registerBase58CheckPrefix(base58CheckPrefixInfo{
		payloadLength: 32, prefixBytes: []byte{133, 233},
	})
	PrefixOperationListListHash = registerBase58CheckPrefix(base58CheckPrefixInfo{
		payloadLength: 32, prefixBytes: []byte{29, 159, 109},
	})
	PrefixProtocolHash = registerBase58CheckPrefix(base58CheckPrefixInfo{
		payloadLength: 32, prefixBytes: []byte{2, 170},
	})
	PrefixContextHash = registerBase58CheckPrefix(base58CheckPrefixInfo{
		payloadLength: 32, prefixBytes: []byte{79, 199},
	})
	PrefixEd25519PublicKeyHash = registerBase58CheckPrefix(base58CheckPrefixInfo{
		textualPrefix: "tz1", payloadLength: 20, prefixBytes: []byte{6, 161, 159},
	})
	PrefixSecp256k1PublicKeyHash = registerBase58CheckPrefix(base58CheckPrefixInfo{
		textualPrefix: "tz2", payloadLength: 20, prefixBytes: []byte{6, 161, 161},
	})
	PrefixP256PublicKeyHash = registerBase58CheckPrefix(base58CheckPrefixInfo{
		textualPrefix: "tz3", payloadLength: 20, prefixBytes: []byte{6, 161, 164},
	})
	PrefixCryptoboxPublicKeyHash = registerBase58CheckPrefix(base58CheckPrefixInfo{
		payloadLength: 16, prefixBytes: []byte{153, 103},
	})
	PrefixEd25519Seed = registerBase58CheckPrefix(base58CheckPrefixInfo{
		payloadLength: 32, prefixBytes: []byte{13, 15, 58, 7},
	})
	PrefixEd25519PublicKey = registerBase58CheckPrefix(base58CheckPrefixInfo{
		textualPrefix: "edpk", payloadLength: 32, prefixBytes: []byte{13, 15, 37, 217},
	})
	PrefixSecp256k1SecretKey = registerBase58CheckPrefix(base58CheckPrefixInfo{
		payloadLength: 32, prefixBytes: []byte{17, 162, 224, 201},
	})
	PrefixP256SecretKey = registerBase58CheckPrefix(base58CheckPrefixInfo{
		payloadLength: 32, prefixBytes: []byte{16, 81, 238, 189},
	})
	PrefixEd25519EncryptedSeed = registerBase58CheckPrefix(base58CheckPrefixInfo{
		payloadLength: 56, prefixBytes: []byte{7, 90, 60, 179, 41},
	})
	PrefixSecp256k1EncryptedSecretKey = registerBase58CheckPrefix(base58CheckPrefixInfo{
		payloadLength: 56, prefixBytes: []byte{9, 237, 241, 174, 150},
	})
	PrefixP256EncryptedSecretKey = registerBase58CheckPrefix(base58CheckPrefixInfo{
		payloadLength: 56, prefixBytes: []byte{9, 48, 57, 115, 171},
	})
	PrefixSecp256k1PublicKey = registerBase58CheckPrefix(base58CheckPrefixInfo{
		textualPrefix: "sppk", payloadLength: 33, prefixBytes: []byte{3, 254, 226, 86},
	})
	PrefixP256PublicKey = registerBase58CheckPrefix(base58CheckPrefixInfo{
		textualPrefix: "p2pk", payloadLength: 33, prefixBytes: []byte{3, 178, 139, 127},
	})
	PrefixSecp256k1Scalar = registerBase58CheckPrefix(base58CheckPrefixInfo{
		payloadLength: 33, prefixBytes: []byte{38, 248, 136},
	})
	PrefixSecp256k1Element = registerBase58CheckPrefix(base58CheckPrefixInfo{
		payloadLength: 33, prefixBytes: []byte{5, 92, 0},
	})
	PrefixEd25519SecretKey = registerBase58CheckPrefix(base58CheckPrefixInfo{
		payloadLength: 64, prefixBytes: []byte{43, 246, 78, 7},
	})
	PrefixEd25519Signature = registerBase58CheckPrefix(base58CheckPrefixInfo{
		textualPrefix: "edsig", payloadLength: 64, prefixBytes: []byte{9, 245, 205, 134, 18},
	})
	PrefixSecp256k1Signature = registerBase58CheckPrefix(base58CheckPrefixInfo{
		textualPrefix: "spsig1", payloadLength: 64, prefixBytes: []byte{13, 115, 101, 19, 63},
	})
	PrefixP256Signature = registerBase58CheckPrefix(base58CheckPrefixInfo{
		textualPrefix: "p2sig", payloadLength: 64, prefixBytes: []byte{54, 240, 44, 52},
	})
	PrefixGenericSignature = registerBase58CheckPrefix(base58CheckPrefixInfo{
		textualPrefix: "sig", payloadLength: 64, prefixBytes: []byte{4, 130, 43},
	})
	PrefixChainID = registerBase58CheckPrefix(base58CheckPrefixInfo{
		payloadLength: 4, prefixBytes: []byte{87, 82, 0},
	})
	// PrefixContractHash is for originated (KT1) contract addresses.
	// https://gitlab.com/tezos/tezos/blob/master/src/proto_alpha/lib_protocol/contract_hash.ml#L26
	PrefixContractHash = registerBase58CheckPrefix(base58CheckPrefixInfo{
		textualPrefix: "KT1", payloadLength: 20, prefixBytes: []byte{2, 90, 121},
	})
	// PrefixSmartRollupAddress is for smart-rollup (sr1) addresses.
	PrefixSmartRollupAddress = registerBase58CheckPrefix(base58CheckPrefixInfo{
		textualPrefix: "sr1", payloadLength: 20, prefixBytes: []byte{6, 124, 117},
	})
	// PrefixSmartRollupCommitmentHash is for smart-rollup commitment hashes
	// (src1), used to address cemented commitments in
	// smart_rollup_execute_outbox_message.
	PrefixSmartRollupCommitmentHash = registerBase58CheckPrefix(base58CheckPrefixInfo{
		textualPrefix: "src1", payloadLength: 32, prefixBytes: []byte{17, 144, 21, 100},
	})
	// PrefixTxRollupAddress is for transaction-rollup (txr1) addresses.
	PrefixTxRollupAddress = registerBase58CheckPrefix(base58CheckPrefixInfo{
		textualPrefix: "txr1", payloadLength: 20, prefixBytes: []byte{1, 128, 120, 203},
	})
	// PrefixSmartRollupStateHash is for smart-rollup state hashes (scr1),
	// an alternate smart-rollup discriminant seen in outbox proofs.
	PrefixSmartRollupStateHash = registerBase58CheckPrefix(base58CheckPrefixInfo{
		textualPrefix: "scr1", payloadLength: 32, prefixBytes: []byte{16, 225, 159, 35},
	})
)

func checksum(input []byte) [4]byte {
	h := sha256.Sum256(input)
	h2 := sha256.Sum256(h[:])
	cksum := [4]byte{}
	copy(cksum[:], h2[:4])
	return cksum
}

// Base58CheckEncode encodes the given binary payload to base58check. Prefix
// must be a valid Tezos base58check prefix.
func Base58CheckEncode(b58Prefix Base58CheckPrefix, input []byte) (string, error) {
	lengthExpected := b58Prefix.PayloadLength()
	if len(input) != lengthExpected {
		return "", newForgeErrorStr(ErrInvalidArgument, "payload", fmt.Sprintf("%x", input),
			fmt.Errorf("unexpected payload length: %d != %d", len(input), lengthExpected))
	}

	prefixBytes := b58Prefix.PrefixBytes()
	payload := append(append([]byte{}, prefixBytes...), input...)
	cksum := checksum(payload)
	payload = append(payload, cksum[:]...)
	return base58.Encode(payload), nil
}

// Base58CheckDecode decodes the given base58check string and returns the
// payload and prefix. Errors if the given string does not carry a known
// Tezos prefix, or if the checksum does not match.
func Base58CheckDecode(input string) (Base58CheckPrefix, []byte, error) {
	decoded := base58.Decode(input)

	if len(decoded) < 5 {
		return 0, nil, newForgeErrorStr(ErrInvalidChecksum, "base58", input, fmt.Errorf("not valid base58check"))
	}
	var cksum [4]byte
	copy(cksum[:], decoded[len(decoded)-4:])
	if checksum(decoded[:len(decoded)-4]) != cksum {
		return 0, nil, newForgeErrorStr(ErrInvalidChecksum, "base58", input, fmt.Errorf("checksum mismatch"))
	}
	decoded = decoded[:len(decoded)-4]

	var b58prefix Base58CheckPrefix
	found := false
	for _, candidate := range AllBase58CheckPrefixes {
		binaryPrefix := candidate.PrefixBytes()
		if bytes.HasPrefix(decoded, binaryPrefix) {
			b58prefix = candidate
			decoded = decoded[len(binaryPrefix):]
			found = true
			break
		}
	}
	if !found {
		return 0, nil, newForgeErrorStr(ErrUnknownPrefix, "base58", input, fmt.Errorf("no registered prefix matches"))
	}

	lengthExpected := b58prefix.PayloadLength()
	if len(decoded) != lengthExpected {
		return 0, nil, newForgeErrorStr(ErrInvalidArgument, "base58", input,
			fmt.Errorf("unexpected length for prefix %s: %d != %d", b58prefix, len(decoded), lengthExpected))
	}

	return b58prefix, decoded, nil
}
