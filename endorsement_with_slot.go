package tezosforge

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/anchorageoss/tezosforge/zarith"
)

// EndorsementWithSlot models the tezos endorsement_with_slot operation
// type: a previously broadcast, signed endorsement rebroadcast alongside
// the lowest slot its signer holds, so the chain can credit endorsing
// rewards per slot instead of per signature.
type EndorsementWithSlot struct {
	InlineBranch   BranchID
	EndorsementTag *big.Int
	Level          int32
	Signature      string
	Slot           int16
}

func (e *EndorsementWithSlot) String() string {
	return fmt.Sprintf("%#v", e)
}

// GetTag implements OperationContents.
func (e *EndorsementWithSlot) GetTag() ContentsTag {
	return ContentsTagEndorsementWithSlot
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (e *EndorsementWithSlot) MarshalBinary() ([]byte, error) {
	buf := bytes.Buffer{}
	buf.WriteByte(byte(e.GetTag()))

	inline := bytes.Buffer{}

	branchPrefix, branchBytes, err := Base58CheckDecode(string(e.InlineBranch))
	if err != nil {
		return nil, fmt.Errorf("failed to write branch: %w", err)
	}
	if branchPrefix != PrefixBlockHash {
		return nil, newForgeErrorStr(ErrInvalidArgument, "branch", string(e.InlineBranch), fmt.Errorf("expected a block hash"))
	}
	inline.Write(branchBytes)

	endorsementTag, err := zarith.Encode(e.EndorsementTag)
	if err != nil {
		return nil, fmt.Errorf("failed to write endorsement_tag: %w", err)
	}
	inline.Write(endorsementTag)

	if err := binary.Write(&inline, binary.BigEndian, e.Level); err != nil {
		return nil, fmt.Errorf("failed to write level: %w", err)
	}

	sigPrefix, sigBytes, err := Base58CheckDecode(e.Signature)
	if err != nil {
		return nil, fmt.Errorf("failed to write signature: %w", err)
	}
	if !isSignaturePrefix(sigPrefix) {
		return nil, newForgeErrorStr(ErrInvalidArgument, "signature", e.Signature, fmt.Errorf("expected a signature"))
	}
	inline.Write(sigBytes)

	if err := writeLengthPrefixed(&buf, inline.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to write inline endorsement: %w", err)
	}

	if err := binary.Write(&buf, binary.BigEndian, e.Slot); err != nil {
		return nil, fmt.Errorf("failed to write slot: %w", err)
	}

	return buf.Bytes(), nil
}

func isSignaturePrefix(prefix Base58CheckPrefix) bool {
	switch prefix {
	case PrefixEd25519Signature, PrefixSecp256k1Signature, PrefixP256Signature, PrefixGenericSignature:
		return true
	default:
		return false
	}
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (e *EndorsementWithSlot) UnmarshalBinary(data []byte) (err error) {
	defer func() {
		if err == nil {
			if r := recover(); r != nil {
				err = catchOutOfRangeExceptions(r)
			}
		}
	}()

	dataPtr := data

	tag := ContentsTag(dataPtr[0])
	if tag != ContentsTagEndorsementWithSlot {
		return newForgeErrorStr(ErrInvalidArgument, "tag", "", fmt.Errorf("invalid tag for endorsement_with_slot. Expected %d, saw %d", ContentsTagEndorsementWithSlot, tag))
	}
	dataPtr = dataPtr[1:]

	inline, rest, err := readLengthPrefixed(dataPtr)
	if err != nil {
		return fmt.Errorf("failed to unmarshal inline endorsement: %w", err)
	}
	dataPtr = rest

	branchLen := PrefixBlockHash.PayloadLength()
	if len(inline) < branchLen {
		return newForgeErrorStr(ErrInvalidArgument, "inline_endorsement", "", fmt.Errorf("too few bytes for branch"))
	}
	branchEncoded, err := Base58CheckEncode(PrefixBlockHash, inline[:branchLen])
	if err != nil {
		return fmt.Errorf("failed to unmarshal branch: %w", err)
	}
	e.InlineBranch = BranchID(branchEncoded)
	inline = inline[branchLen:]

	var bytesRead int
	e.EndorsementTag, bytesRead, err = zarith.ReadNext(inline)
	if err != nil {
		return fmt.Errorf("failed to unmarshal endorsement_tag: %w", err)
	}
	inline = inline[bytesRead:]

	e.Level, err = readInt32(inline)
	if err != nil {
		return fmt.Errorf("failed to unmarshal level: %w", err)
	}
	inline = inline[4:]

	sigEncoded, err := Base58CheckEncode(PrefixGenericSignature, inline)
	if err != nil {
		return fmt.Errorf("failed to unmarshal signature: %w", err)
	}
	e.Signature = sigEncoded

	slotBuf := bytes.NewBuffer(dataPtr)
	var slot int16
	if err := binary.Read(slotBuf, binary.BigEndian, &slot); err != nil {
		return fmt.Errorf("failed to unmarshal slot: %w", err)
	}
	e.Slot = slot

	return nil
}
