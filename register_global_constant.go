package tezosforge

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/anchorageoss/tezosforge/zarith"
)

// RegisterGlobalConstant models the tezos register_global_constant
// operation type, which registers a Micheline expression in global storage
// so later contracts can reference it by index instead of inlining it.
type RegisterGlobalConstant struct {
	Source       ContractID
	Fee          *big.Int
	Counter      *big.Int
	GasLimit     *big.Int
	StorageLimit *big.Int
	Value        MichelineNode
}

func (r *RegisterGlobalConstant) String() string {
	return fmt.Sprintf("%#v", r)
}

// GetTag implements OperationContents.
func (r *RegisterGlobalConstant) GetTag() ContentsTag {
	return ContentsTagRegisterGlobalConstant
}

// GetSource returns the operation's source.
func (r *RegisterGlobalConstant) GetSource() ContractID {
	return r.Source
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (r *RegisterGlobalConstant) MarshalBinary() ([]byte, error) {
	buf := bytes.Buffer{}

	buf.WriteByte(byte(r.GetTag()))

	sourceBytes, err := r.Source.EncodePubKeyHash()
	if err != nil {
		return nil, fmt.Errorf("failed to write source: %w", err)
	}
	buf.Write(sourceBytes)

	fee, err := zarith.Encode(r.Fee)
	if err != nil {
		return nil, fmt.Errorf("failed to write fee: %w", err)
	}
	buf.Write(fee)

	counter, err := zarith.Encode(r.Counter)
	if err != nil {
		return nil, fmt.Errorf("failed to write counter: %w", err)
	}
	buf.Write(counter)

	gasLimit, err := zarith.Encode(r.GasLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to write gas limit: %w", err)
	}
	buf.Write(gasLimit)

	storageLimit, err := zarith.Encode(r.StorageLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to write storage limit: %w", err)
	}
	buf.Write(storageLimit)

	if r.Value == nil {
		return nil, newForgeErrorStr(ErrInvalidArgument, "value", "", fmt.Errorf("value is required"))
	}
	valueBytes, err := r.Value.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to write value: %w", err)
	}
	if err := writeLengthPrefixed(&buf, valueBytes); err != nil {
		return nil, fmt.Errorf("failed to write value: %w", err)
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (r *RegisterGlobalConstant) UnmarshalBinary(data []byte) (err error) {
	defer func() {
		if err == nil {
			if r := recover(); r != nil {
				err = catchOutOfRangeExceptions(r)
			}
		}
	}()

	dataPtr := data

	tag := ContentsTag(dataPtr[0])
	if tag != ContentsTagRegisterGlobalConstant {
		return newForgeErrorStr(ErrInvalidArgument, "tag", "", fmt.Errorf("invalid tag for register_global_constant. Expected %d, saw %d", ContentsTagRegisterGlobalConstant, tag))
	}
	dataPtr = dataPtr[1:]

	if err = r.Source.UnmarshalBinaryTzOnly(dataPtr[:TaggedPubKeyHashLen]); err != nil {
		return fmt.Errorf("failed to unmarshal source: %w", err)
	}
	dataPtr = dataPtr[TaggedPubKeyHashLen:]

	var bytesRead int
	r.Fee, bytesRead, err = zarith.ReadNext(dataPtr)
	if err != nil {
		return fmt.Errorf("failed to unmarshal fee: %w", err)
	}
	dataPtr = dataPtr[bytesRead:]

	r.Counter, bytesRead, err = zarith.ReadNext(dataPtr)
	if err != nil {
		return fmt.Errorf("failed to unmarshal counter: %w", err)
	}
	dataPtr = dataPtr[bytesRead:]

	r.GasLimit, bytesRead, err = zarith.ReadNext(dataPtr)
	if err != nil {
		return fmt.Errorf("failed to unmarshal gas limit: %w", err)
	}
	dataPtr = dataPtr[bytesRead:]

	r.StorageLimit, bytesRead, err = zarith.ReadNext(dataPtr)
	if err != nil {
		return fmt.Errorf("failed to unmarshal storage limit: %w", err)
	}
	dataPtr = dataPtr[bytesRead:]

	valuePayload, rest, err := readLengthPrefixed(dataPtr)
	if err != nil {
		return fmt.Errorf("failed to unmarshal value: %w", err)
	}
	if len(rest) != 0 {
		return newForgeErrorStr(ErrInvalidArgument, "value", "", fmt.Errorf("%d trailing bytes", len(rest)))
	}
	node, n, err := unmarshalMichelineNode(valuePayload)
	if err != nil {
		return fmt.Errorf("failed to unmarshal value: %w", err)
	}
	if n != len(valuePayload) {
		return newForgeErrorStr(ErrInvalidArgument, "value", "", fmt.Errorf("%d trailing bytes", len(valuePayload)-n))
	}
	r.Value = node

	return nil
}
