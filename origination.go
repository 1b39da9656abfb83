package tezosforge

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/anchorageoss/tezosforge/zarith"
)

// Origination models the tezos origination operation type.
type Origination struct {
	Source       ContractID
	Fee          *big.Int
	Counter      *big.Int
	GasLimit     *big.Int
	StorageLimit *big.Int
	Balance      *big.Int
	Delegate     *ContractID
	Script       ContractScript
}

func (o *Origination) String() string {
	return fmt.Sprintf("%#v", o)
}

// GetTag implements OperationContents.
func (o *Origination) GetTag() ContentsTag {
	return ContentsTagOrigination
}

// GetSource returns the operation's source.
func (o *Origination) GetSource() ContractID {
	return o.Source
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (o *Origination) MarshalBinary() ([]byte, error) {
	buf := bytes.Buffer{}

	buf.WriteByte(byte(o.GetTag()))

	sourceBytes, err := o.Source.EncodePubKeyHash()
	if err != nil {
		return nil, fmt.Errorf("failed to write source: %w", err)
	}
	buf.Write(sourceBytes)

	fee, err := zarith.Encode(o.Fee)
	if err != nil {
		return nil, fmt.Errorf("failed to write fee: %w", err)
	}
	buf.Write(fee)

	counter, err := zarith.Encode(o.Counter)
	if err != nil {
		return nil, fmt.Errorf("failed to write counter: %w", err)
	}
	buf.Write(counter)

	gasLimit, err := zarith.Encode(o.GasLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to write gas limit: %w", err)
	}
	buf.Write(gasLimit)

	storageLimit, err := zarith.Encode(o.StorageLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to write storage limit: %w", err)
	}
	buf.Write(storageLimit)

	balance, err := zarith.Encode(o.Balance)
	if err != nil {
		return nil, fmt.Errorf("failed to write balance: %w", err)
	}
	buf.Write(balance)

	hasDelegate := o.Delegate != nil
	buf.WriteByte(serializeBoolean(hasDelegate))
	if hasDelegate {
		delegatePubKeyHashBytes, err := o.Delegate.EncodePubKeyHash()
		if err != nil {
			return nil, fmt.Errorf("failed to write delegate: %w", err)
		}
		buf.Write(delegatePubKeyHashBytes)
	}

	scriptBytes, err := o.Script.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to write script: %w", err)
	}
	buf.Write(scriptBytes)

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (o *Origination) UnmarshalBinary(data []byte) (err error) {
	defer func() {
		if err == nil {
			if r := recover(); r != nil {
				err = catchOutOfRangeExceptions(r)
			}
		}
	}()

	dataPtr := data

	tag := ContentsTag(dataPtr[0])
	if tag != ContentsTagOrigination {
		return newForgeErrorStr(ErrInvalidArgument, "tag", "", fmt.Errorf("invalid tag for origination. Expected %d, saw %d", ContentsTagOrigination, tag))
	}
	dataPtr = dataPtr[1:]

	if err = o.Source.UnmarshalBinaryTzOnly(dataPtr[:TaggedPubKeyHashLen]); err != nil {
		return fmt.Errorf("failed to unmarshal source: %w", err)
	}
	dataPtr = dataPtr[TaggedPubKeyHashLen:]

	var bytesRead int
	o.Fee, bytesRead, err = zarith.ReadNext(dataPtr)
	if err != nil {
		return fmt.Errorf("failed to unmarshal fee: %w", err)
	}
	dataPtr = dataPtr[bytesRead:]

	o.Counter, bytesRead, err = zarith.ReadNext(dataPtr)
	if err != nil {
		return fmt.Errorf("failed to unmarshal counter: %w", err)
	}
	dataPtr = dataPtr[bytesRead:]

	o.GasLimit, bytesRead, err = zarith.ReadNext(dataPtr)
	if err != nil {
		return fmt.Errorf("failed to unmarshal gas limit: %w", err)
	}
	dataPtr = dataPtr[bytesRead:]

	o.StorageLimit, bytesRead, err = zarith.ReadNext(dataPtr)
	if err != nil {
		return fmt.Errorf("failed to unmarshal storage limit: %w", err)
	}
	dataPtr = dataPtr[bytesRead:]

	o.Balance, bytesRead, err = zarith.ReadNext(dataPtr)
	if err != nil {
		return fmt.Errorf("failed to unmarshal balance: %w", err)
	}
	dataPtr = dataPtr[bytesRead:]

	hasDelegate, err := deserializeBoolean(dataPtr[0])
	if err != nil {
		return fmt.Errorf("failed to deserialize presence of field \"delegate\": %w", err)
	}
	dataPtr = dataPtr[1:]
	if hasDelegate {
		taggedPubKeyHash := dataPtr[:TaggedPubKeyHashLen]
		var delegate ContractID
		if err = delegate.UnmarshalBinaryTzOnly(taggedPubKeyHash); err != nil {
			return fmt.Errorf("failed to deserialize delegate: %w", err)
		}
		o.Delegate = &delegate
		dataPtr = dataPtr[TaggedPubKeyHashLen:]
	}

	if err = o.Script.UnmarshalBinary(dataPtr); err != nil {
		return fmt.Errorf("failed to deserialize script: %w", err)
	}

	return nil
}
