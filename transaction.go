package tezosforge

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/anchorageoss/tezosforge/zarith"
)

// Transaction models the tezos transaction operation type.
type Transaction struct {
	Source       ContractID
	Fee          *big.Int
	Counter      *big.Int
	GasLimit     *big.Int
	StorageLimit *big.Int
	Amount       *big.Int
	Destination  ContractID
	Parameters   *TransactionParameters
}

func (t *Transaction) String() string {
	return fmt.Sprintf("%#v", t)
}

// GetTag implements OperationContents.
func (t *Transaction) GetTag() ContentsTag {
	return ContentsTagTransaction
}

// GetSource returns the operation's source.
func (t *Transaction) GetSource() ContractID {
	return t.Source
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (t *Transaction) MarshalBinary() ([]byte, error) {
	buf := bytes.Buffer{}

	buf.WriteByte(byte(t.GetTag()))

	sourceBytes, err := t.Source.EncodePubKeyHash()
	if err != nil {
		return nil, fmt.Errorf("failed to write source: %w", err)
	}
	buf.Write(sourceBytes)

	fee, err := zarith.Encode(t.Fee)
	if err != nil {
		return nil, fmt.Errorf("failed to write fee: %w", err)
	}
	buf.Write(fee)

	counter, err := zarith.Encode(t.Counter)
	if err != nil {
		return nil, fmt.Errorf("failed to write counter: %w", err)
	}
	buf.Write(counter)

	gasLimit, err := zarith.Encode(t.GasLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to write gas limit: %w", err)
	}
	buf.Write(gasLimit)

	storageLimit, err := zarith.Encode(t.StorageLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to write storage limit: %w", err)
	}
	buf.Write(storageLimit)

	amount, err := zarith.Encode(t.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to write amount: %w", err)
	}
	buf.Write(amount)

	destinationBytes, err := t.Destination.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to write destination: %w", err)
	}
	buf.Write(destinationBytes)

	paramsFollow := t.Parameters != nil && !t.Parameters.IsDefault()
	buf.WriteByte(serializeBoolean(paramsFollow))
	if paramsFollow {
		paramsBytes, err := t.Parameters.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("failed to write parameters: %w", err)
		}
		buf.Write(paramsBytes)
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (t *Transaction) UnmarshalBinary(data []byte) (err error) {
	defer func() {
		if err == nil {
			if r := recover(); r != nil {
				err = catchOutOfRangeExceptions(r)
			}
		}
	}()

	dataPtr := data

	tag := ContentsTag(dataPtr[0])
	if tag != ContentsTagTransaction {
		return newForgeErrorStr(ErrInvalidArgument, "tag", "", fmt.Errorf("invalid tag for transaction. Expected %d, saw %d", ContentsTagTransaction, tag))
	}
	dataPtr = dataPtr[1:]

	if err = t.Source.UnmarshalBinaryTzOnly(dataPtr[:TaggedPubKeyHashLen]); err != nil {
		return fmt.Errorf("failed to unmarshal source: %w", err)
	}
	dataPtr = dataPtr[TaggedPubKeyHashLen:]

	var bytesRead int
	t.Fee, bytesRead, err = zarith.ReadNext(dataPtr)
	if err != nil {
		return fmt.Errorf("failed to unmarshal fee: %w", err)
	}
	dataPtr = dataPtr[bytesRead:]

	t.Counter, bytesRead, err = zarith.ReadNext(dataPtr)
	if err != nil {
		return fmt.Errorf("failed to unmarshal counter: %w", err)
	}
	dataPtr = dataPtr[bytesRead:]

	t.GasLimit, bytesRead, err = zarith.ReadNext(dataPtr)
	if err != nil {
		return fmt.Errorf("failed to unmarshal gas limit: %w", err)
	}
	dataPtr = dataPtr[bytesRead:]

	t.StorageLimit, bytesRead, err = zarith.ReadNext(dataPtr)
	if err != nil {
		return fmt.Errorf("failed to unmarshal storage limit: %w", err)
	}
	dataPtr = dataPtr[bytesRead:]

	t.Amount, bytesRead, err = zarith.ReadNext(dataPtr)
	if err != nil {
		return fmt.Errorf("failed to unmarshal amount: %w", err)
	}
	dataPtr = dataPtr[bytesRead:]

	destination, destinationLen, err := unmarshalContractID(dataPtr)
	if err != nil {
		return fmt.Errorf("failed to unmarshal destination: %w", err)
	}
	t.Destination = destination
	dataPtr = dataPtr[destinationLen:]

	hasParameters, err := deserializeBoolean(dataPtr[0])
	dataPtr = dataPtr[1:]
	if err != nil {
		return fmt.Errorf("failed to deserialize presence of field \"parameters\": %w", err)
	}
	if hasParameters {
		t.Parameters = &TransactionParameters{}
		if err = t.Parameters.UnmarshalBinary(dataPtr); err != nil {
			return fmt.Errorf("failed to deserialize parameters: %w", err)
		}
	}

	return nil
}
