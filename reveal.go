package tezosforge

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/anchorageoss/tezosforge/zarith"
)

// Reveal models the reveal operation type: the first time an implicit
// account acts, it must reveal the public key behind its hash.
type Reveal struct {
	Source       ContractID
	Fee          *big.Int
	Counter      *big.Int
	GasLimit     *big.Int
	StorageLimit *big.Int
	PublicKey    PublicKey
}

func (r *Reveal) String() string {
	return fmt.Sprintf("%#v", r)
}

// GetTag implements OperationContents.
func (r *Reveal) GetTag() ContentsTag {
	return ContentsTagReveal
}

// GetSource returns the operation's source.
func (r *Reveal) GetSource() ContractID {
	return r.Source
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (r *Reveal) MarshalBinary() ([]byte, error) {
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

	pubKeyBytes, err := r.PublicKey.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to write public key: %w", err)
	}
	buf.Write(pubKeyBytes)

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (r *Reveal) UnmarshalBinary(data []byte) (err error) {
	defer func() {
		if err == nil {
			if rec := recover(); rec != nil {
				err = catchOutOfRangeExceptions(rec)
			}
		}
	}()

	dataPtr := data

	tag := ContentsTag(dataPtr[0])
	if tag != ContentsTagReveal {
		return newForgeErrorStr(ErrInvalidArgument, "tag", "", fmt.Errorf("invalid tag for reveal. Expected %d, saw %d", ContentsTagReveal, tag))
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

	if err = r.PublicKey.UnmarshalBinary(dataPtr); err != nil {
		return fmt.Errorf("failed to unmarshal public key: %w", err)
	}

	return nil
}
