package tezosforge

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/anchorageoss/tezosforge/zarith"
)

// SmartRollupExecuteOutboxMessage models the tezos
// smart_rollup_execute_outbox_message operation type, which executes a
// transaction listed in a smart rollup's outbox once its commitment has
// been cemented, proven by a Merkle inclusion proof.
type SmartRollupExecuteOutboxMessage struct {
	Source             ContractID
	Fee                *big.Int
	Counter            *big.Int
	GasLimit           *big.Int
	StorageLimit       *big.Int
	Rollup             ContractID
	CementedCommitment string
	OutputProof        []byte
}

func (s *SmartRollupExecuteOutboxMessage) String() string {
	return fmt.Sprintf("%#v", s)
}

// GetTag implements OperationContents.
func (s *SmartRollupExecuteOutboxMessage) GetTag() ContentsTag {
	return ContentsTagSmartRollupExecuteOutboxMessage
}

// GetSource returns the operation's source.
func (s *SmartRollupExecuteOutboxMessage) GetSource() ContractID {
	return s.Source
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *SmartRollupExecuteOutboxMessage) MarshalBinary() ([]byte, error) {
	buf := bytes.Buffer{}

	buf.WriteByte(byte(s.GetTag()))

	sourceBytes, err := s.Source.EncodePubKeyHash()
	if err != nil {
		return nil, fmt.Errorf("failed to write source: %w", err)
	}
	buf.Write(sourceBytes)

	fee, err := zarith.Encode(s.Fee)
	if err != nil {
		return nil, fmt.Errorf("failed to write fee: %w", err)
	}
	buf.Write(fee)

	counter, err := zarith.Encode(s.Counter)
	if err != nil {
		return nil, fmt.Errorf("failed to write counter: %w", err)
	}
	buf.Write(counter)

	gasLimit, err := zarith.Encode(s.GasLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to write gas limit: %w", err)
	}
	buf.Write(gasLimit)

	storageLimit, err := zarith.Encode(s.StorageLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to write storage limit: %w", err)
	}
	buf.Write(storageLimit)

	rollupPrefix, rollupBytes, err := Base58CheckDecode(string(s.Rollup))
	if err != nil {
		return nil, fmt.Errorf("failed to write rollup: %w", err)
	}
	if rollupPrefix != PrefixSmartRollupAddress {
		return nil, newForgeErrorStr(ErrInvalidArgument, "rollup", string(s.Rollup), fmt.Errorf("expected an sr1 address"))
	}
	buf.Write(rollupBytes)

	commitmentPrefix, commitmentBytes, err := Base58CheckDecode(s.CementedCommitment)
	if err != nil {
		return nil, fmt.Errorf("failed to write cemented_commitment: %w", err)
	}
	if commitmentPrefix != PrefixSmartRollupCommitmentHash {
		return nil, newForgeErrorStr(ErrInvalidArgument, "cemented_commitment", s.CementedCommitment, fmt.Errorf("expected an src1 commitment hash"))
	}
	buf.Write(commitmentBytes)

	if err := writeLengthPrefixed(&buf, s.OutputProof); err != nil {
		return nil, fmt.Errorf("failed to write output_proof: %w", err)
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *SmartRollupExecuteOutboxMessage) UnmarshalBinary(data []byte) (err error) {
	defer func() {
		if err == nil {
			if r := recover(); r != nil {
				err = catchOutOfRangeExceptions(r)
			}
		}
	}()

	dataPtr := data

	tag := ContentsTag(dataPtr[0])
	if tag != ContentsTagSmartRollupExecuteOutboxMessage {
		return newForgeErrorStr(ErrInvalidArgument, "tag", "", fmt.Errorf("invalid tag for smart_rollup_execute_outbox_message. Expected %d, saw %d", ContentsTagSmartRollupExecuteOutboxMessage, tag))
	}
	dataPtr = dataPtr[1:]

	if err = s.Source.UnmarshalBinaryTzOnly(dataPtr[:TaggedPubKeyHashLen]); err != nil {
		return fmt.Errorf("failed to unmarshal source: %w", err)
	}
	dataPtr = dataPtr[TaggedPubKeyHashLen:]

	var bytesRead int
	s.Fee, bytesRead, err = zarith.ReadNext(dataPtr)
	if err != nil {
		return fmt.Errorf("failed to unmarshal fee: %w", err)
	}
	dataPtr = dataPtr[bytesRead:]

	s.Counter, bytesRead, err = zarith.ReadNext(dataPtr)
	if err != nil {
		return fmt.Errorf("failed to unmarshal counter: %w", err)
	}
	dataPtr = dataPtr[bytesRead:]

	s.GasLimit, bytesRead, err = zarith.ReadNext(dataPtr)
	if err != nil {
		return fmt.Errorf("failed to unmarshal gas limit: %w", err)
	}
	dataPtr = dataPtr[bytesRead:]

	s.StorageLimit, bytesRead, err = zarith.ReadNext(dataPtr)
	if err != nil {
		return fmt.Errorf("failed to unmarshal storage limit: %w", err)
	}
	dataPtr = dataPtr[bytesRead:]

	rollupPayloadLen := PrefixSmartRollupAddress.PayloadLength()
	rollupEncoded, err := Base58CheckEncode(PrefixSmartRollupAddress, dataPtr[:rollupPayloadLen])
	if err != nil {
		return fmt.Errorf("failed to unmarshal rollup: %w", err)
	}
	s.Rollup = ContractID(rollupEncoded)
	dataPtr = dataPtr[rollupPayloadLen:]

	commitmentPayloadLen := PrefixSmartRollupCommitmentHash.PayloadLength()
	commitmentEncoded, err := Base58CheckEncode(PrefixSmartRollupCommitmentHash, dataPtr[:commitmentPayloadLen])
	if err != nil {
		return fmt.Errorf("failed to unmarshal cemented_commitment: %w", err)
	}
	s.CementedCommitment = commitmentEncoded
	dataPtr = dataPtr[commitmentPayloadLen:]

	outputProof, rest, err := readLengthPrefixed(dataPtr)
	if err != nil {
		return fmt.Errorf("failed to unmarshal output_proof: %w", err)
	}
	if len(rest) != 0 {
		return newForgeErrorStr(ErrInvalidArgument, "output_proof", "", fmt.Errorf("%d trailing bytes", len(rest)))
	}
	s.OutputProof = outputProof

	return nil
}
