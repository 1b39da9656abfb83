package tezosforge

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/anchorageoss/tezosforge/zarith"
)

// SmartRollupAddMessages models the tezos smart_rollup_add_messages
// operation type, which appends a batch of opaque messages to a smart
// rollup's inbox.
type SmartRollupAddMessages struct {
	Source       ContractID
	Fee          *big.Int
	Counter      *big.Int
	GasLimit     *big.Int
	StorageLimit *big.Int
	Messages     [][]byte
}

func (s *SmartRollupAddMessages) String() string {
	return fmt.Sprintf("%#v", s)
}

// GetTag implements OperationContents.
func (s *SmartRollupAddMessages) GetTag() ContentsTag {
	return ContentsTagSmartRollupAddMessages
}

// GetSource returns the operation's source.
func (s *SmartRollupAddMessages) GetSource() ContractID {
	return s.Source
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *SmartRollupAddMessages) MarshalBinary() ([]byte, error) {
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

	messagesBuf := new(bytes.Buffer)
	for i, msg := range s.Messages {
		if err := writeLengthPrefixed(messagesBuf, msg); err != nil {
			return nil, fmt.Errorf("failed to write message %d: %w", i, err)
		}
	}
	if err := writeLengthPrefixed(&buf, messagesBuf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to write messages: %w", err)
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *SmartRollupAddMessages) UnmarshalBinary(data []byte) (err error) {
	defer func() {
		if err == nil {
			if r := recover(); r != nil {
				err = catchOutOfRangeExceptions(r)
			}
		}
	}()

	dataPtr := data

	tag := ContentsTag(dataPtr[0])
	if tag != ContentsTagSmartRollupAddMessages {
		return newForgeErrorStr(ErrInvalidArgument, "tag", "", fmt.Errorf("invalid tag for smart_rollup_add_messages. Expected %d, saw %d", ContentsTagSmartRollupAddMessages, tag))
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

	messagesPayload, rest, err := readLengthPrefixed(dataPtr)
	if err != nil {
		return fmt.Errorf("failed to unmarshal messages: %w", err)
	}
	if len(rest) != 0 {
		return newForgeErrorStr(ErrInvalidArgument, "messages", "", fmt.Errorf("%d trailing bytes", len(rest)))
	}

	var messages [][]byte
	for len(messagesPayload) > 0 {
		var msg []byte
		msg, messagesPayload, err = readLengthPrefixed(messagesPayload)
		if err != nil {
			return fmt.Errorf("failed to unmarshal message %d: %w", len(messages), err)
		}
		messages = append(messages, msg)
	}
	s.Messages = messages

	return nil
}
