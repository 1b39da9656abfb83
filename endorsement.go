package tezosforge

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Endorsement models the tezos endorsement operation type.
type Endorsement struct {
	Level int32
}

func (e *Endorsement) String() string {
	return fmt.Sprintf("%#v", e)
}

// GetTag implements OperationContents.
func (e *Endorsement) GetTag() ContentsTag {
	return ContentsTagEndorsement
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (e *Endorsement) MarshalBinary() ([]byte, error) {
	buf := bytes.Buffer{}

	buf.WriteByte(byte(e.GetTag()))

	if err := binary.Write(&buf, binary.BigEndian, e.Level); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func readInt32(data []byte) (ret int32, err error) {
	buf := bytes.NewBuffer(data)
	err = binary.Read(buf, binary.BigEndian, &ret)
	return ret, err
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (e *Endorsement) UnmarshalBinary(data []byte) (err error) {
	defer func() {
		if err == nil {
			if r := recover(); r != nil {
				err = catchOutOfRangeExceptions(r)
			}
		}
	}()

	dataPtr := data

	tag := ContentsTag(dataPtr[0])
	if tag != ContentsTagEndorsement {
		return newForgeErrorStr(ErrInvalidArgument, "tag", "", fmt.Errorf("invalid tag for endorsement. Expected %d, saw %d", ContentsTagEndorsement, tag))
	}
	dataPtr = dataPtr[1:]

	level, err := readInt32(dataPtr)
	if err != nil {
		return fmt.Errorf("failed to unmarshal level: %w", err)
	}
	e.Level = level

	return nil
}
