package tezosforge

import (
	"bytes"
	"fmt"
)

// FailingNoop models the tezos failing_noop operation type: a manager-free
// content that carries an arbitrary byte string and always fails
// application, used to produce a signed statement without any side effect.
type FailingNoop struct {
	Arbitrary string
}

func (f *FailingNoop) String() string {
	return fmt.Sprintf("%#v", f)
}

// GetTag implements OperationContents.
func (f *FailingNoop) GetTag() ContentsTag {
	return ContentsTagFailingNoop
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (f *FailingNoop) MarshalBinary() ([]byte, error) {
	buf := bytes.Buffer{}
	buf.WriteByte(byte(f.GetTag()))
	if err := writeLengthPrefixed(&buf, []byte(f.Arbitrary)); err != nil {
		return nil, fmt.Errorf("failed to write arbitrary: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (f *FailingNoop) UnmarshalBinary(data []byte) (err error) {
	defer func() {
		if err == nil {
			if r := recover(); r != nil {
				err = catchOutOfRangeExceptions(r)
			}
		}
	}()

	dataPtr := data

	tag := ContentsTag(dataPtr[0])
	if tag != ContentsTagFailingNoop {
		return newForgeErrorStr(ErrInvalidArgument, "tag", "", fmt.Errorf("invalid tag for failing_noop. Expected %d, saw %d", ContentsTagFailingNoop, tag))
	}
	dataPtr = dataPtr[1:]

	arbitrary, rest, err := readLengthPrefixed(dataPtr)
	if err != nil {
		return fmt.Errorf("failed to unmarshal arbitrary: %w", err)
	}
	if len(rest) != 0 {
		return newForgeErrorStr(ErrInvalidArgument, "arbitrary", "", fmt.Errorf("%d trailing bytes", len(rest)))
	}
	f.Arbitrary = string(arbitrary)

	return nil
}
