package tezosforge

import (
	"bytes"
	"fmt"
	"math"
)

// EntrypointTag captures the possible tag values for $entrypoint.
type EntrypointTag byte

// EntrypointTag values
const (
	EntrypointTagDefault        EntrypointTag = 0
	EntrypointTagRoot           EntrypointTag = 1
	EntrypointTagDo             EntrypointTag = 2
	EntrypointTagSetDelegate    EntrypointTag = 3
	EntrypointTagRemoveDelegate EntrypointTag = 4
	EntrypointTagDeposit        EntrypointTag = 5
	EntrypointTagNamed          EntrypointTag = 255
)

// Entrypoint models $entrypoint: the six reserved names compress to a single
// tag byte, and any other name is tagged 0xff and carries its UTF-8 bytes.
type Entrypoint struct {
	tag  EntrypointTag
	name string
}

// Preset entrypoints (those with an implicit name).
var (
	EntrypointDefault        = Entrypoint{tag: EntrypointTagDefault}
	EntrypointRoot           = Entrypoint{tag: EntrypointTagRoot}
	EntrypointDo             = Entrypoint{tag: EntrypointTagDo}
	EntrypointSetDelegate    = Entrypoint{tag: EntrypointTagSetDelegate}
	EntrypointRemoveDelegate = Entrypoint{tag: EntrypointTagRemoveDelegate}
	EntrypointDeposit        = Entrypoint{tag: EntrypointTagDeposit}
)

// NewNamedEntrypoint creates a named entrypoint, for invoking anything other
// than the reserved %default/%root/%do/%set_delegate/%remove_delegate/%deposit
// names.
func NewNamedEntrypoint(name string) (Entrypoint, error) {
	if len(name) > math.MaxUint8 {
		return Entrypoint{}, newForgeErrorStr(ErrInvalidArgument, "entrypoint", name,
			fmt.Errorf("exceeds maximum length %d", math.MaxUint8))
	}
	return Entrypoint{tag: EntrypointTagNamed, name: name}, nil
}

// Tag returns the entrypoint tag.
func (e Entrypoint) Tag() EntrypointTag {
	return e.tag
}

// Name returns the entrypoint name.
func (e Entrypoint) Name() (string, error) {
	switch e.tag {
	case EntrypointTagDefault:
		return "default", nil
	case EntrypointTagRoot:
		return "root", nil
	case EntrypointTagDo:
		return "do", nil
	case EntrypointTagSetDelegate:
		return "set_delegate", nil
	case EntrypointTagRemoveDelegate:
		return "remove_delegate", nil
	case EntrypointTagDeposit:
		return "deposit", nil
	case EntrypointTagNamed:
		if e.name == "" {
			return "", newForgeErrorStr(ErrInvalidArgument, "entrypoint", "", fmt.Errorf("entrypoint is not named"))
		}
		return e.name, nil
	default:
		return "", newForgeErrorStr(ErrInvalidArgument, "entrypoint", "", fmt.Errorf("unrecognized entrypoint tag %d", uint8(e.tag)))
	}
}

// String implements fmt.Stringer.
func (e Entrypoint) String() string {
	name, err := e.Name()
	if err != nil {
		return "<invalid entrypoint>"
	}
	return "%" + name
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (e Entrypoint) MarshalBinary() ([]byte, error) {
	buffer := new(bytes.Buffer)
	buffer.WriteByte(byte(e.tag))
	if e.tag == EntrypointTagNamed {
		buffer.WriteByte(uint8(len(e.name)))
		buffer.WriteString(e.name)
	}
	return buffer.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (e *Entrypoint) UnmarshalBinary(data []byte) error {
	if len(data) < 1 {
		return newForgeErrorStr(ErrInvalidArgument, "entrypoint", "", fmt.Errorf("too few bytes"))
	}
	e.tag = EntrypointTag(data[0])
	if e.tag == EntrypointTagNamed {
		data = data[1:]
		if len(data) < 1 {
			return newForgeErrorStr(ErrInvalidArgument, "entrypoint", "", fmt.Errorf("too few bytes for name length"))
		}
		nameLength := data[0]
		data = data[1:]
		if len(data) < int(nameLength) {
			return newForgeErrorStr(ErrInvalidArgument, "entrypoint", "", fmt.Errorf("too few bytes for name"))
		}
		e.name = string(data[:nameLength])
	}
	return nil
}
