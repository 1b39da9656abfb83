package tezosforge

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const maxUint30 = 1<<30 - 1

// ContractScript models $scripted.contracts: an origination's code and
// initial storage, each a length-prefixed Micheline expression.
type ContractScript struct {
	Code    []byte
	Storage []byte
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (c ContractScript) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	if len(c.Code) > maxUint30 {
		return nil, newForgeErrorStr(ErrOverflowLength, "script.code", "", fmt.Errorf("cannot exceed %d bytes", maxUint30))
	}
	if len(c.Storage) > maxUint30 {
		return nil, newForgeErrorStr(ErrOverflowLength, "script.storage", "", fmt.Errorf("cannot exceed %d bytes", maxUint30))
	}
	if err := binary.Write(buf, binary.BigEndian, uint32(len(c.Code))); err != nil {
		return nil, fmt.Errorf("failed to write code length: %w", err)
	}
	buf.Write(c.Code)
	if err := binary.Write(buf, binary.BigEndian, uint32(len(c.Storage))); err != nil {
		return nil, fmt.Errorf("failed to write storage length: %w", err)
	}
	buf.Write(c.Storage)
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (c *ContractScript) UnmarshalBinary(data []byte) error {
	reader := bytes.NewReader(data)

	var codeLen uint32
	if err := binary.Read(reader, binary.BigEndian, &codeLen); err != nil {
		return fmt.Errorf("failed to read code length: %w", err)
	}
	c.Code = make([]byte, codeLen)
	if _, err := readFull(reader, c.Code); err != nil {
		return fmt.Errorf("failed to read code: %w", err)
	}

	var storageLen uint32
	if err := binary.Read(reader, binary.BigEndian, &storageLen); err != nil {
		return fmt.Errorf("failed to read storage length: %w", err)
	}
	c.Storage = make([]byte, storageLen)
	if _, err := readFull(reader, c.Storage); err != nil {
		return fmt.Errorf("failed to read storage: %w", err)
	}

	return nil
}

func readFull(r *bytes.Reader, buf []byte) (int, error) {
	n, err := r.Read(buf)
	if err != nil && len(buf) > 0 {
		return n, err
	}
	if n != len(buf) {
		return n, fmt.Errorf("short read: got %d of %d bytes", n, len(buf))
	}
	return n, nil
}

// TransactionParameters models $X_o: the entrypoint a transaction invokes
// plus the Micheline expression passed as its argument.
// Reference: http://tezos.gitlab.io/babylonnet/api/p2p.html#x-0
type TransactionParameters struct {
	Entrypoint Entrypoint
	Value      MichelineNode
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (t TransactionParameters) MarshalBinary() ([]byte, error) {
	buffer := new(bytes.Buffer)
	entrypointBytes, err := t.Entrypoint.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entrypoint: %w", err)
	}
	buffer.Write(entrypointBytes)

	valueBytes, err := t.Value.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value: %w", err)
	}
	valueBuf := new(bytes.Buffer)
	if err := binary.Write(valueBuf, binary.BigEndian, uint32(len(valueBytes))); err != nil {
		return nil, err
	}
	valueBuf.Write(valueBytes)
	buffer.Write(valueBuf.Bytes())
	return buffer.Bytes(), nil
}

// IsDefault reports whether these parameters collapse to the forger's
// implicit default: invoking %default with a bare Unit argument. A
// transaction carrying parameters like these forges identically to one with
// no parameters at all, and the reverse holds on the way back in.
func (t TransactionParameters) IsDefault() bool {
	if t.Entrypoint != EntrypointDefault {
		return false
	}
	prim, ok := t.Value.(*MichelinePrim)
	if !ok {
		return false
	}
	return prim.Prim == "Unit" && len(prim.Args) == 0 && len(prim.Annots) == 0
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (t *TransactionParameters) UnmarshalBinary(data []byte) (err error) {
	defer func() {
		if err == nil {
			if r := recover(); r != nil {
				err = catchOutOfRangeExceptions(r)
			}
		}
	}()
	if err := t.Entrypoint.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("failed to unmarshal entrypoint: %w", err)
	}
	entrypointBytes, err := t.Entrypoint.MarshalBinary()
	if err != nil {
		return err
	}
	rest := data[len(entrypointBytes):]

	if len(rest) < 4 {
		return newForgeErrorStr(ErrInvalidArgument, "parameters.value", "", fmt.Errorf("too few bytes for value length"))
	}
	valueLen := binary.BigEndian.Uint32(rest[:4])
	valuePayload := rest[4:]
	if uint32(len(valuePayload)) != valueLen {
		return newForgeErrorStr(ErrInvalidArgument, "parameters.value", "", fmt.Errorf("declared length %d != actual %d", valueLen, len(valuePayload)))
	}

	node, n, err := unmarshalMichelineNode(valuePayload)
	if err != nil {
		return fmt.Errorf("failed to unmarshal value: %w", err)
	}
	if n != len(valuePayload) {
		return newForgeErrorStr(ErrInvalidArgument, "parameters.value", "", fmt.Errorf("%d trailing bytes", len(valuePayload)-n))
	}
	t.Value = node
	return nil
}
