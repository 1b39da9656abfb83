package tezosforge

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/big"
	"strings"

	"github.com/anchorageoss/tezosforge/zarith"
)

// Micheline expression shape tags.
// Reference: https://gitlab.com/tezos/tezos/blob/master/src/lib_micheline/micheline.ml
const (
	michelineTagInt         byte = 0x00
	michelineTagString      byte = 0x01
	michelineTagSeq         byte = 0x02
	michelineTagPrim0       byte = 0x03
	michelineTagPrim0Annots byte = 0x04
	michelineTagPrim1       byte = 0x05
	michelineTagPrim1Annots byte = 0x06
	michelineTagPrim2       byte = 0x07
	michelineTagPrim2Annots byte = 0x08
	michelineTagPrimN       byte = 0x09
	michelineTagBytes       byte = 0x0a
)

// MichelineNode represents one node in the tree of a Micheline expression.
type MichelineNode interface {
	isMichelineNode()
	MarshalBinary() ([]byte, error)
	UnmarshalBinary([]byte) error
}

func writeLengthPrefixed(buf *bytes.Buffer, payload []byte) error {
	if len(payload) > int(^uint32(0)) {
		return newForgeErrorStr(ErrOverflowLength, "micheline", "", fmt.Errorf("payload of %d bytes overflows uint32 length prefix", len(payload)))
	}
	if err := binary.Write(buf, binary.BigEndian, uint32(len(payload))); err != nil {
		return err
	}
	buf.Write(payload)
	return nil
}

func readLengthPrefixed(data []byte) (payload []byte, rest []byte, err error) {
	if len(data) < 4 {
		return nil, nil, newForgeErrorStr(ErrInvalidArgument, "micheline", "", fmt.Errorf("too few bytes for length prefix"))
	}
	length := binary.BigEndian.Uint32(data[:4])
	data = data[4:]
	if uint32(len(data)) < length {
		return nil, nil, newForgeErrorStr(ErrInvalidArgument, "micheline", "", fmt.Errorf("declared length %d exceeds available %d bytes", length, len(data)))
	}
	return data[:length], data[length:], nil
}

// MichelineInt represents a Micheline int node: a variable-length signed
// zarith integer.
type MichelineInt big.Int

func (*MichelineInt) isMichelineNode() {}

// NewMichelineInt wraps an int64 as a MichelineInt.
func NewMichelineInt(v int64) *MichelineInt {
	return (*MichelineInt)(big.NewInt(v))
}

// MarshalBinary implements the MichelineNode interface.
func (m MichelineInt) MarshalBinary() ([]byte, error) {
	value := big.Int(m)
	encoded := zarith.EncodeSigned(&value)
	return append([]byte{michelineTagInt}, encoded...), nil
}

// UnmarshalBinary implements the MichelineNode interface.
func (m *MichelineInt) UnmarshalBinary(data []byte) error {
	if len(data) < 1 || data[0] != michelineTagInt {
		return newForgeErrorStr(ErrInvalidArgument, "micheline_int", "", fmt.Errorf("missing int tag"))
	}
	value, err := zarith.DecodeSigned(data[1:])
	if err != nil {
		return err
	}
	*m = MichelineInt(*value)
	return nil
}

// MichelineString represents a Micheline string node.
type MichelineString string

func (*MichelineString) isMichelineNode() {}

// MarshalBinary implements the MichelineNode interface.
func (m MichelineString) MarshalBinary() ([]byte, error) {
	buf := bytes.Buffer{}
	buf.WriteByte(michelineTagString)
	if err := writeLengthPrefixed(&buf, []byte(m)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements the MichelineNode interface.
func (m *MichelineString) UnmarshalBinary(data []byte) error {
	if len(data) < 1 || data[0] != michelineTagString {
		return newForgeErrorStr(ErrInvalidArgument, "micheline_string", "", fmt.Errorf("missing string tag"))
	}
	payload, _, err := readLengthPrefixed(data[1:])
	if err != nil {
		return err
	}
	*m = MichelineString(payload)
	return nil
}

// MichelineBytes represents a Micheline bytes node.
type MichelineBytes []byte

func (*MichelineBytes) isMichelineNode() {}

// MarshalBinary implements the MichelineNode interface.
func (m MichelineBytes) MarshalBinary() ([]byte, error) {
	buf := bytes.Buffer{}
	buf.WriteByte(michelineTagBytes)
	if err := writeLengthPrefixed(&buf, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements the MichelineNode interface.
func (m *MichelineBytes) UnmarshalBinary(data []byte) error {
	if len(data) < 1 || data[0] != michelineTagBytes {
		return newForgeErrorStr(ErrInvalidArgument, "micheline_bytes", "", fmt.Errorf("missing bytes tag"))
	}
	payload, _, err := readLengthPrefixed(data[1:])
	if err != nil {
		return err
	}
	*m = MichelineBytes(payload)
	return nil
}

// MichelinePrim represents a Michelson primitive application in a Micheline
// expression: a primitive name (e.g. "Pair", "parameter", "PUSH"), its
// arguments, and its annotations.
type MichelinePrim struct {
	Prim   string
	Args   []MichelineNode
	Annots []string
}

func (*MichelinePrim) isMichelineNode() {}

// MarshalBinary implements the MichelineNode interface. Tag selection is
// the smallest tag consistent with (argc, has_annots), using primN for
// argc >= 3 or (argc == 2 && has_annots).
func (m MichelinePrim) MarshalBinary() ([]byte, error) {
	opcode, ok := MichelsonPrimOpcodes[m.Prim]
	if !ok {
		return nil, newForgeErrorStr(ErrUnknownPrim, "prim", m.Prim, fmt.Errorf("not in the Michelson primitive table"))
	}
	hasAnnots := len(m.Annots) > 0
	argc := len(m.Args)

	useN := argc >= 3 || (argc == 2 && hasAnnots)
	if useN {
		return m.marshalPrimN(opcode)
	}

	buf := bytes.Buffer{}
	var tag byte
	switch {
	case argc == 0 && !hasAnnots:
		tag = michelineTagPrim0
	case argc == 0 && hasAnnots:
		tag = michelineTagPrim0Annots
	case argc == 1 && !hasAnnots:
		tag = michelineTagPrim1
	case argc == 1 && hasAnnots:
		tag = michelineTagPrim1Annots
	case argc == 2 && !hasAnnots:
		tag = michelineTagPrim2
	default:
		// unreachable given useN above
		return m.marshalPrimN(opcode)
	}
	buf.WriteByte(tag)
	buf.WriteByte(opcode)
	for _, arg := range m.Args {
		argBytes, err := arg.MarshalBinary()
		if err != nil {
			return nil, err
		}
		buf.Write(argBytes)
	}
	if hasAnnots {
		if err := writeLengthPrefixed(&buf, []byte(strings.Join(m.Annots, " "))); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func (m MichelinePrim) marshalPrimN(opcode byte) ([]byte, error) {
	buf := bytes.Buffer{}
	buf.WriteByte(michelineTagPrimN)
	buf.WriteByte(opcode)

	argsBuf := bytes.Buffer{}
	for _, arg := range m.Args {
		argBytes, err := arg.MarshalBinary()
		if err != nil {
			return nil, err
		}
		argsBuf.Write(argBytes)
	}
	if err := writeLengthPrefixed(&buf, argsBuf.Bytes()); err != nil {
		return nil, err
	}
	if err := writeLengthPrefixed(&buf, []byte(strings.Join(m.Annots, " "))); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements the MichelineNode interface.
func (m *MichelinePrim) UnmarshalBinary(data []byte) error {
	node, n, err := unmarshalMichelinePrimNode(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return newForgeErrorStr(ErrInvalidArgument, "micheline_prim", "", fmt.Errorf("expected no trailing bytes, %d of %d unused", len(data)-n, len(data)))
	}
	*m = *(node.(*MichelinePrim))
	return nil
}

func splitAnnots(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	return strings.Split(string(raw), " ")
}

// MichelineSeq represents a sequence of nodes in a Micheline expression.
type MichelineSeq []MichelineNode

func (*MichelineSeq) isMichelineNode() {}

// MarshalBinary implements the MichelineNode interface.
func (m MichelineSeq) MarshalBinary() ([]byte, error) {
	buf := bytes.Buffer{}
	buf.WriteByte(michelineTagSeq)
	elementsBuf := bytes.Buffer{}
	for _, elem := range m {
		elemBytes, err := elem.MarshalBinary()
		if err != nil {
			return nil, err
		}
		elementsBuf.Write(elemBytes)
	}
	if err := writeLengthPrefixed(&buf, elementsBuf.Bytes()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements the MichelineNode interface.
func (m *MichelineSeq) UnmarshalBinary(data []byte) error {
	if len(data) < 1 || data[0] != michelineTagSeq {
		return newForgeErrorStr(ErrInvalidArgument, "micheline_seq", "", fmt.Errorf("missing seq tag"))
	}
	payload, _, err := readLengthPrefixed(data[1:])
	if err != nil {
		return err
	}
	var out MichelineSeq
	for len(payload) > 0 {
		node, n, err := unmarshalMichelineNode(payload)
		if err != nil {
			return err
		}
		out = append(out, node)
		payload = payload[n:]
	}
	*m = out
	return nil
}

// unmarshalMichelineNode reads a single Micheline node from the front of
// data and returns it along with the number of bytes it consumed. This
// drives the recursive descent used by primN args and seq elements; the
// spec's grammar is small enough that ordinary recursion (rather than an
// explicit work stack) is the natural fit here.
func unmarshalMichelineNode(data []byte) (MichelineNode, int, error) {
	if len(data) < 1 {
		return nil, 0, newForgeErrorStr(ErrInvalidArgument, "micheline", "", fmt.Errorf("empty node"))
	}
	switch data[0] {
	case michelineTagInt:
		value, n, err := zarithReadNextSignedWithTag(data)
		if err != nil {
			return nil, 0, err
		}
		node := MichelineInt(*value)
		return &node, n, nil
	case michelineTagString:
		payload, rest, err := readLengthPrefixed(data[1:])
		if err != nil {
			return nil, 0, err
		}
		node := MichelineString(payload)
		return &node, len(data) - len(rest), nil
	case michelineTagBytes:
		payload, rest, err := readLengthPrefixed(data[1:])
		if err != nil {
			return nil, 0, err
		}
		node := MichelineBytes(payload)
		return &node, len(data) - len(rest), nil
	case michelineTagSeq:
		payload, rest, err := readLengthPrefixed(data[1:])
		if err != nil {
			return nil, 0, err
		}
		consumed := len(data) - len(rest)
		var seq MichelineSeq
		for len(payload) > 0 {
			node, n, err := unmarshalMichelineNode(payload)
			if err != nil {
				return nil, 0, err
			}
			seq = append(seq, node)
			payload = payload[n:]
		}
		return &seq, consumed, nil
	case michelineTagPrim0, michelineTagPrim0Annots, michelineTagPrim1, michelineTagPrim1Annots,
		michelineTagPrim2, michelineTagPrim2Annots, michelineTagPrimN:
		return unmarshalMichelinePrimNode(data)
	default:
		return nil, 0, newForgeErrorStr(ErrInvalidArgument, "micheline", "", fmt.Errorf("unknown shape tag 0x%02x", data[0]))
	}
}

func zarithReadNextSignedWithTag(data []byte) (*big.Int, int, error) {
	value, n, err := zarith.ReadNextSigned(data[1:])
	if err != nil {
		return nil, 0, err
	}
	return value, n + 1, nil
}

func unmarshalMichelinePrimNode(data []byte) (MichelineNode, int, error) {
	tag := data[0]
	if len(data) < 2 {
		return nil, 0, newForgeErrorStr(ErrInvalidArgument, "micheline_prim", "", fmt.Errorf("too few bytes"))
	}
	opcode := data[1]
	name, ok := MichelsonPrimNames[opcode]
	if !ok {
		return nil, 0, newForgeErrorStr(ErrUnknownPrim, "prim", fmt.Sprintf("0x%02x", opcode), fmt.Errorf("not in the Michelson primitive table"))
	}
	prim := &MichelinePrim{Prim: name}
	rest := data[2:]
	consumed := 2

	readArg := func(buf []byte) (MichelineNode, int, error) {
		return unmarshalMichelineNode(buf)
	}

	switch tag {
	case michelineTagPrim0:
		return prim, consumed, nil
	case michelineTagPrim0Annots:
		annots, afterAnnots, err := readLengthPrefixed(rest)
		if err != nil {
			return nil, 0, err
		}
		prim.Annots = splitAnnots(annots)
		return prim, consumed + (len(rest) - len(afterAnnots)), nil
	case michelineTagPrim1, michelineTagPrim1Annots:
		arg, n, err := readArg(rest)
		if err != nil {
			return nil, 0, err
		}
		prim.Args = []MichelineNode{arg}
		rest = rest[n:]
		consumed += n
		if tag == michelineTagPrim1Annots {
			annots, afterAnnots, err := readLengthPrefixed(rest)
			if err != nil {
				return nil, 0, err
			}
			prim.Annots = splitAnnots(annots)
			consumed += len(rest) - len(afterAnnots)
		}
		return prim, consumed, nil
	case michelineTagPrim2, michelineTagPrim2Annots:
		arg1, n1, err := readArg(rest)
		if err != nil {
			return nil, 0, err
		}
		rest = rest[n1:]
		consumed += n1
		arg2, n2, err := readArg(rest)
		if err != nil {
			return nil, 0, err
		}
		rest = rest[n2:]
		consumed += n2
		prim.Args = []MichelineNode{arg1, arg2}
		if tag == michelineTagPrim2Annots {
			annots, afterAnnots, err := readLengthPrefixed(rest)
			if err != nil {
				return nil, 0, err
			}
			prim.Annots = splitAnnots(annots)
			consumed += len(rest) - len(afterAnnots)
		}
		return prim, consumed, nil
	case michelineTagPrimN:
		argsPayload, afterArgs, err := readLengthPrefixed(rest)
		if err != nil {
			return nil, 0, err
		}
		consumed += len(rest) - len(afterArgs)
		for len(argsPayload) > 0 {
			arg, n, err := unmarshalMichelineNode(argsPayload)
			if err != nil {
				return nil, 0, err
			}
			prim.Args = append(prim.Args, arg)
			argsPayload = argsPayload[n:]
		}
		annots, afterAnnots, err := readLengthPrefixed(afterArgs)
		if err != nil {
			return nil, 0, err
		}
		prim.Annots = splitAnnots(annots)
		consumed += len(afterArgs) - len(afterAnnots)
		return prim, consumed, nil
	default:
		return nil, 0, newForgeErrorStr(ErrInvalidArgument, "micheline_prim", "", fmt.Errorf("unexpected prim tag 0x%02x", tag))
	}
}
