package tezosforge

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/anchorageoss/tezosforge/zarith"
)

// TransferTicket models the tezos transfer_ticket operation type, which
// moves a ticket (an opaque, non-duplicable Michelson value carrying an
// amount) from the source's stack to a destination contract's entrypoint.
type TransferTicket struct {
	Source       ContractID
	Fee          *big.Int
	Counter      *big.Int
	GasLimit     *big.Int
	StorageLimit *big.Int
	Contents     MichelineNode
	Ty           MichelineNode
	Ticketer     ContractID
	Amount       *big.Int
	Destination  ContractID
	Entrypoint   string
}

func (t *TransferTicket) String() string {
	return fmt.Sprintf("%#v", t)
}

// GetTag implements OperationContents.
func (t *TransferTicket) GetTag() ContentsTag {
	return ContentsTagTransferTicket
}

// GetSource returns the operation's source.
func (t *TransferTicket) GetSource() ContractID {
	return t.Source
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (t *TransferTicket) MarshalBinary() ([]byte, error) {
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

	if t.Contents == nil || t.Ty == nil {
		return nil, newForgeErrorStr(ErrInvalidArgument, "contents/ty", "", fmt.Errorf("both are required"))
	}
	contentsBytes, err := t.Contents.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to write contents: %w", err)
	}
	if err := writeLengthPrefixed(&buf, contentsBytes); err != nil {
		return nil, fmt.Errorf("failed to write contents: %w", err)
	}

	tyBytes, err := t.Ty.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to write ty: %w", err)
	}
	if err := writeLengthPrefixed(&buf, tyBytes); err != nil {
		return nil, fmt.Errorf("failed to write ty: %w", err)
	}

	ticketerBytes, err := t.Ticketer.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to write ticketer: %w", err)
	}
	buf.Write(ticketerBytes)

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

	if err := writeLengthPrefixed(&buf, []byte(t.Entrypoint)); err != nil {
		return nil, fmt.Errorf("failed to write entrypoint: %w", err)
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (t *TransferTicket) UnmarshalBinary(data []byte) (err error) {
	defer func() {
		if err == nil {
			if r := recover(); r != nil {
				err = catchOutOfRangeExceptions(r)
			}
		}
	}()

	dataPtr := data

	tag := ContentsTag(dataPtr[0])
	if tag != ContentsTagTransferTicket {
		return newForgeErrorStr(ErrInvalidArgument, "tag", "", fmt.Errorf("invalid tag for transfer_ticket. Expected %d, saw %d", ContentsTagTransferTicket, tag))
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

	contentsPayload, rest, err := readLengthPrefixed(dataPtr)
	if err != nil {
		return fmt.Errorf("failed to unmarshal contents: %w", err)
	}
	contentsNode, n, err := unmarshalMichelineNode(contentsPayload)
	if err != nil {
		return fmt.Errorf("failed to unmarshal contents: %w", err)
	}
	if n != len(contentsPayload) {
		return newForgeErrorStr(ErrInvalidArgument, "contents", "", fmt.Errorf("%d trailing bytes", len(contentsPayload)-n))
	}
	t.Contents = contentsNode
	dataPtr = rest

	tyPayload, rest, err := readLengthPrefixed(dataPtr)
	if err != nil {
		return fmt.Errorf("failed to unmarshal ty: %w", err)
	}
	tyNode, n, err := unmarshalMichelineNode(tyPayload)
	if err != nil {
		return fmt.Errorf("failed to unmarshal ty: %w", err)
	}
	if n != len(tyPayload) {
		return newForgeErrorStr(ErrInvalidArgument, "ty", "", fmt.Errorf("%d trailing bytes", len(tyPayload)-n))
	}
	t.Ty = tyNode
	dataPtr = rest

	ticketer, ticketerLen, err := unmarshalContractID(dataPtr)
	if err != nil {
		return fmt.Errorf("failed to unmarshal ticketer: %w", err)
	}
	t.Ticketer = ticketer
	dataPtr = dataPtr[ticketerLen:]

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

	entrypointBytes, rest, err := readLengthPrefixed(dataPtr)
	if err != nil {
		return fmt.Errorf("failed to unmarshal entrypoint: %w", err)
	}
	if len(rest) != 0 {
		return newForgeErrorStr(ErrInvalidArgument, "entrypoint", "", fmt.Errorf("%d trailing bytes", len(rest)))
	}
	t.Entrypoint = string(entrypointBytes)

	return nil
}
