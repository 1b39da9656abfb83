package tezosforge

import (
	"bytes"
	"encoding"
	"fmt"
)

// OperationContents models one of multiple contents of a tezos operation.
// Reference: http://tezos.gitlab.io/mainnet/api/p2p.html#operation-alpha-contents-determined-from-data-8-bit-tag
type OperationContents interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	fmt.Stringer
	GetTag() ContentsTag
}

// Operation models a tezos operation group: a branch and an ordered,
// non-empty list of contents. Forging never attaches a signature.
type Operation struct {
	Branch   BranchID
	Contents []OperationContents
}

func (o *Operation) String() string {
	return fmt.Sprintf("Branch: %s, Contents: %s", o.Branch, o.Contents)
}

// MarshalBinary implements encoding.BinaryMarshaler. Content order is
// preserved verbatim; there is no reordering or deduplication.
func (o *Operation) MarshalBinary() ([]byte, error) {
	buf := bytes.Buffer{}

	branchIDBytes, err := o.Branch.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to write branch: %w", err)
	}
	buf.Write(branchIDBytes)

	if len(o.Contents) == 0 {
		return nil, newForgeErrorStr(ErrInvalidArgument, "contents", "", fmt.Errorf("expected non-zero list of contents in an operation"))
	}
	for _, content := range o.Contents {
		contentBytes, err := content.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("failed to marshal operation contents: %#v: %w", content, err)
		}
		buf.Write(contentBytes)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler
func (o *Operation) UnmarshalBinary(data []byte) (err error) {
	// cleanly recover from out of bounds exceptions
	defer func() {
		if err == nil {
			if r := recover(); r != nil {
				err = catchOutOfRangeExceptions(r)
			}
		}
	}()

	*o = Operation{}
	dataPtr := data
	err = o.Branch.UnmarshalBinary(dataPtr[:BlockHashLen])
	if err != nil {
		return err
	}
	dataPtr = dataPtr[BlockHashLen:]
	for len(dataPtr) > 0 {
		tag := ContentsTag(dataPtr[0])
		var content OperationContents
		switch tag {
		case ContentsTagReveal:
			content = &Reveal{}
		case ContentsTagTransaction:
			content = &Transaction{}
		case ContentsTagOrigination:
			content = &Origination{}
		case ContentsTagDelegation:
			content = &Delegation{}
		case ContentsTagEndorsement:
			content = &Endorsement{}
		case ContentsTagEndorsementWithSlot:
			content = &EndorsementWithSlot{}
		case ContentsTagActivateAccount:
			content = &ActivateAccount{}
		case ContentsTagFailingNoop:
			content = &FailingNoop{}
		case ContentsTagRegisterGlobalConstant:
			content = &RegisterGlobalConstant{}
		case ContentsTagTransferTicket:
			content = &TransferTicket{}
		case ContentsTagSmartRollupAddMessages:
			content = &SmartRollupAddMessages{}
		case ContentsTagSmartRollupExecuteOutboxMessage:
			content = &SmartRollupExecuteOutboxMessage{}
		default:
			return newForgeErrorStr(ErrUnsupportedKind, "tag", fmt.Sprintf("%d", tag), fmt.Errorf("unexpected content tag"))
		}
		if err = content.UnmarshalBinary(dataPtr); err != nil {
			return fmt.Errorf("failed to unmarshal content with tag %d: %w", tag, err)
		}
		o.Contents = append(o.Contents, content)
		marshaled, err := content.MarshalBinary()
		if err != nil {
			return err
		}
		dataPtr = dataPtr[len(marshaled):]
	}

	return nil
}
