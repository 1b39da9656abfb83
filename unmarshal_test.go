package tezosforge_test

import (
	"encoding"
	"testing"

	tezosforge "github.com/anchorageoss/tezosforge"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalingIndexOutOfBoundsException(t *testing.T) {
	require := require.New(t)
	emptyBytes := []byte{}
	unmarshalers := []encoding.BinaryUnmarshaler{
		&tezosforge.Operation{},
		&tezosforge.Reveal{},
		&tezosforge.Transaction{},
		&tezosforge.Delegation{},
		&tezosforge.Origination{},
		&tezosforge.Endorsement{},
		&tezosforge.EndorsementWithSlot{},
		&tezosforge.ActivateAccount{},
		&tezosforge.FailingNoop{},
		&tezosforge.RegisterGlobalConstant{},
		&tezosforge.TransferTicket{},
		&tezosforge.SmartRollupAddMessages{},
		&tezosforge.SmartRollupExecuteOutboxMessage{},
	}
	for _, unmarshaler := range unmarshalers {
		err := unmarshaler.UnmarshalBinary(emptyBytes)
		require.Error(err, "%T", unmarshaler)
		require.Contains(err.Error(), "out of bounds exception", "%T", unmarshaler)
	}
}
