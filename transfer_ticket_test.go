package tezosforge_test

import (
	"encoding/hex"
	"math/big"
	"testing"

	tezosforge "github.com/anchorageoss/tezosforge"
	"github.com/stretchr/testify/require"
)

func TestEncodeTransferTicket(t *testing.T) {
	require := require.New(t)
	contents := tezosforge.MichelineString("abc")
	ty := &tezosforge.MichelinePrim{Prim: "unit"}
	transfer := &tezosforge.TransferTicket{
		Source:       tezosforge.ContractID("tz1KqTpEZ7Yob7QbPE4Hy4Wo8fHG8LhKxZSx"),
		Fee:          big.NewInt(1266),
		Counter:      big.NewInt(1),
		GasLimit:     big.NewInt(10100),
		StorageLimit: big.NewInt(277),
		Contents:     &contents,
		Ty:           ty,
		Ticketer:     tezosforge.ContractID("KT1GrStTuhgMMpzbNWKTt7NoXGrYiufrHDYq"),
		Amount:       big.NewInt(100),
		Destination:  tezosforge.ContractID("tz1KqTpEZ7Yob7QbPE4Hy4Wo8fHG8LhKxZSx"),
		Entrypoint:   "default",
	}
	encodedBytes, err := transfer.MarshalBinary()
	require.NoError(err)
	encoded := hex.EncodeToString(encodedBytes)
	expected := "9e0002298c03ed7d454a101eb7022bc95f7e5f41ac78f20901f44e9502000000080100000003616263000000020369015ab81204ccd229281b9c462edaf0a43e78075f460064000002298c03ed7d454a101eb7022bc95f7e5f41ac780000000764656661756c74"
	require.Equal(expected, encoded)
}

func TestDecodeTransferTicket(t *testing.T) {
	require := require.New(t)
	encoded, err := hex.DecodeString("9e0002298c03ed7d454a101eb7022bc95f7e5f41ac78f20901f44e9502000000080100000003616263000000020369015ab81204ccd229281b9c462edaf0a43e78075f460064000002298c03ed7d454a101eb7022bc95f7e5f41ac780000000764656661756c74")
	require.NoError(err)
	transfer := tezosforge.TransferTicket{}
	require.NoError(transfer.UnmarshalBinary(encoded))
	require.Equal(tezosforge.ContractID("tz1KqTpEZ7Yob7QbPE4Hy4Wo8fHG8LhKxZSx"), transfer.Source)
	require.Equal("100", transfer.Amount.String())
	require.Equal(tezosforge.ContractID("KT1GrStTuhgMMpzbNWKTt7NoXGrYiufrHDYq"), transfer.Ticketer)
	require.Equal(tezosforge.ContractID("tz1KqTpEZ7Yob7QbPE4Hy4Wo8fHG8LhKxZSx"), transfer.Destination)
	require.Equal("default", transfer.Entrypoint)
	contentsNode, ok := transfer.Contents.(*tezosforge.MichelineString)
	require.True(ok)
	require.Equal("abc", string(*contentsNode))
	tyNode, ok := transfer.Ty.(*tezosforge.MichelinePrim)
	require.True(ok)
	require.Equal("unit", tyNode.Prim)
}

func TestTransferTicketSmartRollupTicketerAndDestinationRoundTrip(t *testing.T) {
	require := require.New(t)
	payload := make([]byte, tezosforge.PrefixSmartRollupAddress.PayloadLength())
	for i := range payload {
		payload[i] = byte(i + 1)
	}
	rollupAddress, err := tezosforge.Base58CheckEncode(tezosforge.PrefixSmartRollupAddress, payload)
	require.NoError(err)

	contents := tezosforge.MichelineString("abc")
	ty := &tezosforge.MichelinePrim{Prim: "unit"}
	transfer := &tezosforge.TransferTicket{
		Source:       tezosforge.ContractID("tz1KqTpEZ7Yob7QbPE4Hy4Wo8fHG8LhKxZSx"),
		Fee:          big.NewInt(1266),
		Counter:      big.NewInt(1),
		GasLimit:     big.NewInt(10100),
		StorageLimit: big.NewInt(277),
		Contents:     &contents,
		Ty:           ty,
		Ticketer:     tezosforge.ContractID(rollupAddress),
		Amount:       big.NewInt(100),
		Destination:  tezosforge.ContractID(rollupAddress),
		Entrypoint:   "default",
	}
	encodedBytes, err := transfer.MarshalBinary()
	require.NoError(err)

	var roundTripped tezosforge.TransferTicket
	require.NoError(roundTripped.UnmarshalBinary(encodedBytes))
	require.Equal(tezosforge.ContractID(rollupAddress), roundTripped.Ticketer)
	require.Equal(tezosforge.ContractID(rollupAddress), roundTripped.Destination)
}
