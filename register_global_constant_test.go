package tezosforge_test

import (
	"encoding/hex"
	"math/big"
	"testing"

	tezosforge "github.com/anchorageoss/tezosforge"
	"github.com/stretchr/testify/require"
)

func TestEncodeRegisterGlobalConstant(t *testing.T) {
	require := require.New(t)
	constant := &tezosforge.RegisterGlobalConstant{
		Source:       tezosforge.ContractID("tz1KqTpEZ7Yob7QbPE4Hy4Wo8fHG8LhKxZSx"),
		Fee:          big.NewInt(1266),
		Counter:      big.NewInt(1),
		GasLimit:     big.NewInt(10100),
		StorageLimit: big.NewInt(277),
		Value:        &tezosforge.MichelinePrim{Prim: "unit"},
	}
	encodedBytes, err := constant.MarshalBinary()
	require.NoError(err)
	encoded := hex.EncodeToString(encodedBytes)
	expected := "6f0002298c03ed7d454a101eb7022bc95f7e5f41ac78f20901f44e9502000000020369"
	require.Equal(expected, encoded)
}

func TestDecodeRegisterGlobalConstant(t *testing.T) {
	require := require.New(t)
	encoded, err := hex.DecodeString("6f0002298c03ed7d454a101eb7022bc95f7e5f41ac78f20901f44e9502000000020369")
	require.NoError(err)
	constant := tezosforge.RegisterGlobalConstant{}
	require.NoError(constant.UnmarshalBinary(encoded))
	require.Equal(tezosforge.ContractID("tz1KqTpEZ7Yob7QbPE4Hy4Wo8fHG8LhKxZSx"), constant.Source)
	require.Equal("1266", constant.Fee.String())
	require.Equal("1", constant.Counter.String())
	require.Equal("10100", constant.GasLimit.String())
	require.Equal("277", constant.StorageLimit.String())
	prim, ok := constant.Value.(*tezosforge.MichelinePrim)
	require.True(ok)
	require.Equal("unit", prim.Prim)
}
