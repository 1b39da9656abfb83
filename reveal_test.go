package tezosforge_test

import (
	"encoding/hex"
	"math/big"
	"testing"

	tezosforge "github.com/anchorageoss/tezosforge"
	"github.com/stretchr/testify/require"
)

func TestEncodeReveal(t *testing.T) {
	require := require.New(t)
	reveal := &tezosforge.Reveal{
		Source:       tezosforge.ContractID("tz1KqTpEZ7Yob7QbPE4Hy4Wo8fHG8LhKxZSx"),
		Fee:          big.NewInt(1257),
		Counter:      big.NewInt(1),
		GasLimit:     big.NewInt(10000),
		StorageLimit: big.NewInt(0),
		PublicKey:    tezosforge.PublicKey("edpkuBknW28nW72KG6RoHtYW7p12T6GKc7nAbwYX5m8Wd9sDVC9yav"),
	}
	encodedBytes, err := reveal.MarshalBinary()
	require.NoError(err)
	encoded := hex.EncodeToString(encodedBytes)
	expected := "6b0002298c03ed7d454a101eb7022bc95f7e5f41ac78e90901904e00004798d2cc98473d7e250c898885718afd2e4efbcb1a1595ab9730761ed830de0f"
	require.Equal(expected, encoded)
}

func TestDecodeReveal(t *testing.T) {
	require := require.New(t)
	encoded, err := hex.DecodeString("6b0002298c03ed7d454a101eb7022bc95f7e5f41ac78e90901904e00004798d2cc98473d7e250c898885718afd2e4efbcb1a1595ab9730761ed830de0f")
	require.NoError(err)
	reveal := tezosforge.Reveal{}
	require.NoError(reveal.UnmarshalBinary(encoded))
	require.Equal(tezosforge.ContractID("tz1KqTpEZ7Yob7QbPE4Hy4Wo8fHG8LhKxZSx"), reveal.Source)
	require.Equal("1257", reveal.Fee.String())
	require.Equal("1", reveal.Counter.String())
	require.Equal("10000", reveal.GasLimit.String())
	require.Equal("0", reveal.StorageLimit.String())
	require.Equal(tezosforge.PublicKey("edpkuBknW28nW72KG6RoHtYW7p12T6GKc7nAbwYX5m8Wd9sDVC9yav"), reveal.PublicKey)
}
