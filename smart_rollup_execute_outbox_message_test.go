package tezosforge_test

import (
	"encoding/hex"
	"math/big"
	"testing"

	tezosforge "github.com/anchorageoss/tezosforge"
	"github.com/stretchr/testify/require"
)

func TestEncodeSmartRollupExecuteOutboxMessage(t *testing.T) {
	require := require.New(t)
	outputProof, err := hex.DecodeString("deadbeefcafe")
	require.NoError(err)
	execute := &tezosforge.SmartRollupExecuteOutboxMessage{
		Source:             tezosforge.ContractID("tz1KqTpEZ7Yob7QbPE4Hy4Wo8fHG8LhKxZSx"),
		Fee:                big.NewInt(1266),
		Counter:            big.NewInt(1),
		GasLimit:           big.NewInt(10100),
		StorageLimit:       big.NewInt(277),
		Rollup:             tezosforge.ContractID("sr168fzzSa1h32J7tTvLxwSzcD17kX624zF3"),
		CementedCommitment: "scc12mr9FYjMUAnTabe77VcyjKu58sX6YPACPMjTrEdwXkKCyHL43x",
		OutputProof:        outputProof,
	}
	encodedBytes, err := execute.MarshalBinary()
	require.NoError(err)
	encoded := hex.EncodeToString(encodedBytes)
	expected := "ce0002298c03ed7d454a101eb7022bc95f7e5f41ac78f20901f44e95020102030405060708090a0b0c0d0e0f1011121314202122232425262720212223242526272021222324252627202122232425262700000006deadbeefcafe"
	require.Equal(expected, encoded)
}

func TestDecodeSmartRollupExecuteOutboxMessage(t *testing.T) {
	require := require.New(t)
	encoded, err := hex.DecodeString("ce0002298c03ed7d454a101eb7022bc95f7e5f41ac78f20901f44e95020102030405060708090a0b0c0d0e0f1011121314202122232425262720212223242526272021222324252627202122232425262700000006deadbeefcafe")
	require.NoError(err)
	execute := tezosforge.SmartRollupExecuteOutboxMessage{}
	require.NoError(execute.UnmarshalBinary(encoded))
	require.Equal(tezosforge.ContractID("tz1KqTpEZ7Yob7QbPE4Hy4Wo8fHG8LhKxZSx"), execute.Source)
	require.Equal(tezosforge.ContractID("sr168fzzSa1h32J7tTvLxwSzcD17kX624zF3"), execute.Rollup)
	require.Equal("scc12mr9FYjMUAnTabe77VcyjKu58sX6YPACPMjTrEdwXkKCyHL43x", execute.CementedCommitment)
	require.Equal("deadbeefcafe", hex.EncodeToString(execute.OutputProof))
}
