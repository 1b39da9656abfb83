package tezosforge_test

import (
	"encoding/hex"
	"testing"

	tezosforge "github.com/anchorageoss/tezosforge"
	"github.com/stretchr/testify/require"
)

type contractIDTestCase struct {
	ContractID tezosforge.ContractID
	BinaryHex  string
}

var contractIDTestCases = []contractIDTestCase{{
	ContractID: "tz1KqTpEZ7Yob7QbPE4Hy4Wo8fHG8LhKxZSx",
	BinaryHex:  "0000" + "02298c03ed7d454a101eb7022bc95f7e5f41ac78",
}, {
	ContractID: "KT1WfRb2j1YPot5PR1CRPKowiteVmKGaA5NA",
	BinaryHex:  "01" + "f2342b8bc076c65f83a286152634e9c172ad08de" + "00",
}}

func TestContractIDMarshalBinary(t *testing.T) {
	require := require.New(t)
	for _, testCase := range contractIDTestCases {
		observed, err := testCase.ContractID.MarshalBinary()
		require.NoError(err)
		require.Equal(testCase.BinaryHex, hex.EncodeToString(observed))
	}
}

func TestContractIDUnmarshalBinary(t *testing.T) {
	require := require.New(t)
	for _, testCase := range contractIDTestCases {
		data, err := hex.DecodeString(testCase.BinaryHex)
		require.NoError(err)
		var observed tezosforge.ContractID
		err = observed.UnmarshalBinary(data)
		require.NoError(err)
		require.Equal(testCase.ContractID, observed)
	}
}

func TestContractIDMarshalBinaryTzOnly(t *testing.T) {
	require := require.New(t)
	contractID := tezosforge.ContractID("tz1KqTpEZ7Yob7QbPE4Hy4Wo8fHG8LhKxZSx")
	observed, err := contractID.MarshalBinaryTzOnly()
	require.NoError(err)
	require.Equal("00"+"02298c03ed7d454a101eb7022bc95f7e5f41ac78", hex.EncodeToString(observed))

	_, err = tezosforge.ContractID("KT1WfRb2j1YPot5PR1CRPKowiteVmKGaA5NA").MarshalBinaryTzOnly()
	require.Error(err)
}

func TestContractIDAccountType(t *testing.T) {
	require := require.New(t)
	implicit, err := tezosforge.ContractID("tz1KqTpEZ7Yob7QbPE4Hy4Wo8fHG8LhKxZSx").AccountType()
	require.NoError(err)
	require.Equal(tezosforge.AccountTypeImplicit, implicit)

	originated, err := tezosforge.ContractID("KT1WfRb2j1YPot5PR1CRPKowiteVmKGaA5NA").AccountType()
	require.NoError(err)
	require.Equal(tezosforge.AccountTypeOriginated, originated)
}

func TestContractIDEncodePubKeyHash(t *testing.T) {
	require := require.New(t)
	pkh, err := tezosforge.ContractID("tz1KqTpEZ7Yob7QbPE4Hy4Wo8fHG8LhKxZSx").EncodePubKeyHash()
	require.NoError(err)
	require.Equal("0002298c03ed7d454a101eb7022bc95f7e5f41ac78", hex.EncodeToString(pkh))

	_, err = tezosforge.ContractID("KT1WfRb2j1YPot5PR1CRPKowiteVmKGaA5NA").EncodePubKeyHash()
	require.Error(err)
}

func TestContractIDSmartRollupRoundTrip(t *testing.T) {
	require := require.New(t)
	payload := make([]byte, tezosforge.PrefixSmartRollupAddress.PayloadLength())
	for i := range payload {
		payload[i] = byte(i + 1)
	}
	encoded, err := tezosforge.Base58CheckEncode(tezosforge.PrefixSmartRollupAddress, payload)
	require.NoError(err)

	contractID := tezosforge.ContractID(encoded)
	marshaled, err := contractID.MarshalBinary()
	require.NoError(err)
	require.Equal(byte(tezosforge.ContractIDTagSmartRollup), marshaled[0])

	var roundTripped tezosforge.ContractID
	err = roundTripped.UnmarshalBinary(marshaled)
	require.NoError(err)
	require.Equal(contractID, roundTripped)
}
