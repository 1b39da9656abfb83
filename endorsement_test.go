package tezosforge_test

import (
	"encoding/hex"
	"testing"

	tezosforge "github.com/anchorageoss/tezosforge"
	"github.com/stretchr/testify/require"
)

func TestEncodeEndorsement(t *testing.T) {
	require := require.New(t)
	endorsement := &tezosforge.Endorsement{
		Level: 9,
	}
	encodedBytes, err := endorsement.MarshalBinary()
	require.NoError(err)
	encoded := hex.EncodeToString(encodedBytes)
	expected := "0000000009"
	require.Equal(expected, encoded)
}

func TestDecodeEndorsement(t *testing.T) {
	require := require.New(t)
	encoded, err := hex.DecodeString("0000000009")
	require.NoError(err)
	endorsement := tezosforge.Endorsement{}
	require.NoError(endorsement.UnmarshalBinary(encoded))
	require.Equal(int32(9), endorsement.Level)
}
