package tezosforge_test

import (
	"encoding/hex"
	"testing"

	tezosforge "github.com/anchorageoss/tezosforge"
	"github.com/stretchr/testify/require"
)

func TestPublicKeyMarshalBinary(t *testing.T) {
	require := require.New(t)
	pk := tezosforge.PublicKey("edpkuBknW28nW72KG6RoHtYW7p12T6GKc7nAbwYX5m8Wd9sDVC9yav")
	observed, err := pk.MarshalBinary()
	require.NoError(err)
	require.Equal(byte(tezosforge.PubKeyTagEd25519), observed[0])
	require.Len(observed, 1+tezosforge.PubKeyLenEd25519)
}

func TestPublicKeyUnmarshalBinaryRoundTrip(t *testing.T) {
	require := require.New(t)
	pk := tezosforge.PublicKey("edpkuBknW28nW72KG6RoHtYW7p12T6GKc7nAbwYX5m8Wd9sDVC9yav")
	marshaled, err := pk.MarshalBinary()
	require.NoError(err)

	var roundTripped tezosforge.PublicKey
	err = roundTripped.UnmarshalBinary(marshaled)
	require.NoError(err)
	require.Equal(pk, roundTripped)
}

func TestPublicKeyUnmarshalBinaryInvalidTag(t *testing.T) {
	require := require.New(t)
	data, err := hex.DecodeString("ff" + "00")
	require.NoError(err)
	var pk tezosforge.PublicKey
	err = pk.UnmarshalBinary(data)
	require.Error(err)
}

func TestPublicKeyUnmarshalBinaryTooShort(t *testing.T) {
	require := require.New(t)
	var pk tezosforge.PublicKey
	err := pk.UnmarshalBinary([]byte{})
	require.Error(err)
}
