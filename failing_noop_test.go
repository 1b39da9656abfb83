package tezosforge_test

import (
	"encoding/hex"
	"testing"

	tezosforge "github.com/anchorageoss/tezosforge"
	"github.com/stretchr/testify/require"
)

func TestEncodeFailingNoop(t *testing.T) {
	require := require.New(t)
	noop := &tezosforge.FailingNoop{Arbitrary: "hello"}
	encodedBytes, err := noop.MarshalBinary()
	require.NoError(err)
	encoded := hex.EncodeToString(encodedBytes)
	expected := "110000000568656c6c6f"
	require.Equal(expected, encoded)
}

func TestDecodeFailingNoop(t *testing.T) {
	require := require.New(t)
	encoded, err := hex.DecodeString("110000000568656c6c6f")
	require.NoError(err)
	noop := tezosforge.FailingNoop{}
	require.NoError(noop.UnmarshalBinary(encoded))
	require.Equal("hello", noop.Arbitrary)
}
