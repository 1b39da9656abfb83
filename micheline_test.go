package tezosforge_test

import (
	"encoding/hex"
	"testing"

	tezosforge "github.com/anchorageoss/tezosforge"
	"github.com/stretchr/testify/require"
)

func TestMichelineEncodings(t *testing.T) {
	emptyString := tezosforge.MichelineString("")
	shortString := tezosforge.MichelineString("a")
	tests := []struct {
		name    string
		node    tezosforge.MichelineNode
		want    []byte
		wantErr bool
	}{
		{
			name: "empty string",
			node: &emptyString,
			want: []byte{0x1, 0x0, 0x0, 0x0, 0x0},
		}, {
			name: "short string",
			node: &shortString,
			want: []byte{0x1, 0x0, 0x0, 0x0, 0x1, 0x61},
		}, {
			name: "prim0",
			node: &tezosforge.MichelinePrim{Prim: "unit"},
			want: []byte{0x3, 0x69},
		}, {
			name: "int",
			node: tezosforge.NewMichelineInt(-1),
			want: []byte{0x0, 0x41},
		}, {
			name: "bytes",
			node: tezosforge.MichelineBytes{0xde, 0xad, 0xbe, 0xef},
			want: []byte{0xa, 0x0, 0x0, 0x0, 0x4, 0xde, 0xad, 0xbe, 0xef},
		}, {
			name: "empty seq",
			node: tezosforge.MichelineSeq{},
			want: []byte{0x2, 0x0, 0x0, 0x0, 0x0},
		}, {
			name: "prim1 with arg",
			node: &tezosforge.MichelinePrim{Prim: "Some", Args: []tezosforge.MichelineNode{tezosforge.NewMichelineInt(1)}},
			want: []byte{0x5, 0x9, 0x0, 0x1},
		}, {
			name: "prim2 annotated promotes to primN",
			node: &tezosforge.MichelinePrim{
				Prim:   "Pair",
				Args:   []tezosforge.MichelineNode{tezosforge.NewMichelineInt(1), tezosforge.NewMichelineInt(2)},
				Annots: []string{"%a"},
			},
			want: []byte{0x9, 0x7, 0x0, 0x0, 0x0, 0x4, 0x0, 0x1, 0x0, 0x2, 0x0, 0x0, 0x0, 0x2, 0x25, 0x61},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.node.MarshalBinary()
			if (err != nil) != tt.wantErr {
				t.Errorf("MarshalBinary() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMichelinePrimRoundTrip(t *testing.T) {
	require := require.New(t)
	original := &tezosforge.MichelinePrim{
		Prim: "Pair",
		Args: []tezosforge.MichelineNode{
			tezosforge.NewMichelineInt(42),
			tezosforge.MichelineString("hello"),
		},
	}
	encoded, err := original.MarshalBinary()
	require.NoError(err)

	var decoded tezosforge.MichelinePrim
	require.NoError(decoded.UnmarshalBinary(encoded))
	require.Equal("Pair", decoded.Prim)
	require.Len(decoded.Args, 2)
}

func TestMichelineSeqRoundTrip(t *testing.T) {
	require := require.New(t)
	original := tezosforge.MichelineSeq{
		tezosforge.NewMichelineInt(1),
		tezosforge.MichelineString("x"),
	}
	encoded, err := original.MarshalBinary()
	require.NoError(err)

	var decoded tezosforge.MichelineSeq
	require.NoError(decoded.UnmarshalBinary(encoded))
	require.Len(decoded, 2)
}

func TestMichelineUnknownPrim(t *testing.T) {
	require := require.New(t)
	bogus := &tezosforge.MichelinePrim{Prim: "NOT_A_REAL_PRIM"}
	_, err := bogus.MarshalBinary()
	require.Error(err)
}

func TestMichelineDecodeFromHex(t *testing.T) {
	require := require.New(t)
	// {"prim": "unit"}
	data, err := hex.DecodeString("0369")
	require.NoError(err)
	var prim tezosforge.MichelinePrim
	require.NoError(prim.UnmarshalBinary(data))
	require.Equal("unit", prim.Prim)
}
