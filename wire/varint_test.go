package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarIntRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		v    int32
		hex  []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"127", 127, []byte{0x7F}},
		{"128", 128, []byte{0x80, 0x01}},
		{"minus one", -1, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}},
		{"max int32", 2147483647, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x07}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			encoded := EncodeVarInt(nil, tc.v)
			assert.Equal(t, tc.hex, encoded)
			assert.Equal(t, len(tc.hex), VarIntSize(tc.v))

			decoded, next, err := DecodeVarInt(encoded, 0)
			require.NoError(t, err)
			assert.Equal(t, tc.v, decoded)
			assert.Equal(t, len(encoded), next)
		})
	}
}

func TestDecodeVarIntTruncated(t *testing.T) {
	_, _, err := DecodeVarInt([]byte{0x80, 0x80, 0x80, 0x80, 0x80}, 0)
	assert.ErrorIs(t, err, ErrMalformedVarInt)
}

func TestDecodeVarIntOffset(t *testing.T) {
	buf := []byte{0xFF, 0x01, 0x7F}
	v, next, err := DecodeVarInt(buf, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, v)
	assert.Equal(t, 2, next)
}

func TestVarLongRoundTrip(t *testing.T) {
	values := []int64{0, 127, 128, -1, 9223372036854775807}
	for _, v := range values {
		encoded := EncodeVarLong(nil, v)
		decoded, next, err := DecodeVarLong(encoded, 0)
		require.NoError(t, err)
		assert.Equal(t, v, decoded)
		assert.Equal(t, len(encoded), next)
	}
}
