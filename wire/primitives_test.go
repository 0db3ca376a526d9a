package wire

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionRoundTrip(t *testing.T) {
	encoded := EncodePosition(nil, 1, 64, 2)
	x, y, z, next, err := DecodePosition(encoded, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, x)
	assert.EqualValues(t, 64, y)
	assert.EqualValues(t, 2, z)
	assert.Equal(t, 8, next)
}

func TestPositionNegativeCoordinates(t *testing.T) {
	encoded := EncodePosition(nil, -1, -1, -1)
	x, y, z, _, err := DecodePosition(encoded, 0)
	require.NoError(t, err)
	assert.EqualValues(t, -1, x)
	assert.EqualValues(t, -1, y)
	assert.EqualValues(t, -1, z)
}

func TestStringRoundTrip(t *testing.T) {
	encoded := EncodeString(nil, "Herobrine")
	expected := append([]byte{0x09}, []byte("Herobrine")...)
	assert.Equal(t, expected, encoded)

	decoded, next, err := DecodeString(encoded, 0)
	require.NoError(t, err)
	assert.Equal(t, "Herobrine", decoded)
	assert.Equal(t, len(encoded), next)
}

func TestDecodeStringRejectsInvalidUTF8(t *testing.T) {
	buf := append(EncodeVarInt(nil, 1), 0xFF)
	_, _, err := DecodeString(buf, 0)
	assert.ErrorIs(t, err, ErrMalformedString)
}

func TestDecodeStringRejectsOversizedLength(t *testing.T) {
	buf := EncodeVarInt(nil, int32(maxStringLength+1))
	_, _, err := DecodeString(buf, 0)
	assert.ErrorIs(t, err, ErrMalformedString)
}

func TestDecodeStringNeedsMoreData(t *testing.T) {
	buf := EncodeVarInt(nil, 5)
	_, _, err := DecodeString(buf, 0)
	assert.ErrorIs(t, err, ErrNeedMoreData)
}

func TestDecodeStringLongValue(t *testing.T) {
	long := strings.Repeat("a", 300)
	encoded := EncodeString(nil, long)
	decoded, _, err := DecodeString(encoded, 0)
	require.NoError(t, err)
	assert.Equal(t, long, decoded)
}

func TestScalarRoundTrips(t *testing.T) {
	b, _, err := DecodeBool(EncodeBool(nil, true), 0)
	require.NoError(t, err)
	assert.True(t, b)

	sb, _, err := DecodeByte(EncodeByte(nil, -5), 0)
	require.NoError(t, err)
	assert.EqualValues(t, -5, sb)

	ub, _, err := DecodeUByte(EncodeUByte(nil, 200), 0)
	require.NoError(t, err)
	assert.EqualValues(t, 200, ub)

	sh, _, err := DecodeShort(EncodeShort(nil, -1234), 0)
	require.NoError(t, err)
	assert.EqualValues(t, -1234, sh)

	i, _, err := DecodeInt(EncodeInt(nil, -123456), 0)
	require.NoError(t, err)
	assert.EqualValues(t, -123456, i)

	l, _, err := DecodeLong(EncodeLong(nil, -1234567890123), 0)
	require.NoError(t, err)
	assert.EqualValues(t, -1234567890123, l)

	f, _, err := DecodeFloat(EncodeFloat(nil, 3.5), 0)
	require.NoError(t, err)
	assert.Equal(t, float32(3.5), f)

	d, _, err := DecodeDouble(EncodeDouble(nil, 3.5), 0)
	require.NoError(t, err)
	assert.Equal(t, 3.5, d)
}

func TestUUIDBytesRoundTrip(t *testing.T) {
	var id [16]byte
	for i := range id {
		id[i] = byte(i)
	}
	encoded := EncodeUUIDBytes(nil, id)
	decoded, next, err := DecodeUUIDBytes(encoded, 0)
	require.NoError(t, err)
	assert.Equal(t, id, decoded)
	assert.Equal(t, 16, next)
}
