package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcproto/wire"
)

func buildFrame(packetID int32, payload []byte) []byte {
	return EncodeFrame(packetID, payload, false, false)
}

func TestFramerAllAtOnce(t *testing.T) {
	f := NewFramer()
	frame := buildFrame(0x00, []byte{0x01, 0x02, 0x03})
	f.Append(frame)

	got, err := f.Next()
	require.NoError(t, err)
	assert.EqualValues(t, 0x00, got.PacketID)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, got.Payload)
	assert.Equal(t, frame, got.Raw)
}

func TestFramerByteAtATime(t *testing.T) {
	f := NewFramer()
	frame := buildFrame(0x05, []byte("hello"))

	results := make(chan *Frame, 1)
	errs := make(chan error, 1)
	go func() {
		got, err := f.Next()
		results <- got
		errs <- err
	}()

	for _, b := range frame {
		f.Append([]byte{b})
	}

	require.NoError(t, <-errs)
	got := <-results
	assert.EqualValues(t, 0x05, got.PacketID)
	assert.Equal(t, []byte("hello"), got.Payload)
}

func TestFramerMultipleFramesInOneAppend(t *testing.T) {
	f := NewFramer()
	first := buildFrame(0x01, []byte{0xAA})
	second := buildFrame(0x02, []byte{0xBB, 0xCC})
	f.Append(append(append([]byte{}, first...), second...))

	got1, err := f.Next()
	require.NoError(t, err)
	assert.EqualValues(t, 0x01, got1.PacketID)

	got2, err := f.Next()
	require.NoError(t, err)
	assert.EqualValues(t, 0x02, got2.PacketID)
}

func TestFramerCloseUnblocksWaiter(t *testing.T) {
	f := NewFramer()
	errs := make(chan error, 1)
	go func() {
		_, err := f.Next()
		errs <- err
	}()
	f.Close()
	assert.ErrorIs(t, <-errs, ErrConnectionClosed)
}

func TestEncodeFrameCompressedBelowThreshold(t *testing.T) {
	payload := []byte{0x01, 0x02}
	frame := EncodeFrame(0x00, payload, true, false)

	f := NewFramer()
	f.EnableCompression()
	f.Append(frame)
	got, err := f.Next()
	require.NoError(t, err)
	assert.EqualValues(t, 0x00, got.PacketID)
	assert.Equal(t, payload, got.Payload)
}

func TestEncodeFrameCompressedAboveThreshold(t *testing.T) {
	payload := make([]byte, 512)
	for i := range payload {
		payload[i] = byte(i)
	}
	frame := EncodeFrame(0x21, payload, true, true)

	f := NewFramer()
	f.EnableCompression()
	f.Append(frame)
	got, err := f.Next()
	require.NoError(t, err)
	assert.EqualValues(t, 0x21, got.PacketID)
	assert.Equal(t, payload, got.Payload)
}

func TestTryExtractMalformedVarIntPrefix(t *testing.T) {
	buf := []byte{0x80, 0x80, 0x80, 0x80, 0x80}
	_, _, err := tryExtract(buf, false)
	assert.ErrorIs(t, err, wire.ErrMalformedVarInt)
}

func TestTryExtractNeedsMoreData(t *testing.T) {
	frame := buildFrame(0x00, []byte{0x01, 0x02, 0x03})
	_, _, err := tryExtract(frame[:len(frame)-1], false)
	assert.ErrorIs(t, err, wire.ErrNeedMoreData)
}
