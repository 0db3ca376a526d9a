package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcproto/nbt"
	"mcproto/wire"
)

func TestDecodeSlotEmpty(t *testing.T) {
	buf := wire.EncodeShort(nil, -1)
	slot, next, err := DecodeSlot(buf, 0)
	require.NoError(t, err)
	assert.True(t, slot.Empty)
	assert.Equal(t, 2, next)
}

func TestSlotRoundTripWithoutNBT(t *testing.T) {
	original := Slot{ItemID: 264, Count: 3, Damage: 0}
	encoded := EncodeSlot(nil, original)
	decoded, next, err := DecodeSlot(encoded, 0)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
	assert.Equal(t, len(encoded), next)
}

func TestSlotRoundTripWithNBT(t *testing.T) {
	tag := nbt.Tag{Type: nbt.TagCompound, Name: "tag", Value: []nbt.Tag{
		{Type: nbt.TagString, Name: "name", Value: "enchanted"},
	}}
	original := Slot{ItemID: 276, Count: 1, Damage: 0, NBT: &tag}
	encoded := EncodeSlot(nil, original)

	decoded, next, err := DecodeSlot(encoded, 0)
	require.NoError(t, err)
	assert.Equal(t, len(encoded), next)
	require.NotNil(t, decoded.NBT)
	assert.Equal(t, tag, *decoded.NBT)
}

func TestDecodeFixedPointCoord(t *testing.T) {
	assert.Equal(t, 0.0, DecodeFixedPointCoord(0))
	assert.InDelta(t, 1.5, DecodeFixedPointCoord(48), 0.001)
	assert.Equal(t, -1.0, DecodeFixedPointCoord(-32))
}

func TestDecodeEntityMetadataTerminator(t *testing.T) {
	buf := []byte{0x7F}
	entries, next, err := DecodeEntityMetadata(buf, 0)
	require.NoError(t, err)
	assert.Nil(t, entries)
	assert.Equal(t, 1, next)
}

func TestDecodeEntityMetadataByteAndString(t *testing.T) {
	var buf []byte
	buf = append(buf, 0x00) // type 0 (byte), key 0
	buf = append(buf, 0x05)
	buf = append(buf, 0x80) // type 4 (string), key 0
	buf = wire.EncodeString(buf, "hi")
	buf = append(buf, 0x7F)

	entries, next, err := DecodeEntityMetadata(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, len(buf), next)
	require.Len(t, entries, 2)
	assert.EqualValues(t, 5, entries[0].Value)
	assert.Equal(t, "hi", entries[1].Value)
}

func TestDecodeChunkColumnSingleSection(t *testing.T) {
	bitMask := uint16(0x01)
	var buf []byte
	for i := 0; i < 4096; i++ {
		buf = append(buf, 0x10, 0x00) // block id 1, meta 0, little-endian
	}
	for i := 0; i < 2048; i++ {
		buf = append(buf, 0x00)
	}
	for i := 0; i < 2048; i++ {
		buf = append(buf, 0xFF)
	}
	for i := 0; i < 256; i++ {
		buf = append(buf, byte(i))
	}

	chunk, next, err := DecodeChunkColumn(buf, 0, bitMask, true, true)
	require.NoError(t, err)
	assert.Equal(t, len(buf), next)
	assert.Len(t, chunk.Blocks, 4096)
	assert.EqualValues(t, 1, chunk.Blocks[0].BlockID)
	assert.EqualValues(t, 0xF, chunk.Blocks[0].SkyLight)
	assert.Len(t, chunk.Biome, 256)
}

func TestDecodeChunkColumnNoSections(t *testing.T) {
	chunk, next, err := DecodeChunkColumn(nil, 0, 0, false, false)
	require.NoError(t, err)
	assert.Equal(t, 0, next)
	assert.Empty(t, chunk.Blocks)
	assert.Nil(t, chunk.Biome)
}
