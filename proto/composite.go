package proto

import (
	"fmt"
	"math/bits"

	"mcproto/nbt"
	"mcproto/wire"
)

// MalformedError reports a decode failure in a composite type, mirroring
// nbt.MalformedError so callers can type-switch on either (spec.md §7).
type MalformedError struct {
	Kind   string
	Offset int
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("proto: malformed %s at offset %d: %s", e.Kind, e.Offset, e.Reason)
}

func malformed(kind string, offset int, reason string) error {
	return &MalformedError{Kind: kind, Offset: offset, Reason: reason}
}

// Slot is an inventory cell: empty, or (item id, count, damage, optional
// NBT), per spec.md §3.
type Slot struct {
	Empty  bool
	ItemID int16
	Count  int8
	Damage int16
	NBT    *nbt.Tag
}

// DecodeSlot reads a Slot. On ItemID == -1 it returns the Empty variant,
// consuming only the 2-byte id (spec.md §4.C). A non-zero NBT presence
// flag re-anchors one byte earlier and parses a full NBT document there,
// per the teacher's data model and original_source's read_Slot.
func DecodeSlot(buf []byte, offset int) (Slot, int, error) {
	itemID, next, err := wire.DecodeShort(buf, offset)
	if err != nil {
		return Slot{}, 0, err
	}
	if itemID == -1 {
		return Slot{Empty: true, ItemID: itemID}, next, nil
	}

	count, next, err := wire.DecodeByte(buf, next)
	if err != nil {
		return Slot{}, 0, err
	}
	damage, next, err := wire.DecodeShort(buf, next)
	if err != nil {
		return Slot{}, 0, err
	}
	nbtFlag, next, err := wire.DecodeByte(buf, next)
	if err != nil {
		return Slot{}, 0, err
	}

	slot := Slot{ItemID: itemID, Count: count, Damage: damage}
	if nbtFlag != 0 {
		tag, nextAfterNBT, err := nbt.Parse(buf, next-1)
		if err != nil {
			return Slot{}, 0, malformed("slot", next-1, err.Error())
		}
		slot.NBT = &tag
		next = nextAfterNBT
	}
	return slot, next, nil
}

// EncodeSlot is DecodeSlot's inverse.
func EncodeSlot(buf []byte, s Slot) []byte {
	if s.Empty {
		return wire.EncodeShort(buf, -1)
	}
	buf = wire.EncodeShort(buf, s.ItemID)
	buf = wire.EncodeByte(buf, s.Count)
	buf = wire.EncodeShort(buf, s.Damage)
	if s.NBT != nil {
		// The document's leading TagCompound byte doubles as the non-zero
		// presence flag DecodeSlot rewinds over.
		buf = nbt.Encode(buf, *s.NBT)
	} else {
		buf = wire.EncodeByte(buf, 0)
	}
	return buf
}

// Block is one element of a chunk-column block array (spec.md §3).
type Block struct {
	BlockID   uint16
	BlockMeta uint8
	BlockLight uint8
	SkyLight  uint8
}

// ChunkColumn is the decoded block/light/biome data for one chunk column,
// per spec.md §3's Chunk column layout.
type ChunkColumn struct {
	Blocks []Block
	Biome  []byte // nil unless continuous was set
}

// DecodeChunkColumn decodes a chunk column whose section count is
// popcount(bitMask). Grounded on original_source's read_Chunk (renamed
// here to avoid colliding with the Go builtin `copy`/package naming, same
// layout).
func DecodeChunkColumn(buf []byte, offset int, bitMask uint16, continuous, skyLight bool) (ChunkColumn, int, error) {
	n := bits.OnesCount16(bitMask)
	blockCount := 4096 * n

	need := func(extra int) error {
		if offset+extra > len(buf) {
			return wire.ErrNeedMoreData
		}
		return nil
	}

	if err := need(blockCount * 2); err != nil {
		return ChunkColumn{}, 0, err
	}
	blocks := make([]Block, blockCount)
	for i := 0; i < blockCount; i++ {
		lo := buf[offset+i*2]
		hi := buf[offset+i*2+1]
		short := uint16(lo) | uint16(hi)<<8
		blocks[i].BlockID = short >> 4
		blocks[i].BlockMeta = uint8(short & 0xF)
	}
	offset += blockCount * 2

	lightCount := 2048 * n
	if err := need(lightCount); err != nil {
		return ChunkColumn{}, 0, err
	}
	for i := 0; i < lightCount; i++ {
		b := buf[offset+i]
		blocks[i*2].BlockLight = b & 0xF
		blocks[i*2+1].BlockLight = b >> 4
	}
	offset += lightCount

	if skyLight {
		if err := need(lightCount); err != nil {
			return ChunkColumn{}, 0, err
		}
		for i := 0; i < lightCount; i++ {
			b := buf[offset+i]
			blocks[i*2].SkyLight = b & 0xF
			blocks[i*2+1].SkyLight = b >> 4
		}
		offset += lightCount
	}

	var biome []byte
	if continuous {
		if err := need(256); err != nil {
			return ChunkColumn{}, 0, err
		}
		biome = make([]byte, 256)
		copy(biome, buf[offset:offset+256])
		offset += 256
	}

	return ChunkColumn{Blocks: blocks, Biome: biome}, offset, nil
}

// DecodeFixedPointCoord decodes the Spawn-Player (0x0c) fixed-point
// position encoding, distinct from the bit-packed Position type used
// elsewhere: `(raw & 0x1f) * (1/32) + (raw >> 5)` on a plain Int, per
// original_source's protocol_47.py (SPEC_FULL.md §12.3).
func DecodeFixedPointCoord(raw int32) float64 {
	return float64(raw&0x1f)*(1.0/32.0) + float64(raw>>5)
}

// MetadataEntry is one decoded entity-metadata slot (spec.md §4.C).
type MetadataEntry struct {
	Key   uint8
	Type  uint8
	Value any // int8, int16, int32, float32, string, Slot, or [3]int32/[3]float32
}

// DecodeEntityMetadata reads UBytes until the 0x7F terminator, decoding
// each indexed value per its 3-bit type tag (spec.md §4.C).
func DecodeEntityMetadata(buf []byte, offset int) ([]MetadataEntry, int, error) {
	var entries []MetadataEntry
	for {
		index, next, err := wire.DecodeUByte(buf, offset)
		if err != nil {
			return nil, 0, err
		}
		offset = next
		if index == 0x7F {
			break
		}
		valueType := (index >> 5) & 0x7
		key := index & 0x1F

		var value any
		switch valueType {
		case 0:
			v, n, err := wire.DecodeByte(buf, offset)
			if err != nil {
				return nil, 0, err
			}
			value, offset = v, n
		case 1:
			v, n, err := wire.DecodeShort(buf, offset)
			if err != nil {
				return nil, 0, err
			}
			value, offset = v, n
		case 2:
			v, n, err := wire.DecodeInt(buf, offset)
			if err != nil {
				return nil, 0, err
			}
			value, offset = v, n
		case 3:
			v, n, err := wire.DecodeFloat(buf, offset)
			if err != nil {
				return nil, 0, err
			}
			value, offset = v, n
		case 4:
			v, n, err := wire.DecodeString(buf, offset)
			if err != nil {
				return nil, 0, err
			}
			value, offset = v, n
		case 5:
			v, n, err := DecodeSlot(buf, offset)
			if err != nil {
				return nil, 0, err
			}
			value, offset = v, n
		case 6:
			x, n, err := wire.DecodeInt(buf, offset)
			if err != nil {
				return nil, 0, err
			}
			y, n, err := wire.DecodeInt(buf, n)
			if err != nil {
				return nil, 0, err
			}
			z, n, err := wire.DecodeInt(buf, n)
			if err != nil {
				return nil, 0, err
			}
			value, offset = [3]int32{x, y, z}, n
		case 7:
			x, n, err := wire.DecodeFloat(buf, offset)
			if err != nil {
				return nil, 0, err
			}
			y, n, err := wire.DecodeFloat(buf, n)
			if err != nil {
				return nil, 0, err
			}
			z, n, err := wire.DecodeFloat(buf, n)
			if err != nil {
				return nil, 0, err
			}
			value, offset = [3]float32{x, y, z}, n
		default:
			return nil, 0, malformed("entity metadata", offset, fmt.Sprintf("unknown value type %d", valueType))
		}

		entries = append(entries, MetadataEntry{Key: key, Type: uint8(valueType), Value: value})
	}
	return entries, offset, nil
}
