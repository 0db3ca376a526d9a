package nbt

import (
	"encoding/binary"
	"math"
)

// Encode appends the wire encoding of a named tag (type byte + name header
// + payload) to buf. It is the inverse of Parse/parseTag and is used both
// by outbound packets that carry NBT (none in this client's outbound set
// today) and by the idempotence property in spec.md §8.
func Encode(buf []byte, tag Tag) []byte {
	return encodeTag(buf, tag, true)
}

func encodeTag(buf []byte, tag Tag, withType bool) []byte {
	if withType {
		buf = append(buf, byte(tag.Type))
		if tag.Type != TagEnd {
			buf = appendNameHeader(buf, tag.Name)
		}
	}
	return encodePayload(buf, tag)
}

func appendNameHeader(buf []byte, name string) []byte {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], uint16(len(name)))
	buf = append(buf, tmp[:]...)
	return append(buf, name...)
}

func encodePayload(buf []byte, tag Tag) []byte {
	switch tag.Type {
	case TagEnd:
		return buf
	case TagByte:
		return append(buf, byte(tag.Value.(int8)))
	case TagShort:
		var tmp [2]byte
		binary.BigEndian.PutUint16(tmp[:], uint16(tag.Value.(int16)))
		return append(buf, tmp[:]...)
	case TagInt:
		var tmp [4]byte
		binary.BigEndian.PutUint32(tmp[:], uint32(tag.Value.(int32)))
		return append(buf, tmp[:]...)
	case TagLong:
		var tmp [8]byte
		binary.BigEndian.PutUint64(tmp[:], uint64(tag.Value.(int64)))
		return append(buf, tmp[:]...)
	case TagFloat:
		var tmp [4]byte
		binary.BigEndian.PutUint32(tmp[:], math.Float32bits(tag.Value.(float32)))
		return append(buf, tmp[:]...)
	case TagDouble:
		var tmp [8]byte
		binary.BigEndian.PutUint64(tmp[:], math.Float64bits(tag.Value.(float64)))
		return append(buf, tmp[:]...)
	case TagByteArray:
		arr := tag.Value.([]int8)
		buf = appendInt32(buf, int32(len(arr)))
		for _, b := range arr {
			buf = append(buf, byte(b))
		}
		return buf
	case TagString:
		return appendNameHeader(buf, tag.Value.(string))
	case TagList:
		children := tag.Value.([]Tag)
		buf = append(buf, byte(tag.ChildType))
		buf = appendInt32(buf, int32(len(children)))
		for _, c := range children {
			buf = encodeTag(buf, c, false)
		}
		return buf
	case TagCompound:
		children := tag.Value.([]Tag)
		for _, c := range children {
			buf = encodeTag(buf, c, true)
		}
		return append(buf, byte(TagEnd))
	case TagIntArray:
		arr := tag.Value.([]int32)
		buf = appendInt32(buf, int32(len(arr)))
		for _, v := range arr {
			buf = appendInt32(buf, v)
		}
		return buf
	case TagLongArray:
		arr := tag.Value.([]int64)
		buf = appendInt32(buf, int32(len(arr)))
		for _, v := range arr {
			var tmp [8]byte
			binary.BigEndian.PutUint64(tmp[:], uint64(v))
			buf = append(buf, tmp[:]...)
		}
		return buf
	}
	return buf
}

func appendInt32(buf []byte, v int32) []byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], uint32(v))
	return append(buf, tmp[:]...)
}
