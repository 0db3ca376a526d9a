package wire

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// --- fixed-width scalar decoders ---
//
// Each follows the teacher's read_* naming but reports truncation as
// ErrNeedMoreData instead of panicking on a short slice, since these feed
// the framer's incremental parse loop (spec.md §4.D).

func DecodeBool(buf []byte, offset int) (bool, int, error) {
	if offset+1 > len(buf) {
		return false, 0, ErrNeedMoreData
	}
	return buf[offset] != 0, offset + 1, nil
}

func DecodeByte(buf []byte, offset int) (int8, int, error) {
	if offset+1 > len(buf) {
		return 0, 0, ErrNeedMoreData
	}
	return int8(buf[offset]), offset + 1, nil
}

func DecodeUByte(buf []byte, offset int) (uint8, int, error) {
	if offset+1 > len(buf) {
		return 0, 0, ErrNeedMoreData
	}
	return buf[offset], offset + 1, nil
}

func DecodeShort(buf []byte, offset int) (int16, int, error) {
	if offset+2 > len(buf) {
		return 0, 0, ErrNeedMoreData
	}
	return int16(binary.BigEndian.Uint16(buf[offset:])), offset + 2, nil
}

func DecodeUShort(buf []byte, offset int) (uint16, int, error) {
	if offset+2 > len(buf) {
		return 0, 0, ErrNeedMoreData
	}
	return binary.BigEndian.Uint16(buf[offset:]), offset + 2, nil
}

func DecodeInt(buf []byte, offset int) (int32, int, error) {
	if offset+4 > len(buf) {
		return 0, 0, ErrNeedMoreData
	}
	return int32(binary.BigEndian.Uint32(buf[offset:])), offset + 4, nil
}

func DecodeLong(buf []byte, offset int) (int64, int, error) {
	if offset+8 > len(buf) {
		return 0, 0, ErrNeedMoreData
	}
	return int64(binary.BigEndian.Uint64(buf[offset:])), offset + 8, nil
}

func DecodeFloat(buf []byte, offset int) (float32, int, error) {
	if offset+4 > len(buf) {
		return 0, 0, ErrNeedMoreData
	}
	return math.Float32frombits(binary.BigEndian.Uint32(buf[offset:])), offset + 4, nil
}

func DecodeDouble(buf []byte, offset int) (float64, int, error) {
	if offset+8 > len(buf) {
		return 0, 0, ErrNeedMoreData
	}
	return math.Float64frombits(binary.BigEndian.Uint64(buf[offset:])), offset + 8, nil
}

// DecodeAngle reads a rotation in 1/256ths of a full turn — a plain UByte
// with a protocol-specific meaning, per spec.md §3.
func DecodeAngle(buf []byte, offset int) (uint8, int, error) {
	return DecodeUByte(buf, offset)
}

// DecodeString reads a VarInt-length-prefixed UTF-8 string, enforcing the
// protocol cap and strict UTF-8 validity (spec.md §4.A — "Open question:
// read_String's ignored 'big' argument" is resolved here as strict
// decoding, no lossy error-handler override).
func DecodeString(buf []byte, offset int) (string, int, error) {
	length, next, err := DecodeVarInt(buf, offset)
	if err != nil {
		return "", 0, err
	}
	if length < 0 || length > maxStringLength {
		return "", 0, ErrMalformedString
	}
	end := next + int(length)
	if end > len(buf) {
		return "", 0, ErrNeedMoreData
	}
	raw := buf[next:end]
	if !utf8.Valid(raw) {
		return "", 0, ErrMalformedString
	}
	return string(raw), end, nil
}

// DecodeChat and DecodeIdentifier share String's wire shape.
func DecodeChat(buf []byte, offset int) (string, int, error) {
	return DecodeString(buf, offset)
}

func DecodeIdentifier(buf []byte, offset int) (string, int, error) {
	return DecodeString(buf, offset)
}

// DecodeUUIDBytes reads the raw 16 big-endian bytes of a UUID. Callers that
// keep the value convert it to google/uuid's uuid.UUID — this package stays
// dependency-free and deals only in raw wire shapes.
func DecodeUUIDBytes(buf []byte, offset int) ([16]byte, int, error) {
	var out [16]byte
	if offset+16 > len(buf) {
		return out, 0, ErrNeedMoreData
	}
	copy(out[:], buf[offset:offset+16])
	return out, offset + 16, nil
}

// signExtend reinterprets the low `bits` bits of v as two's-complement.
func signExtend(v int64, bits uint) int64 {
	shift := 64 - bits
	return (v << shift) >> shift
}

// DecodePosition reads the bit-packed x(26)/y(12)/z(26) Position per
// spec.md §3/§4.A.
func DecodePosition(buf []byte, offset int) (x, y, z int32, next int, err error) {
	raw, next, err := DecodeLong(buf, offset)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	x = int32(signExtend(raw>>38, 26))
	y = int32(signExtend((raw>>26)&0xFFF, 12))
	z = int32(signExtend(raw&0x3FFFFFF, 26))
	return x, y, z, next, nil
}

// --- encoders ---
//
// Encoders append to and return buf, mirroring EncodeVarInt, so callers can
// assemble an outbound packet body with a chain of calls instead of an
// io.Writer (the teacher's WritePacket builds a bytes.Buffer; this module
// builds a []byte the same way).

func EncodeBool(buf []byte, v bool) []byte {
	if v {
		return append(buf, 1)
	}
	return append(buf, 0)
}

func EncodeByte(buf []byte, v int8) []byte   { return append(buf, byte(v)) }
func EncodeUByte(buf []byte, v uint8) []byte { return append(buf, v) }

func EncodeShort(buf []byte, v int16) []byte {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], uint16(v))
	return append(buf, tmp[:]...)
}

func EncodeUShort(buf []byte, v uint16) []byte {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	return append(buf, tmp[:]...)
}

func EncodeInt(buf []byte, v int32) []byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], uint32(v))
	return append(buf, tmp[:]...)
}

func EncodeLong(buf []byte, v int64) []byte {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], uint64(v))
	return append(buf, tmp[:]...)
}

func EncodeFloat(buf []byte, v float32) []byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], math.Float32bits(v))
	return append(buf, tmp[:]...)
}

func EncodeDouble(buf []byte, v float64) []byte {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], math.Float64bits(v))
	return append(buf, tmp[:]...)
}

func EncodeAngle(buf []byte, v uint8) []byte { return EncodeUByte(buf, v) }

func EncodeString(buf []byte, s string) []byte {
	buf = EncodeVarInt(buf, int32(len(s)))
	return append(buf, s...)
}

func EncodeChat(buf []byte, s string) []byte       { return EncodeString(buf, s) }
func EncodeIdentifier(buf []byte, s string) []byte { return EncodeString(buf, s) }

// EncodePosition packs x/y/z into the wire's 64-bit form. Out-of-range
// coordinates are masked to their field width rather than rejected, matching
// the teacher's and the original's unchecked bit-packing.
func EncodePosition(buf []byte, x, y, z int32) []byte {
	packed := (int64(x)&0x3FFFFFF)<<38 | (int64(y)&0xFFF)<<26 | (int64(z) & 0x3FFFFFF)
	return EncodeLong(buf, packed)
}

// EncodeUUIDBytes appends the 16 big-endian bytes of a UUID unchanged.
// Spec.md §9 notes the original's encoder raises NotImplementedError for
// outbound UUIDs; this client likewise never needs to emit one (handshake
// and login-start carry no UUID), so this helper exists only for tests
// exercising the decode/encode round trip, not for any outbound packet.
func EncodeUUIDBytes(buf []byte, v [16]byte) []byte {
	return append(buf, v[:]...)
}
