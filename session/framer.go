// Package session implements the framing and session engine: the byte
// demultiplexer, optional zlib compression layer, the LOGIN/PLAY/DISCONNECT
// state machine, and the concurrent receive/process pumps that make up
// the client (spec.md §2, components D-G).
//
// The buffer-wait design note in spec.md §9 ("replace the polling
// parse-loop with a condition variable awoken on every append") is
// implemented directly here rather than in the teacher, whose handler.go
// has no analogous buffering: the teacher reads one length-prefixed packet
// per connection loop iteration straight off a bufio.Reader. This module's
// receive and parse paths run on separate goroutines (spec.md §5), so the
// buffer needs its own synchronization instead of riding the reader's.
package session

import (
	"bytes"
	"compress/zlib"
	"io"
	"sync"

	"mcproto/wire"
)

// Frame is one fully extracted wire frame.
type Frame struct {
	// Raw holds the exact bytes received for this frame (length prefix +
	// body), whatever the compression form — Keep-Alive echoes Raw
	// verbatim (spec.md §8 scenario 6).
	Raw []byte
	// PacketID and Payload are decoded from the frame body, with
	// decompression already applied if compression is enabled.
	PacketID int32
	Payload  []byte
}

// Framer is a single-producer/single-consumer byte queue: the receive pump
// calls Append, the process pump calls Next. It owns the inbound buffer
// (spec.md §3's inbound_buffer) and the on/off compression flag (spec.md
// §3's compression_enabled — once set, it is never cleared).
type Framer struct {
	mu                 sync.Mutex
	cond               *sync.Cond
	buf                []byte
	compressionEnabled bool
	closed             bool
}

func NewFramer() *Framer {
	f := &Framer{}
	f.cond = sync.NewCond(&f.mu)
	return f
}

// Append adds newly-received bytes to the buffer and wakes any waiter.
func (f *Framer) Append(data []byte) {
	f.mu.Lock()
	f.buf = append(f.buf, data...)
	f.mu.Unlock()
	f.cond.Broadcast()
}

// EnableCompression flips compression_enabled on. Idempotent; never
// cleared once set, per spec.md §3.
func (f *Framer) EnableCompression() {
	f.mu.Lock()
	f.compressionEnabled = true
	f.mu.Unlock()
}

// Close unblocks any goroutine waiting in Next with ErrConnectionClosed.
func (f *Framer) Close() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	f.cond.Broadcast()
}

// Next blocks until a complete frame is buffered, decodes it, and drains
// the consumed prefix. It returns ErrConnectionClosed once Close has been
// called and no further complete frame remains.
func (f *Framer) Next() (*Frame, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for {
		frame, consumed, err := tryExtract(f.buf, f.compressionEnabled)
		if err == nil {
			f.buf = f.buf[consumed:]
			return frame, nil
		}
		if err != wire.ErrNeedMoreData {
			return nil, err
		}
		if f.closed {
			return nil, ErrConnectionClosed
		}
		f.cond.Wait()
	}
}

// tryExtract implements spec.md §4.D's extraction algorithm: find the
// earliest byte whose high bit is 0 within the length VarInt's prefix,
// decode the length, and only then check whether the whole frame is
// buffered. It never consumes partial data — "frames are consumed whole or
// not at all" (spec.md §3).
func tryExtract(buf []byte, compressionEnabled bool) (*Frame, int, error) {
	terminator := -1
	scanLimit := len(buf)
	if scanLimit > 5 {
		scanLimit = 5
	}
	for i := 0; i < scanLimit; i++ {
		if buf[i]&0x80 == 0 {
			terminator = i
			break
		}
	}
	if terminator == -1 {
		if len(buf) >= 5 {
			return nil, 0, wire.ErrMalformedVarInt
		}
		return nil, 0, wire.ErrNeedMoreData
	}

	length, prefixSize, err := wire.DecodeVarInt(buf, 0)
	if err != nil {
		return nil, 0, err
	}
	if length < 0 {
		return nil, 0, wire.ErrMalformedVarInt
	}

	total := prefixSize + int(length)
	if len(buf) < total {
		return nil, 0, wire.ErrNeedMoreData
	}

	raw := make([]byte, total)
	copy(raw, buf[:total])
	body := raw[prefixSize:total]

	packetID, payload, err := decodeBody(body, compressionEnabled)
	if err != nil {
		return nil, 0, err
	}

	return &Frame{Raw: raw, PacketID: packetID, Payload: payload}, total, nil
}

// decodeBody strips the compression layer (if enabled) and returns the
// packet id and remaining payload, per spec.md §4.D.
func decodeBody(body []byte, compressionEnabled bool) (int32, []byte, error) {
	content := body
	if compressionEnabled {
		uncompressedSize, next, err := wire.DecodeVarInt(body, 0)
		if err != nil {
			return 0, nil, err
		}
		blob := body[next:]
		if uncompressedSize == 0 {
			content = blob
		} else {
			inflated, err := inflate(blob, int(uncompressedSize))
			if err != nil {
				return 0, nil, err
			}
			content = inflated
		}
	}

	packetID, payloadStart, err := wire.DecodeVarInt(content, 0)
	if err != nil {
		return 0, nil, err
	}
	return packetID, content[payloadStart:], nil
}

// inflate decompresses blob and requires the result to be exactly size
// bytes, per spec.md §4.D ("must inflate to exactly uncompressed_size
// bytes").
func inflate(blob []byte, size int) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(blob))
	if err != nil {
		return nil, ErrCompressionError
	}
	defer r.Close()
	out := make([]byte, size)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, ErrCompressionError
	}
	// Confirm there is no trailing data beyond the declared size.
	var extra [1]byte
	if n, _ := r.Read(extra[:]); n != 0 {
		return nil, ErrCompressionError
	}
	return out, nil
}

// EncodeFrame builds an outbound wire frame for (packetID, payload),
// applying the session's compression policy. When compressionEnabled is
// false, compress is ignored and no per-frame marker is emitted (spec.md
// §4.D). The outer length is the byte length of the framed content
// (uncompressed_length + data_blob) — spec.md §9 flags the original's
// double-count of the uncompressed length prefix as a bug; this follows
// the corrected formula.
func EncodeFrame(packetID int32, payload []byte, compressionEnabled, compress bool) []byte {
	inner := wire.EncodeVarInt(nil, packetID)
	inner = append(inner, payload...)

	if !compressionEnabled {
		frame := wire.EncodeVarInt(nil, int32(len(inner)))
		return append(frame, inner...)
	}

	var packet []byte
	if compress {
		compressed := deflate(inner)
		packet = wire.EncodeVarInt(nil, int32(len(inner)))
		packet = append(packet, compressed...)
	} else {
		packet = wire.EncodeVarInt(nil, 0)
		packet = append(packet, inner...)
	}
	frame := wire.EncodeVarInt(nil, int32(len(packet)))
	return append(frame, packet...)
}

func deflate(data []byte) []byte {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	w.Write(data)
	w.Close()
	return buf.Bytes()
}
