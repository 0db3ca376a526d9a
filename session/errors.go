package session

import (
	"errors"
	"fmt"
)

// Session-level error kinds, per spec.md §7. Decoder-level errors
// (wire.ErrNeedMoreData, wire.ErrMalformedVarInt/String,
// nbt.MalformedError, proto.MalformedError) bubble up through these.
var (
	// ErrUnsupportedPacket is fatal on the session: a packet id the
	// implementation refuses to handle (Encryption-Request) was received.
	ErrUnsupportedPacket = errors.New("session: unsupported packet")

	// ErrConnectionClosed is terminal: both pumps exit, no state rollback.
	ErrConnectionClosed = errors.New("session: connection closed")

	// ErrCompressionError is fatal: zlib inflate/deflate failed.
	ErrCompressionError = errors.New("session: compression error")

	// errNotConnected guards API misuse (send before connect).
	errNotConnected = errors.New("session: not connected")
)

// UnknownPacketError is the non-fatal diagnostic for a packet id the state
// machine doesn't recognize in the current state — the frame is already
// fully consumed (the length prefix is trusted) and its payload is
// dropped, per spec.md §7.
type UnknownPacketError struct {
	ID    int32
	State string
}

func (e *UnknownPacketError) Error() string {
	return fmt.Sprintf("session: unknown packet %#04x in state %s", e.ID, e.State)
}
