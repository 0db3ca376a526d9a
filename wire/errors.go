// Package wire implements the primitive wire types carried by protocol
// version 47: fixed-width scalars, VarInt/VarLong, and length-prefixed
// strings. All decoders take a buffer and an offset and return the decoded
// value plus the offset just past it; they never move the cursor backward.
package wire

import "errors"

// ErrNeedMoreData means the buffer does not yet hold a complete value.
// It is not fatal — callers (the framer) wait for more bytes.
var ErrNeedMoreData = errors.New("wire: need more data")

// ErrMalformedVarInt covers VarInt/VarLong decodes that overrun their
// maximum group count or run off the end of the buffer mid-continuation.
var ErrMalformedVarInt = errors.New("wire: malformed varint")

// ErrMalformedString covers length-prefixed strings that exceed the
// protocol's cap or are not valid UTF-8.
var ErrMalformedString = errors.New("wire: malformed string")

// maxVarIntBytes and maxVarLongBytes bound the number of continuation
// groups a VarInt/VarLong may legally occupy: ceil(32/7) and ceil(64/7).
const (
	maxVarIntBytes  = 5
	maxVarLongBytes = 10
)

// maxStringLength is the protocol cap on String/Chat/Identifier payloads.
const maxStringLength = 32767
