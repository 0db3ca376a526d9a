package session

import (
	"fmt"
	"net"
	"sync"
	"sync/atomic"

	"mcproto/proto"
	"mcproto/wire"
)

const (
	handshakeNextStateLogin = 2
	handshakePacketID       = 0x00
	loginStartPacketID      = 0x00
	serverboundChatPacketID = 0x01
)

// Session is the client engine: one TCP connection, one Framer, one Info,
// and the two pumps spec.md §5 requires — a receive pump that only reads
// off the socket and a process pump that only dispatches already-framed
// packets. The teacher's handleConnection (main.go) runs both halves
// inline on one goroutine per connection; splitting them here is what the
// condition-variable Framer exists to support (session/framer.go's doc
// comment).
type Session struct {
	conn   net.Conn
	framer *Framer
	info   *Info

	stateMu sync.Mutex
	state   proto.State

	writerMu           sync.Mutex
	compressionEnabled bool

	handlersMu sync.Mutex
	handlers   handlers

	alive atomic.Bool
	wg    sync.WaitGroup

	lastErrMu sync.Mutex
	lastErr   error
}

// NewSession constructs an unconnected session.
func NewSession() *Session {
	return &Session{
		framer: NewFramer(),
		info:   &Info{},
		state:  proto.StateLogin,
	}
}

// Info returns a point-in-time snapshot of observed session facts.
func (s *Session) Info() Info {
	return s.info.Snapshot()
}

// State returns the current protocol state.
func (s *Session) State() proto.State {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return s.state
}

// Connect dials addr and starts the receive pump. The process pump starts
// once LoginAs has sent the handshake, since dispatch needs a state to
// begin in and nothing arrives before login-start is sent anyway.
func (s *Session) Connect(addr string) error {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("session: dial %s: %w", addr, err)
	}
	s.conn = conn
	s.alive.Store(true)

	s.wg.Add(1)
	go s.receivePump()
	return nil
}

// LoginAs sends the Handshake and Login-Start packets (spec.md §6) and
// starts the process pump.
func (s *Session) LoginAs(nickname, host string, port uint16) error {
	handshake := wire.EncodeVarInt(nil, proto.ProtocolVersion)
	handshake = wire.EncodeString(handshake, host)
	handshake = wire.EncodeUShort(handshake, port)
	handshake = wire.EncodeVarInt(handshake, handshakeNextStateLogin)
	if err := s.SendPacket(handshakePacketID, handshake, false); err != nil {
		return err
	}

	loginStart := wire.EncodeString(nil, nickname)
	if err := s.SendPacket(loginStartPacketID, loginStart, false); err != nil {
		return err
	}

	s.wg.Add(1)
	go s.processPump()
	return nil
}

// SendChatMessage sends a serverbound Chat Message packet.
func (s *Session) SendChatMessage(text string) error {
	payload := wire.EncodeString(nil, text)
	return s.SendPacket(serverboundChatPacketID, payload, false)
}

// SendPacket frames and writes one outbound packet, serialized against
// every other write (including the Keep-Alive echo) by writerMu — spec.md
// §5's "all outbound writes are serialized" guarantee.
func (s *Session) SendPacket(packetID int32, payload []byte, compress bool) error {
	if !s.alive.Load() {
		return errNotConnected
	}
	s.writerMu.Lock()
	frame := EncodeFrame(packetID, payload, s.compressionEnabled, compress)
	_, err := s.conn.Write(frame)
	s.writerMu.Unlock()
	if err != nil {
		s.fail(err)
		return err
	}
	return nil
}

// receivePump only reads off the socket and appends to the Framer
// (spec.md §5: "the pump that reads the socket must not also parse
// frames").
func (s *Session) receivePump() {
	defer s.wg.Done()
	buf := make([]byte, 4096)
	for {
		n, err := s.conn.Read(buf)
		if n > 0 {
			s.framer.Append(buf[:n])
		}
		if err != nil {
			s.fail(err)
			return
		}
	}
}

// processPump blocks on Framer.Next, dispatches the frame through the
// state machine, and invokes at most one handler per frame before moving
// on — spec.md §5's "packet n+1 is not dispatched until n's handler
// returns".
func (s *Session) processPump() {
	defer s.wg.Done()
	for {
		frame, err := s.framer.Next()
		if err != nil {
			s.fail(err)
			return
		}

		state := s.State()
		result, err := Dispatch(frame, state, s.info)
		if err != nil {
			s.fail(err)
			return
		}

		if result.EnableCompress {
			s.framer.EnableCompression()
			s.writerMu.Lock()
			s.compressionEnabled = true
			s.writerMu.Unlock()
		}

		if result.KeepAliveEcho {
			s.writerMu.Lock()
			_, werr := s.conn.Write(frame.Raw)
			s.writerMu.Unlock()
			if werr != nil {
				s.fail(werr)
				return
			}
		}

		if result.StateChanged {
			s.stateMu.Lock()
			s.state = result.NewState
			s.stateMu.Unlock()
		}

		h := s.current()
		switch {
		case result.StateEvent != nil && h.stateFn != nil:
			h.stateFn(*result.StateEvent)
		case result.ChatEvent != nil && h.chatFn != nil:
			h.chatFn(*result.ChatEvent)
		case result.MapEvent != nil && h.mapFn != nil:
			h.mapFn(*result.MapEvent)
		}

		if result.StateChanged && result.NewState == proto.StateDisconnect {
			s.fail(ErrConnectionClosed)
			return
		}
	}
}

// fail records the first terminal error and tears the session down.
// Subsequent calls (from either pump) are no-ops.
func (s *Session) fail(err error) {
	s.lastErrMu.Lock()
	if s.lastErr == nil {
		s.lastErr = err
	}
	s.lastErrMu.Unlock()

	if s.alive.CompareAndSwap(true, false) {
		s.framer.Close()
		s.conn.Close()
	}
}

// Close terminates the session and waits for both pumps to exit.
func (s *Session) Close() error {
	s.fail(ErrConnectionClosed)
	s.wg.Wait()
	s.lastErrMu.Lock()
	defer s.lastErrMu.Unlock()
	if s.lastErr == ErrConnectionClosed {
		return nil
	}
	return s.lastErr
}
