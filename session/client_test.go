package session

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcproto/proto"
	"mcproto/wire"
)

// newTestSession wires a Session directly to one end of an in-memory pipe,
// bypassing Connect's real dial — LoginAs is still exercised so the
// handshake/login-start bytes this test's fake server reads are the real
// ones the client would send.
func newTestSession(t *testing.T) (*Session, net.Conn) {
	t.Helper()
	client, server := net.Pipe()
	s := NewSession()
	s.conn = client
	s.alive.Store(true)
	s.wg.Add(1)
	go s.receivePump()
	return s, server
}

func readHandshakeAndLoginStart(t *testing.T, server net.Conn) {
	t.Helper()
	buf := make([]byte, 256)
	_, err := server.Read(buf)
	require.NoError(t, err)
	_, err = server.Read(buf)
	require.NoError(t, err)
}

func TestSessionLoginSuccessTransition(t *testing.T) {
	s, server := newTestSession(t)
	defer s.Close()

	done := make(chan struct{})
	go func() {
		readHandshakeAndLoginStart(t, server)
		payload := wire.EncodeString(nil, "11111111-1111-1111-1111-111111111111")
		payload = wire.EncodeString(payload, "Alex")
		frame := EncodeFrame(proto.LoginSuccess, payload, false, false)
		server.Write(frame)
		close(done)
	}()

	require.NoError(t, s.LoginAs("Alex", "localhost", 25565))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("fake server did not receive handshake/login-start in time")
	}

	assert.Eventually(t, func() bool {
		return s.State() == proto.StatePlay
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, "Alex", s.Info().Username)
}

func TestSessionKeepAliveEcho(t *testing.T) {
	s, server := newTestSession(t)
	defer s.Close()

	go readHandshakeAndLoginStart(t, server)
	require.NoError(t, s.LoginAs("Alex", "localhost", 25565))

	// Force PLAY state directly so Keep-Alive dispatches without a real
	// Login-Success round trip first.
	s.stateMu.Lock()
	s.state = proto.StatePlay
	s.stateMu.Unlock()

	payload := wire.EncodeVarInt(nil, 999)
	keepAlive := EncodeFrame(proto.PlayKeepAlive, payload, false, false)

	echoed := make(chan []byte, 1)
	go func() {
		buf := make([]byte, len(keepAlive))
		n, _ := server.Read(buf)
		echoed <- buf[:n]
	}()

	_, err := server.Write(keepAlive)
	require.NoError(t, err)

	select {
	case got := <-echoed:
		assert.Equal(t, keepAlive, got)
	case <-time.After(2 * time.Second):
		t.Fatal("keep-alive was not echoed back in time")
	}
}
