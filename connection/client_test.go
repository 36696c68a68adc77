package connection

import (
	"errors"
	"net"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeAddr string

func (a fakeAddr) Network() string { return "fake" }
func (a fakeAddr) String() string  { return string(a) }

func TestClientFromAddr(t *testing.T) {
	tests := []struct {
		name     string
		addr     net.Addr
		expected string
	}{
		{
			name:     "tcp",
			addr:     &net.TCPAddr{IP: net.ParseIP("203.0.113.5"), Port: 54321},
			expected: "203.0.113.5:54321",
		},
		{
			name:     "udp6",
			addr:     &net.UDPAddr{IP: net.ParseIP("2001:db8::1"), Port: 53},
			expected: "[2001:db8::1]:53",
		},
		{
			name:     "generic",
			addr:     fakeAddr("198.51.100.7:8080"),
			expected: "198.51.100.7:8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ClientFromAddr(tt.addr)
			require.NoError(t, err)
			require.Equal(t, tt.expected, c.String())
		})
	}
}

func TestClientFromAddrInvalid(t *testing.T) {
	_, err := ClientFromAddr(nil)
	require.Error(t, err)
	_, err = ClientFromAddr(fakeAddr("no-port"))
	require.Error(t, err)
	_, err = ClientFromAddr(fakeAddr("example.com:80"))
	require.Error(t, err)
}

func TestClientFromNetConn(t *testing.T) {
	ln, err := net.Listen("tcp4", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	conn, err := net.Dial(ln.Addr().Network(), ln.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	c, err := ClientFromAddr(conn.LocalAddr())
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", c.IP.String())
	require.NotZero(t, c.Port)
}

func TestErrors(t *testing.T) {
	bindErr := error(&BindError{Protocol: "tcp", Endpoint: "0.0.0.0:1234", Err: syscall.EADDRINUSE})
	require.ErrorIs(t, bindErr, syscall.EADDRINUSE)
	require.Contains(t, bindErr.Error(), "tcp 0.0.0.0:1234")

	var be *BindError
	require.True(t, errors.As(bindErr, &be))
	require.Equal(t, "tcp", be.Protocol)

	acceptErr := error(&AcceptError{Err: syscall.EMFILE})
	require.ErrorIs(t, acceptErr, syscall.EMFILE)

	ioErr := &IOError{Op: OpSend, Protocol: "udp", Client: "203.0.113.5:54321", Err: syscall.ECONNREFUSED}
	require.ErrorIs(t, ioErr, syscall.ECONNREFUSED)
	require.Equal(t, "udp send 203.0.113.5:54321: "+syscall.ECONNREFUSED.Error(), ioErr.Error())

	ioErr = &IOError{Op: OpRecv, Protocol: "udp", Err: syscall.EINTR}
	require.Equal(t, "udp recv: "+syscall.EINTR.Error(), ioErr.Error())
}
