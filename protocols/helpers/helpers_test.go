package helpers

import (
	"log/slog"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGreeting(t *testing.T) {
	tests := []struct {
		protocol string
		ip       net.IP
		expected string
	}{
		{"tcp", net.ParseIP("203.0.113.5"), "[TCP] Hello, 203.0.113.5!\n"},
		{"udp", net.ParseIP("203.0.113.5"), "[UDP] Hello, 203.0.113.5!\n"},
		{"udp", net.ParseIP("::ffff:192.0.2.1"), "[UDP] Hello, 192.0.2.1!\n"},
		{"tcp", net.ParseIP("2001:db8::1"), "[TCP] Hello, 2001:db8::1!\n"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, string(Greeting(tt.protocol, tt.ip)))
		})
	}
}

func TestHashData(t *testing.T) {
	require.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", HashData(nil))
}

func TestClientAttrs(t *testing.T) {
	attrs := ClientAttrs("udp", net.ParseIP("203.0.113.5"), 53)
	require.Len(t, attrs, 3)

	attrs = ClientAttrs("tcp", net.ParseIP("162.142.125.1"), 4444)
	require.Len(t, attrs, 4)
	attr, ok := attrs[3].(slog.Attr)
	require.True(t, ok)
	require.Equal(t, "scanner", attr.Key)
	require.Equal(t, "censys", attr.Value.String())
}

func TestPayloadHash(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"text", []byte("hello")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := PayloadHash(tt.data).LogValue()
			require.Equal(t, slog.KindString, v.Kind())
			require.Equal(t, HashData(tt.data), v.String())
		})
	}
}
