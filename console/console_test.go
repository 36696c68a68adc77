package console

import (
	"bytes"
	"errors"
	"net"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConsoleLines(t *testing.T) {
	var out, errOut bytes.Buffer
	c := NewWriter(&out, &errOut)

	c.Listening("tcp", "0.0.0.0:1234")
	c.Accepted(net.ParseIP("203.0.113.5"), 54321, "udp")
	c.Error("TCP server", errors.New("address already in use"))

	require.Equal(t, "TCP listening on 0.0.0.0:1234\n* Accepted from 203.0.113.5:54321/udp\n", out.String())
	require.Equal(t, "TCP server error: address already in use\n", errOut.String())
}

func TestConsoleIPv6(t *testing.T) {
	var out bytes.Buffer
	c := NewWriter(&out, &out)
	c.Accepted(net.ParseIP("::1"), 80, "tcp")
	require.Equal(t, "* Accepted from [::1]:80/tcp\n", out.String())
}

func TestConsoleColor(t *testing.T) {
	var out bytes.Buffer
	c := &Console{out: &out, errOut: &out, outColor: true}
	c.Listening("udp", "127.0.0.1:53")
	require.True(t, strings.HasPrefix(out.String(), "\x1b["))
	require.Contains(t, out.String(), "UDP listening on 127.0.0.1:53")
}

func TestConsoleConcurrentLines(t *testing.T) {
	var out bytes.Buffer
	c := NewWriter(&out, &out)
	wg := sync.WaitGroup{}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Accepted(net.IPv4(10, 0, 0, byte(i)), 1000+i, "tcp")
		}(i)
	}
	wg.Wait()
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 50)
	for _, line := range lines {
		require.True(t, strings.HasPrefix(line, "* Accepted from 10.0.0."), line)
		require.True(t, strings.HasSuffix(line, "/tcp"), line)
	}
}

func TestTag(t *testing.T) {
	require.Equal(t, "TCP", Tag("tcp"))
	require.Equal(t, "UDP", Tag("UDP"))
}
