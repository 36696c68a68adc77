package listentt

import (
	"bytes"
	"context"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/Cnily03/listentt/config"
	"github.com/Cnily03/listentt/console"
	"github.com/Cnily03/listentt/logger"
	"github.com/Cnily03/listentt/protocols/interfaces"
)

// syncBuffer collects console output written from several goroutines.
type syncBuffer struct {
	mtx sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) Lines() []string {
	s := strings.TrimSpace(b.String())
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func testLogger() interfaces.Logger {
	return logger.New("test_id", "", true)
}

func testConsole() (*console.Console, *syncBuffer, *syncBuffer) {
	out, errOut := &syncBuffer{}, &syncBuffer{}
	return console.NewWriter(out, errOut), out, errOut
}

// serve runs Serve in the background and stops it when the test ends.
func serve(t *testing.T, fn func(ctx context.Context) error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- fn(ctx) }()
	t.Cleanup(func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("serve returned %v", err)
		}
	})
}

func endpointOf(addr net.Addr) config.Endpoint {
	host, port, _ := net.SplitHostPort(addr.String())
	p, _ := strconv.Atoi(port)
	return config.Endpoint{Host: host, Port: uint16(p)}
}
