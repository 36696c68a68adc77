package listentt

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"sync"

	"github.com/Cnily03/listentt/config"
	"github.com/Cnily03/listentt/connection"
	"github.com/Cnily03/listentt/logger"
	"github.com/Cnily03/listentt/protocols"
	"github.com/Cnily03/listentt/protocols/interfaces"
	"github.com/sourcegraph/conc"
)

var (
	errNotBound = errors.New("socket is not bound")
	errShutdown = errors.New("responder is shut down")
)

// TCPResponder greets every accepted stream connection once and
// half-closes it.
type TCPResponder struct {
	endpoint config.Endpoint
	lc       net.ListenConfig
	handler  protocols.TCPHandlerFunc
	logger   interfaces.Logger
	out      interfaces.Console

	mtx    sync.Mutex
	ln     net.Listener
	closed bool
	conns  conc.WaitGroup
}

func NewTCPResponder(endpoint config.Endpoint, reusePort bool, log interfaces.Logger, out interfaces.Console) *TCPResponder {
	return &TCPResponder{
		endpoint: endpoint,
		lc:       listenConfig(reusePort),
		handler:  protocols.MapTCPProtocolHandlers(log, out)["tcp"],
		logger:   log,
		out:      out,
	}
}

// Bind opens the listener. Failures are returned as *connection.BindError.
func (s *TCPResponder) Bind(ctx context.Context) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.closed {
		return &connection.BindError{Protocol: "tcp", Endpoint: s.endpoint.String(), Err: errShutdown}
	}
	ln, err := s.lc.Listen(ctx, s.endpoint.Network("tcp"), s.endpoint.String())
	if err != nil {
		return &connection.BindError{Protocol: "tcp", Endpoint: s.endpoint.String(), Err: err}
	}
	s.ln = ln
	return nil
}

// Addr is the bound address, nil before Bind.
func (s *TCPResponder) Addr() net.Addr {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Serve accepts connections until the listener is closed or ctx is done.
// Each connection is handled on its own goroutine. Accept errors are
// reported and the loop keeps going.
func (s *TCPResponder) Serve(ctx context.Context) error {
	s.mtx.Lock()
	ln := s.ln
	s.mtx.Unlock()
	if ln == nil {
		return errNotBound
	}

	stop := context.AfterFunc(ctx, func() {
		_ = s.Shutdown()
	})
	defer stop()
	defer s.conns.Wait()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			aerr := &connection.AcceptError{Err: err}
			s.out.Error("TCP accept", err)
			s.logger.Error("failed to accept connection", logger.ErrAttr(aerr), slog.String("protocol", "tcp"))
			continue
		}
		s.conns.Go(func() {
			if err := s.handler(ctx, conn); err != nil {
				s.logger.Debug("connection handled with errors", logger.ErrAttr(err), slog.String("protocol", "tcp"))
			}
		})
	}
}

// Run binds and serves. A bind failure is reported and ends this responder
// only.
func (s *TCPResponder) Run(ctx context.Context) error {
	if err := s.Bind(ctx); err != nil {
		s.out.Error("TCP server", err)
		s.logger.Error("failed to bind", logger.ErrAttr(err), slog.String("protocol", "tcp"))
		return err
	}
	s.out.Listening("tcp", s.endpoint.String())
	s.logger.Info("listening", slog.String("protocol", "tcp"), slog.String("addr", s.Addr().String()))
	return s.Serve(ctx)
}

// Shutdown closes the listener. In-flight connections are left alone.
func (s *TCPResponder) Shutdown() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.closed = true
	if s.ln != nil {
		if err := s.ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			return err
		}
	}
	return nil
}
