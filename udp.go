package listentt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"github.com/Cnily03/listentt/config"
	"github.com/Cnily03/listentt/connection"
	"github.com/Cnily03/listentt/logger"
	"github.com/Cnily03/listentt/protocols"
	"github.com/Cnily03/listentt/protocols/helpers"
	"github.com/Cnily03/listentt/protocols/interfaces"
)

// MaxDatagramSize caps how much of a datagram is read. The rest of a larger
// datagram is dropped by the receive call and has no effect on the reply.
const MaxDatagramSize = 1024

// UDPResponder answers every datagram with one greeting datagram. Datagrams
// are handled one after another on the receive loop.
type UDPResponder struct {
	endpoint config.Endpoint
	lc       net.ListenConfig
	handler  protocols.UDPHandlerFunc
	logger   interfaces.Logger
	out      interfaces.Console

	mtx    sync.Mutex
	conn   net.PacketConn
	closed bool
}

func NewUDPResponder(endpoint config.Endpoint, reusePort bool, log interfaces.Logger, out interfaces.Console) *UDPResponder {
	return &UDPResponder{
		endpoint: endpoint,
		lc:       listenConfig(reusePort),
		handler:  protocols.MapUDPProtocolHandlers(log)["udp"],
		logger:   log,
		out:      out,
	}
}

func (s *UDPResponder) Bind(ctx context.Context) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.closed {
		return &connection.BindError{Protocol: "udp", Endpoint: s.endpoint.String(), Err: errShutdown}
	}
	conn, err := s.lc.ListenPacket(ctx, s.endpoint.Network("udp"), s.endpoint.String())
	if err != nil {
		return &connection.BindError{Protocol: "udp", Endpoint: s.endpoint.String(), Err: err}
	}
	s.conn = conn
	return nil
}

func (s *UDPResponder) Addr() net.Addr {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.conn == nil {
		return nil
	}
	return s.conn.LocalAddr()
}

func (s *UDPResponder) reportIO(op connection.Op, client string, err error) {
	ioErr := &connection.IOError{Op: op, Protocol: "udp", Client: client, Err: err}
	s.out.Error(fmt.Sprintf("UDP %s", op), err)
	s.logger.Error("datagram failed", logger.ErrAttr(ioErr), slog.String("protocol", "udp"))
}

// Serve receives datagrams until the socket is closed or ctx is done.
// Receive and send errors are reported and the loop keeps going.
func (s *UDPResponder) Serve(ctx context.Context) error {
	s.mtx.Lock()
	conn := s.conn
	s.mtx.Unlock()
	if conn == nil {
		return errNotBound
	}

	stop := context.AfterFunc(ctx, func() {
		_ = s.Shutdown()
	})
	defer stop()

	buffer := make([]byte, MaxDatagramSize)
	for {
		n, addr, err := conn.ReadFrom(buffer)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.reportIO(connection.OpRecv, "", err)
			continue
		}

		client, err := connection.ClientFromAddr(addr)
		if err != nil {
			s.reportIO(connection.OpRecv, "", err)
			continue
		}
		srcAddr := &net.UDPAddr{IP: client.IP, Port: client.Port}
		if ua, ok := addr.(*net.UDPAddr); ok {
			srcAddr = ua
		}

		reply, err := s.handler(ctx, srcAddr, buffer[:n])
		if err != nil {
			s.logger.Error("failed to handle datagram", logger.ErrAttr(err), slog.String("protocol", "udp"))
			continue
		}
		if _, err := conn.WriteTo(reply, srcAddr); err != nil {
			s.reportIO(connection.OpSend, client.String(), err)
			continue
		}
		s.out.Accepted(client.IP, client.Port, "udp")
		s.logger.Info("greeting sent", helpers.ClientAttrs("udp", client.IP, client.Port)...)
	}
}

// Run binds and serves. A bind failure is reported and ends this responder
// only.
func (s *UDPResponder) Run(ctx context.Context) error {
	if err := s.Bind(ctx); err != nil {
		s.out.Error("UDP server", err)
		s.logger.Error("failed to bind", logger.ErrAttr(err), slog.String("protocol", "udp"))
		return err
	}
	s.out.Listening("udp", s.endpoint.String())
	s.logger.Info("listening", slog.String("protocol", "udp"), slog.String("addr", s.Addr().String()))
	return s.Serve(ctx)
}

func (s *UDPResponder) Shutdown() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.closed = true
	if s.conn != nil {
		if err := s.conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			return err
		}
	}
	return nil
}
