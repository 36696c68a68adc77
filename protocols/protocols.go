package protocols

import (
	"context"
	"net"

	"github.com/Cnily03/listentt/protocols/interfaces"
	"github.com/Cnily03/listentt/protocols/tcp"
	"github.com/Cnily03/listentt/protocols/udp"
)

type TCPHandlerFunc func(ctx context.Context, conn net.Conn) error

type UDPHandlerFunc func(ctx context.Context, srcAddr *net.UDPAddr, data []byte) ([]byte, error)

// MapUDPProtocolHandlers map protocol handlers to corresponding protocol
func MapUDPProtocolHandlers(log interfaces.Logger) map[string]UDPHandlerFunc {
	protocolHandlers := map[string]UDPHandlerFunc{}
	protocolHandlers["udp"] = func(ctx context.Context, srcAddr *net.UDPAddr, data []byte) ([]byte, error) {
		return udp.HandleUDP(ctx, srcAddr, data, log)
	}
	return protocolHandlers
}

// MapTCPProtocolHandlers map protocol handlers to corresponding protocol
func MapTCPProtocolHandlers(log interfaces.Logger, out interfaces.Console) map[string]TCPHandlerFunc {
	protocolHandlers := map[string]TCPHandlerFunc{}
	protocolHandlers["tcp"] = func(ctx context.Context, conn net.Conn) error {
		return tcp.HandleTCP(ctx, conn, log, out)
	}
	return protocolHandlers
}
