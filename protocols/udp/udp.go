package udp

import (
	"context"
	"log/slog"
	"net"

	"github.com/Cnily03/listentt/protocols/helpers"
	"github.com/Cnily03/listentt/protocols/interfaces"
)

// HandleUDP returns the reply datagram for one received datagram. The
// payload never influences the reply.
func HandleUDP(ctx context.Context, srcAddr *net.UDPAddr, data []byte, log interfaces.Logger) ([]byte, error) {
	log.Debug(
		"UDP datagram received",
		slog.String("src_ip", srcAddr.IP.String()),
		slog.Int("src_port", srcAddr.Port),
		slog.Int("length", len(data)),
		slog.Any("payload_hash", helpers.PayloadHash(data)),
		slog.String("handler", "udp"),
	)
	return helpers.Greeting("udp", srcAddr.IP), nil
}
