package tcp

import (
	"context"
	"errors"
	"log/slog"
	"net"

	"github.com/Cnily03/listentt/connection"
	"github.com/Cnily03/listentt/logger"
	"github.com/Cnily03/listentt/protocols/helpers"
	"github.com/Cnily03/listentt/protocols/interfaces"
	"go.uber.org/multierr"
)

var errNoHalfClose = errors.New("connection does not support closing the write side")

type closeWriter interface {
	CloseWrite() error
}

func closeWrite(conn net.Conn) error {
	cw, ok := conn.(closeWriter)
	if !ok {
		return errNoHalfClose
	}
	return cw.CloseWrite()
}

// HandleTCP writes the greeting to conn and shuts down its write side so the
// client sees end-of-stream right after the line. The shutdown happens even
// when the write failed. The returned error holds every *connection.IOError
// that was already reported.
func HandleTCP(ctx context.Context, conn net.Conn, log interfaces.Logger, out interfaces.Console) (err error) {
	defer func() {
		if closeErr := conn.Close(); closeErr != nil && !errors.Is(closeErr, net.ErrClosed) {
			log.Debug("failed to close TCP connection", logger.ErrAttr(closeErr), slog.String("handler", "tcp"))
		}
	}()

	client, cerr := connection.ClientFromAddr(conn.RemoteAddr())
	if cerr != nil {
		return cerr
	}

	if _, werr := conn.Write(helpers.Greeting("tcp", client.IP)); werr != nil {
		out.Error("TCP write", werr)
		log.Error("failed to write greeting", logger.ErrAttr(werr), slog.String("handler", "tcp"), slog.String("client", client.String()))
		err = &connection.IOError{Op: connection.OpWrite, Protocol: "tcp", Client: client.String(), Err: werr}
	} else {
		out.Accepted(client.IP, client.Port, "tcp")
		log.Info("greeting sent", helpers.ClientAttrs("tcp", client.IP, client.Port)...)
	}

	if serr := closeWrite(conn); serr != nil {
		out.Error("TCP shutdown", serr)
		log.Error("failed to shut down write side", logger.ErrAttr(serr), slog.String("handler", "tcp"), slog.String("client", client.String()))
		err = multierr.Append(err, &connection.IOError{Op: connection.OpShutdown, Protocol: "tcp", Client: client.String(), Err: serr})
	}
	return err
}
