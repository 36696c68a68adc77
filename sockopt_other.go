//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package listentt

import (
	"errors"
	"syscall"
)

func reusePortControl(network, address string, conn syscall.RawConn) error {
	return errors.New("SO_REUSEPORT is not supported on this platform")
}
