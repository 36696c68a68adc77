//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package listentt

import (
	"syscall"

	"golang.org/x/sys/unix"
)

func reusePortControl(network, address string, conn syscall.RawConn) error {
	var operr error
	if err := conn.Control(func(fd uintptr) {
		operr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEPORT, 1)
	}); err != nil {
		return err
	}
	return operr
}
