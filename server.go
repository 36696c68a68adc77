package listentt

import (
	"net"
)

func listenConfig(reusePort bool) net.ListenConfig {
	lc := net.ListenConfig{}
	if reusePort {
		lc.Control = reusePortControl
	}
	return lc
}
