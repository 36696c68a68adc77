package interfaces

import (
	"net"
)

type Logger interface {
	Debug(msg string, fields ...any)
	Info(msg string, fields ...any)
	Warn(msg string, fields ...any)
	Error(msg string, fields ...any)
}

// Console is the human readable output of the responders.
type Console interface {
	Listening(protocol, endpoint string)
	Accepted(ip net.IP, port int, protocol string)
	Error(component string, err error)
}
