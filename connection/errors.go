package connection

import (
	"fmt"
)

// Op names the per-client operation an IOError happened in.
type Op string

const (
	OpWrite    Op = "write"
	OpShutdown Op = "shutdown"
	OpSend     Op = "send"
	OpRecv     Op = "recv"
)

// BindError ends the loop of the protocol it belongs to.
type BindError struct {
	Protocol string
	Endpoint string
	Err      error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("failed to bind %s %s: %v", e.Protocol, e.Endpoint, e.Err)
}

func (e *BindError) Unwrap() error { return e.Err }

// AcceptError is logged and the accept loop carries on.
type AcceptError struct {
	Err error
}

func (e *AcceptError) Error() string {
	return fmt.Sprintf("failed to accept tcp connection: %v", e.Err)
}

func (e *AcceptError) Unwrap() error { return e.Err }

// IOError is a failed read, write or shutdown on behalf of one client.
// Client is empty when the peer is unknown, e.g. on a failed receive.
type IOError struct {
	Op       Op
	Protocol string
	Client   string
	Err      error
}

func (e *IOError) Error() string {
	if e.Client == "" {
		return fmt.Sprintf("%s %s: %v", e.Protocol, e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s %s: %v", e.Protocol, e.Op, e.Client, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
