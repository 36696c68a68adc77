// Package listentt answers TCP connections and UDP datagrams with a one
// line greeting naming the client's address.
package listentt

import (
	"context"

	"github.com/Cnily03/listentt/config"
	"github.com/Cnily03/listentt/protocols/interfaces"
	"github.com/sourcegraph/conc"
	"go.uber.org/multierr"
)

// Listentt runs a TCP and a UDP responder side by side. Neither depends on
// the other: a failing bind ends only the affected responder.
type Listentt struct {
	tcp *TCPResponder
	udp *UDPResponder
}

func New(cfg config.Config, log interfaces.Logger, out interfaces.Console) *Listentt {
	return &Listentt{
		tcp: NewTCPResponder(cfg.TCP, cfg.ReusePort, log, out),
		udp: NewUDPResponder(cfg.UDP, cfg.ReusePort, log, out),
	}
}

func (l *Listentt) TCP() *TCPResponder { return l.tcp }

func (l *Listentt) UDP() *UDPResponder { return l.udp }

// Run starts both responders and returns once both have stopped.
func (l *Listentt) Run(ctx context.Context) error {
	var (
		wg     conc.WaitGroup
		tcpErr error
		udpErr error
	)
	wg.Go(func() { tcpErr = l.tcp.Run(ctx) })
	wg.Go(func() { udpErr = l.udp.Run(ctx) })
	wg.Wait()
	return multierr.Combine(tcpErr, udpErr)
}

// Shutdown closes both sockets.
func (l *Listentt) Shutdown() error {
	return multierr.Combine(l.tcp.Shutdown(), l.udp.Shutdown())
}
