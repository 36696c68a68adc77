package connection

import (
	"fmt"
	"net"
	"strconv"
)

// Client is the peer of one accepted connection or received datagram.
// It only lives as long as the reply to it.
type Client struct {
	IP   net.IP
	Port int
}

// ClientFromAddr extracts the client IP and port from a remote address.
func ClientFromAddr(addr net.Addr) (Client, error) {
	switch a := addr.(type) {
	case *net.TCPAddr:
		return Client{IP: a.IP, Port: a.Port}, nil
	case *net.UDPAddr:
		return Client{IP: a.IP, Port: a.Port}, nil
	case nil:
		return Client{}, fmt.Errorf("missing remote address")
	}

	host, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return Client{}, fmt.Errorf("failed to split remote address: %w", err)
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return Client{}, fmt.Errorf("invalid remote IP %q", host)
	}
	p, err := strconv.Atoi(port)
	if err != nil {
		return Client{}, fmt.Errorf("failed to parse remote port: %w", err)
	}
	return Client{IP: ip, Port: p}, nil
}

func (c Client) String() string {
	return net.JoinHostPort(c.IP.String(), strconv.Itoa(c.Port))
}
