package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultHost = "0.0.0.0"
	DefaultPort = 1234
)

var (
	ErrInvalidPort = errors.New("invalid port")
	ErrInvalidHost = errors.New("invalid host")
)

// Endpoint is a resolved host/port pair a socket gets bound to.
type Endpoint struct {
	Host string
	Port uint16
}

func (e Endpoint) String() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(int(e.Port)))
}

// Network narrows protocol ("tcp" or "udp") to the address family of an IP
// literal host, so 0.0.0.0 stays an IPv4 wildcard instead of a dual-stack
// socket. Hostnames keep the plain protocol.
func (e Endpoint) Network(protocol string) string {
	ip := net.ParseIP(e.Host)
	switch {
	case ip == nil:
		return protocol
	case ip.To4() != nil:
		return protocol + "4"
	default:
		return protocol + "6"
	}
}

type Config struct {
	TCP       Endpoint
	UDP       Endpoint
	LogPath   string
	Debug     bool
	ReusePort bool
}

// Init creates a viper instance backed by the command line flags and
// LISTENTT_* environment variables.
func Init(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("host", DefaultHost)
	v.SetDefault("port", DefaultPort)
	v.SetDefault("logpath", "")
	v.SetDefault("debug", false)
	v.SetDefault("reuse-port", false)

	v.SetEnvPrefix("listentt")
	v.SetEnvKeyReplacer(strings.NewReplacer(":", "_", "-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}
	return v, nil
}

// Resolve derives the effective endpoints. A protocol specific value wins
// over the shared one, which falls back to 0.0.0.0:1234.
func Resolve(v *viper.Viper) (Config, error) {
	tcp, err := endpoint(v, "tcp")
	if err != nil {
		return Config{}, err
	}
	udp, err := endpoint(v, "udp")
	if err != nil {
		return Config{}, err
	}
	return Config{
		TCP:       tcp,
		UDP:       udp,
		LogPath:   v.GetString("logpath"),
		Debug:     v.GetBool("debug"),
		ReusePort: v.GetBool("reuse-port"),
	}, nil
}

func endpoint(v *viper.Viper, protocol string) (Endpoint, error) {
	hostKey := "host"
	if v.IsSet("host:" + protocol) {
		hostKey = "host:" + protocol
	}
	host := strings.TrimSpace(v.GetString(hostKey))
	if host == "" {
		return Endpoint{}, fmt.Errorf("%w: %s is empty", ErrInvalidHost, hostKey)
	}

	portKey := "port"
	if v.IsSet("port:" + protocol) {
		portKey = "port:" + protocol
	}
	port, err := ParsePort(v.GetString(portKey))
	if err != nil {
		return Endpoint{}, fmt.Errorf("%s: %w", portKey, err)
	}
	return Endpoint{Host: host, Port: port}, nil
}

// ParsePort accepts decimal port numbers in the range 0-65535.
func ParsePort(s string) (uint16, error) {
	p, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidPort, s)
	}
	return uint16(p), nil
}
