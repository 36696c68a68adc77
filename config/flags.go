package config

import (
	"github.com/spf13/pflag"
)

// NewFlagSet declares the command line surface. -h is taken by --host, so
// help is only reachable as --help.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false

	fs.StringP("host", "h", DefaultHost, "Default host for both protocols")
	fs.String("host:tcp", "", "Override host for TCP")
	fs.String("host:udp", "", "Override host for UDP")
	fs.Uint16P("port", "p", DefaultPort, "Default port for both protocols")
	fs.Uint16("port:tcp", 0, "Override port for TCP")
	fs.Uint16("port:udp", 0, "Override port for UDP")
	fs.String("logpath", "", "Structured event log file (disabled when empty)")
	fs.Bool("debug", false, "Enable debug events in the event log")
	fs.Bool("reuse-port", false, "Set SO_REUSEPORT on both sockets")
	fs.Bool("help", false, "Print help")
	return fs
}
