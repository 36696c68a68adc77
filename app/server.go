package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Cnily03/listentt"
	"github.com/Cnily03/listentt/config"
	"github.com/Cnily03/listentt/console"
	"github.com/Cnily03/listentt/logger"
	"github.com/spf13/pflag"
)

const usage = `Usage: listentt [options]

Reply to every TCP connection and UDP datagram with "[PROTO] Hello, <ip>!".

Options:
`

var errHelp = errors.New("help requested")

func printUsage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprint(w, usage)
	fmt.Fprint(w, fs.FlagUsages())
}

// parseArgs resolves the configuration without touching the network.
func parseArgs(args []string) (config.Config, *pflag.FlagSet, error) {
	fs := config.NewFlagSet("listentt")
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return config.Config{}, fs, errHelp
		}
		return config.Config{}, fs, err
	}
	if help, _ := fs.GetBool("help"); help {
		return config.Config{}, fs, errHelp
	}
	if fs.NArg() > 0 {
		return config.Config{}, fs, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	v, err := config.Init(fs)
	if err != nil {
		return config.Config{}, fs, err
	}
	cfg, err := config.Resolve(v)
	return cfg, fs, err
}

func onInterruptSignal(fn func()) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		fn()
	}()
}

func main() {
	cfg, fs, err := parseArgs(os.Args[1:])
	switch {
	case errors.Is(err, errHelp):
		printUsage(os.Stdout, fs)
		os.Exit(0)
	case err != nil:
		fmt.Fprintf(os.Stderr, "error: %v\n\n", err)
		printUsage(os.Stderr, fs)
		os.Exit(2)
	}

	log := logger.New(logger.NewID(), cfg.LogPath, cfg.Debug)
	out := console.New()
	l := listentt.New(cfg, log, out)

	onInterruptSignal(func() {
		log.Info("shutting down")
		if err := l.Shutdown(); err != nil {
			out.Error("shutdown", err)
		}
		os.Exit(0)
	})

	log.Info("starting", "tcp", cfg.TCP.String(), "udp", cfg.UDP.String())
	if err := l.Run(context.Background()); err != nil {
		os.Exit(1)
	}
}
