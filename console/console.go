// Package console renders the human readable output of the responders.
package console

import (
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
)

type Console struct {
	mtx      sync.Mutex
	out      io.Writer
	errOut   io.Writer
	outColor bool
	errColor bool
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// New writes to stdout and stderr, colored when they are terminals.
func New() *Console {
	return &Console{
		out:      colorable.NewColorable(os.Stdout),
		errOut:   colorable.NewColorable(os.Stderr),
		outColor: isTerminal(os.Stdout),
		errColor: isTerminal(os.Stderr),
	}
}

// NewWriter returns a Console without colors writing to the given streams.
func NewWriter(out, errOut io.Writer) *Console {
	return &Console{out: out, errOut: errOut}
}

func (c *Console) writeLine(w io.Writer, color string, enabled bool, line string) {
	if enabled && color != "" {
		line = ansi.Color(line, color)
	}
	c.mtx.Lock()
	defer c.mtx.Unlock()
	_, _ = io.WriteString(w, line+"\n")
}

// Listening reports a successful bind, e.g. "TCP listening on 0.0.0.0:1234".
func (c *Console) Listening(protocol, endpoint string) {
	c.writeLine(c.out, "blue", c.outColor, fmt.Sprintf("%s listening on %s", Tag(protocol), endpoint))
}

// Accepted reports a served client, e.g. "* Accepted from 1.2.3.4:5/tcp".
func (c *Console) Accepted(ip net.IP, port int, protocol string) {
	c.writeLine(c.out, "", false, fmt.Sprintf("* Accepted from %s/%s", net.JoinHostPort(ip.String(), strconv.Itoa(port)), protocol))
}

// Error reports a failure on stderr as "<component> error: <detail>".
func (c *Console) Error(component string, err error) {
	c.writeLine(c.errOut, "red", c.errColor, fmt.Sprintf("%s error: %v", component, err))
}

// Tag upper-cases a protocol name the way it is shown to users.
func Tag(protocol string) string {
	return strings.ToUpper(protocol)
}
