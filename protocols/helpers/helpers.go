package helpers

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net"
	"strings"

	"github.com/Cnily03/listentt/scanner"
)

// Greeting builds the reply sent to a client: "[TCP] Hello, <ip>!\n".
func Greeting(protocol string, ip net.IP) []byte {
	return []byte(fmt.Sprintf("[%s] Hello, %s!\n", strings.ToUpper(protocol), ip))
}

func HashData(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

type payloadHash []byte

func (p payloadHash) LogValue() slog.Value {
	return slog.StringValue(HashData(p))
}

// PayloadHash defers hashing data until a handler actually records it.
func PayloadHash(data []byte) slog.LogValuer {
	return payloadHash(data)
}

// ClientAttrs describes a served client for the event log.
func ClientAttrs(handler string, ip net.IP, port int) []any {
	attrs := []any{
		slog.String("src_ip", ip.String()),
		slog.Int("src_port", port),
		slog.String("handler", handler),
	}
	if name, ok := scanner.Lookup(ip); ok {
		attrs = append(attrs, slog.String("scanner", name))
	}
	return attrs
}
