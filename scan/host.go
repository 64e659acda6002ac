package scan

import (
	"context"
	"net"
	"net/url"
	"strconv"
	"time"
)

// Host is a probe target. Raw is the identifier as supplied, Addr is the
// network location the probes connect to.
type Host struct {
	Raw  string
	Addr string
}

type PortState uint8

const (
	PortOpen PortState = iota + 1
	PortClosed
)

func (s PortState) String() string {
	switch s {
	case PortOpen:
		return "OPEN"
	case PortClosed:
		return "CLOSED"
	}
	return "UNKNOWN"
}

func NewHost(raw string) Host {
	return Host{
		Raw:  raw,
		Addr: NormalizeHost(raw),
	}
}

// NormalizeHost extracts the host portion of a URI. Strings without a
// network location (bare hostnames, IPs, unparseable input) are returned
// verbatim.
func NormalizeHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	if name := u.Hostname(); name != "" {
		return name
	}
	return raw
}

// ScanConnect attempts a single TCP connection. Every dial failure maps to
// PortClosed; the dial error is returned alongside for diagnostics.
func (h Host) ScanConnect(ctx context.Context, port int, timeout time.Duration) (PortState, error) {
	dialer := &net.Dialer{
		Timeout:   timeout,
		KeepAlive: -1,
	}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(h.Addr, strconv.Itoa(port)))
	if err != nil {
		return PortClosed, err
	}
	defer conn.Close()
	return PortOpen, nil
}
