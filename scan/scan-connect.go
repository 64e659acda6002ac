package scan

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

const DefaultTimeout = 2 * time.Second

// ConnectProber classifies a port by completing a full TCP handshake.
// Refused, timed out, unreachable and unresolvable targets are all
// reported closed.
type ConnectProber struct {
	timeout time.Duration
}

func NewConnectProber(timeout time.Duration) *ConnectProber {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ConnectProber{
		timeout: timeout,
	}
}

func (p *ConnectProber) Probe(ctx context.Context, host Host, port int) PortState {
	state, err := host.ScanConnect(ctx, port, p.timeout)
	if err != nil {
		log.Debugf("Connect to %s port %d failed: %s", host.Addr, port, err)
	}
	return state
}
