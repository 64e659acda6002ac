package scan

import (
	"context"
	"io"

	log "github.com/sirupsen/logrus"
)

// Prober decides the state of a single (host, port) pair.
type Prober interface {
	Probe(ctx context.Context, host Host, port int) PortState
}

// Scanner probes every target against every port exactly once, in order,
// reporting each probe as it completes.
type Scanner struct {
	prober   Prober
	reporter *Reporter
}

func NewScanner(prober Prober, reporter *Reporter) *Scanner {
	return &Scanner{
		prober:   prober,
		reporter: reporter,
	}
}

func (s *Scanner) Scan(ctx context.Context, ti *TargetIterator, ports []int) Result {
	result := NewResult()

	s.reporter.Begin()

	for {
		host, err := ti.Next()
		if err != nil {
			if err != io.EOF {
				log.Debugf("Target iteration stopped: %s", err)
			}
			break
		}

		log.Debugf("Scanning target %s (%s)...", host.Raw, host.Addr)

		for _, port := range ports {
			probe := ProbeResult{
				Host:  host,
				Port:  port,
				State: s.prober.Probe(ctx, host, port),
			}
			result.Add(probe)
			s.reporter.Probe(probe)
		}
	}

	s.reporter.Summary(result)

	return result
}
