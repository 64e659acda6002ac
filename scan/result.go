package scan

import (
	"errors"
	"fmt"
)

// ErrOpenPorts is returned for a run where at least one probe connected.
var ErrOpenPorts = errors.New("open ports found")

type ProbeResult struct {
	Host  Host
	Port  int
	State PortState
}

func (p ProbeResult) IsOpen() bool {
	return p.State == PortOpen
}

// Result aggregates every probe of a run.
type Result struct {
	Probes []ProbeResult
	open   int
}

func NewResult() Result {
	return Result{
		Probes: []ProbeResult{},
	}
}

func (r *Result) Add(probe ProbeResult) {
	r.Probes = append(r.Probes, probe)
	if probe.IsOpen() {
		r.open++
	}
}

func (r Result) OpenCount() int {
	return r.open
}

// Passed is the verdict: true iff no probe found an open port.
func (r Result) Passed() bool {
	return r.open == 0
}

func (r Result) Err() error {
	if r.Passed() {
		return nil
	}
	return fmt.Errorf("%w: %d", ErrOpenPorts, r.open)
}
