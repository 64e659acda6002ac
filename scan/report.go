package scan

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter renders the human readable pass/fail report.
type Reporter struct {
	out  io.Writer
	fail *color.Color
	pass *color.Color
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{
		out:  out,
		fail: color.New(color.FgRed),
		pass: color.New(color.FgGreen),
	}
}

func (r *Reporter) Begin() {
	fmt.Fprintf(r.out, "\nBegin Testing Ports\n\n")
}

func (r *Reporter) Probe(probe ProbeResult) {
	port := portLabel(probe.Port)
	if probe.IsOpen() {
		fmt.Fprintf(r.out, "%s %s port %s is %s\n",
			r.fail.Sprint("[ FAIL ]"), probe.Host.Addr, port, r.fail.Sprint(PortOpen))
		return
	}
	fmt.Fprintf(r.out, "%s %s port %s is %s\n",
		r.pass.Sprint("[ PASS ]"), probe.Host.Addr, port, r.pass.Sprint(PortClosed))
}

func (r *Reporter) Summary(result Result) {
	fmt.Fprintf(r.out, "\nResults:\n")
	if !result.Passed() {
		fmt.Fprintf(r.out, "\n%s %d opened port(s).\n", r.fail.Sprint("[ FAIL ]"), result.OpenCount())
		return
	}
	fmt.Fprintf(r.out, "\n%s There are no open ports.\n", r.pass.Sprint("[ PASS ]"))
}

func portLabel(port int) string {
	if name := DescribePort(port); name != "" {
		return fmt.Sprintf("%d (%s)", port, name)
	}
	return fmt.Sprintf("%d", port)
}
