package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

var errNoPorts = errors.New("--ports requires at least one port")

// portsFlag collects --ports values. pflag hands each occurrence exactly one
// value, so it also records how many positionals had been parsed at that
// point; the numeric positionals directly after that mark belong to the flag.
type portsFlag struct {
	flags  *pflag.FlagSet
	values []string
	marks  []int
}

func newPortsFlag(flags *pflag.FlagSet) *portsFlag {
	return &portsFlag{flags: flags}
}

func (p *portsFlag) String() string {
	return strings.Join(p.values, ",")
}

func (p *portsFlag) Set(value string) error {
	p.values = append(p.values, value)
	p.marks = append(p.marks, p.flags.NArg())
	return nil
}

func (p *portsFlag) Type() string {
	return "ports"
}

// resolve splits the positional args into hosts and the extra port values
// that followed --ports. A nil port slice means --ports was not given.
func (p *portsFlag) resolve(args []string) ([]int, []string, error) {
	claimed := make([]bool, len(args))
	selections := append([]string{}, p.values...)

	for _, mark := range p.marks {
		for i := mark; i < len(args) && !claimed[i] && isPortNumber(args[i]); i++ {
			claimed[i] = true
			selections = append(selections, args[i])
		}
	}

	var hosts []string
	for i, arg := range args {
		if claimed[i] {
			continue
		}
		if isPortNumber(arg) {
			return nil, nil, fmt.Errorf("Invalid host '%s': looks like a port number, pass ports with -p (e.g. -p %s)", arg, arg)
		}
		hosts = append(hosts, arg)
	}

	if len(p.values) == 0 {
		return nil, hosts, nil
	}

	ports, err := parsePorts(selections)
	if err != nil {
		return nil, nil, err
	}
	if len(ports) == 0 {
		return nil, nil, errNoPorts
	}
	return ports, hosts, nil
}

func isPortNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// parsePorts expands selections such as "22", "22,3389" and "5985-5986".
func parsePorts(selections []string) ([]int, error) {
	var ports []int
	for _, selection := range selections {
		for _, segment := range strings.Split(selection, ",") {
			segment = strings.TrimSpace(segment)
			if segment == "" {
				continue
			}
			first, last, err := parsePortSegment(segment)
			if err != nil {
				return nil, err
			}
			for port := first; port <= last; port++ {
				ports = append(ports, port)
			}
		}
	}
	return ports, nil
}

func parsePortSegment(segment string) (int, int, error) {
	lo, hi, isRange := strings.Cut(segment, "-")

	first, err := strconv.Atoi(lo)
	if err != nil {
		return 0, 0, fmt.Errorf("Invalid port number: '%s'", segment)
	}
	if !isRange {
		return first, first, nil
	}

	last, err := strconv.Atoi(hi)
	if err != nil {
		return 0, 0, fmt.Errorf("Invalid port range: '%s'", segment)
	}
	if first > last {
		return 0, 0, fmt.Errorf("Invalid port range: %d-%d", first, last)
	}
	return first, last, nil
}
