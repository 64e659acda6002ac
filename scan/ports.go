package scan

import (
	"maps"
	"slices"
	"strings"

	"github.com/google/gopacket/layers"
)

// DefaultPorts are the remote administration ports expected to be closed:
// SSH, WinRM (HTTP and HTTPS) and RDP.
var DefaultPorts = []int{22, 5985, 5986, 3389}

// NewPortSet deduplicates ports and returns them sorted. An empty selection
// yields DefaultPorts.
func NewPortSet(ports []int) []int {
	if len(ports) == 0 {
		ports = DefaultPorts
	}
	set := make(map[int]struct{}, len(ports))
	for _, port := range ports {
		set[port] = struct{}{}
	}
	return slices.Sorted(maps.Keys(set))
}

// DescribePort returns the well-known TCP service name for port, or "".
func DescribePort(port int) string {
	if port < 0 || port > 65535 {
		return ""
	}
	s := layers.TCPPort(port).String()
	start := strings.IndexByte(s, '(')
	if start < 0 || !strings.HasSuffix(s, ")") {
		return ""
	}
	return s[start+1 : len(s)-1]
}
