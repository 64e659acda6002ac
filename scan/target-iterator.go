package scan

import (
	"io"
	"maps"
	"slices"
)

// TargetIterator walks a deduplicated set of hosts. Duplicates are detected
// on the raw identifier, so "a.com" supplied twice is probed once.
type TargetIterator struct {
	hosts []Host
	index int
}

func NewTargetIterator(targets []string) *TargetIterator {
	set := make(map[string]struct{}, len(targets))
	for _, target := range targets {
		set[target] = struct{}{}
	}

	ti := &TargetIterator{}
	for _, raw := range slices.Sorted(maps.Keys(set)) {
		ti.hosts = append(ti.hosts, NewHost(raw))
	}
	return ti
}

func (ti *TargetIterator) Len() int {
	return len(ti.hosts)
}

func (ti *TargetIterator) Next() (Host, error) {
	if ti.index >= len(ti.hosts) {
		return Host{}, io.EOF
	}
	host := ti.hosts[ti.index]
	ti.index++
	return host, nil
}
