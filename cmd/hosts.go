package cmd

import (
	"encoding/json"
	"fmt"
	"os"
)

// resolveHosts merges positional hosts with the JSON array held in the
// environment variable envName. An unset or empty variable adds nothing.
func resolveHosts(args []string, envName string) ([]string, error) {
	hosts := append([]string{}, args...)

	if envName == "" {
		return hosts, nil
	}

	raw := os.Getenv(envName)
	if raw == "" {
		return hosts, nil
	}

	var envHosts []string
	if err := json.Unmarshal([]byte(raw), &envHosts); err != nil {
		return nil, fmt.Errorf("Invalid host list in environment variable '%s': %w", envName, err)
	}

	return append(hosts, envHosts...), nil
}
