package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/liamg/portgate/scan"
	"github.com/liamg/portgate/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	debug            bool
	envName          string
	ports            *portsFlag
	versionRequested bool
}

func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "portgate [hosts...]",
		Short: "Portgate checks that remote administration ports are closed",
		Long: `Portgate connects to each host on a short list of sensitive TCP ports
(SSH 22, WinRM 5985/5986 and RDP 3389 by default) and fails if any of them accept a connection.

Hosts may be bare names, IP addresses or URLs; only the host portion of a URL is probed.`,
		Example: `  portgate example.com https://app.example.com/login
  portgate 10.0.0.5 --ports 22 8080 8081
  portgate 10.0.0.5 -p 22,8080-8082
  HOSTS='["a.example.com","b.example.com"]' portgate --env HOSTS`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	f := rootCmd.Flags()
	f.BoolVarP(&flags.versionRequested, "version", "", false, "Output version information and exit")
	f.BoolVarP(&flags.debug, "verbose", "v", false, "Enable verbose logging")
	f.StringVarP(&flags.envName, "env", "e", "", "Name of an environment variable holding a JSON array of additional hosts")
	flags.ports = newPortsFlag(f)
	f.VarP(flags.ports, "ports", "p", "Ports to test e.g. --ports 22 3389, 22,3389 or 5985-5986 (default 22,5985,5986,3389)")

	return rootCmd
}

func runCheck(cmd *cobra.Command, args []string, flags *rootFlags) error {
	if flags.versionRequested {
		v := version.Version
		if v == "" {
			v = "development version"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "portgate %s\n", v)
		return nil
	}

	if flags.debug {
		log.SetLevel(log.DebugLevel)
	}

	ports, args, err := flags.ports.resolve(args)
	if err != nil {
		return err
	}

	hosts, err := resolveHosts(args, flags.envName)
	if err != nil {
		return err
	}

	targets := scan.NewTargetIterator(hosts)
	portSet := scan.NewPortSet(ports)

	log.Debugf("Testing %d host(s) on ports %v...", targets.Len(), portSet)

	scanner := scan.NewScanner(
		scan.NewConnectProber(scan.DefaultTimeout),
		scan.NewReporter(cmd.OutOrStdout()),
	)

	result := scanner.Scan(cmd.Context(), targets, portSet)

	return result.Err()
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		if !errors.Is(err, scan.ErrOpenPorts) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
