package cmd

import (
	"bytes"
	"net"
	"os"
	"strconv"
	"testing"

	"github.com/fatih/color"
	"github.com/liamg/portgate/scan"
	"github.com/phayes/freeport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func listen(t *testing.T) int {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { listener.Close() })

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	return listener.Addr().(*net.TCPAddr).Port
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmdFailsOnOpenPort(t *testing.T) {
	openPort := listen(t)
	closedPort, err := freeport.GetFreePort()
	require.NoError(t, err)

	ports := strconv.Itoa(closedPort) + "," + strconv.Itoa(openPort)
	out, err := execute(t, "127.0.0.1", "--ports", ports)

	assert.ErrorIs(t, err, scan.ErrOpenPorts)
	assert.Contains(t, out, "Begin Testing Ports")
	assert.Contains(t, out, "[ FAIL ] 1 opened port(s).")
}

func TestRootCmdPassesWhenClosed(t *testing.T) {
	closedPort, err := freeport.GetFreePort()
	require.NoError(t, err)

	out, err := execute(t, "127.0.0.1", "http://127.0.0.1/health", "-p", strconv.Itoa(closedPort))

	require.NoError(t, err)
	assert.Contains(t, out, "[ PASS ] There are no open ports.")
}

func TestRootCmdPortsTakeFollowingValues(t *testing.T) {
	openPort := listen(t)

	out, err := execute(t, "127.0.0.1", "--ports", "9", strconv.Itoa(openPort))

	assert.ErrorIs(t, err, scan.ErrOpenPorts)
	assert.Contains(t, out, "[ FAIL ] 1 opened port(s).")
	assert.NotContains(t, out, "[ PASS ] "+strconv.Itoa(openPort)+" port")
}

func TestRootCmdPortsBeforeHosts(t *testing.T) {
	openPort := listen(t)

	out, err := execute(t, "-p", "9", strconv.Itoa(openPort), "127.0.0.1")

	assert.ErrorIs(t, err, scan.ErrOpenPorts)
	assert.Contains(t, out, "[ FAIL ] 1 opened port(s).")
}

func TestRootCmdRejectsNumericHost(t *testing.T) {
	out, err := execute(t, "127.0.0.1", "5985")

	require.Error(t, err)
	assert.NotErrorIs(t, err, scan.ErrOpenPorts)
	assert.Contains(t, err.Error(), "-p 5985")
	assert.Empty(t, out)
}

func TestRootCmdEmptyPorts(t *testing.T) {
	out, err := execute(t, "127.0.0.1", "--ports", "")

	assert.ErrorIs(t, err, errNoPorts)
	assert.Empty(t, out)
}

func TestRootCmdMergesEnvHosts(t *testing.T) {
	openPort := listen(t)
	t.Setenv("PORTGATE_TEST_HOSTS", `["127.0.0.1", "http://127.0.0.1/"]`)

	out, err := execute(t, "127.0.0.1", "--env", "PORTGATE_TEST_HOSTS", "-p", strconv.Itoa(openPort))

	assert.ErrorIs(t, err, scan.ErrOpenPorts)
	assert.Contains(t, out, "[ FAIL ] 2 opened port(s).")
}

func TestRootCmdMalformedEnvStopsBeforeProbing(t *testing.T) {
	t.Setenv("PORTGATE_TEST_HOSTS", "not-json")

	out, err := execute(t, "127.0.0.1", "--env", "PORTGATE_TEST_HOSTS")

	require.Error(t, err)
	assert.NotErrorIs(t, err, scan.ErrOpenPorts)
	assert.Empty(t, out)
}

func TestRootCmdInvalidPorts(t *testing.T) {
	out, err := execute(t, "127.0.0.1", "--ports", "ssh")

	require.Error(t, err)
	assert.Empty(t, out)
}

func TestRootCmdVersion(t *testing.T) {
	out, err := execute(t, "--version")

	require.NoError(t, err)
	assert.Equal(t, "portgate development version\n", out)
}
