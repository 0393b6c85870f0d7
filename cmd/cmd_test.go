//go:build unit

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"quantum-portctl/internal/mock"
	"quantum-portctl/internal/testservice/quantumservice"
	"quantum-portctl/internal/types"

	"github.com/juju/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishvananda/netlink"
	"go.uber.org/mock/gomock"
)

const testConfig = `logging:
  level: error
  format: simple
quantum:
  endpoint: %s/v1.0/tenants/tenant-1
  timeout: 5s
auth:
  mode: token
  token: secret
transport:
  retries: 1
  retry_delay: 1ms
  metrics: %t
`

func setup(t *testing.T, metrics bool) (*quantumservice.Service, string) {
	t.Helper()

	svc := quantumservice.New("secret")
	srv := httptest.NewServer(svc)
	t.Cleanup(srv.Close)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf(testConfig, srv.URL, metrics)), 0644))
	return svc, path
}

func execute(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestPortsLifecycle(t *testing.T) {
	svc, cfg := setup(t, false)
	svc.AddNetwork("net-1")

	out, _, err := execute("ports", "create", "net-1", "--state", "active", "-f", cfg, "-o", "json")
	require.NoError(t, err)
	var created types.Port
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, types.PortStateActive, created.State)

	out, _, err = execute("ports", "list", "net-1", "--detail", "-f", cfg, "-o", "json")
	require.NoError(t, err)
	var ports []types.Port
	require.NoError(t, json.Unmarshal([]byte(out), &ports))
	assert.Equal(t, []types.Port{created}, ports)

	out, _, err = execute("ports", "update", "net-1", created.ID, "--state", "DOWN", "-f", cfg)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Port %s is now DOWN\n", created.ID), out)

	out, _, err = execute("ports", "show", "net-1", created.ID, "-f", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, created.ID)
	assert.Contains(t, out, "DOWN")

	out, _, err = execute("ports", "delete", "net-1", created.ID, "-f", cfg)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Port %s deleted\n", created.ID), out)

	_, _, err = execute("ports", "delete", "net-1", created.ID, "-f", cfg)
	assert.True(t, errors.Is(err, errors.NotFound))

	_, _, err = execute("ports", "show", "net-1", created.ID, "-f", cfg)
	assert.True(t, errors.Is(err, errors.NotFound))
}

func TestPortsCreate_DefaultState(t *testing.T) {
	svc, cfg := setup(t, false)
	svc.AddNetwork("net-1")

	out, _, err := execute("ports", "create", "net-1", "-f", cfg, "-o", "json")
	require.NoError(t, err)
	var ref types.Reference
	require.NoError(t, json.Unmarshal([]byte(out), &ref))
	assert.NotEmpty(t, ref.ID)

	_, _, err = execute("ports", "create", "net-1", "--state", "sleeping", "-f", cfg)
	assert.ErrorContains(t, err, "invalid port state")
}

func TestPortsStateFlag(t *testing.T) {
	opts := &rootOptions{}
	for _, cmd := range []*cobra.Command{newPortsCreateCmd(opts), newPortsUpdateCmd(opts)} {
		flag := cmd.Flags().Lookup("state")
		require.NotNil(t, flag, cmd.Name())
		for _, state := range types.KnownPortStates {
			assert.Contains(t, flag.Usage, string(state), cmd.Name())
		}
	}
}

func TestPortsList(t *testing.T) {
	svc, cfg := setup(t, false)
	plugged := svc.AddPort("net-1", types.PortStateActive)
	empty := svc.AddPort("net-1", types.PortStateDown)

	_, _, err := execute("attachment", "plug", "net-1", plugged, "--id", "vif-1", "-f", cfg)
	require.NoError(t, err)

	t.Run("References", func(t *testing.T) {
		out, _, err := execute("ports", "list", "net-1", "-f", cfg, "-o", "json")
		require.NoError(t, err)
		var refs []types.Reference
		require.NoError(t, json.Unmarshal([]byte(out), &refs))
		assert.ElementsMatch(t, []types.Reference{{ID: plugged}, {ID: empty}}, refs)
	})

	t.Run("Attachments", func(t *testing.T) {
		out, _, err := execute("ports", "list", "net-1", "--attachments", "-f", cfg, "-o", "json")
		require.NoError(t, err)
		var rows []portRow
		require.NoError(t, json.Unmarshal([]byte(out), &rows))
		assert.ElementsMatch(t, []portRow{
			{ID: plugged, State: types.PortStateActive, Attachment: "vif-1"},
			{ID: empty, State: types.PortStateDown},
		}, rows)
	})

	t.Run("UnknownNetwork", func(t *testing.T) {
		out, _, err := execute("ports", "list", "missing", "-f", cfg, "-o", "json")
		require.NoError(t, err)
		assert.Equal(t, "[]\n", out)
	})
}

func TestAttachment(t *testing.T) {
	svc, cfg := setup(t, false)
	portID := svc.AddPort("net-1", types.PortStateActive)

	out, _, err := execute("attachment", "show", "net-1", portID, "-f", cfg)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Port %s has no attachment\n", portID), out)

	out, _, err = execute("attachment", "plug", "net-1", portID, "-f", cfg, "-o", "json")
	require.NoError(t, err)
	var generated types.Attachment
	require.NoError(t, json.Unmarshal([]byte(out), &generated))
	assert.Len(t, generated.ID, 36)

	out, _, err = execute("attachment", "show", "net-1", portID, "-f", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, generated.ID)

	_, _, err = execute("attachment", "unplug", "net-1", portID, "-f", cfg)
	require.NoError(t, err)

	out, _, err = execute("attachment", "show", "net-1", portID, "-f", cfg, "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, "null\n", out)

	_, _, err = execute("attachment", "plug", "net-1", "missing", "--id", "vif-1", "-f", cfg)
	assert.True(t, errors.Is(err, errors.NotFound))

	_, _, err = execute("attachment", "plug", "net-1", portID, "--id", "a", "--interface", "eth0", "-f", cfg)
	assert.Error(t, err)
}

func TestAttachmentPlug_Interface(t *testing.T) {
	svc, cfg := setup(t, false)
	portID := svc.AddPort("net-1", types.PortStateActive)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mac, err := net.ParseMAC("fa:16:3e:00:00:01")
	require.NoError(t, err)
	networkMgr := mock.NewMockNetworkManager(ctrl)
	networkMgr.EXPECT().
		GetLinkByName("tap0").
		Return(&netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Name: "tap0", HardwareAddr: mac}}, nil)

	var stdout bytes.Buffer
	opts := &rootOptions{configPath: cfg, output: outputTable}
	plug := newAttachmentPlugCmd(opts, networkMgr)
	plug.SetOut(&stdout)
	plug.SetArgs([]string{"net-1", portID, "--interface", "tap0"})
	require.NoError(t, plug.Execute())

	assert.Equal(t, fmt.Sprintf("Plugged fa:16:3e:00:00:01 into port %s\n", portID), stdout.String())
	requests := svc.Requests()
	assert.Equal(t, `{"attachment":{"id":"fa:16:3e:00:00:01"}}`, requests[len(requests)-1].Body)
}

func TestMetricsOutput(t *testing.T) {
	svc, cfg := setup(t, true)
	svc.AddNetwork("net-1")

	_, stderr, err := execute("ports", "list", "net-1", "-f", cfg)
	require.NoError(t, err)
	assert.Contains(t, stderr, `quantum_portctl_requests_total{code="200",method="GET"} 1`)
}

func TestSessionErrors(t *testing.T) {
	_, cfg := setup(t, false)

	t.Run("MissingConfig", func(t *testing.T) {
		_, _, err := execute("ports", "list", "net-1")
		assert.ErrorContains(t, err, "a config file is required")
	})

	t.Run("UnknownOutput", func(t *testing.T) {
		_, _, err := execute("ports", "list", "net-1", "-f", cfg, "-o", "yaml")
		assert.ErrorContains(t, err, `unknown output format "yaml"`)
	})

	t.Run("InvalidConfig", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("quantum: {}\n"), 0644))
		_, _, err := execute("ports", "list", "net-1", "-f", path)
		assert.ErrorContains(t, err, "quantum endpoint is required")
	})
}

func TestVersion(t *testing.T) {
	out, _, err := execute("version")
	require.NoError(t, err)
	assert.Contains(t, out, "Tag: ")
	assert.Contains(t, out, "User-Agent: quantum-portctl/")
}
