package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommunicator struct {
	commands []string
	outputs  map[string]string
	err      error
}

func (f *fakeCommunicator) Execute(_ context.Context, command string) (string, error) {
	f.commands = append(f.commands, command)
	if f.err != nil {
		return "", f.err
	}
	return f.outputs[command], nil
}

func testRunner(t *testing.T, script string, comm Communicator) (*Runner, string) {
	t.Helper()
	keyFile := filepath.Join(t.TempDir(), "id_ed25519")
	require.NoError(t, os.WriteFile(keyFile, []byte("key material"), 0o600))

	runner := NewRunner("", script)
	runner.newCommunicator = func(host, user string, privateKey []byte) Communicator {
		assert.Equal(t, "203.0.113.5", host)
		assert.Equal(t, "root", user)
		assert.Equal(t, []byte("key material"), privateKey)
		return comm
	}
	return runner, keyFile
}

func TestBootstrap(t *testing.T) {
	t.Parallel()

	t.Run("reachability check only", func(t *testing.T) {
		t.Parallel()
		comm := &fakeCommunicator{outputs: map[string]string{"hostname": "app1\n"}}
		runner, keyFile := testRunner(t, "", comm)

		out, err := runner.Bootstrap(context.Background(), "app1.example.org", "203.0.113.5", keyFile)
		require.NoError(t, err)

		assert.Equal(t, []string{"hostname"}, comm.commands)
		assert.Equal(t, "app1.example.org", out["name"])
		assert.Equal(t, "203.0.113.5", out["ssh_host"])
		assert.Equal(t, "app1", out["remote_hostname"])
		assert.NotContains(t, out, "script_output")
	})

	t.Run("runs the configured script", func(t *testing.T) {
		t.Parallel()
		comm := &fakeCommunicator{outputs: map[string]string{
			"hostname":       "app1\n",
			"apt-get update": "done",
		}}
		runner, keyFile := testRunner(t, "apt-get update", comm)

		out, err := runner.Bootstrap(context.Background(), "app1.example.org", "203.0.113.5", keyFile)
		require.NoError(t, err)

		assert.Equal(t, []string{"hostname", "apt-get update"}, comm.commands)
		assert.Equal(t, "done", out["script_output"])
	})

	t.Run("unreadable key file", func(t *testing.T) {
		t.Parallel()
		runner := NewRunner("", "")
		_, err := runner.Bootstrap(context.Background(), "app1", "203.0.113.5", filepath.Join(t.TempDir(), "absent"))
		require.Error(t, err)
	})

	t.Run("unreachable droplet", func(t *testing.T) {
		t.Parallel()
		comm := &fakeCommunicator{err: assert.AnError}
		runner, keyFile := testRunner(t, "", comm)

		_, err := runner.Bootstrap(context.Background(), "app1", "203.0.113.5", keyFile)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "over ssh")
	})
}
