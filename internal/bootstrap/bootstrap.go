// Package bootstrap performs first-contact OS setup on a freshly
// provisioned droplet over SSH.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

// Runner executes the bootstrap sequence against a droplet. It implements
// provisioning.Bootstrapper.
type Runner struct {
	// User is the remote login user. Droplets boot with root.
	User string

	// Script is the shell script executed after the connection is up.
	// When empty only a reachability check is performed.
	Script string

	// DialTimeout bounds each SSH connection attempt.
	DialTimeout time.Duration

	newCommunicator func(host, user string, privateKey []byte) Communicator
}

// NewRunner creates a Runner with the default SSH communicator.
func NewRunner(user, script string) *Runner {
	if user == "" {
		user = "root"
	}
	return &Runner{
		User:            user,
		Script:          script,
		DialTimeout:     10 * time.Second,
		newCommunicator: newSSHCommunicator,
	}
}

// Bootstrap connects to the droplet with the given key material and runs
// the setup script. The returned map is merged into the provisioning
// result.
func (r *Runner) Bootstrap(ctx context.Context, name, address, keyFile string) (map[string]any, error) {
	key, err := os.ReadFile(keyFile) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}

	comm := r.newCommunicator(address, r.User, key)

	start := time.Now()
	hostname, err := comm.Execute(ctx, "hostname")
	if err != nil {
		return nil, fmt.Errorf("reach %s over ssh: %w", address, err)
	}

	out := map[string]any{
		"name":            name,
		"ssh_host":        address,
		"remote_hostname": strings.TrimSpace(hostname),
	}

	if r.Script != "" {
		scriptOut, err := comm.Execute(ctx, r.Script)
		if err != nil {
			return nil, fmt.Errorf("run bootstrap script on %s: %w", address, err)
		}
		out["script_output"] = scriptOut
	}

	out["elapsed"] = time.Since(start).Round(time.Millisecond).String()
	return out, nil
}
