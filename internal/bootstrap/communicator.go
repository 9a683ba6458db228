package bootstrap

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/ssh"
)

// Communicator executes commands on a remote droplet.
type Communicator interface {
	// Execute runs a command and returns its combined output. It handles
	// connection establishment and dial retries.
	Execute(ctx context.Context, command string) (string, error)
}

// sshCommunicator implements Communicator over the SSH protocol.
type sshCommunicator struct {
	host       string
	user       string
	privateKey []byte
}

func newSSHCommunicator(host, user string, privateKey []byte) Communicator {
	return &sshCommunicator{host: host, user: user, privateKey: privateKey}
}

func (c *sshCommunicator) Execute(ctx context.Context, command string) (string, error) {
	signer, err := ssh.ParsePrivateKey(c.privateKey)
	if err != nil {
		return "", fmt.Errorf("parse private key: %w", err)
	}

	config := &ssh.ClientConfig{
		User: c.user,
		Auth: []ssh.AuthMethod{
			ssh.PublicKeys(signer),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), // #nosec G106 -- first contact, no known_hosts yet
		Timeout:         10 * time.Second,
	}

	var client *ssh.Client
	// The sshd on a fresh droplet can lag the public address by a while.
	for i := 0; i < 10; i++ {
		client, err = ssh.Dial("tcp", c.host+":22", config)
		if err == nil {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(5 * time.Second):
		}
	}
	if client == nil {
		return "", fmt.Errorf("dial ssh %s: %w", c.host, err)
	}
	defer client.Close()

	session, err := client.NewSession()
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	defer session.Close()

	output, err := session.CombinedOutput(command)
	if err != nil {
		return string(output), fmt.Errorf("execute %q: %w, output: %s", command, err, output)
	}
	return string(output), nil
}
