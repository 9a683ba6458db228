package digitalocean

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// ListSSHKeys returns the SSH keys registered with the account.
func (c *Client) ListSSHKeys(ctx context.Context) ([]SSHKey, error) {
	raw, err := c.Do(ctx, http.MethodGet, "account/keys", "", "", nil)
	if err != nil {
		return nil, err
	}
	var resp struct {
		SSHKeys []SSHKey `json:"ssh_keys"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode ssh keys: %w", err)
	}
	return resp.SSHKeys, nil
}

// GetSSHKey fetches a single key by id.
func (c *Client) GetSSHKey(ctx context.Context, id int64) (*SSHKey, error) {
	raw, err := c.Do(ctx, http.MethodGet, "account/keys", "", strconv.FormatInt(id, 10), nil)
	if err != nil {
		return nil, err
	}
	var resp struct {
		SSHKey SSHKey `json:"ssh_key"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode ssh key: %w", err)
	}
	return &resp.SSHKey, nil
}

// CreateSSHKey uploads a public key under the given name.
func (c *Client) CreateSSHKey(ctx context.Context, name, publicKey string) (*SSHKey, error) {
	body := map[string]string{"name": name, "public_key": publicKey}
	raw, err := c.Do(ctx, http.MethodPost, "account", "", "keys", body)
	if err != nil {
		return nil, err
	}
	var resp struct {
		SSHKey SSHKey `json:"ssh_key"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode ssh key: %w", err)
	}
	return &resp.SSHKey, nil
}

// DeleteSSHKey removes the key with the given id from the account.
func (c *Client) DeleteSSHKey(ctx context.Context, id int64) error {
	_, err := c.Do(ctx, http.MethodDelete, "account", "", "keys/"+strconv.FormatInt(id, 10), nil)
	return err
}
