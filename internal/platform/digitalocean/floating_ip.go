package digitalocean

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ListFloatingIPs returns every floating IP in the account, across all pages.
func (c *Client) ListFloatingIPs(ctx context.Context) ([]FloatingIP, error) {
	return collectPaged[FloatingIP](ctx, c, "floating_ips", "floating_ips", defaultPerPage)
}

// GetFloatingIP fetches the details of one floating IP.
func (c *Client) GetFloatingIP(ctx context.Context, ip string) (*FloatingIP, error) {
	raw, err := c.Do(ctx, http.MethodGet, "floating_ips", "", ip, nil)
	if err != nil {
		return nil, err
	}
	return decodeFloatingIP(raw)
}

// CreateFloatingIPForDroplet allocates a floating IP assigned to a droplet.
func (c *Client) CreateFloatingIPForDroplet(ctx context.Context, dropletID int64) (*FloatingIP, error) {
	raw, err := c.Do(ctx, http.MethodPost, "floating_ips", "", "", map[string]int64{"droplet_id": dropletID})
	if err != nil {
		return nil, err
	}
	return decodeFloatingIP(raw)
}

// CreateFloatingIPInRegion reserves a floating IP in a region.
func (c *Client) CreateFloatingIPInRegion(ctx context.Context, region string) (*FloatingIP, error) {
	raw, err := c.Do(ctx, http.MethodPost, "floating_ips", "", "", map[string]string{"region": region})
	if err != nil {
		return nil, err
	}
	return decodeFloatingIP(raw)
}

// DeleteFloatingIP releases a floating IP.
func (c *Client) DeleteFloatingIP(ctx context.Context, ip string) error {
	_, err := c.Do(ctx, http.MethodDelete, "floating_ips", "", ip, nil)
	return err
}

// AssignFloatingIP points a floating IP at a droplet.
func (c *Client) AssignFloatingIP(ctx context.Context, ip string, dropletID int64) error {
	body := map[string]any{"type": "assign", "droplet_id": dropletID}
	_, err := c.Do(ctx, http.MethodPost, "floating_ips", "", ip+"/actions", body)
	return err
}

// UnassignFloatingIP detaches a floating IP from its droplet.
func (c *Client) UnassignFloatingIP(ctx context.Context, ip string) error {
	body := map[string]string{"type": "unassign"}
	_, err := c.Do(ctx, http.MethodPost, "floating_ips", "", ip+"/actions", body)
	return err
}

func decodeFloatingIP(raw json.RawMessage) (*FloatingIP, error) {
	var resp struct {
		FloatingIP FloatingIP `json:"floating_ip"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode floating ip: %w", err)
	}
	return &resp.FloatingIP, nil
}
