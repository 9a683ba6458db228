package digitalocean

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// ListDroplets returns every droplet in the account, across all pages.
func (c *Client) ListDroplets(ctx context.Context) ([]Droplet, error) {
	return collectPaged[Droplet](ctx, c, "droplets", "droplets", defaultPerPage)
}

// CreateDroplet submits a droplet creation request. The returned droplet
// typically has no addresses yet; callers must poll for them.
func (c *Client) CreateDroplet(ctx context.Context, req *DropletCreateRequest) (*Droplet, error) {
	raw, err := c.Do(ctx, http.MethodPost, "droplets", "", "", req)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Droplet Droplet `json:"droplet"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode droplet: %w", err)
	}
	return &resp.Droplet, nil
}

// DeleteDroplet destroys the droplet with the given id.
func (c *Client) DeleteDroplet(ctx context.Context, id int64) error {
	_, err := c.Do(ctx, http.MethodDelete, "droplets", strconv.FormatInt(id, 10), "", nil)
	return err
}
