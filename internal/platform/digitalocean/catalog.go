package digitalocean

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ListImages returns every available image, across all pages.
func (c *Client) ListImages(ctx context.Context) ([]Image, error) {
	return collectPaged[Image](ctx, c, "images", "images", defaultPerPage)
}

// ListSizes returns the available droplet sizes.
func (c *Client) ListSizes(ctx context.Context) ([]Size, error) {
	raw, err := c.Do(ctx, http.MethodGet, "sizes", "", "", nil)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Sizes []Size `json:"sizes"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode sizes: %w", err)
	}
	return resp.Sizes, nil
}

// ListRegions returns the available datacenter regions.
func (c *Client) ListRegions(ctx context.Context) ([]Region, error) {
	raw, err := c.Do(ctx, http.MethodGet, "regions", "", "", nil)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Regions []Region `json:"regions"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode regions: %w", err)
	}
	return resp.Regions, nil
}
