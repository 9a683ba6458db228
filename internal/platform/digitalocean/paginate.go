package digitalocean

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// defaultPerPage matches the page size the API accepts as its maximum.
const defaultPerPage = 200

// pageLinks is the pagination metadata embedded in list responses. The
// presence of a "next" link is the only continuation signal; an absent
// links or pages object means the collection is complete.
type pageLinks struct {
	Links struct {
		Pages struct {
			Next string `json:"next"`
		} `json:"pages"`
	} `json:"links"`
}

// listPages fetches every page of a collection, invoking fn with each raw
// page body in provider order. Any transport error aborts the listing;
// partial results must not be used by callers.
func listPages(ctx context.Context, c *Client, resource string, perPage int, fn func(raw json.RawMessage) error) error {
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	for page := 1; ; page++ {
		command := fmt.Sprintf("?page=%d&per_page=%d", page, perPage)
		raw, err := c.Do(ctx, http.MethodGet, resource, "", command, nil)
		if err != nil {
			return err
		}

		if err := fn(raw); err != nil {
			return err
		}

		var links pageLinks
		if err := json.Unmarshal(raw, &links); err != nil {
			return fmt.Errorf("decode pagination metadata: %w", err)
		}
		if links.Links.Pages.Next == "" {
			return nil
		}
	}
}

// collectPaged aggregates the items array named key across all pages of
// resource, preserving order.
func collectPaged[T any](ctx context.Context, c *Client, resource, key string, perPage int) ([]T, error) {
	var all []T
	err := listPages(ctx, c, resource, perPage, func(raw json.RawMessage) error {
		var page map[string]json.RawMessage
		if err := json.Unmarshal(raw, &page); err != nil {
			return fmt.Errorf("decode %s page: %w", resource, err)
		}
		items, ok := page[key]
		if !ok {
			return nil
		}
		var batch []T
		if err := json.Unmarshal(items, &batch); err != nil {
			return fmt.Errorf("decode %s items: %w", resource, err)
		}
		all = append(all, batch...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return all, nil
}
