package provisioning

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/imamik/nereid/internal/platform/digitalocean"
)

// Resolver maps user-supplied selectors (names, slugs, ids) to canonical
// provider identifiers. Every call queries the provider afresh; nothing is
// cached across calls.
type Resolver struct {
	client digitalocean.API
}

// NewResolver creates a Resolver backed by the given client.
func NewResolver(client digitalocean.API) *Resolver {
	return &Resolver{client: client}
}

// ResolveImage finds the image whose name, slug, or numeric id equals the
// selector. The returned identifier is the slug when the image has one,
// otherwise its numeric id.
func (r *Resolver) ResolveImage(ctx context.Context, selector string) (any, error) {
	images, err := r.client.ListImages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	for _, img := range images {
		if selector == img.Name || selector == img.Slug || selector == strconv.FormatInt(img.ID, 10) {
			if img.Slug != "" {
				return img.Slug, nil
			}
			return img.ID, nil
		}
	}
	return nil, &NotFoundError{Kind: "image", Selector: selector}
}

// ResolveSize finds the size whose slug equals the selector,
// case-insensitively, and returns the slug.
func (r *Resolver) ResolveSize(ctx context.Context, selector string) (string, error) {
	sizes, err := r.client.ListSizes(ctx)
	if err != nil {
		return "", fmt.Errorf("list sizes: %w", err)
	}
	want := strings.ToLower(selector)
	for _, size := range sizes {
		if want == size.Slug {
			return size.Slug, nil
		}
	}
	return "", &NotFoundError{Kind: "size", Selector: selector}
}

// ResolveRegion finds the region whose name or slug equals the selector and
// returns the slug.
func (r *Resolver) ResolveRegion(ctx context.Context, selector string) (string, error) {
	regions, err := r.client.ListRegions(ctx)
	if err != nil {
		return "", fmt.Errorf("list regions: %w", err)
	}
	for _, region := range regions {
		if selector == region.Name || selector == region.Slug {
			return region.Slug, nil
		}
	}
	return "", &NotFoundError{Kind: "region", Selector: selector}
}

// ResolveSSHKeyIDs maps registered key names to their provider ids. A name
// that resolves to nothing is a NotFoundError; a duplicate key name in the
// account is fatal because the mapping would be ambiguous.
func (r *Resolver) ResolveSSHKeyIDs(ctx context.Context, names []string) ([]int64, error) {
	keys, err := r.client.ListSSHKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ssh keys: %w", err)
	}

	byName := make(map[string]int64, len(keys))
	for _, key := range keys {
		if _, dup := byName[key.Name]; dup {
			return nil, configErrorf("duplicate ssh key name %q in the provider account; rename one of the keys", key.Name)
		}
		byName[key.Name] = key.ID
	}

	ids := make([]int64, 0, len(names))
	for _, name := range names {
		id, ok := byName[name]
		if !ok {
			return nil, &NotFoundError{Kind: "ssh key", Selector: name}
		}
		ids = append(ids, id)
	}
	return ids, nil
}
