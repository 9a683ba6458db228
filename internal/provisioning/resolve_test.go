package provisioning

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/nereid/internal/platform/digitalocean"
)

func catalogMock() *digitalocean.MockClient {
	return &digitalocean.MockClient{
		ListImagesFunc: func(context.Context) ([]digitalocean.Image, error) {
			return []digitalocean.Image{
				{ID: 6372321, Name: "20.04 (LTS) x64", Slug: "ubuntu-20-04-x64"},
				{ID: 9801950, Name: "my-snapshot", Slug: ""},
			}, nil
		},
		ListSizesFunc: func(context.Context) ([]digitalocean.Size, error) {
			return []digitalocean.Size{
				{Slug: "s-1vcpu-1gb", PriceHourly: 0.00893, PriceMonthly: 6},
				{Slug: "s-2vcpu-4gb", PriceHourly: 0.03571, PriceMonthly: 24},
			}, nil
		},
		ListRegionsFunc: func(context.Context) ([]digitalocean.Region, error) {
			return []digitalocean.Region{
				{Name: "New York 3", Slug: "nyc3"},
				{Name: "Frankfurt 1", Slug: "fra1"},
			}, nil
		},
		ListSSHKeysFunc: func(context.Context) ([]digitalocean.SSHKey, error) {
			return []digitalocean.SSHKey{
				{ID: 12345, Name: "workstation"},
				{ID: 67890, Name: "laptop"},
			}, nil
		},
	}
}

func TestResolveImage(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(catalogMock())
	ctx := context.Background()

	tests := []struct {
		name     string
		selector string
		want     any
	}{
		{"by slug", "ubuntu-20-04-x64", "ubuntu-20-04-x64"},
		{"by name", "20.04 (LTS) x64", "ubuntu-20-04-x64"},
		{"by id", "6372321", "ubuntu-20-04-x64"},
		{"slugless image falls back to id", "my-snapshot", int64(9801950)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := resolver.ResolveImage(ctx, tt.selector)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown selector", func(t *testing.T) {
		t.Parallel()
		_, err := resolver.ResolveImage(ctx, "debian-13-x64")
		assert.True(t, IsNotFound(err))
	})
}

func TestResolveSize(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(catalogMock())
	ctx := context.Background()

	got, err := resolver.ResolveSize(ctx, "S-1VCPU-1GB")
	require.NoError(t, err)
	assert.Equal(t, "s-1vcpu-1gb", got)

	_, err = resolver.ResolveSize(ctx, "s-32vcpu-64gb")
	assert.True(t, IsNotFound(err))
}

func TestResolveRegion(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(catalogMock())
	ctx := context.Background()

	got, err := resolver.ResolveRegion(ctx, "New York 3")
	require.NoError(t, err)
	assert.Equal(t, "nyc3", got)

	got, err = resolver.ResolveRegion(ctx, "fra1")
	require.NoError(t, err)
	assert.Equal(t, "fra1", got)

	_, err = resolver.ResolveRegion(ctx, "atlantis1")
	assert.True(t, IsNotFound(err))
}

func TestResolveSSHKeyIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("maps names to ids in order", func(t *testing.T) {
		t.Parallel()
		resolver := NewResolver(catalogMock())
		ids, err := resolver.ResolveSSHKeyIDs(ctx, []string{"laptop", "workstation"})
		require.NoError(t, err)
		assert.Equal(t, []int64{67890, 12345}, ids)
	})

	t.Run("unknown name", func(t *testing.T) {
		t.Parallel()
		resolver := NewResolver(catalogMock())
		_, err := resolver.ResolveSSHKeyIDs(ctx, []string{"desktop"})
		assert.True(t, IsNotFound(err))
	})

	t.Run("duplicate account key names are ambiguous", func(t *testing.T) {
		t.Parallel()
		mock := catalogMock()
		mock.ListSSHKeysFunc = func(context.Context) ([]digitalocean.SSHKey, error) {
			return []digitalocean.SSHKey{
				{ID: 1, Name: "workstation"},
				{ID: 2, Name: "workstation"},
			}, nil
		}
		resolver := NewResolver(mock)
		_, err := resolver.ResolveSSHKeyIDs(ctx, []string{"workstation"})
		assert.True(t, IsConfigError(err))
	})
}
