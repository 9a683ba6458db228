package handlers

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/nereid/internal/platform/digitalocean"
)

func sampleDroplets() []digitalocean.Droplet {
	return []digitalocean.Droplet{
		{
			ID:       1001,
			Name:     "app1.example.org",
			Status:   "active",
			SizeSlug: "s-1vcpu-1gb",
			Networks: digitalocean.Networks{
				V4: []digitalocean.Address{{IPAddress: "203.0.113.5", Type: "public"}},
			},
			Extra: map[string]json.RawMessage{"vcpus": json.RawMessage(`1`)},
		},
		{ID: 1002, Name: "app2.example.org", Status: "new", SizeSlug: "s-2vcpu-4gb"},
	}
}

func TestRenderDroplets(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, renderDroplets(&buf, sampleDroplets(), false))

	out := buf.String()
	assert.Contains(t, out, "app1.example.org")
	assert.Contains(t, out, "203.0.113.5")
	assert.Contains(t, out, "s-2vcpu-4gb")
	assert.NotContains(t, out, "vcpus")
}

func TestRenderDropletsFull(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, renderDroplets(&buf, sampleDroplets(), true))

	assert.Contains(t, buf.String(), "vcpus")
}

func TestRenderDroplet(t *testing.T) {
	t.Parallel()

	droplets := sampleDroplets()
	var buf bytes.Buffer
	require.NoError(t, renderDroplet(&buf, &droplets[0]))

	out := buf.String()
	assert.Contains(t, out, "app1.example.org")
	assert.Contains(t, out, "203.0.113.5")
	assert.Contains(t, out, "vcpus")
}

func TestImageLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ubuntu-20-04-x64", imageLabel(digitalocean.Image{ID: 1, Name: "Ubuntu", Slug: "ubuntu-20-04-x64"}))
	assert.Equal(t, "my-snapshot", imageLabel(digitalocean.Image{ID: 2, Name: "my-snapshot"}))
	assert.Equal(t, "3", imageLabel(digitalocean.Image{ID: 3}))
}
