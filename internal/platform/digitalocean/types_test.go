package digitalocean

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDropletUnmarshalKeepsExtra(t *testing.T) {
	t.Parallel()

	raw := []byte(`{
		"id": 42,
		"name": "web1",
		"status": "active",
		"size_slug": "s-1vcpu-1gb",
		"vcpus": 1,
		"memory": 1024,
		"networks": {"v4": [{"ip_address": "203.0.113.5", "type": "public"}]}
	}`)

	var d Droplet
	require.NoError(t, json.Unmarshal(raw, &d))

	assert.Equal(t, int64(42), d.ID)
	assert.Equal(t, "web1", d.Name)
	assert.Contains(t, d.Extra, "vcpus")
	assert.Contains(t, d.Extra, "memory")
	assert.NotContains(t, d.Extra, "id")
}

func TestNetworksPublicIPsOrdering(t *testing.T) {
	t.Parallel()

	n := Networks{
		V4: []Address{
			{IPAddress: "10.0.0.2", Type: "private"},
			{IPAddress: "203.0.113.5", Type: "public"},
		},
		V6: []Address{
			{IPAddress: "2001:db8::1", Type: "public"},
		},
	}

	assert.Equal(t, []string{"203.0.113.5", "2001:db8::1"}, n.PublicIPs())
	assert.Equal(t, []string{"10.0.0.2"}, n.PrivateIPs())
}

func TestNetworksNoPublicIPs(t *testing.T) {
	t.Parallel()

	n := Networks{V4: []Address{{IPAddress: "10.0.0.2", Type: "private"}}}
	assert.Empty(t, n.PublicIPs())
}
