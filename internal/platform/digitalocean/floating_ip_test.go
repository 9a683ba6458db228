package digitalocean

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignFloatingIP(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/floating_ips/192.0.2.10/actions", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "assign", body["type"])
		assert.EqualValues(t, 1001, body["droplet_id"])

		fmt.Fprint(w, `{"action":{"id":1,"status":"in-progress"}}`)
	})

	require.NoError(t, client.AssignFloatingIP(context.Background(), "192.0.2.10", 1001))
}

func TestCreateFloatingIPInRegion(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "nyc3", body["region"])

		fmt.Fprint(w, `{"floating_ip":{"ip":"192.0.2.10","region":{"slug":"nyc3"}}}`)
	})

	fip, err := client.CreateFloatingIPInRegion(context.Background(), "nyc3")
	require.NoError(t, err)
	assert.Equal(t, "192.0.2.10", fip.IP)
	assert.Equal(t, "nyc3", fip.Region.Slug)
}

func TestGetFloatingIPUnassigned(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"floating_ip":{"ip":"192.0.2.10","region":{"slug":"nyc3"},"droplet":null}}`)
	})

	fip, err := client.GetFloatingIP(context.Background(), "192.0.2.10")
	require.NoError(t, err)
	assert.Nil(t, fip.Droplet)
}
