package digitalocean

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient("test-token", WithAPIRoot(server.URL))
}

func TestClientDo(t *testing.T) {
	t.Parallel()

	t.Run("sends bearer token", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			_, _ = w.Write([]byte(`{"ok":true}`))
		})

		_, err := client.Do(context.Background(), http.MethodGet, "account", "", "", nil)
		require.NoError(t, err)
	})

	t.Run("error status yields APIError", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message":"region is invalid"}`))
		})

		_, err := client.Do(context.Background(), http.MethodPost, "droplets", "", "", map[string]string{})
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
		assert.Contains(t, apiErr.Body, "region is invalid")
	})

	t.Run("no content yields empty success", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		raw, err := client.Do(context.Background(), http.MethodDelete, "droplets", "42", "", nil)
		require.NoError(t, err)
		assert.Nil(t, raw)
	})

	t.Run("embedded error envelope yields APIError", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"status":"ERROR","error_message":"no keys found"}`))
		})

		_, err := client.Do(context.Background(), http.MethodGet, "account", "", "keys", nil)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusOK, apiErr.StatusCode)
		assert.Contains(t, apiErr.Body, "no keys found")
	})

	t.Run("ok status field passes through", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"droplet":{"id":1,"status":"new"}}`))
		})

		raw, err := client.Do(context.Background(), http.MethodGet, "droplets", "1", "", nil)
		require.NoError(t, err)
		assert.NotEmpty(t, raw)
	})
}

func TestBuildURL(t *testing.T) {
	t.Parallel()

	c := &Client{root: "https://api.example.com/v2"}

	tests := []struct {
		name     string
		resource string
		id       string
		command  string
		want     string
	}{
		{"bare resource", "droplets", "", "", "https://api.example.com/v2/droplets/"},
		{"resource with id", "droplets", "42", "", "https://api.example.com/v2/droplets/42/"},
		{"id and command", "domains", "example.com", "records", "https://api.example.com/v2/domains/example.com/records"},
		{"query command", "droplets", "", "?page=2&per_page=200", "https://api.example.com/v2/droplets/?page=2&per_page=200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, c.buildURL(tt.resource, tt.id, tt.command))
		})
	}
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFound(&APIError{StatusCode: 404}))
	assert.False(t, IsNotFound(&APIError{StatusCode: 500}))
	assert.False(t, IsNotFound(assert.AnError))
	assert.False(t, IsNotFound(nil))
}
