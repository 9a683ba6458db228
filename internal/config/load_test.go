package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/nereid/internal/provisioning"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nereid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("reads file", func(t *testing.T) {
		path := writeConfig(t, `
personal_access_token: secret
ssh_key_file: ~/.ssh/id_ed25519
ssh_key_names: workstation, laptop
defaults:
  image: ubuntu-20-04-x64
  size: s-1vcpu-1gb
  region: nyc3
  private_networking: true
  create_dns_record: true
  wait_for_ip_timeout: 300
`)

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "secret", cfg.PersonalAccessToken)
		assert.Equal(t, []string{"workstation", "laptop"}, cfg.KeyNames())
		assert.Equal(t, "ubuntu-20-04-x64", cfg.Defaults.Image)
		require.NotNil(t, cfg.Defaults.PrivateNetworking)
		assert.True(t, *cfg.Defaults.PrivateNetworking)
		assert.Nil(t, cfg.Defaults.BackupsEnabled, "unset flags stay nil")
		assert.Equal(t, 5*time.Minute, cfg.Defaults.WaitTimeout())
		assert.Equal(t, provisioning.DefaultPollInterval, cfg.Defaults.PollInterval())
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeConfig(t, `personal_access_token: from-file`)
		t.Setenv("DIGITALOCEAN_TOKEN", "from-env")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.PersonalAccessToken)
	})

	t.Run("missing default file with env token", func(t *testing.T) {
		t.Setenv("DIGITALOCEAN_TOKEN", "from-env")
		t.Chdir(t.TempDir())

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.PersonalAccessToken)
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		t.Setenv("DIGITALOCEAN_TOKEN", "from-env")

		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Setenv("DIGITALOCEAN_TOKEN", "")
		path := writeConfig(t, `ssh_key_file: ~/.ssh/id_ed25519`)

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "personal_access_token")
	})

	t.Run("mistyped boolean fails at load time", func(t *testing.T) {
		path := writeConfig(t, `
personal_access_token: secret
defaults:
  private_networking: "definitely"
`)

		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("unknown field fails at load time", func(t *testing.T) {
		path := writeConfig(t, `
personal_access_token: secret
personal_acess_token: typo
`)

		_, err := Load(path)
		require.Error(t, err)
	})
}

func TestKeyNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "workstation", []string{"workstation"}},
		{"spaced list", " workstation , laptop ", []string{"workstation", "laptop"}},
		{"trailing comma", "workstation,", []string{"workstation"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := &Config{SSHKeyNames: tt.input}
			assert.Equal(t, tt.want, cfg.KeyNames())
		})
	}
}

func TestConfigRequest(t *testing.T) {
	t.Parallel()

	private := true
	cfg := &Config{
		SSHKeyFile:  "~/.ssh/id_ed25519",
		SSHKeyNames: "workstation",
		Defaults: Profile{
			Image:             "ubuntu-20-04-x64",
			Size:              "s-1vcpu-1gb",
			Region:            "nyc3",
			PrivateNetworking: &private,
			CreateDNSRecord:   true,
			WaitForIPInterval: 5,
		},
	}

	req := cfg.Request("app1.example.org")
	assert.Equal(t, "app1.example.org", req.Name)
	assert.Equal(t, "ubuntu-20-04-x64", req.Image)
	assert.Equal(t, []string{"workstation"}, req.SSHKeyNames)
	assert.Equal(t, "~/.ssh/id_ed25519", req.KeyFile)
	assert.True(t, req.CreateDNSRecord)
	assert.Equal(t, provisioning.DefaultWaitTimeout, req.WaitTimeout)
	assert.Equal(t, 5*time.Second, req.PollInterval)
	require.NotNil(t, req.PrivateNetworking)
	assert.True(t, *req.PrivateNetworking)
}
