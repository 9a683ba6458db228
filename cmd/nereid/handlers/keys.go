package handlers

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/imamik/nereid/internal/platform/digitalocean"
	"github.com/imamik/nereid/internal/provisioning"
)

// KeyCreate handles `keys create`: it uploads the public key read from
// publicKeyFile under the given name.
func KeyCreate(ctx context.Context, configPath, name, publicKeyFile string) error {
	_, client, err := load(configPath)
	if err != nil {
		return err
	}

	material, err := os.ReadFile(publicKeyFile) // #nosec G304
	if err != nil {
		return fmt.Errorf("read public key file: %w", err)
	}

	key, err := client.CreateSSHKey(ctx, name, strings.TrimSpace(string(material)))
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Registered key %s (id %d, fingerprint %s)\n", key.Name, key.ID, key.Fingerprint)
	return nil
}

// KeyShow handles `keys show`: it resolves the key by name and prints its
// full details, including the public key material.
func KeyShow(ctx context.Context, configPath, name string) error {
	_, client, err := load(configPath)
	if err != nil {
		return err
	}

	key, err := findKeyByName(ctx, client, name)
	if err != nil {
		return err
	}

	// The listing omits the key material; re-fetch by id for the full view.
	full, err := client.GetSSHKey(ctx, key.ID)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Name:        %s\n", full.Name)
	fmt.Fprintf(stdout, "ID:          %d\n", full.ID)
	fmt.Fprintf(stdout, "Fingerprint: %s\n", full.Fingerprint)
	fmt.Fprintf(stdout, "Public key:  %s\n", full.PublicKey)
	return nil
}

// KeyDelete handles `keys delete`.
func KeyDelete(ctx context.Context, configPath string, id int64) error {
	_, client, err := load(configPath)
	if err != nil {
		return err
	}

	if err := client.DeleteSSHKey(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Deleted key %d\n", id)
	return nil
}

func findKeyByName(ctx context.Context, client digitalocean.API, name string) (*digitalocean.SSHKey, error) {
	keys, err := client.ListSSHKeys(ctx)
	if err != nil {
		return nil, err
	}
	for i := range keys {
		if keys[i].Name == name {
			return &keys[i], nil
		}
	}
	return nil, &provisioning.NotFoundError{Kind: "ssh key", Selector: name}
}
