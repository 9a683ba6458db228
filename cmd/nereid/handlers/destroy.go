package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/nereid/internal/provisioning"
)

// Destroy handles the destroy command: it deletes the named droplet and
// sweeps any DNS records matching its derived hostname.
func Destroy(ctx context.Context, configPath, name string) error {
	_, client, err := load(configPath)
	if err != nil {
		return err
	}

	provisioner := provisioning.NewProvisioner(client, nil, provisioning.NewConsoleObserver())

	droplet, err := provisioner.Destroy(ctx, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Destroyed droplet %s (id %d)\n", droplet.Name, droplet.ID)
	return nil
}
