package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/nereid/internal/platform/digitalocean"
)

// FloatingIPCreate handles `floating-ip create`: either assigning a new IP
// to a droplet or reserving one in a region. Exactly one of the two must be
// given.
func FloatingIPCreate(ctx context.Context, configPath, region string, dropletID int64) error {
	_, client, err := load(configPath)
	if err != nil {
		return err
	}

	var fip *digitalocean.FloatingIP
	switch {
	case dropletID != 0 && region != "":
		return fmt.Errorf("--region and --droplet-id are mutually exclusive")
	case dropletID != 0:
		fip, err = client.CreateFloatingIPForDroplet(ctx, dropletID)
	case region != "":
		fip, err = client.CreateFloatingIPInRegion(ctx, region)
	default:
		return fmt.Errorf("either --region or --droplet-id is required")
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Allocated floating IP %s in %s\n", fip.IP, fip.Region.Slug)
	return nil
}

// FloatingIPShow handles `floating-ip show`.
func FloatingIPShow(ctx context.Context, configPath, ip string) error {
	_, client, err := load(configPath)
	if err != nil {
		return err
	}

	fip, err := client.GetFloatingIP(ctx, ip)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "IP:      %s\n", fip.IP)
	fmt.Fprintf(stdout, "Region:  %s\n", fip.Region.Slug)
	if fip.Droplet != nil {
		fmt.Fprintf(stdout, "Droplet: %s (%d)\n", fip.Droplet.Name, fip.Droplet.ID)
	} else {
		fmt.Fprintf(stdout, "Droplet: unassigned\n")
	}
	return nil
}

// FloatingIPDelete handles `floating-ip delete`.
func FloatingIPDelete(ctx context.Context, configPath, ip string) error {
	_, client, err := load(configPath)
	if err != nil {
		return err
	}

	if err := client.DeleteFloatingIP(ctx, ip); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Released floating IP %s\n", ip)
	return nil
}

// FloatingIPAssign handles `floating-ip assign`.
func FloatingIPAssign(ctx context.Context, configPath, ip string, dropletID int64) error {
	_, client, err := load(configPath)
	if err != nil {
		return err
	}

	if err := client.AssignFloatingIP(ctx, ip, dropletID); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Assigned %s to droplet %d\n", ip, dropletID)
	return nil
}

// FloatingIPUnassign handles `floating-ip unassign`.
func FloatingIPUnassign(ctx context.Context, configPath, ip string) error {
	_, client, err := load(configPath)
	if err != nil {
		return err
	}

	if err := client.UnassignFloatingIP(ctx, ip); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Unassigned %s\n", ip)
	return nil
}
