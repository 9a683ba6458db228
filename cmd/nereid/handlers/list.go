package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/imamik/nereid/internal/platform/digitalocean"
	"github.com/imamik/nereid/internal/ui"
)

// ListDroplets handles `list droplets`. With full set, the unmodeled
// provider fields are printed per droplet after the table.
func ListDroplets(ctx context.Context, configPath string, full bool) error {
	_, client, err := load(configPath)
	if err != nil {
		return err
	}
	droplets, err := client.ListDroplets(ctx)
	if err != nil {
		return err
	}
	return renderDroplets(stdout, droplets, full)
}

func renderDroplets(out io.Writer, droplets []digitalocean.Droplet, full bool) error {
	table := ui.NewTable(out, "ID", "NAME", "STATUS", "SIZE", "PUBLIC IPS")
	for _, d := range droplets {
		table.Row(
			strconv.FormatInt(d.ID, 10),
			d.Name,
			ui.Status(d.Status),
			d.SizeSlug,
			strings.Join(d.Networks.PublicIPs(), ", "),
		)
	}
	if err := table.Flush(); err != nil {
		return err
	}

	if !full {
		return nil
	}
	for _, d := range droplets {
		if len(d.Extra) == 0 {
			continue
		}
		raw, err := json.MarshalIndent(d.Extra, "  ", "  ")
		if err != nil {
			return fmt.Errorf("encode droplet %d details: %w", d.ID, err)
		}
		fmt.Fprintf(out, "\n%s:\n  %s\n", d.Name, raw)
	}
	return nil
}

// ListImages handles `list images`.
func ListImages(ctx context.Context, configPath string) error {
	_, client, err := load(configPath)
	if err != nil {
		return err
	}
	images, err := client.ListImages(ctx)
	if err != nil {
		return err
	}

	table := ui.NewTable(stdout, "ID", "SLUG", "NAME")
	for _, img := range images {
		table.Row(strconv.FormatInt(img.ID, 10), img.Slug, img.Name)
	}
	return table.Flush()
}

// ListSizes handles `list sizes`.
func ListSizes(ctx context.Context, configPath string) error {
	_, client, err := load(configPath)
	if err != nil {
		return err
	}
	sizes, err := client.ListSizes(ctx)
	if err != nil {
		return err
	}

	table := ui.NewTable(stdout, "SLUG", "$/HOUR", "$/MONTH")
	for _, s := range sizes {
		table.Row(
			s.Slug,
			strconv.FormatFloat(s.PriceHourly, 'f', -1, 64),
			strconv.FormatFloat(s.PriceMonthly, 'f', -1, 64),
		)
	}
	return table.Flush()
}

// ListRegions handles `list regions`.
func ListRegions(ctx context.Context, configPath string) error {
	_, client, err := load(configPath)
	if err != nil {
		return err
	}
	regions, err := client.ListRegions(ctx)
	if err != nil {
		return err
	}

	table := ui.NewTable(stdout, "SLUG", "NAME")
	for _, r := range regions {
		table.Row(r.Slug, r.Name)
	}
	return table.Flush()
}

// ListKeys handles `list keys`.
func ListKeys(ctx context.Context, configPath string) error {
	_, client, err := load(configPath)
	if err != nil {
		return err
	}
	keys, err := client.ListSSHKeys(ctx)
	if err != nil {
		return err
	}

	table := ui.NewTable(stdout, "ID", "NAME", "FINGERPRINT")
	for _, k := range keys {
		table.Row(strconv.FormatInt(k.ID, 10), k.Name, k.Fingerprint)
	}
	return table.Flush()
}

// ListFloatingIPs handles `list floating-ips`.
func ListFloatingIPs(ctx context.Context, configPath string) error {
	_, client, err := load(configPath)
	if err != nil {
		return err
	}
	ips, err := client.ListFloatingIPs(ctx)
	if err != nil {
		return err
	}

	table := ui.NewTable(stdout, "IP", "REGION", "DROPLET")
	for _, fip := range ips {
		droplet := "-"
		if fip.Droplet != nil {
			droplet = fmt.Sprintf("%s (%d)", fip.Droplet.Name, fip.Droplet.ID)
		}
		table.Row(fip.IP, fip.Region.Slug, droplet)
	}
	return table.Flush()
}
