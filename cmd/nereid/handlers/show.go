package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/imamik/nereid/internal/platform/digitalocean"
	"github.com/imamik/nereid/internal/provisioning"
	"github.com/imamik/nereid/internal/ui"
)

// Show handles the show command: it looks up one droplet by name and prints
// its details, including the unmodeled provider fields.
func Show(ctx context.Context, configPath, name string) error {
	_, client, err := load(configPath)
	if err != nil {
		return err
	}

	droplets, err := client.ListDroplets(ctx)
	if err != nil {
		return err
	}
	for i := range droplets {
		if droplets[i].Name == name {
			return renderDroplet(stdout, &droplets[i])
		}
	}
	return &provisioning.NotFoundError{Kind: "droplet", Selector: name}
}

func renderDroplet(out io.Writer, d *digitalocean.Droplet) error {
	fmt.Fprintf(out, "Name:    %s\n", d.Name)
	fmt.Fprintf(out, "ID:      %d\n", d.ID)
	fmt.Fprintf(out, "Status:  %s\n", ui.Status(d.Status))
	fmt.Fprintf(out, "Size:    %s\n", d.SizeSlug)
	fmt.Fprintf(out, "Image:   %s\n", imageLabel(d.Image))
	fmt.Fprintf(out, "Public:  %s\n", strings.Join(d.Networks.PublicIPs(), ", "))
	fmt.Fprintf(out, "Private: %s\n", strings.Join(d.Networks.PrivateIPs(), ", "))

	if len(d.Extra) > 0 {
		raw, err := json.MarshalIndent(d.Extra, "", "  ")
		if err != nil {
			return fmt.Errorf("encode droplet details: %w", err)
		}
		fmt.Fprintf(out, "\n%s\n", raw)
	}
	return nil
}

func imageLabel(img digitalocean.Image) string {
	if img.Slug != "" {
		return img.Slug
	}
	if img.Name != "" {
		return img.Name
	}
	return fmt.Sprintf("%d", img.ID)
}
