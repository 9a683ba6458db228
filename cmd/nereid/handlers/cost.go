package handlers

import (
	"context"
	"fmt"
	"io"

	"github.com/imamik/nereid/internal/platform/digitalocean"
	"github.com/imamik/nereid/internal/provisioning"
)

// costEstimate projects a size's published prices across common billing
// horizons. Monthly comes straight from the price list; the others are
// derived from the hourly rate.
type costEstimate struct {
	PerHour  float64
	PerDay   float64
	PerWeek  float64
	PerMonth float64
	PerYear  float64
}

func estimateCost(size *digitalocean.Size) costEstimate {
	day := size.PriceHourly * 24
	week := day * 7
	return costEstimate{
		PerHour:  size.PriceHourly,
		PerDay:   day,
		PerWeek:  week,
		PerMonth: size.PriceMonthly,
		PerYear:  week * 52,
	}
}

// Cost handles the cost command: it prints a billing estimate for the given
// size slug.
func Cost(ctx context.Context, configPath, sizeSlug string) error {
	_, client, err := load(configPath)
	if err != nil {
		return err
	}

	sizes, err := client.ListSizes(ctx)
	if err != nil {
		return err
	}

	for i := range sizes {
		if sizes[i].Slug == sizeSlug {
			return renderCost(stdout, sizeSlug, estimateCost(&sizes[i]))
		}
	}
	return &provisioning.NotFoundError{Kind: "size", Selector: sizeSlug}
}

func renderCost(out io.Writer, slug string, est costEstimate) error {
	fmt.Fprintf(out, "Estimated cost for %s (USD):\n", slug)
	fmt.Fprintf(out, "  per hour:  %.5f\n", est.PerHour)
	fmt.Fprintf(out, "  per day:   %.5f\n", est.PerDay)
	fmt.Fprintf(out, "  per week:  %.5f\n", est.PerWeek)
	fmt.Fprintf(out, "  per month: %.2f\n", est.PerMonth)
	fmt.Fprintf(out, "  per year:  %.2f\n", est.PerYear)
	return nil
}
