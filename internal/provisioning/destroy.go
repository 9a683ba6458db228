package provisioning

import (
	"context"
	"fmt"
	"time"

	"github.com/imamik/nereid/internal/platform/digitalocean"
	"github.com/imamik/nereid/internal/util/retry"
)

// lookup re-attempts cover the provider's eventual consistency window where
// a droplet exists but is not yet (or no longer) listed.
const lookupAttempts = 10

var lookupDelay = 500 * time.Millisecond

// Destroy tears down the named droplet and then sweeps DNS records for its
// derived hostname. The DNS sweep is unconditional and best-effort: it runs
// whether or not record sync was requested at creation, and its failures
// never fail the destroy.
func (p *Provisioner) Destroy(ctx context.Context, name string) (*digitalocean.Droplet, error) {
	obs := p.observer.WithFields(map[string]string{"droplet": name})
	obs.Printf("destroying droplet")

	droplet, err := p.lookupDroplet(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := p.client.DeleteDroplet(ctx, droplet.ID); err != nil {
		return nil, fmt.Errorf("delete droplet %d: %w", droplet.ID, err)
	}
	obs.Printf("delete accepted for droplet %d", droplet.ID)

	p.cleanupDNS(ctx, name, obs)

	obs.Printf("droplet destroyed")
	return droplet, nil
}

// lookupDroplet finds a droplet by name, re-attempting for a short window
// before reporting it missing.
func (p *Provisioner) lookupDroplet(ctx context.Context, name string) (*digitalocean.Droplet, error) {
	var found *digitalocean.Droplet
	err := retry.WithExponentialBackoff(ctx, func() error {
		droplet, err := p.findDroplet(ctx, name)
		if err != nil {
			return retry.Fatal(err)
		}
		if droplet == nil {
			return fmt.Errorf("droplet %q not listed yet", name)
		}
		found = droplet
		return nil
	},
		retry.WithMaxRetries(lookupAttempts-1),
		retry.WithInitialDelay(lookupDelay),
		retry.WithMultiplier(1.0),
	)
	if err != nil {
		if retry.IsFatal(err) {
			return nil, err
		}
		return nil, &NotFoundError{Kind: "droplet", Selector: name}
	}
	return found, nil
}

// cleanupDNS derives the (hostname, domain) pair from the droplet name and
// deletes every matching record. Stale records are assumed bad; a name too
// short to carry a domain simply has nothing to clean.
func (p *Provisioner) cleanupDNS(ctx context.Context, name string, obs Observer) {
	hostname, domain := SplitFQDN(name)
	if domain == "" {
		obs.Printf("no DNS domain derivable from %q, skipping record cleanup", name)
		return
	}
	obs.Printf("deleting DNS records for %s under %s", hostname, domain)
	if err := p.dns.DeleteAllFor(ctx, domain, hostname); err != nil {
		obs.Printf("DNS record cleanup for %s failed: %v", name, err)
	}
}
