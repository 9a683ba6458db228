package provisioning

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/imamik/nereid/internal/platform/digitalocean"
)

// cleanupTimeout bounds the compensating delete after a failed wait.
const cleanupTimeout = 30 * time.Second

// Provisioner orchestrates droplet create and destroy flows.
type Provisioner struct {
	client    digitalocean.API
	resolver  *Resolver
	dns       *Synchronizer
	bootstrap Bootstrapper
	observer  Observer
}

// NewProvisioner creates a Provisioner. bootstrap may be nil, in which case
// the handoff step is skipped.
func NewProvisioner(client digitalocean.API, bootstrap Bootstrapper, observer Observer) *Provisioner {
	return &Provisioner{
		client:    client,
		resolver:  NewResolver(client),
		dns:       NewSynchronizer(client, observer),
		bootstrap: bootstrap,
		observer:  observer,
	}
}

// Create provisions a droplet end to end: selector resolution, creation,
// waiting for a public address, DNS sync, and bootstrap handoff. No partial
// result is ever returned; on any failure after creation was accepted, the
// original error is surfaced and cleanup is best-effort.
func (p *Provisioner) Create(ctx context.Context, req *Request) (*Result, error) {
	obs := p.observer.WithFields(map[string]string{"droplet": req.Name})
	obs.Printf("creating droplet")

	// DNS derivation errors and key material problems are configuration
	// errors; surface them before any remote mutation.
	dnsHostname, dnsDomain, err := resolveDNSNames(req)
	if err != nil {
		return nil, err
	}
	if err := checkKeyMaterial(req); err != nil {
		return nil, err
	}

	payload, err := p.buildCreateRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	droplet, err := p.client.CreateDroplet(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("create droplet %s: %w", req.Name, err)
	}
	obs.Printf("create accepted, id %d", droplet.ID)

	ready, err := p.waitForPublicAddress(ctx, req, obs)
	if err != nil {
		// The droplet may be up without ever having shown us an address.
		// Tear it down so a failed run leaves nothing behind. The delete
		// runs on a detached context: the wait may have ended because ctx
		// itself was cancelled, and the cleanup must still get through.
		// A cleanup failure must not mask the original error.
		obs.Printf("wait failed (%v), destroying droplet %d", err, droplet.ID)
		cleanupCtx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
		defer cancel()
		if derr := p.client.DeleteDroplet(cleanupCtx, droplet.ID); derr != nil {
			obs.Printf("cleanup destroy of droplet %d failed: %v", droplet.ID, derr)
		}
		return nil, err
	}

	result := &Result{Droplet: ready}

	for _, addr := range ready.Networks.V4 {
		if !addr.Public() {
			continue
		}
		obs.Printf("found public IPv4 %s", addr.IPAddress)
		if req.CreateDNSRecord {
			if rec, err := p.dns.Upsert(ctx, dnsDomain, dnsHostname, "A", addr.IPAddress); err != nil {
				return nil, err
			} else if rec != nil {
				result.DNSRecords = append(result.DNSRecords, *rec)
			}
		}
		if result.SSHHost == "" {
			result.SSHHost = addr.IPAddress
		}
	}
	for _, addr := range ready.Networks.V6 {
		if !addr.Public() {
			continue
		}
		obs.Printf("found public IPv6 %s", addr.IPAddress)
		if req.CreateDNSRecord {
			if rec, err := p.dns.Upsert(ctx, dnsDomain, dnsHostname, "AAAA", addr.IPAddress); err != nil {
				return nil, err
			} else if rec != nil {
				result.DNSRecords = append(result.DNSRecords, *rec)
			}
		}
		if result.SSHHost == "" {
			result.SSHHost = addr.IPAddress
		}
	}

	// The wait loop only returns on a public address, but the re-listing
	// above iterates a fresh copy of the networks.
	if result.SSHHost == "" {
		return nil, configErrorf("no suitable address found for ssh bootstrapping of %s", req.Name)
	}
	obs.Printf("using %s for ssh bootstrap", result.SSHHost)

	if p.bootstrap != nil {
		out, err := p.bootstrap.Bootstrap(ctx, req.Name, result.SSHHost, req.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("bootstrap %s: %w", req.Name, err)
		}
		result.Bootstrap = out
	}

	obs.Printf("droplet ready")
	return result, nil
}

// buildCreateRequest resolves all selectors and assembles the wire payload.
// Any resolution failure aborts before a mutating call is made.
func (p *Provisioner) buildCreateRequest(ctx context.Context, req *Request) (*digitalocean.DropletCreateRequest, error) {
	image, err := p.resolver.ResolveImage(ctx, req.Image)
	if err != nil {
		return nil, err
	}
	size, err := p.resolver.ResolveSize(ctx, req.Size)
	if err != nil {
		return nil, err
	}
	region, err := p.resolver.ResolveRegion(ctx, req.Region)
	if err != nil {
		return nil, err
	}
	keyIDs, err := p.resolver.ResolveSSHKeyIDs(ctx, req.SSHKeyNames)
	if err != nil {
		return nil, err
	}

	return &digitalocean.DropletCreateRequest{
		Name:              req.Name,
		Region:            region,
		Size:              size,
		Image:             image,
		SSHKeys:           keyIDs,
		PrivateNetworking: req.PrivateNetworking,
		Backups:           req.Backups,
		IPv6:              req.IPv6,
	}, nil
}

// waitForPublicAddress polls the droplet list until the named droplet shows
// at least one public address in either family. A lookup miss means the
// droplet is not visible yet, not an error.
func (p *Provisioner) waitForPublicAddress(ctx context.Context, req *Request, obs Observer) (*digitalocean.Droplet, error) {
	timeout := req.WaitTimeout
	if timeout <= 0 {
		timeout = DefaultWaitTimeout
	}
	interval := req.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	deadline := time.After(timeout)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		droplet, err := p.findDroplet(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		if droplet != nil && len(droplet.Networks.PublicIPs()) > 0 {
			return droplet, nil
		}
		if droplet == nil {
			obs.Printf("droplet not visible yet, waiting %v", interval)
		} else {
			obs.Printf("droplet %d status %s, no public address yet, waiting %v", droplet.ID, droplet.Status, interval)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline:
			return nil, &TimeoutError{Name: req.Name, Timeout: timeout}
		case <-ticker.C:
		}
	}
}

// findDroplet scans the full droplet list for a name match. The API offers
// no lookup-by-name, so this costs one listing pass per poll.
func (p *Provisioner) findDroplet(ctx context.Context, name string) (*digitalocean.Droplet, error) {
	droplets, err := p.client.ListDroplets(ctx)
	if err != nil {
		return nil, fmt.Errorf("list droplets: %w", err)
	}
	for i := range droplets {
		if droplets[i].Name == name {
			return &droplets[i], nil
		}
	}
	return nil, nil
}

// resolveDNSNames computes the (hostname, domain) pair for DNS sync.
// Explicit overrides win over FQDN derivation. When sync is requested and
// no domain can be determined, that is a configuration error.
func resolveDNSNames(req *Request) (hostname, domain string, err error) {
	if !req.CreateDNSRecord {
		return "", "", nil
	}

	hostname, domain = SplitFQDN(req.Name)
	if req.DNSHostname != "" {
		hostname = req.DNSHostname
	}
	if req.DNSDomain != "" {
		domain = req.DNSDomain
	}
	if hostname == "" || domain == "" {
		return "", "", configErrorf(
			"DNS record sync needs an explicit dns_hostname and dns_domain, or a machine name that is an FQDN (got %q)", req.Name)
	}
	return hostname, domain, nil
}

// checkKeyMaterial enforces the provider's no-root-password model: without
// a local key file the droplet would be unreachable after creation.
func checkKeyMaterial(req *Request) error {
	if req.KeyFile == "" {
		return configErrorf(
			"an ssh key file and at least one ssh key name are required; the provider does not issue root passwords")
	}
	if _, err := os.Stat(req.KeyFile); err != nil {
		return configErrorf("the defined key file %q does not exist", req.KeyFile)
	}
	if len(req.SSHKeyNames) == 0 {
		return configErrorf("at least one registered ssh key name is required")
	}
	return nil
}
