package provisioning

import (
	"context"
	"time"

	"github.com/imamik/nereid/internal/platform/digitalocean"
)

// Defaults for the address poll loop.
const (
	DefaultWaitTimeout  = 10 * time.Minute
	DefaultPollInterval = 10 * time.Second
)

// Request is the declarative intent for one droplet. It is immutable once
// handed to the Provisioner.
type Request struct {
	// Name is the machine name, possibly a fully-qualified domain name.
	Name string

	// Selectors, resolved against the provider catalog before any
	// mutating call is issued.
	Image  string
	Size   string
	Region string

	// SSHKeyNames are provider-registered key names attached to the
	// droplet. KeyFile is the local private key used for bootstrap.
	SSHKeyNames []string
	KeyFile     string

	// Optional creation flags. nil means "not set": the flag is omitted
	// from the create payload entirely.
	PrivateNetworking *bool
	Backups           *bool
	IPv6              *bool

	// CreateDNSRecord enables address-record sync for the droplet's FQDN.
	// DNSHostname and DNSDomain override the values derived from Name.
	CreateDNSRecord bool
	DNSHostname     string
	DNSDomain       string

	// WaitTimeout and PollInterval bound the address poll loop. Zero
	// values fall back to the defaults above.
	WaitTimeout  time.Duration
	PollInterval time.Duration
}

// Result is the outcome of a successful provisioning run.
type Result struct {
	Droplet *digitalocean.Droplet

	// SSHHost is the address handed to the bootstrap collaborator: the
	// first public address, preferring v4 over v6.
	SSHHost string

	// DNSRecords are the address records written during DNS sync.
	DNSRecords []digitalocean.DomainRecord

	// Bootstrap is the collaborator's result, merged into the output.
	Bootstrap map[string]any
}

// Bootstrapper performs OS-level setup on a freshly provisioned droplet.
// It receives the machine name, the chosen reachable address, and the local
// private key path.
type Bootstrapper interface {
	Bootstrap(ctx context.Context, name, address, keyFile string) (map[string]any, error)
}
