package digitalocean

import "context"

// API is the surface of the DigitalOcean client consumed by the rest of
// nereid. *Client implements it; tests substitute MockClient.
type API interface {
	// Droplets
	ListDroplets(ctx context.Context) ([]Droplet, error)
	CreateDroplet(ctx context.Context, req *DropletCreateRequest) (*Droplet, error)
	DeleteDroplet(ctx context.Context, id int64) error

	// Catalog
	ListImages(ctx context.Context) ([]Image, error)
	ListSizes(ctx context.Context) ([]Size, error)
	ListRegions(ctx context.Context) ([]Region, error)

	// SSH keys
	ListSSHKeys(ctx context.Context) ([]SSHKey, error)
	GetSSHKey(ctx context.Context, id int64) (*SSHKey, error)
	CreateSSHKey(ctx context.Context, name, publicKey string) (*SSHKey, error)
	DeleteSSHKey(ctx context.Context, id int64) error

	// DNS
	DomainExists(ctx context.Context, domain string) (bool, error)
	ListDomainRecords(ctx context.Context, domain string) ([]DomainRecord, error)
	CreateDomainRecord(ctx context.Context, domain, recordType, name, data string) (*DomainRecord, error)
	DeleteDomainRecord(ctx context.Context, domain string, recordID int64) error

	// Floating IPs
	ListFloatingIPs(ctx context.Context) ([]FloatingIP, error)
	GetFloatingIP(ctx context.Context, ip string) (*FloatingIP, error)
	CreateFloatingIPForDroplet(ctx context.Context, dropletID int64) (*FloatingIP, error)
	CreateFloatingIPInRegion(ctx context.Context, region string) (*FloatingIP, error)
	DeleteFloatingIP(ctx context.Context, ip string) error
	AssignFloatingIP(ctx context.Context, ip string, dropletID int64) error
	UnassignFloatingIP(ctx context.Context, ip string) error
}

var _ API = (*Client)(nil)
