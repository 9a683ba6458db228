package digitalocean

import "encoding/json"

// Droplet is a provisioned virtual machine as reported by the API.
type Droplet struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Status   string   `json:"status"` // opaque passthrough: "new", "active", "off", "archive", ...
	Networks Networks `json:"networks"`
	Image    Image    `json:"image"`
	SizeSlug string   `json:"size_slug"`

	// Extra holds provider fields not modeled above. Display only; never
	// used for control flow.
	Extra map[string]json.RawMessage `json:"-"`
}

// Networks groups a droplet's addresses by family.
type Networks struct {
	V4 []Address `json:"v4"`
	V6 []Address `json:"v6"`
}

// Address is one network interface entry.
type Address struct {
	IPAddress string `json:"ip_address"`
	Type      string `json:"type"` // "public" or "private"
}

// Public reports whether the address is reachable from outside the
// provider's private network.
func (a Address) Public() bool { return a.Type == "public" }

// PublicIPs returns the public addresses across both families, v4 first.
func (n Networks) PublicIPs() []string {
	var ips []string
	for _, addrs := range [][]Address{n.V4, n.V6} {
		for _, a := range addrs {
			if a.Public() {
				ips = append(ips, a.IPAddress)
			}
		}
	}
	return ips
}

// PrivateIPs returns the private addresses across both families, v4 first.
func (n Networks) PrivateIPs() []string {
	var ips []string
	for _, addrs := range [][]Address{n.V4, n.V6} {
		for _, a := range addrs {
			if a.Type == "private" {
				ips = append(ips, a.IPAddress)
			}
		}
	}
	return ips
}

// Image is an OS image descriptor.
type Image struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Size is a droplet size descriptor.
type Size struct {
	Slug         string  `json:"slug"`
	PriceHourly  float64 `json:"price_hourly"`
	PriceMonthly float64 `json:"price_monthly"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Region is a datacenter location descriptor.
type Region struct {
	Name string `json:"name"`
	Slug string `json:"slug"`

	Extra map[string]json.RawMessage `json:"-"`
}

// SSHKey is a public key registered with the provider account.
type SSHKey struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Fingerprint string `json:"fingerprint"`
	PublicKey   string `json:"public_key"`
}

// DomainRecord is one DNS record under a managed domain.
type DomainRecord struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
	Data string `json:"data"`
}

// FloatingIP is a reassignable public address.
type FloatingIP struct {
	IP      string   `json:"ip"`
	Region  Region   `json:"region"`
	Droplet *Droplet `json:"droplet"`
}

// DropletCreateRequest is the payload for creating a droplet. Optional
// booleans are pointers so that unset flags are omitted from the wire
// entirely rather than sent as false.
type DropletCreateRequest struct {
	Name              string  `json:"name"`
	Region            string  `json:"region"`
	Size              string  `json:"size"`
	Image             any     `json:"image"` // slug string or numeric id
	SSHKeys           []int64 `json:"ssh_keys"`
	PrivateNetworking *bool   `json:"private_networking,omitempty"`
	Backups           *bool   `json:"backups,omitempty"`
	IPv6              *bool   `json:"ipv6,omitempty"`
}

// unmarshalWithExtra decodes raw into v and stashes any fields not named in
// known into extra.
func unmarshalWithExtra(raw json.RawMessage, v any, known []string) (map[string]json.RawMessage, error) {
	if err := json.Unmarshal(raw, v); err != nil {
		return nil, err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(all, k)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

// UnmarshalJSON retains unmodeled provider fields in Extra.
func (d *Droplet) UnmarshalJSON(raw []byte) error {
	type alias Droplet
	var a alias
	extra, err := unmarshalWithExtra(raw, &a, []string{"id", "name", "status", "networks", "image", "size_slug"})
	if err != nil {
		return err
	}
	*d = Droplet(a)
	d.Extra = extra
	return nil
}

// UnmarshalJSON retains unmodeled provider fields in Extra.
func (i *Image) UnmarshalJSON(raw []byte) error {
	type alias Image
	var a alias
	extra, err := unmarshalWithExtra(raw, &a, []string{"id", "name", "slug"})
	if err != nil {
		return err
	}
	*i = Image(a)
	i.Extra = extra
	return nil
}

// UnmarshalJSON retains unmodeled provider fields in Extra.
func (s *Size) UnmarshalJSON(raw []byte) error {
	type alias Size
	var a alias
	extra, err := unmarshalWithExtra(raw, &a, []string{"slug", "price_hourly", "price_monthly"})
	if err != nil {
		return err
	}
	*s = Size(a)
	s.Extra = extra
	return nil
}

// UnmarshalJSON retains unmodeled provider fields in Extra.
func (r *Region) UnmarshalJSON(raw []byte) error {
	type alias Region
	var a alias
	extra, err := unmarshalWithExtra(raw, &a, []string{"name", "slug"})
	if err != nil {
		return err
	}
	*r = Region(a)
	r.Extra = extra
	return nil
}
