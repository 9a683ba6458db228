package digitalocean

import "context"

// MockClient is a function-field mock of the API interface.
type MockClient struct {
	ListDropletsFunc  func(ctx context.Context) ([]Droplet, error)
	CreateDropletFunc func(ctx context.Context, req *DropletCreateRequest) (*Droplet, error)
	DeleteDropletFunc func(ctx context.Context, id int64) error

	ListImagesFunc  func(ctx context.Context) ([]Image, error)
	ListSizesFunc   func(ctx context.Context) ([]Size, error)
	ListRegionsFunc func(ctx context.Context) ([]Region, error)

	ListSSHKeysFunc  func(ctx context.Context) ([]SSHKey, error)
	GetSSHKeyFunc    func(ctx context.Context, id int64) (*SSHKey, error)
	CreateSSHKeyFunc func(ctx context.Context, name, publicKey string) (*SSHKey, error)
	DeleteSSHKeyFunc func(ctx context.Context, id int64) error

	DomainExistsFunc       func(ctx context.Context, domain string) (bool, error)
	ListDomainRecordsFunc  func(ctx context.Context, domain string) ([]DomainRecord, error)
	CreateDomainRecordFunc func(ctx context.Context, domain, recordType, name, data string) (*DomainRecord, error)
	DeleteDomainRecordFunc func(ctx context.Context, domain string, recordID int64) error

	ListFloatingIPsFunc            func(ctx context.Context) ([]FloatingIP, error)
	GetFloatingIPFunc              func(ctx context.Context, ip string) (*FloatingIP, error)
	CreateFloatingIPForDropletFunc func(ctx context.Context, dropletID int64) (*FloatingIP, error)
	CreateFloatingIPInRegionFunc   func(ctx context.Context, region string) (*FloatingIP, error)
	DeleteFloatingIPFunc           func(ctx context.Context, ip string) error
	AssignFloatingIPFunc           func(ctx context.Context, ip string, dropletID int64) error
	UnassignFloatingIPFunc         func(ctx context.Context, ip string) error
}

var _ API = (*MockClient)(nil)

// ListDroplets implements API.
func (m *MockClient) ListDroplets(ctx context.Context) ([]Droplet, error) {
	if m.ListDropletsFunc != nil {
		return m.ListDropletsFunc(ctx)
	}
	return nil, nil
}

// CreateDroplet implements API.
func (m *MockClient) CreateDroplet(ctx context.Context, req *DropletCreateRequest) (*Droplet, error) {
	if m.CreateDropletFunc != nil {
		return m.CreateDropletFunc(ctx, req)
	}
	return &Droplet{}, nil
}

// DeleteDroplet implements API.
func (m *MockClient) DeleteDroplet(ctx context.Context, id int64) error {
	if m.DeleteDropletFunc != nil {
		return m.DeleteDropletFunc(ctx, id)
	}
	return nil
}

// ListImages implements API.
func (m *MockClient) ListImages(ctx context.Context) ([]Image, error) {
	if m.ListImagesFunc != nil {
		return m.ListImagesFunc(ctx)
	}
	return nil, nil
}

// ListSizes implements API.
func (m *MockClient) ListSizes(ctx context.Context) ([]Size, error) {
	if m.ListSizesFunc != nil {
		return m.ListSizesFunc(ctx)
	}
	return nil, nil
}

// ListRegions implements API.
func (m *MockClient) ListRegions(ctx context.Context) ([]Region, error) {
	if m.ListRegionsFunc != nil {
		return m.ListRegionsFunc(ctx)
	}
	return nil, nil
}

// ListSSHKeys implements API.
func (m *MockClient) ListSSHKeys(ctx context.Context) ([]SSHKey, error) {
	if m.ListSSHKeysFunc != nil {
		return m.ListSSHKeysFunc(ctx)
	}
	return nil, nil
}

// GetSSHKey implements API.
func (m *MockClient) GetSSHKey(ctx context.Context, id int64) (*SSHKey, error) {
	if m.GetSSHKeyFunc != nil {
		return m.GetSSHKeyFunc(ctx, id)
	}
	return &SSHKey{ID: id}, nil
}

// CreateSSHKey implements API.
func (m *MockClient) CreateSSHKey(ctx context.Context, name, publicKey string) (*SSHKey, error) {
	if m.CreateSSHKeyFunc != nil {
		return m.CreateSSHKeyFunc(ctx, name, publicKey)
	}
	return &SSHKey{Name: name, PublicKey: publicKey}, nil
}

// DeleteSSHKey implements API.
func (m *MockClient) DeleteSSHKey(ctx context.Context, id int64) error {
	if m.DeleteSSHKeyFunc != nil {
		return m.DeleteSSHKeyFunc(ctx, id)
	}
	return nil
}

// DomainExists implements API.
func (m *MockClient) DomainExists(ctx context.Context, domain string) (bool, error) {
	if m.DomainExistsFunc != nil {
		return m.DomainExistsFunc(ctx, domain)
	}
	return true, nil
}

// ListDomainRecords implements API.
func (m *MockClient) ListDomainRecords(ctx context.Context, domain string) ([]DomainRecord, error) {
	if m.ListDomainRecordsFunc != nil {
		return m.ListDomainRecordsFunc(ctx, domain)
	}
	return nil, nil
}

// CreateDomainRecord implements API.
func (m *MockClient) CreateDomainRecord(ctx context.Context, domain, recordType, name, data string) (*DomainRecord, error) {
	if m.CreateDomainRecordFunc != nil {
		return m.CreateDomainRecordFunc(ctx, domain, recordType, name, data)
	}
	return &DomainRecord{Type: recordType, Name: name, Data: data}, nil
}

// DeleteDomainRecord implements API.
func (m *MockClient) DeleteDomainRecord(ctx context.Context, domain string, recordID int64) error {
	if m.DeleteDomainRecordFunc != nil {
		return m.DeleteDomainRecordFunc(ctx, domain, recordID)
	}
	return nil
}

// ListFloatingIPs implements API.
func (m *MockClient) ListFloatingIPs(ctx context.Context) ([]FloatingIP, error) {
	if m.ListFloatingIPsFunc != nil {
		return m.ListFloatingIPsFunc(ctx)
	}
	return nil, nil
}

// GetFloatingIP implements API.
func (m *MockClient) GetFloatingIP(ctx context.Context, ip string) (*FloatingIP, error) {
	if m.GetFloatingIPFunc != nil {
		return m.GetFloatingIPFunc(ctx, ip)
	}
	return &FloatingIP{IP: ip}, nil
}

// CreateFloatingIPForDroplet implements API.
func (m *MockClient) CreateFloatingIPForDroplet(ctx context.Context, dropletID int64) (*FloatingIP, error) {
	if m.CreateFloatingIPForDropletFunc != nil {
		return m.CreateFloatingIPForDropletFunc(ctx, dropletID)
	}
	return &FloatingIP{}, nil
}

// CreateFloatingIPInRegion implements API.
func (m *MockClient) CreateFloatingIPInRegion(ctx context.Context, region string) (*FloatingIP, error) {
	if m.CreateFloatingIPInRegionFunc != nil {
		return m.CreateFloatingIPInRegionFunc(ctx, region)
	}
	return &FloatingIP{}, nil
}

// DeleteFloatingIP implements API.
func (m *MockClient) DeleteFloatingIP(ctx context.Context, ip string) error {
	if m.DeleteFloatingIPFunc != nil {
		return m.DeleteFloatingIPFunc(ctx, ip)
	}
	return nil
}

// AssignFloatingIP implements API.
func (m *MockClient) AssignFloatingIP(ctx context.Context, ip string, dropletID int64) error {
	if m.AssignFloatingIPFunc != nil {
		return m.AssignFloatingIPFunc(ctx, ip, dropletID)
	}
	return nil
}

// UnassignFloatingIP implements API.
func (m *MockClient) UnassignFloatingIP(ctx context.Context, ip string) error {
	if m.UnassignFloatingIPFunc != nil {
		return m.UnassignFloatingIPFunc(ctx, ip)
	}
	return nil
}
