package provisioning

import (
	"context"
	"fmt"

	"github.com/imamik/nereid/internal/platform/digitalocean"
)

// Synchronizer keeps a DNS zone in step with droplet addresses.
//
// Known limitation: the provider exposes no update-by-name primitive, so
// Upsert is an unconditional create. Provisioning the same FQDN twice
// accumulates duplicate address records.
type Synchronizer struct {
	client   digitalocean.API
	observer Observer
}

// NewSynchronizer creates a Synchronizer.
func NewSynchronizer(client digitalocean.API, observer Observer) *Synchronizer {
	return &Synchronizer{client: client, observer: observer}
}

// Upsert writes an address record under domain. When the domain is not
// managed by the provider the write is skipped and (nil, nil) is returned;
// DNS sync is opportunistic.
func (s *Synchronizer) Upsert(ctx context.Context, domain, hostname, recordType, address string) (*digitalocean.DomainRecord, error) {
	managed, err := s.client.DomainExists(ctx, domain)
	if err != nil {
		return nil, fmt.Errorf("check domain %s: %w", domain, err)
	}
	if !managed {
		s.observer.Printf("domain %s is not managed here, skipping %s record for %s", domain, recordType, hostname)
		return nil, nil
	}

	record, err := s.client.CreateDomainRecord(ctx, domain, recordType, hostname, address)
	if err != nil {
		return nil, fmt.Errorf("create %s record %s.%s: %w", recordType, hostname, domain, err)
	}
	s.observer.Printf("created %s record %s.%s -> %s (id %d)", recordType, hostname, domain, address, record.ID)
	return record, nil
}

// DeleteAllFor removes every record under domain whose name equals
// hostname, regardless of record type. Individual deletion failures are
// logged and skipped; the sweep itself never fails the caller unless the
// initial listing does.
func (s *Synchronizer) DeleteAllFor(ctx context.Context, domain, hostname string) error {
	records, err := s.client.ListDomainRecords(ctx, domain)
	if err != nil {
		return fmt.Errorf("list records for %s: %w", domain, err)
	}

	for _, record := range records {
		if record.Name != hostname {
			continue
		}
		s.observer.Printf("deleting %s record %d (%s.%s)", record.Type, record.ID, hostname, domain)
		if err := s.client.DeleteDomainRecord(ctx, domain, record.ID); err != nil {
			s.observer.Printf("failed to delete record %d under %s: %v", record.ID, domain, err)
		}
	}
	return nil
}
