package digitalocean

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// DomainExists reports whether the domain is managed by the provider.
// A 404 means "not managed", not an error.
func (c *Client) DomainExists(ctx context.Context, domain string) (bool, error) {
	_, err := c.Do(ctx, http.MethodGet, "domains", domain, "", nil)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListDomainRecords returns the records under a managed domain.
func (c *Client) ListDomainRecords(ctx context.Context, domain string) ([]DomainRecord, error) {
	raw, err := c.Do(ctx, http.MethodGet, "domains", domain, "records", nil)
	if err != nil {
		return nil, err
	}
	var resp struct {
		DomainRecords []DomainRecord `json:"domain_records"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode domain records: %w", err)
	}
	return resp.DomainRecords, nil
}

// CreateDomainRecord creates a record under the domain. The API has no
// update-by-name primitive; repeated calls create duplicate records.
func (c *Client) CreateDomainRecord(ctx context.Context, domain, recordType, name, data string) (*DomainRecord, error) {
	body := map[string]string{"type": recordType, "name": name, "data": data}
	raw, err := c.Do(ctx, http.MethodPost, "domains", domain, "records", body)
	if err != nil {
		return nil, err
	}
	var resp struct {
		DomainRecord DomainRecord `json:"domain_record"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode domain record: %w", err)
	}
	return &resp.DomainRecord, nil
}

// DeleteDomainRecord deletes one record by id.
func (c *Client) DeleteDomainRecord(ctx context.Context, domain string, recordID int64) error {
	_, err := c.Do(ctx, http.MethodDelete, "domains", domain, "records/"+strconv.FormatInt(recordID, 10), nil)
	return err
}
