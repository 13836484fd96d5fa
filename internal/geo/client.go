// Package geo looks up approximate location data for an IP address through
// the ipinfo.io API.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Info is the subset of the ipinfo.io response the notifier cares about.
type Info struct {
	IP       string `json:"ip"`
	Hostname string `json:"hostname"`
	City     string `json:"city"`
	Region   string `json:"region"`
	Country  string `json:"country"`
	Postal   string `json:"postal"`
	Loc      string `json:"loc"` // "lat,lng"
	Org      string `json:"org"`
	Timezone string `json:"timezone"`
	ASN      *ASN     `json:"asn"`
	Company  *Company `json:"company"`
}

type ASN struct {
	ASN  string `json:"asn"`
	Name string `json:"name"`
}

type Company struct {
	Name string `json:"name"`
}

// Client wraps the ipinfo.io lookup API.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		token:   token,
		baseURL: "https://ipinfo.io",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Lookup resolves ip into location data. Any transport failure, non-200
// status, or undecodable body is an error; the caller treats that as a
// failed submission rather than degrading.
func (c *Client) Lookup(ctx context.Context, ip string) (*Info, error) {
	u := fmt.Sprintf("%s/%s?token=%s", c.baseURL, ip, c.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ip lookup request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ip lookup returned HTTP %d", resp.StatusCode)
	}

	var info Info
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decoding ip lookup response: %w", err)
	}

	return &info, nil
}
