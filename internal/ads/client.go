package ads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"log/slog"

	"github.com/Growth-8020/free-scripts/internal/entity"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const defaultEndpoint = "https://googleads.googleapis.com/v17"

// Config holds the Google Ads API credentials and target account.
type Config struct {
	DeveloperToken  string        `mapstructure:"developer_token"`
	CustomerID      string        `mapstructure:"customer_id"`
	LoginCustomerID string        `mapstructure:"login_customer_id"`
	ClientID        string        `mapstructure:"client_id"`
	ClientSecret    string        `mapstructure:"client_secret"`
	RefreshToken    string        `mapstructure:"refresh_token"`
	Endpoint        string        `mapstructure:"endpoint"`
	HTTPTimeout     time.Duration `mapstructure:"http_timeout"`
}

// Client queries the Google Ads reporting API over REST.
type Client struct {
	c        *Config
	client   *http.Client
	endpoint string
}

// New builds a client with an oauth2 refresh-token source.
func New(ctx context.Context, c *Config) (*Client, error) {
	if c.DeveloperToken == "" || c.CustomerID == "" {
		return nil, fmt.Errorf("incomplete ads config: developer_token and customer_id are required")
	}
	if c.ClientID == "" || c.ClientSecret == "" || c.RefreshToken == "" {
		return nil, fmt.Errorf("incomplete ads config: oauth client_id, client_secret and refresh_token are required")
	}

	oc := &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Endpoint:     google.Endpoint,
	}
	cli := oauth2.NewClient(ctx, oc.TokenSource(ctx, &oauth2.Token{RefreshToken: c.RefreshToken}))

	timeout := c.HTTPTimeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	cli.Timeout = timeout

	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	return &Client{c: c, client: cli, endpoint: endpoint}, nil
}

type searchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
}

type searchResponse struct {
	Results       []map[string]interface{} `json:"results"`
	NextPageToken string                   `json:"nextPageToken"`
}

// Search runs the GAQL query and returns the full result set, walking
// pagination until exhausted.
func (c *Client) Search(ctx context.Context, query string) ([]entity.RawRecord, error) {
	url := fmt.Sprintf("%s/customers/%s/googleAds:search", c.endpoint, c.c.CustomerID)

	var records []entity.RawRecord
	pageToken := ""
	for {
		resp, err := c.searchPage(ctx, url, query, pageToken)
		if err != nil {
			return nil, err
		}
		for _, result := range resp.Results {
			records = append(records, Flatten(result))
		}
		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}

	slog.Default().DebugContext(ctx, "ads search finished",
		slog.Int("rows", len(records)))

	return records, nil
}

func (c *Client) searchPage(ctx context.Context, url, query, pageToken string) (*searchResponse, error) {
	payload, err := json.Marshal(searchRequest{Query: query, PageToken: pageToken})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create POST request to %s: %w", url, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("developer-token", c.c.DeveloperToken)
	if c.c.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", c.c.LoginCustomerID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make POST request to %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("unexpected status code %d from %s: %s", resp.StatusCode, url, body)
	}

	var result searchResponse
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode search response from %s: %w", url, err)
	}
	return &result, nil
}
