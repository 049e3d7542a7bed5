package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/gemini-notion-api/appconfig"
	"go.uber.org/zap"
)

const (
	baseURLDefault = "https://api.notion.com/v1"
	defaultTimeout = 30 * time.Second
)

// Options configures the Client.
type Options struct {
	BaseURL string
	Token   string
	Version string
	Timeout time.Duration
}

// Client is a minimal Notion REST client scoped to the database query
// endpoint. Each call is bounded by the configured timeout.
type Client struct {
	http *http.Client
	opts Options
}

// NewClient creates a new Client with sane defaults.
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.Version == "" {
		o.Version = appconfig.NotionVersion
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
	}
}

func ProvideClient(cfg *appconfig.AppConfig) *Client {
	return NewClient(Options{Token: cfg.NotionToken})
}

// QueryAll retrieves every page of a database, following the continuation
// cursor until the API reports no more records. A failed page ends the loop
// early and whatever accumulated so far is returned; the aborted flag is the
// only trace of the partial scan, there is no error path by design.
func (c *Client) QueryAll(ctx context.Context, databaseID string) (pages []Page, aborted bool) {
	cursor := ""
	for {
		resp, err := c.queryPage(ctx, databaseID, cursor)
		if err != nil {
			logger.Error("notion query aborted, keeping partial results",
				zap.String("databaseId", databaseID),
				zap.Int("accumulated", len(pages)),
				zap.Error(err))
			return pages, true
		}

		pages = append(pages, resp.Results...)
		if !resp.HasMore || resp.NextCursor == nil {
			return pages, false
		}
		cursor = *resp.NextCursor
	}
}

// queryPage issues a single POST /databases/{id}/query call, carrying the
// continuation cursor when there is one.
func (c *Client) queryPage(ctx context.Context, databaseID, cursor string) (*queryResponse, error) {
	body, err := json.Marshal(queryRequest{StartCursor: cursor})
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	url := fmt.Sprintf("%s/databases/%s/query", c.opts.BaseURL, databaseID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.opts.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Notion-Version", c.opts.Version)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", databaseID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("query %s: status %d", databaseID, resp.StatusCode)
	}

	var out queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode query response: %w", err)
	}
	return &out, nil
}
