// Package fetch retrieves display tables for sectors from HTTP endpoints or local workbooks.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/models"
)

// DefaultTimeout is the time limit of one table request.
const DefaultTimeout = 20 * time.Second

// Client fetches display tables over HTTP. Each request has its own time limit.
type Client struct {
	// HTTP is the underlying client. If nil, http.DefaultClient is used.
	HTTP *http.Client
	// Timeout bounds a single request. Zero uses DefaultTimeout.
	Timeout time.Duration
	// Now stamps the cache-busting query parameter. If nil, time.Now is used.
	Now func() time.Time
}

// NewClient returns a Client with the given per-request timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{HTTP: &http.Client{}, Timeout: timeout}
}

// FetchTable requests the sector's table. Transport failures, non-2xx statuses
// and timeouts are returned as errors; server-reported failures (ok:false) are
// left in the response for the caller to interpret.
func (c *Client) FetchTable(ctx context.Context, sector models.Sector) (models.TableResponse, error) {
	if sector.APIURL == "" {
		return models.TableResponse{}, ErrNoSource
	}

	reqURL, err := c.tableURL(sector)
	if err != nil {
		return models.TableResponse{}, err
	}

	timeout := c.timeout()
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, reqURL, nil)
	if err != nil {
		return models.TableResponse{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return models.TableResponse{}, c.wrapErr(ctx, reqCtx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.TableResponse{}, &StatusError{Code: resp.StatusCode}
	}

	var table models.TableResponse
	if err := json.NewDecoder(resp.Body).Decode(&table); err != nil {
		return models.TableResponse{}, c.wrapErr(ctx, reqCtx, fmt.Errorf("decode table: %w", err))
	}
	return table, nil
}

func (c *Client) tableURL(sector models.Sector) (string, error) {
	u, err := url.Parse(sector.APIURL)
	if err != nil {
		return "", fmt.Errorf("invalid apiUrl: %w", err)
	}
	q := u.Query()
	q.Set("token", sector.Token)
	q.Set("_", strconv.FormatInt(c.now().UnixMilli(), 10))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// wrapErr turns an expired request deadline into a TimeoutError, unless the
// parent context was the one cancelled.
func (c *Client) wrapErr(parent, reqCtx context.Context, err error) error {
	if parent.Err() != nil {
		return parent.Err()
	}
	if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
		return &TimeoutError{Timeout: c.timeout()}
	}
	return err
}

func (c *Client) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

func (c *Client) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}
