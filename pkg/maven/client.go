package maven

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	pkgerrors "github.com/matzehuels/pomdeps/pkg/errors"
	"github.com/matzehuels/pomdeps/pkg/observability"
)

// ErrNotFound is the cause of a FETCH_ERROR when the repository answers 404.
var ErrNotFound = errors.New("descriptor not found")

// StatusError reports a non-2xx response from the repository.
type StatusError struct {
	StatusCode int    // e.g. 503
	Status     string // e.g. "503 Service Unavailable"
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %s", e.Status)
}

// Unwrap returns [ErrNotFound] for 404 responses so callers can use errors.Is.
func (e *StatusError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}

// Client retrieves descriptors from a Maven repository over HTTP.
//
// Each call issues exactly one GET request. There is no retry, no response
// cache and no connection reuse between calls; callers needing resilience
// wrap [Client.FetchDescriptor] themselves.
type Client struct {
	http *http.Client
}

// NewClient creates a Client using hc for requests.
// Pass nil to use [NewHTTPClient].
func NewClient(hc *http.Client) *Client {
	if hc == nil {
		hc = NewHTTPClient()
	}
	return &Client{http: hc}
}

// NewHTTPClient creates the HTTP client used for descriptor requests.
// It sets no timeout of its own; requests are bounded only by the context
// passed to [Client.FetchDescriptor] and the transport defaults.
func NewHTTPClient() *http.Client {
	return &http.Client{}
}

// FetchDescriptor downloads the document at url and returns its body as text.
//
// Transport, DNS and TLS failures and any non-2xx status are reported as a
// FETCH_ERROR whose message names url and whose cause is the underlying
// error (a [*StatusError] for bad statuses). The response body is fully
// read and closed before FetchDescriptor returns.
func (c *Client) FetchDescriptor(ctx context.Context, url string) (string, error) {
	hooks := observability.Fetch()
	hooks.OnFetchStart(ctx, url)

	start := time.Now()
	body, status, err := c.get(ctx, url)
	hooks.OnFetchComplete(ctx, url, status, len(body), time.Since(start), err)
	return body, err
}

func (c *Client) get(ctx context.Context, url string) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", 0, fetchError(url, err)
	}
	req.Close = true

	resp, err := c.http.Do(req)
	if err != nil {
		return "", 0, fetchError(url, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", resp.StatusCode, fetchError(url, err)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, fetchError(url, err)
	}
	return string(data), resp.StatusCode, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
}

func fetchError(url string, cause error) error {
	return pkgerrors.Wrap(pkgerrors.ErrCodeFetch, cause, "fetch %s", url)
}
