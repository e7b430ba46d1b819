// Package confluence implements the ConfluenceAPI port against the
// Confluence Cloud REST API.
package confluence

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Whil-/confluence-reader/internal/core/domain"
	"github.com/Whil-/confluence-reader/internal/core/ports/driven"
	"github.com/Whil-/confluence-reader/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.ConfluenceAPI = (*Client)(nil)

const (
	searchPath = "/wiki/rest/api/search"
	pagesPath  = "/wiki/api/v2/pages/"
)

// Param is a single query parameter. Parameters are appended to the
// request URL in slice order; there is no canonicalisation.
type Param struct {
	Key   string
	Value string
}

// Client dispatches authenticated requests against a single Confluence
// host. Every request carries a Basic auth header built from the
// credential stored for that host; a missing credential fails the
// request with domain.ErrNoCredentials. Responses with a status other
// than 200 fail with domain.APIError and are never retried.
type Client struct {
	host        string
	baseURL     string
	credentials driven.CredentialStore
	httpClient  *http.Client
}

// NewClient creates a client for the given host. If httpClient is nil a
// default client is used; no timeout is configured beyond the
// transport's own defaults.
func NewClient(host string, credentials driven.CredentialStore, httpClient *http.Client) (*Client, error) {
	if strings.TrimSpace(host) == "" {
		return nil, domain.ErrNoHost
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		host:        host,
		baseURL:     "https://" + host,
		credentials: credentials,
		httpClient:  httpClient,
	}, nil
}

// Host implements driven.ConfluenceAPI.
func (c *Client) Host() string {
	return c.host
}

// do builds and dispatches one authenticated request. method defaults
// to GET when empty. The caller gets the raw response body.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	headers map[string]string,
	params []Param,
	body io.Reader,
) ([]byte, error) {
	if method == "" {
		method = http.MethodGet
	}

	cred, err := c.credentials.Lookup(c.host)
	if err != nil {
		return nil, err
	}

	reqURL := c.baseURL + path + BuildQuery(params)
	logger.Debug("%s %s", method, reqURL)

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(cred.Username, cred.Secret)
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.APIError{StatusCode: resp.StatusCode, Path: path}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return data, nil
}

// FetchImage implements driven.ConfluenceAPI. Host-relative sources and
// absolute URLs on the configured host go through the authenticated
// dispatcher; absolute URLs on any other host are fetched anonymously,
// so the credential never leaves the configured host.
func (c *Client) FetchImage(ctx context.Context, src string) ([]byte, error) {
	if src == "" {
		return nil, fmt.Errorf("image source: %w", domain.ErrInvalidInput)
	}

	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		parsed, err := url.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("parse image source: %w", err)
		}
		if parsed.Host != c.host {
			return c.fetchAnonymous(ctx, src)
		}
		src = parsed.RequestURI()
	}

	return c.do(ctx, http.MethodGet, src, nil, nil, nil)
}

// fetchAnonymous fetches an off-host image without credentials.
func (c *Client) fetchAnonymous(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.APIError{StatusCode: resp.StatusCode, Path: imageURL}
	}
	return io.ReadAll(resp.Body)
}

// BuildQuery renders parameters as a "?k=v&k=v" suffix. Values are
// percent-encoded; keys are emitted verbatim in insertion order.
// Returns the empty string for no parameters.
func BuildQuery(params []Param) string {
	if len(params) == 0 {
		return ""
	}

	var b strings.Builder
	for i, p := range params {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(queryEscape(p.Value))
	}
	return b.String()
}

// queryEscape percent-encodes everything outside the RFC 3986
// unreserved set. Space becomes %20, not "+".
func queryEscape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if isUnreserved(ch) {
			b.WriteByte(ch)
			continue
		}
		b.WriteString(fmt.Sprintf("%%%02X", ch))
	}
	return b.String()
}

func isUnreserved(ch byte) bool {
	return ch >= 'a' && ch <= 'z' ||
		ch >= 'A' && ch <= 'Z' ||
		ch >= '0' && ch <= '9' ||
		ch == '-' || ch == '.' || ch == '_' || ch == '~'
}

// Search implements driven.ConfluenceAPI.
func (c *Client) Search(ctx context.Context, cql string, limit int) ([]domain.SearchResult, error) {
	params := []Param{
		{Key: "cql", Value: cql},
		{Key: "limit", Value: strconv.Itoa(limit)},
	}

	data, err := c.do(ctx, http.MethodGet, searchPath, nil, params, nil)
	if err != nil {
		return nil, err
	}

	return decodeSearchResponse(data)
}

// GetPage implements driven.ConfluenceAPI.
func (c *Client) GetPage(ctx context.Context, id string) (*domain.Page, error) {
	params := []Param{
		{Key: "body-format", Value: "export_view"},
	}

	data, err := c.do(ctx, http.MethodGet, pagesPath+id, nil, params, nil)
	if err != nil {
		return nil, err
	}

	return decodePageResponse(data)
}
