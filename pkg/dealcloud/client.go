package dealcloud

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tonimelisma/dealcloud-activity/internal/logger"
	"golang.org/x/oauth2"
)

// Client talks to a single DealCloud site. One Client, and the *http.Client
// inside it, is shared by the token request and the report request.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     logger.Logger
}

// NewClient creates a client for the given site. The site is normally a bare
// hostname such as "acme.dealcloud.com"; a value that already carries a scheme
// is used as-is. A nil httpClient gets one with DefaultTimeout.
func NewClient(site string, httpClient *http.Client, log logger.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if log == nil {
		log = logger.NoopLogger{}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    BuildBaseURL(site),
		logger:     log,
	}
}

// SetLogger allows users of the SDK to set their own logger
func (c *Client) SetLogger(l logger.Logger) {
	c.logger = l
}

// BuildBaseURL turns a site hostname into the https root URL of its API.
func BuildBaseURL(site string) string {
	site = strings.TrimRight(strings.TrimSpace(site), "/")
	if strings.Contains(site, "://") {
		return site
	}
	return "https://" + site
}

func (c *Client) endpoint(path string) string {
	return c.baseURL + path
}

// apiCall sends a request authenticated with the given bearer token and
// returns the response for any 2xx status. Other statuses become *HTTPError.
func (c *Client) apiCall(ctx context.Context, method, url, accessToken, contentType string, body io.Reader) (*http.Response, error) {
	c.logger.Debug("apiCall invoked", "method", method, "url", url)

	if c.httpClient == nil {
		return nil, errors.New("HTTP client is nil, please provide a valid HTTP client")
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("creating request failed: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}).SetAuthHeader(req)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error during %s %s: %w", method, url, err)
	}

	c.logger.Debug("response received", "method", method, "url", url, "status", res.StatusCode)

	if !isSuccess(res.StatusCode) {
		defer closeBodySafely(res.Body, c.logger, "error response")
		return nil, newHTTPError(res)
	}

	return res, nil
}
