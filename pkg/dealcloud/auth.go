// Package dealcloud (auth.go) obtains bearer tokens from the DealCloud
// OAuth2 token endpoint using the client-credentials grant.
package dealcloud

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// OAuthConfig builds the client-credentials configuration for this site.
// The credentials are sent with HTTP basic auth and the form body carries
// scope=user_management&grant_type=client_credentials.
func (c *Client) OAuthConfig(clientID, clientSecret string) *clientcredentials.Config {
	return &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     c.endpoint(TokenPath),
		Scopes:       []string{TokenScope},
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
}

// FetchToken exchanges the client id and secret for a bearer token.
//
// Every call performs a new token request; nothing is cached and nothing is
// retried. Failures of any kind, including a 2xx response without an
// access_token, are reported as ErrAuth.
func (c *Client) FetchToken(ctx context.Context, clientID, clientSecret string) (string, error) {
	if strings.TrimSpace(clientID) == "" || strings.TrimSpace(clientSecret) == "" {
		return "", fmt.Errorf("%w: client id and client secret are required", ErrAuth)
	}

	conf := c.OAuthConfig(clientID, clientSecret)
	c.logger.Debug("requesting access token", "url", conf.TokenURL, "scope", TokenScope)

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.tokenHTTPClient(clientID, clientSecret))

	token, err := conf.Token(ctx)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			return "", fmt.Errorf("%w: token endpoint returned %s: %w", ErrAuth, retrieveErr.Response.Status, err)
		}
		return "", fmt.Errorf("%w: %w", ErrAuth, err)
	}

	if token.AccessToken == "" {
		return "", fmt.Errorf("%w: token response is missing access_token", ErrAuth)
	}

	c.logger.Debug("access token received", "token_type", token.Type(), "expiry", token.Expiry)
	return token.AccessToken, nil
}

// tokenHTTPClient returns a copy of the shared client whose requests carry the
// credentials as raw basic auth. x/oauth2 form-escapes them first, which
// servers that do not decode the header reject.
func (c *Client) tokenHTTPClient(clientID, clientSecret string) *http.Client {
	base := c.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	hc := *c.httpClient
	hc.Transport = &basicAuthTransport{base: base, username: clientID, password: clientSecret}
	return &hc
}

type basicAuthTransport struct {
	base               http.RoundTripper
	username, password string
}

func (t *basicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.SetBasicAuth(t.username, t.password)
	return t.base.RoundTrip(r)
}
