// Package googleauth talks to the identity provider's userinfo endpoint.
// The browser-based authorization flow that produces the access token happens
// outside this program; here we only exchange a token for profile info.
package googleauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/bfontes/tavivo/internal/common"
)

// DefaultUserinfoEndpoint is Google's OAuth2 userinfo endpoint.
const DefaultUserinfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

// Userinfo is the subset of the provider's userinfo response the app consumes.
type Userinfo struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// UserinfoClient exchanges an access token for profile info.
//
// Implementations must return an error wrapping common.ErrExternalAuth when
// the exchange fails or the response carries no email.
type UserinfoClient interface {
	Fetch(ctx context.Context, accessToken string) (*Userinfo, error)
}

// HTTPUserinfoClient is the real UserinfoClient over HTTP.
type HTTPUserinfoClient struct {
	endpoint string
}

func NewHTTPUserinfoClient(endpoint string) *HTTPUserinfoClient {
	if endpoint == "" {
		endpoint = DefaultUserinfoEndpoint
	}
	return &HTTPUserinfoClient{endpoint: endpoint}
}

func (c *HTTPUserinfoClient) Fetch(ctx context.Context, accessToken string) (*Userinfo, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("%w: empty access token", common.ErrExternalAuth)
	}

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
	httpClient := oauth2.NewClient(ctx, src)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building userinfo request: %v", common.ErrExternalAuth, err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrExternalAuth, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: userinfo endpoint returned status %d", common.ErrExternalAuth, resp.StatusCode)
	}

	var ui Userinfo
	if err := json.NewDecoder(resp.Body).Decode(&ui); err != nil {
		return nil, fmt.Errorf("%w: decoding userinfo response: %v", common.ErrExternalAuth, err)
	}
	if ui.Email == "" {
		return nil, fmt.Errorf("%w: userinfo response carries no email", common.ErrExternalAuth)
	}

	return &ui, nil
}
