// Package identityclient resolves bearer tokens against the hosted
// identity service. Tokens are never verified locally; every request
// carrying one costs a round trip to the identity provider.
package identityclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shababna/engagement-api/internal/domain"
)

// ErrUnauthenticated indicates the identity service rejected the token.
var ErrUnauthenticated = errors.New("identity service rejected token")

// Resolver turns a bearer token into an authenticated identity.
type Resolver interface {
	Resolve(ctx context.Context, token string) (domain.Identity, error)
}

// Client calls the identity service's user endpoint over HTTP.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: timeout},
	}
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Resolve asks the identity service who the token belongs to. Any
// rejection by the service maps to ErrUnauthenticated; transport
// failures bubble up unchanged.
func (c *Client) Resolve(ctx context.Context, token string) (domain.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("build identity request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("call identity service: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return domain.Identity{}, ErrUnauthenticated
	default:
		return domain.Identity{}, fmt.Errorf("identity service returned %d", resp.StatusCode)
	}

	var u userResponse
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return domain.Identity{}, fmt.Errorf("decode identity response: %w", err)
	}
	if u.ID == "" {
		return domain.Identity{}, ErrUnauthenticated
	}
	return domain.Identity{ID: domain.ProfileID(u.ID), Email: u.Email}, nil
}
