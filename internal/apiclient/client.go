// Package apiclient talks to the PicShare API's public account endpoints:
// signup (POST /users) and login (POST /auth/login).
package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/picseed/internal/common"
	"github.com/dmitrijs2005/picseed/internal/models"
	"github.com/dmitrijs2005/picseed/internal/netx"
)

const (
	usersPath = "/users"
	loginPath = "/auth/login"

	DefaultTimeout = 10 * time.Second
)

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for the API at baseURL. Every request is bounded by
// timeout; a zero timeout means DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CreateUser signs rec up. It returns nil on 200, common.ErrAlreadyExists on
// 409, a *StatusError for any other status and an error wrapping
// ErrUnavailable when the request did not complete.
func (c *Client) CreateUser(ctx context.Context, rec models.SeedRecord) error {
	status, body, err := netx.PostJSON(ctx, c.http, c.baseURL+usersPath, rec)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	switch status {
	case http.StatusOK:
		return nil
	case http.StatusConflict:
		return common.ErrAlreadyExists
	default:
		return &StatusError{Code: status, Body: string(body)}
	}
}

// Login posts the credentials and returns nil on 200. Any other status is a
// *StatusError.
func (c *Client) Login(ctx context.Context, creds models.Credentials) error {
	status, body, err := netx.PostJSON(ctx, c.http, c.baseURL+loginPath, creds)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if status != http.StatusOK {
		return &StatusError{Code: status, Body: string(body)}
	}
	return nil
}
