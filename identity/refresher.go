package identity

// go generate: mockery --name TokenRefresher

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/biit/biit-api/config"
	"github.com/biit/biit-api/models"
)

// TokenRefresher exchanges a refresh token for a fresh token pair. A failed
// exchange returns the empty pair, never an error.
type TokenRefresher interface {
	Refresh(ctx context.Context, refreshToken string) models.AuthToken
}

// Refresher refreshes tokens against an OAuth token endpoint using the
// refresh_token grant. Every call goes to the provider; nothing is cached and
// nothing is retried.
type Refresher struct {
	conf   config.OAuth
	client *http.Client
}

// NewRefresher returns a Refresher for the configured provider
func NewRefresher(conf config.OAuth) *Refresher {
	return &Refresher{
		conf:   conf,
		client: &http.Client{Timeout: conf.Timeout},
	}
}

// WithClient swaps the http client, used to point tests at a local server
func (r *Refresher) WithClient(c *http.Client) *Refresher {
	r.client = c
	return r
}

// Refresh performs a single token exchange
func (r *Refresher) Refresh(ctx context.Context, refreshToken string) models.AuthToken {
	form := url.Values{
		"client_id":     {r.conf.ClientID},
		"scope":         {r.conf.Scope},
		"redirect_uri":  {r.conf.RedirectURI},
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.conf.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		zap.S().Errorw("failed to build token refresh request", "error", err)
		return models.AuthToken{}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := r.client.Do(req)
	if err != nil {
		zap.S().Errorw("token refresh request failed", "error", err)
		return models.AuthToken{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		zap.S().Warnw("identity provider rejected token refresh", "status", resp.StatusCode)
		return models.AuthToken{}
	}

	var tok oauth2.Token
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		zap.S().Errorw("failed to decode token refresh response", "error", err)
		return models.AuthToken{}
	}
	if tok.AccessToken == "" || tok.RefreshToken == "" {
		zap.S().Warnw("identity provider returned an incomplete token pair")
		return models.AuthToken{}
	}

	return models.AuthToken{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
	}
}
