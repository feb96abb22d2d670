package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biit/biit-api/config"
	"github.com/biit/biit-api/models"
)

func testConf(url string) config.OAuth {
	return config.OAuth{
		ClientID:    "client-123",
		TokenURL:    url,
		Scope:       "https://graph.microsoft.com/User.Read",
		RedirectURI: "http://localhost/callback",
		Timeout:     time.Second,
	}
}

func TestRefresher_Refresh(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.NoError(t, r.ParseForm())
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Equal(t, "client-123", r.PostForm.Get("client_id"))
		assert.Equal(t, "https://graph.microsoft.com/User.Read", r.PostForm.Get("scope"))
		assert.Equal(t, "http://localhost/callback", r.PostForm.Get("redirect_uri"))
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "OldRefresh", r.PostForm.Get("refresh_token"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"AccessToken","refresh_token":"RefreshToken","token_type":"Bearer","expires_in":3600}`))
	}))
	defer srv.Close()

	tok := NewRefresher(testConf(srv.URL)).Refresh(context.Background(), "OldRefresh")

	assert.Equal(t, models.AuthToken{AccessToken: "AccessToken", RefreshToken: "RefreshToken"}, tok)
	assert.Equal(t, 1, calls)
}

func TestRefresher_NonSuccessStatusYieldsEmptyPair(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusInternalServerError, http.StatusCreated} {
		calls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(status)
			w.Write([]byte(`{"access_token":"AccessToken","refresh_token":"RefreshToken"}`))
		}))

		tok := NewRefresher(testConf(srv.URL)).Refresh(context.Background(), "bad")
		srv.Close()

		assert.True(t, tok.Empty(), "status %d", status)
		assert.Equal(t, 1, calls, "no retry on status %d", status)
	}
}

func TestRefresher_BadBodyYieldsEmptyPair(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	assert.True(t, NewRefresher(testConf(srv.URL)).Refresh(context.Background(), "t").Empty())
}

func TestRefresher_IncompletePairYieldsEmptyPair(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token":"AccessToken"}`))
	}))
	defer srv.Close()

	assert.True(t, NewRefresher(testConf(srv.URL)).Refresh(context.Background(), "t").Empty())
}

func TestRefresher_UnreachableProviderYieldsEmptyPair(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	assert.True(t, NewRefresher(testConf(url)).Refresh(context.Background(), "t").Empty())
}

func TestRefresher_WithClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token":"a","refresh_token":"r"}`))
	}))
	defer srv.Close()

	r := NewRefresher(testConf(srv.URL)).WithClient(srv.Client())

	assert.Equal(t, models.AuthToken{AccessToken: "a", RefreshToken: "r"}, r.Refresh(context.Background(), "t"))
}
