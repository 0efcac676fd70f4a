package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pupfinder/internal/domain"
)

const sessionCookie = "fetch-access-token"

// fakeService is a minimal stand-in for the remote API that requires the
// session cookie on every /dogs route.
func fakeService(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var creds domain.Credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.Email == "" {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "token", Path: "/"})
		w.Write([]byte("OK"))
	})
	mux.HandleFunc("/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	authed := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if _, err := r.Cookie(sessionCookie); err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next(w, r)
		}
	}

	mux.HandleFunc("/dogs/breeds", authed(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]string{"Beagle", "Poodle"})
	}))
	mux.HandleFunc("/dogs/search", authed(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, []string{"Poodle"}, q["breeds"])
		assert.Equal(t, []string{"10001", "10002"}, q["zipCodes"])
		json.NewEncoder(w).Encode(SearchResponse{ResultIDs: []string{"a", "b"}, Total: 25})
	}))
	mux.HandleFunc("/dogs", authed(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var ids []string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&ids))
		dogs := make([]domain.Dog, 0, len(ids))
		for _, id := range ids {
			dogs = append(dogs, domain.Dog{ID: id, Name: "dog-" + id, Age: 3, ZipCode: "10001"})
		}
		json.NewEncoder(w).Encode(dogs)
	}))
	mux.HandleFunc("/dogs/match", authed(func(w http.ResponseWriter, r *http.Request) {
		var ids []string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&ids))
		json.NewEncoder(w).Encode(matchResponse{Match: ids[len(ids)-1]})
	}))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := New(Options{BaseURL: baseURL, Timeout: 2 * time.Second})
	require.NoError(t, err)
	return c
}

func TestNewRejectsInvalidBaseURL(t *testing.T) {
	_, err := New(Options{BaseURL: "not a url"})
	require.Error(t, err)
}

func TestSessionCookieIsCarriedAfterLogin(t *testing.T) {
	srv := fakeService(t)
	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	_, err := c.Breeds(ctx)
	require.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, c.Login(ctx, domain.Credentials{Name: "Ada", Email: "ada@example.com"}))

	breeds, err := c.Breeds(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Beagle", "Poodle"}, breeds)
}

func TestLoginRejected(t *testing.T) {
	srv := fakeService(t)
	c := newTestClient(t, srv.URL)

	err := c.Login(context.Background(), domain.Credentials{Name: "Ada"})
	require.Error(t, err)
	assert.True(t, IsStatus(err))
	assert.False(t, IsTransport(err))

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadRequest, se.StatusCode)
}

func TestSearchDogsAndMatch(t *testing.T) {
	srv := fakeService(t)
	c := newTestClient(t, srv.URL)
	ctx := context.Background()
	require.NoError(t, c.Login(ctx, domain.Credentials{Name: "Ada", Email: "ada@example.com"}))

	params := url.Values{}
	params.Set("breeds", "Poodle")
	params.Add("zipCodes", "10001")
	params.Add("zipCodes", "10002")
	resp, err := c.Search(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, resp.ResultIDs)
	assert.Equal(t, 25, resp.Total)

	dogs, err := c.Dogs(ctx, resp.ResultIDs)
	require.NoError(t, err)
	require.Len(t, dogs, 2)
	assert.Equal(t, "dog-a", dogs[0].Name)
	assert.Equal(t, "10001", dogs[0].ZipCode)

	id, err := c.Match(ctx, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "b", id)

	require.NoError(t, c.Logout(ctx))
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c := newTestClient(t, base)
	err := c.Login(context.Background(), domain.Credentials{Name: "Ada", Email: "ada@example.com"})
	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.False(t, IsStatus(err))
}

func TestEmptyMatchIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"match":""}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Match(context.Background(), []string{"a"})
	require.Error(t, err)
}
