package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchSendsExpectedRequest(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		assert.Equal(t, "3", r.Header.Get("client"))
		assert.Equal(t, "application/json", r.Header.Get("content-type"))
		w.Write([]byte(`{"Data":{"FastTime":[]}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	raw, err := c.Fetch(context.Background(), "2026-03-02", "sylhet")
	require.NoError(t, err)

	assert.Equal(t, "/RamadanSeheriIftarTime", gotPath)
	assert.Equal(t, "2026-03-02", gotBody["firstDate"])
	assert.Equal(t, "sylhet", gotBody["location"])
	assert.Equal(t, "bn", gotBody["language"])
	assert.JSONEq(t, `{"Data":{"FastTime":[]}}`, string(raw))
}

func TestFetchNonSuccessStatusIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Fetch(context.Background(), "2026-03-02", "dhaka")
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestFetchConnectionErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewClient(srv.URL)
	_, err := c.Fetch(context.Background(), "2026-03-02", "dhaka")
	assert.True(t, errors.Is(err, ErrUnavailable))
}
