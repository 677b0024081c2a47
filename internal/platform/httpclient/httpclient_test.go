package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON_HeadersAndDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "k-1", r.Header.Get("apikey"))
		assert.Equal(t, "override", r.Header.Get("X-Extra"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["name"]})
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(srv.URL+"/", time.Second)
	require.NoError(t, err)
	c.Headers = map[string]string{"apikey": "k-1", "X-Extra": "default"}

	var out map[string]string
	err = c.DoJSON(context.Background(), http.MethodPost, "rest/v1/x", map[string]string{"X-Extra": "override"}, map[string]string{"name": "ana"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "ana", out["echo"])
}

func TestDoJSON_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"nope"}`, http.StatusConflict)
	}))
	defer srv.Close()

	err := New(time.Second).DoJSON(context.Background(), http.MethodGet, srv.URL, nil, nil, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, StatusCode(err))
	assert.Contains(t, err.Error(), "nope")
}

func TestResolveURL(t *testing.T) {
	c := New(0)
	_, err := c.resolveURL("/x")
	assert.Error(t, err)

	_, err = NewWithBaseURL("not a url", 0)
	assert.Error(t, err)
}
