package supabase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-management/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRemote(t *testing.T, h http.HandlerFunc) *RemoteVerifier {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	v, err := NewRemoteVerifier(RemoteConfig{ProjectURL: srv.URL, APIKey: "anon"})
	require.NoError(t, err)
	return v
}

func TestRemoteVerify_OK(t *testing.T) {
	v := newRemote(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "anon", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id":"u-1","email":"doc@hospital.test","role":"authenticated","app_metadata":{"role":"Doctor"}}`))
	})

	c, err := v.Verify(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", c.UserID)
	assert.Equal(t, auth.RoleDoctor, c.Role)
}

func TestRemoteVerify_Unauthorized(t *testing.T) {
	v := newRemote(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"msg":"invalid JWT"}`, http.StatusUnauthorized)
	})

	_, err := v.Verify(context.Background(), "expired")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRemoteVerify_EmptyTokenAndConfig(t *testing.T) {
	_, err := NewRemoteVerifier(RemoteConfig{ProjectURL: "https://x.supabase.co"})
	assert.ErrorIs(t, err, ErrNotConfigured)

	v := newRemote(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not call upstream")
	})
	_, err = v.Verify(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrTokenEmpty)
}
