package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"hospital-management/internal/platform/httpclient"
	"hospital-management/internal/ports/auth"
)

var ErrUnauthorized = errors.New("supabase unauthorized")

// RemoteConfig apunta al proyecto Supabase (https://<ref>.supabase.co).
type RemoteConfig struct {
	ProjectURL string
	APIKey     string // anon key
	Timeout    time.Duration
}

// RemoteVerifier valida el token contra GET /auth/v1/user. Sirve cuando el
// proyecto firma con claves asimétricas y no hay secreto HS256 local.
type RemoteVerifier struct {
	http *httpclient.Client
}

func NewRemoteVerifier(cfg RemoteConfig) (*RemoteVerifier, error) {
	if strings.TrimSpace(cfg.ProjectURL) == "" || strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNotConfigured
	}
	c, err := httpclient.NewWithBaseURL(cfg.ProjectURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	c.Headers = map[string]string{"apikey": strings.TrimSpace(cfg.APIKey)}
	return &RemoteVerifier{http: c}, nil
}

type userResponse struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	Role         string         `json:"role"`
	AppMetadata  map[string]any `json:"app_metadata"`
	UserMetadata map[string]any `json:"user_metadata"`
}

func (v *RemoteVerifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.http == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var u userResponse
	err := v.http.DoJSON(ctx, http.MethodGet, "/auth/v1/user",
		map[string]string{"Authorization": "Bearer " + token}, nil, &u)
	if err != nil {
		switch httpclient.StatusCode(err) {
		case http.StatusUnauthorized, http.StatusForbidden:
			return auth.Claims{}, ErrUnauthorized
		}
		return auth.Claims{}, fmt.Errorf("supabase user lookup: %w", err)
	}

	u.ID = strings.TrimSpace(u.ID)
	if u.ID == "" {
		return auth.Claims{}, errors.New("supabase response missing id")
	}

	return auth.Claims{
		UserID: u.ID,
		Email:  strings.TrimSpace(u.Email),
		Role:   roleFrom(u.AppMetadata, u.UserMetadata, u.Role),
	}, nil
}
