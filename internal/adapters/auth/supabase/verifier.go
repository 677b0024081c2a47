// Package supabase verifica los access tokens (JWT HS256) que emite Supabase Auth.
package supabase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hospital-management/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNotConfigured = errors.New("supabase verifier not configured")
	ErrTokenEmpty    = errors.New("token is empty")
)

// tokenClaims: el rol del tablero vive en app_metadata (lo asigna el admin)
// o en user_metadata (registro). El claim "role" de Supabase suele ser
// "authenticated" y solo se usa si es un rol conocido.
type tokenClaims struct {
	Email        string         `json:"email"`
	Role         string         `json:"role"`
	AppMetadata  map[string]any `json:"app_metadata"`
	UserMetadata map[string]any `json:"user_metadata"`
	jwt.RegisteredClaims
}

// Verifier implementa auth.AuthVerifier.
type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

func NewVerifier(secret string) (*Verifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrNotConfigured
	}
	return &Verifier{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var tc tokenClaims
	if _, err := v.parser.ParseWithClaims(token, &tc, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}); err != nil {
		return auth.Claims{}, fmt.Errorf("supabase verify failed: %w", err)
	}

	userID := strings.TrimSpace(tc.Subject)
	if userID == "" {
		return auth.Claims{}, errors.New("supabase claims missing sub")
	}

	return auth.Claims{
		UserID: userID,
		Email:  strings.TrimSpace(tc.Email),
		Role:   tc.role(),
	}, nil
}

func (tc tokenClaims) role() auth.Role {
	return roleFrom(tc.AppMetadata, tc.UserMetadata, tc.Role)
}

func roleFrom(appMeta, userMeta map[string]any, role string) auth.Role {
	for _, raw := range []any{appMeta["role"], userMeta["role"], role} {
		s, _ := raw.(string)
		if r, ok := auth.ParseRole(strings.ToLower(strings.TrimSpace(s))); ok {
			return r
		}
	}
	return ""
}
