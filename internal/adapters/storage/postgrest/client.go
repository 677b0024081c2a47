// Package postgrest guarda los dominios en un backend PostgREST (p.ej. Supabase)
// usando el esquema de schema.sql del adaptador postgres.
package postgrest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hospital-management/internal/platform/httpclient"
)

var ErrNotConfigured = errors.New("postgrest not configured")

type Config struct {
	BaseURL string // p.ej. https://xyz.supabase.co
	APIKey  string
	Timeout time.Duration
}

// Client habla con /rest/v1/<tabla>.
type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" || strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNotConfigured
	}

	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), cfg.Timeout)
	if err != nil {
		return nil, err
	}
	hc.Headers = map[string]string{
		"apikey":        cfg.APIKey,
		"Authorization": "Bearer " + cfg.APIKey,
	}
	return &Client{http: hc}, nil
}

func (c *Client) path(table string, q url.Values) string {
	p := "/rest/v1/" + table
	if len(q) > 0 {
		p += "?" + q.Encode()
	}
	return p
}

func (c *Client) insert(ctx context.Context, table string, row any) error {
	err := c.http.DoJSON(ctx, http.MethodPost, c.path(table, nil),
		map[string]string{"Prefer": "return=minimal"}, row, nil)
	if err != nil {
		return fmt.Errorf("postgrest insert %s: %w", table, err)
	}
	return nil
}

func (c *Client) selectRows(ctx context.Context, table string, q url.Values, out any) error {
	if q == nil {
		q = url.Values{}
	}
	q.Set("select", "*")
	if err := c.http.DoJSON(ctx, http.MethodGet, c.path(table, q), nil, nil, out); err != nil {
		return fmt.Errorf("postgrest select %s: %w", table, err)
	}
	return nil
}

// update aplica patch a las filas del filtro y decodifica las filas resultantes en out.
func (c *Client) update(ctx context.Context, table string, q url.Values, patch any, out any) error {
	err := c.http.DoJSON(ctx, http.MethodPatch, c.path(table, q),
		map[string]string{"Prefer": "return=representation"}, patch, out)
	if err != nil {
		return fmt.Errorf("postgrest update %s: %w", table, err)
	}
	return nil
}

func eq(v string) string { return "eq." + v }

func byID(id string) url.Values {
	return url.Values{"id": {eq(id)}}
}
