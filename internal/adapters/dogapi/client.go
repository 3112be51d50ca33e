package dogapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"dog-knowledge-base/internal/platform/httpclient"
	"dog-knowledge-base/internal/ports/source"
)

var (
	ErrUpstream = errors.New("dogapi upstream error")
)

const (
	// Endpoint fijo y versionado. La lectura del catálogo no requiere API key.
	DefaultBaseURL = "https://api.thedogapi.com"

	breedsPath = "/v1/breeds"

	apiKeyHeader = "x-api-key"
)

// Config del cliente TheDogAPI.
// APIKey es opcional: sin key el endpoint igual responde (con límites más bajos).
type Config struct {
	BaseURL string
	APIKey  string

	// Timeout HTTP. Si <= 0, se usa httpclient.DefaultTimeout (10s).
	Timeout time.Duration

	// Opcional: Transport inyectable (p.ej. para tests).
	Transport http.RoundTripper
}

type Client struct {
	http   *httpclient.Client
	apiKey string
}

func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	var hc *httpclient.Client
	if cfg.Transport != nil {
		hc = httpclient.NewWithTransport(cfg.Timeout, cfg.Transport)
		hc.BaseURL = strings.TrimRight(baseURL, "/")
	} else {
		var err error
		hc, err = httpclient.NewWithBaseURL(baseURL, cfg.Timeout)
		if err != nil {
			return nil, err
		}
	}

	return &Client{
		http:   hc,
		apiKey: strings.TrimSpace(cfg.APIKey),
	}, nil
}

// FetchBreeds trae el catálogo completo de razas en un solo GET.
// Cualquier error (red, timeout, status no-2xx, JSON inválido) es terminal
// para este intento: nunca se devuelve un catálogo parcial.
func (c *Client) FetchBreeds(ctx context.Context) ([]source.RawBreed, error) {
	if c == nil || c.http == nil {
		return nil, fmt.Errorf("%w: client not configured", ErrUpstream)
	}

	var headers map[string]string
	if c.apiKey != "" {
		headers = map[string]string{apiKeyHeader: c.apiKey}
	}

	var out []source.RawBreed
	if err := c.http.GetJSON(ctx, breedsPath, headers, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return out, nil
}
