package smmprov

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/asemenkov/digimart/internal/config"
	"github.com/asemenkov/digimart/pkg/clients"
)

var (
	ErrBadStatus     = errors.New("smm provider returned non-success status")
	ErrMalformedBody = errors.New("smm provider returned malformed body")
	ErrNoOrderID     = errors.New("smm provider returned no order id")
)

// Service is one entry of the provider catalog. Rate is quoted per 1000
// units.
type Service struct {
	Service  string  `json:"service"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Min      int     `json:"min"`
	Max      int     `json:"max"`
	Rate     float64 `json:"rate"`
}

type Client struct {
	baseURL string
	apiKey  string
	client  clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.SMMAddress, "/"),
		apiKey:  cfg.SMMAPIKey,
		client:  client,
	}
}

func (c *Client) Services(ctx context.Context) ([]Service, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("key", c.apiKey)
	form.Set("action", "services")

	status, body, err := c.client.PostForm(c.baseURL+"/api/v2", form)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, status)
	}

	var services []Service
	if err := json.Unmarshal(body, &services); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedBody, snippet(body))
	}
	return services, nil
}

type submitResponse struct {
	Order json.Number `json:"order"`
	Error string      `json:"error"`
}

// Submit places an order upstream and returns the provider order id.
func (c *Client) Submit(ctx context.Context, service, link string, quantity int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("key", c.apiKey)
	form.Set("action", "add")
	form.Set("service", service)
	form.Set("link", link)
	form.Set("quantity", strconv.Itoa(quantity))

	status, body, err := c.client.PostForm(c.baseURL+"/api/v2", form)
	if err != nil {
		return "", fmt.Errorf("submit order: %w", err)
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrBadStatus, status)
	}

	var resp submitResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: %s", ErrMalformedBody, snippet(body))
	}
	if resp.Error != "" {
		return "", fmt.Errorf("%w: %s", ErrBadStatus, resp.Error)
	}
	if resp.Order.String() == "" {
		return "", ErrNoOrderID
	}
	return resp.Order.String(), nil
}

func snippet(body []byte) string {
	const max = 128
	s := string(body)
	if len(s) > max {
		return s[:max]
	}
	return s
}
