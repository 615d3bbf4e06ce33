package smsprov

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/asemenkov/digimart/internal/config"
	"github.com/asemenkov/digimart/pkg/clients"
)

// Each failure mode of the allocation call gets its own error so a bad
// provider response is diagnosable from logs alone.
var (
	ErrBadStatus            = errors.New("sms provider returned non-success status")
	ErrEmptyBody            = errors.New("sms provider returned empty body")
	ErrMalformedBody        = errors.New("sms provider returned malformed body")
	ErrIncompleteActivation = errors.New("sms provider returned activation without phone or id")
)

// Offer is the provider's quote for one (country, operator) pair. Cost is in
// the provider's native currency unit.
type Offer struct {
	Cost  float64 `json:"cost"`
	Count int     `json:"count"`
}

// Activation is an allocated number. ID is opaque.
type Activation struct {
	ID    string `json:"id"`
	Phone string `json:"phone"`
}

type Client struct {
	baseURL string
	apiKey  string
	client  clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.SMSAddress, "/"),
		apiKey:  cfg.SMSAPIKey,
		client:  client,
	}
}

func (c *Client) headers() http.Header {
	h := http.Header{}
	if c.apiKey != "" {
		h.Set("Authorization", "Bearer "+c.apiKey)
	}
	return h
}

// GetPrices returns current offers for a service keyed by country, then
// operator.
func (c *Client) GetPrices(ctx context.Context, service string) (map[string]map[string]Offer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s/api/prices?service=%s", c.baseURL, url.QueryEscape(service))
	status, body, _, err := c.client.Get(reqURL, c.headers())
	if err != nil {
		return nil, fmt.Errorf("get prices: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, status)
	}

	var prices map[string]map[string]Offer
	if err := json.Unmarshal(body, &prices); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedBody, snippet(body))
	}
	return prices, nil
}

// Allocate reserves a phone number. Once it returns a valid phone+id pair the
// provider resource is consumed; callers must record it even if their own
// follow-up fails.
func (c *Client) Allocate(ctx context.Context, service, country, operator string) (*Activation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s/api/allocate?service=%s&country=%s&operator=%s",
		c.baseURL, url.QueryEscape(service), url.QueryEscape(country), url.QueryEscape(operator))
	status, body, _, err := c.client.Get(reqURL, c.headers())
	if err != nil {
		return nil, fmt.Errorf("allocate number: %w", err)
	}
	if status != http.StatusOK {
		zap.L().Error("sms provider allocation failed", zap.Int("status", status), zap.String("body", snippet(body)))
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, status)
	}
	if len(body) == 0 {
		return nil, ErrEmptyBody
	}
	if strings.HasPrefix(strings.TrimSpace(string(body)), "<") {
		// HTML instead of JSON, usually an upstream error page.
		return nil, fmt.Errorf("%w: html response", ErrMalformedBody)
	}

	var act Activation
	if err := json.Unmarshal(body, &act); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedBody, snippet(body))
	}
	if act.ID == "" || act.Phone == "" {
		return nil, ErrIncompleteActivation
	}
	return &act, nil
}

type codeResponse struct {
	SMS []struct {
		Code string `json:"code"`
	} `json:"sms"`
}

// CheckCode polls for a delivered code. Empty string means still waiting.
func (c *Client) CheckCode(ctx context.Context, activationID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	reqURL := fmt.Sprintf("%s/api/code?id=%s", c.baseURL, url.QueryEscape(activationID))
	status, body, _, err := c.client.Get(reqURL, c.headers())
	if err != nil {
		return "", fmt.Errorf("check code: %w", err)
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrBadStatus, status)
	}

	var resp codeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: %s", ErrMalformedBody, snippet(body))
	}
	if len(resp.SMS) == 0 {
		return "", nil
	}
	return resp.SMS[0].Code, nil
}

// Cancel releases an activation upstream. Best effort; callers only log
// failures.
func (c *Client) Cancel(ctx context.Context, activationID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	reqURL := fmt.Sprintf("%s/api/cancel?id=%s", c.baseURL, url.QueryEscape(activationID))
	status, _, _, err := c.client.Get(reqURL, c.headers())
	if err != nil {
		return fmt.Errorf("cancel activation: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("%w: %d", ErrBadStatus, status)
	}
	return nil
}

func snippet(body []byte) string {
	const max = 128
	s := string(body)
	if len(s) > max {
		return s[:max]
	}
	return s
}
