package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/asemenkov/digimart/internal/config"
	"github.com/asemenkov/digimart/pkg/clients"
)

var (
	ErrBadStatus     = errors.New("payment gateway returned non-success status")
	ErrMalformedBody = errors.New("payment gateway returned malformed body")
)

// Verification is the gateway's verdict on one transaction. Reference is the
// gateway-side unique id used for idempotent crediting.
type Verification struct {
	Status    string  `json:"status"`
	Amount    float64 `json:"amount"`
	Reference string  `json:"reference"`
}

func (v *Verification) Succeeded() bool {
	return v.Status == "success"
}

type Client struct {
	baseURL string
	client  clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.GatewayAddress, "/"),
		client:  client,
	}
}

func (c *Client) Verify(ctx context.Context, transactionID string) (*Verification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s/api/verify?transaction_id=%s", c.baseURL, url.QueryEscape(transactionID))
	status, body, _, err := c.client.Get(reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("verify transaction: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, status)
	}

	var v Verification
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, ErrMalformedBody
	}
	return &v, nil
}
