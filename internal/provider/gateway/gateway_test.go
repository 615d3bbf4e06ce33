package gateway

import (
	"context"
	"net/http"
	"testing"

	"github.com/asemenkov/digimart/internal/config"
	"github.com/asemenkov/digimart/pkg/clients"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Client, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	httpClient := clients.NewMockHTTPClientI(ctrl)
	cfg := &config.Config{GatewayAddress: "http://gateway.local"}
	client := New(cfg, httpClient)
	defer ctrl.Finish()
	return client, httpClient
}

func TestVerify(t *testing.T) {
	client, httpClient := NewMock(t)

	tests := []struct {
		name        string
		prepareMock func()
		expect      *Verification
		expectErr   error
	}{
		{
			name: "Confirmed transaction",
			prepareMock: func() {
				httpClient.EXPECT().
					Get("http://gateway.local/api/verify?transaction_id=tx-1", nil).
					Return(http.StatusOK, []byte(`{"status":"success","amount":500,"reference":"ref-0001"}`), nil, nil)
			},
			expect: &Verification{Status: "success", Amount: 500, Reference: "ref-0001"},
		},
		{
			name: "Pending transaction",
			prepareMock: func() {
				httpClient.EXPECT().
					Get("http://gateway.local/api/verify?transaction_id=tx-1", nil).
					Return(http.StatusOK, []byte(`{"status":"pending","amount":500,"reference":"ref-0002"}`), nil, nil)
			},
			expect: &Verification{Status: "pending", Amount: 500, Reference: "ref-0002"},
		},
		{
			name: "Non-success status",
			prepareMock: func() {
				httpClient.EXPECT().
					Get("http://gateway.local/api/verify?transaction_id=tx-1", nil).
					Return(http.StatusServiceUnavailable, nil, nil, nil)
			},
			expectErr: ErrBadStatus,
		},
		{
			name: "Malformed body",
			prepareMock: func() {
				httpClient.EXPECT().
					Get("http://gateway.local/api/verify?transaction_id=tx-1", nil).
					Return(http.StatusOK, []byte(`<html>maintenance</html>`), nil, nil)
			},
			expectErr: ErrMalformedBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			v, err := client.Verify(context.Background(), "tx-1")
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expect, v)
			}
		})
	}
}

func TestVerificationSucceeded(t *testing.T) {
	assert.True(t, (&Verification{Status: "success"}).Succeeded())
	assert.False(t, (&Verification{Status: "pending"}).Succeeded())
	assert.False(t, (&Verification{Status: "failed"}).Succeeded())
}

func TestVerifyEscapesTransactionID(t *testing.T) {
	client, httpClient := NewMock(t)

	httpClient.EXPECT().
		Get("http://gateway.local/api/verify?transaction_id=tx+1%2F2", nil).
		Return(http.StatusOK, []byte(`{"status":"success","amount":1,"reference":"ref-0003"}`), nil, nil)

	v, err := client.Verify(context.Background(), "tx 1/2")
	assert.NoError(t, err)
	assert.Equal(t, "ref-0003", v.Reference)
}
