package smmprov

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/asemenkov/digimart/internal/config"
	"github.com/asemenkov/digimart/pkg/clients"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Client, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	httpClient := clients.NewMockHTTPClientI(ctrl)
	cfg := &config.Config{SMMAddress: "http://smm.local", SMMAPIKey: "key456"}
	client := New(cfg, httpClient)
	defer ctrl.Finish()
	return client, httpClient
}

func TestServices(t *testing.T) {
	client, httpClient := NewMock(t)

	tests := []struct {
		name        string
		prepareMock func()
		expectErr   error
		expectCount int
	}{
		{
			name: "Catalog parsed",
			prepareMock: func() {
				httpClient.EXPECT().PostForm("http://smm.local/api/v2", gomock.Any()).DoAndReturn(
					func(reqURL string, form url.Values) (int, []byte, error) {
						assert.Equal(t, "key456", form.Get("key"))
						assert.Equal(t, "services", form.Get("action"))
						return http.StatusOK, []byte(`[{"service":"101","name":"Followers","category":"social","min":100,"max":10000,"rate":2.5}]`), nil
					})
			},
			expectCount: 1,
		},
		{
			name: "Non-success status",
			prepareMock: func() {
				httpClient.EXPECT().PostForm("http://smm.local/api/v2", gomock.Any()).
					Return(http.StatusBadGateway, nil, nil)
			},
			expectErr: ErrBadStatus,
		},
		{
			name: "Malformed body",
			prepareMock: func() {
				httpClient.EXPECT().PostForm("http://smm.local/api/v2", gomock.Any()).
					Return(http.StatusOK, []byte(`{"error":"bad key"}`), nil)
			},
			expectErr: ErrMalformedBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			services, err := client.Services(context.Background())
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
				assert.Len(t, services, tt.expectCount)
				assert.Equal(t, "Followers", services[0].Name)
			}
		})
	}
}

func TestSubmit(t *testing.T) {
	client, httpClient := NewMock(t)

	tests := []struct {
		name        string
		prepareMock func()
		expectID    string
		expectErr   error
	}{
		{
			name: "Order submitted, numeric id",
			prepareMock: func() {
				httpClient.EXPECT().PostForm("http://smm.local/api/v2", gomock.Any()).DoAndReturn(
					func(reqURL string, form url.Values) (int, []byte, error) {
						assert.Equal(t, "add", form.Get("action"))
						assert.Equal(t, "101", form.Get("service"))
						assert.Equal(t, "https://example.com/profile", form.Get("link"))
						assert.Equal(t, "1000", form.Get("quantity"))
						return http.StatusOK, []byte(`{"order":987654}`), nil
					})
			},
			expectID: "987654",
		},
		{
			name: "Provider error field",
			prepareMock: func() {
				httpClient.EXPECT().PostForm("http://smm.local/api/v2", gomock.Any()).
					Return(http.StatusOK, []byte(`{"error":"not enough funds"}`), nil)
			},
			expectErr: ErrBadStatus,
		},
		{
			name: "Missing order id",
			prepareMock: func() {
				httpClient.EXPECT().PostForm("http://smm.local/api/v2", gomock.Any()).
					Return(http.StatusOK, []byte(`{}`), nil)
			},
			expectErr: ErrNoOrderID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			id, err := client.Submit(context.Background(), "101", "https://example.com/profile", 1000)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectID, id)
			}
		})
	}
}
