package smsprov

import (
	"context"
	"errors"
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
	cfg := &config.Config{SMSAddress: "http://sms.local", SMSAPIKey: "key123"}
	client := New(cfg, httpClient)
	defer ctrl.Finish()
	return client, httpClient
}

func TestGetPrices(t *testing.T) {
	client, httpClient := NewMock(t)

	tests := []struct {
		name        string
		prepareMock func()
		expectErr   error
		expectCost  float64
	}{
		{
			name: "Prices parsed",
			prepareMock: func() {
				httpClient.EXPECT().Get("http://sms.local/api/prices?service=tg", gomock.Any()).
					Return(http.StatusOK, []byte(`{"0":{"any":{"cost":2.5,"count":12}}}`), nil, nil)
			},
			expectCost: 2.5,
		},
		{
			name: "Non-success status",
			prepareMock: func() {
				httpClient.EXPECT().Get("http://sms.local/api/prices?service=tg", gomock.Any()).
					Return(http.StatusInternalServerError, nil, nil, nil)
			},
			expectErr: ErrBadStatus,
		},
		{
			name: "Malformed body",
			prepareMock: func() {
				httpClient.EXPECT().Get("http://sms.local/api/prices?service=tg", gomock.Any()).
					Return(http.StatusOK, []byte(`not json`), nil, nil)
			},
			expectErr: ErrMalformedBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			prices, err := client.GetPrices(context.Background(), "tg")
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectCost, prices["0"]["any"].Cost)
			}
		})
	}
}

func TestAllocate(t *testing.T) {
	client, httpClient := NewMock(t)

	reqURL := "http://sms.local/api/allocate?service=tg&country=0&operator=any"

	tests := []struct {
		name        string
		prepareMock func()
		expectErr   error
		expectPhone string
	}{
		{
			name: "Number allocated",
			prepareMock: func() {
				httpClient.EXPECT().Get(reqURL, gomock.Any()).
					Return(http.StatusOK, []byte(`{"id":"act-1","phone":"+79001234567"}`), nil, nil)
			},
			expectPhone: "+79001234567",
		},
		{
			name: "Empty body",
			prepareMock: func() {
				httpClient.EXPECT().Get(reqURL, gomock.Any()).
					Return(http.StatusOK, []byte(``), nil, nil)
			},
			expectErr: ErrEmptyBody,
		},
		{
			name: "HTML error page",
			prepareMock: func() {
				httpClient.EXPECT().Get(reqURL, gomock.Any()).
					Return(http.StatusOK, []byte(`<html><body>502</body></html>`), nil, nil)
			},
			expectErr: ErrMalformedBody,
		},
		{
			name: "Activation missing the phone",
			prepareMock: func() {
				httpClient.EXPECT().Get(reqURL, gomock.Any()).
					Return(http.StatusOK, []byte(`{"id":"act-1"}`), nil, nil)
			},
			expectErr: ErrIncompleteActivation,
		},
		{
			name: "Non-success status",
			prepareMock: func() {
				httpClient.EXPECT().Get(reqURL, gomock.Any()).
					Return(http.StatusServiceUnavailable, []byte(`NO_NUMBERS`), nil, nil)
			},
			expectErr: ErrBadStatus,
		},
		{
			name: "Transport error",
			prepareMock: func() {
				httpClient.EXPECT().Get(reqURL, gomock.Any()).
					Return(0, nil, nil, errors.New("connection refused"))
			},
			expectErr: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			act, err := client.Allocate(context.Background(), "tg", "0", "any")
			if tt.expectErr != nil {
				assert.Error(t, err)
				assert.Nil(t, act)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectPhone, act.Phone)
				assert.Equal(t, "act-1", act.ID)
			}
		})
	}
}

func TestCheckCode(t *testing.T) {
	client, httpClient := NewMock(t)

	reqURL := "http://sms.local/api/code?id=act-1"

	tests := []struct {
		name        string
		prepareMock func()
		expectCode  string
		expectErr   bool
	}{
		{
			name: "Code delivered",
			prepareMock: func() {
				httpClient.EXPECT().Get(reqURL, gomock.Any()).
					Return(http.StatusOK, []byte(`{"sms":[{"code":"1234"}]}`), nil, nil)
			},
			expectCode: "1234",
		},
		{
			name: "Still waiting",
			prepareMock: func() {
				httpClient.EXPECT().Get(reqURL, gomock.Any()).
					Return(http.StatusOK, []byte(`{"sms":[]}`), nil, nil)
			},
			expectCode: "",
		},
		{
			name: "Malformed body",
			prepareMock: func() {
				httpClient.EXPECT().Get(reqURL, gomock.Any()).
					Return(http.StatusOK, []byte(`<html>`), nil, nil)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			code, err := client.CheckCode(context.Background(), "act-1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectCode, code)
			}
		})
	}
}

func TestCancel(t *testing.T) {
	client, httpClient := NewMock(t)

	reqURL := "http://sms.local/api/cancel?id=act-1"

	httpClient.EXPECT().Get(reqURL, gomock.Any()).Return(http.StatusOK, nil, nil, nil)
	assert.NoError(t, client.Cancel(context.Background(), "act-1"))

	httpClient.EXPECT().Get(reqURL, gomock.Any()).Return(http.StatusBadRequest, nil, nil, nil)
	assert.ErrorIs(t, client.Cancel(context.Background(), "act-1"), ErrBadStatus)
}

func TestAuthorizationHeader(t *testing.T) {
	client, httpClient := NewMock(t)

	httpClient.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(
		func(url string, headers http.Header) (int, []byte, http.Header, error) {
			assert.Equal(t, "Bearer key123", headers.Get("Authorization"))
			return http.StatusOK, []byte(`{}`), nil, nil
		})

	_, err := client.GetPrices(context.Background(), "tg")
	assert.NoError(t, err)
}
