package service

import (
	"testing"

	"github.com/asemenkov/digimart/internal/config"
	"github.com/asemenkov/digimart/internal/pg"
	"github.com/asemenkov/digimart/internal/repo"
	"github.com/asemenkov/digimart/pkg/clients"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pool, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer pool.Close()

	repos := repo.New(pool)
	txManager := pg.NewMockTXManager(ctrl)
	httpClient := clients.NewMockHTTPClientI(ctrl)

	cfg := &config.Config{
		ExchangeRate:  30,
		MarkupPercent: 20,
	}

	services := New(cfg, repos, txManager, httpClient)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.PurchaseService)
	assert.NotNil(t, services.SMSService)
	assert.NotNil(t, services.SMMService)
	assert.NotNil(t, services.PaymentService)
}
