package service

import (
	"github.com/asemenkov/digimart/internal/config"
	"github.com/asemenkov/digimart/internal/pg"
	"github.com/asemenkov/digimart/internal/pricing"
	"github.com/asemenkov/digimart/internal/provider/gateway"
	"github.com/asemenkov/digimart/internal/provider/smmprov"
	"github.com/asemenkov/digimart/internal/provider/smsprov"
	"github.com/asemenkov/digimart/internal/repo"
	"github.com/asemenkov/digimart/internal/service/authservice"
	"github.com/asemenkov/digimart/internal/service/paymentservice"
	"github.com/asemenkov/digimart/internal/service/purchaseservice"
	"github.com/asemenkov/digimart/internal/service/smmservice"
	"github.com/asemenkov/digimart/internal/service/smsservice"
	"github.com/asemenkov/digimart/pkg/clients"

	pkgauth "github.com/asemenkov/digimart/pkg/auth"
)

type Services struct {
	AuthService     *authservice.Service
	PurchaseService *purchaseservice.Service
	SMSService      *smsservice.Service
	SMMService      *smmservice.Service
	PaymentService  *paymentservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, client clients.HTTPClientI) *Services {
	converter := pricing.New(cfg.ExchangeRate, cfg.MarkupPercent)

	smsClient := smsprov.New(cfg, client)
	smmClient := smmprov.New(cfg, client)
	gatewayClient := gateway.New(cfg, client)

	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	purchaseService := purchaseservice.New(repo.UserRepo, repo.ProductRepo, repo.OrderRepo, txManager)
	smsService := smsservice.New(repo.UserRepo, repo.SMSOrderRepo, repo.ServiceRepo, smsClient, converter, txManager, cfg.SMSOrderTTL)
	smmService := smmservice.New(repo.UserRepo, repo.OrderRepo, smmClient, converter, txManager)
	paymentService := paymentservice.New(repo.UserRepo, repo.PaymentRepo, gatewayClient, txManager)

	return &Services{
		AuthService:     authService,
		PurchaseService: purchaseService,
		SMSService:      smsService,
		SMMService:      smmService,
		PaymentService:  paymentService,
	}
}
