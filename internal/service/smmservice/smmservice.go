package smmservice

import (
	"context"
	"time"

	"github.com/asemenkov/digimart/internal/apperr"
	"github.com/asemenkov/digimart/internal/domain"
	"github.com/asemenkov/digimart/internal/pg"
	"github.com/asemenkov/digimart/internal/pricing"
	"github.com/asemenkov/digimart/internal/provider/smmprov"
	"github.com/asemenkov/digimart/pkg/validate"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	AdjustBalance(ctx context.Context, userID int64, delta float64) (bool, error)
}

type OrderRepo interface {
	Save(ctx context.Context, order *domain.Order) error
}

type Provider interface {
	Services(ctx context.Context) ([]smmprov.Service, error)
	Submit(ctx context.Context, service, link string, quantity int) (string, error)
}

type OrderResult struct {
	OrderID         int64
	ProviderOrderID string
	Price           float64
}

type Service struct {
	userRepo  UserRepo
	orderRepo OrderRepo
	provider  Provider
	converter *pricing.Converter
	txManager pg.TXManager
}

func New(userRepo UserRepo, orderRepo OrderRepo, provider Provider, converter *pricing.Converter, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:  userRepo,
		orderRepo: orderRepo,
		provider:  provider,
		converter: converter,
		txManager: txManager,
	}
}

func (s *Service) Services(ctx context.Context) ([]smmprov.Service, error) {
	services, err := s.provider.Services(ctx)
	if err != nil {
		return nil, apperr.Unavailable("can't load smm services", err)
	}
	return services, nil
}

// Order resells one provider service. The provider submission precedes the
// debit; a provider failure leaves the ledger untouched.
func (s *Service) Order(ctx context.Context, userID int64, service, link string, quantity int) (*OrderResult, error) {
	if service == "" || quantity <= 0 || !validate.IsLink(link) {
		return nil, apperr.InvalidInput("service, link and a positive quantity are required")
	}

	catalog, err := s.provider.Services(ctx)
	if err != nil {
		return nil, apperr.Unavailable("can't load smm services", err)
	}
	var entry *smmprov.Service
	for i := range catalog {
		if catalog[i].Service == service {
			entry = &catalog[i]
			break
		}
	}
	if entry == nil {
		return nil, apperr.NotFound("smm service %q not found", service)
	}
	if quantity < entry.Min || quantity > entry.Max {
		return nil, apperr.InvalidInput("quantity must be between %d and %d", entry.Min, entry.Max)
	}

	price := float64(s.converter.ChargePerThousand(entry.Rate, quantity))

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("can't load user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user %d not found", userID)
	}
	if user.Balance < price {
		return nil, apperr.InsufficientBalance(price, user.Balance)
	}

	providerOrderID, err := s.provider.Submit(ctx, service, link, quantity)
	if err != nil {
		return nil, apperr.Unavailable("can't submit smm order", err)
	}

	order := &domain.Order{
		UserID:    userID,
		Type:      domain.OrderTypeSMM,
		Name:      entry.Name,
		Price:     price,
		Details:   "PROVIDER_ORDER:" + providerOrderID,
		Status:    domain.OrderStatusPending,
		CreatedAt: time.Now(),
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		debited, err := s.userRepo.AdjustBalance(ctx, userID, -price)
		if err != nil {
			return err
		}
		if !debited {
			return apperr.InsufficientBalance(price, user.Balance)
		}
		return s.orderRepo.Save(ctx, order)
	})
	if err != nil {
		zap.L().Error("submitted smm order left without local settlement",
			zap.Int64("userID", userID),
			zap.String("providerOrderID", providerOrderID),
			zap.Float64("amount", price),
			zap.Error(err))
		if kind := apperr.KindOf(err); kind != apperr.KindInternal {
			return nil, err
		}
		return nil, apperr.Internal("can't settle smm order", err)
	}

	zap.L().Info("smm order settled",
		zap.Int64("orderID", order.ID), zap.Int64("userID", userID),
		zap.String("providerOrderID", providerOrderID), zap.Float64("price", price))

	return &OrderResult{
		OrderID:         order.ID,
		ProviderOrderID: providerOrderID,
		Price:           price,
	}, nil
}
