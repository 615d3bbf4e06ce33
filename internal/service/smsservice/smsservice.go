package smsservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/asemenkov/digimart/internal/apperr"
	"github.com/asemenkov/digimart/internal/domain"
	"github.com/asemenkov/digimart/internal/pg"
	"github.com/asemenkov/digimart/internal/pricing"
	"github.com/asemenkov/digimart/internal/provider/smsprov"
	servicerepo "github.com/asemenkov/digimart/internal/repo/service-repo"
	"github.com/asemenkov/digimart/pkg/validate"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	AdjustBalance(ctx context.Context, userID int64, delta float64) (bool, error)
}

type SMSOrderRepo interface {
	Save(ctx context.Context, order *domain.SMSOrder) error
	FindByID(ctx context.Context, id int64) (*domain.SMSOrder, error)
	FindByUserID(ctx context.Context, userID int64) ([]domain.SMSOrder, error)
	TransitionStatus(ctx context.Context, id int64, from, to string) (bool, error)
	SetCode(ctx context.Context, id int64, code string) (bool, error)
}

type AllowedRepo interface {
	FindByKey(ctx context.Context, key string) (*domain.AllowedService, error)
	List(ctx context.Context) ([]domain.AllowedService, error)
	Add(ctx context.Context, service *domain.AllowedService) error
}

type Provider interface {
	GetPrices(ctx context.Context, service string) (map[string]map[string]smsprov.Offer, error)
	Allocate(ctx context.Context, service, country, operator string) (*smsprov.Activation, error)
	CheckCode(ctx context.Context, activationID string) (string, error)
	Cancel(ctx context.Context, activationID string) error
}

// OrderResult is what the caller needs to start watching for a code.
type OrderResult struct {
	OrderID   int64
	Phone     string
	Price     float64
	ExpiresIn int64
}

type Service struct {
	userRepo    UserRepo
	orderRepo   SMSOrderRepo
	allowedRepo AllowedRepo
	provider    Provider
	converter   *pricing.Converter
	txManager   pg.TXManager
	orderTTL    time.Duration
}

func New(
	userRepo UserRepo,
	orderRepo SMSOrderRepo,
	allowedRepo AllowedRepo,
	provider Provider,
	converter *pricing.Converter,
	txManager pg.TXManager,
	orderTTL time.Duration,
) *Service {
	return &Service{
		userRepo:    userRepo,
		orderRepo:   orderRepo,
		allowedRepo: allowedRepo,
		provider:    provider,
		converter:   converter,
		txManager:   txManager,
		orderTTL:    orderTTL,
	}
}

// Order rents a verification number. The provider allocation is the point of
// no return: it happens only after every local check has passed, and once it
// succeeds the flow always proceeds to debit and record. A local failure
// after allocation is logged with full context for manual reconciliation.
func (s *Service) Order(ctx context.Context, userID int64, service, country, operator string) (*OrderResult, error) {
	service = strings.ToLower(strings.TrimSpace(service))
	if !validate.IsServiceKey(service) || country == "" || operator == "" {
		return nil, apperr.InvalidInput("service, country and operator are required")
	}

	allowed, err := s.allowedRepo.FindByKey(ctx, service)
	if err != nil {
		return nil, apperr.Internal("can't check allowed services", err)
	}
	if allowed == nil {
		return nil, apperr.NotFound("service %q is not offered", service)
	}

	prices, err := s.provider.GetPrices(ctx, service)
	if err != nil {
		return nil, apperr.Unavailable("can't get provider prices", err)
	}
	offer, ok := prices[country][operator]
	if !ok || offer.Count == 0 {
		return nil, apperr.Unavailable("no numbers available for "+service+"/"+country+"/"+operator, nil)
	}

	finalPrice := float64(s.converter.Charge(offer.Cost))

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("can't load user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user %d not found", userID)
	}
	if user.Balance < finalPrice {
		return nil, apperr.InsufficientBalance(finalPrice, user.Balance)
	}

	activation, err := s.provider.Allocate(ctx, service, country, operator)
	if err != nil {
		// No debit and no order on any allocation failure.
		return nil, apperr.Unavailable("can't allocate number", err)
	}

	now := time.Now()
	order := &domain.SMSOrder{
		UserID:       userID,
		ActivationID: activation.ID,
		Phone:        activation.Phone,
		Service:      service,
		Country:      country,
		Operator:     operator,
		Price:        finalPrice,
		Status:       domain.OrderStatusWaiting,
		ExpiresAt:    now.Add(s.orderTTL),
		CreatedAt:    now,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		debited, err := s.userRepo.AdjustBalance(ctx, userID, -finalPrice)
		if err != nil {
			return err
		}
		if !debited {
			return apperr.InsufficientBalance(finalPrice, user.Balance)
		}
		return s.orderRepo.Save(ctx, order)
	})
	if err != nil {
		// The provider number is already paid for upstream. Keep every
		// detail needed to reconcile it by hand.
		zap.L().Error("allocated number left without local settlement",
			zap.Int64("userID", userID),
			zap.String("activationID", activation.ID),
			zap.String("phone", activation.Phone),
			zap.Float64("amount", finalPrice),
			zap.Error(err))
		if kind := apperr.KindOf(err); kind != apperr.KindInternal {
			return nil, err
		}
		return nil, apperr.Internal("can't settle sms order", err)
	}

	zap.L().Info("sms order created",
		zap.Int64("orderID", order.ID), zap.Int64("userID", userID),
		zap.String("service", service), zap.Float64("price", finalPrice))

	return &OrderResult{
		OrderID:   order.ID,
		Phone:     activation.Phone,
		Price:     finalPrice,
		ExpiresIn: int64(time.Until(order.ExpiresAt).Seconds()),
	}, nil
}

// Check polls the provider for a delivered code. Safe to call repeatedly: a
// "still waiting" answer mutates nothing, and the WAITING -> COMPLETED
// transition happens at most once.
func (s *Service) Check(ctx context.Context, userID, orderID int64) (*domain.SMSOrder, error) {
	order, err := s.loadOwned(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != domain.OrderStatusWaiting {
		return order, nil
	}

	code, err := s.provider.CheckCode(ctx, order.ActivationID)
	if err != nil {
		return nil, apperr.Unavailable("can't check sms code", err)
	}
	if code == "" {
		return order, nil
	}

	completed, err := s.orderRepo.SetCode(ctx, orderID, code)
	if err != nil {
		return nil, apperr.Internal("can't persist sms code", err)
	}
	if !completed {
		// Lost the race against cancel or expiry; report the stored state.
		return s.loadOwned(ctx, userID, orderID)
	}

	order.Status = domain.OrderStatusCompleted
	order.SMSCode = &code
	zap.L().Info("sms code received", zap.Int64("orderID", orderID))
	return order, nil
}

// Cancel refunds a waiting order. The CAS transition plus the terminal-state
// check guarantee the refund is applied at most once.
func (s *Service) Cancel(ctx context.Context, userID, orderID int64) (*domain.SMSOrder, error) {
	order, err := s.loadOwned(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != domain.OrderStatusWaiting {
		return nil, apperr.InvalidState("order is already %s", order.Status)
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		cancelled, err := s.orderRepo.TransitionStatus(ctx, orderID, domain.OrderStatusWaiting, domain.OrderStatusCancelled)
		if err != nil {
			return apperr.Internal("can't cancel order", err)
		}
		if !cancelled {
			return apperr.InvalidState("order is no longer waiting")
		}
		refunded, err := s.userRepo.AdjustBalance(ctx, userID, order.Price)
		if err != nil || !refunded {
			zap.L().Error("refund failed on cancel",
				zap.Int64("orderID", orderID), zap.Int64("userID", userID),
				zap.Float64("amount", order.Price), zap.Error(err))
			return apperr.Internal("can't refund order", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.provider.Cancel(ctx, order.ActivationID); err != nil {
		// Refund already committed; upstream release is best effort.
		zap.L().Warn("provider cancel failed", zap.String("activationID", order.ActivationID), zap.Error(err))
	}

	zap.L().Info("sms order cancelled and refunded",
		zap.Int64("orderID", orderID), zap.Float64("refund", order.Price))

	order.Status = domain.OrderStatusCancelled
	return order, nil
}

func (s *Service) GetOrders(ctx context.Context, userID int64) ([]domain.SMSOrder, error) {
	orders, err := s.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("can't load sms orders", err)
	}
	return orders, nil
}

// Prices quotes current offers for a service with the local charge applied.
func (s *Service) Prices(ctx context.Context, service string) (map[string]map[string]int64, error) {
	service = strings.ToLower(strings.TrimSpace(service))
	if !validate.IsServiceKey(service) {
		return nil, apperr.InvalidInput("service is required")
	}

	allowed, err := s.allowedRepo.FindByKey(ctx, service)
	if err != nil {
		return nil, apperr.Internal("can't check allowed services", err)
	}
	if allowed == nil {
		return nil, apperr.NotFound("service %q is not offered", service)
	}

	prices, err := s.provider.GetPrices(ctx, service)
	if err != nil {
		return nil, apperr.Unavailable("can't get provider prices", err)
	}

	quoted := make(map[string]map[string]int64, len(prices))
	for country, operators := range prices {
		quoted[country] = make(map[string]int64, len(operators))
		for operator, offer := range operators {
			if offer.Count == 0 {
				continue
			}
			quoted[country][operator] = s.converter.Charge(offer.Cost)
		}
	}
	return quoted, nil
}

func (s *Service) AllowedServices(ctx context.Context) ([]domain.AllowedService, error) {
	services, err := s.allowedRepo.List(ctx)
	if err != nil {
		return nil, apperr.Internal("can't list allowed services", err)
	}
	return services, nil
}

func (s *Service) AddAllowedService(ctx context.Context, key, name string) (*domain.AllowedService, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if !validate.IsServiceKey(key) || name == "" {
		return nil, apperr.InvalidInput("key and name are required")
	}
	service := &domain.AllowedService{Key: key, Name: name}
	if err := s.allowedRepo.Add(ctx, service); err != nil {
		if errors.Is(err, servicerepo.ErrServiceExists) {
			return nil, apperr.InvalidState("service %q is already offered", key)
		}
		return nil, apperr.Internal("can't add allowed service", err)
	}
	return service, nil
}

func (s *Service) loadOwned(ctx context.Context, userID, orderID int64) (*domain.SMSOrder, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, apperr.Internal("can't load sms order", err)
	}
	if order == nil || order.UserID != userID {
		return nil, apperr.NotFound("order %d not found", orderID)
	}
	return order, nil
}
