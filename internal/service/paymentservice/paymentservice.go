package paymentservice

import (
	"context"
	"errors"
	"time"

	"github.com/asemenkov/digimart/internal/apperr"
	"github.com/asemenkov/digimart/internal/domain"
	"github.com/asemenkov/digimart/internal/pg"
	"github.com/asemenkov/digimart/internal/provider/gateway"
	paymentrepo "github.com/asemenkov/digimart/internal/repo/payment-repo"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	AdjustBalance(ctx context.Context, userID int64, delta float64) (bool, error)
}

type PaymentRepo interface {
	Create(ctx context.Context, payment *domain.Payment) error
}

type Gateway interface {
	Verify(ctx context.Context, transactionID string) (*gateway.Verification, error)
}

type Service struct {
	userRepo    UserRepo
	paymentRepo PaymentRepo
	gateway     Gateway
	txManager   pg.TXManager
}

func New(userRepo UserRepo, paymentRepo PaymentRepo, gw Gateway, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
		gateway:     gw,
		txManager:   txManager,
	}
}

func (s *Service) GetBalance(ctx context.Context, userID int64) (float64, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return 0, apperr.Internal("can't load user", err)
	}
	if user == nil {
		return 0, apperr.NotFound("user %d not found", userID)
	}
	return user.Balance, nil
}

// VerifyAndCredit asks the gateway about a transaction and credits the wallet
// once per unique gateway reference. Repeating the call with the same
// transaction is rejected by the payments unique constraint, so no balance is
// ever credited twice.
func (s *Service) VerifyAndCredit(ctx context.Context, userID int64, transactionID string) (*domain.Payment, error) {
	if transactionID == "" {
		return nil, apperr.InvalidInput("transaction id is required")
	}

	verification, err := s.gateway.Verify(ctx, transactionID)
	if err != nil {
		return nil, apperr.Unavailable("can't verify payment", err)
	}
	if !verification.Succeeded() {
		return nil, apperr.InvalidInput("payment %s is not confirmed", transactionID)
	}
	if verification.Amount <= 0 || verification.Reference == "" {
		return nil, apperr.InvalidInput("payment %s has no amount or reference", transactionID)
	}

	payment := &domain.Payment{
		UserID:    userID,
		Reference: verification.Reference,
		Amount:    verification.Amount,
		CreatedAt: time.Now(),
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.paymentRepo.Create(ctx, payment); err != nil {
			return err
		}
		credited, err := s.userRepo.AdjustBalance(ctx, userID, verification.Amount)
		if err != nil || !credited {
			zap.L().Error("can't credit verified payment",
				zap.Int64("userID", userID),
				zap.String("reference", verification.Reference),
				zap.Float64("amount", verification.Amount),
				zap.Error(err))
			return apperr.Internal("can't credit balance", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, paymentrepo.ErrDuplicateReference) {
			return nil, apperr.InvalidState("payment %s already credited", verification.Reference)
		}
		if kind := apperr.KindOf(err); kind != apperr.KindInternal {
			return nil, err
		}
		return nil, apperr.Internal("can't record payment", err)
	}

	zap.L().Info("payment credited",
		zap.Int64("userID", userID),
		zap.String("reference", verification.Reference),
		zap.Float64("amount", verification.Amount))
	return payment, nil
}
