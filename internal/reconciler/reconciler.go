package reconciler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/asemenkov/digimart/internal/config"
	"github.com/asemenkov/digimart/internal/domain"
	"github.com/asemenkov/digimart/internal/pg"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type SMSOrderRepo interface {
	FindExpired(ctx context.Context, now time.Time, limit uint32) ([]domain.SMSOrder, error)
	TransitionStatus(ctx context.Context, id int64, from, to string) (bool, error)
}

type UserRepo interface {
	AdjustBalance(ctx context.Context, userID int64, delta float64) (bool, error)
}

var processingOrders sync.Map

var errUserGone = errors.New("refund matched no user row")

// Service sweeps SMS orders left WAITING past their expiry and refunds them.
// Expiry lives in the order row, so the sweep picks up where it left off
// after a restart; nothing depends on in-process timers.
type Service struct {
	orderRepo     SMSOrderRepo
	userRepo      UserRepo
	txManager     pg.TXManager
	limit         uint32
	workerPool    WorkerPoolI
	sweepInterval time.Duration
}

func New(cfg *config.Config, orderRepo SMSOrderRepo, userRepo UserRepo, txManager pg.TXManager) *Service {
	return &Service{
		orderRepo:     orderRepo,
		userRepo:      userRepo,
		txManager:     txManager,
		limit:         1000,
		workerPool:    NewWorkerPool(10),
		sweepInterval: cfg.SweepInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Expiry reconciler started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reconciler")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	orders, err := s.orderRepo.FindExpired(ctx, time.Now(), s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch expired orders", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, order := range orders {
		order := order

		if _, loaded := processingOrders.LoadOrStore(order.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingOrders.Delete(order.ID)
				return s.reconcile(ctx, order)
			})
			if err != nil {
				processingOrders.Delete(order.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error reconciling expired orders", zap.Error(err))
	}
}

// reconcile expires one order and refunds its price. The CAS on WAITING makes
// the job idempotent: the sweep can see the same order twice, or run against
// an order that completed or cancelled meanwhile, and nothing happens.
func (s *Service) reconcile(ctx context.Context, order domain.SMSOrder) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		expired, err := s.orderRepo.TransitionStatus(ctx, order.ID, domain.OrderStatusWaiting, domain.OrderStatusExpired)
		if err != nil {
			return err
		}
		if !expired {
			// Already terminal, nothing to refund.
			return nil
		}

		refunded, err := s.userRepo.AdjustBalance(ctx, order.UserID, order.Price)
		if err != nil || !refunded {
			// Roll back the transition so the next sweep retries the refund.
			zap.L().Error("Refund failed on expiry",
				zap.Int64("orderID", order.ID), zap.Int64("userID", order.UserID),
				zap.Float64("amount", order.Price), zap.Error(err))
			if err == nil {
				err = errUserGone
			}
			return err
		}

		zap.L().Info("Expired sms order refunded",
			zap.Int64("orderID", order.ID), zap.Int64("userID", order.UserID),
			zap.Float64("refund", order.Price))
		return nil
	})
}
