package purchaseservice

import (
	"context"
	"strings"
	"time"

	"github.com/asemenkov/digimart/internal/apperr"
	"github.com/asemenkov/digimart/internal/domain"
	"github.com/asemenkov/digimart/internal/pg"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	AdjustBalance(ctx context.Context, userID int64, delta float64) (bool, error)
}

type ProductRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	DecrementStock(ctx context.Context, id int64, newPayload string) (bool, error)
}

type OrderRepo interface {
	Save(ctx context.Context, order *domain.Order) error
	FindByUserID(ctx context.Context, userID int64) ([]domain.Order, error)
}

type Service struct {
	userRepo    UserRepo
	productRepo ProductRepo
	orderRepo   OrderRepo
	txManager   pg.TXManager
}

func New(userRepo UserRepo, productRepo ProductRepo, orderRepo OrderRepo, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		txManager:   txManager,
	}
}

// Purchase settles a catalog purchase: it validates stock and balance, then
// debits the wallet, consumes one inventory unit and records the order inside
// a single transaction. Either the whole sequence commits or none of it does.
func (s *Service) Purchase(ctx context.Context, userID, productID int64) (*domain.Order, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, apperr.Internal("can't load product", err)
	}
	if product == nil {
		return nil, apperr.NotFound("product %d not found", productID)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("can't load user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user %d not found", userID)
	}

	if product.Stock <= 0 {
		return nil, apperr.OutOfStock("product %q is out of stock", product.Name)
	}
	if user.Balance < product.Price {
		return nil, apperr.InsufficientBalance(product.Price, user.Balance)
	}

	delivered, remaining, ok := nextDeliverable(product)
	if !ok {
		// Stock said there was a unit but the payload has none left.
		zap.L().Error("product stock out of sync with payload",
			zap.Int64("productID", product.ID), zap.Int("stock", product.Stock))
		return nil, apperr.OutOfStock("product %q is out of stock", product.Name)
	}

	order := &domain.Order{
		UserID:    userID,
		Type:      domain.OrderTypeProduct,
		Name:      product.Name,
		Price:     product.Price,
		Details:   delivered,
		Status:    domain.OrderStatusCompleted,
		CreatedAt: time.Now(),
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		debited, err := s.userRepo.AdjustBalance(ctx, userID, -product.Price)
		if err != nil {
			return apperr.Internal("can't debit balance", err)
		}
		if !debited {
			// Balance changed since the precheck; nothing has been
			// committed yet, abort cleanly.
			return apperr.InsufficientBalance(product.Price, user.Balance)
		}

		decremented, err := s.productRepo.DecrementStock(ctx, productID, remaining)
		if err != nil {
			zap.L().Error("stock decrement failed after debit",
				zap.Int64("userID", userID), zap.Int64("productID", productID),
				zap.Float64("amount", product.Price), zap.Error(err))
			return apperr.Internal("can't consume stock", err)
		}
		if !decremented {
			return apperr.OutOfStock("product %q is out of stock", product.Name)
		}

		if err := s.orderRepo.Save(ctx, order); err != nil {
			zap.L().Error("order insert failed after debit",
				zap.Int64("userID", userID), zap.Int64("productID", productID),
				zap.Float64("amount", product.Price), zap.Error(err))
			return apperr.Internal("can't record order", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("purchase settled",
		zap.Int64("userID", userID), zap.Int64("productID", productID), zap.Float64("price", product.Price))
	return order, nil
}

func (s *Service) GetOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	orders, err := s.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, apperr.Internal("can't load orders", err)
	}
	return orders, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, apperr.Internal("can't load products", err)
	}
	return products, nil
}

// nextDeliverable picks the unit to deliver. Products with a link carry a
// static credential pair delivered as-is for every unit. Products without a
// link hold a newline-delimited list of single-use lines: the first non-empty
// line is delivered and the remainder becomes the new payload.
func nextDeliverable(p *domain.Product) (delivered, remaining string, ok bool) {
	if p.Link != "" {
		if p.Payload != "" {
			return "LOGIN:" + p.Payload + "\nLINK:" + p.Link, p.Payload, true
		}
		return "LINK:" + p.Link, p.Payload, true
	}

	lines := strings.Split(p.Payload, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		return strings.TrimSpace(line), strings.Join(lines[i+1:], "\n"), true
	}
	return "", "", false
}
