package smsorderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/asemenkov/digimart/internal/domain"
	"github.com/asemenkov/digimart/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Save(ctx context.Context, order *domain.SMSOrder) error {
	query := `
		INSERT INTO sms_orders (user_id, activation_id, phone, service, country, operator, price, status, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		order.UserID, order.ActivationID, order.Phone, order.Service, order.Country, order.Operator,
		order.Price, order.Status, order.ExpiresAt, order.CreatedAt).
		Scan(&order.ID)
	if err != nil {
		zap.L().Error("can't save sms order", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.SMSOrder, error) {
	query := `
		SELECT id, user_id, activation_id, phone, service, country, operator, price, status, sms_code, expires_at, created_at
		FROM sms_orders
		WHERE id = $1
	`
	var o domain.SMSOrder
	err := r.db.QueryRow(ctx, query, id).
		Scan(&o.ID, &o.UserID, &o.ActivationID, &o.Phone, &o.Service, &o.Country, &o.Operator,
			&o.Price, &o.Status, &o.SMSCode, &o.ExpiresAt, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find sms order", zap.Error(err))
		return nil, err
	}
	return &o, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int64) ([]domain.SMSOrder, error) {
	query := `
		SELECT id, user_id, activation_id, phone, service, country, operator, price, status, sms_code, expires_at, created_at
		FROM sms_orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get sms orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.SMSOrder
	for rows.Next() {
		var o domain.SMSOrder
		err := rows.Scan(&o.ID, &o.UserID, &o.ActivationID, &o.Phone, &o.Service, &o.Country, &o.Operator,
			&o.Price, &o.Status, &o.SMSCode, &o.ExpiresAt, &o.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan sms order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// TransitionStatus moves an order between lifecycle states with a
// compare-and-set on the current status. The returned bool is false when the
// order was not in the expected state, which is the double-refund guard.
func (r *Repository) TransitionStatus(ctx context.Context, id int64, from, to string) (bool, error) {
	query := `
		UPDATE sms_orders
		SET status = $3
		WHERE id = $1 AND status = $2
	`
	tag, err := r.db.Exec(ctx, query, id, from, to)
	if err != nil {
		zap.L().Error("can't transition sms order", zap.Int64("orderID", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// SetCode completes a waiting order with the delivered code, in one CAS.
func (r *Repository) SetCode(ctx context.Context, id int64, code string) (bool, error) {
	query := `
		UPDATE sms_orders
		SET status = $3, sms_code = $2
		WHERE id = $1 AND status = $4
	`
	tag, err := r.db.Exec(ctx, query, id, code, domain.OrderStatusCompleted, domain.OrderStatusWaiting)
	if err != nil {
		zap.L().Error("can't set sms code", zap.Int64("orderID", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// FindExpired returns WAITING orders whose expiry has passed; the reconciler
// sweeps these.
func (r *Repository) FindExpired(ctx context.Context, now time.Time, limit uint32) ([]domain.SMSOrder, error) {
	query := `
		SELECT id, user_id, activation_id, phone, service, country, operator, price, status, sms_code, expires_at, created_at
		FROM sms_orders
		WHERE status = $1 AND expires_at <= $2
		ORDER BY expires_at ASC
		LIMIT $3
	`
	rows, err := r.db.Query(ctx, query, domain.OrderStatusWaiting, now, int(limit))
	if err != nil {
		zap.L().Error("can't get expired sms orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.SMSOrder
	for rows.Next() {
		var o domain.SMSOrder
		err := rows.Scan(&o.ID, &o.UserID, &o.ActivationID, &o.Phone, &o.Service, &o.Country, &o.Operator,
			&o.Price, &o.Status, &o.SMSCode, &o.ExpiresAt, &o.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan expired sms order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
