package paymentrepo

import (
	"context"
	"errors"

	"github.com/asemenkov/digimart/internal/domain"
	"github.com/asemenkov/digimart/internal/pg"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrDuplicateReference marks a gateway reference that was already credited.
var ErrDuplicateReference = errors.New("payment reference already processed")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (user_id, reference, amount, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, payment.UserID, payment.Reference, payment.Amount, payment.CreatedAt).
		Scan(&payment.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateReference
		}
		zap.L().Error("can't save payment", zap.Error(err))
		return err
	}
	return nil
}
