package productrepo

import (
	"context"
	"errors"

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

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT id, category, name, price, stock, payload, link, description
		FROM products
		WHERE id = $1
	`
	var p domain.Product
	err := r.db.QueryRow(ctx, query, id).
		Scan(&p.ID, &p.Category, &p.Name, &p.Price, &p.Stock, &p.Payload, &p.Link, &p.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find product", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, category, name, price, stock, payload, link, description
		FROM products
		ORDER BY category, name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		err := rows.Scan(&p.ID, &p.Category, &p.Name, &p.Price, &p.Stock, &p.Payload, &p.Link, &p.Description)
		if err != nil {
			zap.L().Error("can't scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// DecrementStock consumes one unit: decrements stock and persists the payload
// remaining after the delivered line was popped. The stock > 0 guard makes
// concurrent purchases of the last unit resolve to a single winner; the
// returned bool is false for the loser.
func (r *Repository) DecrementStock(ctx context.Context, id int64, newPayload string) (bool, error) {
	query := `
		UPDATE products
		SET stock = stock - 1, payload = $2
		WHERE id = $1 AND stock > 0
	`
	tag, err := r.db.Exec(ctx, query, id, newPayload)
	if err != nil {
		zap.L().Error("can't decrement stock", zap.Int64("productID", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
