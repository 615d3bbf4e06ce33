package servicerepo

import (
	"context"
	"errors"

	"github.com/asemenkov/digimart/internal/domain"
	"github.com/asemenkov/digimart/internal/pg"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

var ErrServiceExists = errors.New("service already exists")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByKey(ctx context.Context, key string) (*domain.AllowedService, error) {
	query := `
		SELECT id, key, name
		FROM allowed_services
		WHERE key = $1
	`
	var s domain.AllowedService
	err := r.db.QueryRow(ctx, query, key).Scan(&s.ID, &s.Key, &s.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find allowed service", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.AllowedService, error) {
	query := `
		SELECT id, key, name
		FROM allowed_services
		ORDER BY key
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list allowed services", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var services []domain.AllowedService
	for rows.Next() {
		var s domain.AllowedService
		if err := rows.Scan(&s.ID, &s.Key, &s.Name); err != nil {
			zap.L().Error("can't scan allowed service row", zap.Error(err))
			return nil, err
		}
		services = append(services, s)
	}
	return services, nil
}

func (r *Repository) Add(ctx context.Context, service *domain.AllowedService) error {
	query := `
		INSERT INTO allowed_services (key, name)
		VALUES ($1, $2)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, service.Key, service.Name).Scan(&service.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrServiceExists
		}
		zap.L().Error("can't add allowed service", zap.Error(err))
		return err
	}
	return nil
}
