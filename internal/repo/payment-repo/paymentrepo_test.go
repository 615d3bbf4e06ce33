package paymentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/asemenkov/digimart/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	payment := func() *domain.Payment {
		return &domain.Payment{UserID: 1, Reference: "ref-0001", Amount: 500, CreatedAt: now}
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		dbErr     bool
	}{
		{
			name: "Payment recorded",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments")).
					WithArgs(int64(1), "ref-0001", 500.0, now).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))
			},
		},
		{
			name: "Replayed reference",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments")).
					WithArgs(int64(1), "ref-0001", 500.0, now).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
			},
			expectErr: ErrDuplicateReference,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments")).
					WithArgs(int64(1), "ref-0001", 500.0, now).
					WillReturnError(errors.New("database error"))
			},
			dbErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			p := payment()
			err := repo.Create(context.Background(), p)
			switch {
			case tt.expectErr != nil:
				assert.ErrorIs(t, err, tt.expectErr)
			case tt.dbErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, int64(3), p.ID)
			}
		})
	}
}
