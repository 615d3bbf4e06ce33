package orderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/asemenkov/digimart/internal/domain"
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

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	order := &domain.Order{
		UserID:    1,
		Type:      domain.OrderTypeProduct,
		Name:      "VPN account 1 month",
		Price:     300,
		Details:   "a:1",
		Status:    domain.OrderStatusCompleted,
		CreatedAt: now,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Order saved",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders")).
					WithArgs(int64(1), domain.OrderTypeProduct, "VPN account 1 month", 300.0, "a:1", domain.OrderStatusCompleted, now).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(10)))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders")).
					WithArgs(int64(1), domain.OrderTypeProduct, "VPN account 1 month", 300.0, "a:1", domain.OrderStatusCompleted, now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Save(context.Background(), order)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(10), order.ID)
			}
		})
	}
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Orders returned newest first",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "type", "name", "price", "details", "status", "created_at"}).
					AddRow(int64(11), int64(1), domain.OrderTypeSMM, "Followers", 120.0, "PROVIDER_ORDER:987654", domain.OrderStatusPending, now).
					AddRow(int64(10), int64(1), domain.OrderTypeProduct, "VPN account 1 month", 300.0, "a:1", domain.OrderStatusCompleted, now.Add(-time.Hour))
				mock.ExpectQuery(regexp.QuoteMeta("FROM orders")).
					WithArgs(int64(1)).
					WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name: "No orders",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "type", "name", "price", "details", "status", "created_at"})
				mock.ExpectQuery(regexp.QuoteMeta("FROM orders")).
					WithArgs(int64(1)).
					WillReturnRows(rows)
			},
			count: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM orders")).
					WithArgs(int64(1)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			orders, err := repo.FindByUserID(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, orders, tt.count)
			}
		})
	}
}
