package smsorderrepo

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

	order := &domain.SMSOrder{
		UserID:       1,
		ActivationID: "act-1",
		Phone:        "+79001234567",
		Service:      "tg",
		Country:      "0",
		Operator:     "any",
		Price:        90,
		Status:       domain.OrderStatusWaiting,
		ExpiresAt:    now.Add(25 * time.Minute),
		CreatedAt:    now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO sms_orders")).
		WithArgs(int64(1), "act-1", "+79001234567", "tg", "0", "any", 90.0, domain.OrderStatusWaiting, order.ExpiresAt, now).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))

	err := repo.Save(context.Background(), order)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), order.ID)
}

func TestRepository_TransitionStatus(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name       string
		mockSetup  func()
		transition bool
		expectErr  bool
	}{
		{
			name: "Waiting order moves to cancelled",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE sms_orders")).
					WithArgs(int64(5), domain.OrderStatusWaiting, domain.OrderStatusCancelled).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			transition: true,
		},
		{
			name: "Order already terminal",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE sms_orders")).
					WithArgs(int64(5), domain.OrderStatusWaiting, domain.OrderStatusCancelled).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			transition: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE sms_orders")).
					WithArgs(int64(5), domain.OrderStatusWaiting, domain.OrderStatusCancelled).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			transitioned, err := repo.TransitionStatus(context.Background(), 5, domain.OrderStatusWaiting, domain.OrderStatusCancelled)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.transition, transitioned)
			}
		})
	}
}

func TestRepository_SetCode(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		completed bool
	}{
		{
			name: "Waiting order completes with the code",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE sms_orders")).
					WithArgs(int64(5), "1234", domain.OrderStatusCompleted, domain.OrderStatusWaiting).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			completed: true,
		},
		{
			name: "Order no longer waiting",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE sms_orders")).
					WithArgs(int64(5), "1234", domain.OrderStatusCompleted, domain.OrderStatusWaiting).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			completed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			completed, err := repo.SetCode(context.Background(), 5, "1234")
			assert.NoError(t, err)
			assert.Equal(t, tt.completed, completed)
		})
	}
}

func TestRepository_FindExpired(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	expiresAt := now.Add(-time.Minute)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Expired waiting orders returned",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "activation_id", "phone", "service", "country", "operator", "price", "status", "sms_code", "expires_at", "created_at"}).
					AddRow(int64(5), int64(1), "act-1", "+79001234567", "tg", "0", "any", 90.0, domain.OrderStatusWaiting, (*string)(nil), expiresAt, now.Add(-time.Hour))
				mock.ExpectQuery(regexp.QuoteMeta("FROM sms_orders")).
					WithArgs(domain.OrderStatusWaiting, now, 1000).
					WillReturnRows(rows)
			},
			count: 1,
		},
		{
			name: "Nothing expired",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "activation_id", "phone", "service", "country", "operator", "price", "status", "sms_code", "expires_at", "created_at"})
				mock.ExpectQuery(regexp.QuoteMeta("FROM sms_orders")).
					WithArgs(domain.OrderStatusWaiting, now, 1000).
					WillReturnRows(rows)
			},
			count: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM sms_orders")).
					WithArgs(domain.OrderStatusWaiting, now, 1000).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			orders, err := repo.FindExpired(context.Background(), now, 1000)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, orders, tt.count)
			}
		})
	}
}
