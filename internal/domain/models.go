package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	OrderTypeProduct = "PRODUCT"
	OrderTypeSMS     = "SMS"
	OrderTypeSMM     = "SMM"
)

const (
	// OrderStatusCompleted заказ выполнен, товар или код доставлен;
	OrderStatusCompleted = "COMPLETED"
	// OrderStatusPending заказ передан провайдеру и ожидает исполнения;
	OrderStatusPending = "PENDING"
	// OrderStatusActive заказ исполняется провайдером;
	OrderStatusActive = "ACTIVE"
	// OrderStatusWaiting номер выдан, ожидание СМС-кода;
	OrderStatusWaiting = "WAITING"
	// OrderStatusCancelled заказ отменён пользователем, деньги возвращены;
	OrderStatusCancelled = "CANCELLED"
	// OrderStatusExpired срок ожидания истёк, деньги возвращены;
	OrderStatusExpired = "EXPIRED"
)

type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Balance      float64   `db:"balance"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

// Product is a catalog item. Payload holds either a static credential or a
// newline-delimited list of single-use credential lines; Stock must equal the
// number of undelivered units remaining.
type Product struct {
	ID          int64   `db:"id"`
	Category    string  `db:"category"`
	Name        string  `db:"name"`
	Price       float64 `db:"price"`
	Stock       int     `db:"stock"`
	Payload     string  `db:"payload"`
	Link        string  `db:"link"`
	Description string  `db:"description"`
}

type Order struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Type      string    `db:"type"`
	Name      string    `db:"name"`
	Price     float64   `db:"price"`
	Details   string    `db:"details"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

// SMSOrder is a provider-backed number rental. ActivationID is the provider's
// identifier, kept as an opaque string exactly as returned.
type SMSOrder struct {
	ID           int64     `db:"id"`
	UserID       int64     `db:"user_id"`
	ActivationID string    `db:"activation_id"`
	Phone        string    `db:"phone"`
	Service      string    `db:"service"`
	Country      string    `db:"country"`
	Operator     string    `db:"operator"`
	Price        float64   `db:"price"`
	Status       string    `db:"status"`
	SMSCode      *string   `db:"sms_code"`
	ExpiresAt    time.Time `db:"expires_at"`
	CreatedAt    time.Time `db:"created_at"`
}

// AllowedService gates which provider SMS services are offered for sale.
type AllowedService struct {
	ID   int64  `db:"id"`
	Key  string `db:"key"`
	Name string `db:"name"`
}

// Payment records a gateway-verified top-up. Reference is unique, which makes
// crediting idempotent against duplicate verification calls.
type Payment struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Reference string    `db:"reference"`
	Amount    float64   `db:"amount"`
	CreatedAt time.Time `db:"created_at"`
}
