package repo

import (
	"github.com/asemenkov/digimart/internal/pg"
	orderrepo "github.com/asemenkov/digimart/internal/repo/order-repo"
	paymentrepo "github.com/asemenkov/digimart/internal/repo/payment-repo"
	productrepo "github.com/asemenkov/digimart/internal/repo/product-repo"
	servicerepo "github.com/asemenkov/digimart/internal/repo/service-repo"
	smsorderrepo "github.com/asemenkov/digimart/internal/repo/smsorder-repo"
	userrepo "github.com/asemenkov/digimart/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo     *userrepo.Repository
	ProductRepo  *productrepo.Repository
	OrderRepo    *orderrepo.Repository
	SMSOrderRepo *smsorderrepo.Repository
	ServiceRepo  *servicerepo.Repository
	PaymentRepo  *paymentrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		ProductRepo:  productrepo.New(conn),
		OrderRepo:    orderrepo.New(conn),
		SMSOrderRepo: smsorderrepo.New(conn),
		ServiceRepo:  servicerepo.New(conn),
		PaymentRepo:  paymentrepo.New(conn),
	}
}
