package handlers

import (
	"net/http"

	_ "github.com/asemenkov/digimart/docs"
	authhandlers "github.com/asemenkov/digimart/internal/handlers/auth"
	balancehandlers "github.com/asemenkov/digimart/internal/handlers/balance"
	purchasehandlers "github.com/asemenkov/digimart/internal/handlers/purchase"
	smmhandlers "github.com/asemenkov/digimart/internal/handlers/smm"
	smshandlers "github.com/asemenkov/digimart/internal/handlers/sms"
	"github.com/asemenkov/digimart/internal/service"
	"github.com/asemenkov/digimart/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type PurchaseHandler interface {
	Purchase(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	ListProducts(w http.ResponseWriter, r *http.Request)
}

type SMSHandler interface {
	Order(w http.ResponseWriter, r *http.Request)
	Check(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	Prices(w http.ResponseWriter, r *http.Request)
	AllowedServices(w http.ResponseWriter, r *http.Request)
	AddAllowedService(w http.ResponseWriter, r *http.Request)
}

type SMMHandler interface {
	Services(w http.ResponseWriter, r *http.Request)
	Order(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	TopUp(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	PurchaseHandler PurchaseHandler
	SMSHandler      SMSHandler
	SMMHandler      SMMHandler
	BalanceHandler  BalanceHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		PurchaseHandler: purchasehandlers.New(s.PurchaseService),
		SMSHandler:      smshandlers.New(s.SMSService),
		SMMHandler:      smmhandlers.New(s.SMMService),
		BalanceHandler:  balancehandlers.New(s.PaymentService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Get("/products", h.PurchaseHandler.ListProducts)
			r.Post("/purchase", h.PurchaseHandler.Purchase)
			r.Get("/orders", h.PurchaseHandler.GetOrders)

			r.Route("/balance", func(r chi.Router) {
				r.Get("/", h.BalanceHandler.GetBalance)
				r.Post("/topup", h.BalanceHandler.TopUp)
			})

			r.Route("/sms", func(r chi.Router) {
				r.Get("/prices", h.SMSHandler.Prices)
				r.Get("/services", h.SMSHandler.AllowedServices)
				r.Post("/order", h.SMSHandler.Order)
				r.Get("/orders", h.SMSHandler.GetOrders)
				r.Get("/order/{id}", h.SMSHandler.Check)
				r.Post("/order/{id}/cancel", h.SMSHandler.Cancel)

				r.Group(func(r chi.Router) {
					r.Use(auth.AdminMiddleware)
					r.Post("/services", h.SMSHandler.AddAllowedService)
				})
			})

			r.Route("/smm", func(r chi.Router) {
				r.Get("/services", h.SMMHandler.Services)
				r.Post("/order", h.SMMHandler.Order)
			})
		})
	})

	return r
}
