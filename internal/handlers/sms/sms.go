package sms

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/asemenkov/digimart/internal/apperr"
	"github.com/asemenkov/digimart/internal/domain"
	"github.com/asemenkov/digimart/internal/dto"
	"github.com/asemenkov/digimart/internal/service/smsservice"
	"github.com/asemenkov/digimart/pkg/auth"
	"github.com/asemenkov/digimart/pkg/utils"
)

type Service interface {
	Order(ctx context.Context, userID int64, service, country, operator string) (*smsservice.OrderResult, error)
	Check(ctx context.Context, userID, orderID int64) (*domain.SMSOrder, error)
	Cancel(ctx context.Context, userID, orderID int64) (*domain.SMSOrder, error)
	GetOrders(ctx context.Context, userID int64) ([]domain.SMSOrder, error)
	Prices(ctx context.Context, service string) (map[string]map[string]int64, error)
	AllowedServices(ctx context.Context) ([]domain.AllowedService, error)
	AddAllowedService(ctx context.Context, key, name string) (*domain.AllowedService, error)
}

type SMSHandler struct {
	smsService Service
}

func New(smsService Service) *SMSHandler {
	return &SMSHandler{
		smsService: smsService,
	}
}

// Order godoc
//
//	@Summary		Rent a verification number
//	@Description	Quote, allocate a number upstream, debit the wallet and start the wait-for-code window
//	@Tags			SMS
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SMSOrderRequestDTO	true	"Order request payload"
//	@Success		200		{object}	dto.SMSOrderResponseDTO	"Allocated number"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		402		{object}	utils.Response			"Insufficient balance"
//	@Failure		404		{object}	utils.Response			"Service not offered"
//	@Failure		502		{object}	utils.Response			"Provider unavailable"
//	@Router			/api/sms/order [post]
func (h *SMSHandler) Order(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	var req dto.SMSOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.smsService.Order(r.Context(), userID, req.Service, req.Country, req.Operator)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SMSOrderResponseDTO{
		OrderID:   result.OrderID,
		Phone:     result.Phone,
		Price:     result.Price,
		ExpiresIn: result.ExpiresIn,
	})
}

// Check godoc
//
//	@Summary		Poll an order for the delivered code
//	@Tags			SMS
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int							true	"Order id"
//	@Success		200	{object}	dto.SMSStatusResponseDTO	"Current order state"
//	@Failure		404	{object}	utils.Response				"Order not found"
//	@Failure		502	{object}	utils.Response				"Provider unavailable"
//	@Router			/api/sms/order/{id} [get]
func (h *SMSHandler) Check(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)
	orderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, err := h.smsService.Check(r.Context(), userID, orderID)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, statusDTO(order))
}

// Cancel godoc
//
//	@Summary		Cancel a waiting order and refund it
//	@Tags			SMS
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int							true	"Order id"
//	@Success		200	{object}	dto.SMSStatusResponseDTO	"Cancelled order"
//	@Failure		404	{object}	utils.Response				"Order not found"
//	@Failure		409	{object}	utils.Response				"Order already terminal"
//	@Router			/api/sms/order/{id}/cancel [post]
func (h *SMSHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)
	orderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, err := h.smsService.Cancel(r.Context(), userID, orderID)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, statusDTO(order))
}

// GetOrders godoc
//
//	@Summary		List SMS orders of the current user
//	@Tags			SMS
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}	dto.SMSStatusResponseDTO
//	@Router			/api/sms/orders [get]
func (h *SMSHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	orders, err := h.smsService.GetOrders(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}
	response := make([]dto.SMSStatusResponseDTO, len(orders))
	for i := range orders {
		response[i] = statusDTO(&orders[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Prices godoc
//
//	@Summary		Quote number prices for a service
//	@Tags			SMS
//	@Security		BearerAuth
//	@Produce		json
//	@Param			service	query	string	true	"Service key"
//	@Success		200		{object}	map[string]map[string]int64	"Charge by country and operator"
//	@Failure		404		{object}	utils.Response				"Service not offered"
//	@Router			/api/sms/prices [get]
func (h *SMSHandler) Prices(w http.ResponseWriter, r *http.Request) {
	prices, err := h.smsService.Prices(r.Context(), r.URL.Query().Get("service"))
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, prices)
}

// AllowedServices godoc
//
//	@Summary	List services offered for number rental
//	@Tags		SMS
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	dto.AllowedServiceDTO
//	@Router		/api/sms/services [get]
func (h *SMSHandler) AllowedServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.smsService.AllowedServices(r.Context())
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}
	response := make([]dto.AllowedServiceDTO, len(services))
	for i, s := range services {
		response[i] = dto.AllowedServiceDTO{Key: s.Key, Name: s.Name}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// AddAllowedService godoc
//
//	@Summary	Offer a new service for number rental
//	@Tags		SMS
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.AllowedServiceDTO	true	"Service to offer"
//	@Success	200		{object}	dto.AllowedServiceDTO
//	@Failure	403		{object}	utils.Response	"Admin only"
//	@Failure	409		{object}	utils.Response	"Already offered"
//	@Router		/api/sms/services [post]
func (h *SMSHandler) AddAllowedService(w http.ResponseWriter, r *http.Request) {
	var req dto.AllowedServiceDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	service, err := h.smsService.AddAllowedService(r.Context(), req.Key, req.Name)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AllowedServiceDTO{Key: service.Key, Name: service.Name})
}

func statusDTO(o *domain.SMSOrder) dto.SMSStatusResponseDTO {
	return dto.SMSStatusResponseDTO{
		OrderID:   o.ID,
		Phone:     o.Phone,
		Status:    o.Status,
		Code:      o.SMSCode,
		ExpiresAt: o.ExpiresAt,
	}
}
