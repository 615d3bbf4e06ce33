package smm

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/asemenkov/digimart/internal/apperr"
	"github.com/asemenkov/digimart/internal/dto"
	"github.com/asemenkov/digimart/internal/provider/smmprov"
	"github.com/asemenkov/digimart/internal/service/smmservice"
	"github.com/asemenkov/digimart/pkg/auth"
	"github.com/asemenkov/digimart/pkg/utils"
)

type Service interface {
	Services(ctx context.Context) ([]smmprov.Service, error)
	Order(ctx context.Context, userID int64, service, link string, quantity int) (*smmservice.OrderResult, error)
}

type SMMHandler struct {
	smmService Service
}

func New(smmService Service) *SMMHandler {
	return &SMMHandler{
		smmService: smmService,
	}
}

// Services godoc
//
//	@Summary	List resellable SMM services
//	@Tags		SMM
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.SMMServiceDTO
//	@Failure	502	{object}	utils.Response	"Provider unavailable"
//	@Router		/api/smm/services [get]
func (h *SMMHandler) Services(w http.ResponseWriter, r *http.Request) {
	services, err := h.smmService.Services(r.Context())
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}

	response := make([]dto.SMMServiceDTO, len(services))
	for i, s := range services {
		response[i] = dto.SMMServiceDTO{
			Service:  s.Service,
			Name:     s.Name,
			Category: s.Category,
			Min:      s.Min,
			Max:      s.Max,
			Rate:     s.Rate,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Order godoc
//
//	@Summary		Order an SMM service
//	@Description	Submit the order upstream, debit the wallet and record it
//	@Tags			SMM
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SMMOrderRequestDTO	true	"Order request payload"
//	@Success		200		{object}	dto.SMMOrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		404		{object}	utils.Response	"Service not found"
//	@Failure		502		{object}	utils.Response	"Provider unavailable"
//	@Router			/api/smm/order [post]
func (h *SMMHandler) Order(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	var req dto.SMMOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.smmService.Order(r.Context(), userID, req.Service, req.Link, req.Quantity)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SMMOrderResponseDTO{
		OrderID:         result.OrderID,
		ProviderOrderID: result.ProviderOrderID,
		Price:           result.Price,
	})
}
