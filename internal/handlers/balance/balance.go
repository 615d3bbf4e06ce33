package balance

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/asemenkov/digimart/internal/apperr"
	"github.com/asemenkov/digimart/internal/domain"
	"github.com/asemenkov/digimart/internal/dto"
	"github.com/asemenkov/digimart/pkg/auth"
	"github.com/asemenkov/digimart/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int64) (float64, error)
	VerifyAndCredit(ctx context.Context, userID int64, transactionID string) (*domain.Payment, error)
}

type BalanceHandler struct {
	paymentService Service
}

func New(paymentService Service) *BalanceHandler {
	return &BalanceHandler{
		paymentService: paymentService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current wallet balance
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	balance, err := h.paymentService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Balance: balance,
	})
}

// TopUp godoc
//
//	@Summary		Credit a verified gateway payment
//	@Description	Verify the transaction with the payment gateway and credit the wallet once per reference
//	@Tags			Balance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TopUpRequestDTO	true	"Top-up request payload"
//	@Success		200		{object}	dto.TopUpResponseDTO
//	@Failure		400		{object}	utils.Response	"Payment not confirmed"
//	@Failure		409		{object}	utils.Response	"Reference already credited"
//	@Failure		502		{object}	utils.Response	"Gateway unavailable"
//	@Router			/api/balance/topup [post]
func (h *BalanceHandler) TopUp(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	var req dto.TopUpRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payment, err := h.paymentService.VerifyAndCredit(r.Context(), userID, req.TransactionID)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TopUpResponseDTO{
		Reference: payment.Reference,
		Amount:    payment.Amount,
	})
}
