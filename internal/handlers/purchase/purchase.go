package purchase

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
	Purchase(ctx context.Context, userID, productID int64) (*domain.Order, error)
	GetOrders(ctx context.Context, userID int64) ([]domain.Order, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

type PurchaseHandler struct {
	purchaseService Service
}

func New(purchaseService Service) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
	}
}

// Purchase godoc
//
//	@Summary		Buy a catalog product
//	@Description	Debit the wallet, consume one stock unit and deliver the credential
//	@Tags			Purchase
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseRequestDTO	true	"Purchase request payload"
//	@Success		200		{object}	dto.PurchaseResponseDTO	"Delivered credential"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		402		{object}	utils.Response			"Insufficient balance"
//	@Failure		404		{object}	utils.Response			"Product not found"
//	@Failure		409		{object}	utils.Response			"Out of stock"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/purchase [post]
func (h *PurchaseHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	var req dto.PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.purchaseService.Purchase(r.Context(), userID, req.ProductID)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PurchaseResponseDTO{
		OrderID: order.ID,
		Product: order.Name,
		Price:   order.Price,
		Details: order.Details,
	})
}

// GetOrders godoc
//
//	@Summary		Get purchase history
//	@Description	List orders of the authenticated user, newest first
//	@Tags			Purchase
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.OrderResponseDTO	"Order history"
//	@Success		204	{object}	utils.Response			"No orders"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/orders [get]
func (h *PurchaseHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	orders, err := h.purchaseService.GetOrders(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}
	if len(orders) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No orders")
		return
	}

	response := make([]dto.OrderResponseDTO, len(orders))
	for i, o := range orders {
		response[i] = dto.OrderResponseDTO{
			ID:        o.ID,
			Type:      o.Type,
			Name:      o.Name,
			Price:     o.Price,
			Details:   o.Details,
			Status:    o.Status,
			CreatedAt: o.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ListProducts godoc
//
//	@Summary		List catalog products
//	@Tags			Purchase
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ProductResponseDTO	"Catalog"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/products [get]
func (h *PurchaseHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.purchaseService.ListProducts(r.Context())
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}

	response := make([]dto.ProductResponseDTO, len(products))
	for i, p := range products {
		response[i] = dto.ProductResponseDTO{
			ID:          p.ID,
			Category:    p.Category,
			Name:        p.Name,
			Price:       p.Price,
			Stock:       p.Stock,
			Description: p.Description,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
