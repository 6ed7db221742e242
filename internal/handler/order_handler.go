package handler

import (
	"net/http"

	"cats-shop/internal/model"
	"cats-shop/internal/order"
	"cats-shop/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// OrderHandler handles order-intent composition requests.
type OrderHandler struct {
	service  service.OrderService
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger.With().Str("handler", "order").Logger(),
	}
}

// intentRequest is the payload of POST /api/orders/intent.
type intentRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
	Locale    string `json:"locale"`
}

// intentResponse returns the composed intent together with the deep link
// the customer should follow. Nothing is persisted server-side.
type intentResponse struct {
	Intent *order.Intent `json:"intent"`
	Link   string        `json:"link"`
}

// CreateIntent handles POST /api/orders/intent.
func (h *OrderHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req intentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidQuantity, "productId and a quantity of at least 1 are required", h.logger)
		return
	}

	intent, link, err := h.service.ComposeIntent(r.Context(), req.ProductID, req.Quantity, req.Locale)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, intentResponse{Intent: intent, Link: link})
}
