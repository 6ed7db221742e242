package handler

import (
	"net/http"

	"cats-shop/internal/model"
	"cats-shop/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// ProductHandler handles the catalog CRUD API.
type ProductHandler struct {
	service  service.ProductService
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger.With().Str("handler", "product").Logger(),
	}
}

// createProductChecks mirrors the original creation requirements: id,
// Ukrainian name and a positive single price.
type createProductChecks struct {
	ID          string  `validate:"required"`
	NameUK      string  `validate:"required"`
	PriceSingle float64 `validate:"gt=0"`
}

// deleteProductRequest carries the id of the product to remove. The id
// travels in the JSON body, matching the original API.
type deleteProductRequest struct {
	ID string `json:"id" validate:"required"`
}

// successResponse acknowledges a mutation.
type successResponse struct {
	Success bool `json:"success"`
}

// GetAll handles GET /api/products. The response keeps the original
// {"products": [...]} envelope.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to retrieve products", h.logger)
		return
	}
	if products == nil {
		products = []model.Product{}
	}

	writeJSON(w, http.StatusOK, model.Catalog{Products: products})
}

// GetByID handles GET /api/products/{id}.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "product ID is required", h.logger)
		return
	}

	product, err := h.service.Get(r.Context(), productID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var product model.Product
	if err := decodeJSON(r, &product); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	checks := createProductChecks{
		ID:          product.ID,
		NameUK:      product.Name.UK,
		PriceSingle: product.Price.Single,
	}
	if err := h.validate.Struct(checks); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "id, name.uk and a positive price.single are required", h.logger)
		return
	}

	if err := h.service.Create(r.Context(), product); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, successResponse{Success: true})
}

// Update handles PUT /api/products. The record is keyed by the id in the
// body, matching the original API.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var product model.Product
	if err := decodeJSON(r, &product); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if product.ID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "product ID is required", h.logger)
		return
	}

	if err := h.service.Update(r.Context(), product); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// Delete handles DELETE /api/products.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "product ID is required", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), req.ID); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
