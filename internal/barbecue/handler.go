package barbecue

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ampinho/churrasplit/pkg/response"
)

// Handler handles HTTP requests for barbecue operations
type Handler struct {
	service *Service
}

// NewHandler creates a new barbecue handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for barbecue endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Delete("/{id}", h.Delete)
	r.Get("/{id}/summary", h.Summary)

	// Product operations
	r.Post("/{id}/products", h.AddProduct)
	r.Put("/products/{productId}", h.UpdateProduct)
	r.Delete("/products/{productId}", h.DeleteProduct)

	return r
}

// Create handles POST /barbecues
// @Summary      Create a barbecue
// @Description  Create a new barbecue event
// @Tags         barbecues
// @Accept       json
// @Produce      json
// @Param        request body CreateBarbecueRequest true "Barbecue creation request"
// @Success      201 {object} response.APIResponse{data=BarbecueResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /barbecues [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBarbecueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.Name == "" {
		response.BadRequest(w, "Name is required")
		return
	}

	b, err := h.service.Create(r.Context(), &req)
	if err != nil {
		response.InternalError(w, "Failed to create barbecue")
		return
	}

	response.JSON(w, http.StatusCreated, b.ToResponse())
}

// List handles GET /barbecues
// @Summary      List barbecues
// @Description  Get all barbecue events, newest first
// @Tags         barbecues
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]BarbecueResponse}
// @Router       /barbecues [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	barbecues, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list barbecues")
		return
	}

	resp := make([]*BarbecueResponse, len(barbecues))
	for i, b := range barbecues {
		resp[i] = b.ToResponse()
	}
	response.JSON(w, http.StatusOK, resp)
}

// GetByID handles GET /barbecues/{id}
// @Summary      Get barbecue by ID
// @Tags         barbecues
// @Produce      json
// @Param        id path string true "Barbecue ID"
// @Success      200 {object} response.APIResponse{data=BarbecueResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /barbecues/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrBarbecueNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get barbecue")
		return
	}

	response.JSON(w, http.StatusOK, b.ToResponse())
}

// Delete handles DELETE /barbecues/{id}
// @Summary      Delete a barbecue
// @Description  Remove a barbecue and all attached products, payments and participants
// @Tags         barbecues
// @Produce      json
// @Param        id path string true "Barbecue ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /barbecues/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrBarbecueNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete barbecue")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"deleted": id})
}

// Summary handles GET /barbecues/{id}/summary
// @Summary      Get the settlement summary
// @Description  Run a full ledger pass: balances, payment history, settlement plan and total cost
// @Tags         barbecues
// @Produce      json
// @Param        id path string true "Barbecue ID"
// @Success      200 {object} response.APIResponse{data=SummaryResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /barbecues/{id}/summary [get]
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Summary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrBarbecueNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to compute summary")
		return
	}

	response.JSON(w, http.StatusOK, toSummaryResponse(result))
}

// AddProduct handles POST /barbecues/{id}/products
// @Summary      Add a product
// @Description  Add a purchase to a barbecue and recompute the ledger
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id path string true "Barbecue ID"
// @Param        request body AddProductRequest true "Product creation request"
// @Success      201 {object} response.APIResponse{data=MutationResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /barbecues/{id}/products [post]
func (h *Handler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var req AddProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	product, result, err := h.service.AddProduct(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrBarbecueNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrMissingPayer):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to add product")
		}
		return
	}

	response.JSON(w, http.StatusCreated, &MutationResponse{
		Product: product.ToResponse(),
		Summary: toSummaryResponse(result),
	})
}

// UpdateProduct handles PUT /barbecues/products/{productId}
// @Summary      Update a product
// @Description  Modify a purchase and recompute the ledger; payment rows are rejected
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        productId path string true "Product ID"
// @Param        request body UpdateProductRequest true "Product update request"
// @Success      200 {object} response.APIResponse{data=MutationResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /barbecues/products/{productId} [put]
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	product, result, err := h.service.UpdateProduct(r.Context(), chi.URLParam(r, "productId"), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrProductNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrNotAProduct), errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrMissingPayer):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to update product")
		}
		return
	}

	response.JSON(w, http.StatusOK, &MutationResponse{
		Product: product.ToResponse(),
		Summary: toSummaryResponse(result),
	})
}

// DeleteProduct handles DELETE /barbecues/products/{productId}
// @Summary      Delete a product
// @Description  Remove a purchase and recompute the ledger; payment rows are rejected
// @Tags         products
// @Produce      json
// @Param        productId path string true "Product ID"
// @Success      200 {object} response.APIResponse{data=MutationResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /barbecues/products/{productId} [delete]
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.DeleteProduct(r.Context(), chi.URLParam(r, "productId"))
	if err != nil {
		switch {
		case errors.Is(err, ErrProductNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrNotAProduct):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to delete product")
		}
		return
	}

	response.JSON(w, http.StatusOK, &MutationResponse{Summary: toSummaryResponse(result)})
}
