package importer

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ampinho/churrasplit/pkg/response"
)

// Handler handles HTTP requests for sheet imports
type Handler struct {
	service *Service
}

// NewHandler creates a new importer handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for import endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Import)

	return r
}

// Import handles POST /import
// @Summary      Import a legacy sheet
// @Description  Create a barbecue from raw spreadsheet rows, classifying payment rows by label
// @Tags         import
// @Accept       json
// @Produce      json
// @Param        request body ImportRequest true "Sheet rows"
// @Success      201 {object} response.APIResponse{data=ImportResult}
// @Failure      400 {object} response.APIResponse
// @Router       /import [post]
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	var req ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.service.Import(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrNoImportableRows) || errors.Is(err, ErrMissingName) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to import sheet")
		return
	}

	response.JSON(w, http.StatusCreated, result)
}
