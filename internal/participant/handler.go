package participant

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ampinho/churrasplit/pkg/response"
)

// Handler handles HTTP requests for participant registry operations
type Handler struct {
	service *Service
}

// NewHandler creates a new participant handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for participant endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/barbecue/{barbecueId}", h.List)
	r.Put("/barbecue/{barbecueId}/{name}", h.Upsert)
	r.Delete("/barbecue/{barbecueId}/{name}", h.Delete)

	return r
}

// List handles GET /participants/barbecue/{barbecueId}
// @Summary      List participants
// @Description  Get the participant registry for a barbecue
// @Tags         participants
// @Produce      json
// @Param        barbecueId path string true "Barbecue ID"
// @Success      200 {object} response.APIResponse{data=[]ParticipantResponse}
// @Router       /participants/barbecue/{barbecueId} [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	barbecueID := chi.URLParam(r, "barbecueId")

	participants, err := h.service.List(r.Context(), barbecueID)
	if err != nil {
		response.InternalError(w, "Failed to list participants")
		return
	}

	resp := make([]*ParticipantResponse, len(participants))
	for i, p := range participants {
		resp[i] = p.ToResponse()
	}
	response.JSON(w, http.StatusOK, resp)
}

// Upsert handles PUT /participants/barbecue/{barbecueId}/{name}
// @Summary      Register or update a participant
// @Description  Set a participant's pix key and/or payment responsible
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        barbecueId path string true "Barbecue ID"
// @Param        name path string true "Participant name"
// @Param        request body UpsertParticipantRequest true "Participant metadata"
// @Success      200 {object} response.APIResponse{data=ParticipantResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /participants/barbecue/{barbecueId}/{name} [put]
func (h *Handler) Upsert(w http.ResponseWriter, r *http.Request) {
	barbecueID := chi.URLParam(r, "barbecueId")
	name := chi.URLParam(r, "name")

	var req UpsertParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	p, err := h.service.Upsert(r.Context(), barbecueID, name, &req)
	if err != nil {
		if errors.Is(err, ErrInvalidName) || errors.Is(err, ErrSelfResponsible) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to save participant")
		return
	}

	response.JSON(w, http.StatusOK, p.ToResponse())
}

// Delete handles DELETE /participants/barbecue/{barbecueId}/{name}
// @Summary      Remove a participant
// @Description  Remove a participant from the registry
// @Tags         participants
// @Produce      json
// @Param        barbecueId path string true "Barbecue ID"
// @Param        name path string true "Participant name"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /participants/barbecue/{barbecueId}/{name} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	barbecueID := chi.URLParam(r, "barbecueId")
	name := chi.URLParam(r, "name")

	if err := h.service.Delete(r.Context(), barbecueID, name); err != nil {
		if errors.Is(err, ErrParticipantNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete participant")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"deleted": name})
}
