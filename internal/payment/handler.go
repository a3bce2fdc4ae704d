package payment

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ampinho/churrasplit/internal/barbecue"
	"github.com/ampinho/churrasplit/internal/ledger"
	"github.com/ampinho/churrasplit/pkg/middleware"
	"github.com/ampinho/churrasplit/pkg/response"
)

// Handler handles HTTP requests for payment operations
type Handler struct {
	service *Service
}

// NewHandler creates a new payment handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for payment endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/barbecue/{barbecueId}", h.ListByBarbecue)
	r.Delete("/{id}", h.Reverse)

	return r
}

// paymentResponse pairs the recorded payment with the recomputed summary.
type paymentResponse struct {
	Payment      *ledger.PaymentRecord          `json:"payment,omitempty"`
	Settlements  []ledger.SettlementTransaction `json:"settlements"`
	Participants []*ledger.Participant          `json:"participants"`
}

// Create handles POST /payments
// @Summary      Record a payment
// @Description  Record a real-world transfer between two participants and recompute the ledger
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request body CreatePaymentRequest true "Payment creation request"
// @Success      201 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /payments [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	record, result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, barbecue.ErrBarbecueNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrInvalidAmount),
			errors.Is(err, ErrSamePayerReceiver),
			errors.Is(err, ErrMissingName):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to record payment")
		}
		return
	}

	actor, _ := middleware.GetActor(r.Context())
	slog.Info("Payment recorded",
		"actor", actor,
		"from", record.From,
		"to", record.To,
		"amount", record.Amount,
	)

	response.JSON(w, http.StatusCreated, &paymentResponse{
		Payment:      record,
		Settlements:  result.Settlements,
		Participants: result.Participants,
	})
}

// ListByBarbecue handles GET /payments/barbecue/{barbecueId}
// @Summary      List payments
// @Description  Get the payment history for a barbecue
// @Tags         payments
// @Produce      json
// @Param        barbecueId path string true "Barbecue ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /payments/barbecue/{barbecueId} [get]
func (h *Handler) ListByBarbecue(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.List(r.Context(), chi.URLParam(r, "barbecueId"))
	if err != nil {
		if errors.Is(err, barbecue.ErrBarbecueNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to list payments")
		return
	}

	response.JSON(w, http.StatusOK, payments)
}

// Reverse handles DELETE /payments/{id}
// @Summary      Reverse a payment
// @Description  Remove a recorded payment and recompute the ledger from scratch
// @Tags         payments
// @Produce      json
// @Param        id path string true "Payment ID"
// @Success      200 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /payments/{id} [delete]
func (h *Handler) Reverse(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Reverse(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrPaymentNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrNotAPayment):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to reverse payment")
		}
		return
	}

	response.JSON(w, http.StatusOK, &paymentResponse{
		Settlements:  result.Settlements,
		Participants: result.Participants,
	})
}
