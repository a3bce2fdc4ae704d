package payment

// CreatePaymentRequest records a real-world transfer between two
// participants, usually one suggested by the settlement plan.
type CreatePaymentRequest struct {
	BarbecueID string  `json:"barbecue_id" validate:"required"`
	From       string  `json:"from" validate:"required"`
	To         string  `json:"to" validate:"required"`
	Amount     float64 `json:"amount" validate:"gt=0"`
}
