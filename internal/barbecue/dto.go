package barbecue

import "github.com/ampinho/churrasplit/internal/ledger"

// CreateBarbecueRequest represents the request to create a barbecue
type CreateBarbecueRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

// AddProductRequest represents the request to add a product
type AddProductRequest struct {
	Label     string   `json:"label" validate:"required,min=1,max=255"`
	Amount    float64  `json:"amount" validate:"gte=0"`
	Payer     string   `json:"payer" validate:"required"`
	Consumers []string `json:"consumers"`
}

// UpdateProductRequest represents the request to update a product.
// Nil fields keep their stored values.
type UpdateProductRequest struct {
	Label     *string   `json:"label,omitempty" validate:"omitempty,min=1,max=255"`
	Amount    *float64  `json:"amount,omitempty" validate:"omitempty,gte=0"`
	Payer     *string   `json:"payer,omitempty"`
	Consumers *[]string `json:"consumers,omitempty"`
}

// BarbecueResponse represents the response for a barbecue
type BarbecueResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// ProductResponse represents the response for a product
type ProductResponse struct {
	ID        string   `json:"id"`
	Label     string   `json:"label"`
	Amount    float64  `json:"amount"`
	Payer     string   `json:"payer"`
	Consumers []string `json:"consumers"`
}

// SummaryResponse bundles one full engine pass: participant figures with
// both raw and shadow balances, the product list, payment history, the
// advisory settlement plan and the total cost.
type SummaryResponse struct {
	Participants []*ledger.Participant          `json:"participants"`
	Products     []ProductResponse              `json:"products"`
	Payments     []ledger.PaymentRecord         `json:"payments"`
	Settlements  []ledger.SettlementTransaction `json:"settlements"`
	TotalCost    float64                        `json:"total_cost"`
}

// MutationResponse pairs the touched product with the summary recomputed
// from persisted state, so the caller never renders a stale guess.
type MutationResponse struct {
	Product *ProductResponse `json:"product,omitempty"`
	Summary *SummaryResponse `json:"summary"`
}

// ToResponse converts a Barbecue model to a BarbecueResponse DTO
func (b *Barbecue) ToResponse() *BarbecueResponse {
	return &BarbecueResponse{
		ID:        b.ID,
		Name:      b.Name,
		CreatedAt: b.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToResponse converts a Product model to a ProductResponse DTO
func (p *Product) ToResponse() *ProductResponse {
	return &ProductResponse{
		ID:        p.ID,
		Label:     p.Label,
		Amount:    p.Amount,
		Payer:     p.Payer,
		Consumers: p.Consumers,
	}
}

// toSummaryResponse maps an engine result onto the API shape.
func toSummaryResponse(result *ledger.Result) *SummaryResponse {
	products := make([]ProductResponse, len(result.Products))
	for i, tx := range result.Products {
		products[i] = ProductResponse{
			ID:        tx.ID,
			Label:     tx.Label,
			Amount:    tx.Amount,
			Payer:     tx.Payer,
			Consumers: tx.Beneficiaries,
		}
	}
	return &SummaryResponse{
		Participants: result.Participants,
		Products:     products,
		Payments:     result.Payments,
		Settlements:  result.Settlements,
		TotalCost:    result.TotalCost,
	}
}
