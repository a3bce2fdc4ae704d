package barbecue

import (
	"time"

	"github.com/ampinho/churrasplit/internal/ledger"
)

// Barbecue represents one tracked event
type Barbecue struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Product is a stored purchase row. Payments share this table with
// IsPayment set and a single consumer (the receiver); the product endpoints
// refuse to touch those rows.
type Product struct {
	ID         string    `json:"id"`
	BarbecueID string    `json:"barbecue_id"`
	Label      string    `json:"label"`
	Amount     float64   `json:"amount"`
	Payer      string    `json:"payer"`
	Consumers  []string  `json:"consumers"`
	IsPayment  bool      `json:"is_payment"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToTransaction converts the row into the engine's unified shape.
func (p *Product) ToTransaction() ledger.Transaction {
	return ledger.Transaction{
		ID:            p.ID,
		Label:         p.Label,
		Amount:        p.Amount,
		Payer:         p.Payer,
		Beneficiaries: p.Consumers,
		IsPayment:     p.IsPayment,
	}
}
