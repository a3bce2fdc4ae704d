// Package ledger implements the pure settlement engine for a barbecue:
// it turns a stream of purchases and recorded payments into per-participant
// balances and a greedy minimal-transfer settlement plan. The package does
// no I/O; callers feed it transactions and a participant registry and
// re-run the full pipeline after every mutation.
package ledger

// Epsilon is the currency-unit tolerance used for all zero comparisons.
// Equal-split division leaves floating-point remainders; anything within
// a cent of zero is treated as settled.
const Epsilon = 0.01

// PaymentLabel is the sentinel label for settlement-payment transactions,
// so they are never mistaken for an editable product.
const PaymentLabel = "Pagamento"

// Transaction is the unified internal record. Purchases and payments share
// this shape: a payment is a transaction with exactly one beneficiary (the
// receiver) and IsPayment set.
type Transaction struct {
	ID            string   `json:"id"`
	Label         string   `json:"label"`
	Amount        float64  `json:"amount"`
	Payer         string   `json:"payer"`
	Beneficiaries []string `json:"beneficiaries"`
	IsPayment     bool     `json:"is_payment"`
}

// PaymentRecord is the denormalized read-only view of a settlement payment,
// kept distinct from Transaction because callers display payment history
// separately and reversing a payment means removing its source transaction.
type PaymentRecord struct {
	ID     string  `json:"id"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// SettlementTransaction is a suggested real-world transfer. It is advisory
// only, regenerated on every pass, and never persisted by the engine.
type SettlementTransaction struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// NewPayment builds the transaction representing a direct debt repayment
// from payer to receiver.
func NewPayment(id, payer, receiver string, amount float64) Transaction {
	return Transaction{
		ID:            id,
		Label:         PaymentLabel,
		Amount:        amount,
		Payer:         payer,
		Beneficiaries: []string{receiver},
		IsPayment:     true,
	}
}
