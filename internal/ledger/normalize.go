package ledger

import (
	"strconv"
	"strings"
)

// Kind classifies an external record at ingestion.
type Kind string

const (
	KindPurchase Kind = "PURCHASE"
	KindPayment  Kind = "PAYMENT"
)

// paymentKeywords marks a free-text label as a settlement payment. Matching
// is a case-insensitive substring check covering the source locale.
var paymentKeywords = []string{"pagamento", "payment", "acerto", "settlement"}

// RawRecord is a purchase-like or payment-like row as it arrives from an
// external source. Amount stays in its source representation because
// spreadsheet-born values are unreliable. Kind is the explicit tag when the
// source format supports one; nil falls back to label classification.
type RawRecord struct {
	ID        string
	Label     string
	Amount    string
	Payer     string
	Consumers []string
	Kind      *Kind
}

// Classify decides whether a legacy free-text row is a payment or a
// purchase. This is a heuristic, not authoritative: sources that carry an
// explicit tag should set RawRecord.Kind instead and skip it entirely.
func Classify(label string) Kind {
	lower := strings.ToLower(label)
	for _, kw := range paymentKeywords {
		if strings.Contains(lower, kw) {
			return KindPayment
		}
	}
	return KindPurchase
}

// ParseAmount converts a source money string to a float64. It accepts
// Brazilian formatting ("R$ 1.234,56") as well as plain decimals. A value
// that fails to parse becomes 0 rather than an error - the permissive
// policy for spreadsheet-sourced data; data-quality warnings are the
// caller's concern.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")

	if strings.Contains(s, ",") {
		// Comma is the decimal separator, dots are thousands.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || value < 0 {
		return 0
	}
	return value
}

// DedupeNames keeps the first occurrence of each name, trimming whitespace
// and preserving order. Beneficiaries are a set per transaction; collaborators
// use the same rule before persisting consumer lists.
func DedupeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// Normalize unifies heterogeneous external records into the transaction
// stream the aggregator consumes. Payment rows get the sentinel label and a
// single-beneficiary shape regardless of how the source spelled them.
func Normalize(records []RawRecord) []Transaction {
	txs := make([]Transaction, 0, len(records))
	for _, rec := range records {
		kind := Classify(rec.Label)
		if rec.Kind != nil {
			kind = *rec.Kind
		}

		tx := Transaction{
			ID:            rec.ID,
			Label:         rec.Label,
			Amount:        ParseAmount(rec.Amount),
			Payer:         rec.Payer,
			Beneficiaries: DedupeNames(rec.Consumers),
		}

		if kind == KindPayment {
			tx.Label = PaymentLabel
			tx.IsPayment = true
			// A payment repays exactly one person; extra names are noise
			// from the source and only the first is honoured downstream.
		}

		txs = append(txs, tx)
	}
	return txs
}
