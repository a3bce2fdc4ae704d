package ledger

// PixInfo is opaque payment-key metadata carried through for display.
// It plays no part in the settlement math.
type PixInfo struct {
	Key  string `json:"key"`
	Type string `json:"type"`
}

// Participant holds the per-person figures recomputed from scratch on every
// pass. TotalPaid, TotalConsumed and both balances are derived values, never
// authoritative state.
type Participant struct {
	Name string `json:"name"`

	// TotalPaid is the sum of amounts fronted by this participant.
	TotalPaid float64 `json:"total_paid"`

	// TotalConsumed is the sum of per-head shares over transactions where
	// this participant is a beneficiary. Receiving a settlement payment
	// counts as consumption; that is the mechanism by which it cancels debt.
	TotalConsumed float64 `json:"total_consumed"`

	// RawBalance is TotalPaid - TotalConsumed: what this individual
	// actually paid vs consumed, useful for transparency.
	RawBalance float64 `json:"raw_balance"`

	// ShadowBalance is the raw balance after redirecting dependents onto
	// their responsible payer. The settlement planner works on this one.
	ShadowBalance float64 `json:"shadow_balance"`

	// PaymentResponsible names another participant who absorbs this
	// participant's balance in settlement. Empty means self-responsible.
	PaymentResponsible string `json:"payment_responsible,omitempty"`

	Pix *PixInfo `json:"pix,omitempty"`
}

// IsDependent reports whether this participant's balance is absorbed by
// someone else.
func (p *Participant) IsDependent() bool {
	return p.PaymentResponsible != "" && p.PaymentResponsible != p.Name
}
