package participant

import "github.com/ampinho/churrasplit/internal/ledger"

// Participant is the registry row for one person at one barbecue. Numeric
// figures never live here; they are recomputed by the ledger engine on
// every pass. The row only carries identity and payment metadata.
type Participant struct {
	BarbecueID         string  `json:"barbecue_id"`
	Name               string  `json:"name"`
	PixKey             *string `json:"pix_key,omitempty"`
	PixType            *string `json:"pix_type,omitempty"`
	PaymentResponsible *string `json:"payment_responsible,omitempty"`
}

// ToLedger converts the row into the engine's participant seed.
func (p *Participant) ToLedger() *ledger.Participant {
	seed := &ledger.Participant{Name: p.Name}
	if p.PaymentResponsible != nil {
		seed.PaymentResponsible = *p.PaymentResponsible
	}
	if p.PixKey != nil {
		pix := &ledger.PixInfo{Key: *p.PixKey}
		if p.PixType != nil {
			pix.Type = *p.PixType
		}
		seed.Pix = pix
	}
	return seed
}
