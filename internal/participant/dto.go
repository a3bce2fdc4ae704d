package participant

// PixRequest carries the optional pix payment key for a participant
type PixRequest struct {
	Key  string `json:"key" validate:"required,min=1,max=140"`
	Type string `json:"type" validate:"required,oneof=CPF CNPJ EMAIL PHONE RANDOM"`
}

// UpsertParticipantRequest registers a participant or updates their
// payment metadata. A nil field leaves the stored value untouched; an
// empty Responsible string clears the dependency.
type UpsertParticipantRequest struct {
	Pix         *PixRequest `json:"pix,omitempty"`
	Responsible *string     `json:"responsible,omitempty"`
}

// ParticipantResponse represents the response for a registry entry
type ParticipantResponse struct {
	Name               string      `json:"name"`
	Pix                *PixRequest `json:"pix,omitempty"`
	PaymentResponsible string      `json:"payment_responsible,omitempty"`
}

// ToResponse converts a Participant model to a ParticipantResponse DTO
func (p *Participant) ToResponse() *ParticipantResponse {
	resp := &ParticipantResponse{Name: p.Name}
	if p.PixKey != nil {
		resp.Pix = &PixRequest{Key: *p.PixKey}
		if p.PixType != nil {
			resp.Pix.Type = *p.PixType
		}
	}
	if p.PaymentResponsible != nil {
		resp.PaymentResponsible = *p.PaymentResponsible
	}
	return resp
}
