package participant

import (
	"context"
	"errors"
	"strings"
)

// Common errors
var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrInvalidName         = errors.New("participant name cannot be empty")
	ErrSelfResponsible     = errors.New("participant cannot be their own payment responsible")
)

// Service handles participant registry business logic
type Service struct {
	repo *Repository
}

// NewService creates a new participant service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Upsert registers a participant or updates their payment metadata. New
// entries start with no history; the engine fills in balances on the next
// pass.
func (s *Service) Upsert(ctx context.Context, barbecueID, name string, req *UpsertParticipantRequest) (*Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}

	p, err := s.repo.GetByName(ctx, barbecueID, name)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = &Participant{BarbecueID: barbecueID, Name: name}
	}

	if req.Pix != nil {
		key, typ := req.Pix.Key, req.Pix.Type
		p.PixKey, p.PixType = &key, &typ
	}
	if req.Responsible != nil {
		responsible := strings.TrimSpace(*req.Responsible)
		if responsible == name {
			return nil, ErrSelfResponsible
		}
		if responsible == "" {
			p.PaymentResponsible = nil
		} else {
			p.PaymentResponsible = &responsible
		}
	}

	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// List retrieves the registry for a barbecue
func (s *Service) List(ctx context.Context, barbecueID string) ([]*Participant, error) {
	return s.repo.ListByBarbecue(ctx, barbecueID)
}

// Delete removes a participant from the registry. The engine never removes
// anyone on its own; this is the one explicit removal path.
func (s *Service) Delete(ctx context.Context, barbecueID, name string) error {
	deleted, err := s.repo.Delete(ctx, barbecueID, name)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrParticipantNotFound
	}
	return nil
}
