package barbecue

import (
	"context"
	"errors"
	"strings"

	"github.com/ampinho/churrasplit/internal/ledger"
	"github.com/ampinho/churrasplit/internal/participant"
)

// Common errors
var (
	ErrBarbecueNotFound = errors.New("barbecue not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrNotAProduct      = errors.New("row is a payment, not a product")
	ErrInvalidAmount    = errors.New("amount cannot be negative")
	ErrMissingPayer     = errors.New("payer is required")
)

// Service handles barbecue business logic. Every mutation persists first
// and then recomputes the whole ledger from the stored state, so the
// summary a caller gets back can never drift from the database: the local
// optimistic guess is simply discarded in favour of a full reload.
type Service struct {
	repo            *Repository
	participantRepo *participant.Repository
}

// NewService creates a new barbecue service
func NewService(repo *Repository, participantRepo *participant.Repository) *Service {
	return &Service{repo: repo, participantRepo: participantRepo}
}

// Create creates a new barbecue
func (s *Service) Create(ctx context.Context, req *CreateBarbecueRequest) (*Barbecue, error) {
	return s.repo.CreateBarbecue(ctx, strings.TrimSpace(req.Name))
}

// List retrieves all barbecues
func (s *Service) List(ctx context.Context) ([]*Barbecue, error) {
	return s.repo.ListBarbecues(ctx)
}

// GetByID retrieves a barbecue by its ID
func (s *Service) GetByID(ctx context.Context, id string) (*Barbecue, error) {
	b, err := s.repo.GetBarbecue(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBarbecueNotFound
	}
	return b, nil
}

// Delete removes a barbecue with everything attached to it
func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteBarbecue(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBarbecueNotFound
	}
	return nil
}

// AddProduct persists a purchase and returns it with a fresh summary
func (s *Service) AddProduct(ctx context.Context, barbecueID string, req *AddProductRequest) (*Product, *ledger.Result, error) {
	if _, err := s.GetByID(ctx, barbecueID); err != nil {
		return nil, nil, err
	}
	if req.Amount < 0 {
		return nil, nil, ErrInvalidAmount
	}
	payer := strings.TrimSpace(req.Payer)
	if payer == "" {
		return nil, nil, ErrMissingPayer
	}

	p := &Product{
		BarbecueID: barbecueID,
		Label:      strings.TrimSpace(req.Label),
		Amount:     req.Amount,
		Payer:      payer,
		Consumers:  ledger.DedupeNames(req.Consumers),
	}
	if err := s.repo.InsertProduct(ctx, p); err != nil {
		return nil, nil, err
	}

	result, err := s.Recompute(ctx, barbecueID)
	if err != nil {
		return nil, nil, err
	}
	return p, result, nil
}

// UpdateProduct modifies a purchase and returns it with a fresh summary.
// Payment rows are off limits here; reversing a payment goes through the
// payment feature instead.
func (s *Service) UpdateProduct(ctx context.Context, productID string, req *UpdateProductRequest) (*Product, *ledger.Result, error) {
	p, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		return nil, nil, ErrProductNotFound
	}
	if p.IsPayment {
		return nil, nil, ErrNotAProduct
	}

	if req.Label != nil {
		p.Label = strings.TrimSpace(*req.Label)
	}
	if req.Amount != nil {
		if *req.Amount < 0 {
			return nil, nil, ErrInvalidAmount
		}
		p.Amount = *req.Amount
	}
	if req.Payer != nil {
		payer := strings.TrimSpace(*req.Payer)
		if payer == "" {
			return nil, nil, ErrMissingPayer
		}
		p.Payer = payer
	}
	if req.Consumers != nil {
		p.Consumers = ledger.DedupeNames(*req.Consumers)
	}

	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		return nil, nil, err
	}

	result, err := s.Recompute(ctx, p.BarbecueID)
	if err != nil {
		return nil, nil, err
	}
	return p, result, nil
}

// DeleteProduct removes a purchase and returns a fresh summary
func (s *Service) DeleteProduct(ctx context.Context, productID string) (*ledger.Result, error) {
	p, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	if p.IsPayment {
		return nil, ErrNotAProduct
	}

	if _, err := s.repo.DeleteProduct(ctx, productID); err != nil {
		return nil, err
	}
	return s.Recompute(ctx, p.BarbecueID)
}

// Summary runs a full engine pass for a barbecue
func (s *Service) Summary(ctx context.Context, barbecueID string) (*ledger.Result, error) {
	if _, err := s.GetByID(ctx, barbecueID); err != nil {
		return nil, err
	}
	return s.Recompute(ctx, barbecueID)
}

// Recompute loads everything from storage and re-runs the whole pipeline.
// There is no incremental path: volumes are small and a from-scratch pass
// is the simplest thing that cannot get out of sync.
func (s *Service) Recompute(ctx context.Context, barbecueID string) (*ledger.Result, error) {
	products, err := s.repo.ListProducts(ctx, barbecueID)
	if err != nil {
		return nil, err
	}
	registered, err := s.participantRepo.ListByBarbecue(ctx, barbecueID)
	if err != nil {
		return nil, err
	}

	reg := ledger.NewRegistry()
	for _, p := range registered {
		reg.Add(p.ToLedger())
	}

	txs := make([]ledger.Transaction, len(products))
	for i, p := range products {
		txs[i] = p.ToTransaction()
	}

	return ledger.Compute(txs, reg), nil
}
