package payment

import (
	"context"
	"errors"
	"strings"

	"github.com/ampinho/churrasplit/internal/barbecue"
	"github.com/ampinho/churrasplit/internal/ledger"
)

// Common errors
var (
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrNotAPayment       = errors.New("row is a product, not a payment")
	ErrInvalidAmount     = errors.New("payment amount must be positive")
	ErrSamePayerReceiver = errors.New("payer and receiver must differ")
	ErrMissingName       = errors.New("payer and receiver are required")
)

// Service handles payment business logic. Payments live in the same table
// as products (a payment is a transaction with one beneficiary), so this
// service leans on the barbecue repository and only adds the payment rules.
type Service struct {
	repo     *barbecue.Repository
	barbecue *barbecue.Service
}

// NewService creates a new payment service
func NewService(repo *barbecue.Repository, barbecueService *barbecue.Service) *Service {
	return &Service{repo: repo, barbecue: barbecueService}
}

// Create records a settlement payment and returns a fresh summary
func (s *Service) Create(ctx context.Context, req *CreatePaymentRequest) (*ledger.PaymentRecord, *ledger.Result, error) {
	from := strings.TrimSpace(req.From)
	to := strings.TrimSpace(req.To)
	if from == "" || to == "" {
		return nil, nil, ErrMissingName
	}
	if from == to {
		return nil, nil, ErrSamePayerReceiver
	}
	if req.Amount <= 0 {
		return nil, nil, ErrInvalidAmount
	}
	if _, err := s.barbecue.GetByID(ctx, req.BarbecueID); err != nil {
		return nil, nil, err
	}

	row := &barbecue.Product{
		BarbecueID: req.BarbecueID,
		Label:      ledger.PaymentLabel,
		Amount:     req.Amount,
		Payer:      from,
		Consumers:  []string{to},
		IsPayment:  true,
	}
	if err := s.repo.InsertProduct(ctx, row); err != nil {
		return nil, nil, err
	}

	result, err := s.barbecue.Recompute(ctx, req.BarbecueID)
	if err != nil {
		return nil, nil, err
	}

	record := &ledger.PaymentRecord{ID: row.ID, From: from, To: to, Amount: req.Amount}
	return record, result, nil
}

// List returns the payment history for a barbecue
func (s *Service) List(ctx context.Context, barbecueID string) ([]ledger.PaymentRecord, error) {
	result, err := s.barbecue.Summary(ctx, barbecueID)
	if err != nil {
		return nil, err
	}
	return result.Payments, nil
}

// Reverse deletes a recorded payment and returns a fresh summary.
// Reversal is removal of the source transaction plus a full recomputation;
// nothing is edited in place.
func (s *Service) Reverse(ctx context.Context, paymentID string) (*ledger.Result, error) {
	row, err := s.repo.GetProduct(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrPaymentNotFound
	}
	if !row.IsPayment {
		return nil, ErrNotAPayment
	}

	if _, err := s.repo.DeleteProduct(ctx, paymentID); err != nil {
		return nil, err
	}
	return s.barbecue.Recompute(ctx, row.BarbecueID)
}
