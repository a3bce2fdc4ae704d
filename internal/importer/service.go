package importer

import (
	"context"
	"errors"

	"github.com/ampinho/churrasplit/internal/barbecue"
	"github.com/ampinho/churrasplit/internal/ledger"
)

// Common errors
var (
	ErrNoImportableRows = errors.New("no importable rows found")
	ErrMissingName      = errors.New("barbecue name is required")
)

// ImportRequest carries a legacy sheet export
type ImportRequest struct {
	Name string     `json:"name" validate:"required,min=1,max=255"`
	Rows [][]string `json:"rows" validate:"required"`
}

// ImportResult is the outcome of an import
type ImportResult struct {
	Barbecue *barbecue.BarbecueResponse `json:"barbecue"`
	Imported int                        `json:"imported"`
	Result   *ledger.Result             `json:"summary"`
}

// Service imports legacy sheets into a new barbecue
type Service struct {
	repo            *barbecue.Repository
	barbecueService *barbecue.Service
}

// NewService creates a new importer service
func NewService(repo *barbecue.Repository, barbecueService *barbecue.Service) *Service {
	return &Service{repo: repo, barbecueService: barbecueService}
}

// Import parses a sheet, normalizes its rows through the ledger and
// persists everything under a freshly created barbecue. Payment rows are
// detected by the normalizer's label heuristic since legacy sheets carry
// no explicit flag.
func (s *Service) Import(ctx context.Context, req *ImportRequest) (*ImportResult, error) {
	if req.Name == "" {
		return nil, ErrMissingName
	}

	records := ParseRows(req.Rows)
	if len(records) == 0 {
		return nil, ErrNoImportableRows
	}
	txs := ledger.Normalize(records)

	b, err := s.repo.CreateBarbecue(ctx, req.Name)
	if err != nil {
		return nil, err
	}

	for _, tx := range txs {
		row := &barbecue.Product{
			BarbecueID: b.ID,
			Label:      tx.Label,
			Amount:     tx.Amount,
			Payer:      tx.Payer,
			Consumers:  tx.Beneficiaries,
			IsPayment:  tx.IsPayment,
		}
		if err := s.repo.InsertProduct(ctx, row); err != nil {
			return nil, err
		}
	}

	result, err := s.barbecueService.Recompute(ctx, b.ID)
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		Barbecue: b.ToResponse(),
		Imported: len(txs),
		Result:   result,
	}, nil
}
