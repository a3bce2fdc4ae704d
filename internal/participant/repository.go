package participant

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles participant registry persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new participant repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Upsert inserts or updates a registry entry
func (r *Repository) Upsert(ctx context.Context, p *Participant) error {
	query := `
		INSERT INTO participants (barbecue_id, name, pix_key, pix_type, payment_responsible)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (barbecue_id, name)
		DO UPDATE SET pix_key = $3, pix_type = $4, payment_responsible = $5
	`

	_, err := r.db.ExecContext(ctx, query, p.BarbecueID, p.Name, p.PixKey, p.PixType, p.PaymentResponsible)
	if err != nil {
		return fmt.Errorf("failed to upsert participant: %w", err)
	}
	return nil
}

// GetByName retrieves a registry entry, nil when absent
func (r *Repository) GetByName(ctx context.Context, barbecueID, name string) (*Participant, error) {
	query := `
		SELECT barbecue_id, name, pix_key, pix_type, payment_responsible
		FROM participants
		WHERE barbecue_id = $1 AND name = $2
	`

	p := &Participant{}
	err := r.db.QueryRowContext(ctx, query, barbecueID, name).Scan(
		&p.BarbecueID, &p.Name, &p.PixKey, &p.PixType, &p.PaymentResponsible,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	return p, nil
}

// ListByBarbecue retrieves all registry entries for a barbecue in
// registration order. Order matters downstream: the engine's dependency
// aggregation walks participants in registry order.
func (r *Repository) ListByBarbecue(ctx context.Context, barbecueID string) ([]*Participant, error) {
	query := `
		SELECT barbecue_id, name, pix_key, pix_type, payment_responsible
		FROM participants
		WHERE barbecue_id = $1
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query, barbecueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var participants []*Participant
	for rows.Next() {
		p := &Participant{}
		if err := rows.Scan(&p.BarbecueID, &p.Name, &p.PixKey, &p.PixType, &p.PaymentResponsible); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	return participants, nil
}

// Delete removes a registry entry, reporting whether it existed
func (r *Repository) Delete(ctx context.Context, barbecueID, name string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM participants WHERE barbecue_id = $1 AND name = $2",
		barbecueID, name,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete participant: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to count deleted participants: %w", err)
	}
	return affected > 0, nil
}
