package barbecue

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Repository handles barbecue and product persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new barbecue repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateBarbecue inserts a new barbecue
func (r *Repository) CreateBarbecue(ctx context.Context, name string) (*Barbecue, error) {
	query := `
		INSERT INTO barbecues (id, name)
		VALUES ($1, $2)
		RETURNING id, name, created_at
	`

	b := &Barbecue{}
	err := r.db.QueryRowContext(ctx, query, uuid.New().String(), name).Scan(&b.ID, &b.Name, &b.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create barbecue: %w", err)
	}
	return b, nil
}

// GetBarbecue retrieves a barbecue by ID, nil when absent
func (r *Repository) GetBarbecue(ctx context.Context, id string) (*Barbecue, error) {
	b := &Barbecue{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM barbecues WHERE id = $1", id,
	).Scan(&b.ID, &b.Name, &b.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get barbecue: %w", err)
	}
	return b, nil
}

// ListBarbecues retrieves all barbecues, newest first
func (r *Repository) ListBarbecues(ctx context.Context) ([]*Barbecue, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, created_at FROM barbecues ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list barbecues: %w", err)
	}
	defer rows.Close()

	var barbecues []*Barbecue
	for rows.Next() {
		b := &Barbecue{}
		if err := rows.Scan(&b.ID, &b.Name, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan barbecue: %w", err)
		}
		barbecues = append(barbecues, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate barbecues: %w", err)
	}
	return barbecues, nil
}

// DeleteBarbecue removes a barbecue and cascades to its rows
func (r *Repository) DeleteBarbecue(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM barbecues WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete barbecue: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to count deleted barbecues: %w", err)
	}
	return affected > 0, nil
}

// InsertProduct persists a product (or payment) row with its consumers
func (r *Repository) InsertProduct(ctx context.Context, p *Product) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO products (id, barbecue_id, label, amount, payer, is_payment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`, p.ID, p.BarbecueID, p.Label, p.Amount, p.Payer, p.IsPayment).Scan(&p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	if err := insertConsumers(ctx, tx, p.ID, p.Consumers); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateProduct rewrites a product row and its consumer list
func (r *Repository) UpdateProduct(ctx context.Context, p *Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"UPDATE products SET label = $1, amount = $2, payer = $3 WHERE id = $4",
		p.Label, p.Amount, p.Payer, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM product_consumers WHERE product_id = $1", p.ID); err != nil {
		return fmt.Errorf("failed to clear product consumers: %w", err)
	}
	if err := insertConsumers(ctx, tx, p.ID, p.Consumers); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetProduct retrieves a single product row with consumers, nil when absent
func (r *Repository) GetProduct(ctx context.Context, id string) (*Product, error) {
	p := &Product{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, barbecue_id, label, amount, payer, is_payment, created_at
		FROM products WHERE id = $1
	`, id).Scan(&p.ID, &p.BarbecueID, &p.Label, &p.Amount, &p.Payer, &p.IsPayment, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	p.Consumers, err = r.consumersFor(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListProducts retrieves all product and payment rows for a barbecue in
// insertion order, consumers included.
func (r *Repository) ListProducts(ctx context.Context, barbecueID string) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, barbecue_id, label, amount, payer, is_payment, created_at
		FROM products
		WHERE barbecue_id = $1
		ORDER BY created_at, id
	`, barbecueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p := &Product{}
		if err := rows.Scan(&p.ID, &p.BarbecueID, &p.Label, &p.Amount, &p.Payer, &p.IsPayment, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	for _, p := range products {
		if p.Consumers, err = r.consumersFor(ctx, p.ID); err != nil {
			return nil, err
		}
	}
	return products, nil
}

// DeleteProduct removes a product row, reporting whether it existed
func (r *Repository) DeleteProduct(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete product: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to count deleted products: %w", err)
	}
	return affected > 0, nil
}

func (r *Repository) consumersFor(ctx context.Context, productID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT name FROM product_consumers WHERE product_id = $1 ORDER BY position",
		productID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get product consumers: %w", err)
	}
	defer rows.Close()

	var consumers []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan consumer: %w", err)
		}
		consumers = append(consumers, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate consumers: %w", err)
	}
	return consumers, nil
}

func insertConsumers(ctx context.Context, tx *sql.Tx, productID string, consumers []string) error {
	for i, name := range consumers {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO product_consumers (product_id, name, position) VALUES ($1, $2, $3)",
			productID, name, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert consumer: %w", err)
		}
	}
	return nil
}
