// Package database manages the Postgres connection and schema setup.
package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// schema is applied on startup so the tables always exist. Payments share
// the products table: a payment is a product row with is_payment = true and
// a single consumer (the receiver).
const schema = `
CREATE TABLE IF NOT EXISTS barbecues (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS participants (
    barbecue_id TEXT NOT NULL REFERENCES barbecues(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    pix_key TEXT,
    pix_type TEXT,
    payment_responsible TEXT,
    position BIGSERIAL,
    PRIMARY KEY (barbecue_id, name)
);

CREATE TABLE IF NOT EXISTS products (
    id TEXT PRIMARY KEY,
    barbecue_id TEXT NOT NULL REFERENCES barbecues(id) ON DELETE CASCADE,
    label TEXT NOT NULL,
    amount DOUBLE PRECISION NOT NULL,
    payer TEXT NOT NULL,
    is_payment BOOLEAN NOT NULL DEFAULT false,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS product_consumers (
    product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    position INT NOT NULL,
    PRIMARY KEY (product_id, name)
);

CREATE INDEX IF NOT EXISTS idx_products_barbecue_id ON products(barbecue_id);
CREATE INDEX IF NOT EXISTS idx_product_consumers_product_id ON product_consumers(product_id);
`

// NewPostgresConnection opens a connection pool, verifies it and runs the
// schema migration.
func NewPostgresConnection(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
