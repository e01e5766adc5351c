package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// SelectionStore defines the key-value interface for a client's selected
// product identifiers. Order is preserved: it is the order the client
// picked the products in.
type SelectionStore interface {
	// Get returns the selected product IDs for a client, oldest first.
	// A client with no selections gets an empty slice, not an error.
	Get(ctx context.Context, clientID string) ([]int, error)
	// Put replaces the client's selections with the given IDs.
	Put(ctx context.Context, clientID string, productIDs []int) error
	// Clear removes all selections for a client.
	Clear(ctx context.Context, clientID string) error
}

// SelectionRepo provides SQLite-backed selection storage.
// It implements the SelectionStore interface.
type SelectionRepo struct {
	db *sql.DB
}

// NewSelectionRepo creates a new SelectionRepo.
func NewSelectionRepo(db *sql.DB) *SelectionRepo {
	return &SelectionRepo{db: db}
}

// Get returns the selected product IDs for a client, oldest first.
func (r *SelectionRepo) Get(ctx context.Context, clientID string) ([]int, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT product_id FROM selections WHERE client_id = ? ORDER BY position",
		clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query selections: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan selection: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read selections: %w", err)
	}

	return ids, nil
}

// Put replaces the client's selections with the given IDs, preserving
// their order.
func (r *SelectionRepo) Put(ctx context.Context, clientID string, productIDs []int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM selections WHERE client_id = ?", clientID); err != nil {
		return fmt.Errorf("failed to clear selections: %w", err)
	}

	for position, productID := range productIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO selections (client_id, position, product_id) VALUES (?, ?, ?)",
			clientID, position, productID,
		); err != nil {
			return fmt.Errorf("failed to insert selection: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit selections: %w", err)
	}

	return nil
}

// Clear removes all selections for a client.
func (r *SelectionRepo) Clear(ctx context.Context, clientID string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM selections WHERE client_id = ?", clientID); err != nil {
		return fmt.Errorf("failed to clear selections: %w", err)
	}
	return nil
}
