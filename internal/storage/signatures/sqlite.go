package signatures

import (
	"context"
	"fmt"
	"strings"

	"github.com/rikalg22/surat-lamaran-api/internal/dbx"
	"github.com/rikalg22/surat-lamaran-api/internal/models"
)

// SQLiteRepository implements Repository on top of a DBTX.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// List returns every stored signature in unspecified order.
func (r *SQLiteRepository) List(ctx context.Context) ([]models.Signature, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, image FROM signatures`)
	if err != nil {
		return nil, fmt.Errorf("failed to select signatures: %w", err)
	}
	defer rows.Close()

	var result []models.Signature
	for rows.Next() {
		var s models.Signature
		if err := rows.Scan(&s.ID, &s.Name, &s.Image); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts a new row keyed by s.ID.
func (r *SQLiteRepository) Create(ctx context.Context, s *models.Signature) error {
	query := `INSERT INTO signatures (id, name, image) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, s.ID, s.Name, s.Image); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return fmt.Errorf("%w: %s", ErrDuplicateID, s.ID)
		}
		return fmt.Errorf("failed to insert signature: %w", err)
	}
	return nil
}

// Rename updates the name of the row matching id. A missing row is a no-op.
func (r *SQLiteRepository) Rename(ctx context.Context, id, name string) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE signatures SET name = ? WHERE id = ?`, name, id); err != nil {
		return fmt.Errorf("failed to rename signature: %w", err)
	}
	return nil
}

// Delete removes the row matching id. A missing row is a no-op.
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM signatures WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete signature: %w", err)
	}
	return nil
}

// Compile-time interface check
var _ Repository = (*SQLiteRepository)(nil)
