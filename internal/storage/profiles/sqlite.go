package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
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

// List returns every stored profile with its blob columns deserialized.
// A single corrupt blob fails the whole listing; partial results are never
// returned.
func (r *SQLiteRepository) List(ctx context.Context) ([]models.Profile, error) {
	query := `SELECT id, profileName, fullName, details, attachments FROM profiles`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select profiles: %w", err)
	}
	defer rows.Close()

	var result []models.Profile
	for rows.Next() {
		var (
			p           models.Profile
			details     sql.NullString
			attachments sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.ProfileName, &p.FullName, &details, &attachments); err != nil {
			return nil, err
		}
		if details.Valid && details.String != "" {
			if err := json.Unmarshal([]byte(details.String), &p.Details); err != nil {
				return nil, fmt.Errorf("failed to decode details for profile %s: %w", p.ID, err)
			}
		}
		if attachments.Valid && attachments.String != "" {
			if err := json.Unmarshal([]byte(attachments.String), &p.Attachments); err != nil {
				return nil, fmt.Errorf("failed to decode attachments for profile %s: %w", p.ID, err)
			}
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts a new row keyed by p.ID. The id is caller-assigned; reusing
// one surfaces as ErrDuplicateID.
func (r *SQLiteRepository) Create(ctx context.Context, p *models.Profile) error {
	details, attachments, err := encodeBlobs(p)
	if err != nil {
		return err
	}
	query := `INSERT INTO profiles (id, profileName, fullName, details, attachments) VALUES (?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, p.ID, p.ProfileName, p.FullName, details, attachments); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
		}
		return fmt.Errorf("failed to insert profile: %w", err)
	}
	return nil
}

// Update fully replaces the mutable columns of the row matching p.ID.
// A missing row is a no-op.
func (r *SQLiteRepository) Update(ctx context.Context, p *models.Profile) error {
	details, attachments, err := encodeBlobs(p)
	if err != nil {
		return err
	}
	query := `UPDATE profiles SET profileName = ?, fullName = ?, details = ?, attachments = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, p.ProfileName, p.FullName, details, attachments, p.ID); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// Delete removes the row matching id. A missing row is a no-op.
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

// encodeBlobs serializes the sequence columns. A nil attachment list is
// stored as NULL so that loading the profile later leaves the current
// attachments untouched.
func encodeBlobs(p *models.Profile) (string, any, error) {
	details, err := json.Marshal(p.Details)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode details: %w", err)
	}
	if p.Attachments == nil {
		return string(details), nil, nil
	}
	attachments, err := json.Marshal(p.Attachments)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode attachments: %w", err)
	}
	return string(details), string(attachments), nil
}

// Compile-time interface check
var _ Repository = (*SQLiteRepository)(nil)
