// Package signatures persists named signature images in the signatures
// table. The image column holds a self-contained data URI.
package signatures

import (
	"context"
	"errors"

	"github.com/rikalg22/surat-lamaran-api/internal/models"
)

// ErrDuplicateID is returned when Create hits the primary-key constraint.
var ErrDuplicateID = errors.New("signature id already exists")

// Repository defines signature storage operations. Rename and Delete are
// no-ops when no row matches.
type Repository interface {
	List(ctx context.Context) ([]models.Signature, error)
	Create(ctx context.Context, s *models.Signature) error
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}
