// Package profiles persists applicant profiles in the profiles table. The
// details and attachments sequences are stored as JSON text blobs; callers
// only ever see the deserialized domain objects.
package profiles

import (
	"context"
	"errors"

	"github.com/rikalg22/surat-lamaran-api/internal/models"
)

// ErrDuplicateID is returned when Create hits the primary-key constraint.
// Callers assign ids, so a collision means the caller reused one.
var ErrDuplicateID = errors.New("profile id already exists")

// Repository defines profile storage operations.
//
// List returns rows in unspecified order. Update and Delete are no-ops when
// no row matches; only Create reports a constraint failure.
type Repository interface {
	List(ctx context.Context) ([]models.Profile, error)
	Create(ctx context.Context, p *models.Profile) error
	Update(ctx context.Context, p *models.Profile) error
	Delete(ctx context.Context, id string) error
}
