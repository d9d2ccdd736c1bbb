package profiles

import (
	"github.com/rikalg22/surat-lamaran-api/internal/api"
	"github.com/rikalg22/surat-lamaran-api/internal/models"
)

// ProfileListOutput for GET /profiles. The client expects a bare array, not
// an object wrapper.
type ProfileListOutput struct {
	Body []models.Profile
}

// ProfileMutationOutput acknowledges POST, PUT and DELETE.
type ProfileMutationOutput struct {
	Body api.Status
}
