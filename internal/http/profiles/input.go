package profiles

import "github.com/rikalg22/surat-lamaran-api/internal/models"

// ProfileListInput for GET /profiles (no parameters)
type ProfileListInput struct{}

// ProfileCreateInput for POST /profiles
type ProfileCreateInput struct {
	Body models.Profile
}

// ProfileUpdateInput for PUT /profiles
type ProfileUpdateInput struct {
	Body models.Profile
}

// ProfileDeleteInput for DELETE /profiles?id=...
type ProfileDeleteInput struct {
	ID string `query:"id" required:"true" doc:"Profile identifier" example:"b9f8c3e2-1f7a-4a26-9c2f-8f4f2b9d6a11"`
}
