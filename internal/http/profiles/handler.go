// Package profiles exposes the saved-profile collection over HTTP.
package profiles

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/rikalg22/surat-lamaran-api/internal/api"
	"github.com/rikalg22/surat-lamaran-api/internal/middleware"
	"github.com/rikalg22/surat-lamaran-api/internal/models"
	profilestore "github.com/rikalg22/surat-lamaran-api/internal/storage/profiles"
)

// Failure messages shown verbatim by the client.
const (
	msgListFailed   = "Gagal mengambil data"
	msgCreateFailed = "Gagal menyimpan data"
	msgUpdateFailed = "Gagal update data"
	msgDeleteFailed = "Gagal menghapus data"
)

// Register registers the profile endpoints.
func Register(a huma.API, repo profilestore.Repository) {
	huma.Register(a, huma.Operation{
		OperationID: "list-profiles",
		Method:      http.MethodGet,
		Path:        "/profiles",
		Summary:     "List saved profiles",
		Description: "Returns every saved profile, newest first, as a bare JSON array.",
		Tags:        []string{"Profiles"},
	}, func(ctx context.Context, _ *ProfileListInput) (*ProfileListOutput, error) {
		list, err := repo.List(ctx)
		if err != nil {
			middleware.LogError(ctx, "list profiles", err)
			return nil, huma.Error500InternalServerError(msgListFailed)
		}
		if list == nil {
			list = []models.Profile{}
		}
		return &ProfileListOutput{Body: list}, nil
	})

	huma.Register(a, huma.Operation{
		OperationID: "create-profile",
		Method:      http.MethodPost,
		Path:        "/profiles",
		Summary:     "Save a profile",
		Description: "Stores a new profile. The client supplies the identifier.",
		Tags:        []string{"Profiles"},
	}, func(ctx context.Context, input *ProfileCreateInput) (*ProfileMutationOutput, error) {
		if err := repo.Create(ctx, &input.Body); err != nil {
			middleware.LogError(ctx, "create profile", err)
			return nil, huma.Error500InternalServerError(msgCreateFailed)
		}
		return &ProfileMutationOutput{Body: api.OK()}, nil
	})

	huma.Register(a, huma.Operation{
		OperationID: "update-profile",
		Method:      http.MethodPut,
		Path:        "/profiles",
		Summary:     "Update a saved profile",
		Description: "Overwrites the stored profile matching the body's id. Unknown ids are a no-op.",
		Tags:        []string{"Profiles"},
	}, func(ctx context.Context, input *ProfileUpdateInput) (*ProfileMutationOutput, error) {
		if err := repo.Update(ctx, &input.Body); err != nil {
			middleware.LogError(ctx, "update profile", err)
			return nil, huma.Error500InternalServerError(msgUpdateFailed)
		}
		return &ProfileMutationOutput{Body: api.OK()}, nil
	})

	huma.Register(a, huma.Operation{
		OperationID: "delete-profile",
		Method:      http.MethodDelete,
		Path:        "/profiles",
		Summary:     "Delete a saved profile",
		Description: "Removes the profile with the given id. Unknown ids are a no-op.",
		Tags:        []string{"Profiles"},
	}, func(ctx context.Context, input *ProfileDeleteInput) (*ProfileMutationOutput, error) {
		if err := repo.Delete(ctx, input.ID); err != nil {
			middleware.LogError(ctx, "delete profile", err)
			return nil, huma.Error500InternalServerError(msgDeleteFailed)
		}
		return &ProfileMutationOutput{Body: api.OK()}, nil
	})
}
