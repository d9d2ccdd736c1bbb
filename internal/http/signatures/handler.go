// Package signatures exposes the stored-signature collection over HTTP.
package signatures

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/rikalg22/surat-lamaran-api/internal/api"
	"github.com/rikalg22/surat-lamaran-api/internal/middleware"
	"github.com/rikalg22/surat-lamaran-api/internal/models"
	signaturestore "github.com/rikalg22/surat-lamaran-api/internal/storage/signatures"
)

// Failure messages shown verbatim by the client.
const (
	msgListFailed   = "Gagal mengambil data"
	msgCreateFailed = "Gagal menyimpan data"
	msgRenameFailed = "Gagal update data"
	msgDeleteFailed = "Gagal menghapus data"
)

// Register registers the signature endpoints.
func Register(a huma.API, repo signaturestore.Repository) {
	huma.Register(a, huma.Operation{
		OperationID: "list-signatures",
		Method:      http.MethodGet,
		Path:        "/signatures",
		Summary:     "List stored signatures",
		Description: "Returns every stored signature, newest first, as a bare JSON array.",
		Tags:        []string{"Signatures"},
	}, func(ctx context.Context, _ *SignatureListInput) (*SignatureListOutput, error) {
		list, err := repo.List(ctx)
		if err != nil {
			middleware.LogError(ctx, "list signatures", err)
			return nil, huma.Error500InternalServerError(msgListFailed)
		}
		if list == nil {
			list = []models.Signature{}
		}
		return &SignatureListOutput{Body: list}, nil
	})

	huma.Register(a, huma.Operation{
		OperationID: "create-signature",
		Method:      http.MethodPost,
		Path:        "/signatures",
		Summary:     "Store a signature",
		Description: "Stores a named signature image as a PNG data URI. The client supplies the identifier.",
		Tags:        []string{"Signatures"},
	}, func(ctx context.Context, input *SignatureCreateInput) (*SignatureMutationOutput, error) {
		if err := repo.Create(ctx, &input.Body); err != nil {
			middleware.LogError(ctx, "create signature", err)
			return nil, huma.Error500InternalServerError(msgCreateFailed)
		}
		return &SignatureMutationOutput{Body: api.OK()}, nil
	})

	huma.Register(a, huma.Operation{
		OperationID: "rename-signature",
		Method:      http.MethodPut,
		Path:        "/signatures",
		Summary:     "Rename a stored signature",
		Description: "Changes the label of the signature matching the body's id. Unknown ids are a no-op.",
		Tags:        []string{"Signatures"},
	}, func(ctx context.Context, input *SignatureRenameInput) (*SignatureMutationOutput, error) {
		if err := repo.Rename(ctx, input.Body.ID, input.Body.Name); err != nil {
			middleware.LogError(ctx, "rename signature", err)
			return nil, huma.Error500InternalServerError(msgRenameFailed)
		}
		return &SignatureMutationOutput{Body: api.OK()}, nil
	})

	huma.Register(a, huma.Operation{
		OperationID: "delete-signature",
		Method:      http.MethodDelete,
		Path:        "/signatures",
		Summary:     "Delete a stored signature",
		Description: "Removes the signature with the given id. Unknown ids are a no-op.",
		Tags:        []string{"Signatures"},
	}, func(ctx context.Context, input *SignatureDeleteInput) (*SignatureMutationOutput, error) {
		if err := repo.Delete(ctx, input.ID); err != nil {
			middleware.LogError(ctx, "delete signature", err)
			return nil, huma.Error500InternalServerError(msgDeleteFailed)
		}
		return &SignatureMutationOutput{Body: api.OK()}, nil
	})
}
