package signatures

import "github.com/rikalg22/surat-lamaran-api/internal/models"

// SignatureListInput for GET /signatures (no parameters)
type SignatureListInput struct{}

// SignatureCreateInput for POST /signatures
type SignatureCreateInput struct {
	Body models.Signature
}

// SignatureRenameInput for PUT /signatures. Only the label changes; the
// image is immutable once stored.
type SignatureRenameInput struct {
	Body struct {
		ID   string `json:"id" required:"true" doc:"Signature identifier"`
		Name string `json:"name" required:"true" doc:"New label" example:"TTD Resmi"`
	}
}

// SignatureDeleteInput for DELETE /signatures?id=...
type SignatureDeleteInput struct {
	ID string `query:"id" required:"true" doc:"Signature identifier"`
}
