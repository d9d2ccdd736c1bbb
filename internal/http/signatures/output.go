package signatures

import (
	"github.com/rikalg22/surat-lamaran-api/internal/api"
	"github.com/rikalg22/surat-lamaran-api/internal/models"
)

// SignatureListOutput for GET /signatures, a bare JSON array.
type SignatureListOutput struct {
	Body []models.Signature
}

// SignatureMutationOutput acknowledges POST, PUT and DELETE.
type SignatureMutationOutput struct {
	Body api.Status
}
