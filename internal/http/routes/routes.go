// Package routes wires every HTTP endpoint into the API router.
package routes

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	profileshandler "github.com/rikalg22/surat-lamaran-api/internal/http/profiles"
	signatureshandler "github.com/rikalg22/surat-lamaran-api/internal/http/signatures"
	profilestore "github.com/rikalg22/surat-lamaran-api/internal/storage/profiles"
	signaturestore "github.com/rikalg22/surat-lamaran-api/internal/storage/signatures"
)

// HealthOutput is the payload for the health endpoint.
type HealthOutput struct {
	Body struct {
		Status string `json:"status" example:"healthy"`
	}
}

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API, profileRepo profilestore.Repository, signatureRepo signaturestore.Repository) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, func(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
		out := &HealthOutput{}
		out.Body.Status = "healthy"
		return out, nil
	})

	profileshandler.Register(api, profileRepo)
	signatureshandler.Register(api, signatureRepo)
}
