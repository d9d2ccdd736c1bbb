package signatures

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	appmiddleware "github.com/rikalg22/surat-lamaran-api/internal/middleware"
	"github.com/rikalg22/surat-lamaran-api/internal/models"
	"github.com/rikalg22/surat-lamaran-api/internal/respond"
	signaturestore "github.com/rikalg22/surat-lamaran-api/internal/storage/signatures"
)

func newTestRouter(repo signaturestore.Repository) chi.Router {
	respond.Install()
	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		appmiddleware.RequestLogger(),
		respond.Recoverer(),
	)
	api := humachi.New(router, huma.DefaultConfig("SignaturesTest", "test"))
	Register(api, repo)
	return router
}

func sampleSignature(id string) models.Signature {
	return models.Signature{
		ID:    id,
		Name:  "TTD Digital",
		Image: "data:image/png;base64,iVBORw0KGgo=",
	}
}

func TestListSignaturesReturnsBareArray(t *testing.T) {
	repo := signaturestore.NewMock()
	repo.Signatures = []models.Signature{sampleSignature("s1")}
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/signatures", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if body := strings.TrimSpace(resp.Body.String()); !strings.HasPrefix(body, "[") {
		t.Fatalf("expected bare JSON array, got: %s", body)
	}

	var list []models.Signature
	if err := json.Unmarshal(resp.Body.Bytes(), &list); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if len(list) != 1 || list[0].Name != "TTD Digital" {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestListSignaturesEmptyStoreIsEmptyArrayNotNull(t *testing.T) {
	router := newTestRouter(signaturestore.NewMock())

	req := httptest.NewRequest(http.MethodGet, "/signatures", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if body := strings.TrimSpace(resp.Body.String()); body != "[]" {
		t.Fatalf("expected [], got: %s", body)
	}
}

func TestCreateSignatureSuccess(t *testing.T) {
	repo := signaturestore.NewMock()
	router := newTestRouter(repo)

	payload, err := json.Marshal(sampleSignature("s1"))
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/signatures", strings.NewReader(string(payload)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body map[string]bool
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if !body["success"] {
		t.Errorf("expected success true, got: %s", resp.Body.String())
	}
	if len(repo.Signatures) != 1 {
		t.Errorf("expected signature stored, got %+v", repo.Signatures)
	}
}

func TestCreateSignatureFailure(t *testing.T) {
	repo := signaturestore.NewMock()
	repo.Err = errors.New("db locked")
	router := newTestRouter(repo)

	payload, err := json.Marshal(sampleSignature("s1"))
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/signatures", strings.NewReader(string(payload)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", resp.Code, resp.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if body["error"] != "Gagal menyimpan data" {
		t.Errorf("expected error 'Gagal menyimpan data', got %q", body["error"])
	}
}

func TestRenameSignatureChangesLabelOnly(t *testing.T) {
	repo := signaturestore.NewMock()
	repo.Signatures = []models.Signature{sampleSignature("s1")}
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodPut, "/signatures", strings.NewReader(`{"id":"s1","name":"TTD Resmi"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if repo.Signatures[0].Name != "TTD Resmi" {
		t.Errorf("expected renamed signature, got %q", repo.Signatures[0].Name)
	}
	if repo.Signatures[0].Image != sampleSignature("s1").Image {
		t.Errorf("expected image untouched, got %q", repo.Signatures[0].Image)
	}
}

func TestRenameSignatureFailure(t *testing.T) {
	repo := signaturestore.NewMock()
	repo.Err = errors.New("db locked")
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodPut, "/signatures", strings.NewReader(`{"id":"s1","name":"X"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", resp.Code, resp.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if body["error"] != "Gagal update data" {
		t.Errorf("expected error 'Gagal update data', got %q", body["error"])
	}
}

func TestDeleteSignatureByQueryParam(t *testing.T) {
	repo := signaturestore.NewMock()
	repo.Signatures = []models.Signature{sampleSignature("s1")}
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodDelete, "/signatures?id=s1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if len(repo.Signatures) != 0 {
		t.Errorf("expected signature removed, got %+v", repo.Signatures)
	}
}

func TestDeleteSignatureFailure(t *testing.T) {
	repo := signaturestore.NewMock()
	repo.Err = errors.New("db locked")
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodDelete, "/signatures?id=s1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", resp.Code, resp.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if body["error"] != "Gagal menghapus data" {
		t.Errorf("expected error 'Gagal menghapus data', got %q", body["error"])
	}
}
