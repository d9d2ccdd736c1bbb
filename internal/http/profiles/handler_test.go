package profiles

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
	profilestore "github.com/rikalg22/surat-lamaran-api/internal/storage/profiles"
)

func newTestRouter(repo profilestore.Repository) chi.Router {
	respond.Install()
	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		appmiddleware.RequestLogger(),
		respond.Recoverer(),
	)
	api := humachi.New(router, huma.DefaultConfig("ProfilesTest", "test"))
	Register(api, repo)
	return router
}

func sampleProfile(id string) models.Profile {
	return models.Profile{
		ID:          id,
		ProfileName: "Admin Gudang",
		FullName:    "Frendy Rikal Gerung",
		Details: []models.DetailRow{
			{ID: "d1", Label: "Nama", Value: "Frendy Rikal Gerung", IsBold: true},
			{ID: "d2", Label: "Alamat", Value: "Manado"},
		},
		Attachments: []models.AttachmentItem{
			{ID: "a1", Text: "Daftar Riwayat Hidup", IsChecked: true},
		},
	}
}

func TestListProfilesReturnsBareArray(t *testing.T) {
	repo := profilestore.NewMock()
	repo.Profiles = []models.Profile{sampleProfile("p1"), sampleProfile("p2")}
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/profiles", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	body := strings.TrimSpace(resp.Body.String())
	if !strings.HasPrefix(body, "[") {
		t.Fatalf("expected bare JSON array, got: %s", body)
	}

	var list []models.Profile
	if err := json.Unmarshal(resp.Body.Bytes(), &list); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(list))
	}
	if list[0].Details[0].Label != "Nama" {
		t.Errorf("expected first detail label Nama, got %s", list[0].Details[0].Label)
	}
}

func TestListProfilesEmptyStoreIsEmptyArrayNotNull(t *testing.T) {
	router := newTestRouter(profilestore.NewMock())

	req := httptest.NewRequest(http.MethodGet, "/profiles", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if body := strings.TrimSpace(resp.Body.String()); body != "[]" {
		t.Fatalf("expected [], got: %s", body)
	}
}

func TestListProfilesFailure(t *testing.T) {
	repo := profilestore.NewMock()
	repo.Err = errors.New("db gone")
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/profiles", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", resp.Code, resp.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if body["error"] != "Gagal mengambil data" {
		t.Errorf("expected error 'Gagal mengambil data', got %q", body["error"])
	}
}

func TestCreateProfileSuccess(t *testing.T) {
	repo := profilestore.NewMock()
	router := newTestRouter(repo)

	payload, err := json.Marshal(sampleProfile("p1"))
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/profiles", strings.NewReader(string(payload)))
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
	if len(repo.Profiles) != 1 || repo.Profiles[0].ID != "p1" {
		t.Errorf("expected profile p1 stored, got %+v", repo.Profiles)
	}
}

func TestCreateProfileFailure(t *testing.T) {
	repo := profilestore.NewMock()
	repo.Err = errors.New("db locked")
	router := newTestRouter(repo)

	payload, err := json.Marshal(sampleProfile("p1"))
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/profiles", strings.NewReader(string(payload)))
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

func TestUpdateProfileOverwritesMatchingRow(t *testing.T) {
	repo := profilestore.NewMock()
	repo.Profiles = []models.Profile{sampleProfile("p1")}
	router := newTestRouter(repo)

	updated := sampleProfile("p1")
	updated.ProfileName = "Staff Produksi"
	payload, err := json.Marshal(updated)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPut, "/profiles", strings.NewReader(string(payload)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if repo.Profiles[0].ProfileName != "Staff Produksi" {
		t.Errorf("expected stored profile renamed, got %q", repo.Profiles[0].ProfileName)
	}
}

func TestDeleteProfileByQueryParam(t *testing.T) {
	repo := profilestore.NewMock()
	repo.Profiles = []models.Profile{sampleProfile("p1")}
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodDelete, "/profiles?id=p1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if len(repo.Profiles) != 0 {
		t.Errorf("expected profile removed, got %+v", repo.Profiles)
	}
}

func TestDeleteProfileUnknownIDStillSucceeds(t *testing.T) {
	repo := profilestore.NewMock()
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodDelete, "/profiles?id=nope", nil)
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
}
