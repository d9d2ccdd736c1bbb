package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
)

func TestInstallShapesHumaErrors(t *testing.T) {
	Install()

	err := huma.Error500InternalServerError("Gagal menyimpan data")
	if got := err.GetStatus(); got != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", got)
	}

	body, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("marshal error body: %v", marshalErr)
	}
	if string(body) != `{"error":"Gagal menyimpan data"}` {
		t.Fatalf("unexpected error body: %s", body)
	}
}

func TestInstallFallsBackToStatusText(t *testing.T) {
	Install()

	err := huma.NewError(http.StatusNotFound, "")
	body, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("marshal error body: %v", marshalErr)
	}
	if string(body) != `{"error":"Not Found"}` {
		t.Fatalf("unexpected error body: %s", body)
	}
}

func TestNotFoundHandlerUsesEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)

	NotFoundHandler()(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "resource not found" {
		t.Fatalf("unexpected message: %q", body["error"])
	}
}

func TestMethodNotAllowedHandlerUsesEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/profiles", nil)

	MethodNotAllowedHandler()(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "method not allowed" {
		t.Fatalf("unexpected message: %q", body["error"])
	}
}

func TestRecovererConvertsPanicTo500(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profiles", nil)

	h := Recoverer()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("unexpected message: %q", body["error"])
	}
}
