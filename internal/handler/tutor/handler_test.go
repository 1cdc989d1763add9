package tutor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/littlemoneyschool/tutor/backend/internal/model/tutor"
)

func TestGetTutorProfile(t *testing.T) {
	r := chi.NewRouter()
	New(tutor.Default(), true).RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/tutor", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["name"] != tutor.Default().Name {
		t.Fatalf("unexpected name %v", body["name"])
	}
	if body["welcome"] == "" || body["placeholder"] == "" {
		t.Fatalf("expected welcome and placeholder, got %v", body)
	}
	if body["aiEnabled"] != true {
		t.Fatalf("expected aiEnabled true")
	}
	if _, ok := body["Rules"]; ok {
		t.Fatalf("rules must not be exposed")
	}
}
